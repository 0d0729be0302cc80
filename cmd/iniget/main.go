package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/typedini/internal/application"
	"github.com/eugenenazirov/typedini/internal/config"
	"github.com/eugenenazirov/typedini/internal/logging"
	"github.com/eugenenazirov/typedini/internal/typedini"
)

var kindNames = []string{"string", "int", "float", "bool", "list", "intlist", "floatlist"}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	kingpinApp := kingpin.New("iniget", "Read typed values from INI configuration files")
	kingpinApp.Writer(stderr)
	kingpinApp.Terminate(nil)

	configFile := kingpinApp.Flag("config", "Path to YAML configuration file").String()
	file := kingpinApp.Flag("file", "INI file to read").Short('f').String()
	delimiters := kingpinApp.Flag("delimiter", "Key/value delimiter (repeatable)").Strings()
	defaultSection := kingpinApp.Flag("default-section", "Name of the fallback section").String()
	encoding := kingpinApp.Flag("encoding", "Text encoding of the INI file").String()
	listDelimiter := kingpinApp.Flag("list-delimiter", "Separator between list items").String()
	var strictSet bool
	strict := kingpinApp.Flag("strict", "Fail on repeated section headers instead of merging").IsSetByUser(&strictSet).Bool()
	logLevel := kingpinApp.Flag("log-level", "Log level (debug, info, warn, error)").String()

	getCmd := kingpinApp.Command("get", "Print a single option")
	getSection := getCmd.Arg("section", "Section name").Required().String()
	getOption := getCmd.Arg("option", "Option name").Required().String()
	getType := getCmd.Flag("type", "Value type").Short('t').Default("string").Enum(kindNames...)

	sectionsCmd := kingpinApp.Command("sections", "List declared sections")

	optionsCmd := kingpinApp.Command("options", "List options set in a section")
	optionsSection := optionsCmd.Arg("section", "Section name").Required().String()

	dumpCmd := kingpinApp.Command("dump", "Print every section with its effective options as YAML")

	command, err := kingpinApp.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "iniget: %v\n", err)
		return 2
	}

	overrides := &config.CLIOverrides{
		ConfigFile: *configFile,
		File:       file,
		Delimiters: *delimiters,
	}
	if *defaultSection != "" {
		overrides.DefaultSection = defaultSection
	}
	if *encoding != "" {
		overrides.Encoding = encoding
	}
	if *listDelimiter != "" {
		overrides.ListDelimiter = listDelimiter
	}
	if strictSet {
		overrides.StrictSections = strict
	}
	if *logLevel != "" {
		overrides.LogLevel = logLevel
	}

	cfg, err := config.Load(overrides)
	if err != nil {
		fmt.Fprintf(stderr, "iniget: failed to load configuration: %v\n", err)
		return 2
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "iniget: failed to initialize logger: %v\n", err)
		return 2
	}
	defer func() {
		_ = logger.Sync()
	}()

	app, err := application.New(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize application", zap.Error(err))
		fmt.Fprintf(stderr, "iniget: %v\n", err)
		return 1
	}

	switch command {
	case getCmd.FullCommand():
		kind, err := typedini.ParseKind(*getType)
		if err != nil {
			fmt.Fprintf(stderr, "iniget: %v\n", err)
			return 2
		}
		value, err := app.Lookup(*getSection, *getOption, kind)
		if err != nil {
			fmt.Fprintf(stderr, "iniget: %v\n", err)
			return 1
		}
		fmt.Fprintln(stdout, value)
	case sectionsCmd.FullCommand():
		return printLines(stdout, stderr, app.Sections)
	case optionsCmd.FullCommand():
		return printLines(stdout, stderr, func() ([]string, error) { return app.Options(*optionsSection) })
	case dumpCmd.FullCommand():
		if err := app.Dump(stdout); err != nil {
			fmt.Fprintf(stderr, "iniget: %v\n", err)
			return 1
		}
	}

	return 0
}

func printLines(stdout, stderr io.Writer, list func() ([]string, error)) int {
	lines, err := list()
	if err != nil {
		fmt.Fprintf(stderr, "iniget: %v\n", err)
		return 1
	}
	for _, line := range lines {
		fmt.Fprintln(stdout, line)
	}
	return 0
}
