package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/typedini/internal/typedini"
)

const (
	defaultEncoding = "utf-8"
	defaultLogLevel = "warn"
	envPrefix       = "TYPEDINI_"
)

// Config aggregates the settings used to open and query an INI source.
// Precedence: CLI flags > YAML config > Environment variables > Defaults
type Config struct {
	File                  string
	Delimiters            []string
	CommentPrefixes       []string
	InlineCommentPrefixes []string
	DefaultSection        string
	Encoding              string
	ListDelimiter         string
	StrictSections        bool
	LogLevel              string
}

// yamlConfig represents the YAML configuration file structure.
type yamlConfig struct {
	File                  string   `yaml:"file"`
	Delimiters            []string `yaml:"delimiters"`
	CommentPrefixes       []string `yaml:"comment_prefixes"`
	InlineCommentPrefixes []string `yaml:"inline_comment_prefixes"`
	DefaultSection        string   `yaml:"default_section"`
	Encoding              string   `yaml:"encoding"`
	ListDelimiter         string   `yaml:"list_delimiter"`
	StrictSections        *bool    `yaml:"strict_sections"`
	LogLevel              string   `yaml:"log_level"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	ConfigFile     string
	File           *string
	Delimiters     []string
	DefaultSection *string
	Encoding       *string
	ListDelimiter  *string
	StrictSections *bool
	LogLevel       *string
}

// Load resolves configuration from multiple sources with precedence:
// CLI flags > YAML config > Environment variables > Defaults
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	applyEnvConfig(&cfg)

	if overrides != nil && overrides.ConfigFile != "" {
		yamlCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("load YAML config: %w", err)
		}
		applyYAMLConfig(&cfg, yamlCfg)
	}

	if overrides != nil {
		applyCLIOverrides(&cfg, overrides)
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	return Config{
		Delimiters:            []string{"="},
		CommentPrefixes:       []string{"#"},
		InlineCommentPrefixes: []string{";"},
		DefaultSection:        typedini.DefaultSectionName,
		Encoding:              defaultEncoding,
		ListDelimiter:         ",",
		LogLevel:              defaultLogLevel,
	}
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

// applyYAMLConfig applies YAML configuration to the Config struct.
func applyYAMLConfig(cfg *Config, yamlCfg *yamlConfig) {
	if yamlCfg.File != "" {
		cfg.File = yamlCfg.File
	}
	if len(yamlCfg.Delimiters) > 0 {
		cfg.Delimiters = yamlCfg.Delimiters
	}
	if yamlCfg.CommentPrefixes != nil {
		cfg.CommentPrefixes = yamlCfg.CommentPrefixes
	}
	if yamlCfg.InlineCommentPrefixes != nil {
		cfg.InlineCommentPrefixes = yamlCfg.InlineCommentPrefixes
	}
	if yamlCfg.DefaultSection != "" {
		cfg.DefaultSection = yamlCfg.DefaultSection
	}
	if yamlCfg.Encoding != "" {
		cfg.Encoding = yamlCfg.Encoding
	}
	if yamlCfg.ListDelimiter != "" {
		cfg.ListDelimiter = yamlCfg.ListDelimiter
	}
	if yamlCfg.StrictSections != nil {
		cfg.StrictSections = *yamlCfg.StrictSections
	}
	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}
}

// applyEnvConfig applies environment variable configuration.
func applyEnvConfig(cfg *Config) {
	if file := env("FILE"); file != "" {
		cfg.File = file
	}

	if delims := strings.Fields(env("DELIMITERS")); len(delims) > 0 {
		cfg.Delimiters = delims
	}

	if prefixes := strings.Fields(env("COMMENT_PREFIXES")); len(prefixes) > 0 {
		cfg.CommentPrefixes = prefixes
	}

	if prefixes := strings.Fields(env("INLINE_COMMENT_PREFIXES")); len(prefixes) > 0 {
		cfg.InlineCommentPrefixes = prefixes
	}

	if sep := env("LIST_DELIMITER"); sep != "" {
		cfg.ListDelimiter = sep
	}

	if section := env("DEFAULT_SECTION"); section != "" {
		cfg.DefaultSection = section
	}

	if enc := env("ENCODING"); enc != "" {
		cfg.Encoding = enc
	}

	if strict := env("STRICT_SECTIONS"); strict != "" {
		if value, err := strconv.ParseBool(strict); err == nil {
			cfg.StrictSections = value
		}
	}

	if level := env("LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}
}

func env(name string) string {
	return strings.TrimSpace(os.Getenv(envPrefix + name))
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) {
	if overrides.File != nil && *overrides.File != "" {
		cfg.File = *overrides.File
	}
	if len(overrides.Delimiters) > 0 {
		cfg.Delimiters = overrides.Delimiters
	}
	if overrides.DefaultSection != nil && *overrides.DefaultSection != "" {
		cfg.DefaultSection = *overrides.DefaultSection
	}
	if overrides.Encoding != nil && *overrides.Encoding != "" {
		cfg.Encoding = *overrides.Encoding
	}
	if overrides.ListDelimiter != nil && *overrides.ListDelimiter != "" {
		cfg.ListDelimiter = *overrides.ListDelimiter
	}
	if overrides.StrictSections != nil {
		cfg.StrictSections = *overrides.StrictSections
	}
	if overrides.LogLevel != nil && *overrides.LogLevel != "" {
		cfg.LogLevel = *overrides.LogLevel
	}
}

// validateConfig validates the final configuration.
func validateConfig(cfg Config) error {
	if cfg.File == "" {
		return errors.New("no INI file given (use --file, the YAML file key or TYPEDINI_FILE)")
	}
	for _, d := range cfg.Delimiters {
		if strings.TrimSpace(d) == "" {
			return errors.New("key/value delimiters must not be blank")
		}
	}
	if len(cfg.Delimiters) == 0 {
		return errors.New("at least one key/value delimiter is required")
	}
	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	return nil
}

// ReaderOptions translates the configuration into typedini options.
func (c Config) ReaderOptions() []typedini.Option {
	return []typedini.Option{
		typedini.WithDelimiters(c.Delimiters...),
		typedini.WithCommentPrefixes(c.CommentPrefixes...),
		typedini.WithInlineCommentPrefixes(c.InlineCommentPrefixes...),
		typedini.WithDefaultSection(c.DefaultSection),
		typedini.WithEncoding(c.Encoding),
		typedini.WithListDelimiter(c.ListDelimiter),
		typedini.WithStrictSections(c.StrictSections),
	}
}
