package application

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/typedini/internal/config"
	"github.com/eugenenazirov/typedini/internal/typedini"
)

// App wires a loaded typedini.Reader to the output formats of the CLI.
type App struct {
	reader *typedini.Reader
	logger *zap.Logger
}

// New opens and loads the INI file described by cfg.
func New(cfg config.Config, logger *zap.Logger) (*App, error) {
	opts := append(cfg.ReaderOptions(), typedini.WithLogger(logger))
	reader := typedini.New(cfg.File, opts...)
	if err := reader.Load(); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", cfg.File, err)
	}

	logger.Debug("config file ready",
		zap.String("file", cfg.File),
		zap.String("default_section", cfg.DefaultSection),
	)

	return &App{reader: reader, logger: logger}, nil
}

// Reader returns the underlying reader.
func (a *App) Reader() *typedini.Reader {
	return a.reader
}

// Lookup resolves section/option as kind and renders it as text. List kinds
// render one item per line.
func (a *App) Lookup(section, option string, kind typedini.Kind) (string, error) {
	v, err := a.reader.Lookup(section, option, kind)
	if err != nil {
		a.logger.Debug("lookup failed",
			zap.String("section", section),
			zap.String("option", option),
			zap.Stringer("type", kind),
			zap.Error(err),
		)
		return "", err
	}
	return render(v), nil
}

// Sections returns the declared section names.
func (a *App) Sections() ([]string, error) {
	return a.reader.Sections()
}

// Options returns the option names set locally in section.
func (a *App) Options(section string) ([]string, error) {
	return a.reader.Options(section)
}

// Dump writes every section's effective options as YAML. The default section
// is emitted first under its own name when it holds any option.
func (a *App) Dump(w io.Writer) error {
	sections, err := a.reader.Sections()
	if err != nil {
		return err
	}

	doc := &yaml.Node{Kind: yaml.MappingNode}
	defaults, err := a.reader.Items(a.reader.DefaultSection())
	if err != nil {
		return err
	}
	if len(defaults) > 0 {
		appendSection(doc, a.reader.DefaultSection(), defaults)
	}
	for _, name := range sections {
		items, err := a.reader.Items(name)
		if err != nil {
			return err
		}
		appendSection(doc, name, items)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode dump: %w", err)
	}
	return enc.Close()
}

func appendSection(doc *yaml.Node, name string, items map[string]string) {
	keys := make([]string, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	body := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range keys {
		body.Content = append(body.Content,
			strNode(k),
			strNode(items[k]),
		)
	}
	doc.Content = append(doc.Content, strNode(name), body)
}

// strNode pins the string tag so names like "null" or "yes" survive a round-trip.
func strNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

func render(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case []string:
		return strings.Join(val, "\n")
	case []int:
		out := make([]string, len(val))
		for i, n := range val {
			out[i] = strconv.Itoa(n)
		}
		return strings.Join(out, "\n")
	case []float64:
		out := make([]string, len(val))
		for i, f := range val {
			out[i] = strconv.FormatFloat(f, 'g', -1, 64)
		}
		return strings.Join(out, "\n")
	default:
		return fmt.Sprint(v)
	}
}
