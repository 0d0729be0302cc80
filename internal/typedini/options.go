package typedini

import "go.uber.org/zap"

const (
	// DefaultSectionName is the fallback section consulted when an option is missing locally.
	DefaultSectionName = "default"
	defaultListDelim   = ","
)

// Option configures the behaviour of a Reader.
type Option func(*settings)

type settings struct {
	delimiters     []string
	commentPrefix  []string
	inlinePrefix   []string
	defaultSection string
	encoding       string
	listDelimiter  string
	strictSections bool
	logger         *zap.Logger
}

func defaultSettings() settings {
	return settings{
		delimiters:     []string{"="},
		commentPrefix:  []string{"#"},
		inlinePrefix:   []string{";"},
		defaultSection: DefaultSectionName,
		encoding:       defaultEncoding,
		listDelimiter:  defaultListDelim,
		logger:         zap.NewNop(),
	}
}

// WithDelimiters sets the key/value separators. The earliest match on a line wins.
func WithDelimiters(delims ...string) Option {
	return func(s *settings) {
		if d := nonEmpty(delims); len(d) > 0 {
			s.delimiters = d
		}
	}
}

// WithCommentPrefixes sets the prefixes that mark a whole-line comment.
func WithCommentPrefixes(prefixes ...string) Option {
	return func(s *settings) {
		s.commentPrefix = nonEmpty(prefixes)
	}
}

// WithInlineCommentPrefixes sets the prefixes that start a comment mid-line.
// Passing none disables inline comments.
func WithInlineCommentPrefixes(prefixes ...string) Option {
	return func(s *settings) {
		s.inlinePrefix = nonEmpty(prefixes)
	}
}

// WithDefaultSection renames the fallback section.
func WithDefaultSection(name string) Option {
	return func(s *settings) {
		if name != "" {
			s.defaultSection = name
		}
	}
}

// WithEncoding sets the text encoding of the source, e.g. "utf-8" or "iso-8859-1".
func WithEncoding(name string) Option {
	return func(s *settings) {
		if name != "" {
			s.encoding = name
		}
	}
}

// WithListDelimiter sets the separator between list items.
func WithListDelimiter(sep string) Option {
	return func(s *settings) {
		if sep != "" {
			s.listDelimiter = sep
		}
	}
}

// WithStrictSections makes a repeated section header a load error instead of merging.
func WithStrictSections(strict bool) Option {
	return func(s *settings) {
		s.strictSections = strict
	}
}

// WithLogger routes load diagnostics to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
