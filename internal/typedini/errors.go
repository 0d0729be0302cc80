package typedini

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceNotFound is returned by Load when the source file does not exist.
	ErrSourceNotFound = errors.New("config source not found")
	// ErrMalformedLine is returned when a line is neither a header, a comment nor a key/value pair.
	ErrMalformedLine = errors.New("malformed line")
	// ErrDuplicateSection is returned in strict mode when a section header repeats.
	ErrDuplicateSection = errors.New("duplicate section")
	// ErrOptionNotFound is returned when neither the section nor the default section holds the option.
	ErrOptionNotFound = errors.New("option not found")
	// ErrTypeCoercion is returned when a raw value cannot be converted to the requested type.
	ErrTypeCoercion = errors.New("type coercion failed")
	// ErrNotLoaded is returned by accessors invoked before a successful Load.
	ErrNotLoaded = errors.New("config not loaded")
)

// MalformedLineError reports the offending line of a source.
type MalformedLineError struct {
	Source string
	Line   int
	Text   string
	Reason string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("%s:%d: %s: %q", e.Source, e.Line, e.Reason, e.Text)
}

func (e *MalformedLineError) Unwrap() error { return ErrMalformedLine }

// DuplicateSectionError reports a repeated section header in strict mode.
type DuplicateSectionError struct {
	Source  string
	Line    int
	Section string
}

func (e *DuplicateSectionError) Error() string {
	return fmt.Sprintf("%s:%d: section %q already defined", e.Source, e.Line, e.Section)
}

func (e *DuplicateSectionError) Unwrap() error { return ErrDuplicateSection }

// OptionNotFoundError names the section and option that could not be resolved.
type OptionNotFoundError struct {
	Section string
	Option  string
}

func (e *OptionNotFoundError) Error() string {
	return fmt.Sprintf("option %q not found in section %q", e.Option, e.Section)
}

func (e *OptionNotFoundError) Unwrap() error { return ErrOptionNotFound }

// CoercionError describes a failed conversion. Value is the raw option
// value. For list kinds Token and Index locate the offending item; for
// scalars Token equals Value and Index is -1.
type CoercionError struct {
	Section string
	Option  string
	Value   string
	Token   string
	Kind    Kind
	Index   int
	Err     error
}

func (e *CoercionError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("[%s] %s = %q: token %d %q is not a valid %s", e.Section, e.Option, e.Value, e.Index, e.Token, e.Kind.elem())
	}
	return fmt.Sprintf("[%s] %s: %q is not a valid %s", e.Section, e.Option, e.Value, e.Kind)
}

// Unwrap exposes both ErrTypeCoercion and the underlying strconv error.
func (e *CoercionError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrTypeCoercion}
	}
	return []error{ErrTypeCoercion, e.Err}
}
