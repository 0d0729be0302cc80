package typedini

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"go.uber.org/zap"
)

// Reader loads an INI source and serves typed, section-scoped lookups.
// A Reader is not safe for concurrent Load calls.
type Reader struct {
	name     string
	data     []byte
	fromFile bool
	cfg      settings
	tbl      *table
}

// New returns a Reader for the INI file at path. Nothing is read until Load.
func New(path string, opts ...Option) *Reader {
	return newReader(path, nil, true, opts)
}

// NewFromBytes returns a Reader over an in-memory source. name labels errors.
func NewFromBytes(name string, data []byte, opts ...Option) *Reader {
	buf := make([]byte, len(data))
	copy(buf, data)
	return newReader(name, buf, false, opts)
}

func newReader(name string, data []byte, fromFile bool, opts []Option) *Reader {
	cfg := defaultSettings()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Reader{name: name, data: data, fromFile: fromFile, cfg: cfg}
}

// Source returns the path or name the Reader was built with.
func (r *Reader) Source() string { return r.name }

// DefaultSection returns the name of the fallback section.
func (r *Reader) DefaultSection() string { return r.cfg.defaultSection }

// Loaded reports whether Load has succeeded at least once.
func (r *Reader) Loaded() bool { return r.tbl != nil }

// Load reads and parses the source, replacing any previously loaded table.
// On failure the previous table is left untouched.
func (r *Reader) Load() error {
	raw, err := r.readSource()
	if err != nil {
		return err
	}

	enc, err := lookupEncoding(r.cfg.encoding)
	if err != nil {
		return err
	}
	text, err := decode(enc, raw)
	if err != nil {
		return fmt.Errorf("%s: %w", r.name, err)
	}

	res, err := parse(r.name, text, r.cfg)
	if err != nil {
		return err
	}

	for _, name := range res.duplicates {
		r.cfg.logger.Warn("duplicate section merged",
			zap.String("source", r.name),
			zap.String("section", name),
		)
	}
	r.tbl = res.table
	r.cfg.logger.Debug("config loaded",
		zap.String("source", r.name),
		zap.Int("lines", res.lines),
		zap.Int("sections", len(res.table.order)),
	)
	return nil
}

func (r *Reader) readSource() ([]byte, error) {
	if !r.fromFile {
		return r.data, nil
	}
	f, err := os.Open(r.name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", ErrSourceNotFound, r.name, err)
		}
		return nil, fmt.Errorf("open source: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat source: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrSourceNotFound, r.name)
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}
	return data, nil
}
