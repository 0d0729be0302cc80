package typedini

import "fmt"

// Get returns the raw value of option, looking in section first and in the
// default section second.
func (r *Reader) Get(section, option string) (string, error) {
	if r.tbl == nil {
		return "", ErrNotLoaded
	}
	v, ok := r.tbl.lookup(section, option)
	if !ok {
		return "", &OptionNotFoundError{Section: section, Option: option}
	}
	return v, nil
}

// Lookup resolves option and converts it to kind. The dynamic type of the
// result is string, int, float64, bool, []string, []int or []float64.
func (r *Reader) Lookup(section, option string, kind Kind) (any, error) {
	conv, ok := coercers[kind]
	if !ok {
		return nil, fmt.Errorf("unknown kind %s", kind)
	}
	raw, err := r.Get(section, option)
	if err != nil {
		return nil, err
	}
	v, fail := conv(raw, r.cfg.listDelimiter)
	if fail != nil {
		return nil, &CoercionError{
			Section: section,
			Option:  option,
			Value:   raw,
			Token:   fail.token,
			Kind:    kind,
			Index:   fail.index,
			Err:     fail.err,
		}
	}
	return v, nil
}

func lookupAs[T any](r *Reader, section, option string, kind Kind) (T, error) {
	var zero T
	v, err := r.Lookup(section, option, kind)
	if err != nil {
		return zero, err
	}
	return v.(T), nil
}

// GetInt returns option as an int. Hex (0x), octal (0o) and binary (0b)
// literals are accepted.
func (r *Reader) GetInt(section, option string) (int, error) {
	return lookupAs[int](r, section, option, KindInt)
}

// GetFloat returns option as a float64.
func (r *Reader) GetFloat(section, option string) (float64, error) {
	return lookupAs[float64](r, section, option, KindFloat)
}

// GetBool returns option as a bool. Accepted values are 1/yes/true/on and
// 0/no/false/off in any letter case.
func (r *Reader) GetBool(section, option string) (bool, error) {
	return lookupAs[bool](r, section, option, KindBool)
}

// GetList splits option on the list delimiter. Tokens are trimmed and empty
// tokens are kept; an empty value yields an empty slice.
func (r *Reader) GetList(section, option string) ([]string, error) {
	return lookupAs[[]string](r, section, option, KindList)
}

// GetIntList is GetList followed by integer conversion of every token.
func (r *Reader) GetIntList(section, option string) ([]int, error) {
	return lookupAs[[]int](r, section, option, KindIntList)
}

// GetFloatList is GetList followed by float conversion of every token.
func (r *Reader) GetFloatList(section, option string) ([]float64, error) {
	return lookupAs[[]float64](r, section, option, KindFloatList)
}

// StringOr returns the raw value of option or fallback when it cannot be resolved.
func (r *Reader) StringOr(section, option, fallback string) string {
	if v, err := r.Get(section, option); err == nil {
		return v
	}
	return fallback
}

// IntOr returns option as an int or fallback when it is missing or invalid.
func (r *Reader) IntOr(section, option string, fallback int) int {
	if v, err := r.GetInt(section, option); err == nil {
		return v
	}
	return fallback
}

// FloatOr returns option as a float64 or fallback when it is missing or invalid.
func (r *Reader) FloatOr(section, option string, fallback float64) float64 {
	if v, err := r.GetFloat(section, option); err == nil {
		return v
	}
	return fallback
}

// BoolOr returns option as a bool or fallback when it is missing or invalid.
func (r *Reader) BoolOr(section, option string, fallback bool) bool {
	if v, err := r.GetBool(section, option); err == nil {
		return v
	}
	return fallback
}

// HasSection reports whether a non-default section was declared in the source.
func (r *Reader) HasSection(section string) bool {
	if r.tbl == nil || r.tbl.isDefault(section) {
		return false
	}
	_, ok := r.tbl.section(section)
	return ok
}

// HasOption reports whether option resolves in section, default fallback included.
func (r *Reader) HasOption(section, option string) bool {
	if r.tbl == nil {
		return false
	}
	_, ok := r.tbl.lookup(section, option)
	return ok
}

// Sections lists the declared sections in source order, default section excluded.
func (r *Reader) Sections() ([]string, error) {
	if r.tbl == nil {
		return nil, ErrNotLoaded
	}
	return r.tbl.sectionNames(), nil
}

// Options lists the options set locally in section, in source order.
// Options inherited from the default section are not included.
func (r *Reader) Options(section string) ([]string, error) {
	if r.tbl == nil {
		return nil, ErrNotLoaded
	}
	s, ok := r.tbl.section(section)
	if !ok {
		return []string{}, nil
	}
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out, nil
}

// Items returns the effective options of section: default section values
// overlaid with the section's own.
func (r *Reader) Items(section string) (map[string]string, error) {
	if r.tbl == nil {
		return nil, ErrNotLoaded
	}
	out := make(map[string]string)
	if d, ok := r.tbl.sections[r.tbl.defaultKey]; ok {
		for k, v := range d.values {
			out[k] = v
		}
	}
	if s, ok := r.tbl.section(section); ok {
		for k, v := range s.values {
			out[k] = v
		}
	}
	return out, nil
}
