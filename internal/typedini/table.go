package typedini

import "strings"

// section keeps options in first-seen order; values hold the last occurrence.
type section struct {
	name   string
	keys   []string
	values map[string]string
}

func newSection(name string) *section {
	return &section{name: name, values: make(map[string]string)}
}

func (s *section) set(key, value string) {
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

// table is the parsed section -> option -> raw value store. It is built once
// per Load and never mutated afterwards.
type table struct {
	defaultKey string
	order      []string
	sections   map[string]*section
}

func newTable(defaultSection string) *table {
	return &table{
		defaultKey: fold(defaultSection),
		sections:   make(map[string]*section),
	}
}

// ensure returns the named section, creating it when absent.
func (t *table) ensure(name string) *section {
	key := fold(name)
	if s, ok := t.sections[key]; ok {
		return s
	}
	s := newSection(name)
	t.sections[key] = s
	if key != t.defaultKey {
		t.order = append(t.order, key)
	}
	return s
}

func (t *table) section(name string) (*section, bool) {
	s, ok := t.sections[fold(name)]
	return s, ok
}

// lookup resolves an option in the named section first and the default
// section second.
func (t *table) lookup(sectionName, option string) (string, bool) {
	key := fold(option)
	if s, ok := t.section(sectionName); ok {
		if v, ok := s.values[key]; ok {
			return v, true
		}
	}
	if d, ok := t.sections[t.defaultKey]; ok {
		if v, ok := d.values[key]; ok {
			return v, true
		}
	}
	return "", false
}

func (t *table) sectionNames() []string {
	out := make([]string, 0, len(t.order))
	for _, key := range t.order {
		out = append(out, t.sections[key].name)
	}
	return out
}

func (t *table) isDefault(name string) bool {
	return fold(name) == t.defaultKey
}

func fold(name string) string {
	return strings.ToLower(name)
}
