// Package typedini reads INI-style configuration files and exposes typed,
// section-scoped accessors (string, int, float, bool and comma-separated
// lists of string, int and float).
//
// A Reader is built with New or NewFromBytes and populated by Load. Lookups
// resolve an option in the requested section first and then in the default
// section, whose options are visible from every other section unless
// overridden locally. Values are stored as raw text and converted on each
// access.
//
//	r := typedini.New("config.ini")
//	if err := r.Load(); err != nil {
//		return err
//	}
//	dims, err := r.GetIntList("model", "output_dims")
package typedini
