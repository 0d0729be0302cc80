// Package config resolves the settings of the iniget tool from multiple
// sources (YAML files, environment variables, CLI flags) with precedence:
// CLI flags > YAML config > Environment variables > Defaults. The result
// describes which INI file to open and how its dialect is parsed.
package config
