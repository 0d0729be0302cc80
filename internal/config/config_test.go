package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/eugenenazirov/typedini/internal/typedini"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{"FILE", "DELIMITERS", "COMMENT_PREFIXES", "INLINE_COMMENT_PREFIXES", "LIST_DELIMITER", "DEFAULT_SECTION", "ENCODING", "STRICT_SECTIONS", "LOG_LEVEL"} {
		t.Setenv(envPrefix+name, "")
	}
}

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "iniget.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

func ptr[T any](v T) *T { return &v }

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(&CLIOverrides{File: ptr("app.ini")})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	want := Config{
		File:                  "app.ini",
		Delimiters:            []string{"="},
		CommentPrefixes:       []string{"#"},
		InlineCommentPrefixes: []string{";"},
		DefaultSection:        typedini.DefaultSectionName,
		Encoding:              defaultEncoding,
		ListDelimiter:         ",",
		LogLevel:              defaultLogLevel,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("unexpected config (-want +got):\n%s", diff)
	}
}

func TestLoadRequiresFile(t *testing.T) {
	clearEnv(t)

	if _, err := Load(nil); err == nil {
		t.Fatalf("expected error without an INI file")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("TYPEDINI_FILE", "env.ini")
	t.Setenv("TYPEDINI_DELIMITERS", "= :")
	t.Setenv("TYPEDINI_STRICT_SECTIONS", "true")
	t.Setenv("TYPEDINI_LOG_LEVEL", "debug")
	t.Setenv("TYPEDINI_COMMENT_PREFIXES", "# //")
	t.Setenv("TYPEDINI_INLINE_COMMENT_PREFIXES", "; !")
	t.Setenv("TYPEDINI_LIST_DELIMITER", "|")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.File != "env.ini" || !cfg.StrictSections || cfg.LogLevel != "debug" {
		t.Fatalf("env not applied: %+v", cfg)
	}
	if diff := cmp.Diff([]string{"=", ":"}, cfg.Delimiters); diff != "" {
		t.Fatalf("delimiters mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"#", "//"}, cfg.CommentPrefixes); diff != "" {
		t.Fatalf("comment prefixes mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{";", "!"}, cfg.InlineCommentPrefixes); diff != "" {
		t.Fatalf("inline comment prefixes mismatch (-want +got):\n%s", diff)
	}
	if cfg.ListDelimiter != "|" {
		t.Fatalf("expected list delimiter |, got %q", cfg.ListDelimiter)
	}
}

func TestLoadPrecedence(t *testing.T) {
	clearEnv(t)
	t.Setenv("TYPEDINI_FILE", "env.ini")
	t.Setenv("TYPEDINI_ENCODING", "iso-8859-1")

	path := writeYAML(t, `
file: yaml.ini
default_section: common
encoding: windows-1252
inline_comment_prefixes: []
strict_sections: true
`)

	t.Run("yaml over env", func(t *testing.T) {
		cfg, err := Load(&CLIOverrides{ConfigFile: path})
		if err != nil {
			t.Fatalf("Load returned error: %v", err)
		}
		if cfg.File != "yaml.ini" || cfg.Encoding != "windows-1252" || cfg.DefaultSection != "common" {
			t.Fatalf("yaml not applied: %+v", cfg)
		}
		if len(cfg.InlineCommentPrefixes) != 0 {
			t.Fatalf("explicit empty list must disable inline comments, got %v", cfg.InlineCommentPrefixes)
		}
		if !cfg.StrictSections {
			t.Fatalf("expected strict sections from yaml")
		}
	})

	t.Run("cli over yaml", func(t *testing.T) {
		cfg, err := Load(&CLIOverrides{
			ConfigFile:     path,
			File:           ptr("cli.ini"),
			StrictSections: ptr(false),
			Delimiters:     []string{"=", ","},
		})
		if err != nil {
			t.Fatalf("Load returned error: %v", err)
		}
		if cfg.File != "cli.ini" || cfg.StrictSections {
			t.Fatalf("cli not applied: %+v", cfg)
		}
		if diff := cmp.Diff([]string{"=", ","}, cfg.Delimiters); diff != "" {
			t.Fatalf("delimiters mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestLoadInvalid(t *testing.T) {
	clearEnv(t)

	t.Run("missing yaml file", func(t *testing.T) {
		if _, err := Load(&CLIOverrides{ConfigFile: filepath.Join(t.TempDir(), "nope.yaml")}); err == nil {
			t.Fatalf("expected error for missing YAML file")
		}
	})

	t.Run("broken yaml", func(t *testing.T) {
		path := writeYAML(t, "file: [unterminated\n")
		if _, err := Load(&CLIOverrides{ConfigFile: path}); err == nil {
			t.Fatalf("expected error for invalid YAML")
		}
	})

	t.Run("bad log level", func(t *testing.T) {
		if _, err := Load(&CLIOverrides{File: ptr("a.ini"), LogLevel: ptr("chatty")}); err == nil {
			t.Fatalf("expected error for invalid log level")
		}
	})

	t.Run("blank delimiter", func(t *testing.T) {
		if _, err := Load(&CLIOverrides{File: ptr("a.ini"), Delimiters: []string{" "}}); err == nil {
			t.Fatalf("expected error for blank delimiter")
		}
	})
}

func TestReaderOptions(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	ini := filepath.Join(dir, "a.ini")
	if err := os.WriteFile(ini, []byte("[common]\nx : 1\n[model]\ny : 2\n"), 0o600); err != nil {
		t.Fatalf("write ini: %v", err)
	}

	cfg, err := Load(&CLIOverrides{
		File:           ptr(ini),
		Delimiters:     []string{":"},
		DefaultSection: ptr("common"),
	})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	r := typedini.New(cfg.File, cfg.ReaderOptions()...)
	if err := r.Load(); err != nil {
		t.Fatalf("reader Load returned error: %v", err)
	}
	if got, err := r.GetInt("model", "x"); err != nil || got != 1 {
		t.Fatalf("expected x=1 through default section, got %d (%v)", got, err)
	}
}
