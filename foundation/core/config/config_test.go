// File: config_test.go
// Title: Configuration Module Tests
// Description: Tests for decoding, environment lookups and file discovery.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test implementation
// - 2026-10-15 v0.2.0: Tests for sigfig keys and discovery
// - 2026-10-15 v0.3.0: Typed decoding and Env

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	mdwerror "github.com/msto63/sigfig/foundation/core/error"
)

type testConfig struct {
	Precision struct {
		RoundingMode string `toml:"rounding_mode" yaml:"rounding_mode"`
	} `toml:"precision" yaml:"precision"`
	History struct {
		Enabled    bool `toml:"enabled" yaml:"enabled"`
		MaxEntries int  `toml:"max_entries" yaml:"max_entries"`
	} `toml:"history" yaml:"history"`
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return path
}

func TestDecode(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		file    string
		content string
		mode    string
		max     int
		enabled bool
	}{
		{
			name:    "toml",
			file:    "sigfig.toml",
			content: "[precision]\nrounding_mode = \"half_even\"\n[history]\nenabled = true\nmax_entries = 40\n",
			mode:    "half_even",
			max:     40,
			enabled: true,
		},
		{
			name:    "yaml",
			file:    "sigfig.yaml",
			content: "precision:\n  rounding_mode: half_up\nhistory:\n  max_entries: 25\n",
			mode:    "half_up",
			max:     25,
		},
		{
			name:    "yml",
			file:    "sigfig.yml",
			content: "history:\n  enabled: true\n",
			enabled: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg testConfig
			if err := Decode(writeFile(t, dir, tt.file, tt.content), &cfg); err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if cfg.Precision.RoundingMode != tt.mode || cfg.History.MaxEntries != tt.max || cfg.History.Enabled != tt.enabled {
				t.Errorf("Decode() = %+v", cfg)
			}
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	var cfg testConfig

	err := Decode(filepath.Join(t.TempDir(), "missing.toml"), &cfg)
	if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("missing file: error = %v, want CodeNotFound", err)
	}

	broken := writeFile(t, t.TempDir(), "broken.toml", "[precision\nrounding_mode =")
	err = Decode(broken, &cfg)
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
		t.Errorf("broken file: error = %v, want CodeInvalidConfig", err)
	}

	err = DecodeBytes([]byte("history: [1"), FormatYAML, &cfg)
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
		t.Errorf("broken yaml: error = %v, want CodeInvalidConfig", err)
	}
}

func TestFormatOf(t *testing.T) {
	tests := map[string]Format{
		"a.toml": FormatTOML,
		"a.YAML": FormatYAML,
		"a.yml":  FormatYAML,
		"a.conf": FormatTOML,
		"sigfig": FormatTOML,
	}
	for path, want := range tests {
		if got := FormatOf(path); got != want {
			t.Errorf("FormatOf(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestEnv(t *testing.T) {
	env := NewEnv("sigfig")
	if got := env.Key("history.max_entries"); got != "SIGFIG_HISTORY_MAX_ENTRIES" {
		t.Errorf("Key() = %q", got)
	}
	if got := NewEnv("").Key("http.port"); got != "HTTP_PORT" {
		t.Errorf("Key() without prefix = %q", got)
	}

	t.Setenv("SIGFIG_HTTP_PORT", "7070")
	t.Setenv("SIGFIG_HTTP_HOST", "  ")
	t.Setenv("SIGFIG_HISTORY_ENABLED", "false")
	t.Setenv("SIGFIG_HISTORY_MAX_ENTRIES", "many")
	t.Setenv("SIGFIG_HTTP_READ_TIMEOUT", "3s")
	t.Setenv("SIGFIG_HTTP_ALLOWED_ORIGINS", "http://a, ,http://b")

	if got := env.Int("http.port", 8080); got != 7070 {
		t.Errorf("Int() = %d", got)
	}
	if got := env.String("http.host", "127.0.0.1"); got != "127.0.0.1" {
		t.Errorf("blank value should fall back, got %q", got)
	}
	if env.Bool("history.enabled", true) {
		t.Error("Bool() should be false")
	}
	if got := env.Int("history.max_entries", 40); got != 40 {
		t.Errorf("unparsable Int() = %d, want fallback", got)
	}
	if got := env.Duration("http.read_timeout", time.Second); got != 3*time.Second {
		t.Errorf("Duration() = %v", got)
	}
	want := []string{"http://a", "http://b"}
	if got := env.StringSlice("http.allowed_origins", nil); !reflect.DeepEqual(got, want) {
		t.Errorf("StringSlice() = %v, want %v", got, want)
	}
}

func TestSearchPath(t *testing.T) {
	dir := t.TempDir()
	sp := SearchPath{
		Dirs:       []string{dir, filepath.Join(dir, "config")},
		Names:      []string{"sigfig", "config"},
		Extensions: []string{".toml", ".yaml"},
	}
	if n := len(sp.Candidates()); n != 8 {
		t.Fatalf("Candidates() = %d paths, want 8", n)
	}

	if _, err := sp.Find(); !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("Find() error = %v, want CodeNotFound", err)
	}

	// a directory with a matching name is skipped
	if err := os.Mkdir(filepath.Join(dir, "sigfig.toml"), 0755); err != nil {
		t.Fatal(err)
	}
	want := writeFile(t, dir, "config/sigfig.yaml", "history:\n  max_entries: 1\n")
	writeFile(t, dir, "config/config.toml", "")

	got, err := sp.Find()
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if got != want {
		t.Errorf("Find() = %q, want %q", got, want)
	}
}

func TestDefaultSearchPath(t *testing.T) {
	sp := DefaultSearchPath()
	c := sp.Candidates()
	if len(c) == 0 || c[0] != "sigfig.toml" {
		t.Errorf("first candidate = %v, want sigfig.toml", c)
	}
	if sp.Dirs[len(sp.Dirs)-1] != "/etc/sigfig" {
		t.Errorf("last dir = %q", sp.Dirs[len(sp.Dirs)-1])
	}
}
