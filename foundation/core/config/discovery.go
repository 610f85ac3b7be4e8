// File: discovery.go
// Title: Configuration File Discovery
// Description: Searches well-known locations for a configuration file.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation
// - 2026-10-15 v0.2.0: Optional discovery returns an env-only config
// - 2026-10-15 v0.3.0: Discovery only locates files, decoding is separate

package config

import (
	"os"
	"path/filepath"
	"strings"

	mdwerror "github.com/msto63/sigfig/foundation/core/error"
)

// SearchPath lists the directories, base names and extensions tried in order
type SearchPath struct {
	Dirs       []string
	Names      []string
	Extensions []string
}

// DefaultSearchPath returns the lookup order for sigfig configuration files:
// working directory, ./config, the user config directory and /etc/sigfig.
func DefaultSearchPath() SearchPath {
	dirs := []string{".", "config"}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(dir, "sigfig"))
	}
	dirs = append(dirs, "/etc/sigfig")
	return SearchPath{
		Dirs:       dirs,
		Names:      []string{"sigfig", "config"},
		Extensions: []string{".toml", ".yaml", ".yml"},
	}
}

// Candidates returns every path tried, in order
func (s SearchPath) Candidates() []string {
	out := make([]string, 0, len(s.Dirs)*len(s.Names)*len(s.Extensions))
	for _, dir := range s.Dirs {
		for _, name := range s.Names {
			for _, ext := range s.Extensions {
				out = append(out, filepath.Join(dir, name+ext))
			}
		}
	}
	return out
}

// Find returns the first candidate that exists as a regular file
func (s SearchPath) Find() (string, error) {
	candidates := s.Candidates()
	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path, nil
		}
	}
	return "", mdwerror.New("no configuration file found").
		WithCode(mdwerror.CodeNotFound).
		WithOperation("config.Find").
		WithDetail("searched", strings.Join(candidates, ", "))
}
