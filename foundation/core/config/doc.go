// Package config provides the low level pieces of configuration loading.
//
// Package: config
// Title: Configuration Loader
// Description: Decodes TOML or YAML files into typed structs, locates the
//              configuration file in well-known directories and resolves
//              dotted keys against prefixed environment variables. The
//              application schema itself lives in pkg/core/config.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-15 v0.2.0: Removed watching, validation rules and caches
// - 2026-10-15 v0.3.0: Typed decoding, separate search path and env lookups
//
// Usage:
//   path, err := config.DefaultSearchPath().Find()
//   err = config.Decode(path, &cfg)
//   env := config.NewEnv("SIGFIG")
//   port := env.Int("http.port", 8080)
package config
