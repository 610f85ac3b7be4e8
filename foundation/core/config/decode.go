// File: decode.go
// Title: Configuration File Decoding
// Description: Decodes a TOML or YAML file into a caller supplied struct. The
//              format follows the file extension; unknown extensions are
//              read as TOML.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-15 v0.2.0: Removed watching, validation rules and caches
// - 2026-10-15 v0.3.0: Decode into typed structs instead of a key tree

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	mdwerror "github.com/msto63/sigfig/foundation/core/error"
	"gopkg.in/yaml.v3"
)

// Format identifies a configuration file syntax
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

// String returns the lower case format name
func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "toml"
}

// FormatOf picks the format from the file extension
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatTOML
}

// Decode reads path and unmarshals it into v. A missing file yields
// CodeNotFound, a syntax error CodeInvalidConfig.
func Decode(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		code := mdwerror.CodeConfigError
		if os.IsNotExist(err) {
			code = mdwerror.CodeNotFound
		}
		return mdwerror.Wrap(err, fmt.Sprintf("cannot read config %s", path)).
			WithCode(code).
			WithOperation("config.Decode").
			WithDetail("path", path)
	}
	return DecodeBytes(data, FormatOf(path), v)
}

// DecodeBytes unmarshals data in the given format into v
func DecodeBytes(data []byte, format Format, v interface{}) error {
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, v)
	default:
		_, err = toml.Decode(string(data), v)
	}
	if err != nil {
		return mdwerror.Wrap(err, format.String()+" parse error").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Decode").
			WithDetail("format", format.String())
	}
	return nil
}
