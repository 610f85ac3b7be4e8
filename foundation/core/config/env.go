// File: env.go
// Title: Environment Overrides
// Description: Typed lookups of environment variables derived from dotted
//              configuration keys (precision.rounding_mode with prefix SIGFIG
//              becomes SIGFIG_PRECISION_ROUNDING_MODE).
// Author: msto63
// Version: v0.3.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.3.0: Split from the key tree loader

package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Env resolves dotted keys against prefixed environment variables.
// Unset or unparsable variables leave the fallback untouched.
type Env struct {
	prefix string
}

// NewEnv returns an Env for the given prefix; an empty prefix is allowed
func NewEnv(prefix string) Env {
	return Env{prefix: strings.ToUpper(prefix)}
}

// Key returns the variable name consulted for a dotted key
func (e Env) Key(key string) string {
	name := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if e.prefix == "" {
		return name
	}
	return e.prefix + "_" + name
}

// Lookup returns the raw value and whether it is set and non-empty
func (e Env) Lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(e.Key(key))
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func (e Env) String(key, fallback string) string {
	if v, ok := e.Lookup(key); ok {
		return v
	}
	return fallback
}

func (e Env) Int(key string, fallback int) int {
	if v, ok := e.Lookup(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func (e Env) Bool(key string, fallback bool) bool {
	if v, ok := e.Lookup(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func (e Env) Duration(key string, fallback time.Duration) time.Duration {
	if v, ok := e.Lookup(key); ok {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

// StringSlice splits a comma separated value and drops empty items
func (e Env) StringSlice(key string, fallback []string) []string {
	v, ok := e.Lookup(key)
	if !ok {
		return fallback
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
