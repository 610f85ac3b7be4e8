// File: stringx_test.go
// Title: Tests for String Helpers
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-15

package stringx

import (
	"fmt"
	"testing"
)

func TestIsBlank(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"\t\n ", true},
		{" 1 ", false},
		{"(", false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.input), func(t *testing.T) {
			if got := IsBlank(tt.input); got != tt.want {
				t.Errorf("IsBlank(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFirstNonBlank(t *testing.T) {
	if got := FirstNonBlank("", "  ", "dark", "light"); got != "dark" {
		t.Errorf("FirstNonBlank() = %q, want dark", got)
	}
	if got := FirstNonBlank(" ", ""); got != "" {
		t.Errorf("FirstNonBlank() = %q, want empty", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input    string
		maxLen   int
		ellipsis string
		want     string
	}{
		{"4.5 × 2.10 = 9.5", 40, "…", "4.5 × 2.10 = 9.5"},
		{"4.5 × 2.10 = 9.5", 6, "…", "4.5 ×…"},
		{"123456", 3, "...", "123"},
		{"abc", 0, "…", ""},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := Truncate(tt.input, tt.maxLen, tt.ellipsis); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}

func ExampleTruncate() {
	fmt.Println(Truncate("Count: 0.004560 → 4 sig figs", 15, "…"))
	// Output: Count: 0.00456…
}
