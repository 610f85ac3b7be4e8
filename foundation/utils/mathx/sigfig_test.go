// File: sigfig_test.go
// Title: Unit Tests for Counting and Notation
// Description: Tests the sanitizer, the notation scanner, the significant
//              figure counter and the decimal place extractor.
// Author: msto63
// Version: v0.3.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.3.0: Initial test implementation

package mathx

import (
	"testing"

	mdwerror "github.com/msto63/sigfig/foundation/core/error"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"unchanged", "1.20", "1.20"},
		{"surrounding whitespace", "  42 \n", "42"},
		{"thousands separators", "1,234,567.8", "1234567.8"},
		{"inner whitespace", "1 000. 5", "1000.5"},
		{"tabs", "\t-3.0\te2", "-3.0e2"},
		{"empty", "", ""},
		{"only separators", " , , ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseNotation(t *testing.T) {
	tests := []struct {
		input string
		want  Notation
	}{
		{"123", Notation{Integer: "123"}},
		{"-0.0030", Notation{Negative: true, Integer: "0", Fraction: "0030", HasPoint: true}},
		{"+.5", Notation{Fraction: "5", HasPoint: true}},
		{"100.", Notation{Integer: "100", HasPoint: true}},
		{"1.20e3", Notation{Kind: NotationScientific, Integer: "1", Fraction: "20", HasPoint: true, Exponent: 3, ExponentText: "3"}},
		{"6.02E+23", Notation{Kind: NotationScientific, Integer: "6", Fraction: "02", HasPoint: true, Exponent: 23, ExponentText: "+23"}},
		{"5e-7", Notation{Kind: NotationScientific, Integer: "5", Exponent: -7, ExponentText: "-7"}},
		{"1e99999999999999999999", Notation{Kind: NotationScientific, Integer: "1", Exponent: MaxExponent, ExponentText: "99999999999999999999"}},
		{"2.50e-99999999999999999999", Notation{Kind: NotationScientific, Integer: "2", Fraction: "50", HasPoint: true, Exponent: -MaxExponent, ExponentText: "-99999999999999999999"}},
		{"3e+5000000000", Notation{Kind: NotationScientific, Integer: "3", Exponent: MaxExponent, ExponentText: "+5000000000"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseNotation(tt.input)
			if !ok {
				t.Fatalf("ParseNotation(%q) rejected valid input", tt.input)
			}
			if got != tt.want {
				t.Errorf("ParseNotation(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseNotationRejects(t *testing.T) {
	invalid := []string{
		"", ".", "-", "+", "e5", "1e", "1e+", "1.2.3", "abc", "1,0",
		"--1", "0x10", "Infinity", "NaN", "1e5.0", "12a",
	}

	for _, input := range invalid {
		t.Run(input, func(t *testing.T) {
			if _, ok := ParseNotation(input); ok {
				t.Errorf("ParseNotation(%q) accepted invalid input", input)
			}
		})
	}
}

func TestIsValidNumber(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"1,234.5", true},
		{"  -3.0e2 ", true},
		{".5", true},
		{"7.", true},
		{"1e-400", true},
		{"1e400", false},
		{"1e99999999999999999999", false},
		{"2.50e-99999999999999999999", true},
		{"-1e309", false},
		{"", false},
		{"   ", false},
		{"12abc", false},
		{"Infinity", false},
		{"1/2", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsValidNumber(tt.input); got != tt.want {
				t.Errorf("IsValidNumber(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseNumber(t *testing.T) {
	v, err := ParseNumber(" 1,200.5 ")
	if err != nil {
		t.Fatalf("ParseNumber unexpected error: %v", err)
	}
	if v != 1200.5 {
		t.Errorf("ParseNumber = %v, want 1200.5", v)
	}

	_, err = ParseNumber("twelve")
	if err == nil {
		t.Fatal("ParseNumber(\"twelve\") expected error")
	}
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidNumber) {
		t.Errorf("ParseNumber error code = %v, want %v", mdwerror.GetCode(err), mdwerror.CodeInvalidNumber)
	}

	if _, err := ParseNumber("1e999"); err == nil {
		t.Error("ParseNumber(\"1e999\") expected overflow error")
	}
}

func TestCountSignificantFigures(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		// reference table
		{"0.004560", 4},
		{"100.", 3},
		{"1000.", 4},
		{"-0.0030", 2},
		{" .0050", 2},
		{"1.20e3", 3},
		{"1.200E-2", 4},
		{"0.00", 2},
		{"0", 1},
		{"100", 1},
		{"405", 3},
		{"1020", 3},
		{"1234", 4},

		{"0.", 1},
		{".0", 1},
		{"000", 1},
		{"007", 1},
		{"0070", 1},
		{"1.0", 2},
		{"10.50", 4},
		{"1,234,000", 4},
		{"+2.50", 3},
		{"5e3", 1},
		{"0.0e0", 1},
		{"2.50e-99999999999999999999", 3},
		{"1e99999999999999999999", 1},
		{"-4.000E+123456789012345678901234", 4},
		{"0.000e5", 3},
		{"120.0e-3", 4},

		{"", 0},
		{"abc", 0},
		{"1.2.3", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := CountSignificantFigures(tt.input); got != tt.want {
				t.Errorf("CountSignificantFigures(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestCountIgnoresExponent(t *testing.T) {
	for _, input := range []string{"4.50e1", "4.50e12", "4.50E-120", "-4.50e+0"} {
		if got := CountSignificantFigures(input); got != 3 {
			t.Errorf("CountSignificantFigures(%q) = %d, want 3", input, got)
		}
	}
}

func TestDecimalPlaces(t *testing.T) {
	tests := []struct {
		input  string
		want   int
		wantOK bool
	}{
		{"3.45", 2, true},
		{"100", 0, true},
		{"100.", 0, true},
		{"-0.0030", 4, true},
		{".5", 1, true},
		{"1.20e3", -1, true},
		{"2.5E+2", -1, true},
		{"1.5e-3", 4, true},
		{"5e3", -3, true},
		{"1,000.25", 2, true},
		{"1e99999999999999999999", -MaxExponent, true},
		{"2.50e-99999999999999999999", 2 + MaxExponent, true},
		{"abc", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := DecimalPlaces(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("DecimalPlaces(%q) = (%d, %v), want (%d, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestNotationKindString(t *testing.T) {
	if NotationPlain.String() != "plain" || NotationScientific.String() != "scientific" {
		t.Errorf("unexpected kind names %q, %q", NotationPlain, NotationScientific)
	}
	if NotationKind(7).String() != "unknown" {
		t.Errorf("NotationKind(7).String() = %q", NotationKind(7))
	}
}

func TestNotationCoefficient(t *testing.T) {
	n, _ := Analyze("-1.20e3")
	if got := n.Coefficient(); got != "1.20" {
		t.Errorf("Coefficient() = %q, want %q", got, "1.20")
	}
	if n.IsZero() {
		t.Error("IsZero() = true for 1.20e3")
	}
	z, _ := Analyze("0.000")
	if !z.IsZero() {
		t.Error("IsZero() = false for 0.000")
	}
}
