// File: benchmark_test.go
// Title: Benchmarks for mathx
// Description: Performance benchmarks for counting, rounding and combining.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial benchmarks for decimal arithmetic
// - 2026-10-15 v0.3.0: Benchmarks for significant figure operations

package mathx

import "testing"

func BenchmarkSanitize(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Sanitize("  1,234,567.890 ")
	}
}

func BenchmarkCountSignificantFigures(b *testing.B) {
	for i := 0; i < b.N; i++ {
		CountSignificantFigures("0.004560")
	}
}

func BenchmarkDecimalPlaces(b *testing.B) {
	for i := 0; i < b.N; i++ {
		DecimalPlaces("1.20e3")
	}
}

func BenchmarkRoundToSignificantFigures(b *testing.B) {
	for i := 0; i < b.N; i++ {
		RoundToSignificantFigures(123456.789, 4)
	}
}

func BenchmarkRoundToDecimalPlaces(b *testing.B) {
	for i := 0; i < b.N; i++ {
		RoundToDecimalPlaces(3.14159265, 3)
	}
}

func BenchmarkFormatNumber(b *testing.B) {
	for i := 0; i < b.N; i++ {
		FormatNumber(0.1 + 0.2)
	}
}

func BenchmarkCombine(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Combine("4.5", "2.10", OperatorMultiply)
	}
}
