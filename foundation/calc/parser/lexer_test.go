// File: lexer_test.go
// Title: Unit Tests for the Expression Lexer
// Description: Tests filtering and tokenizing of arithmetic expressions.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial lexer tests
// - 2026-10-15 v0.2.0: Arithmetic token tests

package parser

import (
	"reflect"
	"testing"
)

func TestFilter(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2 + 3", "2 + 3"},
		{"2a3", "23"},
		{"sqrt(4)", "(4)"},
		{"1,000 * 2", "1000 * 2"},
		{"3 × 4", "3  4"},
		{"1.5E-3", "1.5E-3"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Filter(tt.input); got != tt.want {
				t.Errorf("Filter(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func tokenValues(tokens []Token) []string {
	values := make([]string, len(tokens))
	for i, tok := range tokens {
		values[i] = tok.Value
	}
	return values
}

func TestLexerNumbers(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"42", []string{"42"}},
		{"3.14", []string{"3.14"}},
		{".5", []string{".5"}},
		{"1e3", []string{"1e3"}},
		{"1.5E-3", []string{"1.5E-3"}},
		{".5e+2", []string{".5e+2"}},
		{"2e", []string{"2"}},
		{"2e+", []string{"2", "+"}},
		{"2e-.1", []string{"2", "-", ".1"}},
		{"3.", []string{"3"}},
		{"1.2.3", []string{"1.2", ".3"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := tokenValues(TokenizeInput(tt.input))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TokenizeInput(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLexerTokenTypes(t *testing.T) {
	tokens := NewLexer("(1 + 2) * 3 / 4 ^ 5 - 6").Tokenize()
	want := []TokenType{
		TokenLeftParen, TokenNumber, TokenPlus, TokenNumber, TokenRightParen,
		TokenStar, TokenNumber, TokenSlash, TokenNumber, TokenCaret, TokenNumber,
		TokenMinus, TokenNumber,
	}

	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(want), tokens)
	}
	for i, tok := range tokens {
		if tok.Type != want[i] {
			t.Errorf("token %d = %v, want %v", i, tok.Type, want[i])
		}
	}
}

func TestLexerPositions(t *testing.T) {
	tokens := NewLexer("12 + 3.5").Tokenize()
	positions := []int{0, 3, 5}
	for i, tok := range tokens {
		if tok.Position != positions[i] {
			t.Errorf("token %v position = %d, want %d", tok, tok.Position, positions[i])
		}
	}
}

func TestLexerSkipsStrayCharacters(t *testing.T) {
	if tokens := TokenizeInput("e . E"); len(tokens) != 0 {
		t.Errorf("expected no tokens, got %v", tokens)
	}
	if tokens := TokenizeInput(""); len(tokens) != 0 {
		t.Errorf("expected no tokens for empty input, got %v", tokens)
	}
}

func TestTokenString(t *testing.T) {
	tok := Token{Type: TokenNumber, Value: "1.5"}
	if got := tok.String(); got != "NUMBER(1.5)" {
		t.Errorf("Token.String() = %q", got)
	}
	if got := (Token{Type: TokenEOF}).String(); got != "EOF" {
		t.Errorf("EOF Token.String() = %q", got)
	}
	if !TokenCaret.IsOperator() || TokenLeftParen.IsOperator() {
		t.Error("IsOperator misclassifies tokens")
	}
}
