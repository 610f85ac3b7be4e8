// File: lexer.go
// Title: Expression Lexical Analyzer (Tokenizer)
// Description: Converts a filtered expression into a stream of number,
//              operator and parenthesis tokens with position information.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial lexer implementation
// - 2026-10-15 v0.2.0: Arithmetic token set, scientific number literals

package parser

import (
	"fmt"
	"strings"
)

// TokenType represents the type of a lexical token
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenNumber
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenCaret
	TokenLeftParen
	TokenRightParen
)

// Token represents a lexical token with position information
type Token struct {
	Type     TokenType // Token type
	Value    string    // Token text
	Position int       // Byte position in the filtered input
}

// String returns a string representation of the token
func (t Token) String() string {
	if t.Type == TokenEOF {
		return "EOF"
	}
	return fmt.Sprintf("%s(%s)", t.Type.String(), t.Value)
}

// String returns a string representation of the token type
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "EOF"
	case TokenNumber:
		return "NUMBER"
	case TokenPlus:
		return "PLUS"
	case TokenMinus:
		return "MINUS"
	case TokenStar:
		return "STAR"
	case TokenSlash:
		return "SLASH"
	case TokenCaret:
		return "CARET"
	case TokenLeftParen:
		return "LEFT_PAREN"
	case TokenRightParen:
		return "RIGHT_PAREN"
	default:
		return "UNKNOWN"
	}
}

// IsOperator reports whether the token is one of + - * / ^
func (tt TokenType) IsOperator() bool {
	return tt >= TokenPlus && tt <= TokenCaret
}

// alphabet is the set of characters an expression may contain
const alphabet = "0123456789eE+-*/^()."

// Filter removes every character that is neither whitespace nor part of the
// expression alphabet.
func Filter(expr string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(alphabet, r) || r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			return r
		}
		return -1
	}, expr)
}

// Lexer performs lexical analysis of a filtered expression
type Lexer struct {
	input    string // Input string
	position int    // Current position in input (points to current char)
	readPos  int    // Current reading position (after current char)
	ch       byte   // Current char under examination
}

// NewLexer creates a new lexer for the given input
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// NextToken returns the next token. Characters that cannot start a token
// (a lone '.', 'e' outside a number) are skipped.
func (l *Lexer) NextToken() Token {
	for {
		l.skipWhitespace()
		pos := l.position

		switch l.ch {
		case 0:
			return Token{Type: TokenEOF, Position: pos}
		case '+':
			return l.single(TokenPlus)
		case '-':
			return l.single(TokenMinus)
		case '*':
			return l.single(TokenStar)
		case '/':
			return l.single(TokenSlash)
		case '^':
			return l.single(TokenCaret)
		case '(':
			return l.single(TokenLeftParen)
		case ')':
			return l.single(TokenRightParen)
		}

		if isDigit(l.ch) || (l.ch == '.' && isDigit(l.peekChar())) {
			return Token{Type: TokenNumber, Value: l.readNumber(), Position: pos}
		}
		l.readChar()
	}
}

// Tokenize returns all tokens up to, but not including, EOF
func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		tok := l.NextToken()
		if tok.Type == TokenEOF {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

// TokenizeInput filters expr and returns its tokens
func TokenizeInput(expr string) []Token {
	return NewLexer(Filter(expr)).Tokenize()
}

func (l *Lexer) single(tt TokenType) Token {
	tok := Token{Type: tt, Value: string(l.ch), Position: l.position}
	l.readChar()
	return tok
}

// readChar reads the next character and advances position
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // EOF
	} else {
		l.ch = l.input[l.readPos]
	}
	l.position = l.readPos
	l.readPos++
}

// peekChar returns the character after the current one
func (l *Lexer) peekChar() byte {
	return l.peekAt(0)
}

func (l *Lexer) peekAt(offset int) byte {
	if l.readPos+offset >= len(l.input) {
		return 0
	}
	return l.input[l.readPos+offset]
}

// readNumber reads digits[.digits][exponent] or .digits[exponent]. The
// exponent is consumed only when at least one digit follows the marker.
func (l *Lexer) readNumber() string {
	start := l.position

	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	if l.ch == 'e' || l.ch == 'E' {
		next := l.peekChar()
		if isDigit(next) || ((next == '+' || next == '-') && isDigit(l.peekAt(1))) {
			l.readChar()
			if l.ch == '+' || l.ch == '-' {
				l.readChar()
			}
			for isDigit(l.ch) {
				l.readChar()
			}
		}
	}

	return l.input[start:l.position]
}

// skipWhitespace skips whitespace characters
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// isDigit checks if the character is a digit
func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
