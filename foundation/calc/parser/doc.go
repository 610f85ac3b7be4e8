// File: doc.go
// Title: Expression Parser Package Documentation
// Description: Tokenizer and shunting-yard parser for arithmetic expressions.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial parser implementation
// - 2026-10-15 v0.2.0: Arithmetic expressions compiled to postfix programs

/*
Package parser turns arithmetic expressions into postfix programs.

Processing happens in three steps:

  • Filter drops every character outside the expression alphabet
  • Lexer splits the filtered text into numbers, operators and parentheses
  • Parse reorders the tokens with the shunting-yard algorithm

The resulting Program contains no parentheses and is executed by the
executor package. Precedence is + - (1), * / (2), ^ and unary minus (3);
^ and unary minus associate to the right.
*/
package parser
