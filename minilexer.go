/*
Package minilexer is a toolkit for hand-written lexers and parsers built from composable grammar rules.

Consists of subpackages:
  - source: immutable source text and line/column diagnostics;
  - cursor: mutable cursor over a source with scanning primitives, trial scopes, and snapshots;
  - grammar: grammar-rule algebra (character classes, literals, sequences, alternation, repetition, recursion);
  - lexer: pull-based tokenizer with one token of lookahead and backtracking;
  - numeric: integer and floating-point literal rules and converters;
  - langdef: compiles EBNF grammar files into grammar rules;
  - cmd/minilexer: console utility to check, describe, and run grammar files.

Typical usage is:

1. Describe grammar rules in Go using grammar package constructors
(or load them from an EBNF file using langdef).

2. Create a cursor.State for the input text.

3. Apply rules to the state, either directly or via a lexer.Tokenizer.

Rules are immutable values and may be shared, cursor states and tokenizers are not safe for concurrent use.
*/
package minilexer

import (
	"errors"
	"fmt"
)

// Error classes used by subpackages, each class contains up to 99 error codes:
const (
	LexicalErrors = 101 // used by cursor and grammar
	SyntaxErrors  = 201 // used by grammar, lexer, and numeric
	LangDefErrors = 301 // used by langdef
	MiscErrors    = 401
)

// Error codes shared by subpackages:
const (
	// UnexpectedCharError indicates that the character at current position does not fit.
	// Error.Char contains that character.
	UnexpectedCharError = LexicalErrors + iota

	// UnexpectedTextError indicates that the text at current position does not match expected literal.
	UnexpectedTextError

	// EndOfInputError indicates an attempt to read past the end of input.
	EndOfInputError

	// NotFoundError indicates that a forward search failed.
	NotFoundError
)

const (
	// SyntaxError indicates input that matches no expected construction.
	SyntaxError = SyntaxErrors + iota

	// GenericParseError is used when a construction has exhausted its options without a more specific cause.
	GenericParseError
)

// MiscError is used for anything else.
const MiscError = MiscErrors

// Error is the error type used by minilexer subpackages.
type Error struct {
	// Code contains non-zero error code.
	Code int

	// Message contains non-empty error message including source name and position information if provided.
	Message string

	// SourceName contains source name that caused this error or empty string.
	SourceName string

	// Offset contains byte offset in source text or -1.
	Offset int

	// Line contains line number in source text or 0.
	Line int

	// Col contains column number in source text or 0.
	Col int

	// Char contains offending character for UnexpectedCharError or 0.
	Char rune
}

// SourcePos is used to retrieve source name and position information when constructing an error;
// source.Pos implements this interface.
type SourcePos interface {
	// SourceName returns source name or empty string.
	SourceName() string
	// Line returns line number or 0.
	Line() int
	// Col returns column number or 0.
	Col() int
}

type offsetter interface {
	Offset() int
}

// NewError creates new Error structure.
// line and col (and name if not empty) will be added to error message if provided (non-zero).
func NewError(code int, msg, name string, line, col int) *Error {
	if line != 0 && col != 0 {
		if name != "" {
			msg += " in " + name
		}
		msg += fmt.Sprintf(" at line %d col %d", line, col)
	}
	return &Error{Code: code, Message: msg, SourceName: name, Offset: -1, Line: line, Col: col}
}

// Error simply returns Error.Message.
func (e *Error) Error() string {
	return e.Message
}

// FormatError creates Error structure with no source and position information.
// params will be added to error message using fmt.Sprintf function.
func FormatError(code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, "", 0, 0)
}

// FormatErrorPos creates Error structure with source and position information.
// pos must not be nil.
// params will be added to error message using fmt.Sprintf function.
func FormatErrorPos(pos SourcePos, code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	e := NewError(code, msg, pos.SourceName(), pos.Line(), pos.Col())
	if o, f := pos.(offsetter); f {
		e.Offset = o.Offset()
	}
	return e
}

// IsCode reports whether err (or any error it wraps) is an *Error with given code.
func IsCode(err error, code int) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}
