// Package lexer defines pull-based tokenizer with one token of lookahead.
//
// Tokenizer does not know how tokens look like, it relies on a Recognizer.
// Current token is cached and recomputed whenever cursor position differs from the position
// the token was recognized at, so the cursor may be moved by any code, not only by tokenizer.
package lexer

import (
	"fmt"
	"iter"

	"github.com/ava12/minilexer"
	"github.com/ava12/minilexer/cursor"
)

// Recognizer supplies token recognition for Tokenizer.
// T may be a bare token kind or a structured token like Token.
type Recognizer[T any] interface {
	// EOF returns end-of-stream token.
	EOF() T

	// IsEOF reports whether t is an end-of-stream token.
	IsEOF(t T) bool

	// Recognize returns the token at current cursor position or false if there is none.
	// Any cursor movement made by Recognize is undone.
	Recognize(s *cursor.State) (T, bool)

	// Length returns number of characters occupied by token, 0 for end-of-stream token.
	// Any other token must occupy at least one character.
	Length(t T) int

	// Describe returns token description for error messages.
	Describe(t T) string

	// Same reports whether a and b are tokens of the same kind.
	Same(a, b T) bool
}

// Tokenizer produces tokens from cursor state. Whitespace between tokens is skipped.
// Unrecognized input is reported as end-of-stream token, use AtEnd to tell it from the real end of text.
// Not safe for concurrent use.
type Tokenizer[T any] struct {
	state    *cursor.State
	rec      Recognizer[T]
	lastSeen int
	current  T
}

func New[T any](s *cursor.State, rec Recognizer[T]) *Tokenizer[T] {
	return &Tokenizer[T]{state: s, rec: rec, lastSeen: -1}
}

func NewString[T any](text string, rec Recognizer[T]) *Tokenizer[T] {
	return New(cursor.New(text), rec)
}

func (t *Tokenizer[T]) State() *cursor.State {
	return t.state
}

func (t *Tokenizer[T]) recognize() {
	t.state.SkipWhitespace()
	index := t.state.Index()
	token, found := t.rec.Recognize(t.state)
	t.state.SetIndex(index)
	if !found {
		token = t.rec.EOF()
	}
	t.current = token
	t.lastSeen = index
}

// Token returns current token without consuming it.
func (t *Tokenizer[T]) Token() T {
	if t.state.Index() != t.lastSeen {
		t.recognize()
	}
	return t.current
}

// IsEOF reports whether current token is end-of-stream token.
func (t *Tokenizer[T]) IsEOF() bool {
	return t.rec.IsEOF(t.Token())
}

// AtEnd reports whether all the text (except trailing whitespace) is consumed.
func (t *Tokenizer[T]) AtEnd() bool {
	t.Token()
	return t.state.IsEOF()
}

// Skip advances past current token. Does nothing at the end of stream.
// Panics if recognizer reports an empty token or a token longer than the rest of text.
func (t *Tokenizer[T]) Skip() {
	token := t.Token()
	if t.rec.IsEOF(token) {
		t.recognize()
		return
	}

	n := t.rec.Length(token)
	if n <= 0 {
		panic(fmt.Sprintf("lexer: token %s has length %d", t.rec.Describe(token), n))
	}
	if e := t.state.AdvanceLength(n); e != nil {
		panic(fmt.Sprintf("lexer: token %s does not fit in text: %s", t.rec.Describe(token), e))
	}
	t.recognize()
}

// Next returns current token and advances past it.
func (t *Tokenizer[T]) Next() T {
	token := t.Token()
	t.Skip()
	return token
}

// Advance consumes and returns current token if it is of the same kind as expected.
// Returns SyntaxError and changes nothing otherwise.
func (t *Tokenizer[T]) Advance(expected T) (T, error) {
	return t.AdvanceMatching(func(token T) bool {
		return t.rec.Same(token, expected)
	}, t.rec.Describe(expected))
}

// AdvanceMatching consumes and returns current token if it satisfies p.
// Returns SyntaxError mentioning expected and changes nothing otherwise.
func (t *Tokenizer[T]) AdvanceMatching(p func(T) bool, expected string) (T, error) {
	token := t.Token()
	if !p(token) {
		var zero T
		return zero, t.state.Errorf(minilexer.SyntaxError, "expecting %s, got %s", expected, t.rec.Describe(token))
	}

	t.Skip()
	return token, nil
}

// ConsumeIf consumes and returns current token if it is of the same kind as expected.
// Returns false and changes nothing otherwise.
func (t *Tokenizer[T]) ConsumeIf(expected T) (T, bool) {
	token := t.Token()
	if !t.rec.Same(token, expected) {
		var zero T
		return zero, false
	}

	t.Skip()
	return token, true
}

// Tokens returns a sequence of remaining tokens not including end-of-stream token.
// The sequence consumes tokens and cannot be restarted; once it is exhausted tokenizer is at the end of stream.
func (t *Tokenizer[T]) Tokens() iter.Seq[T] {
	return func(yield func(T) bool) {
		for !t.IsEOF() {
			if !yield(t.Next()) {
				return
			}
		}
	}
}

// Backtracker holds tokenizer state captured at some moment.
type Backtracker[T any] struct {
	t        *Tokenizer[T]
	index    int
	lastSeen int
	current  T
}

// Backtracker captures cursor position and current token.
func (t *Tokenizer[T]) Backtracker() Backtracker[T] {
	return Backtracker[T]{t, t.state.Index(), t.lastSeen, t.current}
}

// Index returns captured cursor position.
func (b Backtracker[T]) Index() int {
	return b.index
}

// Restore returns tokenizer to captured state. Each call is effective, a Backtracker may be restored any number of times.
func (b Backtracker[T]) Restore() {
	b.t.state.SetIndex(b.index)
	b.t.lastSeen = b.lastSeen
	b.t.current = b.current
}
