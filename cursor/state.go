// Package cursor defines mutable cursor state over immutable source text.
//
// Positions are byte offsets into source text, always on code point boundaries.
// Lengths and distances are counted in code points.
// State is not safe for concurrent use.
package cursor

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ava12/minilexer"
	"github.com/ava12/minilexer/source"
)

// State is a cursor over source text.
type State struct {
	src   *source.Source
	text  string
	index int
	end   int
}

// New creates a cursor over unnamed text.
func New(text string) *State {
	return NewSource(source.New("", text))
}

// NewSource creates a cursor positioned at the start of src.
func NewSource(src *source.Source) *State {
	return &State{src: src, text: src.Text(), end: src.Len()}
}

func (s *State) Source() *source.Source {
	return s.src
}

func (s *State) Text() string {
	return s.text
}

// Index returns current position.
func (s *State) Index() int {
	return s.index
}

// SetIndex moves cursor to given position.
// Panics if index is out of text bounds or not on a code point boundary.
func (s *State) SetIndex(index int) {
	if index < 0 || index > s.end || (index < s.end && !utf8.RuneStart(s.text[index])) {
		panic(fmt.Sprintf("cursor: invalid index %d", index))
	}
	s.index = index
}

func (s *State) Start() int {
	return 0
}

func (s *State) End() int {
	return s.end
}

func (s *State) IsEOF() bool {
	return s.index >= s.end
}

// Remaining returns unread text.
func (s *State) Remaining() string {
	return s.text[s.index:s.end]
}

// SourcePos returns current position with line and column information.
func (s *State) SourcePos() source.Pos {
	return source.NewPos(s.src, s.index)
}

// Distance returns number of code points between positions, negative if to precedes from.
func (s *State) Distance(from, to int) int {
	if from > to {
		return -utf8.RuneCountInString(s.text[to:from])
	}
	return utf8.RuneCountInString(s.text[from:to])
}

// Peek returns current character without advancing.
func (s *State) Peek() (rune, error) {
	if s.index >= s.end {
		return 0, s.endOfInput()
	}

	r, _ := utf8.DecodeRuneInString(s.text[s.index:])
	return r, nil
}

// PeekAt returns the character n code points ahead of current position, PeekAt(0) is the same as Peek().
func (s *State) PeekAt(n int) (rune, error) {
	size, f := prefixSize(s.text[s.index:s.end], n)
	if !f || s.index+size >= s.end {
		return 0, s.endOfInput()
	}

	r, _ := utf8.DecodeRuneInString(s.text[s.index+size:])
	return r, nil
}

// Next returns current character and advances past it.
func (s *State) Next() (rune, error) {
	if s.index >= s.end {
		return 0, s.endOfInput()
	}

	r, size := utf8.DecodeRuneInString(s.text[s.index:])
	s.index += size
	return r, nil
}

// Advance moves one code point forward.
func (s *State) Advance() error {
	_, e := s.Next()
	return e
}

// AdvanceWhile moves forward while p holds for current character. Never fails.
func (s *State) AdvanceWhile(p func(rune) bool) {
	for s.index < s.end {
		r, size := utf8.DecodeRuneInString(s.text[s.index:])
		if !p(r) {
			return
		}
		s.index += size
	}
}

// AdvanceUntil moves forward until p holds for current character. Never fails.
func (s *State) AdvanceUntil(p func(rune) bool) {
	s.AdvanceWhile(func(r rune) bool {
		return !p(r)
	})
}

// ConsumeWhile works like AdvanceWhile, returning traversed text.
func (s *State) ConsumeWhile(p func(rune) bool) string {
	start := s.index
	s.AdvanceWhile(p)
	return s.text[start:s.index]
}

// ConsumeUntil works like AdvanceUntil, returning traversed text.
func (s *State) ConsumeUntil(p func(rune) bool) string {
	start := s.index
	s.AdvanceUntil(p)
	return s.text[start:s.index]
}

func (s *State) SkipWhitespace() {
	s.AdvanceWhile(IsWhitespace)
}

// AdvanceLength moves n code points forward.
// Fails and does not move if fewer than n code points remain. Panics if n <= 0.
func (s *State) AdvanceLength(n int) error {
	_, e := s.ConsumeLength(n)
	return e
}

// ConsumeLength works like AdvanceLength, returning traversed text.
func (s *State) ConsumeLength(n int) (string, error) {
	if n <= 0 {
		panic(fmt.Sprintf("cursor: non-positive length %d", n))
	}

	size, f := prefixSize(s.text[s.index:s.end], n)
	if !f {
		return "", s.Errorf(minilexer.EndOfInputError, "unexpected end of input, expecting %d more characters", n)
	}

	start := s.index
	s.index += size
	return s.text[start:s.index], nil
}

// ConsumeRest advances to the end of text, returning traversed text.
func (s *State) ConsumeRest() string {
	start := s.index
	s.index = s.end
	return s.text[start:]
}

// AdvanceIf advances past text if input at current position matches it.
// Returns false and does not move otherwise.
func (s *State) AdvanceIf(text string, mode Compare) bool {
	size, f := s.match(text, mode)
	if f {
		s.index += size
	}
	return f
}

// CheckNext reports whether input at current position matches text.
func (s *State) CheckNext(text string, mode Compare) bool {
	_, f := s.match(text, mode)
	return f
}

// IsNext reports whether current character is r.
func (s *State) IsNext(r rune) bool {
	return s.IsNextMatching(func(c rune) bool {
		return c == r
	})
}

// IsNextMatching reports whether current character satisfies p, false at the end of input.
func (s *State) IsNextMatching(p func(rune) bool) bool {
	r, e := s.Peek()
	return e == nil && p(r)
}

// AdvanceExpecting advances past current character if it is r, fails and does not move otherwise.
func (s *State) AdvanceExpecting(r rune) error {
	return s.AdvanceValidating(func(c rune) bool {
		return c == r
	}, quoteRune(r))
}

// AdvanceValidating advances past current character if it satisfies p, fails and does not move otherwise.
// expected describes acceptable characters for error message.
func (s *State) AdvanceValidating(p func(rune) bool, expected string) error {
	r, e := s.Peek()
	if e != nil {
		return s.Unexpected(expected)
	}
	if !p(r) {
		return s.Unexpected(expected)
	}

	return s.Advance()
}

// FindNext returns the position of the next occurrence of text at or after current position.
// Does not move.
func (s *State) FindNext(text string) (int, bool) {
	i := strings.Index(s.text[s.index:s.end], text)
	if i < 0 {
		return 0, false
	}
	return s.index + i, true
}

// FindNextRune works like FindNext for single character.
func (s *State) FindNextRune(r rune) (int, bool) {
	return s.FindNext(string(r))
}

// SkipToNext moves to the next occurrence of text, fails and does not move if there is none.
func (s *State) SkipToNext(text string) error {
	i, f := s.FindNext(text)
	if !f {
		return s.Errorf(minilexer.NotFoundError, "%q not found", text)
	}

	s.index = i
	return nil
}
