package cursor

import (
	"strconv"

	"github.com/ava12/minilexer"
	"github.com/ava12/minilexer/source"
)

// Errorf creates an error of given code at current position.
func (s *State) Errorf(code int, msg string, params ...any) *minilexer.Error {
	return s.ErrorfAt(s.index, code, msg, params...)
}

// ErrorfAt creates an error of given code at given position.
func (s *State) ErrorfAt(index, code int, msg string, params ...any) *minilexer.Error {
	if index < 0 {
		index = 0
	} else if index > s.end {
		index = s.end
	}
	return minilexer.FormatErrorPos(source.NewPos(s.src, index), code, msg, params...)
}

// Unexpected creates an error describing current character (or the end of input) as not matching expected.
func (s *State) Unexpected(expected string) *minilexer.Error {
	r, e := s.Peek()
	if e != nil {
		return s.Errorf(minilexer.EndOfInputError, "unexpected end of input, expecting %s", expected)
	}

	res := s.Errorf(minilexer.UnexpectedCharError, "unexpected %s, expecting %s", quoteRune(r), expected)
	res.Char = r
	return res
}

func (s *State) endOfInput() *minilexer.Error {
	return s.Errorf(minilexer.EndOfInputError, "unexpected end of input")
}

func quoteRune(r rune) string {
	return strconv.QuoteRune(r)
}
