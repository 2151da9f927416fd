// Package source defines immutable source text and position information.
package source

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Source holds named immutable text. Line starts are computed once, so Source is safe for concurrent readers.
type Source struct {
	name       string
	text       string
	lineStarts []int
}

// New creates new Source.
func New(name, text string) *Source {
	s := &Source{name: name, text: text}
	lineCnt := strings.Count(text, "\n") + 1
	s.lineStarts = make([]int, lineCnt)
	j := 1
	for i := 0; i < len(text) && j < lineCnt; i++ {
		if text[i] == '\n' {
			s.lineStarts[j] = i + 1
			j++
		}
	}

	return s
}

func (s *Source) Name() string {
	return s.name
}

func (s *Source) Text() string {
	return s.text
}

// Len returns text length in bytes.
func (s *Source) Len() int {
	return len(s.text)
}

// RuneLen returns text length in code points.
func (s *Source) RuneLen() int {
	return utf8.RuneCountInString(s.text)
}

// LineCol returns 1-based line and column numbers for byte offset, column is counted in code points.
// Offsets outside of text are clamped.
func (s *Source) LineCol(pos int) (line, col int) {
	if pos < 0 {
		pos = 0
	} else if pos > len(s.text) {
		pos = len(s.text)
	}

	lineIndex := sort.SearchInts(s.lineStarts, pos+1) - 1
	lineStart := s.lineStarts[lineIndex]
	return lineIndex + 1, utf8.RuneCountInString(s.text[lineStart:pos]) + 1
}

// Pos returns byte offset for 1-based line and column numbers.
// Non-positive values give 0, values past the end of line or text are clamped to that end.
func (s *Source) Pos(line, col int) int {
	if line <= 0 || col <= 0 {
		return 0
	}

	l := len(s.text)
	if line > len(s.lineStarts) {
		return l
	}

	res := s.lineStarts[line-1]
	for ; col > 1 && res < l; col-- {
		if s.text[res] == '\n' {
			break
		}
		_, size := utf8.DecodeRuneInString(s.text[res:])
		res += size
	}
	return res
}

// Pos is a position in specific source.
type Pos struct {
	src            *Source
	pos, line, col int
}

// NewPos creates position for byte offset in src. src may be nil.
func NewPos(src *Source, pos int) Pos {
	res := Pos{src: src, pos: pos}
	if src != nil {
		res.line, res.col = src.LineCol(pos)
	}
	return res
}

func (p Pos) Source() *Source {
	return p.src
}

func (p Pos) SourceName() string {
	if p.src == nil {
		return ""
	}
	return p.src.Name()
}

func (p Pos) Offset() int {
	return p.pos
}

func (p Pos) Line() int {
	return p.line
}

func (p Pos) Col() int {
	return p.col
}
