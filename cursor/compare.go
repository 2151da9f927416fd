package cursor

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Compare selects how literal text is compared with input.
// Modes may be combined: IgnoreCase | IgnoreDiacritics.
type Compare int

// Exact compares code points as is.
const Exact Compare = 0

const (
	// IgnoreCase compares Unicode case-folded text.
	IgnoreCase Compare = 1 << iota

	// IgnoreDiacritics compares text with combining marks removed.
	IgnoreDiacritics

	IgnoreCaseAndDiacritics = IgnoreCase | IgnoreDiacritics
)

func (c Compare) fold(text string) string {
	if c&IgnoreDiacritics != 0 {
		t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
		folded, _, e := transform.String(t, text)
		if e == nil {
			text = folded
		}
	}
	if c&IgnoreCase != 0 {
		text = cases.Fold().String(text)
	}
	return text
}

// match returns byte length of input prefix matching text.
// Insensitive modes compare a window of input having the same number of code points as text.
func (s *State) match(text string, mode Compare) (int, bool) {
	rest := s.text[s.index:s.end]
	if mode == Exact {
		return len(text), strings.HasPrefix(rest, text)
	}

	size, f := prefixSize(rest, utf8.RuneCountInString(text))
	if !f {
		return 0, false
	}

	return size, mode.fold(rest[:size]) == mode.fold(text)
}

// prefixSize returns byte size of the first n code points of text.
func prefixSize(text string, n int) (int, bool) {
	size := 0
	for ; n > 0; n-- {
		if size >= len(text) {
			return size, false
		}
		_, l := utf8.DecodeRuneInString(text[size:])
		size += l
	}
	return size, true
}
