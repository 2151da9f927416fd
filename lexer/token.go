package lexer

import (
	"fmt"
	"unicode/utf8"

	"github.com/ava12/minilexer/cursor"
	"github.com/ava12/minilexer/grammar"
)

// Token is a structured token of kind K.
// End-of-stream token has no source range, Start and End are -1.
type Token[K comparable] struct {
	Text  string
	Kind  K
	Start int
	End   int
}

// OfKind returns a token to compare kinds with, e.g. as an argument for Tokenizer.Advance.
func OfKind[K comparable](kind K) Token[K] {
	return Token[K]{Kind: kind, Start: -1, End: -1}
}

// HasRange reports whether token comes from source text.
func (t Token[K]) HasRange() bool {
	return t.Start >= 0
}

func (t Token[K]) String() string {
	if t.Text == "" {
		return fmt.Sprint(t.Kind)
	}
	return fmt.Sprintf("%v %q", t.Kind, t.Text)
}

// TokenRule tells that text matched by Rule is a token of Kind.
type TokenRule[K comparable] struct {
	Kind K
	Rule grammar.Rule
}

// RuleRecognizer recognizes tokens using grammar rules.
// The longest match wins, the earliest rule wins a tie. Matches of zero length are ignored.
type RuleRecognizer[K comparable] struct {
	eof   K
	rules []TokenRule[K]
}

// NewRuleRecognizer creates a recognizer, eof is the kind of end-of-stream token.
func NewRuleRecognizer[K comparable](eof K, rules ...TokenRule[K]) *RuleRecognizer[K] {
	return &RuleRecognizer[K]{eof: eof, rules: append([]TokenRule[K](nil), rules...)}
}

func (r *RuleRecognizer[K]) EOF() Token[K] {
	return OfKind(r.eof)
}

func (r *RuleRecognizer[K]) IsEOF(t Token[K]) bool {
	return t.Kind == r.eof
}

func (r *RuleRecognizer[K]) Recognize(s *cursor.State) (Token[K], bool) {
	best, bestLen := -1, 0
	for i, tr := range r.rules {
		n, f := tr.Rule.MaximumLength(s)
		if f && n > bestLen {
			best, bestLen = i, n
		}
	}
	if best < 0 {
		return Token[K]{}, false
	}

	start := s.Index()
	text, e := cursor.Temporary(s, func() (string, error) {
		return s.ConsumeLength(bestLen)
	})
	if e != nil {
		return Token[K]{}, false
	}

	return Token[K]{Text: text, Kind: r.rules[best].Kind, Start: start, End: start + len(text)}, true
}

func (r *RuleRecognizer[K]) Length(t Token[K]) int {
	if !t.HasRange() {
		return 0
	}
	return utf8.RuneCountInString(t.Text)
}

func (r *RuleRecognizer[K]) Describe(t Token[K]) string {
	if r.IsEOF(t) {
		return "end of input"
	}
	return t.String()
}

func (r *RuleRecognizer[K]) Same(a, b Token[K]) bool {
	return a.Kind == b.Kind
}
