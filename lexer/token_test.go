package lexer

import (
	"slices"
	"testing"

	"github.com/ava12/minilexer"
	"github.com/ava12/minilexer/grammar"
	"github.com/ava12/minilexer/internal/test"
)

func exprRecognizer() *RuleRecognizer[string] {
	return NewRuleRecognizer("eof",
		TokenRule[string]{"keyword", grammar.Or(grammar.Keyword("if"), grammar.Keyword("then"))},
		TokenRule[string]{"ident", grammar.DirectSequence(grammar.Letter, grammar.ZeroOrMore(grammar.Or(grammar.Letter, grammar.Digit)))},
		TokenRule[string]{"number", grammar.OneOrMore(grammar.Digit)},
		TokenRule[string]{"op", grammar.Or(grammar.Keyword("=="), grammar.Char('='), grammar.Char('+'))},
		TokenRule[string]{"empty", grammar.ZeroOrMore(grammar.Char('~'))},
	)
}

func TestRuleRecognizer(t *testing.T) {
	tz := NewString("if x1 == 42+ifx", exprRecognizer())
	tokens := slices.Collect(tz.Tokens())
	expected := []Token[string]{
		{"if", "keyword", 0, 2},
		{"x1", "ident", 3, 5},
		{"==", "op", 6, 8},
		{"42", "number", 9, 11},
		{"+", "op", 11, 12},
		{"ifx", "ident", 12, 15},
	}
	test.ExpectDiff(t, expected, tokens)

	eof := tz.Token()
	test.ExpectBool(t, true, tz.IsEOF())
	test.ExpectBool(t, false, eof.HasRange())
	test.ExpectInt(t, 0, exprRecognizer().Length(eof))
}

func TestRuleRecognizerAdvance(t *testing.T) {
	tz := NewString("x = añ", exprRecognizer())
	tok, e := tz.Advance(OfKind("ident"))
	test.ExpectNoError(t, e)
	test.ExpectString(t, "x", tok.Text)

	_, e = tz.Advance(OfKind("number"))
	test.ExpectErrorCode(t, minilexer.SyntaxError, e)
	test.ExpectString(t, `expecting number, got op "=" at line 1 col 3`, e.Error())

	_, f := tz.ConsumeIf(OfKind("op"))
	test.ExpectBool(t, true, f)
	tok = tz.Next()
	test.ExpectString(t, "a", tok.Text)
	test.ExpectBool(t, true, tz.IsEOF())
	test.ExpectBool(t, false, tz.AtEnd())
	test.ExpectString(t, "ñ", tz.State().Remaining())

	_, e = tz.Advance(OfKind("ident"))
	test.ExpectString(t, "expecting ident, got end of input at line 1 col 6", e.Error())
}

func TestRuleRecognizerUnicodeLength(t *testing.T) {
	r := NewRuleRecognizer(0, TokenRule[int]{1, grammar.OneOrMore(grammar.Char('ä'))})
	tz := NewString("ää ä", r)
	tok := tz.Next()
	test.ExpectString(t, "ää", tok.Text)
	test.ExpectInt(t, 2, r.Length(tok))
	test.ExpectInt(t, 5, tz.State().Index())
	test.ExpectString(t, "ä", tz.Next().Text)
	test.ExpectBool(t, true, tz.IsEOF())
}
