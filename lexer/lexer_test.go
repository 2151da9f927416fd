package lexer

import (
	"slices"
	"strings"
	"testing"

	"github.com/ava12/minilexer"
	"github.com/ava12/minilexer/cursor"
	"github.com/ava12/minilexer/internal/test"
)

type kind int

const (
	eofKind kind = iota
	openKind
	commaKind
	closeKind
)

var kindNames = map[kind]string{
	eofKind:   "EOF",
	openKind:  "OPEN",
	commaKind: "COMMA",
	closeKind: "CLOSE",
}

func (k kind) String() string {
	return kindNames[k]
}

type parens struct{}

func (parens) EOF() kind {
	return eofKind
}

func (parens) IsEOF(k kind) bool {
	return k == eofKind
}

func (parens) Recognize(s *cursor.State) (kind, bool) {
	r, e := s.Next()
	if e != nil {
		return eofKind, false
	}

	switch r {
	case '(':
		return openKind, true
	case ',':
		return commaKind, true
	case ')':
		return closeKind, true
	default:
		return eofKind, false
	}
}

func (parens) Length(k kind) int {
	if k == eofKind {
		return 0
	}
	return 1
}

func (parens) Describe(k kind) string {
	return k.String()
}

func (parens) Same(a, b kind) bool {
	return a == b
}

func TestTokenSequence(t *testing.T) {
	for _, src := range []string{"(,)", " ( ,\n) ", "(\t,)"} {
		tz := NewString(src, parens{})
		tokens := slices.Collect(tz.Tokens())
		test.ExpectDiff(t, []kind{openKind, commaKind, closeKind}, tokens)
		test.ExpectBool(t, true, tz.IsEOF())
		test.ExpectBool(t, true, tz.AtEnd())

		index := tz.State().Index()
		test.Expect(t, tz.Next() == eofKind, eofKind, tz.Token())
		test.Expect(t, tz.Next() == eofKind, eofKind, tz.Token())
		test.ExpectInt(t, index, tz.State().Index())
		test.ExpectInt(t, 0, len(slices.Collect(tz.Tokens())))
	}
}

func TestEmpty(t *testing.T) {
	for _, src := range []string{"", " ", " \t\r\n "} {
		tz := NewString(src, parens{})
		test.ExpectBool(t, true, tz.IsEOF())
		test.ExpectBool(t, true, tz.AtEnd())
	}
}

func TestUnrecognizedInput(t *testing.T) {
	tz := NewString("( x", parens{})
	test.Expect(t, tz.Next() == openKind, openKind, tz.Token())
	test.ExpectBool(t, true, tz.IsEOF())
	test.ExpectBool(t, false, tz.AtEnd())
	test.ExpectString(t, "x", tz.State().Remaining())
}

func TestBacktrackerIsAlwaysEffective(t *testing.T) {
	tz := NewString("(,)", parens{})
	test.Expect(t, tz.Token() == openKind, openKind, tz.Token())
	b := tz.Backtracker()

	tz.Next()
	tz.Next()
	test.Expect(t, tz.Token() == closeKind, closeKind, tz.Token())
	b.Restore()
	test.ExpectInt(t, b.Index(), tz.State().Index())
	test.Expect(t, tz.Token() == openKind, openKind, tz.Token())

	tz.Next()
	test.Expect(t, tz.Token() == commaKind, commaKind, tz.Token())
	b.Restore()
	test.ExpectInt(t, 0, tz.State().Index())
	test.Expect(t, tz.Token() == openKind, openKind, tz.Token())
}

func TestExternalCursorMovement(t *testing.T) {
	tz := NewString("(,)", parens{})
	test.Expect(t, tz.Token() == openKind, openKind, tz.Token())
	tz.State().SetIndex(2)
	test.Expect(t, tz.Token() == closeKind, closeKind, tz.Token())
	tz.State().SetIndex(1)
	test.Expect(t, tz.Next() == commaKind, commaKind, tz.Token())
}

func TestAdvance(t *testing.T) {
	tz := NewString("(,)", parens{})
	k, e := tz.Advance(openKind)
	test.ExpectNoError(t, e)
	test.Expect(t, k == openKind, openKind, k)

	_, e = tz.Advance(closeKind)
	test.ExpectErrorCode(t, minilexer.SyntaxError, e)
	test.Assert(t, strings.Contains(e.Error(), "expecting CLOSE, got COMMA"), "unexpected message: %s", e)
	test.ExpectInt(t, 1, tz.State().Index())

	k, e = tz.AdvanceMatching(func(k kind) bool {
		return k != openKind
	}, "anything but OPEN")
	test.ExpectNoError(t, e)
	test.Expect(t, k == commaKind, commaKind, k)

	_, e = tz.AdvanceMatching(func(k kind) bool {
		return k == openKind
	}, "OPEN")
	test.ExpectErrorCode(t, minilexer.SyntaxError, e)
}

func TestConsumeIf(t *testing.T) {
	tz := NewString("(,)", parens{})
	_, f := tz.ConsumeIf(commaKind)
	test.ExpectBool(t, false, f)
	test.ExpectInt(t, 0, tz.State().Index())
	test.Expect(t, tz.Token() == openKind, openKind, tz.Token())

	k, f := tz.ConsumeIf(openKind)
	test.ExpectBool(t, true, f)
	test.Expect(t, k == openKind, openKind, k)
	test.Expect(t, tz.Token() == commaKind, commaKind, tz.Token())
}

func TestTokensStopsEarly(t *testing.T) {
	tz := NewString("(,)", parens{})
	for k := range tz.Tokens() {
		if k == commaKind {
			break
		}
	}
	test.Expect(t, tz.Token() == closeKind, closeKind, tz.Token())
}

type emptyParens struct {
	parens
}

func (emptyParens) Length(kind) int {
	return 0
}

func TestEmptyTokenPanics(t *testing.T) {
	tz := NewString("(,)", emptyParens{})
	test.Expect(t, tz.Token() == openKind, openKind, tz.Token())

	defer func() {
		test.Assert(t, recover() != nil, "expecting panic")
		test.ExpectInt(t, 0, tz.State().Index())
	}()
	for range tz.Tokens() {
	}
}

func TestSkipAtEnd(t *testing.T) {
	tz := NewString("( ", parens{})
	tz.Skip()
	test.ExpectBool(t, true, tz.IsEOF())
	tz.Skip()
	test.ExpectBool(t, true, tz.AtEnd())
}
