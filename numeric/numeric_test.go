package numeric

import (
	"math"
	"testing"

	"github.com/ava12/minilexer"
	"github.com/ava12/minilexer/cursor"
	"github.com/ava12/minilexer/internal/test"
)

func TestParseSigned(t *testing.T) {
	samples := []struct {
		input string
		value int8
		index int
		err   int
	}{
		{"127", 127, 3, 0},
		{"-128)", -128, 4, 0},
		{"+12abc", 12, 3, 0},
		{"128", 0, 0, minilexer.SyntaxError},
		{"-", 0, 0, minilexer.EndOfInputError},
		{"x", 0, 0, minilexer.UnexpectedCharError},
	}

	for i, sample := range samples {
		s := cursor.New(sample.input)
		v, e := ParseSigned[int8](s)
		if sample.err != 0 {
			test.Assert(t, minilexer.IsCode(e, sample.err), "sample #%d: expecting error %d, got %v", i, sample.err, e)
		} else {
			test.Assert(t, e == nil && v == sample.value, "sample #%d: expecting %d, got %d (%v)", i, sample.value, v, e)
		}
		test.Assert(t, s.Index() == sample.index, "sample #%d: expecting index %d, got %d", i, sample.index, s.Index())
	}
}

func TestParseUnsigned(t *testing.T) {
	s := cursor.New("65535 65536 +1")
	v, e := ParseUnsigned[uint16](s)
	test.ExpectNoError(t, e)
	test.Expect(t, v == 65535, 65535, v)

	s.SkipWhitespace()
	_, e = ParseUnsigned[uint16](s)
	test.ExpectErrorCode(t, minilexer.SyntaxError, e)
	test.ExpectString(t, `invalid unsigned "65536": value out of range at line 1 col 7`, e.Error())
	test.ExpectInt(t, 6, s.Index())

	big, e := ParseUnsigned[uint64](s)
	test.ExpectNoError(t, e)
	test.Expect(t, big == 65536, 65536, big)

	s.SkipWhitespace()
	_, e = ParseUnsigned[uint](s)
	test.ExpectErrorCode(t, minilexer.UnexpectedCharError, e)
}

func TestParseFloat(t *testing.T) {
	samples := []struct {
		input string
		value float64
		rest  string
	}{
		{"3.25e2", 325, ""},
		{"-0.5", -0.5, ""},
		{"1.", 1, "."},
		{"2e", 2, "e"},
		{"7E-1x", 0.7, "x"},
	}

	for i, sample := range samples {
		s := cursor.New(sample.input)
		v, e := ParseFloat[float64](s)
		test.Assert(t, e == nil && math.Abs(v-sample.value) < 1e-12, "sample #%d: expecting %g, got %g (%v)", i, sample.value, v, e)
		test.Assert(t, s.Remaining() == sample.rest, "sample #%d: expecting %q left, got %q", i, sample.rest, s.Remaining())
	}

	s := cursor.New("1e400")
	_, e := ParseFloat[float64](s)
	test.ExpectErrorCode(t, minilexer.SyntaxError, e)
	test.ExpectInt(t, 0, s.Index())

	_, e = ParseFloat[float32](cursor.New("1e39"))
	test.ExpectErrorCode(t, minilexer.SyntaxError, e)
	f, e := ParseFloat[float32](cursor.New("1e38"))
	test.ExpectNoError(t, e)
	test.Expect(t, f > 9e37, 1e38, f)

	_, e = ParseFloat[float64](cursor.New(".5"))
	test.ExpectErrorCode(t, minilexer.UnexpectedCharError, e)
}

func TestRuleDescriptions(t *testing.T) {
	test.ExpectString(t, "unsigned", Unsigned.String())
	test.ExpectString(t, "signed ~ ('.' ~ [0-9]+)? ~ (('e' | 'E') ~ signed)?", Float.Members()[0].String())
}

func TestUnsignedFloat(t *testing.T) {
	text, e := UnsignedFloat.Consume(cursor.New("12.5E+3x"))
	test.ExpectNoError(t, e)
	test.ExpectString(t, "12.5E+3", text)

	_, e = UnsignedFloat.Consume(cursor.New("-1"))
	test.ExpectErrorCode(t, minilexer.UnexpectedCharError, e)
}
