// Package numeric defines rules for numeric literals and converters from matched text to Go numbers.
package numeric

import (
	"errors"
	"strconv"
	"unsafe"

	"golang.org/x/exp/constraints"

	"github.com/ava12/minilexer"
	"github.com/ava12/minilexer/cursor"
	"github.com/ava12/minilexer/grammar"
)

var (
	sign = grammar.Or(grammar.Char('-'), grammar.Char('+'))

	// Unsigned matches decimal digits.
	Unsigned = grammar.Named("unsigned", grammar.OneOrMore(grammar.Digit))

	// Signed matches decimal digits with optional sign.
	Signed = grammar.Named("signed", grammar.DirectSequence(grammar.Optional(sign), grammar.OneOrMore(grammar.Digit)))

	fraction = grammar.Optional(grammar.DirectSequence(grammar.Char('.'), grammar.OneOrMore(grammar.Digit)))
	exponent = grammar.Optional(grammar.DirectSequence(grammar.Or(grammar.Char('e'), grammar.Char('E')), Signed))

	// Float matches signed number with optional fraction and exponent, e.g. "-1.5e-3".
	Float = grammar.Named("float", grammar.DirectSequence(Signed, fraction, exponent))

	// UnsignedFloat matches Float with no leading sign.
	UnsignedFloat = grammar.Named("unsigned float", grammar.DirectSequence(Unsigned, fraction, exponent))
)

// ParseSigned consumes a Signed literal and converts it to T.
// Fails with minilexer.SyntaxError and does not move if the number does not fit in T.
func ParseSigned[T constraints.Signed](s *cursor.State) (T, error) {
	return parse(s, Signed, func(text string) (T, error) {
		v, e := strconv.ParseInt(text, 10, bitSize[T]())
		return T(v), e
	})
}

// ParseUnsigned consumes an Unsigned literal and converts it to T.
// Fails with minilexer.SyntaxError and does not move if the number does not fit in T.
func ParseUnsigned[T constraints.Unsigned](s *cursor.State) (T, error) {
	return parse(s, Unsigned, func(text string) (T, error) {
		v, e := strconv.ParseUint(text, 10, bitSize[T]())
		return T(v), e
	})
}

// ParseFloat consumes a Float literal and converts it to T.
// Fails with minilexer.SyntaxError and does not move if the number is out of T range.
func ParseFloat[T constraints.Float](s *cursor.State) (T, error) {
	return parse(s, Float, func(text string) (T, error) {
		v, e := strconv.ParseFloat(text, bitSize[T]())
		return T(v), e
	})
}

func bitSize[T constraints.Integer | constraints.Float]() int {
	var x T
	return int(unsafe.Sizeof(x)) * 8
}

func parse[T any](s *cursor.State, r grammar.Rule, convert func(string) (T, error)) (T, error) {
	return cursor.Rewinding(s, func() (T, error) {
		start := s.Index()
		text, e := r.Consume(s)
		if e != nil {
			var zero T
			return zero, e
		}

		v, e := convert(text)
		if e != nil {
			var ne *strconv.NumError
			if errors.As(e, &ne) {
				e = ne.Err
			}
			return v, s.ErrorfAt(start, minilexer.SyntaxError, "invalid %s %q: %s", r.Name(), text, e)
		}

		return v, nil
	})
}
