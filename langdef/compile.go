package langdef

import (
	"slices"
	"unicode/utf8"

	"golang.org/x/exp/ebnf"

	"github.com/ava12/minilexer"
	"github.com/ava12/minilexer/grammar"
)

const maxRangeSize = 256

type compiler struct {
	g       *Grammar
	inline  bool
	lexical bool
	stack   []string
	errs    []*minilexer.Error
}

func (c *compiler) fail(e *minilexer.Error) grammar.Rule {
	c.errs = append(c.errs, e)
	return grammar.Or()
}

func (c *compiler) production(name string) grammar.Rule {
	lexical := c.lexical
	c.lexical = IsLexical(name)
	c.stack = append(c.stack, name)

	res := grammar.Named(name, c.expr(c.g.syntax[name].Expr))

	c.stack = c.stack[:len(c.stack)-1]
	c.lexical = lexical
	return res
}

func (c *compiler) expr(x ebnf.Expression) grammar.Rule {
	switch x := x.(type) {
	case nil:
		return grammar.DirectSequence()

	case *ebnf.Token:
		return token(x.String)

	case *ebnf.Range:
		return c.charRange(x)

	case ebnf.Alternative:
		return grammar.Or(c.list(x)...)

	case ebnf.Sequence:
		if c.lexical {
			return grammar.DirectSequence(c.list(x)...)
		}
		return grammar.Sequence(c.list(x)...)

	case *ebnf.Group:
		return c.expr(x.Body)

	case *ebnf.Option:
		return grammar.Optional(c.expr(x.Body))

	case *ebnf.Repetition:
		return grammar.ZeroOrMore(c.expr(x.Body))

	case *ebnf.Name:
		return c.name(x)

	default:
		return c.fail(errorAt(x.Pos(), GrammarSyntaxError, "malformed expression"))
	}
}

func (c *compiler) list(xs []ebnf.Expression) []grammar.Rule {
	res := make([]grammar.Rule, len(xs))
	for i, x := range xs {
		res[i] = c.expr(x)
	}
	return res
}

func token(text string) grammar.Rule {
	switch utf8.RuneCountInString(text) {
	case 0:
		return grammar.DirectSequence()
	case 1:
		r, _ := utf8.DecodeRuneInString(text)
		return grammar.Char(r)
	default:
		return grammar.Keyword(text)
	}
}

func (c *compiler) charRange(x *ebnf.Range) grammar.Rule {
	if utf8.RuneCountInString(x.Begin.String) != 1 || utf8.RuneCountInString(x.End.String) != 1 {
		return c.fail(errorAt(x.Pos(), InvalidRangeError, "range bounds must be single characters"))
	}

	lo, _ := utf8.DecodeRuneInString(x.Begin.String)
	hi, _ := utf8.DecodeRuneInString(x.End.String)
	switch {
	case lo > hi:
		return c.fail(errorAt(x.Pos(), InvalidRangeError, "reversed range %q … %q", lo, hi))
	case hi-lo >= maxRangeSize:
		return c.fail(errorAt(x.Pos(), InvalidRangeError, "range %q … %q is longer than %d characters", lo, hi, maxRangeSize))
	case lo == '0' && hi == '9':
		return grammar.Digit
	}

	chars := make([]grammar.Rule, 0, hi-lo+1)
	for r := lo; r <= hi; r++ {
		chars = append(chars, grammar.Char(r))
	}
	return grammar.Or(chars...)
}

func (c *compiler) name(x *ebnf.Name) grammar.Rule {
	h, f := c.g.handles[x.String]
	switch {
	case !f:
		return c.fail(undefinedNameError(x.Pos(), x.String, c.g.order))
	case !c.inline:
		return h.Rule()
	case slices.Contains(c.stack, x.String):
		return c.fail(errorAt(x.Pos(), RecursionError, "production %q is recursive", x.String))
	default:
		return c.production(x.String)
	}
}
