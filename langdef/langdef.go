package langdef

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/exp/ebnf"

	"github.com/ava12/minilexer/grammar"
	"github.com/ava12/minilexer/lexer"
)

// Grammar is a set of compiled productions.
type Grammar struct {
	name    string
	syntax  ebnf.Grammar
	order   []string
	handles map[string]*grammar.Recursive
}

// Parse reads and compiles grammar, name is used in error messages.
func Parse(name string, r io.Reader) (*Grammar, error) {
	syntax, e := ebnf.Parse(name, r)
	if e != nil {
		return nil, wrapError(name, GrammarSyntaxError, e)
	}

	g := &Grammar{
		name:    name,
		syntax:  syntax,
		order:   make([]string, 0, len(syntax)),
		handles: make(map[string]*grammar.Recursive, len(syntax)),
	}
	for n := range syntax {
		g.order = append(g.order, n)
		g.handles[n] = grammar.NewRecursive(n)
	}
	slices.SortFunc(g.order, func(a, b string) int {
		return syntax[a].Name.StartPos.Offset - syntax[b].Name.StartPos.Offset
	})

	c := &compiler{g: g}
	for _, n := range g.order {
		g.handles[n].Install(c.production(n))
	}
	if len(c.errs) > 0 {
		return nil, c.errs[0]
	}

	return g, nil
}

func ParseString(name, text string) (*Grammar, error) {
	return Parse(name, strings.NewReader(text))
}

func ParseBytes(name string, text []byte) (*Grammar, error) {
	return Parse(name, bytes.NewReader(text))
}

// ParseFile reads grammar from file, file path is used as grammar name.
func ParseFile(path string) (*Grammar, error) {
	text, e := os.ReadFile(path)
	if e != nil {
		return nil, fmt.Errorf("read grammar: %w", e)
	}
	return ParseBytes(path, text)
}

func (g *Grammar) Name() string {
	return g.name
}

// Names returns sorted production names.
func (g *Grammar) Names() []string {
	res := slices.Clone(g.order)
	slices.Sort(res)
	return res
}

// Productions returns production names in the order they appear in grammar text.
func (g *Grammar) Productions() []string {
	return slices.Clone(g.order)
}

// First returns the name of the first production in grammar text or empty string for empty grammar.
func (g *Grammar) First() string {
	if len(g.order) == 0 {
		return ""
	}
	return g.order[0]
}

func (g *Grammar) Has(name string) bool {
	_, f := g.handles[name]
	return f
}

// IsLexical reports whether the production name starts with a non-capital letter.
// Sequences in lexical productions do not skip whitespace.
func IsLexical(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return !unicode.IsUpper(r)
}

// Rule returns a rule referring to the production.
func (g *Grammar) Rule(name string) (grammar.Rule, error) {
	h, f := g.handles[name]
	if !f {
		return grammar.Rule{}, unknownRuleError(name, g.order)
	}
	return h.Rule(), nil
}

// Definition returns the compiled production body, references to productions are kept as recursive rules.
func (g *Grammar) Definition(name string) (grammar.Rule, error) {
	h, f := g.handles[name]
	if !f {
		return grammar.Rule{}, unknownRuleError(name, g.order)
	}
	return h.Installed().Members()[0], nil
}

// Inline compiles the production substituting referenced productions in place.
// Fails with RecursionError if the production refers to itself directly or indirectly.
// The result contains no recursive rules and can be rendered as a regular expression.
func (g *Grammar) Inline(name string) (grammar.Rule, error) {
	if !g.Has(name) {
		return grammar.Rule{}, unknownRuleError(name, g.order)
	}

	c := &compiler{g: g, inline: true}
	r := c.production(name)
	if len(c.errs) > 0 {
		return grammar.Rule{}, c.errs[0]
	}
	return r, nil
}

// Verify checks that all productions are reachable from start and lexical productions
// refer only to lexical ones. Empty start means the first production.
func (g *Grammar) Verify(start string) error {
	if start == "" {
		start = g.First()
	}
	if !g.Has(start) {
		return unknownRuleError(start, g.order)
	}

	if e := ebnf.Verify(g.syntax, start); e != nil {
		return wrapError(g.name, VerifyError, e)
	}
	return nil
}

// Recognizer creates token recognizer from named productions, token kinds are production names.
// Earlier productions win ties. End-of-stream token has empty kind.
func (g *Grammar) Recognizer(kinds ...string) (*lexer.RuleRecognizer[string], error) {
	rules := make([]lexer.TokenRule[string], 0, len(kinds))
	for _, k := range kinds {
		r, e := g.Rule(k)
		if e != nil {
			return nil, e
		}
		rules = append(rules, lexer.TokenRule[string]{Kind: k, Rule: r})
	}
	return lexer.NewRuleRecognizer("", rules...), nil
}
