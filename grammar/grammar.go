// Package grammar defines grammar rules: immutable values describing text that can be matched against a cursor.State.
//
// A rule is one of a fixed set of kinds: character classes (Digit, Letter, Whitespace), a single character,
// a keyword, a named rule, repetitions (Optional, OneOrMore, ZeroOrMore), alternation (Or),
// sequences (Sequence tolerating whitespace between members, DirectSequence not tolerating it),
// and a reference to a Recursive handle used for self-referential grammars.
//
// Every rule supports three queries:
//   - CanConsume is a cheap lookahead; false guarantees that Apply fails, true is only a hint;
//   - Apply matches the rule advancing the cursor, the cursor may be left anywhere on failure;
//   - Consume works like Apply returning matched text.
//
// MaximumLength and Passes run Apply and always restore the cursor.
//
// Grammar authors must make sure that any recursive reference is reached only after some rule has consumed
// at least one character, left-recursive grammars never terminate.
package grammar

import (
	"fmt"
)

// Kind tells which kind of rule a Rule value is.
type Kind int

const (
	invalidRule Kind = iota
	DigitRule
	LetterRule
	WhitespaceRule
	CharRule
	KeywordRule
	NamedRule
	OptionalRule
	OneOrMoreRule
	ZeroOrMoreRule
	OrRule
	SequenceRule
	DirectSequenceRule
	RecursiveRule
)

var kindNames = [...]string{
	invalidRule:        "invalid",
	DigitRule:          "digit",
	LetterRule:         "letter",
	WhitespaceRule:     "whitespace",
	CharRule:           "char",
	KeywordRule:        "keyword",
	NamedRule:          "named",
	OptionalRule:       "optional",
	OneOrMoreRule:      "one-or-more",
	ZeroOrMoreRule:     "zero-or-more",
	OrRule:             "or",
	SequenceRule:       "sequence",
	DirectSequenceRule: "direct-sequence",
	RecursiveRule:      "recursive",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Rule is a grammar rule. The zero value is not a valid rule.
type Rule struct {
	kind  Kind
	char  rune
	text  string
	rules []Rule
	ref   *Recursive
}

// Character class rules, each one matches a single character.
var (
	Digit      = Rule{kind: DigitRule}
	Letter     = Rule{kind: LetterRule}
	Whitespace = Rule{kind: WhitespaceRule}
)

// Char matches exactly c.
func Char(c rune) Rule {
	return Rule{kind: CharRule, char: c}
}

// Keyword matches literal text at current position. Panics if text is empty.
// Keyword does not check what follows the text, so Keyword("for") matches the beginning of "format".
func Keyword(text string) Rule {
	if text == "" {
		panic("grammar: empty keyword")
	}
	return Rule{kind: KeywordRule, text: text}
}

// Named behaves exactly like r, its description is name.
func Named(name string, r Rule) Rule {
	return Rule{kind: NamedRule, text: name, rules: []Rule{r}}
}

// Optional applies r if possible, never fails.
func Optional(r Rule) Rule {
	return Rule{kind: OptionalRule, rules: []Rule{r}}
}

// OneOrMore applies r at least once.
func OneOrMore(r Rule) Rule {
	return Rule{kind: OneOrMoreRule, rules: []Rule{r}}
}

// ZeroOrMore applies r any number of times, never fails.
func ZeroOrMore(r Rule) Rule {
	return Rule{kind: ZeroOrMoreRule, rules: []Rule{r}}
}

// Or applies the first member rule that matches. An empty Or never matches.
func Or(rs ...Rule) Rule {
	return Rule{kind: OrRule, rules: clone(rs)}
}

// Sequence applies members in order, skipping whitespace between them.
func Sequence(rs ...Rule) Rule {
	return Rule{kind: SequenceRule, rules: clone(rs)}
}

// DirectSequence applies members in order with no whitespace between them.
func DirectSequence(rs ...Rule) Rule {
	return Rule{kind: DirectSequenceRule, rules: clone(rs)}
}

// List returns Optional(rs[0]) for a single rule and Sequence(rs...) for several ones.
// Panics if rs is empty.
func List(rs ...Rule) Rule {
	switch len(rs) {
	case 0:
		panic("grammar: empty rule list")
	case 1:
		return Optional(rs[0])
	default:
		return Sequence(rs...)
	}
}

func clone(rs []Rule) []Rule {
	if len(rs) == 0 {
		return nil
	}
	return append([]Rule(nil), rs...)
}

func (r Rule) join(kind Kind, next Rule) Rule {
	if r.kind == kind {
		return Rule{kind: kind, rules: append(clone(r.rules), next)}
	}
	return Rule{kind: kind, rules: []Rule{r, next}}
}

// Then returns a Sequence of r followed by next, extending r if it is a Sequence itself.
func (r Rule) Then(next Rule) Rule {
	return r.join(SequenceRule, next)
}

// Directly returns a DirectSequence of r followed by next, extending r if it is a DirectSequence itself.
func (r Rule) Directly(next Rule) Rule {
	return r.join(DirectSequenceRule, next)
}

// Or returns an alternation of r and next, extending r if it is an Or itself.
func (r Rule) Or(next Rule) Rule {
	return r.join(OrRule, next)
}

func (r Rule) Optional() Rule {
	return Optional(r)
}

func (r Rule) OneOrMore() Rule {
	return OneOrMore(r)
}

func (r Rule) ZeroOrMore() Rule {
	return ZeroOrMore(r)
}

func (r Rule) Named(name string) Rule {
	return Named(name, r)
}

func (r Rule) Kind() Kind {
	return r.kind
}

// Name returns the name of a named or recursive rule, empty string for other kinds.
func (r Rule) Name() string {
	switch r.kind {
	case NamedRule:
		return r.text
	case RecursiveRule:
		return r.ref.name
	default:
		return ""
	}
}

// Char returns the character matched by a char rule.
func (r Rule) Char() rune {
	return r.char
}

// Text returns the text matched by a keyword rule.
func (r Rule) Text() string {
	if r.kind == KeywordRule {
		return r.text
	}
	return ""
}

// Members returns a copy of nested rules: members for sequences and alternations,
// a single wrapped rule for named rules and repetitions, nil for other kinds.
func (r Rule) Members() []Rule {
	return clone(r.rules)
}

// Handle returns the handle referenced by a recursive rule or nil.
func (r Rule) Handle() *Recursive {
	return r.ref
}

// Equal reports whether two rules are structurally equal. Recursive rules are equal only if they reference the same handle.
func (r Rule) Equal(o Rule) bool {
	if r.kind != o.kind || r.char != o.char || r.text != o.text || r.ref != o.ref || len(r.rules) != len(o.rules) {
		return false
	}

	for i, m := range r.rules {
		if !m.Equal(o.rules[i]) {
			return false
		}
	}
	return true
}

// ContainsRecursion reports whether r references a Recursive handle at any depth.
func (r Rule) ContainsRecursion() bool {
	if r.kind == RecursiveRule {
		return true
	}

	for _, m := range r.rules {
		if m.ContainsRecursion() {
			return true
		}
	}
	return false
}

func (r Rule) invalid() string {
	return fmt.Sprintf("grammar: invalid rule kind %s", r.kind)
}
