package grammar

import (
	"regexp"
	"strconv"
	"strings"
)

const whitespaceClass = `[ \t\r\n]`

// precedence of rendered forms, from the loosest: alternation, sequence, direct sequence, quantified or atomic
const (
	orLevel = iota
	sequenceLevel
	directLevel
	atomLevel
)

func (r Rule) level() int {
	switch r.kind {
	case OrRule, SequenceRule, DirectSequenceRule:
		if len(r.rules) == 1 {
			return r.rules[0].level()
		}
		if len(r.rules) == 0 {
			return atomLevel
		}
		switch r.kind {
		case OrRule:
			return orLevel
		case SequenceRule:
			return sequenceLevel
		default:
			return directLevel
		}
	default:
		return atomLevel
	}
}

// describe renders r wrapping it in parentheses if it binds looser than level.
func (r Rule) describe(level int) string {
	res := r.String()
	if r.level() < level {
		res = "(" + res + ")"
	}
	return res
}

func (r Rule) describeMembers(sep string, level int) string {
	if len(r.rules) == 0 {
		return "()"
	}

	parts := make([]string, len(r.rules))
	for i, m := range r.rules {
		parts[i] = m.describe(level)
	}
	return strings.Join(parts, sep)
}

// String returns human-readable description of r.
// Sequences are separated by spaces, direct sequences by " ~ ", alternatives by " | ".
func (r Rule) String() string {
	switch r.kind {
	case DigitRule:
		return "[0-9]"
	case LetterRule:
		return "[a-zA-Z]"
	case WhitespaceRule:
		return `[ \t\r\n]`
	case CharRule:
		return strconv.QuoteRune(r.char)
	case KeywordRule:
		return strconv.Quote(r.text)
	case NamedRule:
		return r.text
	case OptionalRule:
		return r.rules[0].describe(atomLevel) + "?"
	case OneOrMoreRule:
		return r.rules[0].describe(atomLevel) + "+"
	case ZeroOrMoreRule:
		return r.rules[0].describe(atomLevel) + "*"
	case OrRule:
		return r.describeMembers(" | ", sequenceLevel)
	case SequenceRule:
		return r.describeMembers(" ", directLevel)
	case DirectSequenceRule:
		return r.describeMembers(" ~ ", atomLevel)
	case RecursiveRule:
		return r.ref.name
	}

	return r.kind.String()
}

// Regex renders r as a regular expression (RE2 syntax) matching the same text.
// Whitespace before optional and repeated members of a Sequence belongs to the member,
// other members that may match nothing are preceded by whitespace unconditionally,
// so the pattern may accept trailing whitespace the rule leaves unconsumed.
// Panics if r contains a recursive rule.
func (r Rule) Regex() string {
	if r.ContainsRecursion() {
		panic("grammar: cannot render recursive rule " + r.String() + " as regular expression")
	}
	return r.regex()
}

func (r Rule) regex() string {
	switch r.kind {
	case DigitRule:
		return "[0-9]"
	case LetterRule:
		return "[a-zA-Z]"
	case WhitespaceRule:
		return whitespaceClass
	case CharRule:
		return regexp.QuoteMeta(string(r.char))
	case KeywordRule:
		return regexp.QuoteMeta(r.text)
	case NamedRule:
		return r.rules[0].regex()
	case OptionalRule:
		return r.rules[0].group() + "?"
	case OneOrMoreRule:
		return r.rules[0].group() + "+"
	case ZeroOrMoreRule:
		return r.rules[0].group() + "*"
	case OrRule:
		if len(r.rules) == 0 {
			return `[^\x00-\x{10FFFF}]`
		}
		return "(?:" + r.regexMembers("|") + ")"
	case SequenceRule:
		return r.regexSequence()
	case DirectSequenceRule:
		return r.regexMembers("")
	}

	panic(r.invalid())
}

func (r Rule) regexMembers(sep string) string {
	parts := make([]string, len(r.rules))
	for i, m := range r.rules {
		parts[i] = m.regex()
	}
	return strings.Join(parts, sep)
}

// regexSequence attaches whitespace to the following member, leaving it out
// when an optional or repeated member matches nothing.
func (r Rule) regexSequence() string {
	var sb strings.Builder
	for i, m := range r.rules {
		if i == 0 {
			sb.WriteString(m.regex())
			continue
		}

		for m.kind == NamedRule {
			m = m.rules[0]
		}
		switch m.kind {
		case OptionalRule:
			sb.WriteString("(?:" + whitespaceClass + "*" + m.rules[0].regex() + ")?")
		case ZeroOrMoreRule:
			sb.WriteString("(?:" + whitespaceClass + "*" + m.rules[0].group() + "+)?")
		default:
			sb.WriteString(whitespaceClass + "*" + m.regex())
		}
	}
	return sb.String()
}

// group renders r so that a quantifier applies to it as a whole.
func (r Rule) group() string {
	switch r.kind {
	case DigitRule, LetterRule, WhitespaceRule, CharRule, OrRule:
		return r.regex()
	case NamedRule:
		return r.rules[0].group()
	default:
		return "(?:" + r.regex() + ")"
	}
}
