package grammar

import (
	"github.com/ava12/minilexer"
	"github.com/ava12/minilexer/cursor"
)

var classNames = map[Kind]string{
	DigitRule:      "digit",
	LetterRule:     "letter",
	WhitespaceRule: "whitespace",
}

// predicate returns character test for single-character rules and nil for other kinds.
func (r Rule) predicate() func(rune) bool {
	switch r.kind {
	case DigitRule:
		return cursor.IsDigit
	case LetterRule:
		return cursor.IsLetter
	case WhitespaceRule:
		return cursor.IsWhitespace
	case CharRule:
		c := r.char
		return func(x rune) bool {
			return x == c
		}
	default:
		return nil
	}
}

// CanConsume reports whether r may match at current position, never moves the cursor.
// False result guarantees that Apply fails. For sequences only the first member is checked.
func (r Rule) CanConsume(s *cursor.State) bool {
	switch r.kind {
	case DigitRule, LetterRule, WhitespaceRule, CharRule:
		return s.IsNextMatching(r.predicate())

	case KeywordRule:
		return s.CheckNext(r.text, cursor.Exact)

	case NamedRule, OneOrMoreRule:
		return r.rules[0].CanConsume(s)

	case OptionalRule, ZeroOrMoreRule:
		return true

	case OrRule:
		for _, m := range r.rules {
			if m.CanConsume(s) {
				return true
			}
		}
		return false

	case SequenceRule, DirectSequenceRule:
		if len(r.rules) == 0 {
			return true
		}
		first := r.rules[0]
		return first.CanConsume(s) && first.Passes(s)

	case RecursiveRule:
		return r.ref.rule.CanConsume(s)
	}

	panic(r.invalid())
}

// Apply matches r at current position advancing the cursor.
// On failure the cursor may be left at any position, use cursor.State.RewindOnFailure to roll it back.
func (r Rule) Apply(s *cursor.State) error {
	switch r.kind {
	case DigitRule, LetterRule, WhitespaceRule:
		return s.AdvanceValidating(r.predicate(), classNames[r.kind])

	case CharRule:
		return s.AdvanceExpecting(r.char)

	case KeywordRule:
		if s.AdvanceIf(r.text, cursor.Exact) {
			return nil
		}
		return s.Errorf(minilexer.UnexpectedTextError, "expecting %q", r.text)

	case NamedRule:
		return r.rules[0].Apply(s)

	case OptionalRule:
		inner := r.rules[0]
		if inner.CanConsume(s) {
			_ = s.RewindOnFailure(func() error {
				return inner.Apply(s)
			})
		}
		return nil

	case OneOrMoreRule:
		e := r.rules[0].Apply(s)
		if e == nil {
			r.rules[0].repeat(s)
		}
		return e

	case ZeroOrMoreRule:
		r.rules[0].repeat(s)
		return nil

	case OrRule:
		return r.applyOr(s)

	case SequenceRule:
		return r.applySequence(s, true)

	case DirectSequenceRule:
		return r.applySequence(s, false)

	case RecursiveRule:
		return r.ref.rule.Apply(s)
	}

	panic(r.invalid())
}

// repeat applies r while it matches.
// Stops after a failed attempt (rolling it back) or a successful one that consumed nothing.
func (r Rule) repeat(s *cursor.State) {
	if p := r.predicate(); p != nil {
		s.AdvanceWhile(p)
		return
	}

	for r.CanConsume(s) {
		snapshot := s.Snapshot()
		if r.Apply(s) != nil {
			snapshot.Restore()
			return
		}
		if s.Index() == snapshot.Index() {
			return
		}
	}
}

func (r Rule) applyOr(s *cursor.State) error {
	if len(r.rules) == 0 {
		return s.Errorf(minilexer.GenericParseError, "nothing to match")
	}

	start := s.Index()
	for _, m := range r.rules {
		e := s.RewindOnFailure(func() error {
			return m.Apply(s)
		})
		if e == nil {
			return nil
		}
	}

	return s.ErrorfAt(start, minilexer.SyntaxError, "expecting %s", r)
}

func (r Rule) applySequence(s *cursor.State, skipSpaces bool) error {
	for i, m := range r.rules {
		if i == 0 {
			e := s.RewindOnFailure(func() error {
				return m.Apply(s)
			})
			if e != nil {
				return e
			}
			continue
		}
		if !skipSpaces {
			if e := m.Apply(s); e != nil {
				return e
			}
			continue
		}

		snapshot := s.Snapshot()
		s.SkipWhitespace()
		start := s.Index()
		if e := m.Apply(s); e != nil {
			return e
		}
		if s.Index() == start {
			snapshot.Restore()
		}
	}
	return nil
}

// Consume works like Apply, returning matched text.
func (r Rule) Consume(s *cursor.State) (string, error) {
	rng := s.StartRange()
	if e := r.Apply(s); e != nil {
		return "", e
	}
	return rng.String(), nil
}

// MaximumLength returns the number of characters r would match at current position.
// Returns false if r does not match. Never moves the cursor.
func (r Rule) MaximumLength(s *cursor.State) (int, bool) {
	n, e := cursor.Temporary(s, func() (int, error) {
		start := s.Index()
		if e := r.Apply(s); e != nil {
			return 0, e
		}
		return s.Distance(start, s.Index()), nil
	})
	return n, e == nil
}

// Passes reports whether r matches at current position. Never moves the cursor.
func (r Rule) Passes(s *cursor.State) bool {
	_, f := r.MaximumLength(s)
	return f
}
