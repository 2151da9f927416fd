package grammar

// Recursive is a named holder for a rule that may refer to itself.
// Handles are compared by identity.
//
// A self-referential rule is built in two steps: a handle is created with a placeholder that never matches,
// then a rule referencing the handle (via Recursive.Rule) is installed:
//
//	list := grammar.Define("list", func(self *grammar.Recursive) grammar.Rule {
//		return grammar.Sequence(ident, grammar.ZeroOrMore(grammar.Sequence(grammar.Char(','), self.Rule())))
//	})
type Recursive struct {
	name string
	rule Rule
}

// NewRecursive creates a handle with a placeholder rule.
func NewRecursive(name string) *Recursive {
	return &Recursive{name: name, rule: Or()}
}

// Define creates a handle and installs the rule returned by build, build receives the handle itself.
func Define(name string, build func(self *Recursive) Rule) *Recursive {
	h := NewRecursive(name)
	h.Install(build(h))
	return h
}

func (h *Recursive) Name() string {
	return h.name
}

// Install replaces the rule held by handle. Rules referencing the handle use the new rule from now on.
func (h *Recursive) Install(r Rule) {
	h.rule = r
}

// Installed returns currently held rule.
func (h *Recursive) Installed() Rule {
	return h.rule
}

// Rule returns a rule delegating to the handle.
func (h *Recursive) Rule() Rule {
	return Rule{kind: RecursiveRule, ref: h}
}
