package langdef

import (
	"fmt"
	"slices"
	"strings"
	"text/scanner"

	"github.com/ava12/minilexer"
	"github.com/ava12/minilexer/internal/levenshtein"
)

const (
	// GrammarSyntaxError indicates malformed grammar file.
	GrammarSyntaxError = minilexer.LangDefErrors + iota

	// UndefinedNameError indicates a reference to a production that is not defined.
	UndefinedNameError

	// InvalidRangeError indicates a range with non-character bounds, reversed bounds or too many characters.
	InvalidRangeError

	// VerifyError indicates a grammar that fails golang.org/x/exp/ebnf verification.
	VerifyError

	// UnknownRuleError indicates a request for a production that is not defined.
	UnknownRuleError

	// RecursionError indicates a recursive production that cannot be inlined.
	RecursionError
)

type position struct {
	pos scanner.Position
}

func (p position) SourceName() string {
	return p.pos.Filename
}

func (p position) Line() int {
	return p.pos.Line
}

func (p position) Col() int {
	return p.pos.Column
}

func (p position) Offset() int {
	return p.pos.Offset
}

func errorAt(pos scanner.Position, code int, msg string, params ...any) *minilexer.Error {
	return minilexer.FormatErrorPos(position{pos}, code, msg, params...)
}

func wrapError(name string, code int, e error) *minilexer.Error {
	res := minilexer.FormatError(code, "%s", e)
	res.SourceName = name
	return res
}

func hint(name string, names []string) string {
	closest := levenshtein.Suggest(name, slices.Values(names))
	switch len(closest) {
	case 0:
		return ""
	case 1:
		return fmt.Sprintf(" (did you mean %s?)", closest[0])
	default:
		return fmt.Sprintf(" (did you mean any of %s?)", strings.Join(closest, ", "))
	}
}

func undefinedNameError(pos scanner.Position, name string, names []string) *minilexer.Error {
	return errorAt(pos, UndefinedNameError, "undefined production %q%s", name, hint(name, names))
}

func unknownRuleError(name string, names []string) *minilexer.Error {
	return minilexer.FormatError(UnknownRuleError, "unknown production %q%s", name, hint(name, names))
}
