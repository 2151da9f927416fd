/*
Package langdef compiles grammar files written in EBNF into grammar rules.

Grammar files use the notation of golang.org/x/exp/ebnf:

	Production  = name "=" [ Expression ] "." .
	Expression  = Alternative { "|" Alternative } .
	Alternative = Term { Term } .
	Term        = name | token [ "…" token ] | Group | Option | Repetition .
	Group       = "(" Expression ")" .
	Option      = "[" Expression "]" .
	Repetition  = "{" Expression "}" .

Each production becomes a grammar.Recursive handle, so productions may refer to each other
(and to themselves) in any order. Production body is compiled to a rule named after the production:
  - token of a single character becomes grammar.Char, longer token becomes grammar.Keyword,
    empty token matches empty text;
  - range "0" … "9" becomes grammar.Digit, other ranges become an alternation of characters
    (up to 256 characters);
  - alternatives become grammar.Or, the first matching alternative wins;
  - sequences become grammar.DirectSequence in lexical productions (names starting with a non-capital letter)
    and grammar.Sequence, which skips whitespace between members, in other productions;
  - options become grammar.Optional, repetitions become grammar.ZeroOrMore.

Alternation is ordered, so a grammar that relies on the longest alternative must list it first.
*/
package langdef
