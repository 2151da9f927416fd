// Package levenshtein looks for names similar to a misspelled one.
package levenshtein

import (
	"iter"
	"slices"

	"github.com/agnivade/levenshtein"
)

// ClosestStrings returns sorted candidates with the smallest edit distance to a,
// only distances not exceeding minDistance are taken into account.
func ClosestStrings(minDistance int, a string, candidates iter.Seq[string]) []string {
	closest := []string{}
	for c := range candidates {
		d := levenshtein.ComputeDistance(a, c)
		switch {
		case d < minDistance:
			closest = []string{c}
			minDistance = d
		case d == minDistance:
			closest = append(closest, c)
		}
	}
	slices.Sort(closest)
	return closest
}

// Suggest returns closest candidates not farther from a than a third of its length (at least 1).
func Suggest(a string, candidates iter.Seq[string]) []string {
	return ClosestStrings(max(len([]rune(a))/3, 1), a, candidates)
}
