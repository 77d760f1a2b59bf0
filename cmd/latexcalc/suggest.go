package main

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/zephyrtronium/latexcalc"
)

// knownNames is every function and default constant name.
var knownNames = append(latexcalc.Funcs(), latexcalc.Constants().Names()...)

// suggest finds the known name that a variable name was probably meant to be,
// or "" if there is none. Single letters are ordinary variable names.
func suggest(name string, known []string) string {
	if len(name) < 2 {
		return ""
	}
	ranks := fuzzy.RankFindFold(name, known)
	if len(ranks) > 0 {
		sort.Stable(ranks)
		return ranks[0].Target
	}
	best, dist := "", 2
	for _, k := range known {
		if d := fuzzy.LevenshteinDistance(name, k); d < dist {
			best, dist = k, d
		}
	}
	return best
}
