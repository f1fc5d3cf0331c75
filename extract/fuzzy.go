package extract

import (
	"strings"

	"github.com/rynalabs/ryna/core"
)

// maxEditDistance bounds how far a token may be from a catalog locality to
// still count as a fuzzy match.
const maxEditDistance = 2

var tokenSplitter = func(r rune) bool {
	return !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9')
}

// levenshtein computes the classic dynamic-programming edit distance.
// Inputs are short tokens and locality names, so the O(len(a)*len(b)) cost
// is negligible.
func levenshtein(a, b string) int {
	m, n := len(a), len(b)
	if m == 0 {
		return n
	}
	if n == 0 {
		return m
	}

	prev := make([]int, n+1)
	curr := make([]int, n+1)
	for j := 0; j <= n; j++ {
		prev[j] = j
	}

	for i := 1; i <= m; i++ {
		curr[0] = i
		for j := 1; j <= n; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[n]
}

// MatchLocation matches utterance tokens against catalog locations when the
// extractor found no location directly. An exact substring containment in a
// property's location or title is accepted immediately with distance 0;
// otherwise the minimum-edit-distance locality within the bound wins.
//
// Returns the candidate location string (the property's full lowercased
// location), its distance, and whether any candidate was found. Tokens
// shorter than three characters are skipped; at that length every word is
// within the bound of something.
func MatchLocation(text string, properties []core.Property) (string, int, bool) {
	if len(properties) == 0 {
		return "", 0, false
	}

	tokens := strings.FieldsFunc(strings.ToLower(text), tokenSplitter)

	best := ""
	bestDistance := maxEditDistance + 1

	for i := range properties {
		p := &properties[i]
		loc := strings.ToLower(p.Location)
		title := strings.ToLower(p.Title)
		locality := p.PrimaryLocality()

		for _, tok := range tokens {
			if len(tok) < 3 {
				continue
			}

			if strings.Contains(loc, tok) || strings.Contains(title, tok) {
				return loc, 0, true
			}

			if locality == "" {
				continue
			}
			if d := levenshtein(tok, locality); d < bestDistance {
				best = loc
				bestDistance = d
			}
		}
	}

	if bestDistance > maxEditDistance {
		return "", 0, false
	}
	return best, bestDistance, true
}
