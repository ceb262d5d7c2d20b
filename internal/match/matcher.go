// Package match implements the scoring strategies and snippet
// extraction used by the query engine.
package match

import "strings"

// Matcher computes a relevance score for a query against an entry's
// searchable text. A score of zero (or less) means no match.
type Matcher interface {
	Score(query, text string) float64
}

// Verify interface compliance
var (
	_ Matcher = ExactMatcher{}
	_ Matcher = FuzzyMatcher{}
)

// ForOptions selects the matcher for the fuzzy-search toggle.
func ForOptions(fuzzy bool) Matcher {
	if fuzzy {
		return FuzzyMatcher{}
	}
	return ExactMatcher{}
}

// ExactMatcher scores by multi-word containment: one point for every
// query word found as a substring of the text.
type ExactMatcher struct{}

func (ExactMatcher) Score(query, text string) float64 {
	text = strings.ToLower(text)

	var score float64
	for _, word := range strings.Fields(strings.ToLower(query)) {
		if strings.Contains(text, word) {
			score++
		}
	}
	return score
}

// FuzzyMatcher scores by order-preserving subsequence matching. It
// rewards contiguous runs, grants a flat bonus when the whole query
// occurs as a subsequence, and penalizes length mismatch so entries
// close in length to the query rank higher.
type FuzzyMatcher struct{}

// fullSubsequenceBonus is added when every query character was
// consumed in order.
const fullSubsequenceBonus = 10

// lengthPenaltyFactor scales the |len(query)-len(text)| penalty.
const lengthPenaltyFactor = 0.1

func (FuzzyMatcher) Score(query, text string) float64 {
	q := strings.ToLower(query)
	t := strings.ToLower(text)
	if q == "" {
		return 0
	}

	var score float64
	consecutive := 0
	qi := 0
	for ti := 0; ti < len(t) && qi < len(q); ti++ {
		if q[qi] != t[ti] {
			consecutive = 0
			continue
		}
		score += float64(1 + consecutive)
		consecutive++
		qi++
	}

	if qi == len(q) {
		score += fullSubsequenceBonus
	}

	diff := len(q) - len(t)
	if diff < 0 {
		diff = -diff
	}
	score -= lengthPenaltyFactor * float64(diff)

	if score < 0 {
		return 0
	}
	return score
}
