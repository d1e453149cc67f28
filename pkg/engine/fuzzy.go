package engine

import (
	"math"
	"strings"

	"github.com/agext/levenshtein"
)

// matchThreshold is the minimum fuzzy ratio for a pathway choice to be
// considered confident.
const matchThreshold = 80

// fuzzyRatio scores the similarity of two labels on a 0–100 scale.
// Comparison is case and whitespace insensitive.
func fuzzyRatio(a, b string) int {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == b {
		return 100
	}
	return int(math.Round(levenshtein.Similarity(a, b, nil) * 100))
}

// bestMatch returns the index and score of the candidate closest to the
// given text, or (-1, 0) when there are no candidates. With at least one
// candidate the index is always valid, even when every score is 0; the
// caller decides what a low score means.
func bestMatch(text string, candidates []string) (int, int) {
	if len(candidates) == 0 {
		return -1, 0
	}
	bestIdx, bestScore := 0, fuzzyRatio(text, candidates[0])
	for i, candidate := range candidates[1:] {
		if score := fuzzyRatio(text, candidate); score > bestScore {
			bestIdx, bestScore = i+1, score
		}
	}
	return bestIdx, bestScore
}
