package pixela

import "strings"

// closestThreshold is the maximum share of a candidate that may differ
// for it to still count as a near match.
const closestThreshold = 0.6

// Closest returns the candidate nearest to name by edit distance, or ""
// when nothing is close enough to be a plausible misspelling.
func Closest(name string, candidates []string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return ""
	}

	best := ""
	bestDist := -1
	for _, c := range candidates {
		d := levenshtein(name, strings.ToLower(c))
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}

	maxLen := len(name)
	if len(best) > maxLen {
		maxLen = len(best)
	}
	if best == "" || float64(bestDist)/float64(maxLen) > closestThreshold {
		return ""
	}
	return best
}

// levenshtein computes the edit distance between a and b, updating a
// single row of the distance table in place and carrying the diagonal
// cell across each step.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	row := make([]int, len(b)+1)
	for j := range row {
		row[j] = j
	}

	for i := 1; i <= len(a); i++ {
		diag := row[0]
		row[0] = i
		for j := 1; j <= len(b); j++ {
			sub := diag
			if a[i-1] != b[j-1] {
				sub++
			}
			diag = row[j]
			row[j] = min(row[j]+1, row[j-1]+1, sub)
		}
	}
	return row[len(b)]
}
