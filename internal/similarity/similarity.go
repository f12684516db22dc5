// Package similarity provides the normalized string-similarity measure used
// for fuzzy field matching and title lookup acceptance.
package similarity

import (
	"strings"

	"github.com/xrash/smetrics"
)

const (
	// TitleGate is the minimum similarity (exclusive) for accepting a
	// title-search candidate as the same work.
	TitleGate = 0.9

	// DefaultThreshold is the default similarity threshold for generic
	// field matching.
	DefaultThreshold = 0.6
)

// Ratio returns a similarity score in [0, 1], 1 meaning identical after
// case-folding. Substitutions cost 2 so the score matches the classic
// Levenshtein ratio: (len(a)+len(b)-dist) / (len(a)+len(b)).
func Ratio(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	if a == b {
		return 1
	}
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	dist := smetrics.WagnerFischer(a, b, 1, 1, 2)
	total := len(a) + len(b)
	return float64(total-dist) / float64(total)
}

// Similar reports whether two values match above the given threshold.
func Similar(a, b string, threshold float64) bool {
	return Ratio(a, b) > threshold
}
