package bib

import (
	"strings"

	"github.com/kimlab/readpaper/internal/author"
	"github.com/kimlab/readpaper/internal/record"
	"github.com/kimlab/readpaper/internal/similarity"
)

// FindMatching returns every candidate that matches the target on all of
// the given fields. A field matches on exact equality; non-year fields
// also match when similarity exceeds the threshold; the author field
// matches when either side's first-author family name appears as a
// substring of the other side's full author string.
//
// All matches are returned: zero, one or many is the caller's problem.
func FindMatching(candidates []record.Record, target record.Record, fields []record.Field, threshold float64) []record.Record {
	var matches []record.Record
	for _, cand := range candidates {
		if matchesAll(cand, target, fields, threshold) {
			matches = append(matches, cand)
		}
	}
	return matches
}

func matchesAll(cand, target record.Record, fields []record.Field, threshold float64) bool {
	for _, f := range fields {
		if !fieldMatches(cand, target, f, threshold) {
			return false
		}
	}
	return true
}

func fieldMatches(cand, target record.Record, f record.Field, threshold float64) bool {
	if f == record.FieldAuthor {
		return authorsMatch(cand.Author, target.Author)
	}
	if f == record.FieldYear {
		return cand.Year == target.Year
	}

	a, _ := cand.Get(f).(string)
	b, _ := target.Get(f).(string)
	if a == b {
		return true
	}
	return similarity.Similar(a, b, threshold)
}

// authorsMatch checks the first-author family name of either side against
// the other side's full author string, case-insensitively.
func authorsMatch(a, b string) bool {
	if a == b {
		return true
	}
	if a == "" || b == "" {
		return false
	}

	la, lb := strings.ToLower(a), strings.ToLower(b)
	famA := strings.ToLower(author.Name(a, author.Family))
	famB := strings.ToLower(author.Name(b, author.Family))

	return (famA != "" && strings.Contains(lb, famA)) ||
		(famB != "" && strings.Contains(la, famB))
}
