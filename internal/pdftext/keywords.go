package pdftext

import (
	"sort"
	"strings"
)

// Default marker configuration for keyword-block detection. The marker list
// is ordered most-specific first; "keywortlf" covers a recurring OCR
// artifact in older scans.
var (
	DefaultMarkers = []string{
		"keywords--", "keywords-", "keywords:", "keywords.",
		"key words", "keywortlf", "keywords",
	}
	DefaultEndMarkers = []string{"PACS", "DOI"}
	DefaultSeparators = []string{",", ";", ".", "/"}
)

// FindKeywords scans lines for the first occurrence of any marker
// (case-insensitive substring match), bounds the keyword span at the
// first end marker on that line, picks the separator that splits earliest
// inside the span, and returns the split tokens trimmed, deduplicated and
// sorted. Returns nil when no marker line exists.
func FindKeywords(lines, markers, endMarkers, separators []string) []string {
	if len(markers) == 0 {
		markers = DefaultMarkers
	}
	if len(endMarkers) == 0 {
		endMarkers = DefaultEndMarkers
	}
	if len(separators) == 0 {
		separators = DefaultSeparators
	}

	found := ""
	start := -1
	for _, line := range lines {
		t := strings.TrimRight(line, "\r\n")
		lower := strings.ToLower(t)
		for _, m := range markers {
			if pos := strings.Index(lower, m); pos > -1 {
				found = t
				start = pos + len(m)
				break
			}
		}
		if start > -1 {
			break
		}
	}
	if start == -1 {
		return nil
	}

	end := len(found)
	for _, em := range endMarkers {
		if pos := strings.Index(found, em); pos > -1 && pos < end {
			end = pos
		}
	}
	if start > end {
		start = end
	}
	span := found[start:end]

	// Earliest-splitting separator wins.
	sep := " "
	sepPos := len(span) + 1
	for _, s := range separators {
		if pos := strings.Index(span, s); pos > -1 && pos < sepPos {
			sepPos = pos
			sep = s
		}
	}

	seen := make(map[string]bool)
	var kws []string
	for _, tok := range strings.Split(span, sep) {
		tok = strings.TrimSpace(tok)
		tok = strings.TrimSuffix(tok, ".")
		if tok == "" || seen[tok] {
			continue
		}
		seen[tok] = true
		kws = append(kws, tok)
	}
	sort.Strings(kws)
	return kws
}
