package pdftext

import "strings"

// FindDOI scans text lines in order for a DOI or arXiv identifier.
//
// Markers, in the order they are tried on each line: a "doi:" or "doi "
// token (value is everything after the marker), a "/" following a bare
// "doi" token, an "arxiv:" token, and a line starting with "10.". The
// first qualifying line wins; a later, more specific match never overrides
// an earlier one, so a spurious "doi" substring in unrelated text can
// pre-empt the real identifier. That scan order is kept for compatibility
// with the files this tool has always processed.
//
// Returns "" when no candidate starting with "10." or "arXiv:" is found.
func FindDOI(lines []string) string {
	candidate := ""

scan:
	for _, line := range lines {
		t := strings.TrimRight(line, "\r\n")
		lower := strings.ToLower(t)

		if pos := strings.Index(lower, "doi"); pos > -1 {
			rest := lower[pos:]
			switch {
			case strings.HasPrefix(rest, "doi:"):
				candidate = strings.TrimLeft(t[pos+4:], " ")
				if strings.HasPrefix(candidate, "10.") {
					break scan
				}
			case strings.HasPrefix(rest, "doi "):
				candidate = strings.TrimLeft(t[pos+4:], " ")
				if strings.HasPrefix(candidate, "10.") {
					break scan
				}
			default:
				if slash := strings.Index(t[pos:], "/"); slash > -1 {
					candidate = t[pos+slash+1:]
					if strings.HasPrefix(candidate, "10.") {
						break scan
					}
				}
			}
		}

		if pos := strings.Index(lower, "arxiv:"); pos > -1 {
			candidate = firstToken(t[pos:])
			break scan
		}

		if strings.HasPrefix(lower, "10.") {
			candidate = firstToken(t)
			break scan
		}
	}

	candidate = firstToken(candidate)
	candidate = strings.TrimSuffix(candidate, ".")

	lower := strings.ToLower(candidate)
	if strings.HasPrefix(lower, "10.") || strings.HasPrefix(lower, "arxiv:") {
		return candidate
	}
	return ""
}

// firstToken returns everything up to the first whitespace.
func firstToken(s string) string {
	if i := strings.IndexAny(s, " \t"); i > -1 {
		return s[:i]
	}
	return s
}
