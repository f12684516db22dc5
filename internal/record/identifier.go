package record

import "strings"

// Kind enumerates the identifier schemes the tag store can hold.
type Kind int

const (
	KindDOI Kind = iota
	KindPMID
	KindPMCID
	KindArXiv
)

func (k Kind) String() string {
	switch k {
	case KindDOI:
		return "doi"
	case KindPMID:
		return "pmid"
	case KindPMCID:
		return "pmcid"
	case KindArXiv:
		return "arxiv"
	}
	return "unknown"
}

// Identifier is a scheme-tagged external identifier. Inside a Record only
// the bare value is stored; the prefixed form exists at the tag-store
// boundary and in raw text.
type Identifier struct {
	Kind  Kind
	Value string
}

// ParseIdentifier classifies a raw identifier string as found in tags or
// extracted text. Recognized prefixes: doi:, pmid:, pmcid:, arxiv:
// (case-insensitive). A bare value starting with "10." is a DOI.
func ParseIdentifier(raw string) (Identifier, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Identifier{}, false
	}

	lower := strings.ToLower(raw)
	switch {
	case strings.HasPrefix(lower, "doi:"):
		return Identifier{Kind: KindDOI, Value: strings.TrimSpace(raw[4:])}, true
	case strings.HasPrefix(lower, "pmid:"):
		return Identifier{Kind: KindPMID, Value: strings.TrimSpace(raw[5:])}, true
	case strings.HasPrefix(lower, "pmcid:"):
		return Identifier{Kind: KindPMCID, Value: strings.TrimSpace(raw[6:])}, true
	case strings.HasPrefix(lower, "arxiv:"):
		return Identifier{Kind: KindArXiv, Value: strings.TrimSpace(raw[6:])}, true
	case strings.HasPrefix(lower, "10."):
		return Identifier{Kind: KindDOI, Value: raw}, true
	}
	return Identifier{}, false
}

// Tagged returns the tag-store form: doi:, pmid: and pmcid: prefixes, and
// the conventional arXiv:VALUE form for arXiv ids.
func (id Identifier) Tagged() string {
	switch id.Kind {
	case KindArXiv:
		return "arXiv:" + id.Value
	default:
		return id.Kind.String() + ":" + id.Value
	}
}

// NormalizeDOI strips scheme prefixes and resolver hosts and lowercases,
// so bare and prefixed forms of the same DOI compare equal.
func NormalizeDOI(doi string) string {
	doi = strings.TrimSpace(doi)
	doi = strings.TrimPrefix(doi, "https://doi.org/")
	doi = strings.TrimPrefix(doi, "http://doi.org/")
	doi = strings.TrimPrefix(doi, "doi.org/")
	if len(doi) >= 4 && strings.EqualFold(doi[:4], "doi:") {
		doi = doi[4:]
	}
	return strings.ToLower(strings.TrimSpace(doi))
}
