// Package record defines the bibliographic record type shared by all
// metadata sources.
package record

import (
	"fmt"
	"strings"
)

// Field names the fixed bibliographic vocabulary. Values outside this
// vocabulary are routed to the Extra map, never merged silently.
type Field string

const (
	FieldDOI       Field = "doi"
	FieldPMID      Field = "pmid"
	FieldPMCID     Field = "pmcid"
	FieldAuthor    Field = "author"
	FieldAuthor1   Field = "author1"
	FieldTitle     Field = "title"
	FieldYear      Field = "year"
	FieldJournal   Field = "journal"
	FieldPublisher Field = "publisher"
	FieldURL       Field = "url"
	FieldLocalURL  Field = "local_url"
	FieldAbstract  Field = "abstract"
	FieldKeywords  Field = "keywords"
	FieldEntryType Field = "entry_type"
)

// Fields lists the vocabulary in its natural merge order. ReconcileAll and
// the sidecar writer iterate in this order so output is deterministic.
var Fields = []Field{
	FieldDOI, FieldPMID, FieldPMCID,
	FieldAuthor, FieldAuthor1, FieldTitle, FieldYear,
	FieldJournal, FieldPublisher, FieldURL, FieldLocalURL,
	FieldAbstract, FieldKeywords, FieldEntryType,
}

// Record holds the merged metadata for one paper.
//
// Year is always an integer inside the record (0 = unknown); Keywords is
// always a deduplicated slice of cleaned tokens. DOI is stored without a
// scheme prefix; translation to the prefixed tag-store form happens only at
// the tag-store boundary via Identifier.
type Record struct {
	DOI       string   `json:"doi,omitempty"`
	PMID      string   `json:"pmid,omitempty"`
	PMCID     string   `json:"pmcid,omitempty"`
	Author    string   `json:"author,omitempty"`
	Author1   string   `json:"author1,omitempty"`
	Title     string   `json:"title,omitempty"`
	Year      int      `json:"year,omitempty"`
	Journal   string   `json:"journal,omitempty"`
	Publisher string   `json:"publisher,omitempty"`
	URL       string   `json:"url,omitempty"`
	LocalURL  string   `json:"local_url,omitempty"`
	Abstract  string   `json:"abstract,omitempty"`
	Keywords  []string `json:"keywords,omitempty"`
	EntryType string   `json:"entry_type,omitempty"`

	// Extra holds fields outside the fixed vocabulary (e.g. uncommon
	// BibTeX fields). They round-trip through the sidecar untouched and
	// are never reconciled.
	Extra map[string]string `json:"extra,omitempty"`
}

// ID returns the synthetic key author1_year, or "" if either part is unset.
func (r *Record) ID() string {
	if r.Author1 == "" || r.Year == 0 {
		return ""
	}
	return fmt.Sprintf("%s_%d", r.Author1, r.Year)
}

// Get returns the value of a vocabulary field.
// Returns nil for unknown fields.
func (r *Record) Get(f Field) any {
	switch f {
	case FieldDOI:
		return r.DOI
	case FieldPMID:
		return r.PMID
	case FieldPMCID:
		return r.PMCID
	case FieldAuthor:
		return r.Author
	case FieldAuthor1:
		return r.Author1
	case FieldTitle:
		return r.Title
	case FieldYear:
		return r.Year
	case FieldJournal:
		return r.Journal
	case FieldPublisher:
		return r.Publisher
	case FieldURL:
		return r.URL
	case FieldLocalURL:
		return r.LocalURL
	case FieldAbstract:
		return r.Abstract
	case FieldKeywords:
		return r.Keywords
	case FieldEntryType:
		return r.EntryType
	}
	return nil
}

// Set assigns a vocabulary field. The value must already be of the field's
// canonical type: int for year, []string for keywords, string otherwise.
func (r *Record) Set(f Field, v any) error {
	switch f {
	case FieldYear:
		y, ok := v.(int)
		if !ok {
			return fmt.Errorf("field %s: expected int, got %T", f, v)
		}
		if y < 0 {
			return fmt.Errorf("field %s: negative year %d", f, y)
		}
		r.Year = y
		return nil
	case FieldKeywords:
		kws, ok := v.([]string)
		if !ok {
			return fmt.Errorf("field %s: expected []string, got %T", f, v)
		}
		r.Keywords = dedupe(kws)
		return nil
	}

	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("field %s: expected string, got %T", f, v)
	}

	switch f {
	case FieldDOI:
		r.DOI = s
	case FieldPMID:
		r.PMID = s
	case FieldPMCID:
		r.PMCID = s
	case FieldAuthor:
		r.Author = s
	case FieldAuthor1:
		r.Author1 = s
	case FieldTitle:
		r.Title = s
	case FieldJournal:
		r.Journal = s
	case FieldPublisher:
		r.Publisher = s
	case FieldURL:
		r.URL = s
	case FieldLocalURL:
		r.LocalURL = s
	case FieldAbstract:
		r.Abstract = s
	case FieldEntryType:
		r.EntryType = s
	default:
		return fmt.Errorf("unknown field %q", f)
	}
	return nil
}

// IsZero reports whether a field holds its empty/sentinel value
// ("" for strings, 0 for year, nil for keywords).
func (r *Record) IsZero(f Field) bool {
	switch v := r.Get(f).(type) {
	case string:
		return v == ""
	case int:
		return v == 0
	case []string:
		return v == nil
	}
	return true
}

// SetExtra records a field outside the fixed vocabulary.
func (r *Record) SetExtra(name, value string) {
	if r.Extra == nil {
		r.Extra = make(map[string]string)
	}
	r.Extra[name] = value
}

// IsField reports whether name belongs to the fixed vocabulary.
func IsField(name string) bool {
	for _, f := range Fields {
		if Field(name) == f {
			return true
		}
	}
	return false
}

// dedupe removes duplicate keywords, preserving first-seen order.
func dedupe(kws []string) []string {
	if kws == nil {
		return nil
	}
	seen := make(map[string]bool, len(kws))
	out := make([]string, 0, len(kws))
	for _, k := range kws {
		k = strings.TrimSpace(k)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}
