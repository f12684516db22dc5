// Package bib reads and writes the per-PDF BibTeX sidecar file.
package bib

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/kimlab/readpaper/internal/record"
)

// Format renders one record as a BibTeX entry. Every value is written in
// its string form; keywords are flattened to a comma-joined string.
func Format(rec record.Record) string {
	entryType := rec.EntryType
	if entryType == "" {
		entryType = "article"
	}
	key := rec.ID()
	if key == "" {
		key = "unknown"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "@%s{%s,\n", entryType, key)

	for _, f := range record.Fields {
		if f == record.FieldEntryType || rec.IsZero(f) {
			continue
		}
		fmt.Fprintf(&b, "  %s = {%s},\n", f, fieldString(rec, f))
	}

	// Extra fields in sorted order for deterministic output.
	extras := make([]string, 0, len(rec.Extra))
	for name := range rec.Extra {
		extras = append(extras, name)
	}
	sort.Strings(extras)
	for _, name := range extras {
		fmt.Fprintf(&b, "  %s = {%s},\n", name, rec.Extra[name])
	}

	b.WriteString("}\n")
	return b.String()
}

// fieldString returns the on-disk string form of a field value.
func fieldString(rec record.Record, f record.Field) string {
	switch v := rec.Get(f).(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case []string:
		return strings.Join(v, ", ")
	}
	return ""
}

// Write serializes records to the sidecar file, replacing prior content.
func Write(path string, recs []record.Record) error {
	var entries []string
	for _, rec := range recs {
		entries = append(entries, Format(rec))
	}

	if err := os.WriteFile(path, []byte(strings.Join(entries, "\n")), 0644); err != nil {
		return fmt.Errorf("writing sidecar: %w", err)
	}
	return nil
}
