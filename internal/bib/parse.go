package bib

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/kimlab/readpaper/internal/record"
)

var (
	entryStartRegex = regexp.MustCompile(`^@(\w+)\{([^,]+),`)
	fieldRegex      = regexp.MustCompile(`^\s*([A-Za-z][A-Za-z0-9_-]*)\s*=\s*[{"](.*)[}"],?\s*$`)
)

// Read parses the sidecar file into records. A missing file is not an
// error; it reads as nil.
func Read(path string) ([]record.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening sidecar: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// ReadOne returns the first record in the sidecar, or nil when the file is
// absent or empty.
func ReadOne(path string) (*record.Record, error) {
	recs, err := Read(path)
	if err != nil || len(recs) == 0 {
		return nil, err
	}
	return &recs[0], nil
}

// Parse reads concatenated BibTeX entries. Year is coerced back to an
// integer and keywords are split back into a collection; fields outside
// the record vocabulary land in Extra.
func Parse(r io.Reader) ([]record.Record, error) {
	var recs []record.Record
	var cur *record.Record

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()

		if m := entryStartRegex.FindStringSubmatch(line); m != nil {
			if cur != nil {
				recs = append(recs, *cur)
			}
			cur = &record.Record{EntryType: strings.ToLower(m[1])}
			continue
		}
		if cur == nil {
			continue
		}

		if m := fieldRegex.FindStringSubmatch(line); m != nil {
			applyField(cur, strings.ToLower(m[1]), m[2])
			continue
		}

		if strings.TrimSpace(line) == "}" {
			recs = append(recs, *cur)
			cur = nil
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading sidecar: %w", err)
	}
	if cur != nil {
		recs = append(recs, *cur)
	}

	for i := range recs {
		finishRecord(&recs[i])
	}
	return recs, nil
}

// applyField assigns one parsed field = value pair to the record.
func applyField(rec *record.Record, name, value string) {
	value = strings.TrimSpace(value)

	switch record.Field(name) {
	case record.FieldYear:
		if y, err := strconv.Atoi(strings.TrimSpace(value)); err == nil && y >= 0 {
			rec.Year = y
		}
	case record.FieldKeywords:
		var kws []string
		for _, k := range strings.Split(value, ",") {
			if k = strings.TrimSpace(k); k != "" {
				kws = append(kws, k)
			}
		}
		rec.Set(record.FieldKeywords, kws)
	case record.FieldEntryType:
		rec.EntryType = value
	default:
		if record.IsField(name) {
			rec.Set(record.Field(name), value)
		} else {
			rec.SetExtra(name, value)
		}
	}
}

// finishRecord fills derived gaps: preprint and proceedings entries carry
// their venue in archiveprefix/booktitle rather than journal.
func finishRecord(rec *record.Record) {
	if rec.Journal == "" {
		if v, ok := rec.Extra["archiveprefix"]; ok {
			rec.Journal = v
		} else if v, ok := rec.Extra["booktitle"]; ok {
			rec.Journal = v
		}
	}
}
