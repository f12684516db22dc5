package bib

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/kimlab/readpaper/internal/record"
)

func TestFormat(t *testing.T) {
	rec := record.Record{
		DOI:      "10.1234/abcd",
		Author:   "Smith, John",
		Author1:  "Smith",
		Title:    "A Study",
		Year:     2019,
		Journal:  "Nature",
		Keywords: []string{"alpha", "beta"},
	}

	got := Format(rec)

	if !strings.HasPrefix(got, "@article{Smith_2019,\n") {
		t.Errorf("entry header = %q", strings.SplitN(got, "\n", 2)[0])
	}
	for _, want := range []string{
		"  doi = {10.1234/abcd},\n",
		"  year = {2019},\n",
		"  keywords = {alpha, beta},\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
	if !strings.HasSuffix(got, "}\n") {
		t.Errorf("entry not closed: %q", got)
	}
}

func TestFormatDefaults(t *testing.T) {
	got := Format(record.Record{Title: "Untitled"})
	if !strings.HasPrefix(got, "@article{unknown,\n") {
		t.Errorf("defaults not applied: %q", strings.SplitN(got, "\n", 2)[0])
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".paper.bib")

	in := []record.Record{{
		DOI:       "10.1234/abcd",
		Author:    "Smith, John and Doe, Jane",
		Author1:   "Smith",
		Title:     "A Study of Things",
		Year:      2019,
		Journal:   "Nature",
		Keywords:  []string{"alpha", "beta"},
		EntryType: "article",
		Extra:     map[string]string{"volume": "12"},
	}}

	if err := Write(path, in); err != nil {
		t.Fatal(err)
	}
	out, err := Read(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 {
		t.Fatalf("got %d records, want 1", len(out))
	}

	got := out[0]
	if got.Year != 2019 {
		t.Errorf("year = %d (%T), want int 2019", got.Year, got.Year)
	}
	if !reflect.DeepEqual(got.Keywords, []string{"alpha", "beta"}) {
		t.Errorf("keywords = %v", got.Keywords)
	}
	if got.DOI != in[0].DOI || got.Author != in[0].Author || got.Title != in[0].Title {
		t.Errorf("record = %+v", got)
	}
	if got.Extra["volume"] != "12" {
		t.Errorf("extra did not round-trip: %v", got.Extra)
	}
}

func TestReadMissingFile(t *testing.T) {
	recs, err := Read(filepath.Join(t.TempDir(), ".absent.bib"))
	if err != nil {
		t.Fatalf("missing file returned error: %v", err)
	}
	if recs != nil {
		t.Errorf("missing file returned records: %v", recs)
	}
}

func TestParseJournalFallback(t *testing.T) {
	entry := `@misc{Doe_2021,
  author = {Doe, Jane},
  year = {2021},
  archiveprefix = {arXiv},
}
`
	recs, err := Parse(strings.NewReader(entry))
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 || recs[0].Journal != "arXiv" {
		t.Errorf("archiveprefix fallback failed: %+v", recs)
	}
}

func TestParseMalformedYearSkipped(t *testing.T) {
	entry := `@article{x,
  title = {T},
  year = {about 1999},
}
`
	recs, err := Parse(strings.NewReader(entry))
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 || recs[0].Year != 0 {
		t.Errorf("malformed year not skipped: %+v", recs)
	}
}

func TestFindMatching(t *testing.T) {
	candidates := []record.Record{
		{Title: "Protein folding in membranes", Author: "Smith, John", Year: 2019},
		{Title: "Protein folding in membrane", Author: "Smith, J.", Year: 2019},
		{Title: "Unrelated work", Author: "Doe, Jane", Year: 2019},
	}

	t.Run("title and year", func(t *testing.T) {
		target := record.Record{Title: "Protein folding in membranes", Year: 2019}
		got := FindMatching(candidates, target, []record.Field{record.FieldTitle, record.FieldYear}, 0.9)
		if len(got) != 2 {
			t.Fatalf("got %d matches, want 2 (near-identical titles tie): %+v", len(got), got)
		}
	})

	t.Run("author substring", func(t *testing.T) {
		target := record.Record{Author: "John Smith"}
		got := FindMatching(candidates, target, []record.Field{record.FieldAuthor}, 0.9)
		if len(got) != 2 {
			t.Fatalf("got %d matches, want 2: %+v", len(got), got)
		}
	})

	t.Run("year mismatch excludes", func(t *testing.T) {
		target := record.Record{Title: "Protein folding in membranes", Year: 2020}
		got := FindMatching(candidates, target, []record.Field{record.FieldTitle, record.FieldYear}, 0.9)
		if got != nil {
			t.Fatalf("year mismatch still matched: %+v", got)
		}
	})

	t.Run("no match", func(t *testing.T) {
		target := record.Record{Title: "Quantum gravity"}
		got := FindMatching(candidates, target, []record.Field{record.FieldTitle}, 0.9)
		if got != nil {
			t.Fatalf("unexpected matches: %+v", got)
		}
	})
}
