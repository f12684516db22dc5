package lookup

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kimlab/readpaper/internal/record"
)

const crossrefBibtex = `@article{Smith_2019,
  doi = {10.1234/abcd},
  author = {Smith, John},
  title = {A Study of Things},
  year = {2019},
  journal = {Nature},
}
`

func TestByIdentifierCrossref(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/works/") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(crossrefBibtex))
	}))
	defer srv.Close()

	c := NewClient(WithCrossrefURL(srv.URL))
	found, rec, err := c.ByIdentifier(context.Background(), record.Identifier{Kind: record.KindDOI, Value: "10.1234/abcd"})
	if err != nil {
		t.Fatal(err)
	}
	if !found {
		t.Fatal("record not found")
	}
	if rec.DOI != "10.1234/abcd" || rec.Title != "A Study of Things" || rec.Year != 2019 {
		t.Errorf("record = %+v", rec)
	}
}

func TestByIdentifierCrossrefNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(WithCrossrefURL(srv.URL))
	found, rec, err := c.ByIdentifier(context.Background(), record.Identifier{Kind: record.KindDOI, Value: "10.9999/none"})
	if err != nil {
		t.Fatalf("404 surfaced as error: %v", err)
	}
	if found || rec != nil {
		t.Errorf("404 reported found: %v %+v", found, rec)
	}
}

func TestByIdentifierCrossrefServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(WithCrossrefURL(srv.URL))
	found, _, err := c.ByIdentifier(context.Background(), record.Identifier{Kind: record.KindDOI, Value: "10.1/x"})
	if err == nil || found {
		t.Fatalf("500 not surfaced: found=%v err=%v", found, err)
	}
	if IsNotFound(err) {
		t.Error("500 classified as not-found")
	}
}

const arxivAtom = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <entry>
    <id>http://arxiv.org/abs/1234.5678v1</id>
    <title>Deep Learning for
 Protein Folding</title>
    <summary>We study folding.</summary>
    <published>2021-03-15T00:00:00Z</published>
    <author><name>Jane Doe</name></author>
    <author><name>John Smith</name></author>
  </entry>
</feed>
`

func TestByIdentifierArxiv(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("id_list"); got != "1234.5678" {
			t.Errorf("id_list = %q", got)
		}
		w.Write([]byte(arxivAtom))
	}))
	defer srv.Close()

	c := NewClient(WithArxivURL(srv.URL))
	found, rec, err := c.ByIdentifier(context.Background(), record.Identifier{Kind: record.KindArXiv, Value: "1234.5678"})
	if err != nil {
		t.Fatal(err)
	}
	if !found {
		t.Fatal("entry not found")
	}
	if rec.Title != "Deep Learning for Protein Folding" {
		t.Errorf("title not collapsed: %q", rec.Title)
	}
	if rec.Author != "Jane Doe and John Smith" {
		t.Errorf("author = %q", rec.Author)
	}
	if rec.Year != 2021 || rec.Journal != "arXiv" {
		t.Errorf("year/journal = %d/%q", rec.Year, rec.Journal)
	}
	if rec.Extra["eprint"] != "1234.5678" {
		t.Errorf("eprint extra = %v", rec.Extra)
	}
}

func TestByIdentifierArxivEmptyFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<feed xmlns="http://www.w3.org/2005/Atom"></feed>`))
	}))
	defer srv.Close()

	c := NewClient(WithArxivURL(srv.URL))
	found, rec, err := c.ByIdentifier(context.Background(), record.Identifier{Kind: record.KindArXiv, Value: "0000.0000"})
	if err != nil || found || rec != nil {
		t.Errorf("empty feed: found=%v rec=%+v err=%v", found, rec, err)
	}
}

func TestByTitle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("rows"); got != "5" {
			t.Errorf("rows = %q", got)
		}
		w.Write([]byte(`{"message":{"items":[
			{"title":["A Totally Different Paper"],"DOI":"10.1/other"},
			{"title":["A Study of Things"],"DOI":"10.1234/abcd"}
		]}}`))
	}))
	defer srv.Close()

	c := NewClient(WithCrossrefURL(srv.URL))
	res := c.ByTitle(context.Background(), "A Study of Things")
	if !res.Success {
		t.Fatal("search not successful")
	}
	if res.Best.DOI != "10.1234/abcd" || res.Best.Similarity != 1 {
		t.Errorf("best = %+v", res.Best)
	}
}

func TestByTitleTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewClient(WithCrossrefURL(srv.URL))
	res := c.ByTitle(context.Background(), "anything")
	if res.Success {
		t.Error("transport failure reported success")
	}
	if res.Best != (TitleCandidate{}) {
		t.Errorf("transport failure left a stale candidate: %+v", res.Best)
	}
}

func TestByTitleNoUsableCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":{"items":[{"title":[],"DOI":"10.1/untitled"}]}}`))
	}))
	defer srv.Close()

	c := NewClient(WithCrossrefURL(srv.URL))
	res := c.ByTitle(context.Background(), "anything")
	if !res.Success {
		t.Fatal("valid response reported failure")
	}
	if res.Best.DOI != "" || res.Best.Similarity != 0 {
		t.Errorf("untitled candidate scored: %+v", res.Best)
	}
}

func TestConvertID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("ids"); got != "PMC1234567" {
			t.Errorf("ids = %q", got)
		}
		w.Write([]byte(`{"records":[{"doi":"10.1234/ABCD","pmid":"12345678","pmcid":"PMC1234567"}]}`))
	}))
	defer srv.Close()

	c := NewClient(WithIDConvURL(srv.URL))
	found, conv, err := c.ConvertID(context.Background(), "PMC1234567")
	if err != nil {
		t.Fatal(err)
	}
	if !found {
		t.Fatal("triple not found")
	}
	if conv.DOI != "10.1234/abcd" || conv.PMID != "12345678" || conv.PMCID != "PMC1234567" {
		t.Errorf("converted = %+v", conv)
	}
}

func TestConvertIDNoRecordsKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"error","message":"invalid article id"}`))
	}))
	defer srv.Close()

	c := NewClient(WithIDConvURL(srv.URL))
	found, conv, err := c.ConvertID(context.Background(), "bogus")
	if err != nil {
		t.Fatal(err)
	}
	if found || conv != (ConvertedID{}) {
		t.Errorf("absent records key reported found: %v %+v", found, conv)
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(ErrNotFound) {
		t.Error("ErrNotFound not recognized")
	}
	if !IsNotFound(&APIError{StatusCode: 404, Endpoint: "x"}) {
		t.Error("404 APIError not recognized")
	}
	if IsNotFound(&APIError{StatusCode: 500, Endpoint: "x"}) {
		t.Error("500 APIError misclassified")
	}
	if IsNotFound(nil) {
		t.Error("nil classified as not-found")
	}
}
