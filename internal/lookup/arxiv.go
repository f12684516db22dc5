package lookup

import (
	"context"
	"encoding/xml"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/kimlab/readpaper/internal/record"
)

// atomFeed is the subset of the arXiv Atom response we consume.
type atomFeed struct {
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	ID         string       `xml:"id"`
	Title      string       `xml:"title"`
	Summary    string       `xml:"summary"`
	Published  string       `xml:"published"`
	Authors    []atomAuthor `xml:"author"`
	DOI        string       `xml:"doi"`
	JournalRef string       `xml:"journal_ref"`
}

type atomAuthor struct {
	Name string `xml:"name"`
}

// arxivCitation fetches one citation from the arXiv export API. Any
// non-empty returned entry counts as found.
func (c *Client) arxivCitation(ctx context.Context, arxivID string) (bool, *record.Record, error) {
	if arxivID == "" {
		return false, nil, nil
	}

	params := url.Values{}
	params.Set("id_list", arxivID)
	params.Set("max_results", "1")

	body, status, err := c.get(ctx, c.arxivURL+"?"+params.Encode())
	if err != nil {
		return false, nil, err
	}
	if status != http.StatusOK {
		return false, nil, &APIError{StatusCode: status, Endpoint: "arxiv query", Message: "unexpected status"}
	}

	var feed atomFeed
	if err := xml.Unmarshal(body, &feed); err != nil {
		return false, nil, err
	}
	if len(feed.Entries) == 0 || feed.Entries[0].Title == "" {
		return false, nil, nil
	}

	rec := entryToRecord(feed.Entries[0], arxivID)
	return true, rec, nil
}

// entryToRecord maps an arXiv Atom entry onto the record vocabulary.
func entryToRecord(e atomEntry, arxivID string) *record.Record {
	rec := &record.Record{
		Title:     collapse(e.Title),
		Abstract:  collapse(e.Summary),
		URL:       e.ID,
		Journal:   "arXiv",
		EntryType: "article",
	}

	if e.DOI != "" {
		rec.DOI = record.NormalizeDOI(e.DOI)
	}
	if e.JournalRef != "" {
		rec.Journal = collapse(e.JournalRef)
	}

	var names []string
	for _, a := range e.Authors {
		if a.Name != "" {
			names = append(names, a.Name)
		}
	}
	rec.Author = strings.Join(names, " and ")

	if len(e.Published) >= 4 {
		if y, err := strconv.Atoi(e.Published[:4]); err == nil {
			rec.Year = y
		}
	}

	rec.SetExtra("archiveprefix", "arXiv")
	rec.SetExtra("eprint", arxivID)
	return rec
}

// collapse squashes the newline-wrapped text arXiv returns into one line.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
