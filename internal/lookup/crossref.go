package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/kimlab/readpaper/internal/bib"
	"github.com/kimlab/readpaper/internal/record"
	"github.com/kimlab/readpaper/internal/similarity"
)

// TitleCandidate is one scored candidate from a title search.
type TitleCandidate struct {
	Title      string  `json:"title"`
	Similarity float64 `json:"similarity"`
	DOI        string  `json:"doi"`
}

// TitleResult is the outcome of a title search. Transport failures yield
// Success=false with a fresh empty Best, never an error to the caller.
type TitleResult struct {
	Success bool           `json:"success"`
	Best    TitleCandidate `json:"best"`
}

// ByIdentifier fetches the canonical record for an identifier. ArXiv ids
// route to the arXiv export API; everything else is treated as a DOI and
// resolved through Crossref's BibTeX transform. Absence is found=false,
// not an error.
func (c *Client) ByIdentifier(ctx context.Context, id record.Identifier) (bool, *record.Record, error) {
	if id.Kind == record.KindArXiv {
		return c.arxivCitation(ctx, id.Value)
	}
	return c.crossrefCitation(ctx, id.Value)
}

// crossrefCitation fetches the BibTeX citation for a DOI.
func (c *Client) crossrefCitation(ctx context.Context, doi string) (bool, *record.Record, error) {
	if doi == "" {
		return false, nil, nil
	}

	endpoint := fmt.Sprintf("%s/works/%s/transform/application/x-bibtex",
		c.crossrefURL, url.PathEscape(record.NormalizeDOI(doi)))

	body, status, err := c.get(ctx, endpoint)
	if err != nil {
		return false, nil, err
	}
	if status == http.StatusNotFound {
		return false, nil, nil
	}
	if status != http.StatusOK {
		return false, nil, &APIError{StatusCode: status, Endpoint: "crossref transform", Message: strings.TrimSpace(string(body))}
	}

	recs, err := bib.Parse(strings.NewReader(string(body)))
	if err != nil {
		return false, nil, fmt.Errorf("parsing crossref citation: %w", err)
	}
	if len(recs) == 0 {
		return false, nil, nil
	}
	return true, &recs[0], nil
}

// ByTitle queries the Crossref title search for up to TitleRows candidates,
// scores each candidate title against the input, and returns the best.
func (c *Client) ByTitle(ctx context.Context, title string) TitleResult {
	params := url.Values{}
	params.Set("rows", fmt.Sprint(TitleRows))
	params.Set("query.title", title)
	if c.mailto != "" {
		params.Set("mailto", c.mailto)
	}

	body, status, err := c.get(ctx, c.crossrefURL+"/works?"+params.Encode())
	if err != nil || status != http.StatusOK {
		return TitleResult{}
	}

	var resp struct {
		Message struct {
			Items []struct {
				Title []string `json:"title"`
				DOI   string   `json:"DOI"`
			} `json:"items"`
		} `json:"message"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return TitleResult{}
	}

	// The zero Best is the per-call empty sentinel: similarity 0, no doi.
	result := TitleResult{Success: true}
	for _, item := range resp.Message.Items {
		if len(item.Title) == 0 {
			continue
		}
		cand := TitleCandidate{
			Title:      item.Title[0],
			Similarity: similarity.Ratio(item.Title[0], title),
			DOI:        item.DOI,
		}
		if cand.Similarity > result.Best.Similarity {
			result.Best = cand
		}
	}
	return result
}

// get performs a rate-limited GET and returns body and status.
func (c *Client) get(ctx context.Context, endpoint string) ([]byte, int, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("User-Agent", c.userAgent())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return body, resp.StatusCode, nil
}

func (c *Client) userAgent() string {
	if c.mailto != "" {
		return fmt.Sprintf("readpaper (mailto:%s)", c.mailto)
	}
	return "readpaper"
}
