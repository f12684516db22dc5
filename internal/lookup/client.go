// Package lookup fetches bibliographic records from remote registries:
// Crossref for DOIs and title search, the arXiv export API for arXiv ids,
// and the NCBI id converter for PMID/PMCID resolution.
package lookup

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	// CrossrefBaseURL is the Crossref REST API base URL.
	CrossrefBaseURL = "https://api.crossref.org"

	// ArxivBaseURL is the arXiv export API base URL.
	ArxivBaseURL = "http://export.arxiv.org/api/query"

	// IDConvBaseURL is the NCBI PMC id converter base URL.
	IDConvBaseURL = "https://www.ncbi.nlm.nih.gov/pmc/utils/idconv/v1.0/"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// RateLimit keeps us inside Crossref's polite-pool expectations.
	RateLimit = 5.0

	// TitleRows is the candidate cap for title searches.
	TitleRows = 5
)

// Client is a rate-limited HTTP client for the bibliographic registries.
type Client struct {
	httpClient  *http.Client
	limiter     *rate.Limiter
	mailto      string
	crossrefURL string
	arxivURL    string
	idconvURL   string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithMailto sets the contact address sent with Crossref and NCBI requests.
func WithMailto(email string) Option {
	return func(c *Client) { c.mailto = email }
}

// WithCrossrefURL overrides the Crossref base URL (for testing).
func WithCrossrefURL(url string) Option {
	return func(c *Client) { c.crossrefURL = url }
}

// WithArxivURL overrides the arXiv base URL (for testing).
func WithArxivURL(url string) Option {
	return func(c *Client) { c.arxivURL = url }
}

// WithIDConvURL overrides the NCBI id converter base URL (for testing).
func WithIDConvURL(url string) Option {
	return func(c *Client) { c.idconvURL = url }
}

// NewClient creates a registry client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient:  &http.Client{Timeout: DefaultTimeout},
		limiter:     rate.NewLimiter(rate.Limit(RateLimit), 1),
		crossrefURL: CrossrefBaseURL,
		arxivURL:    ArxivBaseURL,
		idconvURL:   IDConvBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
