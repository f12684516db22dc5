package lookup

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/kimlab/readpaper/internal/record"
)

// ConvertedID is the identifier triple returned by the NCBI id converter.
type ConvertedID struct {
	DOI   string `json:"doi"`
	PMID  string `json:"pmid"`
	PMCID string `json:"pmcid"`
}

// ConvertID maps an external article id (PMID, PMCID or DOI) to the full
// identifier triple via the NCBI id converter. A response without a
// records key means not found.
func (c *Client) ConvertID(ctx context.Context, id string) (bool, ConvertedID, error) {
	params := url.Values{}
	params.Set("tool", "readpaper")
	params.Set("ids", id)
	params.Set("format", "json")
	if c.mailto != "" {
		params.Set("email", c.mailto)
	}

	body, status, err := c.get(ctx, c.idconvURL+"?"+params.Encode())
	if err != nil {
		return false, ConvertedID{}, err
	}
	if status != http.StatusOK {
		return false, ConvertedID{}, &APIError{StatusCode: status, Endpoint: "ncbi idconv", Message: "unexpected status"}
	}

	var resp struct {
		Records []ConvertedID `json:"records"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return false, ConvertedID{}, err
	}
	if len(resp.Records) == 0 {
		return false, ConvertedID{}, nil
	}

	conv := resp.Records[0]
	conv.DOI = record.NormalizeDOI(conv.DOI)
	return true, conv, nil
}
