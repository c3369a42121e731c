package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
)

var ErrDocumentNotFound = errors.New("document not found")

type DocumentHeader struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	ETag   string `json:"etag,omitempty"`
}

type listDocumentsResponse struct {
	Documents []DocumentHeader `json:"documents"`
}

// DocumentBySource returns the header of the document previously indexed
// from source, or ErrDocumentNotFound.
func (c *Client) DocumentBySource(ctx context.Context, source *url.URL) (*DocumentHeader, error) {
	query := url.Values{
		"source": []string{source.String()},
		"limit":  []string{"1"},
	}

	var res listDocumentsResponse
	if err := c.call(ctx, http.MethodGet, c.endpoint("/documents", query), "", nil, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	if len(res.Documents) == 0 {
		return nil, errors.WithStack(ErrDocumentNotFound)
	}

	return &res.Documents[0], nil
}
