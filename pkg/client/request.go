package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

// Error is returned when the corpus server answers with a non-2xx status.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("corpus server error %d (%s)", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("corpus server error %d (%s): %s", e.StatusCode, http.StatusText(e.StatusCode), e.Message)
}

func (c *Client) endpoint(path string, query url.Values) *url.URL {
	endpoint := c.baseURL.JoinPath("/api/v1", path)
	if len(query) > 0 {
		endpoint.RawQuery = query.Encode()
	}
	return endpoint
}

// call sends a request to the corpus api and decodes the JSON answer into
// result.
func (c *Client) call(ctx context.Context, method string, endpoint *url.URL, contentType string, body io.Reader, result any) error {
	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return errors.WithStack(err)
	}

	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	slog.DebugContext(ctx, "corpus request",
		slog.String("method", method),
		slog.String("host", endpoint.Host),
		slog.String("path", endpoint.Path),
	)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}

	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		message, _ := io.ReadAll(io.LimitReader(res.Body, 4<<10))
		return errors.WithStack(&Error{
			StatusCode: res.StatusCode,
			Message:    strings.TrimSpace(string(message)),
		})
	}

	if err := json.NewDecoder(res.Body).Decode(result); err != nil {
		return errors.Wrapf(err, "could not decode answer of %s %s", method, endpoint.Path)
	}

	return nil
}
