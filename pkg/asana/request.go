package asana

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/bornholm/corpus-asana/internal/metrics"
	"github.com/pkg/errors"
)

type envelope[T any] struct {
	Data     T         `json:"data"`
	NextPage *nextPage `json:"next_page,omitempty"`
}

type nextPage struct {
	Offset string `json:"offset"`
	Path   string `json:"path,omitempty"`
	URI    string `json:"uri,omitempty"`
}

func (c *Client) request(ctx context.Context, endpoint string, path string, query url.Values, result io.Writer) error {
	url := c.baseURL.JoinPath(path)
	url.RawQuery = query.Encode()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return errors.WithStack(err)
		}
	}

	slog.DebugContext(ctx, "new asana request",
		slog.String("endpoint", endpoint),
		slog.String("path", url.Path),
		slog.String("query", url.RawQuery),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url.String(), nil)
	if err != nil {
		return errors.WithStack(err)
	}

	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		metrics.APIRequests.WithLabelValues(endpoint, "error").Inc()
		return errors.WithStack(err)
	}

	defer res.Body.Close()

	metrics.APIRequests.WithLabelValues(endpoint, strconv.Itoa(res.StatusCode)).Inc()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return errors.WithStack(newError(res))
	}

	if _, err := io.Copy(result, res.Body); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (c *Client) jsonRequest(ctx context.Context, endpoint string, path string, query url.Values, result any) error {
	var buff bytes.Buffer

	if err := c.request(ctx, endpoint, path, query, &buff); err != nil {
		return errors.WithStack(err)
	}

	if err := json.Unmarshal(buff.Bytes(), result); err != nil {
		return errors.Wrapf(err, "could not decode '%s' response", endpoint)
	}

	return nil
}

// paginate follows next_page offsets until the collection is exhausted.
func paginate[T any](ctx context.Context, c *Client, endpoint string, path string, query url.Values) ([]T, error) {
	items := make([]T, 0)

	query.Set("limit", strconv.Itoa(c.pageSize))

	for page := 1; ; page++ {
		var res envelope[[]T]
		if err := c.jsonRequest(ctx, endpoint, path, query, &res); err != nil {
			return nil, errors.WithStack(err)
		}

		items = append(items, res.Data...)

		if res.NextPage == nil || res.NextPage.Offset == "" {
			slog.DebugContext(ctx, "asana collection exhausted", slog.String("endpoint", endpoint), slog.Int("pages", page), slog.Int("items", len(items)))
			return items, nil
		}

		query.Set("offset", res.NextPage.Offset)
	}
}

func newError(res *http.Response) *Error {
	apiErr := &Error{
		StatusCode: res.StatusCode,
		Status:     http.StatusText(res.StatusCode),
		Messages:   make([]string, 0),
	}

	data, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return apiErr
	}

	var body errorResponse
	if err := json.Unmarshal(data, &body); err != nil {
		return apiErr
	}

	for _, e := range body.Errors {
		if e.Message != "" {
			apiErr.Messages = append(apiErr.Messages, e.Message)
		}
	}

	return apiErr
}
