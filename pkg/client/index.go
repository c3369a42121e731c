package client

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
)

// Upload is a rendered document sent to the corpus server for indexing.
type Upload struct {
	Filename    string
	Content     []byte
	Source      *url.URL
	ETag        string
	Collections []string
}

func (u *Upload) encode() (*bytes.Buffer, string, error) {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)

	file, err := form.CreateFormFile("file", u.Filename)
	if err != nil {
		return nil, "", errors.WithStack(err)
	}

	if _, err := file.Write(u.Content); err != nil {
		return nil, "", errors.WithStack(err)
	}

	fields := make([][2]string, 0, len(u.Collections)+2)
	if u.Source != nil {
		fields = append(fields, [2]string{"source", u.Source.String()})
	}
	if u.ETag != "" {
		fields = append(fields, [2]string{"etag", u.ETag})
	}
	for _, c := range u.Collections {
		fields = append(fields, [2]string{"collection", c})
	}

	for _, f := range fields {
		if err := form.WriteField(f[0], f[1]); err != nil {
			return nil, "", errors.WithStack(err)
		}
	}

	if err := form.Close(); err != nil {
		return nil, "", errors.WithStack(err)
	}

	return &body, form.FormDataContentType(), nil
}

// Index uploads the document and returns the server task in charge of
// indexing it.
func (c *Client) Index(ctx context.Context, upload *Upload) (*Task, error) {
	body, contentType, err := upload.encode()
	if err != nil {
		return nil, errors.Wrapf(err, "could not encode upload of '%s'", upload.Filename)
	}

	var res showTaskResponse
	if err := c.call(ctx, http.MethodPost, c.endpoint("/index", nil), contentType, body, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	if res.Task == nil {
		return nil, errors.Errorf("no indexing task returned for '%s'", upload.Filename)
	}

	return res.Task, nil
}
