package markdown

import (
	"bytes"

	"github.com/pkg/errors"
)

// ToHTML converts a rendered document to HTML, dropping the front matter.
func ToHTML(data []byte) ([]byte, error) {
	var buff bytes.Buffer

	if err := New().Convert(data, &buff); err != nil {
		return nil, errors.WithStack(err)
	}

	return buff.Bytes(), nil
}
