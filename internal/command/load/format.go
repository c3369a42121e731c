package load

import (
	"encoding/json"
	"io"
	"slices"
	"strings"

	"github.com/bornholm/corpus-asana/internal/core/model"
	"github.com/bornholm/corpus-asana/internal/markdown"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	FormatJSON     = "json"
	FormatJSONL    = "jsonl"
	FormatYAML     = "yaml"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

var formats = []string{FormatJSON, FormatJSONL, FormatYAML, FormatMarkdown, FormatHTML}

// Encoder writes documents one at a time. Close flushes formats that need
// the whole batch.
type Encoder interface {
	Encode(doc model.Document) error
	Close() error
}

func NewEncoder(format string, w io.Writer) (Encoder, error) {
	switch format {
	case FormatJSON:
		return &batchEncoder{w: w, marshal: marshalJSON}, nil
	case FormatYAML:
		return &batchEncoder{w: w, marshal: yaml.Marshal}, nil
	case FormatJSONL:
		return &jsonlEncoder{encoder: json.NewEncoder(w)}, nil
	case FormatMarkdown:
		return &markdownEncoder{w: w}, nil
	case FormatHTML:
		return &markdownEncoder{w: w, html: true}, nil
	default:
		return nil, errors.Errorf("unknown format '%s', expected one of %s", format, strings.Join(formats, ", "))
	}
}

func marshalJSON(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return append(data, '\n'), nil
}

type batchEncoder struct {
	w         io.Writer
	marshal   func(v any) ([]byte, error)
	documents []model.Document
}

func (e *batchEncoder) Encode(doc model.Document) error {
	e.documents = append(e.documents, doc)
	return nil
}

func (e *batchEncoder) Close() error {
	documents := e.documents
	if documents == nil {
		documents = []model.Document{}
	}

	data, err := e.marshal(documents)
	if err != nil {
		return errors.WithStack(err)
	}

	if _, err := e.w.Write(data); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

type jsonlEncoder struct {
	encoder *json.Encoder
}

func (e *jsonlEncoder) Encode(doc model.Document) error {
	if err := e.encoder.Encode(doc); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

func (e *jsonlEncoder) Close() error {
	return nil
}

type markdownEncoder struct {
	w     io.Writer
	html  bool
	count int
}

func (e *markdownEncoder) Encode(doc model.Document) error {
	data, err := markdown.Render(doc)
	if err != nil {
		return errors.WithStack(err)
	}

	if e.html {
		data, err = markdown.ToHTML(data)
		if err != nil {
			return errors.WithStack(err)
		}
	}

	if e.count > 0 {
		separator := "\n"
		if e.html {
			separator = "\n<hr>\n"
		}
		if _, err := io.WriteString(e.w, separator); err != nil {
			return errors.WithStack(err)
		}
	}

	if _, err := e.w.Write(data); err != nil {
		return errors.WithStack(err)
	}

	e.count++

	return nil
}

func (e *markdownEncoder) Close() error {
	return nil
}

func validFormat(format string) error {
	if !slices.Contains(formats, format) {
		return errors.Errorf("unknown format '%s', expected one of %s", format, strings.Join(formats, ", "))
	}
	return nil
}
