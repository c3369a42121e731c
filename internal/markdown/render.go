package markdown

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	"github.com/bornholm/corpus-asana/internal/core/model"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type RenderOptions struct {
	Source *url.URL
}

type RenderOptionFunc func(opts *RenderOptions)

// WithSource sets the source url written in the front matter, used by the
// corpus server to identify the document.
func WithSource(source *url.URL) RenderOptionFunc {
	return func(opts *RenderOptions) {
		opts.Source = source
	}
}

func NewRenderOptions(funcs ...RenderOptionFunc) *RenderOptions {
	opts := &RenderOptions{}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

// Render returns the document as a markdown file: metadata as YAML front
// matter, the title as first heading, then the notes and a details list.
func Render(doc model.Document, funcs ...RenderOptionFunc) ([]byte, error) {
	opts := NewRenderOptions(funcs...)

	header, err := frontMatter(doc.Metadata, opts.Source)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var buff bytes.Buffer

	buff.WriteString("---\n")
	buff.Write(header)
	buff.WriteString("---\n\n")

	fmt.Fprintf(&buff, "# %s\n\n", singleLine(doc.Metadata.Title))

	if notes := strings.TrimSpace(Notes(doc)); notes != "" {
		buff.WriteString(notes)
		buff.WriteString("\n\n")
	}

	buff.WriteString("## Details\n\n")

	details := [][2]string{
		{"Assignee", doc.Metadata.Assignee},
		{"Due date", doc.Metadata.DueDate},
		{"Completed at", doc.Metadata.CompletedAt},
		{"Completed by", doc.Metadata.CompletedBy},
		{"Project", doc.Metadata.ProjectName},
		{"Workspace", doc.Metadata.WorkspaceName},
	}

	if len(doc.Metadata.CustomFields) > 0 {
		details = append(details, [2]string{"Custom fields", joinNonEmpty(doc.Metadata.CustomFields)})
	}

	if len(doc.Metadata.Followers) > 0 {
		details = append(details, [2]string{"Followers", joinNonEmpty(doc.Metadata.Followers)})
	}

	for _, d := range details {
		fmt.Fprintf(&buff, "- **%s:** %s\n", d[0], singleLine(d[1]))
	}

	return buff.Bytes(), nil
}

// frontMatter encodes the metadata as a YAML mapping, keys in metadata
// order, preceded by the source url when known.
func frontMatter(metadata model.Metadata, source *url.URL) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}

	add := func(key string, value any) error {
		var node yaml.Node
		if err := node.Encode(value); err != nil {
			return errors.Wrapf(err, "could not encode '%s'", key)
		}

		root.Content = append(root.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: key}, &node)

		return nil
	}

	if source != nil {
		if err := add("source", source.String()); err != nil {
			return nil, errors.WithStack(err)
		}
	}

	values := metadata.Map()
	for _, key := range metadata.Keys() {
		if err := add(key, values[key]); err != nil {
			return nil, errors.WithStack(err)
		}
	}

	data, err := yaml.Marshal(root)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return data, nil
}

// Notes returns the part of the document content following the title.
func Notes(doc model.Document) string {
	_, notes, _ := strings.Cut(doc.Content, "\n")
	return notes
}

// Filename returns the name under which the rendered document is uploaded.
func Filename(doc model.Document) string {
	return fmt.Sprintf("asana-%s.md", url.PathEscape(doc.Metadata.ID))
}

func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func joinNonEmpty(values []string) string {
	filtered := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			filtered = append(filtered, v)
		}
	}
	return strings.Join(filtered, ", ")
}
