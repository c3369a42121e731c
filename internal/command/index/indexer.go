package index

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"net/url"

	"github.com/bornholm/corpus-asana/internal/core/model"
	"github.com/bornholm/corpus-asana/internal/markdown"
	"github.com/bornholm/corpus-asana/internal/metrics"
	"github.com/bornholm/corpus-asana/pkg/client"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

// TaskURL returns the Asana url of the task, used as document source.
func TaskURL(taskID string) *url.URL {
	return &url.URL{
		Scheme: "https",
		Host:   "app.asana.com",
		Path:   "/0/0/" + taskID,
	}
}

type Result int

const (
	ResultIndexed Result = iota
	ResultSkipped
)

type Indexer struct {
	client      *client.Client
	collections []string
	wait        bool
}

func NewIndexer(c *client.Client, collections []string, wait bool) *Indexer {
	return &Indexer{
		client:      c,
		collections: collections,
		wait:        wait,
	}
}

// Index uploads the rendered document to the corpus server, unless a
// document with the same source and etag is already indexed.
func (i *Indexer) Index(ctx context.Context, doc model.Document) (Result, error) {
	source := TaskURL(doc.Metadata.ID)

	data, err := markdown.Render(doc, markdown.WithSource(source))
	if err != nil {
		return 0, errors.Wrap(err, "could not render document")
	}

	sum := sha256.Sum256(data)
	etag := hex.EncodeToString(sum[:])

	logger := slog.With(slog.String("source", source.String()), slog.String("etag", etag))

	existing, err := i.client.DocumentBySource(ctx, source)
	switch {
	case errors.Is(err, client.ErrDocumentNotFound):
	case err != nil:
		metrics.DocumentsIndexed.WithLabelValues(metrics.ResultFailure).Inc()
		return 0, errors.Wrap(err, "could not query existing document")
	case existing.ETag == etag:
		logger.DebugContext(ctx, "document already indexed, skipping")
		metrics.DocumentsIndexed.WithLabelValues(metrics.ResultSkipped).Inc()
		return ResultSkipped, nil
	}

	upload := &client.Upload{
		Filename:    markdown.Filename(doc),
		Content:     data,
		Source:      source,
		ETag:        etag,
		Collections: i.collections,
	}

	logger.DebugContext(ctx, "indexing document", slog.String("filename", upload.Filename), slog.String("size", humanize.Bytes(uint64(len(data)))))

	task, err := i.client.Index(ctx, upload)
	if err != nil {
		metrics.DocumentsIndexed.WithLabelValues(metrics.ResultFailure).Inc()
		return 0, errors.Wrapf(err, "client index failed for %s", upload.Filename)
	}

	if i.wait {
		taskID := task.ID

		task, err = i.client.WaitFor(ctx, taskID)
		if err != nil {
			metrics.DocumentsIndexed.WithLabelValues(metrics.ResultFailure).Inc()
			return 0, errors.Wrapf(err, "could not wait for task '%s'", taskID)
		}

		if task.Error != "" {
			metrics.DocumentsIndexed.WithLabelValues(metrics.ResultFailure).Inc()
			return 0, errors.Errorf("task '%s' failed: %s", task.ID, task.Error)
		}
	}

	logger.InfoContext(ctx, "document indexation task created", slog.String("task_id", string(task.ID)))
	metrics.DocumentsIndexed.WithLabelValues(metrics.ResultSuccess).Inc()

	return ResultIndexed, nil
}
