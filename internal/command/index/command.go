package index

import (
	"log/slog"
	"sync"
	"time"

	"github.com/bornholm/corpus-asana/internal/command/common"
	"github.com/bornholm/corpus-asana/internal/core/model"
	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
)

const (
	flagCollection  = "collection"
	flagConcurrency = "concurrency"
	flagWait        = "wait"
)

func Command() *cli.Command {
	flags := common.WithAsanaFlags(common.WithCorpusFlags(
		altsrc.NewStringSliceFlag(&cli.StringSliceFlag{
			Name:    flagCollection,
			Aliases: []string{"C"},
			Usage:   "Collection ID(s) to associate with the documents",
		}),
		altsrc.NewIntFlag(&cli.IntFlag{
			Name:    flagConcurrency,
			Value:   5,
			Usage:   "Number of concurrent uploads",
			EnvVars: []string{"CORPUS_CONCURRENCY"},
		}),
		altsrc.NewBoolFlag(&cli.BoolFlag{
			Name:  flagWait,
			Usage: "Wait for the server to finish indexing each document",
		}),
	)...)

	return &cli.Command{
		Name:   "index",
		Usage:  "Load the tasks of an Asana project or workspace and index them into a corpus server",
		Flags:  flags,
		Before: altsrc.InitInputSourceWithContext(flags, altsrc.NewYamlSourceFromFlagFunc("config")),
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context
			logger := slog.Default()

			loader, err := common.GetTaskLoader(cCtx)
			if err != nil {
				return errors.Wrap(err, "could not create task loader")
			}

			corpusClient, err := common.GetCorpusClient(cCtx)
			if err != nil {
				return errors.Wrap(err, "could not create corpus client")
			}

			collections := cCtx.StringSlice(flagCollection)
			if len(collections) == 0 {
				logger.WarnContext(ctx, "no collections specified, documents will be indexed but not organized")
			}

			indexer := NewIndexer(corpusClient, collections, cCtx.Bool(flagWait))

			concurrency := cCtx.Int(flagConcurrency)
			if concurrency < 1 {
				concurrency = 1
			}

			sem := make(chan struct{}, concurrency)
			var wg sync.WaitGroup

			successCount := 0
			skipCount := 0
			failCount := 0
			var mu sync.Mutex

			logger.InfoContext(ctx, "starting indexing",
				slog.String("kind", loader.Kind().String()),
				slog.String("id", loader.ID()),
				slog.Int("concurrency", concurrency),
			)

			startTime := time.Now()

			err = loader.Walk(ctx, func(doc model.Document) error {
				wg.Add(1)
				sem <- struct{}{}

				go func(doc model.Document) {
					defer wg.Done()
					defer func() { <-sem }()

					result, err := indexer.Index(ctx, doc)

					mu.Lock()
					defer mu.Unlock()

					switch {
					case err != nil:
						failCount++
						logger.ErrorContext(ctx, "failed to index document",
							slog.String("task", doc.Metadata.ID),
							slogx.Error(err),
						)
					case result == ResultSkipped:
						skipCount++
					default:
						successCount++
					}
				}(doc)

				return nil
			})

			wg.Wait()

			if err != nil {
				return errors.Wrapf(err, "could not load tasks of %s '%s'", loader.Kind(), loader.ID())
			}

			logger.InfoContext(ctx, "indexing completed",
				slog.Int("success", successCount),
				slog.Int("skipped", skipCount),
				slog.Int("failed", failCount),
				slog.Duration("duration", time.Since(startTime)),
			)

			if failCount > 0 {
				return errors.Errorf("%d documents failed to index", failCount)
			}

			return nil
		},
	}
}
