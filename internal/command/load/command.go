package load

import (
	"bufio"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/bornholm/corpus-asana/internal/command/common"
	"github.com/bornholm/corpus-asana/internal/core/model"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
)

const (
	flagFormat = "format"
	flagOutput = "output"
)

func Command() *cli.Command {
	flags := common.WithAsanaFlags(
		altsrc.NewStringFlag(&cli.StringFlag{
			Name:    flagFormat,
			Aliases: []string{"f"},
			Value:   FormatJSON,
			Usage:   "Output format ('json', 'jsonl', 'yaml', 'markdown' or 'html')",
		}),
		&cli.StringFlag{
			Name:    flagOutput,
			Aliases: []string{"o"},
			Value:   "-",
			Usage:   "Output file (use '-' for stdout)",
		},
	)

	return &cli.Command{
		Name:   "load",
		Usage:  "Load the tasks of an Asana project or workspace as documents",
		Flags:  flags,
		Before: altsrc.InitInputSourceWithContext(flags, altsrc.NewYamlSourceFromFlagFunc("config")),
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			format := cCtx.String(flagFormat)
			if err := validFormat(format); err != nil {
				return errors.WithStack(err)
			}

			loader, err := common.GetTaskLoader(cCtx)
			if err != nil {
				return errors.Wrap(err, "could not create task loader")
			}

			var output io.Writer = os.Stdout
			if path := cCtx.String(flagOutput); path != "-" && path != "" {
				file, err := os.Create(path)
				if err != nil {
					return errors.Wrapf(err, "could not create output file '%s'", path)
				}

				defer file.Close()

				output = file
			}

			counter := &countingWriter{w: output}
			writer := bufio.NewWriter(counter)

			encoder, err := NewEncoder(format, writer)
			if err != nil {
				return errors.WithStack(err)
			}

			start := time.Now()
			total := 0

			err = loader.Walk(ctx, func(doc model.Document) error {
				total++
				return encoder.Encode(doc)
			})
			if err != nil {
				return errors.Wrapf(err, "could not load tasks of %s '%s'", loader.Kind(), loader.ID())
			}

			if err := encoder.Close(); err != nil {
				return errors.WithStack(err)
			}

			if err := writer.Flush(); err != nil {
				return errors.WithStack(err)
			}

			slog.InfoContext(ctx, "documents loaded",
				slog.String("kind", loader.Kind().String()),
				slog.String("id", loader.ID()),
				slog.String("documents", humanize.Comma(int64(total))),
				slog.String("size", humanize.Bytes(counter.n)),
				slog.Duration("elapsed", time.Since(start)),
			)

			return nil
		},
	}
}

type countingWriter struct {
	w io.Writer
	n uint64
}

func (w *countingWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.n += uint64(n)
	return n, err
}
