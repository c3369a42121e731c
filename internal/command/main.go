package command

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/bornholm/corpus-asana/internal/build"
	"github.com/bornholm/corpus-asana/internal/config"
	"github.com/bornholm/corpus-asana/internal/metrics"
	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func Main(name string, usage string, commands ...*cli.Command) {
	app := &cli.App{
		Name:     name,
		Usage:    usage,
		Commands: commands,
		Version:  build.LongVersion,
		Before: func(ctx *cli.Context) error {
			workdir := ctx.String("workdir")
			// Switch to new working directory if defined
			if workdir != "" {
				if err := os.Chdir(workdir); err != nil {
					return errors.Wrap(err, "could not change working directory")
				}
			}

			slogLevel, err := logLevel(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			logger := slog.New(slogx.ContextHandler{
				Handler: slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level:     slogLevel,
					AddSource: ctx.Bool("debug"),
				}),
			})

			slog.SetDefault(logger)

			return nil
		},
		After: func(ctx *cli.Context) error {
			metricsFile := ctx.String("metrics-file")
			if metricsFile == "" {
				return nil
			}

			if err := metrics.WriteFile(metricsFile); err != nil {
				return errors.Wrapf(err, "could not write metrics to '%s'", metricsFile)
			}

			slog.DebugContext(ctx.Context, "metrics written", slog.String("file", metricsFile))

			return nil
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				EnvVars: []string{"ASANA_CLI_CONFIG"},
				Aliases: []string{"c"},
				Usage:   "configuration file to use",
			},
			&cli.BoolFlag{
				Name:    "debug",
				Value:   false,
				EnvVars: []string{"ASANA_CLI_DEBUG"},
				Usage:   "Toggle debug mode",
			},
			&cli.StringFlag{
				Name:    "workdir",
				Value:   "",
				EnvVars: []string{"ASANA_CLI_WORKDIR"},
				Usage:   "The working directory",
			},
			&cli.StringFlag{
				Name:    "log-level",
				EnvVars: []string{"ASANA_CLI_LOG_LEVEL"},
				Usage:   "Set logging level",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "metrics-file",
				EnvVars: []string{"ASANA_CLI_METRICS_FILE"},
				Usage:   "Write prometheus metrics to this file (textfile collector format) on exit",
			},
		},
	}

	app.ExitErrHandler = func(ctx *cli.Context, err error) {
		if err == nil {
			return
		}

		debug := ctx.Bool("debug")

		if !debug {
			slog.ErrorContext(ctx.Context, err.Error())
		} else {
			slog.ErrorContext(ctx.Context, fmt.Sprintf("%+v", err))
		}
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	sort.Sort(cli.CommandsByName(app.Commands))

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}

// logLevel returns the level given with --log-level, or the configured one.
func logLevel(ctx *cli.Context) (slog.Level, error) {
	return resolveLogLevel(ctx.String("log-level"), config.Parse)
}

func resolveLogLevel(raw string, parse func() (*config.Config, error)) (slog.Level, error) {
	if raw == "" {
		conf, err := parse()
		if err != nil {
			return slog.LevelInfo, errors.Wrap(err, "could not parse configuration")
		}

		return conf.Logger.Level, nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return slog.LevelInfo, errors.Wrapf(err, "invalid log level '%s'", raw)
	}

	return level, nil
}
