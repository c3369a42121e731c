package common

import (
	"net/url"

	"github.com/bornholm/corpus-asana/internal/config"
	"github.com/bornholm/corpus-asana/internal/core/model"
	"github.com/bornholm/corpus-asana/internal/core/service"
	"github.com/bornholm/corpus-asana/internal/setup"
	"github.com/bornholm/corpus-asana/pkg/client"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
)

const (
	paramToken       = "token"
	paramAsanaURL    = "asana-url"
	paramID          = "id"
	paramKind        = "kind"
	paramServer      = "server"
	paramCorpusToken = "corpus-token"
)

var (
	flagToken = altsrc.NewStringFlag(&cli.StringFlag{
		Name:    paramToken,
		Aliases: []string{"t"},
		EnvVars: []string{config.Prefix + "ACCESS_TOKEN"},
		Usage:   "Asana personal access token",
	})
	flagAsanaURL = altsrc.NewStringFlag(&cli.StringFlag{
		Name:  paramAsanaURL,
		Usage: "Asana API base url (defaults to the configured one)",
	})
	flagID = altsrc.NewStringFlag(&cli.StringFlag{
		Name:  paramID,
		Usage: "Asana project or workspace identifier",
	})
	flagKind = altsrc.NewStringFlag(&cli.StringFlag{
		Name:  paramKind,
		Value: string(model.IDKindProject),
		Usage: "Kind of the identifier ('project' or 'workspace')",
	})
	flagServer = altsrc.NewStringFlag(&cli.StringFlag{
		Name:    paramServer,
		Aliases: []string{"s"},
		Value:   "http://localhost:3002",
		EnvVars: []string{"CORPUS_SERVER"},
		Usage:   "Corpus server base url",
	})
	flagCorpusToken = altsrc.NewStringFlag(&cli.StringFlag{
		Name:    paramCorpusToken,
		EnvVars: []string{"CORPUS_TOKEN"},
		Usage:   "Corpus server authentication token",
	})
)

// WithAsanaFlags prepends the flags needed to build a task loader.
func WithAsanaFlags(flags ...cli.Flag) []cli.Flag {
	return append([]cli.Flag{
		flagToken,
		flagAsanaURL,
		flagID,
		flagKind,
	}, flags...)
}

// WithCorpusFlags prepends the flags needed to reach a corpus server.
func WithCorpusFlags(flags ...cli.Flag) []cli.Flag {
	return append([]cli.Flag{
		flagServer,
		flagCorpusToken,
	}, flags...)
}

// GetTaskLoader builds a task loader from the environment configuration,
// overridden by the command line flags.
func GetTaskLoader(ctx *cli.Context) (*service.TaskLoader, error) {
	conf, err := config.Parse()
	if err != nil {
		return nil, errors.Wrap(err, "could not parse configuration")
	}

	if token := ctx.String(paramToken); token != "" {
		conf.Asana.AccessToken = token
	}

	if asanaURL := ctx.String(paramAsanaURL); asanaURL != "" {
		conf.Asana.BaseURL = asanaURL
	}

	kind, err := model.ParseIDKind(ctx.String(paramKind))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	loader, err := setup.NewTaskLoaderFromConfig(ctx.Context, conf, ctx.String(paramID), kind)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return loader, nil
}

func GetCorpusClient(ctx *cli.Context) (*client.Client, error) {
	rawServerURL := ctx.String(paramServer)

	serverURL, err := url.Parse(rawServerURL)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	funcs := []client.OptionFunc{
		client.WithBaseURL(serverURL),
	}

	if token := ctx.String(paramCorpusToken); token != "" {
		funcs = append(funcs, client.WithToken(token))
	}

	return client.New(funcs...), nil
}
