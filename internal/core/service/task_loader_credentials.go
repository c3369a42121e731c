package service

import (
	"github.com/bornholm/corpus-asana/internal/config"
	"github.com/bornholm/corpus-asana/internal/core/model"
	"github.com/bornholm/corpus-asana/internal/core/port"
	"github.com/bornholm/corpus-asana/pkg/asana"
	"github.com/pkg/errors"
)

type CredentialsOptions struct {
	AccessToken   string
	ClientOptions []asana.OptionFunc
}

type CredentialsOptionFunc func(opts *CredentialsOptions)

// WithAccessToken sets the Asana personal access token. When omitted, the
// token is read from the ASANA_ACCESS_TOKEN environment variable.
func WithAccessToken(token string) CredentialsOptionFunc {
	return func(opts *CredentialsOptions) {
		opts.AccessToken = token
	}
}

func WithClientOptions(funcs ...asana.OptionFunc) CredentialsOptionFunc {
	return func(opts *CredentialsOptions) {
		opts.ClientOptions = append(opts.ClientOptions, funcs...)
	}
}

func NewCredentialsOptions(funcs ...CredentialsOptionFunc) *CredentialsOptions {
	opts := &CredentialsOptions{
		ClientOptions: make([]asana.OptionFunc, 0),
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

// NewTaskLoaderFromCredentials builds an Asana client bound to an access
// token and returns a loader using it.
func NewTaskLoaderFromCredentials(id string, kind model.IDKind, funcs ...CredentialsOptionFunc) (*TaskLoader, error) {
	opts := NewCredentialsOptions(funcs...)

	token := opts.AccessToken
	if token == "" {
		conf, err := config.Parse()
		if err != nil {
			return nil, errors.Wrap(port.ErrConfiguration, err.Error())
		}

		token = conf.Asana.AccessToken
	}

	if token == "" {
		return nil, errors.Wrapf(port.ErrConfiguration, "no access token provided, set it explicitly or with the %sACCESS_TOKEN environment variable", config.Prefix)
	}

	clientOptions := append(opts.ClientOptions, asana.WithAccessToken(token))

	loader, err := NewTaskLoader(asana.New(clientOptions...), id, kind)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return loader, nil
}
