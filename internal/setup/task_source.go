package setup

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/bornholm/corpus-asana/internal/config"
	"github.com/bornholm/corpus-asana/internal/core/port"
	"github.com/bornholm/corpus-asana/pkg/asana"
	"github.com/pkg/errors"
)

// NewTaskSourceFromConfig returns an Asana client configured from conf.
func NewTaskSourceFromConfig(ctx context.Context, conf *config.Config) (port.TaskSource, error) {
	if conf.Asana.AccessToken == "" {
		return nil, errors.Wrapf(port.ErrConfiguration, "missing access token (%sACCESS_TOKEN)", config.Prefix)
	}

	baseURL, err := url.Parse(conf.Asana.BaseURL)
	if err != nil {
		return nil, errors.Wrapf(port.ErrConfiguration, "could not parse base url '%s': %s", conf.Asana.BaseURL, err.Error())
	}

	funcs := []asana.OptionFunc{
		asana.WithBaseURL(baseURL),
		asana.WithAccessToken(conf.Asana.AccessToken),
		asana.WithPageSize(conf.Asana.PageSize),
		asana.WithTimeout(conf.Asana.Timeout),
		asana.WithMaxRetries(conf.Asana.MaxRetries),
	}

	if conf.Asana.RateLimit.Enabled {
		funcs = append(funcs, asana.WithRateLimit(conf.Asana.RateLimit.MinInterval, conf.Asana.RateLimit.MaxBurst))
	}

	slog.DebugContext(ctx, "using asana api",
		slog.String("baseURL", baseURL.String()),
		slog.Int("pageSize", conf.Asana.PageSize),
		slog.Bool("rateLimit", conf.Asana.RateLimit.Enabled),
	)

	return asana.New(funcs...), nil
}
