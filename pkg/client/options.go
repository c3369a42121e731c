package client

import (
	"net/http"
	"net/url"
	"time"

	"github.com/bornholm/corpus-asana/pkg/transport"
)

type Options struct {
	BaseURL    *url.URL
	HTTPClient *http.Client
	Token      string
}

type OptionFunc func(opts *Options)

func WithBaseURL(baseURL *url.URL) OptionFunc {
	return func(opts *Options) {
		opts.BaseURL = baseURL
	}
}

func WithHTTPClient(httpClient *http.Client) OptionFunc {
	return func(opts *Options) {
		opts.HTTPClient = httpClient
	}
}

// WithToken authenticates requests with a corpus API token.
func WithToken(token string) OptionFunc {
	return func(opts *Options) {
		opts.Token = token
	}
}

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		BaseURL: &url.URL{
			Scheme: "http",
			Host:   "localhost:3002",
		},
		HTTPClient: &http.Client{
			Timeout: 5 * time.Minute,
			Transport: &transport.RateLimit{
				Base:        http.DefaultTransport,
				MaxRetries:  10,
				DefaultWait: time.Second,
			},
		},
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}
