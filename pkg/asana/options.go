package asana

import (
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL  = "https://app.asana.com/api/1.0"
	DefaultPageSize = 100
	MaxPageSize     = 100
)

type Options struct {
	BaseURL     *url.URL
	HTTPClient  *http.Client
	AccessToken string
	PageSize    int
	Limiter     *rate.Limiter
	Timeout     time.Duration
	MaxRetries  int
}

type OptionFunc func(opts *Options)

func WithBaseURL(baseURL *url.URL) OptionFunc {
	return func(opts *Options) {
		opts.BaseURL = baseURL
	}
}

// WithHTTPClient replaces the default HTTP client. The access token, if
// any, is still injected on top of the client transport.
func WithHTTPClient(httpClient *http.Client) OptionFunc {
	return func(opts *Options) {
		opts.HTTPClient = httpClient
	}
}

func WithAccessToken(token string) OptionFunc {
	return func(opts *Options) {
		opts.AccessToken = token
	}
}

func WithPageSize(size int) OptionFunc {
	return func(opts *Options) {
		opts.PageSize = size
	}
}

// WithRateLimit spaces outgoing requests by at least interval, allowing
// bursts of maxBurst requests.
func WithRateLimit(interval time.Duration, maxBurst int) OptionFunc {
	return func(opts *Options) {
		opts.Limiter = rate.NewLimiter(rate.Every(interval), maxBurst)
	}
}

func WithTimeout(timeout time.Duration) OptionFunc {
	return func(opts *Options) {
		opts.Timeout = timeout
	}
}

func WithMaxRetries(maxRetries int) OptionFunc {
	return func(opts *Options) {
		opts.MaxRetries = maxRetries
	}
}

func NewOptions(funcs ...OptionFunc) *Options {
	baseURL, _ := url.Parse(DefaultBaseURL)

	opts := &Options{
		BaseURL:    baseURL,
		PageSize:   DefaultPageSize,
		Timeout:    time.Minute,
		MaxRetries: 5,
	}

	for _, fn := range funcs {
		fn(opts)
	}

	if opts.PageSize <= 0 || opts.PageSize > MaxPageSize {
		opts.PageSize = DefaultPageSize
	}

	return opts
}
