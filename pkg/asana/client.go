package asana

import (
	"net/http"
	"net/url"
	"time"

	"github.com/bornholm/corpus-asana/internal/core/port"
	"github.com/bornholm/corpus-asana/pkg/transport"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

// Client is a minimal Asana REST API client, limited to what is needed to
// enumerate the tasks of a project or a workspace.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	pageSize   int
	limiter    *rate.Limiter
}

func New(funcs ...OptionFunc) *Client {
	opts := NewOptions(funcs...)

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: opts.Timeout,
			Transport: &transport.RateLimit{
				Base:        http.DefaultTransport,
				MaxRetries:  opts.MaxRetries,
				DefaultWait: time.Second,
				MaxWait:     time.Minute,
			},
		}
	}

	if opts.AccessToken != "" {
		authenticated := *httpClient
		authenticated.Transport = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{
				AccessToken: opts.AccessToken,
				TokenType:   "Bearer",
			}),
			Base: httpClient.Transport,
		}
		httpClient = &authenticated
	}

	return &Client{
		baseURL:    opts.BaseURL,
		httpClient: httpClient,
		pageSize:   opts.PageSize,
		limiter:    opts.Limiter,
	}
}

var _ port.TaskSource = &Client{}
