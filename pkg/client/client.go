package client

import (
	"net/http"
	"net/url"

	"golang.org/x/oauth2"
)

// Client talks to the HTTP API of a corpus server.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

func New(funcs ...OptionFunc) *Client {
	opts := NewOptions(funcs...)

	httpClient := opts.HTTPClient

	if opts.Token != "" {
		authenticated := *httpClient
		authenticated.Transport = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{
				AccessToken: opts.Token,
				TokenType:   "Bearer",
			}),
			Base: httpClient.Transport,
		}
		httpClient = &authenticated
	}

	return &Client{
		baseURL:    opts.BaseURL,
		httpClient: httpClient,
	}
}
