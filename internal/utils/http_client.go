package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.WithTimeout(5 * time.Second))
//	resp, err := client.R().Get("https://raw.githubusercontent.com/o/r/main/config.json")
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOption configures an [HTTPClient] at construction time.
type HTTPClientOption func(*resty.Client)

// WithTimeout bounds every request made by the client.
func WithTimeout(d time.Duration) HTTPClientOption {
	return func(c *resty.Client) {
		if d > 0 {
			c.SetTimeout(d)
		}
	}
}

// WithUserAgent sets the User-Agent header on every request.
func WithUserAgent(ua string) HTTPClientOption {
	return func(c *resty.Client) {
		if ua != "" {
			c.SetHeader("User-Agent", ua)
		}
	}
}

// WithTransport replaces the underlying round tripper.
func WithTransport(rt http.RoundTripper) HTTPClientOption {
	return func(c *resty.Client) {
		if rt != nil {
			c.SetTransport(rt)
		}
	}
}

// NewHTTPClient creates and returns a new HTTPClient instance.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(opts ...HTTPClientOption) *HTTPClient {
	client := resty.New()
	for _, opt := range opts {
		opt(client)
	}

	return &HTTPClient{Client: client}
}
