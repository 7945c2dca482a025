package mailgun

import (
	"net/http"
	"strings"
	"time"
)

// Option configures the client.
type Option func(*Client)

// WithBaseURL overrides the API base URL. Useful for test servers and
// region-specific deployments (e.g. https://api.eu.mailgun.net/v3).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(url, "/")
	}
}

// WithHTTPClient sets a custom HTTP client. Timeouts, proxies and
// connection reuse are all configured through it.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the request timeout on the underlying HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}
