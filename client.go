package mailgun

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the production Mailgun API base.
const DefaultBaseURL = "https://api.mailgun.net/v3"

// basicAuthUser is the fixed username for API-key basic authentication.
const basicAuthUser = "api"

// DefaultTimeout is the request timeout applied when no custom HTTP
// client is supplied.
const DefaultTimeout = 30 * time.Second

// Client performs calls against the Mailgun API for a single sending
// domain. It holds no mutable state beyond its credentials, so one
// instance may be shared freely between goroutines.
type Client struct {
	apiKey     string
	domain     string
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the given API key and sending domain.
func New(apiKey, domain string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if domain == "" {
		return nil, ErrMissingDomain
	}

	c := &Client{
		apiKey:  apiKey,
		domain:  domain,
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Domain returns the sending domain the client was created with.
func (c *Client) Domain() string {
	return c.domain
}

// GetBounces lists the bounce records for the domain.
func (c *Client) GetBounces(ctx context.Context, params GetBouncesParamList) (*GetBouncesResponse, error) {
	var out GetBouncesResponse
	if err := c.get(ctx, "bounces", params.values, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetComplaints lists the complaint records for the domain.
func (c *Client) GetComplaints(ctx context.Context, params GetComplaintsParamList) (*GetComplaintsResponse, error) {
	var out GetComplaintsResponse
	if err := c.get(ctx, "complaints", params.values, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetEvents lists the delivery events recorded for the domain.
func (c *Client) GetEvents(ctx context.Context, params GetEventsParamList) (*GetEventsResponse, error) {
	var out GetEventsResponse
	if err := c.get(ctx, "events", params.values, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetStats returns aggregate event totals for the domain.
func (c *Client) GetStats(ctx context.Context, params GetStatsParamList) (*GetStatsResponse, error) {
	var out GetStatsResponse
	if err := c.get(ctx, "stats/total", params.values, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetUnsubscribes lists the unsubscribe records for the domain.
func (c *Client) GetUnsubscribes(ctx context.Context, params GetUnsubscribesParamList) (*GetUnsubscribesResponse, error) {
	var out GetUnsubscribesResponse
	if err := c.get(ctx, "unsubscribes", params.values, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetWhitelists lists the whitelist records for the domain.
func (c *Client) GetWhitelists(ctx context.Context, params GetWhitelistsParamList) (*GetWhitelistsResponse, error) {
	var out GetWhitelistsResponse
	if err := c.get(ctx, "whitelists", params.values, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SendMessage sends a single message from the domain.
func (c *Client) SendMessage(ctx context.Context, params SendMessageParamList) (*SendMessageResponse, error) {
	var out SendMessageResponse
	if err := c.do(ctx, http.MethodPost, c.endpointURL("messages"), params.values, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Call issues a GET against a caller-supplied absolute URL, typically one
// of the Paging links returned by a list endpoint, and decodes the body
// into T. Only authentication is attached; response classification is
// identical to the typed endpoint methods.
//
//	page, err := mailgun.Call[mailgun.GetBouncesResponse](ctx, client, resp.Paging.Next)
func Call[T any](ctx context.Context, c *Client, rawURL string) (*T, error) {
	var out T
	if err := c.do(ctx, http.MethodGet, rawURL, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, path string, params paramList, out any) error {
	return c.do(ctx, http.MethodGet, c.endpointURL(path), params, out)
}

func (c *Client) endpointURL(path string) string {
	return fmt.Sprintf("%s/%s/%s", c.baseURL, c.domain, path)
}

// do renders params, issues the request with basic auth attached, and
// classifies the result. Rendering failures surface before any network
// activity.
func (c *Client) do(ctx context.Context, method, rawURL string, params paramList, out any) error {
	query, err := encodeParams(params)
	if err != nil {
		return err
	}
	if query != "" {
		rawURL += "?" + query
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, nil)
	if err != nil {
		return &TransportError{Err: err}
	}
	req.SetBasicAuth(basicAuthUser, c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Err: err}
	}

	return classify(resp.StatusCode, raw, out)
}

// classify turns a status code and raw body into a decoded response or
// exactly one error kind. Every endpoint method and Call share it.
func classify(status int, raw []byte, out any) error {
	if status != http.StatusOK {
		var envelope errorResponse
		if err := json.Unmarshal(raw, &envelope); err == nil {
			if msg, ok := envelope.message(); ok {
				return &APIError{Message: msg}
			}
		}
		return &HTTPError{StatusCode: status, Body: string(raw)}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return &ParseError{Err: err}
	}
	return nil
}

// errorResponse covers the two failure-body shapes the service uses. The
// decoder's case-insensitive field matching also accepts the "Error" key
// alias some endpoints return.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (r errorResponse) message() (string, bool) {
	if r.Error != "" {
		return r.Error, true
	}
	if r.Message != "" {
		return r.Message, true
	}
	return "", false
}

// encodeParams renders params into a query string, preserving insertion
// order and duplicate keys. url.Values.Encode sorts by key, which would
// reorder parameters, so emission is done by hand.
func encodeParams(params paramList) (string, error) {
	if len(params) == 0 {
		return "", nil
	}

	var b strings.Builder
	for i, p := range params {
		key, value, err := p.Render()
		if err != nil {
			return "", err
		}
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(value))
	}
	return b.String(), nil
}
