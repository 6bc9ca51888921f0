// Package sdk provides a Go client for the docsearch HTTP API.
package sdk

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// Client talks to a docsearch server.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithAPIKey sets the bearer token sent with every request.
func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = key }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// New creates a docsearch client for the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// SearchOption customizes a search call.
type SearchOption func(url.Values)

// WithCategory restricts results to one category (exact match).
func WithCategory(category string) SearchOption {
	return func(v url.Values) { v.Set("category", category) }
}

// Search runs a query and returns the ranked results.
func (c *Client) Search(ctx context.Context, query string, opts ...SearchOption) ([]Result, error) {
	params := url.Values{}
	params.Set("q", query)
	for _, o := range opts {
		o(params)
	}

	var resp searchResponse
	if err := c.get(ctx, "/api/v1/search?"+params.Encode(), &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// Health probes the server's health endpoint.
func (c *Client) Health(ctx context.Context) (HealthReport, error) {
	var report HealthReport
	if err := c.get(ctx, "/health", &report); err != nil {
		return HealthReport{}, err
	}
	return report, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return decodeError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
