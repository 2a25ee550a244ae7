// Package extract re-produces the registry snapshots from the legacy
// site. It is offline tooling: the engine itself never performs network
// I/O, it only loads what this tool extracted and a reviewer verified.
package extract

import (
	"context"
	"fmt"
	"time"

	"resty.dev/v3"

	"arredo/internal/config"
)

// Client fetches pages from the legacy site.
type Client struct {
	baseURL    string
	httpClient *resty.Client
}

// NewClient creates a legacy-site client.
func NewClient(cfg config.ExtractConfig) *Client {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(time.Duration(cfg.Timeout)*time.Second).
		SetRetryCount(3).
		SetRetryWaitTime(2*time.Second).
		SetRetryMaxWaitTime(10*time.Second).
		SetHeader("User-Agent", cfg.UserAgent).
		SetHeader("Accept", "text/html,application/xhtml+xml")

	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: client,
	}
}

// Page fetches one page and returns its HTML.
func (c *Client) Page(ctx context.Context, path string) (string, error) {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		Get(path)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", path, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("fetch %s: status %d", path, resp.StatusCode())
	}
	return resp.String(), nil
}

// Close releases the underlying HTTP client.
func (c *Client) Close() error {
	return c.httpClient.Close()
}
