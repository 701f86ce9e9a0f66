package fetch

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pfrederiksen/nfl-data/internal/logger"
)

const (
	// UserAgent identifies this library to the file hosts.
	UserAgent = "nfl-data-cli/1.0 (github.com/pfrederiksen/nfl-data)"
	// Timeout bounds a single download.
	Timeout = 60 * time.Second
)

// ErrNotFound marks a resource the host does not have (HTTP 404).
var ErrNotFound = errors.New("resource not found")

// Client downloads dataset files over HTTP.
type Client struct {
	http      *http.Client
	userAgent string
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

// New creates a Client with default timeout and User-Agent.
func New(opts ...Option) *Client {
	c := &Client{
		http: &http.Client{
			Timeout: Timeout,
		},
		userAgent: UserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get downloads url and returns the response body. Payloads served from a
// ".gz" location are decompressed transparently. A 404 response fails with
// ErrNotFound; any other non-200 status fails with an error carrying the
// status and a snippet of the body.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, url)
	}
	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("fetching %s: %s (%s)", url, resp.Status, strings.TrimSpace(string(snippet)))
	}

	var body io.Reader = resp.Body
	if strings.HasSuffix(strings.SplitN(url, "?", 2)[0], ".gz") {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("decompressing %s: %w", url, err)
		}
		defer gz.Close()
		body = gz
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", url, err)
	}

	logger.IncrCounter("fetch.requests")
	logger.RecordTiming("fetch", time.Since(start))
	logger.Debug("fetched file", logger.Fields{
		"url":   url,
		"bytes": len(data),
	})

	return data, nil
}
