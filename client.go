// Package nfldata streamlines the importing of a variety of NFL datasets
// hosted by the nflverse and related projects.
//
// Each Import function fetches the relevant CSV or parquet files for the
// requested seasons, concatenates them into a single record table, and
// optionally projects the result to a requested column subset. Clean aligns
// team and player names across datasets. All operations are synchronous and
// fetch requested seasons sequentially; any failure aborts the whole call
// rather than returning a partial table.
package nfldata

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/pfrederiksen/nfl-data/internal/cache"
	"github.com/pfrederiksen/nfl-data/internal/fetch"
	"github.com/pfrederiksen/nfl-data/internal/logger"
)

// Client provides access to the datasets. The zero value is not usable; use
// New. A Client is safe for concurrent use.
type Client struct {
	fetch *fetch.Client
	src   fetch.Sources
	cache *cache.Store
}

type settings struct {
	timeout    time.Duration
	userAgent  string
	cacheDir   string
	sources    fetch.Sources
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*settings)

// WithCacheDir enables the local file cache rooted at dir. A leading "~/" is
// expanded to the user's home directory.
func WithCacheDir(dir string) Option {
	return func(s *settings) {
		s.cacheDir = dir
	}
}

// WithTimeout sets the per-download timeout.
func WithTimeout(d time.Duration) Option {
	return func(s *settings) {
		s.timeout = d
	}
}

// WithUserAgent overrides the User-Agent header sent to the file hosts.
func WithUserAgent(ua string) Option {
	return func(s *settings) {
		s.userAgent = ua
	}
}

// WithSources overrides the data host locations.
func WithSources(src fetch.Sources) Option {
	return func(s *settings) {
		s.sources = src
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(s *settings) {
		s.httpClient = h
	}
}

// New creates a Client.
func New(opts ...Option) (*Client, error) {
	s := settings{
		timeout:   fetch.Timeout,
		userAgent: fetch.UserAgent,
		sources:   fetch.DefaultSources(),
	}
	for _, opt := range opts {
		opt(&s)
	}

	fetchOpts := []fetch.Option{
		fetch.WithTimeout(s.timeout),
		fetch.WithUserAgent(s.userAgent),
	}
	if s.httpClient != nil {
		fetchOpts = append(fetchOpts, fetch.WithHTTPClient(s.httpClient))
	}

	c := &Client{
		fetch: fetch.New(fetchOpts...),
		src:   s.sources,
	}

	if s.cacheDir != "" {
		store, err := cache.New(s.cacheDir)
		if err != nil {
			return nil, fmt.Errorf("initializing cache: %w", err)
		}
		c.cache = store
	}

	return c, nil
}

// getBytes downloads url, optionally reading through the local cache under
// key. Cache presence is sufficient; no freshness check is made.
func (c *Client) getBytes(ctx context.Context, url, key string, useCache bool) ([]byte, error) {
	if useCache {
		if c.cache == nil {
			return nil, fmt.Errorf("caching requested but no cache directory configured")
		}
		data, ok, err := c.cache.Load(key)
		if err != nil {
			return nil, err
		}
		if ok {
			logger.IncrCounter("fetch.cache_hits")
			return data, nil
		}
	}

	data, err := c.fetch.Get(ctx, url)
	if err != nil {
		return nil, err
	}

	if useCache {
		if err := c.cache.Save(key, data); err != nil {
			logger.Warn("caching downloaded file failed", logger.Fields{"key": key, "error": err.Error()})
		}
	}
	return data, nil
}

// ListAssets returns the downloadable files attached to an nflverse release,
// e.g. "pbp" or "player_stats".
func (c *Client) ListAssets(ctx context.Context, release string) ([]fetch.Asset, error) {
	return c.fetch.ListAssets(ctx, c.src.AssetListing(release))
}

// Asset is one downloadable file attached to a release.
type Asset = fetch.Asset

var defaultClient *Client

func init() {
	// Options are all defaulted, so this cannot fail.
	defaultClient, _ = New()
}

// Default returns the package-level client used by the convenience functions.
func Default() *Client {
	return defaultClient
}
