// Package wikipedia fetches page summaries from the Wikipedia REST v1 API,
// read through the summary cache.
package wikipedia

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/GbrlSouza/API-Times-Brasileiros/internal/cache"
	"github.com/GbrlSouza/API-Times-Brasileiros/internal/httpclient"
	"github.com/GbrlSouza/API-Times-Brasileiros/internal/logger"
)

// DefaultBaseURL is the Portuguese Wikipedia summary endpoint.
const DefaultBaseURL = "https://pt.wikipedia.org/api/rest_v1/page/summary/"

// cacheKeyPrefix namespaces summary entries in the cache.
const cacheKeyPrefix = "wiki:"

// Summary is the distilled payload of a page summary. Any field other than
// Title may be empty; callers must tolerate absence.
type Summary struct {
	Title        string `json:"title"`
	WikipediaURL string `json:"wikipedia_url,omitempty"`
	Extract      string `json:"extract,omitempty"`
	Thumbnail    string `json:"thumbnail,omitempty"`
}

// UpstreamError reports a non-success status from the summary endpoint.
// Callers degrade to "no media available" rather than failing the request.
type UpstreamError struct {
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("wikipedia summary fetch failed: status %d", e.StatusCode)
}

// Options configures a Client.
type Options struct {
	// BaseURL of the summary endpoint. Defaults to DefaultBaseURL.
	BaseURL string
	// Timeout bounds each outbound request. Defaults to 10s.
	Timeout time.Duration
	// CacheTTL is the expiry for cached summaries. Defaults to cache.DefaultTTL.
	CacheTTL time.Duration
	// HTTPClient overrides the default transport. Used by tests.
	HTTPClient *http.Client
	// CacheHits and CacheMisses, when set, count cache lookups.
	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter
}

const defaultTimeout = 10 * time.Second

// Client fetches page summaries with read-through caching. A miss issues
// exactly one outbound request; no retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
	store      cache.Store
	ttl        time.Duration
	logger     logger.Logger
	hits       prometheus.Counter
	misses     prometheus.Counter
}

// NewClient creates a summary client backed by the given cache store.
func NewClient(store cache.Store, log logger.Logger, opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout == 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.CacheTTL == 0 {
		opts.CacheTTL = cache.DefaultTTL
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = httpclient.New(&httpclient.Config{Timeout: opts.Timeout})
	}

	return &Client{
		baseURL:    opts.BaseURL,
		httpClient: opts.HTTPClient,
		store:      store,
		ttl:        opts.CacheTTL,
		logger:     log,
		hits:       opts.CacheHits,
		misses:     opts.CacheMisses,
	}
}

// summaryResponse mirrors the fields of the REST v1 payload we consume.
type summaryResponse struct {
	Title     string `json:"title"`
	Extract   string `json:"extract"`
	Thumbnail struct {
		Source string `json:"source"`
	} `json:"thumbnail"`
	ContentURLs struct {
		Desktop struct {
			Page string `json:"page"`
		} `json:"desktop"`
	} `json:"content_urls"`
}

// Summary returns the summary for a reference-page title. Cache errors are
// logged and treated as misses; they never fail the lookup.
func (c *Client) Summary(ctx context.Context, title string) (*Summary, error) {
	key := cacheKeyPrefix + title

	if cached := c.fromCache(ctx, key); cached != nil {
		c.count(c.hits)
		return cached, nil
	}
	c.count(c.misses)

	sum, err := c.fetch(ctx, title)
	if err != nil {
		return nil, err
	}

	c.toCache(ctx, key, sum)
	return sum, nil
}

func (c *Client) fromCache(ctx context.Context, key string) *Summary {
	data, ok, err := c.store.Get(ctx, key)
	if err != nil {
		c.logger.Warn("Summary cache read failed",
			logger.String("key", key),
			logger.Error(err),
		)
		return nil
	}
	if !ok {
		return nil
	}

	var sum Summary
	if unmarshalErr := json.Unmarshal(data, &sum); unmarshalErr != nil {
		c.logger.Warn("Discarding undecodable summary cache entry",
			logger.String("key", key),
			logger.Error(unmarshalErr),
		)
		return nil
	}
	return &sum
}

func (c *Client) toCache(ctx context.Context, key string, sum *Summary) {
	data, err := json.Marshal(sum)
	if err != nil {
		return
	}
	if setErr := c.store.Set(ctx, key, data, c.ttl); setErr != nil {
		c.logger.Warn("Summary cache write failed",
			logger.String("key", key),
			logger.Error(setErr),
		)
	}
}

func (c *Client) count(counter prometheus.Counter) {
	if counter != nil {
		counter.Inc()
	}
}

// fetch issues the single outbound request for a cache miss.
func (c *Client) fetch(ctx context.Context, title string) (*Summary, error) {
	endpoint := c.baseURL + url.PathEscape(title)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build summary request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch summary for %q: %w", title, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &UpstreamError{StatusCode: resp.StatusCode}
	}

	var wire summaryResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&wire); decodeErr != nil {
		return nil, fmt.Errorf("decode summary for %q: %w", title, decodeErr)
	}

	return &Summary{
		Title:        wire.Title,
		WikipediaURL: wire.ContentURLs.Desktop.Page,
		Extract:      wire.Extract,
		Thumbnail:    wire.Thumbnail.Source,
	}, nil
}
