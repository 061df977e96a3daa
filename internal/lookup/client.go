package lookup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/vmunix/movieshelf/pkg/naming"
)

const (
	defaultAPIURL        = "https://imdb8.p.rapidapi.com"
	defaultAPIHost       = "imdb8.p.rapidapi.com"
	defaultCacheTTL      = 24 * time.Hour
	DefaultReferenceBase = "https://www.imdb.com"
)

// ErrNoResults is returned when a search has no matches.
var ErrNoResults = errors.New("no results")

// Resolver turns a title into a reference URL. resolved is false when the
// URL is the bare reference base.
type Resolver interface {
	ReferenceURL(ctx context.Context, title string) (ref string, resolved bool)
}

// Client is a title search API client.
type Client struct {
	apiKey        string
	apiHost       string
	baseURL       string
	referenceBase string
	httpClient    *http.Client
	cache         *cache
	log           *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom API URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(url, "/")
	}
}

// WithAPIHost sets the x-rapidapi-host header value.
func WithAPIHost(host string) Option {
	return func(c *Client) {
		c.apiHost = host
	}
}

// WithReferenceBase sets the URL result ids are appended to.
func WithReferenceBase(base string) Option {
	return func(c *Client) {
		c.referenceBase = base
	}
}

// WithCacheTTL sets the cache TTL.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = newCache(ttl)
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger used for fallbacks.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient creates a new title search client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:        apiKey,
		apiHost:       defaultAPIHost,
		baseURL:       defaultAPIURL,
		referenceBase: DefaultReferenceBase,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		cache: newCache(defaultCacheTTL),
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Find searches titles matching the query.
// Returns ErrNoResults when nothing matches.
func (c *Client) Find(ctx context.Context, title string) (*FindResponse, error) {
	if resp, ok := c.cache.get(title); ok {
		return resp, nil
	}

	reqURL := fmt.Sprintf("%s/title/find?q=%s", c.baseURL, url.QueryEscape(title))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("x-rapidapi-host", c.apiHost)
	req.Header.Set("x-rapidapi-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("title search API error: %s", resp.Status)
	}

	var found FindResponse
	if err := json.NewDecoder(resp.Body).Decode(&found); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(found.Results) == 0 || found.Results[0].ID == "" {
		return nil, fmt.Errorf("find %q: %w", title, ErrNoResults)
	}

	c.cache.set(title, &found)
	return &found, nil
}

// ReferenceURL returns the reference base with the first result's id
// appended. Any failure falls back to the bare base.
func (c *Client) ReferenceURL(ctx context.Context, title string) (string, bool) {
	found, err := c.Find(ctx, title)
	if err != nil {
		c.log.Warn("title lookup failed", "title", title, "error", err)
		return c.referenceBase, false
	}
	c.logMatch(title, found.Results)
	return c.referenceBase + found.Results[0].Path(), true
}

// logMatch grades the first result against the title. The first result is
// always the one used; a closer candidate further down is only reported.
func (c *Client) logMatch(title string, results []Result) {
	if results[0].Title == "" {
		return
	}
	titles := make([]string, len(results))
	for i, r := range results {
		titles[i] = r.Title
	}

	first := naming.MatchTitle(title, titles[0])
	if idx, best := naming.BestMatch(title, titles); idx > 0 && best.Confidence > first.Confidence {
		c.log.Warn("title lookup kept first result over a closer match",
			"title", title, "first", titles[0], "closer", best.Candidate, "closer_id", results[idx].ID)
		return
	}
	if first.Confidence <= naming.ConfidenceLow {
		c.log.Warn("title lookup low confidence", "title", title, "match", titles[0], "score", first.Score)
		return
	}
	c.log.Debug("title lookup", "title", title, "match", titles[0], "confidence", first.Confidence.String())
}

// Static is a Resolver that never calls out.
type Static string

// ReferenceURL returns the static URL.
func (s Static) ReferenceURL(context.Context, string) (string, bool) { return string(s), false }

var (
	_ Resolver = (*Client)(nil)
	_ Resolver = Static("")
)
