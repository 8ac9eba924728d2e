package landing

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	// FetchTimeout is the per-page HTTP timeout.
	FetchTimeout = 30 * time.Second

	// FetchRateLimit throttles repository walks. A full harvest touches
	// on the order of a hundred pages; be polite about it.
	FetchRateLimit = 2.0
)

// PageCache stores fetched page bodies between runs.
type PageCache interface {
	Get(url string) (body string, ok bool, err error)
	Put(url, body string) error
}

// Fetcher retrieves landing pages, rate limited and optionally cached.
type Fetcher struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	cache      PageCache
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithCache enables the page cache.
func WithCache(c PageCache) FetcherOption {
	return func(f *Fetcher) {
		f.cache = c
	}
}

// WithFetchClient sets a custom HTTP client.
func WithFetchClient(hc *http.Client) FetcherOption {
	return func(f *Fetcher) {
		f.httpClient = hc
	}
}

// NewFetcher creates a page fetcher.
func NewFetcher(opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		httpClient: &http.Client{Timeout: FetchTimeout},
		limiter:    rate.NewLimiter(rate.Limit(FetchRateLimit), 1),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch returns the body of a page, from cache when available. Fresh
// fetches are written back to the cache.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.cache != nil {
		body, ok, err := f.cache.Get(url)
		if err != nil {
			return "", err
		}
		if ok {
			return body, nil
		}
	}

	if err := f.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request for %s: %w", url, err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching %s: HTTP %d", url, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", url, err)
	}
	body := string(data)

	if f.cache != nil {
		if err := f.cache.Put(url, body); err != nil {
			return "", err
		}
	}
	return body, nil
}
