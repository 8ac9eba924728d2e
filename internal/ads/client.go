// Package ads provides a client for the ADS "bigquery" search API, used to
// look up which bibcodes ADS already holds.
package ads

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	// BaseURL is the ADS bigquery API endpoint.
	BaseURL = "https://api.adsabs.harvard.edu/v1/search/bigquery"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 60 * time.Second

	// RateLimit is a conservative request rate; the harvester only makes
	// one bigquery call per run, but shared clients should not burst.
	RateLimit = 5.0

	// MaxRows caps how many known bibcodes one query returns.
	MaxRows = 1000
)

// Client is a rate-limited HTTP client for the ADS bigquery API.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	token      string
	baseURL    string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithToken sets the access token for authenticated requests.
func WithToken(token string) ClientOption {
	return func(c *Client) {
		c.token = token
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		c.baseURL = u
	}
}

// NewClient creates a new ADS API client. The ADS_API_TOKEN environment
// variable supplies the token unless WithToken overrides it.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(RateLimit), 1),
		baseURL:    BaseURL,
	}

	if token := os.Getenv("ADS_API_TOKEN"); token != "" {
		c.token = token
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// bigqueryResponse is the subset of the Solr response we read.
type bigqueryResponse struct {
	ResponseHeader struct {
		Status int `json:"status"`
	} `json:"responseHeader"`
	Response struct {
		Docs []struct {
			Bibcode string `json:"bibcode"`
		} `json:"docs"`
	} `json:"response"`
}

// KnownKeys posts the candidate bibcodes to the bigquery endpoint and
// returns the subset ADS already knows. This is the snapshot the dedup
// filter runs against.
func (c *Client) KnownKeys(ctx context.Context, keys []string) (map[string]struct{}, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	params := url.Values{
		"q":    {"*:*"},
		"rows": {fmt.Sprint(MaxRows)},
		"wt":   {"json"},
		"fq":   {"{!bitset}"},
		"fl":   {"bibcode"},
	}
	payload := "bibcode\n" + strings.Join(keys, "\n")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"?"+params.Encode(), strings.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "big-query/csv")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer:"+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetworkError, err)
	}
	defer resp.Body.Close()

	if err := checkHTTPErrors(resp); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrInvalidResponse, err)
	}

	var parsed bigqueryResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if parsed.ResponseHeader.Status != 0 {
		return nil, &APIError{
			StatusCode: parsed.ResponseHeader.Status,
			Message:    "non-zero response status",
		}
	}

	known := make(map[string]struct{}, len(parsed.Response.Docs))
	for _, d := range parsed.Response.Docs {
		known[d.Bibcode] = struct{}{}
	}
	return known, nil
}

// checkHTTPErrors returns an error if the HTTP response indicates a problem.
func checkHTTPErrors(resp *http.Response) error {
	if resp.StatusCode == 401 || resp.StatusCode == 403 {
		return fmt.Errorf("%w: status %d", ErrAuthError, resp.StatusCode)
	}
	if resp.StatusCode == 429 {
		return fmt.Errorf("%w: status %d", ErrRateLimited, resp.StatusCode)
	}
	if resp.StatusCode >= 400 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("HTTP %d", resp.StatusCode),
		}
	}
	return nil
}
