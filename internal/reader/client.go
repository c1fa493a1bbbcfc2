package reader

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://readwise.io/api/v3"

// ErrUnauthorized indicates the access token was rejected.
var ErrUnauthorized = errors.New("reader: invalid access token")

// RateLimitError indicates the API asked us to slow down.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("reader: rate limited, retry after %s", e.RetryAfter)
}

// Client talks to the Reader HTTP API.
type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// WithBaseURL overrides the API base URL (useful for testing).
func WithBaseURL(u string) Option {
	return func(cl *Client) {
		cl.baseURL = u
	}
}

// New creates a Client with the given access token and options.
func New(token string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, errors.New("reader: access token is required")
	}
	c := &Client{
		token:      token,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ListOptions filters the document listing.
type ListOptions struct {
	// UpdatedAfter limits results to documents updated after this instant.
	UpdatedAfter time.Time
	// Location filters by inbox location (e.g., "new", "later", "archive").
	Location string
	// WithContent requests the full HTML content of each document.
	WithContent bool
}

// List fetches all documents matching opts, following pagination cursors
// until the API reports no further pages.
func (c *Client) List(ctx context.Context, opts ListOptions) ([]Document, error) {
	var docs []Document
	cursor := ""

	for {
		page, err := c.listPage(ctx, opts, cursor)
		if err != nil {
			return nil, err
		}
		docs = append(docs, page.Results...)
		if page.NextPageCursor == "" {
			return docs, nil
		}
		cursor = page.NextPageCursor
	}
}

func (c *Client) listPage(ctx context.Context, opts ListOptions, cursor string) (*listResponse, error) {
	q := url.Values{}
	if !opts.UpdatedAfter.IsZero() {
		q.Set("updatedAfter", opts.UpdatedAfter.UTC().Format(time.RFC3339))
	}
	if opts.Location != "" {
		q.Set("location", opts.Location)
	}
	if opts.WithContent {
		q.Set("withHtmlContent", "true")
	}
	if cursor != "" {
		q.Set("pageCursor", cursor)
	}

	endpoint := c.baseURL + "/list/"
	if enc := q.Encode(); enc != "" {
		endpoint += "?" + enc
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Token "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching documents: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Fall through to decode.
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	case http.StatusTooManyRequests:
		return nil, &RateLimitError{RetryAfter: parseRetryAfter(resp)}
	default:
		return nil, fmt.Errorf("reader API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	var page listResponse
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("parsing list JSON: %w", err)
	}
	return &page, nil
}

// Ping performs a cheap authenticated request to verify connectivity and
// token validity. Used by `feynman doctor`.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/", nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Token "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("reaching reader API: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNoContent, http.StatusOK:
		return nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	default:
		return fmt.Errorf("reader API returned status %d", resp.StatusCode)
	}
}

func parseRetryAfter(resp *http.Response) time.Duration {
	if s := resp.Header.Get("Retry-After"); s != "" {
		if d, err := time.ParseDuration(s + "s"); err == nil {
			return d
		}
	}
	return time.Minute
}
