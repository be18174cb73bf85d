package mealdb

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Fetcher performs one GET against the upstream API and returns the body of
// a successful response. ttl is the caller's freshness hint; plain
// transports ignore it.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string, ttl time.Duration) ([]byte, error)
}

// StatusError reports a non-2xx upstream response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("upstream http %d", e.StatusCode)
	}
	return fmt.Sprintf("upstream http %d: %s", e.StatusCode, e.Body)
}

// maxErrorBody bounds how much of a failed response is kept for the error.
const maxErrorBody = 512

// HTTPFetcher is the network Fetcher. It makes exactly one attempt per call.
type HTTPFetcher struct {
	http *http.Client
}

// NewHTTPFetcher returns a fetcher with an instrumented transport. A zero
// timeout leaves the request bounded only by its context.
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// NewHTTPFetcherWithClient wraps an existing client, e.g. one pointed at an
// httptest server.
func NewHTTPFetcherWithClient(client *http.Client) *HTTPFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPFetcher{http: client}
}

// Fetch implements Fetcher.
func (f *HTTPFetcher) Fetch(ctx context.Context, rawURL string, _ time.Duration) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read upstream body: %w", err)
	}
	return raw, nil
}
