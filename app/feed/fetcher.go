package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Some servers (notably WordPress sites behind bot mitigation) reject
// default Go client identities, so the fetcher advertises a desktop
// browser and an Accept header that prefers feed MIME types.
const acceptHeader = "application/rss+xml, application/atom+xml, application/xml;q=0.9, text/xml;q=0.8, */*;q=0.7"

const maxResponseSize = 10 * 1024 * 1024

// FetchError reports a non-success HTTP status from the remote feed source.
type FetchError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Status)
}

type Fetcher struct {
	client    *http.Client
	userAgent string
}

// NewFetcher builds a fetcher with an explicit identity and timeout,
// keeping the feed package free of ambient configuration state.
func NewFetcher(userAgent string, timeout time.Duration) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				IdleConnTimeout:     30 * time.Second,
				MaxIdleConnsPerHost: 5,
			},
		},
		userAgent: userAgent,
	}
}

// Run performs a single GET against the feed URL. No retries: failure is
// terminal for the request.
func (f *Fetcher) Run(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", acceptHeader)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 400 {
		return nil, &FetchError{URL: url, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if len(data) > maxResponseSize {
		return nil, fmt.Errorf("response too large (exceeds %d bytes)", maxResponseSize)
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("empty response body")
	}

	return data, nil
}
