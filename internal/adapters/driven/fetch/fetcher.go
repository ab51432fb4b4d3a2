// Package fetch provides an HTTP fetcher for the download-and-process
// pipeline.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/docufind-labs/mistral-ocr-mcp/internal/core/ports/driven"
)

// Ensure Fetcher implements the interface.
var _ driven.Fetcher = (*Fetcher)(nil)

// DefaultTimeout bounds a single download.
const DefaultTimeout = 120 * time.Second

// Fetcher downloads a document with a plain GET and returns the whole
// body. Partial or streaming reads are not supported; documents are
// assumed to fit in memory.
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a fetcher with the given timeout.
// A zero timeout falls back to DefaultTimeout.
func NewFetcher(timeout time.Duration) *Fetcher {
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &Fetcher{
		client: &http.Client{Timeout: timeout},
	}
}

// Fetch performs a GET and returns the body bytes and the Content-Type
// header. A non-2xx status is an error.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, "", fmt.Errorf("create request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", fmt.Errorf("fetching %s: status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("reading %s: %w", url, err)
	}

	return body, resp.Header.Get("Content-Type"), nil
}
