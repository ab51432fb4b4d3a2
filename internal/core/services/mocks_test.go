package services

import (
	"context"

	"github.com/docufind-labs/mistral-ocr-mcp/internal/core/domain"
)

// mockOCRClient is a mock implementation of driven.OCRClient.
// It records every reference it receives so tests can assert whether
// and how the remote service was invoked.
type mockOCRClient struct {
	result *domain.OCRResult
	err    error

	calls    int
	lastRef  domain.Reference
	lastIncl bool
}

func (m *mockOCRClient) Process(
	_ context.Context,
	ref domain.Reference,
	includeImages bool,
) (*domain.OCRResult, error) {
	m.calls++
	m.lastRef = ref
	m.lastIncl = includeImages
	return m.result, m.err
}

// mockFetcher is a mock implementation of driven.Fetcher.
type mockFetcher struct {
	body        []byte
	contentType string
	err         error

	calls   int
	lastURL string
}

func (m *mockFetcher) Fetch(_ context.Context, url string) ([]byte, string, error) {
	m.calls++
	m.lastURL = url
	return m.body, m.contentType, m.err
}
