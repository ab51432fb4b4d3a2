package mcp

import (
	"context"

	"github.com/docufind-labs/mistral-ocr-mcp/internal/core/domain"
	"github.com/docufind-labs/mistral-ocr-mcp/internal/core/ports/driving"
)

// mockDocumentService is a mock implementation of driving.DocumentService.
// It returns the configured result or error from every method and
// counts invocations so tests can assert how the tool layer drives
// the pipeline.
type mockDocumentService struct {
	result *domain.ProcessResult
	err    error

	calls int
}

func (m *mockDocumentService) ProcessURL(
	_ context.Context, _ string, _ driving.ProcessOptions,
) (*domain.ProcessResult, error) {
	m.calls++
	return m.result, m.err
}

func (m *mockDocumentService) ProcessImageURL(
	_ context.Context, _ string, _ driving.ProcessOptions,
) (*domain.ProcessResult, error) {
	m.calls++
	return m.result, m.err
}

func (m *mockDocumentService) ProcessBase64(
	_ context.Context, _, _ string, _ driving.ProcessOptions,
) (*domain.ProcessResult, error) {
	m.calls++
	return m.result, m.err
}

func (m *mockDocumentService) ProcessFile(
	_ context.Context, _, _ string, _ driving.ProcessOptions,
) (*domain.ProcessResult, error) {
	m.calls++
	return m.result, m.err
}

func (m *mockDocumentService) DownloadAndProcess(
	_ context.Context, _ string, _ driving.ProcessOptions,
) (*domain.ProcessResult, error) {
	m.calls++
	return m.result, m.err
}
