package driving

import (
	"context"

	"github.com/docufind-labs/mistral-ocr-mcp/internal/core/domain"
)

// ProcessOptions configures one OCR invocation.
type ProcessOptions struct {
	// IncludeImages requests base64-encoded page images in the
	// service response.
	IncludeImages bool
}

// DocumentService runs the resolve-invoke-assemble OCR pipeline.
// Each method is a single linear pass over one input variant; calls
// are independent and share no mutable state.
type DocumentService interface {
	// ProcessURL runs OCR over a document at a remote URL.
	// The URL is submitted unchanged; no existence check is made.
	ProcessURL(ctx context.Context, url string, opts ProcessOptions) (*domain.ProcessResult, error)

	// ProcessImageURL runs OCR over an image at a remote URL.
	ProcessImageURL(ctx context.Context, url string, opts ProcessOptions) (*domain.ProcessResult, error)

	// ProcessBase64 runs OCR over an inline base64 payload with a
	// caller-declared media type.
	ProcessBase64(ctx context.Context, payload, mediaType string, opts ProcessOptions) (*domain.ProcessResult, error)

	// ProcessFile runs OCR over a local file and writes the joined
	// markdown to outputPath. When outputPath is empty, it defaults
	// to the input path with its extension replaced by ".md".
	ProcessFile(ctx context.Context, path, outputPath string, opts ProcessOptions) (*domain.ProcessResult, error)

	// DownloadAndProcess fetches a document over HTTP and runs OCR
	// over the downloaded bytes.
	DownloadAndProcess(ctx context.Context, url string, opts ProcessOptions) (*domain.ProcessResult, error)
}
