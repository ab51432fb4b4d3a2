package driven

import (
	"context"

	"github.com/docufind-labs/mistral-ocr-mcp/internal/core/domain"
)

// OCRClient invokes the remote OCR service.
//
// Implementations submit exactly one document reference per call and
// return the service's structured page list. Failures are propagated
// untranslated; the calling service converts them into its uniform
// response. No retry or request pagination happens at this layer.
type OCRClient interface {
	// Process runs OCR over the referenced document. When
	// includeImages is true, embedded page images are returned
	// base64-encoded alongside the markdown.
	Process(ctx context.Context, ref domain.Reference, includeImages bool) (*domain.OCRResult, error)
}
