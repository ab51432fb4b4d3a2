// Package domain defines the core business entities for the OCR pipeline.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Reference: A submission-ready pointer to document content
//   - Page / OCRResult: The structured output of the remote OCR service
//   - ProcessResult: The assembled outcome of one OCR invocation
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
