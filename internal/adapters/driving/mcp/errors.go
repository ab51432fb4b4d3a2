// Package mcp provides an MCP (Model Context Protocol) server adapter
// exposing the OCR pipeline as agent-invocable tools. It enables AI
// assistants like Claude to extract text from documents and images.
package mcp

import "errors"

// ErrMissingDocumentService is returned when the document service is not provided.
var ErrMissingDocumentService = errors.New("mcp: document service is required")
