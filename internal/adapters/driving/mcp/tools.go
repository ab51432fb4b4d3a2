package mcp

import (
	"context"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/docufind-labs/mistral-ocr-mcp/internal/core/domain"
	"github.com/docufind-labs/mistral-ocr-mcp/internal/core/ports/driving"
)

// Envelope is the uniform tool response. Every tool returns it with
// Success reporting the outcome; failures are carried in Error, never
// raised to the caller.
type Envelope struct {
	Success    bool           `json:"success"`
	Text       string         `json:"text,omitempty"`
	OutputFile string         `json:"output_file,omitempty"`
	Error      string         `json:"error,omitempty"`
	Metadata   map[string]any `json:"metadata"`
}

// OCRDocumentURLInput is the input schema for the ocr_document_url tool.
type OCRDocumentURLInput struct {
	DocumentURL        string `json:"document_url" jsonschema:"URL to the document (supports pdf, pptx, docx, png, jpeg, jpg, avif)"`
	IncludeImageBase64 bool   `json:"include_image_base64,omitempty" jsonschema:"whether to include base64 encoded images in the response"`
}

// OCRImageURLInput is the input schema for the ocr_image_url tool.
type OCRImageURLInput struct {
	ImageURL           string `json:"image_url" jsonschema:"URL to the image (supports png, jpeg, jpg, avif)"`
	IncludeImageBase64 bool   `json:"include_image_base64,omitempty" jsonschema:"whether to include base64 encoded images in the response"`
}

// OCRDocumentBase64Input is the input schema for the ocr_document_base64 tool.
type OCRDocumentBase64Input struct {
	DocumentBase64     string `json:"document_base64" jsonschema:"base64 encoded document content"`
	MediaType          string `json:"media_type" jsonschema:"MIME type of the document (e.g. application/pdf, image/png)"`
	IncludeImageBase64 bool   `json:"include_image_base64,omitempty" jsonschema:"whether to include base64 encoded images in the response"`
}

// DownloadAndOCRInput is the input schema for the download_and_ocr tool.
type DownloadAndOCRInput struct {
	URL                string `json:"url" jsonschema:"URL to download and process"`
	IncludeImageBase64 bool   `json:"include_image_base64,omitempty" jsonschema:"whether to include base64 encoded images in the response"`
}

// OCRLocalFileInput is the input schema for the ocr_local_file tool.
type OCRLocalFileInput struct {
	FilePath           string `json:"file_path" jsonschema:"path to the local document or image file"`
	OutputPath         string `json:"output_path,omitempty" jsonschema:"where to write the extracted markdown (defaults to the input path with a .md extension)"`
	IncludeImageBase64 bool   `json:"include_image_base64,omitempty" jsonschema:"whether to include base64 encoded images in the response"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ocr_document_url",
		Description: "Extract text from a document at a URL using Mistral OCR",
	}, s.handleDocumentURL)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ocr_image_url",
		Description: "Extract text from an image at a URL using Mistral OCR",
	}, s.handleImageURL)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ocr_document_base64",
		Description: "Extract text from a base64 encoded document using Mistral OCR",
	}, s.handleDocumentBase64)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "download_and_ocr",
		Description: "Download a document or image from a URL and extract its text with Mistral OCR",
	}, s.handleDownloadAndOCR)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ocr_local_file",
		Description: "Extract text from a local document or image file and write it as markdown",
	}, s.handleLocalFile)
}

// handleDocumentURL handles the ocr_document_url tool invocation.
func (s *Server) handleDocumentURL(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input OCRDocumentURLInput,
) (*mcp.CallToolResult, Envelope, error) {
	meta := newMetadata()
	meta["document_url"] = input.DocumentURL
	meta["include_image_base64"] = input.IncludeImageBase64

	opts := driving.ProcessOptions{IncludeImages: input.IncludeImageBase64}
	result, err := s.ports.Document.ProcessURL(ctx, input.DocumentURL, opts)
	if err != nil {
		return nil, failure(err, meta), nil
	}

	return nil, success(result, meta), nil
}

// handleImageURL handles the ocr_image_url tool invocation.
func (s *Server) handleImageURL(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input OCRImageURLInput,
) (*mcp.CallToolResult, Envelope, error) {
	meta := newMetadata()
	meta["image_url"] = input.ImageURL
	meta["include_image_base64"] = input.IncludeImageBase64

	opts := driving.ProcessOptions{IncludeImages: input.IncludeImageBase64}
	result, err := s.ports.Document.ProcessImageURL(ctx, input.ImageURL, opts)
	if err != nil {
		return nil, failure(err, meta), nil
	}

	return nil, success(result, meta), nil
}

// handleDocumentBase64 handles the ocr_document_base64 tool invocation.
func (s *Server) handleDocumentBase64(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input OCRDocumentBase64Input,
) (*mcp.CallToolResult, Envelope, error) {
	meta := newMetadata()
	meta["media_type"] = input.MediaType
	meta["include_image_base64"] = input.IncludeImageBase64

	opts := driving.ProcessOptions{IncludeImages: input.IncludeImageBase64}
	result, err := s.ports.Document.ProcessBase64(ctx, input.DocumentBase64, input.MediaType, opts)
	if err != nil {
		return nil, failure(err, meta), nil
	}

	return nil, success(result, meta), nil
}

// handleDownloadAndOCR handles the download_and_ocr tool invocation.
func (s *Server) handleDownloadAndOCR(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DownloadAndOCRInput,
) (*mcp.CallToolResult, Envelope, error) {
	meta := newMetadata()
	meta["url"] = input.URL
	meta["include_image_base64"] = input.IncludeImageBase64

	opts := driving.ProcessOptions{IncludeImages: input.IncludeImageBase64}
	result, err := s.ports.Document.DownloadAndProcess(ctx, input.URL, opts)
	if err != nil {
		return nil, failure(err, meta), nil
	}

	return nil, success(result, meta), nil
}

// handleLocalFile handles the ocr_local_file tool invocation.
// This is the only variant that writes an output file; its envelope
// carries the output path instead of the full markdown.
func (s *Server) handleLocalFile(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input OCRLocalFileInput,
) (*mcp.CallToolResult, Envelope, error) {
	meta := newMetadata()
	meta["file_path"] = input.FilePath
	meta["include_image_base64"] = input.IncludeImageBase64

	opts := driving.ProcessOptions{IncludeImages: input.IncludeImageBase64}
	result, err := s.ports.Document.ProcessFile(ctx, input.FilePath, input.OutputPath, opts)
	if err != nil {
		return nil, failure(err, meta), nil
	}

	env := success(result, meta)
	env.Text = ""
	env.OutputFile = result.OutputFile
	return nil, env, nil
}

// newMetadata starts a metadata map with a fresh request identifier.
func newMetadata() map[string]any {
	return map[string]any{
		"request_id": uuid.NewString(),
	}
}

// success builds the envelope for a completed pipeline run.
func success(result *domain.ProcessResult, meta map[string]any) Envelope {
	meta["pages_processed"] = result.PagesProcessed
	if result.DocSizeBytes > 0 {
		meta["document_size_bytes"] = result.DocSizeBytes
	}
	if result.Model != "" {
		meta["model"] = result.Model
	}

	return Envelope{
		Success:  true,
		Text:     result.Markdown,
		Metadata: meta,
	}
}

// failure converts any pipeline error into the uniform envelope.
// Tool handlers never raise; the agent always receives a well-formed
// object and branches on the success flag.
func failure(err error, meta map[string]any) Envelope {
	return Envelope{
		Success:  false,
		Error:    err.Error(),
		Metadata: meta,
	}
}
