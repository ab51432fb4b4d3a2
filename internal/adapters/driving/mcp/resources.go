package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// uriScheme is the custom URI scheme for OCR server resources.
const uriScheme = "mistral-ocr://"

// supportedFormatsDoc enumerates the formats the OCR service accepts.
// Fixed text, kept in lockstep with the domain media type table.
const supportedFormatsDoc = `# Mistral OCR Supported Formats

## Document Formats
- PDF (.pdf)
- PowerPoint (.pptx)
- Word Documents (.docx)

## Image Formats
- PNG (.png)
- JPEG (.jpg, .jpeg)
- AVIF (.avif)

## Input Methods
- Document URL (direct link to file)
- Base64 encoded content
- Download from URL and process
- Local file path

## Output
- Extracted text in markdown format
- Preserved document structure (headers, paragraphs, lists, tables)
- Optional base64 encoded images with bounding boxes
`

// usageExamplesDoc shows example invocations of the OCR tools.
const usageExamplesDoc = `# Mistral OCR Usage Examples

## Process Document by URL
` + "```" + `
ocr_document_url(document_url="https://example.com/document.pdf")
` + "```" + `

## Process Base64 Document
` + "```" + `
ocr_document_base64(document_base64=..., media_type="application/pdf")
` + "```" + `

## Process Image by URL
` + "```" + `
ocr_image_url(image_url="https://example.com/image.png")
` + "```" + `

## Download and Process
` + "```" + `
download_and_ocr(url="https://example.com/file.pdf")
` + "```" + `

## Process Local File
` + "```" + `
ocr_local_file(file_path="/path/to/report.pdf")
` + "```" + `

## With Image Base64 Output
` + "```" + `
ocr_document_url(document_url="https://example.com/doc.pdf", include_image_base64=true)
` + "```" + `
`

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static documentation resources. Fixed text, not computed.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "supported-formats",
		Name:        "supported-formats",
		Description: "Supported document and image formats",
		MIMEType:    "text/markdown",
	}, staticResource(supportedFormatsDoc))

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "usage-examples",
		Name:        "usage-examples",
		Description: "Usage examples for the OCR tools",
		MIMEType:    "text/markdown",
	}, staticResource(usageExamplesDoc))
}

// staticResource builds a handler serving fixed markdown text.
func staticResource(text string) mcp.ResourceHandler {
	return func(
		_ context.Context,
		req *mcp.ReadResourceRequest,
	) (*mcp.ReadResourceResult, error) {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "text/markdown",
				Text:     text,
			}},
		}, nil
	}
}
