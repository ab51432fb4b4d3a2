package domain

import "strings"

// Page is one unit of the OCR service's output.
type Page struct {
	// Index is the zero-based page number.
	Index int

	// Markdown is the extracted text for the page.
	Markdown string

	// Images are embedded images extracted from the page.
	// Populated only when the caller requested image data.
	Images []PageImage
}

// PageImage is an image extracted from a page, with its bounding box.
type PageImage struct {
	// ID identifies the image within the page markdown.
	ID string

	// Bounding box corners in page pixel coordinates.
	TopLeftX     int
	TopLeftY     int
	BottomRightX int
	BottomRightY int

	// Base64 is the base64-encoded image data, when requested.
	Base64 string
}

// Usage reports the OCR service's accounting for one invocation.
type Usage struct {
	// PagesProcessed is the number of pages the service billed.
	PagesProcessed int

	// DocSizeBytes is the document size as seen by the service.
	DocSizeBytes int
}

// OCRResult is the structured response of one OCR invocation.
// It is produced once by the remote service and never mutated.
type OCRResult struct {
	// Pages are the per-page results in document order.
	Pages []Page

	// Model is the model identifier the service used.
	Model string

	// Usage is the service-side accounting for the call.
	Usage Usage
}

// JoinPages concatenates per-page markdown in page order, separating
// pages with a blank line. Each non-empty page contributes its markdown
// followed by one blank line; pages with empty markdown contribute
// nothing. A zero-page result yields the empty string.
func JoinPages(pages []Page) string {
	var b strings.Builder
	for _, p := range pages {
		if p.Markdown == "" {
			continue
		}
		b.WriteString(p.Markdown)
		b.WriteString("\n\n")
	}
	return b.String()
}
