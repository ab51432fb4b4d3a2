package domain

import (
	"encoding/base64"
	"fmt"
)

// ReferenceKind selects the request shape the OCR service expects for
// a reference.
type ReferenceKind string

const (
	// KindDocument submits the reference as a document URL.
	KindDocument ReferenceKind = "document_url"

	// KindImage submits the reference as an image URL.
	KindImage ReferenceKind = "image_url"
)

// Reference is a submission-ready pointer to document content.
// Local files and inline base64 payloads are normalised to the data-URI
// form before invocation, so the URL field is the only content carrier.
type Reference struct {
	// Kind selects the document or image request shape.
	Kind ReferenceKind

	// URL is a remote URL or a data-URI embedding the content.
	URL string
}

// NewDocumentReference builds a document reference from a remote URL.
// The URL is passed through unchanged; existence checks are deferred
// to the remote service.
func NewDocumentReference(url string) Reference {
	return Reference{Kind: KindDocument, URL: url}
}

// NewImageReference builds an image reference from a remote URL.
func NewImageReference(url string) Reference {
	return Reference{Kind: KindImage, URL: url}
}

// DataURI encodes a payload as a data-URI usable anywhere the OCR
// service accepts a URL.
func DataURI(mediaType string, payload []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", mediaType, base64.StdEncoding.EncodeToString(payload))
}

// DataURIFromBase64 wraps an already-encoded base64 payload as a
// data-URI without re-encoding it.
func DataURIFromBase64(mediaType, payload string) string {
	return fmt.Sprintf("data:%s;base64,%s", mediaType, payload)
}
