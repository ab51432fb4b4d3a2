package domain

// ProcessResult is the assembled outcome of a successful OCR
// invocation, consumed by the tool layer when building its response.
type ProcessResult struct {
	// Markdown is the blank-line-joined per-page markdown.
	Markdown string

	// OutputFile is the path the markdown was written to, when the
	// local-file pipeline resolved one. Empty otherwise.
	OutputFile string

	// PagesProcessed is the page count reported by the service.
	PagesProcessed int

	// DocSizeBytes is the input size in bytes, when known locally
	// (file size or decoded payload size). Zero for remote URLs.
	DocSizeBytes int

	// Model is the model identifier the service used.
	Model string
}
