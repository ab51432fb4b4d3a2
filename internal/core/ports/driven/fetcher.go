package driven

import "context"

// Fetcher retrieves a remote document for the download-and-process
// pipeline. The whole body is read before returning; no streaming.
type Fetcher interface {
	// Fetch performs a GET and returns the body bytes and the
	// Content-Type header. A non-2xx status is an error.
	Fetch(ctx context.Context, url string) (body []byte, contentType string, err error)
}
