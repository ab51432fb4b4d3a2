package mistral

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docufind-labs/mistral-ocr-mcp/internal/core/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*OCRClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewOCRClient(Config{
		APIKey:  "test-key",
		BaseURL: srv.URL,
		// Generous limit so tests never wait on the bucket.
		RequestsPerSecond: 1000,
		Burst:             1000,
	})
	require.NoError(t, err)
	return client, srv
}

func TestNewOCRClient(t *testing.T) {
	t.Run("requires API key", func(t *testing.T) {
		_, err := NewOCRClient(Config{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "API key")
	})

	t.Run("applies defaults", func(t *testing.T) {
		client, err := NewOCRClient(Config{APIKey: "k"})
		require.NoError(t, err)
		assert.Equal(t, Model, client.ModelName())
		assert.Equal(t, DefaultBaseURL, client.baseURL)
	})

	t.Run("model override", func(t *testing.T) {
		client, err := NewOCRClient(Config{APIKey: "k", Model: "mistral-ocr-2505"})
		require.NoError(t, err)
		assert.Equal(t, "mistral-ocr-2505", client.ModelName())
	})
}

func TestOCRClient_Process(t *testing.T) {
	ctx := context.Background()

	t.Run("submits document request shape", func(t *testing.T) {
		var captured ocrRequest
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/ocr", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"pages": [
					{"index": 0, "markdown": "# Title"},
					{"index": 1, "markdown": "Body"}
				],
				"model": "mistral-ocr-latest",
				"usage_info": {"pages_processed": 2, "doc_size_bytes": 1024}
			}`))
		})

		result, err := client.Process(ctx, domain.NewDocumentReference("https://example.com/doc.pdf"), false)

		require.NoError(t, err)
		assert.Equal(t, Model, captured.Model)
		assert.Equal(t, "document_url", captured.Document.Type)
		assert.Equal(t, "https://example.com/doc.pdf", captured.Document.DocumentURL)
		assert.Empty(t, captured.Document.ImageURL)
		assert.False(t, captured.IncludeImageBase64)

		require.Len(t, result.Pages, 2)
		assert.Equal(t, "# Title", result.Pages[0].Markdown)
		assert.Equal(t, 2, result.Usage.PagesProcessed)
		assert.Equal(t, 1024, result.Usage.DocSizeBytes)
		assert.Equal(t, "mistral-ocr-latest", result.Model)
	})

	t.Run("submits image request shape", func(t *testing.T) {
		var captured ocrRequest
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
			w.Write([]byte(`{"pages": [], "model": "mistral-ocr-latest", "usage_info": {}}`))
		})

		_, err := client.Process(ctx, domain.NewImageReference("https://example.com/scan.png"), true)

		require.NoError(t, err)
		assert.Equal(t, "image_url", captured.Document.Type)
		assert.Equal(t, "https://example.com/scan.png", captured.Document.ImageURL)
		assert.Empty(t, captured.Document.DocumentURL)
		assert.True(t, captured.IncludeImageBase64)
	})

	t.Run("decodes embedded images", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{
				"pages": [{
					"index": 0,
					"markdown": "![img-0](img-0)",
					"images": [{
						"id": "img-0",
						"top_left_x": 10, "top_left_y": 20,
						"bottom_right_x": 110, "bottom_right_y": 220,
						"image_base64": "aGVsbG8="
					}]
				}],
				"model": "mistral-ocr-latest",
				"usage_info": {"pages_processed": 1}
			}`))
		})

		result, err := client.Process(ctx, domain.NewDocumentReference("https://example.com/doc.pdf"), true)

		require.NoError(t, err)
		require.Len(t, result.Pages, 1)
		require.Len(t, result.Pages[0].Images, 1)
		img := result.Pages[0].Images[0]
		assert.Equal(t, "img-0", img.ID)
		assert.Equal(t, 10, img.TopLeftX)
		assert.Equal(t, 220, img.BottomRightY)
		assert.Equal(t, "aGVsbG8=", img.Base64)
	})

	t.Run("API error body is surfaced", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": {"message": "invalid api key", "type": "authentication_error"}}`))
		})

		_, err := client.Process(ctx, domain.NewDocumentReference("https://example.com/doc.pdf"), false)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid api key")
	})

	t.Run("non-200 without error object is surfaced with status", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{}`))
		})

		_, err := client.Process(ctx, domain.NewDocumentReference("https://example.com/doc.pdf"), false)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 503")
	})

	t.Run("network failure is surfaced", func(t *testing.T) {
		client, srv := newTestClient(t, func(_ http.ResponseWriter, _ *http.Request) {})
		srv.Close()

		_, err := client.Process(ctx, domain.NewDocumentReference("https://example.com/doc.pdf"), false)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "send request")
	})
}
