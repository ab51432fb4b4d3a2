// Package mistral provides an OCR client adapter using the Mistral AI
// document processing API.
package mistral

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/docufind-labs/mistral-ocr-mcp/internal/core/domain"
	"github.com/docufind-labs/mistral-ocr-mcp/internal/core/ports/driven"
)

// Ensure OCRClient implements the interface.
var _ driven.OCRClient = (*OCRClient)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "https://api.mistral.ai/v1"
	DefaultTimeout = 300 * time.Second

	// Model is the OCR model submitted with every request.
	// Not configurable per call; "latest" tracks the newest version.
	Model = "mistral-ocr-latest"
)

// Default client-side rate limit. Kept well below Mistral's published
// limits so bursts of tool calls do not trip the API quota.
const (
	DefaultRequestsPerSecond = 2.0
	DefaultBurst             = 4
)

// Config holds configuration for the Mistral OCR client.
type Config struct {
	// APIKey is the Mistral API key (required).
	APIKey string

	// BaseURL is the API base URL (default: https://api.mistral.ai/v1).
	BaseURL string

	// Model overrides the OCR model identifier. Defaults to Model.
	Model string

	// Timeout is the request timeout (default: 300s). OCR over large
	// documents is slow; the default is deliberately generous.
	Timeout time.Duration

	// RequestsPerSecond is the sustained client-side rate limit.
	RequestsPerSecond float64

	// Burst is the token bucket burst size.
	Burst int
}

// OCRClient invokes the Mistral OCR endpoint over HTTP.
type OCRClient struct {
	client  *http.Client
	limiter *rate.Limiter
	baseURL string
	apiKey  string
	model   string
}

// ocrRequest is the Mistral /ocr request format.
type ocrRequest struct {
	Model              string        `json:"model"`
	Document           documentInput `json:"document"`
	IncludeImageBase64 bool          `json:"include_image_base64"`
}

// documentInput carries the document reference in the shape the API
// expects: the type discriminator selects which URL field is set.
type documentInput struct {
	Type        string `json:"type"`
	DocumentURL string `json:"document_url,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

// ocrResponse is the Mistral /ocr response format.
type ocrResponse struct {
	Pages []struct {
		Index    int    `json:"index"`
		Markdown string `json:"markdown"`
		Images   []struct {
			ID           string `json:"id"`
			TopLeftX     int    `json:"top_left_x"`
			TopLeftY     int    `json:"top_left_y"`
			BottomRightX int    `json:"bottom_right_x"`
			BottomRightY int    `json:"bottom_right_y"`
			ImageBase64  string `json:"image_base64"`
		} `json:"images"`
	} `json:"pages"`
	Model     string `json:"model"`
	UsageInfo struct {
		PagesProcessed int `json:"pages_processed"`
		DocSizeBytes   int `json:"doc_size_bytes"`
	} `json:"usage_info"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// NewOCRClient creates a new Mistral OCR client.
func NewOCRClient(cfg Config) (*OCRClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("mistral: API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = Model
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RequestsPerSecond == 0 {
		cfg.RequestsPerSecond = DefaultRequestsPerSecond
	}
	if cfg.Burst == 0 {
		cfg.Burst = DefaultBurst
	}

	return &OCRClient{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
	}, nil
}

// Process submits one document reference to the OCR endpoint and
// returns the structured page list. The call is a single round-trip;
// there is no retry.
func (c *OCRClient) Process(
	ctx context.Context,
	ref domain.Reference,
	includeImages bool,
) (*domain.OCRResult, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	reqBody := ocrRequest{
		Model:              c.model,
		IncludeImageBase64: includeImages,
	}
	switch ref.Kind {
	case domain.KindImage:
		reqBody.Document = documentInput{Type: string(domain.KindImage), ImageURL: ref.URL}
	default:
		reqBody.Document = documentInput{Type: string(domain.KindDocument), DocumentURL: ref.URL}
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/ocr",
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var ocrResp ocrResponse
	if err := json.Unmarshal(body, &ocrResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if ocrResp.Error != nil {
		return nil, fmt.Errorf("mistral error: %s", ocrResp.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("mistral error (status %d): %s", resp.StatusCode, string(body))
	}

	return toDomain(&ocrResp), nil
}

// ModelName returns the OCR model identifier being used.
func (c *OCRClient) ModelName() string {
	return c.model
}

// toDomain converts the wire response into domain types.
func toDomain(resp *ocrResponse) *domain.OCRResult {
	result := &domain.OCRResult{
		Pages: make([]domain.Page, len(resp.Pages)),
		Model: resp.Model,
		Usage: domain.Usage{
			PagesProcessed: resp.UsageInfo.PagesProcessed,
			DocSizeBytes:   resp.UsageInfo.DocSizeBytes,
		},
	}

	for i, p := range resp.Pages {
		page := domain.Page{
			Index:    p.Index,
			Markdown: p.Markdown,
		}
		for _, img := range p.Images {
			page.Images = append(page.Images, domain.PageImage{
				ID:           img.ID,
				TopLeftX:     img.TopLeftX,
				TopLeftY:     img.TopLeftY,
				BottomRightX: img.BottomRightX,
				BottomRightY: img.BottomRightY,
				Base64:       img.ImageBase64,
			})
		}
		result.Pages[i] = page
	}

	return result
}
