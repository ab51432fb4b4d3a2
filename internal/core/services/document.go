package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/docufind-labs/mistral-ocr-mcp/internal/core/domain"
	"github.com/docufind-labs/mistral-ocr-mcp/internal/core/ports/driven"
	"github.com/docufind-labs/mistral-ocr-mcp/internal/core/ports/driving"
	"github.com/docufind-labs/mistral-ocr-mcp/internal/logger"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DocumentService runs the OCR pipeline: resolve the input to a
// submission-ready reference, invoke the remote service, assemble the
// per-page markdown.
type DocumentService struct {
	ocr     driven.OCRClient
	fetcher driven.Fetcher
}

// NewDocumentService creates a new document service.
func NewDocumentService(ocr driven.OCRClient, fetcher driven.Fetcher) *DocumentService {
	return &DocumentService{
		ocr:     ocr,
		fetcher: fetcher,
	}
}

// ProcessURL runs OCR over a document at a remote URL.
func (s *DocumentService) ProcessURL(
	ctx context.Context,
	url string,
	opts driving.ProcessOptions,
) (*domain.ProcessResult, error) {
	logger.Debug("processing document URL %s", url)
	return s.invoke(ctx, domain.NewDocumentReference(url), opts, 0)
}

// ProcessImageURL runs OCR over an image at a remote URL.
func (s *DocumentService) ProcessImageURL(
	ctx context.Context,
	url string,
	opts driving.ProcessOptions,
) (*domain.ProcessResult, error) {
	logger.Debug("processing image URL %s", url)
	return s.invoke(ctx, domain.NewImageReference(url), opts, 0)
}

// ProcessBase64 runs OCR over an inline base64 payload.
// The payload is wrapped as a data-URI; decoding happens only to
// report the document size.
func (s *DocumentService) ProcessBase64(
	ctx context.Context,
	payload, mediaType string,
	opts driving.ProcessOptions,
) (*domain.ProcessResult, error) {
	size := decodedSize(payload)
	logger.Debug("processing base64 payload (%s, %d bytes)", mediaType, size)

	ref := domain.Reference{
		Kind: domain.KindDocument,
		URL:  domain.DataURIFromBase64(mediaType, payload),
	}
	return s.invoke(ctx, ref, opts, size)
}

// ProcessFile runs OCR over a local file and writes the joined
// markdown to the resolved output path.
func (s *DocumentService) ProcessFile(
	ctx context.Context,
	path, outputPath string,
	opts driving.ProcessOptions,
) (*domain.ProcessResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrFileNotFound, path)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s", domain.ErrFileNotFound, path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	mediaType, ok := domain.MediaTypeForExt(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	logger.Debug("processing local file %s (%s, %d bytes)", path, mediaType, len(data))

	ref := domain.Reference{
		Kind: domain.KindDocument,
		URL:  domain.DataURI(mediaType, data),
	}
	result, err := s.invoke(ctx, ref, opts, len(data))
	if err != nil {
		return nil, err
	}

	outputPath = deriveOutputPath(path, outputPath)
	if err := writeMarkdown(outputPath, result.Markdown); err != nil {
		return nil, err
	}
	result.OutputFile = outputPath

	logger.Info("wrote %d bytes of markdown to %s", len(result.Markdown), outputPath)
	return result, nil
}

// DownloadAndProcess fetches a document over HTTP and runs OCR over
// the downloaded bytes via the data-URI path.
func (s *DocumentService) DownloadAndProcess(
	ctx context.Context,
	url string,
	opts driving.ProcessOptions,
) (*domain.ProcessResult, error) {
	body, contentType, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	logger.Debug("downloaded %s (%s, %d bytes)", url, contentType, len(body))

	ref := domain.Reference{
		Kind: domain.KindDocument,
		URL:  domain.DataURI(contentType, body),
	}
	return s.invoke(ctx, ref, opts, len(body))
}

// invoke submits one reference to the OCR client and assembles the
// result. docSize is the locally-known input size, zero when unknown.
func (s *DocumentService) invoke(
	ctx context.Context,
	ref domain.Reference,
	opts driving.ProcessOptions,
	docSize int,
) (*domain.ProcessResult, error) {
	res, err := s.ocr.Process(ctx, ref, opts.IncludeImages)
	if err != nil {
		return nil, err
	}

	pages := res.Usage.PagesProcessed
	if pages == 0 {
		pages = len(res.Pages)
	}
	if docSize == 0 {
		docSize = res.Usage.DocSizeBytes
	}

	return &domain.ProcessResult{
		Markdown:       domain.JoinPages(res.Pages),
		PagesProcessed: pages,
		DocSizeBytes:   docSize,
		Model:          res.Model,
	}, nil
}

// deriveOutputPath resolves the markdown destination for the
// local-file pipeline: an explicit output path is used verbatim,
// otherwise the input path with its extension replaced by ".md".
func deriveOutputPath(inputPath, outputPath string) string {
	if outputPath != "" {
		return outputPath
	}
	ext := filepath.Ext(inputPath)
	return strings.TrimSuffix(inputPath, ext) + ".md"
}

// writeMarkdown writes the joined markdown as the file's full
// contents, creating parent directories first.
func writeMarkdown(path, markdown string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(markdown), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// decodedSize returns the decoded byte count of a base64 payload,
// or zero when the payload is not valid base64. Size reporting is
// best-effort; validation is left to the OCR service.
func decodedSize(payload string) int {
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return 0
	}
	return len(data)
}
