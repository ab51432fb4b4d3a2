package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docufind-labs/mistral-ocr-mcp/internal/core/ports/driving"
)

var (
	ocrOutput string
	ocrImages bool
)

var ocrCmd = &cobra.Command{
	Use:   "ocr [file]",
	Short: "Extract text from a local file",
	Long: `Runs Mistral OCR over a local document or image and writes the
extracted markdown next to the input (or to --output).

Supported formats: pdf, docx, pptx, png, jpg, jpeg, avif.`,
	Args: cobra.ExactArgs(1),
	RunE: runOCR,
}

func init() {
	ocrCmd.Flags().StringVarP(&ocrOutput, "output", "o", "", "output markdown path (default: input path with .md extension)")
	ocrCmd.Flags().BoolVar(&ocrImages, "images", false, "include base64 encoded images in the response")
	rootCmd.AddCommand(ocrCmd)
}

func runOCR(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	ctx := context.Background()
	opts := driving.ProcessOptions{IncludeImages: ocrImages}

	result, err := documentService.ProcessFile(ctx, args[0], ocrOutput, opts)
	if err != nil {
		return fmt.Errorf("ocr failed: %w", err)
	}

	cmd.Printf("Wrote %s (%d pages)\n", result.OutputFile, result.PagesProcessed)
	return nil
}
