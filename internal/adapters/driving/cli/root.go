// Package cli implements the cobra command tree for the OCR server.
package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/docufind-labs/mistral-ocr-mcp/internal/adapters/driven/config/file"
	"github.com/docufind-labs/mistral-ocr-mcp/internal/adapters/driven/fetch"
	"github.com/docufind-labs/mistral-ocr-mcp/internal/adapters/driven/mistral"
	"github.com/docufind-labs/mistral-ocr-mcp/internal/core/ports/driving"
	"github.com/docufind-labs/mistral-ocr-mcp/internal/core/services"
	"github.com/docufind-labs/mistral-ocr-mcp/internal/logger"
)

// version is overridden at build time via -ldflags.
var version = "0.1.0"

// Persistent flags.
var (
	verboseFlag bool
	configPath  string
)

// documentService is the long-lived pipeline handle, constructed once
// during startup and shared by every command. It holds no mutable
// state beyond the underlying HTTP clients.
var documentService driving.DocumentService

var rootCmd = &cobra.Command{
	Use:   "mistral-ocr-mcp",
	Short: "Mistral OCR as an MCP server",
	Long: `Exposes Mistral AI's document OCR as Model Context Protocol tools,
so AI assistants can extract text from PDFs, Office documents and images
given a URL, a base64 payload or a local file path.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default ~/.mistral-ocr-mcp/config.toml)")
}

// initServices wires config, the Mistral client, the fetcher and the
// document service. A missing API key is a fatal startup error; no
// command that reaches the pipeline runs without one.
func initServices(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verboseFlag)

	// version and help never touch the pipeline.
	switch cmd.Name() {
	case "version", "help", "completion":
		return nil
	}

	apiKey := os.Getenv("MISTRAL_API_KEY")
	if apiKey == "" {
		return errors.New("MISTRAL_API_KEY environment variable is required")
	}

	path := configPath
	if path == "" {
		defaultPath, err := file.DefaultPath()
		if err == nil {
			path = defaultPath
		}
	}

	cfg := &file.Config{}
	if path != "" {
		loaded, err := file.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	client, err := mistral.NewOCRClient(mistral.Config{
		APIKey:            apiKey,
		BaseURL:           cfg.Mistral.BaseURL,
		Model:             cfg.Mistral.Model,
		Timeout:           time.Duration(cfg.Mistral.TimeoutSeconds) * time.Second,
		RequestsPerSecond: cfg.Mistral.RequestsPerSecond,
		Burst:             cfg.Mistral.Burst,
	})
	if err != nil {
		return fmt.Errorf("initialising OCR client: %w", err)
	}

	fetcher := fetch.NewFetcher(time.Duration(cfg.Fetch.TimeoutSeconds) * time.Second)
	documentService = services.NewDocumentService(client, fetcher)

	logger.Debug("initialised OCR pipeline (model %s)", client.ModelName())
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
