// Package file provides file-based configuration loading using TOML.
package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the optional settings read from the TOML config file.
// The API key is deliberately absent: it is read from the environment
// at startup and never written to disk.
type Config struct {
	// Mistral configures the OCR client.
	Mistral MistralConfig `toml:"mistral"`

	// Fetch configures the download pipeline.
	Fetch FetchConfig `toml:"fetch"`
}

// MistralConfig mirrors the tunable fields of the OCR client.
type MistralConfig struct {
	// BaseURL overrides the API base URL.
	BaseURL string `toml:"base_url"`

	// Model overrides the OCR model identifier.
	Model string `toml:"model"`

	// TimeoutSeconds bounds one OCR round-trip.
	TimeoutSeconds int `toml:"timeout_seconds"`

	// RequestsPerSecond is the client-side sustained rate limit.
	RequestsPerSecond float64 `toml:"requests_per_second"`

	// Burst is the rate limiter burst size.
	Burst int `toml:"burst"`
}

// FetchConfig mirrors the tunable fields of the HTTP fetcher.
type FetchConfig struct {
	// TimeoutSeconds bounds one download.
	TimeoutSeconds int `toml:"timeout_seconds"`
}

// DefaultPath returns the default config file location,
// ~/.mistral-ocr-mcp/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".mistral-ocr-mcp", "config.toml"), nil
}

// Load reads a TOML config file. A missing file is not an error; a
// zero Config is returned and every setting falls back to the adapter
// defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}
