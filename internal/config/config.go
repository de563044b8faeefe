// Package config loads the resume scorer configuration file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

const (
	// FileName is the configuration file looked up beside the executable.
	FileName = "config.json"
	// DefaultOutputFile receives the scoring result in the working directory.
	DefaultOutputFile = "resume_score_results.json"

	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	// PlaceholderOpenAIKey is the value shipped in the example configuration.
	PlaceholderOpenAIKey = "YOUR_OPENAI_API_KEY"
	// PlaceholderGeminiKey is the Gemini counterpart of PlaceholderOpenAIKey.
	PlaceholderGeminiKey = "YOUR_GEMINI_API_KEY"
)

// ErrNotFound is returned when the configuration file does not exist.
var ErrNotFound = errors.New("configuration file not found")

// ParseError reports a configuration file that is not valid JSON or does not
// have the expected shape.
type ParseError struct {
	Path  string
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid JSON in configuration file %q: %v", e.Path, e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Config is the content of config.json. It is read once per run and never
// modified afterwards.
type Config struct {
	OpenAIAPIKey   string  `json:"openai_api_key"`
	GeminiAPIKey   string  `json:"gemini_api_key,omitempty"`
	Provider       string  `json:"provider,omitempty"`
	Model          string  `json:"model,omitempty"`
	OutputFile     string  `json:"output_file,omitempty"`
	ScoringWeights Weights `json:"scoring_weights"`
}

// Load reads and parses the configuration file at path. It never returns a
// partially populated config: on failure the config is nil.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading configuration file %q: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, &ParseError{Path: path, Cause: err}
	}

	cfg.Provider = strings.ToLower(strings.TrimSpace(cfg.Provider))
	if cfg.Provider == "" {
		cfg.Provider = ProviderOpenAI
	}
	if strings.TrimSpace(cfg.OutputFile) == "" {
		cfg.OutputFile = DefaultOutputFile
	}
	if cfg.ScoringWeights.IsZero() {
		cfg.ScoringWeights = DefaultWeights()
	}

	return &cfg, nil
}

// APIKey returns the inline key configured for the provider.
func (c *Config) APIKey(provider string) string {
	if provider == ProviderGemini {
		return c.GeminiAPIKey
	}
	return c.OpenAIAPIKey
}

// Placeholder returns the template key value for the provider.
func Placeholder(provider string) string {
	if provider == ProviderGemini {
		return PlaceholderGeminiKey
	}
	return PlaceholderOpenAIKey
}
