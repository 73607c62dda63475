package config

import (
	"fmt"
	"os"
	"time"
)

// Validate validates configuration values.
// Returns sentinel errors that can be checked with errors.Is().
func (c *Config) Validate() error {
	if c == nil {
		return ErrConfigNil
	}

	// API key validation (required for all AI operations)
	if os.Getenv("GEMINI_API_KEY") == "" {
		return fmt.Errorf("%w: GEMINI_API_KEY environment variable is required\n"+
			"Get your API key at: https://ai.google.dev/gemini-api/docs/api-key",
			ErrMissingAPIKey)
	}

	if c.ModelName == "" {
		return fmt.Errorf("%w: model_name cannot be empty", ErrInvalidModelName)
	}

	// Temperature range: 0.0 (deterministic) to 2.0 (maximum creativity).
	// Reference: Gemini API documentation.
	if c.Temperature < 0.0 || c.Temperature > 2.0 {
		return fmt.Errorf("%w: must be between 0.0 and 2.0, got %.2f", ErrInvalidTemperature, c.Temperature)
	}

	if c.EmbedderModel == "" {
		return fmt.Errorf("%w: embedder_model cannot be empty", ErrInvalidEmbedderModel)
	}

	if c.TopK <= 0 || c.TopK > 10 {
		return fmt.Errorf("%w: must be between 1 and 10, got %d", ErrInvalidTopK, c.TopK)
	}

	if c.RetrieveTimeout < time.Second || c.RetrieveTimeout > 5*time.Minute {
		return fmt.Errorf("%w: retrieve_timeout must be between 1s and 5m, got %s", ErrInvalidTimeout, c.RetrieveTimeout)
	}
	if c.GenerateTimeout < time.Second || c.GenerateTimeout > 10*time.Minute {
		return fmt.Errorf("%w: generate_timeout must be between 1s and 10m, got %s", ErrInvalidTimeout, c.GenerateTimeout)
	}

	return nil
}

// ValidateServe validates the additional fields required for serve mode.
// It runs the base Validate first.
func (c *Config) ValidateServe() error {
	if err := c.Validate(); err != nil {
		return err
	}

	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: must be between 1 and 65535, got %d", ErrInvalidPort, c.Port)
	}

	if c.RateBurst < 1 || c.RateBurst > 10000 {
		return fmt.Errorf("%w: must be between 1 and 10000, got %d", ErrInvalidRateBurst, c.RateBurst)
	}

	return nil
}
