// Package config provides application configuration management with multi-source priority.
//
// Configuration sources (highest to lowest priority):
//  1. Environment variables (FINNOVA_ prefix, runtime override)
//  2. Config file (~/.finnova/config.yaml)
//  3. Default values
//
// Main configuration categories:
//   - AI: model selection, temperature, embedder model
//   - Engine: retrieval top-k, upstream timeouts
//   - Server: listen address, CORS, proxy trust, rate limiting
//   - Observability: OTLP trace export (see observability.go)
//
// Error Handling:
//   - Uses sentinel errors for Go-idiomatic error checking with errors.Is()
//   - Wrap with context using fmt.Errorf("%w: details", ErrXxx)
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var (
	// ErrConfigNil indicates the configuration is nil.
	ErrConfigNil = errors.New("configuration is nil")

	// ErrMissingAPIKey indicates a required API key is missing.
	ErrMissingAPIKey = errors.New("missing API key")

	// ErrInvalidModelName indicates the model name is invalid.
	ErrInvalidModelName = errors.New("invalid model name")

	// ErrInvalidTemperature indicates the temperature value is out of range.
	ErrInvalidTemperature = errors.New("invalid temperature")

	// ErrInvalidEmbedderModel indicates the embedder model is invalid.
	ErrInvalidEmbedderModel = errors.New("invalid embedder model")

	// ErrInvalidTopK indicates the retrieval top-k value is out of range.
	ErrInvalidTopK = errors.New("invalid top-k")

	// ErrInvalidTimeout indicates an upstream timeout is out of range.
	ErrInvalidTimeout = errors.New("invalid timeout")

	// ErrInvalidPort indicates the server port is out of range.
	ErrInvalidPort = errors.New("invalid port")

	// ErrInvalidRateBurst indicates the rate limit burst is out of range.
	ErrInvalidRateBurst = errors.New("invalid rate burst")
)

const (
	// DefaultModelName is the default Gemini chat model.
	DefaultModelName = "gemini-2.5-flash"

	// DefaultEmbedderModel is the default Gemini embedder model.
	DefaultEmbedderModel = "gemini-embedding-001"

	// DefaultTemperature keeps tax and budgeting answers close to the
	// retrieved reference material.
	DefaultTemperature float32 = 0.25

	// DefaultTopK is the number of passages retrieved per question.
	DefaultTopK = 3
)

// Config stores application configuration.
// SECURITY: sensitive fields are explicitly masked in MarshalJSON().
type Config struct {
	// AI model configuration
	ModelName     string  `mapstructure:"model_name" json:"model_name"`
	EmbedderModel string  `mapstructure:"embedder_model" json:"embedder_model"`
	Temperature   float32 `mapstructure:"temperature" json:"temperature"`

	// Engine configuration
	TopK            int           `mapstructure:"top_k" json:"top_k"`
	RetrieveTimeout time.Duration `mapstructure:"retrieve_timeout" json:"retrieve_timeout"`
	GenerateTimeout time.Duration `mapstructure:"generate_timeout" json:"generate_timeout"`

	// Server configuration (serve mode only)
	Host        string   `mapstructure:"host" json:"host"`
	Port        int      `mapstructure:"port" json:"port"`
	CORSOrigins []string `mapstructure:"cors_origins" json:"cors_origins"`
	TrustProxy  bool     `mapstructure:"trust_proxy" json:"trust_proxy"` // trust X-Real-IP/X-Forwarded-For (set true behind reverse proxy)
	RateBurst   int      `mapstructure:"rate_burst" json:"rate_burst"`

	// Logging configuration
	LogLevel string `mapstructure:"log_level" json:"log_level"`
	LogJSON  bool   `mapstructure:"log_json" json:"log_json"`

	// Observability configuration (see observability.go)
	Tracing TracingConfig `mapstructure:"tracing" json:"tracing"`
}

// Load loads configuration.
// Priority: environment variables > configuration file > default values.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("getting user home directory: %w", err)
	}

	configDir := filepath.Join(home, ".finnova")
	if err := os.MkdirAll(configDir, 0o750); err != nil {
		return nil, fmt.Errorf("creating config directory: %w", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configDir)
	viper.AddConfigPath(".")

	setDefaults()
	bindEnvVariables()

	if err := viper.ReadInConfig(); err != nil {
		// Configuration file not found is not an error, use defaults.
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		slog.Debug("configuration file not found, using default values",
			"search_paths", []string{configDir, "."},
			"config_name", "config.yaml")
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}

	// Fail fast on bad values.
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets all default configuration values.
func setDefaults() {
	// AI defaults
	viper.SetDefault("model_name", DefaultModelName)
	viper.SetDefault("embedder_model", DefaultEmbedderModel)
	viper.SetDefault("temperature", DefaultTemperature)

	// Engine defaults
	viper.SetDefault("top_k", DefaultTopK)
	viper.SetDefault("retrieve_timeout", 10*time.Second)
	viper.SetDefault("generate_timeout", 60*time.Second)

	// Server defaults
	viper.SetDefault("host", "localhost")
	viper.SetDefault("port", 8080)
	viper.SetDefault("cors_origins", []string{"http://localhost:4200"})
	viper.SetDefault("trust_proxy", false)
	viper.SetDefault("rate_burst", 60)

	// Logging defaults
	viper.SetDefault("log_level", "info")
	viper.SetDefault("log_json", false)

	// Tracing defaults
	viper.SetDefault("tracing.agent_host", "localhost:4318")
	viper.SetDefault("tracing.environment", "dev")
	viper.SetDefault("tracing.service_name", "finnova")
}

// bindEnvVariables binds environment variable overrides explicitly.
// GEMINI_API_KEY is read directly by Genkit, not via Viper; Validate
// checks its presence.
func bindEnvVariables() {
	// Hardcoded keys cannot fail to bind; a panic here is a bug, not a
	// runtime error.
	mustBind := func(key, envVar string) {
		if err := viper.BindEnv(key, envVar); err != nil {
			panic(fmt.Sprintf("BUG: failed to bind %q to %q: %v", key, envVar, err))
		}
	}

	mustBind("model_name", "FINNOVA_MODEL_NAME")
	mustBind("embedder_model", "FINNOVA_EMBEDDER_MODEL")
	mustBind("temperature", "FINNOVA_TEMPERATURE")
	mustBind("top_k", "FINNOVA_TOP_K")
	mustBind("host", "FINNOVA_HOST")
	mustBind("port", "FINNOVA_PORT")
	mustBind("cors_origins", "FINNOVA_CORS_ORIGINS")
	mustBind("trust_proxy", "FINNOVA_TRUST_PROXY")
	mustBind("rate_burst", "FINNOVA_RATE_BURST")
	mustBind("log_level", "FINNOVA_LOG_LEVEL")
	mustBind("log_json", "FINNOVA_LOG_JSON")
	mustBind("tracing.agent_host", "FINNOVA_TRACING_AGENT_HOST")
	mustBind("tracing.environment", "FINNOVA_TRACING_ENVIRONMENT")
	mustBind("tracing.service_name", "FINNOVA_TRACING_SERVICE_NAME")
}

// Addr returns the host:port listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// FullModelName returns the provider-qualified model name for Genkit,
// e.g. "googleai/gemini-2.5-flash". A ModelName that already contains a
// "/" is returned as-is.
func (c *Config) FullModelName() string {
	if strings.Contains(c.ModelName, "/") {
		return c.ModelName
	}
	return "googleai/" + c.ModelName
}

// maskedValue is the placeholder for masked sensitive data.
const maskedValue = "████████"

// maskSecret masks a secret string for safe logging. Secrets of 8 chars
// or fewer are fully masked to prevent substring matching; longer ones
// keep the first and last 2 characters for debug utility.
func maskSecret(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 8 {
		return maskedValue
	}
	return s[:2] + "<" + maskedValue + ">" + s[len(s)-2:]
}

// MarshalJSON implements json.Marshaler with explicit sensitive field masking.
// Nested TracingConfig masks its own API key via its MarshalJSON.
func (c Config) MarshalJSON() ([]byte, error) {
	type alias Config
	data, err := json.Marshal(alias(c))
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}

// String implements Stringer to prevent accidental printing of secrets.
func (c Config) String() string {
	data, err := c.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("Config{error: %v}", err)
	}
	return string(data)
}
