package config

import (
	"encoding/json"
	"fmt"
)

// TracingConfig holds OTLP trace export configuration.
//
// Spans are exported over OTLP/HTTP to a local collector agent.
// See internal/app for exporter registration.
type TracingConfig struct {
	// APIKey is an optional collector API key.
	APIKey string `mapstructure:"api_key" json:"api_key"` // SENSITIVE: masked in MarshalJSON
	// AgentHost is the OTLP/HTTP endpoint (default: localhost:4318).
	AgentHost string `mapstructure:"agent_host" json:"agent_host"`
	// Environment is the deployment environment tag (default: dev).
	Environment string `mapstructure:"environment" json:"environment"`
	// ServiceName is the service name on exported spans (default: finnova).
	ServiceName string `mapstructure:"service_name" json:"service_name"`
}

// MarshalJSON masks the collector API key.
func (t TracingConfig) MarshalJSON() ([]byte, error) {
	type alias TracingConfig
	a := alias(t)
	a.APIKey = maskSecret(a.APIKey)
	data, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("marshal tracing config: %w", err)
	}
	return data, nil
}
