// Package file provides TOML file configuration for the quorum service.
package file

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config is the full service configuration.
type Config struct {
	Server    ServerConfig   `toml:"server"`
	Postgres  PostgresConfig `toml:"postgres"`
	Embedding ProviderConfig `toml:"embedding"`
	LLM       ProviderConfig `toml:"llm"`
	Query     QueryTuning    `toml:"query"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	// Addr is the listen address (default ":8088").
	Addr string `toml:"addr"`

	// ShutdownTimeoutSeconds bounds graceful drain on shutdown (default 15).
	ShutdownTimeoutSeconds int `toml:"shutdown_timeout_seconds"`
}

// PostgresConfig configures the shared index database.
type PostgresConfig struct {
	// DSN is the Postgres connection string. Falls back to the
	// QUORUM_POSTGRES_DSN environment variable when empty.
	DSN string `toml:"dsn"`
}

// ProviderConfig selects and configures an external AI capability.
type ProviderConfig struct {
	// Provider is "ollama" or "openai".
	Provider string `toml:"provider"`

	// BaseURL overrides the provider's default endpoint.
	BaseURL string `toml:"base_url"`

	// Model overrides the provider's default model.
	Model string `toml:"model"`

	// APIKey authenticates to the provider. Falls back to the
	// OPENAI_API_KEY environment variable for the openai provider.
	APIKey string `toml:"api_key"`

	// Dimensions is the embedding vector size (embedding only,
	// model-dependent).
	Dimensions int `toml:"dimensions"`
}

// QueryTuning holds the tunable pipeline parameters.
type QueryTuning struct {
	// FusionConstant is the reciprocal rank fusion constant (default 60).
	FusionConstant int `toml:"fusion_constant"`

	// ContextBudget is the maximum rendered context size in characters
	// (default 8000).
	ContextBudget int `toml:"context_budget"`

	// RetrievalTimeoutSeconds bounds each retrieval engine call
	// (default 10).
	RetrievalTimeoutSeconds int `toml:"retrieval_timeout_seconds"`

	// SynthesisTimeoutSeconds bounds the answer generation call
	// (default 60).
	SynthesisTimeoutSeconds int `toml:"synthesis_timeout_seconds"`
}

// Default returns the configuration defaults.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:                   ":8088",
			ShutdownTimeoutSeconds: 15,
		},
		Embedding: ProviderConfig{
			Provider: "ollama",
		},
		LLM: ProviderConfig{
			Provider: "ollama",
		},
		Query: QueryTuning{
			FusionConstant:          60,
			ContextBudget:           8000,
			RetrievalTimeoutSeconds: 10,
			SynthesisTimeoutSeconds: 60,
		},
	}
}

// Load reads configuration from the TOML file at path, layered over the
// defaults. A missing file yields the defaults; environment fallbacks are
// applied last.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Defaults only.
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := toml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	if cfg.Postgres.DSN == "" {
		cfg.Postgres.DSN = os.Getenv("QUORUM_POSTGRES_DSN")
	}
	if cfg.Embedding.Provider == "openai" && cfg.Embedding.APIKey == "" {
		cfg.Embedding.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if cfg.LLM.Provider == "openai" && cfg.LLM.APIKey == "" {
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
	}

	return cfg, nil
}

// RetrievalTimeout returns the retrieval timeout as a duration.
func (q QueryTuning) RetrievalTimeout() time.Duration {
	return time.Duration(q.RetrievalTimeoutSeconds) * time.Second
}

// SynthesisTimeout returns the synthesis timeout as a duration.
func (q QueryTuning) SynthesisTimeout() time.Duration {
	return time.Duration(q.SynthesisTimeoutSeconds) * time.Second
}

// ShutdownTimeout returns the drain timeout as a duration.
func (s ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(s.ShutdownTimeoutSeconds) * time.Second
}
