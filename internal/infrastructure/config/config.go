package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Provider names accepted in LLM_PROVIDER.
const (
	ProviderOllama   = "ollama"
	ProviderTogether = "together"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	LLM LLMConfig
}

// LLMConfig selects and parameterises the completion provider. Endpoint and
// Model defaults are provider-specific and resolved in the llm package when
// left empty.
type LLMConfig struct {
	Provider    string  `env:"LLM_PROVIDER,    default=ollama"`
	Endpoint    string  `env:"LLM_ENDPOINT"`
	APIKey      string  `env:"LLM_API_KEY"`
	Model       string  `env:"LLM_MODEL"`
	Temperature float64 `env:"LLM_TEMPERATURE, default=0.7"`
	MaxTokens   int     `env:"LLM_MAX_TOKENS,  default=1000"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.LLM.Provider != ProviderOllama && cfg.LLM.Provider != ProviderTogether {
		return nil, fmt.Errorf("config: unknown LLM provider %q", cfg.LLM.Provider)
	}
	return &cfg, nil
}
