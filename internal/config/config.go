// Package config loads riskready settings from an optional YAML file, a .env
// file and RISKREADY_* environment variables, in increasing precedence.
package config

import (
	"time"

	"github.com/abhisek/riskready/internal/llm"
)

// EnvPrefix is prepended to every environment variable, so llm.provider is
// read from RISKREADY_LLM_PROVIDER.
const EnvPrefix = "RISKREADY"

type Config struct {
	Log LogConfig `mapstructure:"log"`
	LLM LLMConfig `mapstructure:"llm"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=json console"`
	// File receives log output. Empty disables logging, since stderr belongs
	// to the terminal UI.
	File string `mapstructure:"file"`
}

type LLMConfig struct {
	// Provider is empty when no coaching provider is configured; the
	// vendors' own API key variables are then used to pick one.
	Provider string        `mapstructure:"provider" validate:"omitempty,oneof=anthropic openai gemini openrouter mock"`
	Timeout  time.Duration `mapstructure:"timeout" validate:"gte=0"`

	Anthropic  ProviderConfig `mapstructure:"anthropic"`
	OpenAI     ProviderConfig `mapstructure:"openai"`
	Gemini     ProviderConfig `mapstructure:"gemini"`
	OpenRouter ProviderConfig `mapstructure:"openrouter"`
	Retry      RetryConfig    `mapstructure:"retry"`
}

type ProviderConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`
}

type RetryConfig struct {
	MaxAttempts int           `mapstructure:"max_attempts" validate:"gte=1,lte=10"`
	InitialWait time.Duration `mapstructure:"initial_wait" validate:"gte=0"`
	MaxWait     time.Duration `mapstructure:"max_wait" validate:"gtefield=InitialWait"`
	Multiplier  float64       `mapstructure:"multiplier" validate:"gte=1"`
}

// Resolve converts the settings into an llm.Config. When no provider is set
// it falls back to llm.DiscoverConfig; ok is false if that finds nothing.
func (c LLMConfig) Resolve() (cfg llm.Config, ok bool) {
	cfg = llm.Config{
		Provider:   c.Provider,
		Anthropic:  llm.AnthropicConfig(c.Anthropic),
		OpenAI:     llm.OpenAIConfig(c.OpenAI),
		Gemini:     llm.GeminiConfig(c.Gemini),
		OpenRouter: llm.OpenRouterConfig(c.OpenRouter),
		Retry:      llm.RetryConfig(c.Retry),
		Timeout:    c.Timeout,
	}
	if cfg.Enabled() {
		return cfg, true
	}
	return llm.DiscoverConfig(cfg)
}
