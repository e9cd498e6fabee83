package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	ProviderAnthropic = "anthropic"
	ProviderBedrock   = "bedrock"
)

// Config holds the settings every entrypoint shares. The API key itself is not
// stored here; only where to find it. It is resolved per invocation.
type Config struct {
	APIKeyEnv      string
	APIKeyParam    string // optional SSM parameter name
	BaseURL        string
	Provider       string
	BedrockModelID string
	LogLevel       string
	LocalAddr      string
}

// Load reads configuration from the process environment.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("anthropic_base_url", "https://api.anthropic.com")
	v.SetDefault("obituary_provider", ProviderAnthropic)
	v.SetDefault("log_level", "info")
	v.SetDefault("local_addr", "127.0.0.1:8888")

	cfg := &Config{
		APIKeyEnv:      "ANTHROPIC_API_KEY",
		APIKeyParam:    strings.TrimSpace(v.GetString("anthropic_api_key_param")),
		BaseURL:        strings.TrimRight(strings.TrimSpace(v.GetString("anthropic_base_url")), "/"),
		Provider:       strings.ToLower(strings.TrimSpace(v.GetString("obituary_provider"))),
		BedrockModelID: strings.TrimSpace(v.GetString("bedrock_model_id")),
		LogLevel:       strings.TrimSpace(v.GetString("log_level")),
		LocalAddr:      strings.TrimSpace(v.GetString("local_addr")),
	}

	switch cfg.Provider {
	case ProviderAnthropic:
	case ProviderBedrock:
		if cfg.BedrockModelID == "" {
			return nil, fmt.Errorf("missing env BEDROCK_MODEL_ID")
		}
	default:
		return nil, fmt.Errorf("unsupported OBITUARY_PROVIDER %q", cfg.Provider)
	}

	return cfg, nil
}
