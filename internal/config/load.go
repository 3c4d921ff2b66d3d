package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// envPrefix is prepended to every environment variable this service
// reads, e.g. STORYGEN_LLM_GEMINI_API_KEY.
const envPrefix = "STORYGEN"

// envKeys lists each config key that may be supplied via the
// environment. viper's AutomaticEnv only resolves keys it already knows
// about, so keys without defaults must be bound explicitly.
var envKeys = []string{
	"server.port",
	"server.log_level",
	"auth.shared_secret",
	"llm.gemini_api_key",
	"llm.model",
}

// Load reads configuration from environment variables, applies defaults,
// and validates the result. Returns a populated Config or an error if
// loading or validation fails.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable for %s: %w", key, err)
		}
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}
