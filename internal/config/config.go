package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Auth   AuthConfig   `mapstructure:"auth"`
	LLM    LLMConfig    `mapstructure:"llm"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// AuthConfig contains the optional shared-secret settings. When
// SharedSecret is empty the story endpoint is open.
type AuthConfig struct {
	SharedSecret string `mapstructure:"shared_secret"`
}

// LLMConfig contains all generation-service settings. GeminiAPIKey is
// deliberately not marked required: a missing credential is reported per
// request by the handler rather than preventing startup. Model, when
// set, becomes the first candidate ahead of the built-in fallbacks.
type LLMConfig struct {
	GeminiAPIKey string `mapstructure:"gemini_api_key"`
	Model        string `mapstructure:"model"`
}
