package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
	LLM      LLMConfig      `mapstructure:"llm"      validate:"required"`
	Quota    QuotaConfig    `mapstructure:"quota"    validate:"required"`
	Classify ClassifyConfig `mapstructure:"classify"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig holds the shared secret used to verify bearer tokens minted by
// the external auth provider. The server never issues tokens itself.
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret" validate:"required,min=32"`
}

// LLMConfig contains all model integration related settings.
type LLMConfig struct {
	// Provider selects the model backend: "gemini" or "openai".
	Provider string `mapstructure:"provider" validate:"required,oneof=gemini openai"`

	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required_if=Provider gemini"`
	OpenAIAPIKey string `mapstructure:"openai_api_key" validate:"required_if=Provider openai"`

	// OpenAIBaseURL overrides the OpenAI endpoint for compatible providers.
	OpenAIBaseURL string `mapstructure:"openai_base_url"`

	ModelName string `mapstructure:"model_name" validate:"required"`

	// RequestTimeoutSeconds bounds each individual model invocation,
	// independent from the HTTP handler deadline.
	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds" validate:"required,gt=0"`

	Temperature     float32 `mapstructure:"temperature"`
	MaxOutputTokens int     `mapstructure:"max_output_tokens" validate:"gte=0"`
}

// QuotaConfig contains the free-tier limits enforced by the quota gate.
type QuotaConfig struct {
	FreeDailyLimit      int `mapstructure:"free_daily_limit"      validate:"required,gt=0"`
	FreeMaxCardsPerSet  int `mapstructure:"free_max_cards"        validate:"required,gt=0"`
	AnonymousDailyLimit int `mapstructure:"anonymous_daily_limit" validate:"required,gt=0"`
}

// ClassifyConfig carries the classifier's fallback language. The scoring
// thresholds themselves are calibratable constants in the classify package.
type ClassifyConfig struct {
	FallbackLanguage string `mapstructure:"fallback_language"`
}
