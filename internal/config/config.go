package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"  validate:"required"`
	LLM     LLMConfig     `mapstructure:"llm"     validate:"required"`
	Storage StorageConfig `mapstructure:"storage" validate:"required"`
	History HistoryConfig `mapstructure:"history" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port                   int    `mapstructure:"port"                     validate:"required,gt=0,lt=65536"`
	LogLevel               string `mapstructure:"log_level"                validate:"required,oneof=debug info warn error"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds" validate:"required,gt=0"`
}

// LLMConfig contains all LLM integration related settings.
type LLMConfig struct {
	GeminiAPIKey      string  `mapstructure:"gemini_api_key"      validate:"required"`
	ModelName         string  `mapstructure:"model_name"          validate:"required"`
	MaxRetries        int     `mapstructure:"max_retries"         validate:"gte=0,lte=10"`
	RetryDelaySeconds int     `mapstructure:"retry_delay_seconds" validate:"gte=1,lte=60"`
	Temperature       float32 `mapstructure:"temperature"         validate:"gte=0,lte=2"`
	// PromptTemplateDir, when set, holds *.tmpl files that replace the embedded prompts.
	PromptTemplateDir string `mapstructure:"prompt_template_dir" validate:"omitempty,dir"`
}

// Storage backends.
const (
	StorageBackendMemory   = "memory"
	StorageBackendBadger   = "badger"
	StorageBackendPostgres = "postgres"
	StorageBackendRedis    = "redis"
)

// StorageConfig selects and configures the record store holding history and
// quiz results.
type StorageConfig struct {
	Backend     string `mapstructure:"backend"      validate:"required,oneof=memory badger postgres redis"`
	BadgerPath  string `mapstructure:"badger_path"  validate:"required_if=Backend badger"`
	DatabaseURL string `mapstructure:"database_url" validate:"required_if=Backend postgres"`
	RedisAddr   string `mapstructure:"redis_addr"   validate:"required_if=Backend redis"`
}

// HistoryConfig controls the bounded generation history.
type HistoryConfig struct {
	Limit int `mapstructure:"limit" validate:"required,gte=1,lte=1000"`
}
