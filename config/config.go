// Package config provides configuration management for folio.
package config

import (
	"fmt"
	"time"
)

// Config is the global configuration for folio.
type Config struct {
	// App is the application configuration.
	App AppConfig `mapstructure:"app" validate:"required"`

	// Server is the HTTP server configuration.
	Server ServerConfig `mapstructure:"server" validate:"required"`

	// Log is the logging configuration.
	Log LogConfig `mapstructure:"log" validate:"required"`

	// Storage is the record store configuration.
	Storage StorageConfig `mapstructure:"storage"`

	// Metrics is the prometheus configuration.
	Metrics MetricsConfig `mapstructure:"metrics"`

	// Tracing is the OpenTelemetry configuration.
	Tracing TracingConfig `mapstructure:"tracing"`

	// Owner describes the person the portfolio belongs to.
	Owner OwnerConfig `mapstructure:"owner"`

	// Auth is the login and token configuration.
	Auth AuthConfig `mapstructure:"auth"`

	// Chat is the chatbot configuration.
	Chat ChatConfig `mapstructure:"chat"`

	// LLM selects and configures the inference provider.
	LLM LLMConfig `mapstructure:"llm"`

	// Documents is the resume/CV storage configuration.
	Documents DocumentsConfig `mapstructure:"documents"`

	// Notify is the outbound e-mail configuration.
	Notify NotifyConfig `mapstructure:"notify"`

	// WebSocket is the admin event feed configuration.
	WebSocket WebSocketConfig `mapstructure:"websocket"`
}

// AppConfig holds application metadata and settings.
type AppConfig struct {
	// Name is the application name.
	Name string `mapstructure:"name" validate:"required"`

	// Version is the application version.
	Version string `mapstructure:"version"`

	// Environment is the runtime environment (development, staging, production).
	Environment string `mapstructure:"environment" validate:"env"`

	// Debug enables debug mode with verbose logging.
	Debug bool `mapstructure:"debug"`
}

// ServerConfig holds the HTTP server configuration.
type ServerConfig struct {
	// Host is the bind address.
	Host string `mapstructure:"host"`

	// Port is the HTTP API port.
	Port int `mapstructure:"port" validate:"required,min=1,max=65535"`

	// TrustedProxyHeader, when set, names a header (e.g. X-Forwarded-For) whose
	// last value, the one appended by the proxy, identifies the client instead
	// of the socket address.
	TrustedProxyHeader string `mapstructure:"trusted_proxy_header"`

	// SiteDir, when set, is a built single-page site served under /site/.
	SiteDir string `mapstructure:"site_dir"`

	// HTTP is the HTTP server configuration.
	HTTP HTTPConfig `mapstructure:"http"`

	// CORS is the CORS configuration.
	CORS CORSConfig `mapstructure:"cors"`
}

// HTTPConfig holds HTTP-specific settings.
type HTTPConfig struct {
	// ReadTimeout is the maximum duration for reading the entire request.
	ReadTimeout time.Duration `mapstructure:"read_timeout"`

	// WriteTimeout is the maximum duration before timing out writes.
	WriteTimeout time.Duration `mapstructure:"write_timeout"`

	// IdleTimeout is the maximum amount of time to wait for the next request.
	IdleTimeout time.Duration `mapstructure:"idle_timeout"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown.
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`

	// RequestTimeout bounds handler execution.
	RequestTimeout time.Duration `mapstructure:"request_timeout"`

	// MaxHeaderBytes limits the size of request headers.
	MaxHeaderBytes int `mapstructure:"max_header_bytes"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	// Enabled enables CORS support.
	Enabled bool `mapstructure:"enabled"`

	// AllowedOrigins is the list of allowed origins.
	AllowedOrigins []string `mapstructure:"allowed_origins"`

	// AllowedMethods is the list of allowed HTTP methods.
	AllowedMethods []string `mapstructure:"allowed_methods"`

	// AllowedHeaders is the list of allowed headers.
	AllowedHeaders []string `mapstructure:"allowed_headers"`

	// AllowCredentials indicates whether credentials are allowed.
	AllowCredentials bool `mapstructure:"allow_credentials"`

	// MaxAge is the maximum age of CORS preflight cache in seconds.
	MaxAge int `mapstructure:"max_age"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`

	// Format is the output format (json, text).
	Format string `mapstructure:"format" validate:"oneof=json text"`

	// Output is the output destination (stdout, stderr, or file path).
	Output string `mapstructure:"output"`
}

// StorageConfig holds persistence settings.
type StorageConfig struct {
	// Type is the storage backend (memory, badger, redis, sqlite).
	Type string `mapstructure:"type" validate:"oneof=memory badger redis sqlite"`

	// Badger is the BadgerDB configuration.
	Badger BadgerConfig `mapstructure:"badger"`

	// Redis is the Redis configuration.
	Redis RedisConfig `mapstructure:"redis"`

	// SQLite is the SQLite configuration.
	SQLite SQLiteConfig `mapstructure:"sqlite"`
}

// BadgerConfig holds BadgerDB-specific settings.
type BadgerConfig struct {
	// Path is the database directory path.
	Path string `mapstructure:"path"`

	// SyncWrites enables synchronous writes for durability.
	SyncWrites bool `mapstructure:"sync_writes"`

	// ValueLogFileSize is the maximum size of value log files in bytes.
	ValueLogFileSize int64 `mapstructure:"value_log_file_size"`
}

// RedisConfig holds Redis-specific settings.
type RedisConfig struct {
	// Address is the Redis server address.
	Address string `mapstructure:"address"`

	// Password is the Redis password.
	Password string `mapstructure:"password"`

	// DB is the Redis database number.
	DB int `mapstructure:"db" validate:"min=0"`

	// KeyPrefix namespaces every key written by folio.
	KeyPrefix string `mapstructure:"key_prefix"`
}

// SQLiteConfig holds SQLite-specific settings.
type SQLiteConfig struct {
	// Path is the database file path.
	Path string `mapstructure:"path"`
}

// MetricsConfig holds observability settings.
type MetricsConfig struct {
	// Enabled enables metrics collection.
	Enabled bool `mapstructure:"enabled"`

	// Path is the metrics endpoint path.
	Path string `mapstructure:"path"`

	// Port is the metrics server port.
	Port int `mapstructure:"port" validate:"min=1,max=65535"`
}

// TracingConfig holds distributed tracing settings.
type TracingConfig struct {
	// Enabled enables distributed tracing.
	Enabled bool `mapstructure:"enabled"`

	// Exporter is the span exporter (otlpgrpc).
	Exporter string `mapstructure:"exporter" validate:"oneof=otlpgrpc"`

	// Endpoint is the collector endpoint (host:port).
	Endpoint string `mapstructure:"endpoint"`

	// Insecure disables TLS to the collector.
	Insecure bool `mapstructure:"insecure"`

	// Timeout bounds each export call.
	Timeout time.Duration `mapstructure:"timeout"`

	// Headers are sent with every export request.
	Headers map[string]string `mapstructure:"headers"`

	// Sampler is the sampling strategy (always_on, always_off, ratio, parentbased_ratio).
	Sampler string `mapstructure:"sampler" validate:"oneof=always_on always_off ratio parentbased_ratio"`

	// SampleRate is the fraction of traces to sample (0.0-1.0).
	SampleRate float64 `mapstructure:"sample_rate" validate:"min=0,max=1"`
}

// OwnerConfig is the profile the chatbot and downloads present.
type OwnerConfig struct {
	// Name is the owner's display name.
	Name string `mapstructure:"name" validate:"required"`

	Email     string `mapstructure:"email"`
	GitHub    string `mapstructure:"github"`
	Portfolio string `mapstructure:"portfolio"`
	LinkedIn  string `mapstructure:"linkedin"`
}

// AuthConfig holds login settings.
type AuthConfig struct {
	// JWTSecret signs bearer tokens.
	JWTSecret string `mapstructure:"jwt_secret" validate:"required"`

	// TokenTTL is the bearer token lifetime.
	TokenTTL time.Duration `mapstructure:"token_ttl" validate:"gt=0"`

	// AdminEmail and AdminPassword seed the admin account at startup.
	AdminEmail    string `mapstructure:"admin_email"`
	AdminPassword string `mapstructure:"admin_password"`

	// LoginRate is the sustained number of login attempts per minute per client.
	LoginRate float64 `mapstructure:"login_rate" validate:"gt=0"`

	// LoginBurst is the number of attempts allowed in a burst.
	LoginBurst int `mapstructure:"login_burst" validate:"min=1"`
}

// ChatConfig holds the chatbot limits.
type ChatConfig struct {
	// RateLimit is the number of chat requests allowed per client per window.
	RateLimit int `mapstructure:"rate_limit" validate:"min=1"`

	// RateWindow is the sliding window for RateLimit.
	RateWindow time.Duration `mapstructure:"rate_window" validate:"gt=0"`

	// CacheExpiry is how long a cached reply stays valid.
	CacheExpiry time.Duration `mapstructure:"cache_expiry" validate:"gt=0"`

	// MaxMemoryLength is the number of prior turns sent with each prompt.
	MaxMemoryLength int `mapstructure:"max_memory_length" validate:"min=1"`

	// MaxMessageLength is the maximum accepted message length in characters.
	MaxMessageLength int `mapstructure:"max_message_length" validate:"min=1"`

	// InferenceTimeout bounds each call to the language model.
	InferenceTimeout time.Duration `mapstructure:"inference_timeout" validate:"gt=0"`
}

// LLMConfig selects the inference provider.
type LLMConfig struct {
	// Provider is one of openai (any OpenAI-compatible endpoint, Groq by default) or gemini.
	Provider string `mapstructure:"provider" validate:"oneof=openai gemini"`

	// Temperature is the sampling temperature.
	Temperature float64 `mapstructure:"temperature" validate:"min=0,max=2"`

	// MaxTokens caps the reply length.
	MaxTokens int `mapstructure:"max_tokens" validate:"min=1"`

	OpenAI OpenAIConfig `mapstructure:"openai"`
	Gemini GeminiConfig `mapstructure:"gemini"`
}

// OpenAIConfig configures an OpenAI-compatible chat completions endpoint.
type OpenAIConfig struct {
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
}

// GeminiConfig configures the Gemini provider.
type GeminiConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// DocumentsConfig holds resume/CV storage settings.
type DocumentsConfig struct {
	// Dir is where uploaded PDFs are written.
	Dir string `mapstructure:"dir" validate:"required"`

	// MaxSize is the upload limit in bytes.
	MaxSize int64 `mapstructure:"max_size" validate:"min=1"`
}

// NotifyConfig holds outbound e-mail settings.
type NotifyConfig struct {
	// Provider is resend or none.
	Provider string `mapstructure:"provider" validate:"oneof=resend none"`

	// BaseURL is the Resend API base URL.
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`

	// APIKey is the Resend API key.
	APIKey string `mapstructure:"api_key"`

	// From is the sender address.
	From string `mapstructure:"from"`

	// AdminEmail receives new contact-form notifications.
	AdminEmail string `mapstructure:"admin_email"`

	// Timeout bounds each delivery attempt.
	Timeout time.Duration `mapstructure:"timeout"`
}

// WebSocketConfig holds admin event feed settings.
type WebSocketConfig struct {
	// Enabled exposes /ws/events.
	Enabled bool `mapstructure:"enabled"`

	// MaxConnections caps concurrent subscribers.
	MaxConnections int `mapstructure:"max_connections" validate:"min=1"`

	// PingInterval is the keepalive ping period.
	PingInterval time.Duration `mapstructure:"ping_interval"`
}

// Validate performs validation on the configuration.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// String returns a string representation of the configuration (without sensitive data).
func (c *Config) String() string {
	return fmt.Sprintf("Config{App: %s, Server: :%d, Env: %s, Storage: %s, LLM: %s}",
		c.App.Name, c.Server.Port, c.App.Environment, c.Storage.Type, c.LLM.Provider)
}
