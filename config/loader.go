package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix is the prefix for environment variables.
	EnvPrefix = "FOLIO_"
	// EnvNestSeparator separates nested keys in environment variable names:
	// FOLIO_CHAT__RATE_LIMIT -> chat.rate_limit.
	EnvNestSeparator = "__"
	// Delimiter is the key delimiter for nested config.
	Delimiter = "."
)

// envAliases maps well-known unprefixed environment variables onto config keys.
// They are applied after FOLIO_ variables, so an alias wins when both are set.
var envAliases = map[string]string{
	"GROQ_API_KEY":         "llm.openai.api_key",
	"GEMINI_API_KEY":       "llm.gemini.api_key",
	"JWT_SECRET_KEY":       "auth.jwt_secret",
	"ADMIN_LOGIN_EMAIL":    "auth.admin_email",
	"ADMIN_LOGIN_PASSWORD": "auth.admin_password",
	"RESEND_API_KEY":       "notify.api_key",
	"ADMIN_EMAIL":          "notify.admin_email",
	"DATABASE_PATH":        "storage.sqlite.path",
}

// Loader handles configuration loading from various sources.
type Loader struct {
	k *koanf.Koanf
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	return &Loader{
		k: koanf.New(Delimiter),
	}
}

// Load loads configuration from all sources with the following priority:
// 1. Command line overrides (highest)
// 2. Environment aliases, then FOLIO_ variables
// 3. Configuration file
// 4. Defaults (lowest)
func (l *Loader) Load(configPath string, overrides map[string]interface{}) (*Config, error) {
	// Each load starts from scratch so a reload never keeps stale keys.
	l.k = koanf.New(Delimiter)

	if err := l.loadDefaults(); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath != "" {
		if err := l.loadFile(configPath); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	} else {
		l.loadDefaultFiles()
	}

	if err := l.loadEnv(); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if err := l.loadEnvAliases(); err != nil {
		return nil, fmt.Errorf("failed to load env aliases: %w", err)
	}

	if len(overrides) > 0 {
		if err := l.k.Load(confmap.Provider(overrides, Delimiter), nil); err != nil {
			return nil, fmt.Errorf("failed to apply overrides: %w", err)
		}
	}

	var cfg Config
	if err := l.k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "mapstructure",
	}); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := ValidateWithDetails(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// loadDefaults loads the default configuration as flattened keys, so a file
// that sets one nested field does not wipe its siblings.
func (l *Loader) loadDefaults() error {
	return l.k.Load(confmap.Provider(structToMap(DefaultConfig(), ""), Delimiter), nil)
}

// loadFile loads configuration from a file.
func (l *Loader) loadFile(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser

	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return fmt.Errorf("unsupported config file format: %s", ext)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("config file not found: %s", path)
	}

	return l.k.Load(file.Provider(path), parser)
}

// loadDefaultFiles tries to load config from standard locations.
func (l *Loader) loadDefaultFiles() {
	candidates := []string{
		"config.yaml",
		"config.yml",
		"config.json",
		"configs/config.yaml",
		"/etc/folio/config.yaml",
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			_ = l.loadFile(path)
			return
		}
	}
}

// loadEnv loads FOLIO_ prefixed environment variables.
func (l *Loader) loadEnv() error {
	return l.k.Load(env.Provider(EnvPrefix, Delimiter, envKey), nil)
}

// envKey maps FOLIO_SERVER__HTTP__READ_TIMEOUT to server.http.read_timeout.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, EnvNestSeparator, Delimiter)
}

func (l *Loader) loadEnvAliases() error {
	values := make(map[string]interface{})
	for name, key := range envAliases {
		if v, ok := os.LookupEnv(name); ok && v != "" {
			values[key] = v
		}
	}
	if len(values) == 0 {
		return nil
	}
	return l.k.Load(confmap.Provider(values, Delimiter), nil)
}

// Get returns a configuration value by key.
func (l *Loader) Get(key string) interface{} {
	return l.k.Get(key)
}

// GetString returns a string configuration value.
func (l *Loader) GetString(key string) string {
	return l.k.String(key)
}

var durationType = reflect.TypeOf(time.Duration(0))

// structToMap recursively converts a struct to a flat map with dot-separated keys.
func structToMap(v interface{}, prefix string) map[string]interface{} {
	result := make(map[string]interface{})
	val := reflect.ValueOf(v)

	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return result
	}

	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		field := typ.Field(i)
		fieldVal := val.Field(i)

		if !field.IsExported() {
			continue
		}

		key := field.Tag.Get("mapstructure")
		if key == "" || key == "-" {
			continue
		}

		fullKey := key
		if prefix != "" {
			fullKey = prefix + Delimiter + key
		}

		switch {
		case fieldVal.Type() == durationType:
			result[fullKey] = fieldVal.Interface()
		case fieldVal.Kind() == reflect.Struct:
			for k, v := range structToMap(fieldVal.Interface(), fullKey) {
				result[k] = v
			}
		case fieldVal.Kind() == reflect.Map:
			if !fieldVal.IsNil() {
				result[fullKey] = fieldVal.Interface()
			}
		case fieldVal.Kind() == reflect.Slice:
			slice := make([]interface{}, fieldVal.Len())
			for j := range slice {
				slice[j] = fieldVal.Index(j).Interface()
			}
			result[fullKey] = slice
		default:
			result[fullKey] = fieldVal.Interface()
		}
	}

	return result
}

// Load is a convenience function to load configuration.
func Load(configPath string, overrides map[string]interface{}) (*Config, error) {
	return NewLoader().Load(configPath, overrides)
}
