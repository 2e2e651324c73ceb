package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is the global validator instance.
var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("env", validateEnvironment)
	validate.RegisterStructValidation(validateConfig, Config{})
}

// ConfigError represents a validation error for a specific field.
type ConfigError struct {
	Field   string
	Message string
	Value   interface{}
}

func (e ConfigError) Error() string {
	return fmt.Sprintf("%s: %s (got %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of config errors.
type ValidationErrors []ConfigError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("configuration validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

// ValidateWithDetails performs validation and returns detailed errors.
func ValidateWithDetails(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	details := make(ValidationErrors, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		details = append(details, ConfigError{
			Field:   fe.Namespace(),
			Message: formatValidationError(fe),
			Value:   fe.Value(),
		})
	}
	return details
}

// formatValidationError converts validator.FieldError to a human-readable message.
func formatValidationError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "url":
		return "must be a valid URL"
	case "env":
		return "must be one of [development staging production]"
	case "required_for_backend":
		return fmt.Sprintf("is required when %s is selected", fe.Param())
	default:
		return fmt.Sprintf("failed validation: %s", fe.Tag())
	}
}

// validateEnvironment is a custom validator for environment values.
func validateEnvironment(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "development", "staging", "production":
		return true
	}
	return false
}

// validateConfig checks settings that depend on the selected backends.
func validateConfig(sl validator.StructLevel) {
	cfg := sl.Current().Interface().(Config)

	switch cfg.Storage.Type {
	case "badger":
		if cfg.Storage.Badger.Path == "" {
			sl.ReportError(cfg.Storage.Badger.Path, "Storage.Badger.Path", "Path", "required_for_backend", "badger")
		}
	case "redis":
		if cfg.Storage.Redis.Address == "" {
			sl.ReportError(cfg.Storage.Redis.Address, "Storage.Redis.Address", "Address", "required_for_backend", "redis")
		}
	case "sqlite":
		if cfg.Storage.SQLite.Path == "" {
			sl.ReportError(cfg.Storage.SQLite.Path, "Storage.SQLite.Path", "Path", "required_for_backend", "sqlite")
		}
	}

	if cfg.Notify.Provider == "resend" && cfg.Notify.From == "" {
		sl.ReportError(cfg.Notify.From, "Notify.From", "From", "required_for_backend", "resend")
	}

	if cfg.Tracing.Enabled && cfg.Tracing.Endpoint == "" {
		sl.ReportError(cfg.Tracing.Endpoint, "Tracing.Endpoint", "Endpoint", "required_for_backend", "tracing")
	}
}
