package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the loaded configuration is complete enough to
// start the server and reach its collaborators.
func ValidateConfig(cfg *Config) error {
	var errs []string

	if cfg.ServerPort == "" {
		errs = append(errs, ValidationError{"SERVER_PORT", "must not be empty"}.Error())
	}
	if cfg.GeminiAPIKey == "" {
		errs = append(errs, ValidationError{"GEMINI_API_KEY", "is required"}.Error())
	}
	if cfg.GeminiAPIURL == "" {
		errs = append(errs, ValidationError{"GEMINI_API_URL", "must not be empty"}.Error())
	}
	if cfg.GeminiModel == "" {
		errs = append(errs, ValidationError{"GEMINI_MODEL", "must not be empty"}.Error())
	}
	if cfg.RedisURL == "" && (cfg.RedisHost == "" || cfg.RedisPort == "") {
		errs = append(errs, "either REDIS_URL or REDIS_HOST and REDIS_PORT must be set")
	}
	if cfg.RedisDB < 0 {
		errs = append(errs, ValidationError{"REDIS_DB", "must not be negative"}.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "\n"))
	}
	return nil
}
