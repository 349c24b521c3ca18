// Package config loads runner-level settings for search drivers: pool
// size, lineage age limit, random seed, and log verbosity. The engine core
// stays I/O-free; this package exists for CLIs and example consumers that
// want file-driven runs.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Settings holds the tunable parameters of a search run.
type Settings struct {
	PoolSize int    `yaml:"pool_size" validate:"gte=0"`
	MaxAge   int    `yaml:"max_age" validate:"gte=0"`
	Seed     int64  `yaml:"seed"`
	LogLevel string `yaml:"log_level" validate:"omitempty,oneof=DEBUG INFO WARN ERROR FATAL"`
}

// Default returns settings for a plain hill-climbing run.
func Default() Settings {
	return Settings{
		PoolSize: 1,
		MaxAge:   0,
		Seed:     0, // 0 = time-based
		LogLevel: "INFO",
	}
}

// Load reads settings from a YAML file, applying defaults for absent keys.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// Validate checks the settings against their struct tags.
func (s Settings) Validate() error {
	err := newValidator().Struct(s)
	if err == nil {
		return nil
	}

	// Convert validator errors to our custom error format
	var validationErrors ValidationErrors
	if errs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range errs {
			validationErrors = append(validationErrors, ValidationError{
				Field: e.Field(),
				Tag:   e.Tag(),
				Value: e.Value(),
			})
		}
	} else {
		validationErrors = append(validationErrors, ValidationError{Message: err.Error()})
	}
	return validationErrors
}

func newValidator() *validator.Validate {
	return validator.New()
}

// ValidationError represents a single settings validation failure.
type ValidationError struct {
	Field   string
	Tag     string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	switch e.Tag {
	case "gte":
		return fmt.Sprintf("%s must not be negative", e.Field)
	case "oneof":
		return fmt.Sprintf("%s must be one of the known values", e.Field)
	default:
		return fmt.Sprintf("%s failed validation", e.Field)
	}
}

// ValidationErrors represents multiple validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var messages []string
	for i := range e {
		messages = append(messages, e[i].Error())
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(messages, "; "))
}
