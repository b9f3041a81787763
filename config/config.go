// Package config loads assessment run configuration from YAML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/georgepadayatti/cipherward/assess"
)

// ErrConfigurationError is the base error all configuration failures
// unwrap to.
var ErrConfigurationError = errors.New("configuration error")

// ConfigError represents a configuration error with field context.
type ConfigError struct {
	Field   string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config error in '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}

func (e *ConfigError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrConfigurationError
}

// NewConfigError creates a new ConfigError.
func NewConfigError(field, message string) *ConfigError {
	return &ConfigError{Field: field, Message: message}
}

// Config holds the defaults for an assessment run. Command line flags
// override any value set here.
type Config struct {
	// Guide is the guideline to assess against.
	Guide string `yaml:"guide"`

	// Expiry is the evaluation year. Zero means the current year.
	Expiry uint16 `yaml:"expiry"`

	// SecurityLevel is a minimum security strength in bits layered on
	// top of the guideline's own floor. Zero means guideline default.
	SecurityLevel uint16 `yaml:"security-level"`

	// Verbose enables per-check diagnostics for compliant primitives.
	Verbose bool `yaml:"verbose"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Guide:  "bsi",
		Expiry: uint16(time.Now().Year()),
	}
}

// Load reads and validates a configuration file. A missing file is not
// an error: the defaults are returned. A malformed or invalid file is.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if _, err := assess.ParseGuide(c.Guide); err != nil {
		return &ConfigError{Field: "guide", Message: err.Error(), Err: err}
	}
	if c.Expiry != 0 && c.Expiry < 1970 {
		return NewConfigError("expiry", fmt.Sprintf("implausible year %d", c.Expiry))
	}
	return nil
}
