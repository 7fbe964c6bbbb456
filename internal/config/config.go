// ABOUTME: Configuration loading for the exchanger bot
// ABOUTME: Loads TOML config with environment variable expansion

package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the full process configuration.
type Config struct {
	Telegram TelegramConfig `toml:"telegram"`
	Logging  LoggingConfig  `toml:"logging"`

	// Rates overrides entries of the built-in USD rate table,
	// e.g. BTC = 52000.0. Codes absent here keep their defaults.
	Rates map[string]float64 `toml:"rates"`
}

// TelegramConfig holds the transport credential and the operator identity.
type TelegramConfig struct {
	Token      string `toml:"token"`
	OperatorID int64  `toml:"operator_id"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "text" or "json"
}

// Load reads config from the given path, expanding environment variables.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables (${VAR} syntax)
	expanded := expandEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(expanded, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// expandEnvVars replaces ${VAR} with environment variable values.
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	return re.ReplaceAllStringFunc(s, func(match string) string {
		varName := strings.TrimSuffix(strings.TrimPrefix(match, "${"), "}")
		return os.Getenv(varName)
	})
}

// Validate checks that required config fields are present and valid.
func (c *Config) Validate() error {
	if c.Telegram.Token == "" {
		return fmt.Errorf("telegram.token is required")
	}
	if c.Telegram.OperatorID == 0 {
		return fmt.Errorf("telegram.operator_id is required")
	}
	for code, rate := range c.Rates {
		if rate <= 0 {
			return fmt.Errorf("rates.%s must be positive, got %v", code, rate)
		}
	}
	return nil
}
