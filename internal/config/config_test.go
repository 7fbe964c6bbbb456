// ABOUTME: Tests for configuration loading and parsing
// ABOUTME: Covers TOML loading, env var expansion and validation

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, `
[telegram]
token = "123456:test-token"
operator_id = 42

[logging]
level = "debug"
format = "json"

[rates]
BTC = 52000.0
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Telegram.Token != "123456:test-token" {
		t.Errorf("unexpected token: %q", cfg.Telegram.Token)
	}
	if cfg.Telegram.OperatorID != 42 {
		t.Errorf("unexpected operator_id: %d", cfg.Telegram.OperatorID)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("unexpected logging config: %+v", cfg.Logging)
	}
	if cfg.Rates["BTC"] != 52000.0 {
		t.Errorf("unexpected rates: %+v", cfg.Rates)
	}
}

func TestLoad_EnvVarExpansion(t *testing.T) {
	t.Setenv("TEST_BOT_TOKEN", "999:secret")

	path := writeConfig(t, `
[telegram]
token = "${TEST_BOT_TOKEN}"
operator_id = 1
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Telegram.Token != "999:secret" {
		t.Errorf("env var not expanded: %q", cfg.Telegram.Token)
	}
}

func TestLoad_MissingToken(t *testing.T) {
	path := writeConfig(t, `
[telegram]
operator_id = 1
`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for missing token")
	}
	if !strings.Contains(err.Error(), "telegram.token") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoad_MissingOperator(t *testing.T) {
	path := writeConfig(t, `
[telegram]
token = "123:abc"
`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for missing operator_id")
	}
}

func TestLoad_BadRateOverride(t *testing.T) {
	path := writeConfig(t, `
[telegram]
token = "123:abc"
operator_id = 1

[rates]
BTC = -1.0
`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for negative rate")
	}
	if !strings.Contains(err.Error(), "rates.BTC") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
