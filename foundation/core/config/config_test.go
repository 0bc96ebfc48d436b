// File: config_test.go
// Title: Configuration Unit Tests
// Description: Tests for configuration loading from TOML and YAML files,
//              dot-notation access, typed getters, and env overrides.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-12

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	mofxerror "github.com/msto63/mOFX/foundation/core/error"
)

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func TestLoadTOML(t *testing.T) {
	path := writeTempConfig(t, "config.toml", `
[parser]
strict = true
max_depth = 32

[store]
path = "statements.db"
timeout = "5s"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if !cfg.GetBool("parser.strict", false) {
		t.Error("parser.strict should be true")
	}
	if got := cfg.GetInt("parser.max_depth", 0); got != 32 {
		t.Errorf("parser.max_depth = %d, want 32", got)
	}
	if got := cfg.GetString("store.path", ""); got != "statements.db" {
		t.Errorf("store.path = %q, want statements.db", got)
	}
	if got := cfg.GetDuration("store.timeout", 0); got != 5*time.Second {
		t.Errorf("store.timeout = %v, want 5s", got)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeTempConfig(t, "config.yaml", `
parser:
  strict: false
log:
  level: debug
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.GetBool("parser.strict", true) {
		t.Error("parser.strict should be false")
	}
	if got := cfg.GetString("log.level", ""); got != "debug" {
		t.Errorf("log.level = %q, want debug", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !mofxerror.HasCode(err, mofxerror.CodeMissingConfig) {
		t.Errorf("code = %v, want %v", mofxerror.GetCode(err), mofxerror.CodeMissingConfig)
	}
}

func TestDefaults(t *testing.T) {
	path := writeTempConfig(t, "config.toml", `
[parser]
strict = true
`)

	cfg, err := LoadWithOptions(path, LoadOptions{
		Format: FormatAuto,
		Defaults: map[string]interface{}{
			"parser.max_depth": 64,
			"parser.strict":    false, // must not override the file
		},
	})
	if err != nil {
		t.Fatalf("LoadWithOptions failed: %v", err)
	}

	if got := cfg.GetInt("parser.max_depth", 0); got != 64 {
		t.Errorf("parser.max_depth = %d, want default 64", got)
	}
	if !cfg.GetBool("parser.strict", false) {
		t.Error("file value must win over default")
	}
}

func TestEnvOverride(t *testing.T) {
	path := writeTempConfig(t, "config.toml", `
[log]
level = "info"
`)

	t.Setenv("MOFX_LOG_LEVEL", "trace")

	cfg, err := LoadWithOptions(path, LoadOptions{EnvPrefix: "MOFX"})
	if err != nil {
		t.Fatalf("LoadWithOptions failed: %v", err)
	}

	if got := cfg.GetString("log.level", ""); got != "trace" {
		t.Errorf("log.level = %q, want env override trace", got)
	}
}

func TestMissingKeyDefaults(t *testing.T) {
	cfg := NewFromMap(map[string]interface{}{})

	if got := cfg.GetString("missing", "fallback"); got != "fallback" {
		t.Errorf("GetString = %q, want fallback", got)
	}
	if got := cfg.GetInt("missing", 7); got != 7 {
		t.Errorf("GetInt = %d, want 7", got)
	}
	if cfg.Has("missing") {
		t.Error("Has should be false for missing key")
	}
}
