package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "cadence.yaml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.ScriptPath != "" {
		t.Fatalf("expected the builtin script by default, got %q", cfg.ScriptPath)
	}
	if cfg.LogPath != defaultLogPath {
		t.Fatalf("expected the default log path, got %q", cfg.LogPath)
	}
	if cfg.Autostart {
		t.Fatalf("autostart should default to off")
	}
}

func TestLoadParsesYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cadence.yaml")
	configYAML := strings.TrimSpace(`
script: tours/site.yaml
log: logs/demo.log
autostart: true
`)
	if err := os.WriteFile(path, []byte(configYAML), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.ScriptPath != "tours/site.yaml" {
		t.Fatalf("wrong script path: %q", cfg.ScriptPath)
	}
	if cfg.LogPath != "logs/demo.log" {
		t.Fatalf("wrong log path: %q", cfg.LogPath)
	}
	if !cfg.Autostart {
		t.Fatalf("autostart should be on")
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cadence.yaml")
	if err := os.WriteFile(path, []byte("log: logs/demo.log\nautostart: true\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CADENCE_LOG", "elsewhere/session.log")
	t.Setenv("CADENCE_AUTOSTART", "false")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.LogPath != "elsewhere/session.log" {
		t.Fatalf("env override lost: %q", cfg.LogPath)
	}
	if cfg.Autostart {
		t.Fatalf("env should turn autostart back off")
	}
}

func TestLoadRejectsBadYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cadence.yaml")
	if err := os.WriteFile(path, []byte("script: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected a parse error but got none")
	}
}
