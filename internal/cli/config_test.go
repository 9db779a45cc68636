package cli

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "host.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `
hostname = "com.example.echo"
description = "Echo host"
origins = ["chrome-extension://abc/"]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Hostname != "com.example.echo" {
		t.Errorf("Hostname = %q, want %q", cfg.Hostname, "com.example.echo")
	}
	if !reflect.DeepEqual(cfg.Origins, []string{"chrome-extension://abc/"}) {
		t.Errorf("Origins = %v", cfg.Origins)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Errorf("log defaults = (%q, %q), want (info, text)", cfg.LogLevel, cfg.LogFormat)
	}
	if cfg.ManifestDir != "" {
		t.Errorf("ManifestDir = %q, want empty default", cfg.ManifestDir)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
hostname = "com.example.echo"
origins = ["chrome-extension://abc/", "  "]
manifest_dir = "/opt/echo"
executable = "/opt/echo/echo-host"
log_level = "debug"
log_format = "json"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.ManifestDir != "/opt/echo" {
		t.Errorf("ManifestDir = %q", cfg.ManifestDir)
	}
	if cfg.Executable != "/opt/echo/echo-host" {
		t.Errorf("Executable = %q", cfg.Executable)
	}
	if cfg.LogLevel != "debug" || cfg.LogFormat != "json" {
		t.Errorf("log settings = (%q, %q)", cfg.LogLevel, cfg.LogFormat)
	}
	if len(cfg.Origins) != 1 {
		t.Errorf("Origins = %v, blank entries should be dropped", cfg.Origins)
	}
}

func TestLoadRequiresHostname(t *testing.T) {
	path := writeConfig(t, `description = "no name"`)

	if _, err := Load(path); err == nil {
		t.Error("Load() accepted a config without hostname")
	}
}
