// Package cli holds configuration shared by the nmctl subcommands.
package cli

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config describes one native messaging host installation.
type Config struct {
	// Hostname is the host's identity, e.g. "com.example.echo".
	Hostname string

	// Description goes into the generated manifest.
	Description string

	// Origins are the extension origins allowed to start the host.
	Origins []string

	// ManifestDir overrides where the manifest is written; empty means the
	// platform's per-user manifest directory.
	ManifestDir string

	// Executable overrides the binary path recorded in the manifest; empty
	// means the running binary.
	Executable string

	LogLevel  string
	LogFormat string
}

type fileConfig struct {
	Hostname    string   `toml:"hostname"`
	Description string   `toml:"description"`
	Origins     []string `toml:"origins"`
	ManifestDir string   `toml:"manifest_dir"`
	Executable  string   `toml:"executable"`
	LogLevel    string   `toml:"log_level"`
	LogFormat   string   `toml:"log_format"`
}

// Load reads a host configuration from the TOML file at path.
func Load(path string) (Config, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load host config: %w", err)
	}

	cfg := Config{
		LogLevel:  "info",
		LogFormat: "text",
	}

	cfg.Hostname = strings.TrimSpace(raw.Hostname)
	if cfg.Hostname == "" {
		return Config{}, fmt.Errorf("load host config: hostname is required")
	}

	cfg.Description = strings.TrimSpace(raw.Description)
	cfg.Origins = normalizeOrigins(raw.Origins)

	if meta.IsDefined("manifest_dir") {
		cfg.ManifestDir = strings.TrimSpace(raw.ManifestDir)
	}
	if meta.IsDefined("executable") {
		cfg.Executable = strings.TrimSpace(raw.Executable)
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	if meta.IsDefined("log_format") {
		cfg.LogFormat = strings.TrimSpace(raw.LogFormat)
	}

	return cfg, nil
}

func normalizeOrigins(in []string) []string {
	out := make([]string, 0, len(in))
	for _, o := range in {
		if v := strings.TrimSpace(o); v != "" {
			out = append(out, v)
		}
	}
	return out
}
