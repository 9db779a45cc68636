// nmctl manages the installation of a Chrome native messaging host: it
// writes the host manifest and maintains the discovery-store record that
// tells Chrome where to find it.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mitosagi/NativeMessaging/host"
	"github.com/mitosagi/NativeMessaging/internal/cli"
	"github.com/mitosagi/NativeMessaging/internal/logging"
)

var (
	configPath string
	systemWide bool
)

var rootCmd = &cobra.Command{
	Use:          "nmctl",
	Short:        "Manage Chrome native messaging host registrations",
	Long:         "nmctl reads a host description from a TOML file and writes the Chrome native messaging manifest and discovery-store record for it.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "host.toml", "path to the host TOML config")
	rootCmd.PersistentFlags().BoolVar(&systemWide, "system", false, "operate machine-wide instead of for the current user")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// env bundles everything a subcommand needs after setup.
type env struct {
	cfg cli.Config
	h   *host.Host
}

func setup() (*env, error) {
	cfg, err := cli.Load(configPath)
	if err != nil {
		return nil, err
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}

	opts := []host.Option{host.WithLogger(log)}
	if cfg.ManifestDir != "" {
		opts = append(opts, host.WithInstallDir(cfg.ManifestDir))
	}
	if cfg.Executable != "" {
		opts = append(opts, host.WithExecutable(cfg.Executable))
	}
	if systemWide {
		opts = append(opts, host.WithSystemInstall())
	}

	h, err := host.New(cfg.Hostname, opts...)
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, h: h}, nil
}
