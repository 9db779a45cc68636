package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mitosagi/NativeMessaging/manifest"
)

var unregisterCmd = &cobra.Command{
	Use:   "unregister",
	Short: "Remove the host's discovery-store record",
	Long:  "Removes the record Chrome uses to find the host.  The manifest file is left in place; unregistering an absent host is a no-op.",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}
		return e.h.UnRegister()
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether the host is registered and what its manifest says",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}

		registered, err := e.h.IsRegisteredWithChrome()
		if err != nil {
			return err
		}

		fmt.Printf("host:       %s\n", e.h.Hostname())
		fmt.Printf("manifest:   %s\n", e.h.ManifestPath())
		fmt.Printf("registered: %v\n", registered)

		m, err := manifest.Load(e.h.ManifestPath())
		if err != nil {
			fmt.Printf("manifest file: unreadable (%v)\n", err)
			return nil
		}
		fmt.Printf("executable: %s\n", m.Path)
		fmt.Printf("origins:    %s\n", strings.Join(m.AllowedOrigins, ", "))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(unregisterCmd)
	rootCmd.AddCommand(statusCmd)
}
