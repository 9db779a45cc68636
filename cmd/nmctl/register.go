package main

import (
	"github.com/spf13/cobra"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Write the manifest and register the host with Chrome",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}

		if err := e.h.GenerateManifest(e.cfg.Description, e.cfg.Origins); err != nil {
			return err
		}
		return e.h.Register()
	},
}

var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Write (or rewrite) the host manifest without touching the registration",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup()
		if err != nil {
			return err
		}
		return e.h.GenerateManifest(e.cfg.Description, e.cfg.Origins)
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(manifestCmd)
}
