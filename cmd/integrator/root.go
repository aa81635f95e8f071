package main

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the entry point when the binary is called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "integrator",
	Short: "OAuth2 integrations for third-party accounts",
	Long: `integrator runs the OAuth2 authorization-code flow against third-party providers
(Google, GitHub, Slack and more) on behalf of a host application, and hands the issued
tokens to the callback configured for each integration.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors that are handled by the application.
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(newServeCmd(), newLinkCmd())
}

// Execute runs the root command and exits with a non-zero code upon failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
