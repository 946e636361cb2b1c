// Package cmd implements the CLI commands for the priseitup server.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "priseitup",
	Short: "Resale price estimation service for used electronics",
	Long: "An API-first service that extracts device attributes from free-text " +
		"descriptions, simulates marketplace data, and produces resale price " +
		"estimates with recommendations.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
