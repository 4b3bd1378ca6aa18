package controllers

import (
	"github.com/spf13/cobra"

	"github.com/doddi/doddi-rust-analyzer/internal/domain/entities"
)

// loadSettings resolves the settings from the --config flag.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")
	return entities.LoadSettings(configPath)
}

// outputFormat returns the --format flag, or the Muse format when it was not given.
func outputFormat(cmd *cobra.Command) string {
	if format, _ := cmd.Flags().GetString("format"); format != "" {
		return format
	}
	return entities.OutputFormatMuse
}
