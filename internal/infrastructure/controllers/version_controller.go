package controllers

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doddi/doddi-rust-analyzer/internal/domain/commands"
	"github.com/doddi/doddi-rust-analyzer/internal/domain/entities"
)

// VersionController handles the "version" command.
type VersionController struct {
	command commands.Version
}

// NewVersionController creates a new VersionController.
func NewVersionController(command commands.Version) *VersionController {
	return &VersionController{command: command}
}

// GetBind returns the command metadata for the version controller.
func (it *VersionController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   string(entities.CommandVersion),
		Short: "Print the analyzer protocol version",
	}
}

// Execute prints the version.
func (it *VersionController) Execute(cmd *cobra.Command, _ []string) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), it.command.Execute())
	return err
}
