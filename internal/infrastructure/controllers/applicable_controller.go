package controllers

import (
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/doddi/doddi-rust-analyzer/internal/domain/commands"
	"github.com/doddi/doddi-rust-analyzer/internal/domain/entities"
)

// ApplicableController handles the "applicable" command.
type ApplicableController struct {
	command commands.Applicable
}

// NewApplicableController creates a new ApplicableController.
func NewApplicableController(command commands.Applicable) *ApplicableController {
	return &ApplicableController{command: command}
}

// GetBind returns the command metadata for the applicable controller.
func (it *ApplicableController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   string(entities.CommandApplicable),
		Short: "Print whether the analyzer applies to the working directory",
		Long: `Print "true" when a Cargo lockfile is present in the working
directory and "false" otherwise.`,
	}
}

// Execute prints true or false. A settings file that cannot be loaded falls
// back to the defaults: the answer is always printed.
func (it *ApplicableController) Execute(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Warnf("Ignoring settings for applicable, using defaults: %v", err)
		settings = entities.DefaultSettings()
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), it.command.Execute(settings))
	return err
}
