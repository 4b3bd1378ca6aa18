package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/doddi/doddi-rust-analyzer/internal/domain/commands"
	"github.com/doddi/doddi-rust-analyzer/internal/domain/entities"
	infraRepos "github.com/doddi/doddi-rust-analyzer/internal/infrastructure/repositories"
)

// RunController handles the "run" command.
type RunController struct {
	command commands.Run
	reports *infraRepos.ReportRegistry
}

// NewRunController creates a new RunController.
func NewRunController(command commands.Run, reports *infraRepos.ReportRegistry) *RunController {
	return &RunController{command: command, reports: reports}
}

// GetBind returns the command metadata for the run controller.
func (it *RunController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   string(entities.CommandRun),
		Short: "Report outdated Cargo dependencies",
		Long: `Run cargo outdated in the working directory and print every
outdated dependency as a Muse finding, located at the line of
Cargo.toml where it is declared.`,
	}
}

// Execute runs the analysis and writes the findings in the selected format.
func (it *RunController) Execute(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	// The writer is resolved first so an unknown format fails before the checker runs.
	report, err := it.reports.Get(outputFormat(cmd))
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	findings, err := it.command.Execute(ctx, settings)
	if err != nil {
		return err
	}

	return report.Write(cmd.OutOrStdout(), findings)
}
