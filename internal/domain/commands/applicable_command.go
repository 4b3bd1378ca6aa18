package commands

import (
	logger "github.com/sirupsen/logrus"

	"github.com/doddi/doddi-rust-analyzer/internal/domain/entities"
	"github.com/doddi/doddi-rust-analyzer/internal/domain/repositories"
)

// Applicable is the interface for the applicable command.
type Applicable interface {
	Execute(settings *entities.Settings) bool
}

// ApplicableCommand decides whether the analyzer applies to the working
// directory, which is the case when a Cargo lockfile is present.
type ApplicableCommand struct {
	cargo repositories.CargoRepository
}

// NewApplicableCommand creates a new ApplicableCommand.
func NewApplicableCommand(cargo repositories.CargoRepository) *ApplicableCommand {
	return &ApplicableCommand{cargo: cargo}
}

// Execute returns true if the configured lockfile exists.
func (it *ApplicableCommand) Execute(settings *entities.Settings) bool {
	applicable := it.cargo.HasLockfile(settings.Lockfile)
	logger.Debugf("Lockfile %q present: %v", settings.Lockfile, applicable)
	return applicable
}
