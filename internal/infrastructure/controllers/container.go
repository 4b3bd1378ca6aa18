package controllers

import (
	"go.uber.org/dig"

	"github.com/doddi/doddi-rust-analyzer/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewVersionController); err != nil {
		return err
	}
	if err := container.Provide(NewApplicableController); err != nil {
		return err
	}
	if err := container.Provide(NewRunController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	versionController *VersionController,
	applicableController *ApplicableController,
	runController *RunController,
) *[]entities.Controller {
	return &[]entities.Controller{
		versionController,
		applicableController,
		runController,
	}
}
