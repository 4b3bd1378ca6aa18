package internal

import (
	"fmt"

	"github.com/doddi/doddi-rust-analyzer/internal/domain/entities"
	"github.com/doddi/doddi-rust-analyzer/internal/infrastructure/repositories"
)

// AppInternal holds every controller reachable from the command line.
type AppInternal struct {
	controllers []entities.Controller
	reports     *repositories.ReportRegistry
}

// NewAppInternal creates the AppInternal from the aggregated controllers.
func NewAppInternal(
	controllers *[]entities.Controller,
	reports *repositories.ReportRegistry,
) *AppInternal {
	return &AppInternal{controllers: *controllers, reports: reports}
}

// GetControllers returns all registered controllers.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}

// OutputFormats returns the formats the run command can print.
func (it *AppInternal) OutputFormats() []string {
	return it.reports.Formats()
}

// ControllerFor returns the controller bound to the given command keyword.
func (it *AppInternal) ControllerFor(keyword string) (entities.Controller, error) {
	kind, err := entities.ParseCommandKind(keyword)
	if err != nil {
		return nil, err
	}

	for _, controller := range it.controllers {
		if controller.GetBind().Use == string(kind) {
			return controller, nil
		}
	}
	return nil, fmt.Errorf("%w %q", entities.ErrUnknownCommand, keyword)
}
