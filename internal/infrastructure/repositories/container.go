package repositories

import (
	"go.uber.org/dig"

	"github.com/doddi/doddi-rust-analyzer/internal/infrastructure/repositories/cargo"
	"github.com/doddi/doddi-rust-analyzer/internal/infrastructure/repositories/cargooutdated"
	"github.com/doddi/doddi-rust-analyzer/internal/infrastructure/repositories/report"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(cargo.NewCargoFileRepository); err != nil {
		return err
	}
	if err := container.Provide(cargooutdated.NewCargoOutdatedRepository); err != nil {
		return err
	}

	// Register report registry with all output formats
	if err := container.Provide(func() *ReportRegistry {
		reg := NewReportRegistry()
		reg.Register(report.NewMuseReportRepository())
		reg.Register(report.NewSarifReportRepository())
		return reg
	}); err != nil {
		return err
	}

	return nil
}
