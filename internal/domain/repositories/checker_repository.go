package repositories

import (
	"context"

	"github.com/doddi/doddi-rust-analyzer/internal/domain/entities"
)

// CheckerRepository runs the external dependency-staleness checker.
type CheckerRepository interface {
	// Outdated runs the checker to completion and returns both output streams
	// untouched. A launch failure is reported through the returned output, not an error.
	Outdated(ctx context.Context, config entities.CheckerConfig) entities.CheckerOutput
}
