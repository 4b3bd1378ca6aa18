//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/doddi/doddi-rust-analyzer/internal/domain/entities"
	"github.com/doddi/doddi-rust-analyzer/internal/domain/repositories"
)

// SpyCheckerRepository implements repositories.CheckerRepository as a configurable spy.
type SpyCheckerRepository struct {
	Output  entities.CheckerOutput
	Configs []entities.CheckerConfig
}

var _ repositories.CheckerRepository = (*SpyCheckerRepository)(nil)

func (r *SpyCheckerRepository) Outdated(
	_ context.Context, config entities.CheckerConfig,
) entities.CheckerOutput {
	r.Configs = append(r.Configs, config)
	return r.Output
}
