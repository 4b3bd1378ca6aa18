//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"io"

	"github.com/doddi/doddi-rust-analyzer/internal/domain/entities"
	"github.com/doddi/doddi-rust-analyzer/internal/domain/repositories"
)

// SpyReportRepository implements repositories.ReportRepository as a configurable spy.
type SpyReportRepository struct {
	FormatName string
	WriteErr   error
	Written    [][]entities.Finding
}

var _ repositories.ReportRepository = (*SpyReportRepository)(nil)

func (r *SpyReportRepository) Format() string { return r.FormatName }

func (r *SpyReportRepository) Write(_ io.Writer, findings []entities.Finding) error {
	r.Written = append(r.Written, findings)
	return r.WriteErr
}
