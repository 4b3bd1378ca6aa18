package repositories

import (
	"io"

	"github.com/doddi/doddi-rust-analyzer/internal/domain/entities"
)

// ReportRepository renders findings in one output format.
type ReportRepository interface {
	// Format returns the format identifier (e.g. "muse", "sarif").
	Format() string

	// Write serializes the findings to w.
	Write(w io.Writer, findings []entities.Finding) error
}
