package report

import (
	"encoding/json"
	"io"

	"github.com/doddi/doddi-rust-analyzer/internal/domain/entities"
	"github.com/doddi/doddi-rust-analyzer/internal/domain/repositories"
)

// MuseReportRepository writes findings as the compact JSON array Muse reads.
type MuseReportRepository struct{}

// NewMuseReportRepository creates a new MuseReportRepository.
func NewMuseReportRepository() repositories.ReportRepository {
	return &MuseReportRepository{}
}

func (r *MuseReportRepository) Format() string { return entities.OutputFormatMuse }

// Write prints the findings on a single line. An empty result is written as
// `[]`, never `null`, and markup characters in messages are left unescaped.
func (r *MuseReportRepository) Write(w io.Writer, findings []entities.Finding) error {
	if findings == nil {
		findings = []entities.Finding{}
	}

	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	return encoder.Encode(findings)
}
