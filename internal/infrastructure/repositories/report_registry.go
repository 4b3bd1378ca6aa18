package repositories

import (
	"fmt"
	"sort"
	"strings"

	domainRepos "github.com/doddi/doddi-rust-analyzer/internal/domain/repositories"
)

// ReportRegistry manages all registered report writers.
type ReportRegistry struct {
	reports map[string]domainRepos.ReportRepository
}

// NewReportRegistry creates an empty report registry.
func NewReportRegistry() *ReportRegistry {
	return &ReportRegistry{
		reports: make(map[string]domainRepos.ReportRepository),
	}
}

// Register adds a report writer under its format.
func (r *ReportRegistry) Register(report domainRepos.ReportRepository) {
	r.reports[report.Format()] = report
}

// Get returns the report writer for the given format.
func (r *ReportRegistry) Get(format string) (domainRepos.ReportRepository, error) {
	report, ok := r.reports[format]
	if !ok {
		return nil, fmt.Errorf("unknown output format: %q (available: %s)",
			format, strings.Join(r.Formats(), ", "))
	}
	return report, nil
}

// Formats returns the sorted list of registered formats.
func (r *ReportRegistry) Formats() []string {
	formats := make([]string, 0, len(r.reports))
	for format := range r.reports {
		formats = append(formats, format)
	}
	sort.Strings(formats)
	return formats
}
