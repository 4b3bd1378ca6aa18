package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/owenrumney/go-sarif/v2/sarif"
	"golang.org/x/mod/semver"

	"github.com/doddi/doddi-rust-analyzer/internal/domain/entities"
	"github.com/doddi/doddi-rust-analyzer/internal/domain/repositories"
)

const (
	toolName           = "cargo-outdated"
	toolInformationURI = "https://github.com/kbknapp/cargo-outdated"

	ruleOutOfDate = "out-of-date"
	ruleStderr    = "checker-stderr"

	levelError   = "error"
	levelWarning = "warning"
	levelNote    = "note"
)

// SarifReportRepository writes findings as a SARIF 2.1.0 log.
type SarifReportRepository struct{}

// NewSarifReportRepository creates a new SarifReportRepository.
func NewSarifReportRepository() repositories.ReportRepository {
	return &SarifReportRepository{}
}

func (r *SarifReportRepository) Format() string { return entities.OutputFormatSarif }

// Write renders one run with a rule per finding type. Finding lines are
// 0-based and 0 means unknown, so only positive lines produce a region.
func (r *SarifReportRepository) Write(w io.Writer, findings []entities.Finding) error {
	report, err := sarif.New(sarif.Version210)
	if err != nil {
		return fmt.Errorf("failed to create SARIF report: %w", err)
	}

	run := sarif.NewRunWithInformationURI(toolName, toolInformationURI)
	for _, finding := range findings {
		ruleID, description := ruleFor(finding)
		rule := run.AddRule(ruleID).WithDescription(description)

		result := sarif.NewRuleResult(rule.ID).
			WithMessage(sarif.NewTextMessage(finding.Message)).
			WithLevel(levelFor(finding))

		if finding.File != entities.NotApplicableFile {
			physical := sarif.NewPhysicalLocation().
				WithArtifactLocation(sarif.NewArtifactLocation().WithUri(finding.File))
			if finding.Line > 0 {
				physical = physical.WithRegion(sarif.NewRegion().WithStartLine(finding.Line + 1))
			}
			result = result.WithLocations([]*sarif.Location{
				sarif.NewLocation().WithPhysicalLocation(physical),
			})
		}

		run.AddResult(result)
	}
	report.AddRun(run)

	return report.PrettyWrite(w)
}

func ruleFor(finding entities.Finding) (string, string) {
	if finding.Type == entities.FindingTypeStderr {
		return ruleStderr, "The dependency checker reported an error"
	}
	return ruleOutOfDate, "A newer version of the dependency is available"
}

// levelFor maps a finding to a SARIF level: checker errors are errors, a
// breaking version bump is a warning and anything else is a note.
func levelFor(finding entities.Finding) string {
	if finding.Type == entities.FindingTypeStderr {
		return levelError
	}

	return upgradeLevel(finding.CurrentVersion, finding.LatestVersion)
}

// upgradeLevel compares the breaking components of two cargo versions.
func upgradeLevel(current, latest string) string {
	currentBreaking := breakingComponent(current)
	latestBreaking := breakingComponent(latest)
	if currentBreaking == "" || latestBreaking == "" {
		return levelNote
	}
	if semver.Compare(latestBreaking, currentBreaking) > 0 {
		return levelWarning
	}
	return levelNote
}

// breakingComponent truncates a version after its first non-zero component,
// the part cargo treats as incompatible when it changes: 1.2.3 -> v1,
// 0.2.3 -> v0.2, 0.0.3 -> v0.0.3. Unparseable versions yield "".
func breakingComponent(version string) string {
	canonical := semver.Canonical("v" + version)
	if canonical == "" {
		return ""
	}
	if major := semver.Major(canonical); major != "v0" {
		return major
	}
	if majorMinor := semver.MajorMinor(canonical); majorMinor != "v0.0" {
		return majorMinor
	}
	return strings.TrimSuffix(canonical, semver.Prerelease(canonical))
}
