package entities

import "fmt"

const (
	// FindingTypeStderr tags a finding that carries the checker's stderr.
	FindingTypeStderr = "stderr"
	// FindingTypeOutOfDate tags a finding for a stale dependency.
	FindingTypeOutOfDate = "Out of date"

	// NotApplicableFile is the file reported when a finding has no location.
	NotApplicableFile = "N/A"
)

// Finding is one record of the Muse analyzer response.
type Finding struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	File    string `json:"file"`
	Line    int    `json:"line"`

	// Versions of an out-of-date dependency, kept for renderers other than Muse.
	CurrentVersion string `json:"-"`
	LatestVersion  string `json:"-"`
}

// NewStderrFinding wraps the checker's stderr into a location-less finding.
func NewStderrFinding(stderr []byte) Finding {
	return Finding{
		Type:    FindingTypeStderr,
		Message: string(stderr),
		File:    NotApplicableFile,
		Line:    0,
	}
}

// NewOutOfDateFinding reports a stale dependency declared in manifest at line.
func NewOutOfDateFinding(dependency OutdatedDependency, manifest string, line int) Finding {
	return Finding{
		Type:    FindingTypeOutOfDate,
		Message: OutOfDateMessage(dependency),
		File:    manifest,
		Line:    line,

		CurrentVersion: dependency.Project,
		LatestVersion:  dependency.Latest,
	}
}

// OutOfDateMessage renders the two-line note shown by Muse.
func OutOfDateMessage(dependency OutdatedDependency) string {
	return fmt.Sprintf("### %s\nVersion is at %s but could be upgrade to %s",
		dependency.Name, dependency.Project, dependency.Latest)
}
