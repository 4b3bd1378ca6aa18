package commands

import (
	"context"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/doddi/doddi-rust-analyzer/internal/domain/entities"
	"github.com/doddi/doddi-rust-analyzer/internal/domain/repositories"
)

// Run is the interface for the run command.
type Run interface {
	Execute(ctx context.Context, settings *entities.Settings) ([]entities.Finding, error)
}

// RunCommand orchestrates one analysis:
// scan the manifest -> run the checker -> map its report onto manifest lines.
type RunCommand struct {
	cargo   repositories.CargoRepository
	checker repositories.CheckerRepository
}

// NewRunCommand creates a new RunCommand with the given repositories.
func NewRunCommand(
	cargo repositories.CargoRepository,
	checker repositories.CheckerRepository,
) *RunCommand {
	return &RunCommand{
		cargo:   cargo,
		checker: checker,
	}
}

// Execute runs the analysis and returns the findings in checker order.
// A non-empty checker stderr yields a single stderr finding; an unreadable
// manifest or an unparseable checker report is returned as an error.
func (it *RunCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
) ([]entities.Finding, error) {
	packages, err := it.cargo.DeclaredPackages(settings.Manifest)
	if err != nil {
		return nil, fmt.Errorf("unable to parse %s packages: %w", settings.ManifestName(), err)
	}
	logger.Debugf("Found %d declared packages in %s", len(packages), settings.Manifest)

	logger.Debugf("Running %s %s", settings.Checker.Binary, strings.Join(settings.Checker.Args, " "))
	output := it.checker.Outdated(ctx, settings.Checker)

	if output.Failed() {
		logger.Debugf("Checker wrote %d bytes to stderr, reporting it as a finding", len(output.Stderr))
		return []entities.Finding{entities.NewStderrFinding(output.Stderr)}, nil
	}

	report, err := entities.ParseOutdatedReport(output.Stdout)
	if err != nil {
		return nil, fmt.Errorf("unable to parse %s output: %w", settings.Checker.Binary, err)
	}

	it.checkCrateName(settings.Manifest, report.CrateName)

	findings := buildFindings(report.Dependencies, packages, settings.ManifestName())
	logger.Debugf("Built %d findings", len(findings))
	return findings, nil
}

// checkCrateName warns when the checker analysed a different crate than the
// one declared in the manifest, which usually means a workspace member.
func (it *RunCommand) checkCrateName(manifestPath, crateName string) {
	name, err := it.cargo.PackageName(manifestPath)
	if err != nil {
		logger.Debugf("Could not read package name from %s: %v", manifestPath, err)
		return
	}
	if name != "" && name != crateName {
		logger.Warnf("Checker reported crate %q but %s declares %q", crateName, manifestPath, name)
	}
}

// buildFindings maps every outdated dependency to a finding, keeping the input order.
func buildFindings(
	dependencies []entities.OutdatedDependency,
	packages []entities.DeclaredPackage,
	manifest string,
) []entities.Finding {
	findings := make([]entities.Finding, 0, len(dependencies))
	for _, dependency := range dependencies {
		findings = append(findings, entities.NewOutOfDateFinding(
			dependency, manifest, findLine(dependency, packages),
		))
	}
	return findings
}

// findLine returns the line of the last declared package whose name and
// version both equal the dependency's, or 0 when none matches.
func findLine(dependency entities.OutdatedDependency, packages []entities.DeclaredPackage) int {
	line := 0
	for _, pkg := range packages {
		if pkg.Name == dependency.Name && pkg.Version == dependency.Project {
			line = pkg.Line
		}
	}
	return line
}
