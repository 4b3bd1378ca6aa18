package cargo

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/doddi/doddi-rust-analyzer/internal/domain/entities"
	"github.com/doddi/doddi-rust-analyzer/internal/domain/repositories"
)

const (
	dependenciesHeader = "[dependencies]"
	maxLineSize        = 1024 * 1024
)

// CargoFileRepository reads Cargo.toml and Cargo.lock from the local file system.
type CargoFileRepository struct{}

// NewCargoFileRepository creates a new CargoFileRepository.
func NewCargoFileRepository() repositories.CargoRepository {
	return &CargoFileRepository{}
}

// DeclaredPackages scans the manifest line by line. Only `name = "version"`
// lines between the [dependencies] header and the next section header are
// collected; inline tables and other multi-'=' lines are skipped.
func (r *CargoFileRepository) DeclaredPackages(manifestPath string) ([]entities.DeclaredPackage, error) {
	file, err := os.Open(manifestPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	packages, err := scanDeclaredPackages(bufio.NewScanner(file))
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", manifestPath, err)
	}
	return packages, nil
}

// PackageName decodes the manifest as TOML and returns [package].name.
func (r *CargoFileRepository) PackageName(manifestPath string) (string, error) {
	var manifest cargoManifest
	if _, err := toml.DecodeFile(manifestPath, &manifest); err != nil {
		return "", err
	}
	return manifest.Package.Name, nil
}

// HasLockfile returns true if lockfilePath can be stat'ed.
func (r *CargoFileRepository) HasLockfile(lockfilePath string) bool {
	_, err := os.Stat(lockfilePath)
	return err == nil
}

func scanDeclaredPackages(scanner *bufio.Scanner) ([]entities.DeclaredPackage, error) {
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)

	packages := make([]entities.DeclaredPackage, 0)
	lineNumber := 0
	inSection := false
	sectionClosed := false

	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")

		if !inSection {
			inSection = strings.TrimSpace(line) == dependenciesHeader
		} else if !sectionClosed {
			if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
				sectionClosed = true
			} else if pkg, ok := parseDeclaration(line, lineNumber); ok {
				packages = append(packages, pkg)
			}
		}

		lineNumber++
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return packages, nil
}

// parseDeclaration accepts a line holding exactly one '='.
func parseDeclaration(line string, lineNumber int) (entities.DeclaredPackage, bool) {
	if !strings.Contains(line, "=") {
		return entities.DeclaredPackage{}, false
	}

	parts := strings.Split(line, "=")
	if len(parts) != 2 {
		return entities.DeclaredPackage{}, false
	}

	return entities.DeclaredPackage{
		Name:    strings.TrimSpace(parts[0]),
		Version: strings.ReplaceAll(strings.TrimSpace(parts[1]), `"`, ""),
		Line:    lineNumber,
	}, true
}

type cargoManifest struct {
	Package struct {
		Name    string `toml:"name"`
		Version string `toml:"version"`
	} `toml:"package"`
}
