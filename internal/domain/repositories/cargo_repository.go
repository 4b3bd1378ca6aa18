package repositories

import (
	"github.com/doddi/doddi-rust-analyzer/internal/domain/entities"
)

// CargoRepository gives access to the Cargo project in the working directory.
type CargoRepository interface {
	// DeclaredPackages scans the manifest's [dependencies] section and returns
	// every single-assignment declaration in file order.
	DeclaredPackages(manifestPath string) ([]entities.DeclaredPackage, error)

	// PackageName returns the [package] name declared in the manifest.
	PackageName(manifestPath string) (string, error)

	// HasLockfile returns true if the lockfile exists. It never fails.
	HasLockfile(lockfilePath string) bool
}
