//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/doddi/doddi-rust-analyzer/internal/domain/entities"
	"github.com/doddi/doddi-rust-analyzer/internal/domain/repositories"
)

// SpyCargoRepository implements repositories.CargoRepository as a configurable spy.
type SpyCargoRepository struct {
	// --- DeclaredPackages ---
	Packages        []entities.DeclaredPackage
	PackagesErr     error
	ScannedManifest []string

	// --- PackageName ---
	Name    string
	NameErr error

	// --- HasLockfile ---
	LockfilePresent  bool
	CheckedLockfiles []string
}

var _ repositories.CargoRepository = (*SpyCargoRepository)(nil)

func (r *SpyCargoRepository) DeclaredPackages(manifestPath string) ([]entities.DeclaredPackage, error) {
	r.ScannedManifest = append(r.ScannedManifest, manifestPath)
	return r.Packages, r.PackagesErr
}

func (r *SpyCargoRepository) PackageName(_ string) (string, error) {
	return r.Name, r.NameErr
}

func (r *SpyCargoRepository) HasLockfile(lockfilePath string) bool {
	r.CheckedLockfiles = append(r.CheckedLockfiles, lockfilePath)
	return r.LockfilePresent
}
