//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/doddi/doddi-rust-analyzer/internal/domain/entities"
)

// DeclaredPackageBuilder helps create manifest declarations with a fluent interface.
type DeclaredPackageBuilder struct {
	*testkit.BaseBuilder
	name    string
	version string
	line    int
}

// NewDeclaredPackageBuilder creates a new builder with sensible defaults.
func NewDeclaredPackageBuilder() *DeclaredPackageBuilder {
	return &DeclaredPackageBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		name:        "serde_json",
		version:     "1.0",
		line:        10,
	}
}

// WithName sets the package name.
func (b *DeclaredPackageBuilder) WithName(name string) *DeclaredPackageBuilder {
	b.name = name
	return b
}

// WithVersion sets the declared version.
func (b *DeclaredPackageBuilder) WithVersion(version string) *DeclaredPackageBuilder {
	b.version = version
	return b
}

// WithLine sets the 0-based manifest line.
func (b *DeclaredPackageBuilder) WithLine(line int) *DeclaredPackageBuilder {
	b.line = line
	return b
}

// Build creates the package (satisfies testkit.Builder interface).
func (b *DeclaredPackageBuilder) Build() interface{} {
	return b.BuildDeclaredPackage()
}

// BuildDeclaredPackage creates the package with a concrete return type.
func (b *DeclaredPackageBuilder) BuildDeclaredPackage() entities.DeclaredPackage {
	return entities.DeclaredPackage{
		Name:    b.name,
		Version: b.version,
		Line:    b.line,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *DeclaredPackageBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "serde_json"
	b.version = "1.0"
	b.line = 10
	return b
}

// Clone creates a deep copy of the DeclaredPackageBuilder.
func (b *DeclaredPackageBuilder) Clone() testkit.Builder {
	return &DeclaredPackageBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:        b.name,
		version:     b.version,
		line:        b.line,
	}
}
