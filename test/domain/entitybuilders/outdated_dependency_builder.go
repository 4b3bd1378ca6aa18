//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/doddi/doddi-rust-analyzer/internal/domain/entities"
)

// OutdatedDependencyBuilder helps create checker dependencies with a fluent interface.
type OutdatedDependencyBuilder struct {
	*testkit.BaseBuilder
	name    string
	project string
	compat  string
	latest  string
	kind    entities.DependencyKind
}

// NewOutdatedDependencyBuilder creates a new builder with sensible defaults.
func NewOutdatedDependencyBuilder() *OutdatedDependencyBuilder {
	return &OutdatedDependencyBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		name:        "serde_json",
		project:     "1.0",
		compat:      "1.0.140",
		latest:      "1.0.140",
		kind:        entities.KindNormal,
	}
}

// WithName sets the dependency name.
func (b *OutdatedDependencyBuilder) WithName(name string) *OutdatedDependencyBuilder {
	b.name = name
	return b
}

// WithProject sets the version currently in use.
func (b *OutdatedDependencyBuilder) WithProject(version string) *OutdatedDependencyBuilder {
	b.project = version
	return b
}

// WithCompat sets the latest compatible version.
func (b *OutdatedDependencyBuilder) WithCompat(version string) *OutdatedDependencyBuilder {
	b.compat = version
	return b
}

// WithLatest sets the latest version.
func (b *OutdatedDependencyBuilder) WithLatest(version string) *OutdatedDependencyBuilder {
	b.latest = version
	return b
}

// WithKind sets the dependency kind.
func (b *OutdatedDependencyBuilder) WithKind(kind entities.DependencyKind) *OutdatedDependencyBuilder {
	b.kind = kind
	return b
}

// Build creates the dependency (satisfies testkit.Builder interface).
func (b *OutdatedDependencyBuilder) Build() interface{} {
	return b.BuildOutdatedDependency()
}

// BuildOutdatedDependency creates the dependency with a concrete return type.
func (b *OutdatedDependencyBuilder) BuildOutdatedDependency() entities.OutdatedDependency {
	return entities.OutdatedDependency{
		Name:    b.name,
		Project: b.project,
		Compat:  b.compat,
		Latest:  b.latest,
		Kind:    b.kind,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *OutdatedDependencyBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "serde_json"
	b.project = "1.0"
	b.compat = "1.0.140"
	b.latest = "1.0.140"
	b.kind = entities.KindNormal
	return b
}

// Clone creates a deep copy of the OutdatedDependencyBuilder.
func (b *OutdatedDependencyBuilder) Clone() testkit.Builder {
	return &OutdatedDependencyBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:        b.name,
		project:     b.project,
		compat:      b.compat,
		latest:      b.latest,
		kind:        b.kind,
	}
}
