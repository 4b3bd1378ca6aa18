package entities

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrUnknownDependencyKind is returned when the checker reports a kind
	// outside Normal, Development and Build.
	ErrUnknownDependencyKind = errors.New("unknown dependency kind")

	// ErrMissingField is returned when a required field is absent from the checker output.
	ErrMissingField = errors.New("missing field")
)

// DependencyKind is the category cargo-outdated assigns to a dependency.
type DependencyKind string

const (
	KindNormal      DependencyKind = "Normal"
	KindDevelopment DependencyKind = "Development"
	KindBuild       DependencyKind = "Build"
)

// UnmarshalJSON accepts only the three kinds cargo-outdated emits.
func (k *DependencyKind) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("dependency kind: %w", err)
	}

	switch kind := DependencyKind(raw); kind {
	case KindNormal, KindDevelopment, KindBuild:
		*k = kind
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDependencyKind, raw)
	}
}

// OutdatedReport is the document printed by `cargo outdated --format json`.
type OutdatedReport struct {
	CrateName    string               `json:"crate_name"`
	Dependencies []OutdatedDependency `json:"dependencies"`
}

// OutdatedDependency is a single entry of the checker's dependency list.
type OutdatedDependency struct {
	Name     string         `json:"name"`    // may carry a transitive path, e.g. "serde_derive->syn"
	Project  string         `json:"project"` // version currently in use
	Compat   string         `json:"compat"`  // latest semver-compatible version
	Latest   string         `json:"latest"`  // latest version regardless of constraints
	Kind     DependencyKind `json:"kind"`
	Platform *string        `json:"platform"` // target cfg, null for all platforms
}

// UnmarshalJSON requires both top-level fields to be present.
func (r *OutdatedReport) UnmarshalJSON(data []byte) error {
	var raw struct {
		CrateName    *string               `json:"crate_name"`
		Dependencies *[]OutdatedDependency `json:"dependencies"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.CrateName == nil {
		return fmt.Errorf("%w `crate_name`", ErrMissingField)
	}
	if raw.Dependencies == nil {
		return fmt.Errorf("%w `dependencies`", ErrMissingField)
	}

	r.CrateName = *raw.CrateName
	r.Dependencies = *raw.Dependencies
	return nil
}

// UnmarshalJSON requires every field except platform to be present.
func (d *OutdatedDependency) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name     *string         `json:"name"`
		Project  *string         `json:"project"`
		Compat   *string         `json:"compat"`
		Latest   *string         `json:"latest"`
		Kind     *DependencyKind `json:"kind"`
		Platform *string         `json:"platform"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	required := []struct {
		field string
		value *string
	}{
		{"name", raw.Name},
		{"project", raw.Project},
		{"compat", raw.Compat},
		{"latest", raw.Latest},
	}
	for _, r := range required {
		if r.value == nil {
			return fmt.Errorf("%w `%s`", ErrMissingField, r.field)
		}
	}
	if raw.Kind == nil {
		return fmt.Errorf("%w `kind`", ErrMissingField)
	}

	*d = OutdatedDependency{
		Name:     *raw.Name,
		Project:  *raw.Project,
		Compat:   *raw.Compat,
		Latest:   *raw.Latest,
		Kind:     *raw.Kind,
		Platform: raw.Platform,
	}
	return nil
}

// ParseOutdatedReport decodes the checker's stdout.
func ParseOutdatedReport(data []byte) (*OutdatedReport, error) {
	var report OutdatedReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, err
	}
	return &report, nil
}
