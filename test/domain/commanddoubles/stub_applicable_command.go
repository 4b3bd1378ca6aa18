//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/doddi/doddi-rust-analyzer/internal/domain/commands"
	"github.com/doddi/doddi-rust-analyzer/internal/domain/entities"
)

// StubApplicableCommand is a stub implementation of commands.Applicable.
type StubApplicableCommand struct {
	ExecuteCallCount int
	Applicable       bool
	LastSettings     *entities.Settings
}

var _ commands.Applicable = (*StubApplicableCommand)(nil)

func (s *StubApplicableCommand) Execute(settings *entities.Settings) bool {
	s.ExecuteCallCount++
	s.LastSettings = settings
	return s.Applicable
}
