//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/doddi/doddi-rust-analyzer/internal/domain/commands"
	"github.com/doddi/doddi-rust-analyzer/internal/domain/entities"
)

// StubRunCommand is a stub implementation of commands.Run.
type StubRunCommand struct {
	ExecuteCallCount int
	Findings         []entities.Finding
	ExecuteErr       error
	LastSettings     *entities.Settings
}

var _ commands.Run = (*StubRunCommand)(nil)

func (s *StubRunCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
) ([]entities.Finding, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	return s.Findings, s.ExecuteErr
}
