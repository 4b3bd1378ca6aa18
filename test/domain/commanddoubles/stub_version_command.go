//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/doddi/doddi-rust-analyzer/internal/domain/commands"
)

// StubVersionCommand is a stub implementation of commands.Version.
type StubVersionCommand struct {
	ExecuteCallCount int
	Version          string
}

var _ commands.Version = (*StubVersionCommand)(nil)

func (s *StubVersionCommand) Execute() string {
	s.ExecuteCallCount++
	return s.Version
}
