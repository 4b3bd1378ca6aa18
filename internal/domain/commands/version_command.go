package commands

import "github.com/doddi/doddi-rust-analyzer/internal/domain/entities"

// Version is the interface for the version command.
type Version interface {
	Execute() string
}

// VersionCommand reports the analyzer protocol version.
type VersionCommand struct{}

// NewVersionCommand creates a new VersionCommand.
func NewVersionCommand() *VersionCommand {
	return &VersionCommand{}
}

// Execute returns the protocol version understood by Muse.
func (it *VersionCommand) Execute() string {
	return entities.AnalyzerVersion
}
