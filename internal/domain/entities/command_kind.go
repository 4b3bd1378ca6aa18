package entities

import (
	"errors"
	"fmt"
)

// ErrUnknownCommand is returned for a command keyword other than version, applicable or run.
var ErrUnknownCommand = errors.New("unknown command type")

// CommandKind is the closed set of analyzer commands Muse can request.
type CommandKind string

const (
	CommandVersion    CommandKind = "version"
	CommandApplicable CommandKind = "applicable"
	CommandRun        CommandKind = "run"
)

// AnalyzerVersion is the plugin protocol version reported by the version command.
const AnalyzerVersion = "1"

// CommandKinds lists every supported command in dispatch order.
func CommandKinds() []CommandKind {
	return []CommandKind{CommandVersion, CommandApplicable, CommandRun}
}

// ParseCommandKind maps a command keyword to its CommandKind.
func ParseCommandKind(keyword string) (CommandKind, error) {
	for _, kind := range CommandKinds() {
		if string(kind) == keyword {
			return kind, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownCommand, keyword)
}
