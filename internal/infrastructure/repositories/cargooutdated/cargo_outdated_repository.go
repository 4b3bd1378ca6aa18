package cargooutdated

import (
	"bytes"
	"context"
	"errors"
	"os/exec"

	logger "github.com/sirupsen/logrus"

	"github.com/doddi/doddi-rust-analyzer/internal/domain/entities"
	"github.com/doddi/doddi-rust-analyzer/internal/domain/repositories"
)

// CargoOutdatedRepository runs `cargo outdated` as a subprocess.
type CargoOutdatedRepository struct{}

// NewCargoOutdatedRepository creates a new CargoOutdatedRepository.
func NewCargoOutdatedRepository() repositories.CheckerRepository {
	return &CargoOutdatedRepository{}
}

// Outdated blocks until the checker exits and returns its stdout and stderr.
// A non-zero exit status is not an error on its own: the caller only looks at
// stderr. When the process cannot be started, the error text is returned in
// the stdout slot with an empty stderr so that it surfaces as a report parse
// failure downstream.
func (r *CargoOutdatedRepository) Outdated(
	ctx context.Context,
	config entities.CheckerConfig,
) entities.CheckerOutput {
	cmd := exec.CommandContext(ctx, config.Binary, config.Args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			logger.Warnf("Failed to launch %s: %v", config.Binary, err)
			return entities.CheckerOutput{Stdout: []byte(err.Error()), Stderr: []byte{}}
		}
		logger.Debugf("%s exited with status %d", config.Binary, exitErr.ExitCode())
	}

	return entities.CheckerOutput{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
}
