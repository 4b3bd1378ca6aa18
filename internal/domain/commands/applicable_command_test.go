//go:build unit

package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/doddi/doddi-rust-analyzer/internal/domain/commands"
	"github.com/doddi/doddi-rust-analyzer/internal/domain/entities"
	doubles "github.com/doddi/doddi-rust-analyzer/test/infrastructure/repositorydoubles"
)

func TestApplicableCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should be applicable when the lockfile exists", func(t *testing.T) {
		t.Parallel()

		// given
		cargo := &doubles.SpyCargoRepository{LockfilePresent: true}
		cmd := commands.NewApplicableCommand(cargo)

		// when
		applicable := cmd.Execute(entities.DefaultSettings())

		// then
		assert.True(t, applicable)
		assert.Equal(t, []string{"Cargo.lock"}, cargo.CheckedLockfiles)
	})

	t.Run("should not be applicable without a lockfile", func(t *testing.T) {
		t.Parallel()

		// given
		cargo := &doubles.SpyCargoRepository{LockfilePresent: false}
		cmd := commands.NewApplicableCommand(cargo)

		// when
		applicable := cmd.Execute(entities.DefaultSettings())

		// then
		assert.False(t, applicable)
	})
}

func TestVersionCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should report protocol version 1", func(t *testing.T) {
		t.Parallel()

		// given
		cmd := commands.NewVersionCommand()

		// when
		version := cmd.Execute()

		// then
		assert.Equal(t, "1", version)
	})
}
