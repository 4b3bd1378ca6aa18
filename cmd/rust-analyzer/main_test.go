//go:build unit

package main //nolint:testpackage // tests unexported functions

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doddi/doddi-rust-analyzer/internal/domain/entities"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := buildRootCommand(injectAppContext())
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

// enterProject moves into an empty directory with no config file given.
func enterProject(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("HOME", t.TempDir())
	t.Setenv(entities.ConfigEnvVar, "")
	t.Chdir(dir)
	return dir
}

// writeFile writes content to name under dir and returns the path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const brokenConfig = "checker: [oops\n"

func TestRootCommandArguments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{name: "no arguments", args: []string{}},
		{name: "two arguments", args: []string{".", "abc123"}},
		{name: "four arguments", args: []string{".", "abc123", "run", "extra"}},
	}

	for _, tt := range tests {
		t.Run("should reject "+tt.name, func(t *testing.T) {
			t.Parallel()

			// when
			out, err := execute(t, tt.args...)

			// then
			require.Error(t, err)
			assert.Contains(t, err.Error(), "accepts 3 arg(s)")
			assert.Empty(t, out)
		})
	}

	t.Run("should reject an unknown command keyword", func(t *testing.T) {
		t.Parallel()

		// when
		out, err := execute(t, ".", "abc123", "lint")

		// then
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrUnknownCommand)
		assert.Empty(t, out)
	})

	t.Run("should print the version", func(t *testing.T) {
		t.Parallel()

		// when
		out, err := execute(t, "/code", "abc123", "version")

		// then
		require.NoError(t, err)
		assert.Equal(t, "1\n", out)
	})
}

func TestRootCommandArgumentsWithBrokenConfig(t *testing.T) {
	t.Run("should reject the argument count before reading any config", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Chdir()

		// given
		dir := enterProject(t)
		writeFile(t, dir, ".rust-analyzer.yaml", brokenConfig)
		t.Setenv(entities.ConfigEnvVar, writeFile(t, dir, "env.yaml", brokenConfig))

		// when
		out, err := execute(t, "--config", writeFile(t, dir, "flag.yaml", brokenConfig), dir, "applicable")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "accepts 3 arg(s)")
		assert.Empty(t, out)
	})
}

func TestRootCommandApplicable(t *testing.T) {
	t.Run("should print true when Cargo.lock is present", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Chdir()

		// given
		dir := enterProject(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "Cargo.lock"), []byte("version = 3\n"), 0o600))

		// when
		out, err := execute(t, dir, "abc123", "applicable")

		// then
		require.NoError(t, err)
		assert.Equal(t, "true\n", out)
	})

	t.Run("should print false when Cargo.lock is absent", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Chdir()

		// given
		dir := enterProject(t)

		// when
		out, err := execute(t, dir, "abc123", "applicable")

		// then
		require.NoError(t, err)
		assert.Equal(t, "false\n", out)
	})

	t.Run("should ignore broken config files in the project and home directories", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Chdir()

		// given
		dir := enterProject(t)
		home := t.TempDir()
		t.Setenv("HOME", home)
		writeFile(t, home, ".rust-analyzer.yml", brokenConfig)
		writeFile(t, dir, ".rust-analyzer.yaml", brokenConfig)
		writeFile(t, dir, filepath.Join(".config", "rust-analyzer.yaml"), brokenConfig)
		writeFile(t, dir, "Cargo.lock", "version = 3\n")

		// when
		out, err := execute(t, dir, "abc123", "applicable")

		// then
		require.NoError(t, err)
		assert.Equal(t, "true\n", out)
	})

	t.Run("should answer even when the given config file is broken", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Chdir()

		// given
		dir := enterProject(t)
		config := writeFile(t, t.TempDir(), "rust-analyzer.yaml", brokenConfig)

		// when
		out, err := execute(t, "--config", config, dir, "abc123", "applicable")

		// then
		require.NoError(t, err)
		assert.Equal(t, "false\n", out)
	})
}

func TestRootCommandRun(t *testing.T) {
	t.Run("should report checker stderr as a finding", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Chdir()

		// given
		dir := enterProject(t)
		writeFile(t, dir, "Cargo.toml", "[dependencies]\nlog = \"0.4\"\n")
		config := writeFile(t, t.TempDir(), "rust-analyzer.yaml", `
checker:
  binary: sh
  args: ["-c", "echo 'error: no such subcommand' >&2"]
`)

		// when
		out, err := execute(t, "--config", config, dir, "abc123", "run")

		// then
		require.NoError(t, err)
		assert.Equal(t, `[{"type":"stderr","message":"error: no such subcommand\n","file":"N/A","line":0}]`+"\n", out)
	})

	t.Run("should locate outdated dependencies in Cargo.toml", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Chdir()

		// given
		dir := enterProject(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "Cargo.toml"),
			[]byte("[package]\nname = \"demo\"\n\n[dependencies]\nlog = \"0.4\"\n"), 0o600))
		report := filepath.Join(dir, "report.json")
		require.NoError(t, os.WriteFile(report, []byte(
			`{"crate_name":"demo","dependencies":[{"name":"log","project":"0.4","compat":"0.4.22","latest":"0.4.22","kind":"Normal","platform":null}]}`,
		), 0o600))

		// when
		out, err := execute(t, "--config", writeCatConfig(t, dir, report), dir, "abc123", "run")

		// then
		require.NoError(t, err)
		assert.Equal(t,
			`[{"type":"Out of date","message":"### log\nVersion is at 0.4 but could be upgrade to 0.4.22","file":"Cargo.toml","line":4}]`+"\n",
			out,
		)
	})

	t.Run("should never take the checker or the format from the analyzed project", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Chdir()

		// given
		dir := enterProject(t)
		writeFile(t, dir, "Cargo.toml", "[dependencies]\nlog = \"0.4\"\n")
		marker := filepath.Join(dir, "touched")
		writeFile(t, dir, ".rust-analyzer.yaml", `
checker:
  binary: sh
  args: ["-c", "touch `+marker+`"]
output:
  format: sarif
`)
		report := writeFile(t, t.TempDir(), "report.json",
			`{"crate_name":"demo","dependencies":[{"name":"log","project":"0.4","compat":"0.4.22","latest":"0.4.22","kind":"Normal","platform":null}]}`)
		t.Setenv(entities.ConfigEnvVar, writeCatConfig(t, t.TempDir(), report))

		// when
		out, err := execute(t, dir, "abc123", "run")

		// then
		require.NoError(t, err)
		assert.Equal(t,
			`[{"type":"Out of date","message":"### log\nVersion is at 0.4 but could be upgrade to 0.4.22","file":"Cargo.toml","line":1}]`+"\n",
			out,
		)
		assert.NoFileExists(t, marker)
	})

	t.Run("should fail when Cargo.toml is missing", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Chdir()

		// given
		dir := enterProject(t)

		// when
		out, err := execute(t, dir, "abc123", "run")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unable to parse Cargo.toml packages")
		assert.Empty(t, out)
	})
}

func writeCatConfig(t *testing.T, dir, report string) string {
	t.Helper()

	path := filepath.Join(dir, "cat.yaml")
	require.NoError(t, os.WriteFile(path, []byte("checker:\n  binary: cat\n  args: [\""+report+"\"]\n"), 0o600))
	return path
}
