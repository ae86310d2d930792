// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/H0llyW00dzZ/hlx/src/clean"
	"github.com/H0llyW00dzZ/hlx/src/cli"
	"github.com/H0llyW00dzZ/hlx/src/config"
	"github.com/H0llyW00dzZ/hlx/src/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const version = "1.3.3.7-testing"

// run executes the root command with args and returns stdout and the console
// log output.
func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv(config.EnvConfigFile, "")
	t.Setenv(config.EnvLogLevel, "")

	var out, console bytes.Buffer
	registry := logger.NewRegistry(
		logger.WithStderr(&console),
		logger.WithTerminalDetector(func(io.Writer) bool { return false }),
	)
	t.Cleanup(func() { _ = registry.Close() })

	cmd := cli.NewRootCommand(version, registry)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err = cmd.ExecuteContext(context.Background())
	return out.String(), console.String(), err
}

func mkdir(t *testing.T, parts ...string) string {
	t.Helper()

	dir := filepath.Join(parts...)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	return dir
}

func TestClean(t *testing.T) {
	dir := t.TempDir()
	build := mkdir(t, dir, ".hlx", "build")

	_, console, err := run(t, "clean", "--dir", dir, "--log-file", "-")
	require.NoError(t, err)

	assert.Equal(t, "removed "+filepath.Join(".hlx", "build")+"\n", console)
	assert.NoDirExists(t, build)
}

func TestCleanDryRun(t *testing.T) {
	dir := t.TempDir()
	build := mkdir(t, dir, ".hlx", "build")

	stdout, console, err := run(t, "clean", "-C", dir, "--dry-run", "--log-file", "-")
	require.NoError(t, err)

	assert.Contains(t, stdout, "will be removed")
	assert.Contains(t, stdout, "absent")
	assert.Empty(t, console)
	assert.DirExists(t, build)
}

func TestCleanWithConfigFile(t *testing.T) {
	dir := t.TempDir()
	cache := mkdir(t, t.TempDir(), "shared-cache")
	logFile := filepath.Join(dir, "logs", "cli.jsonl")

	cfgPath := filepath.Join(dir, "hlx.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(
		"logging:\n  logFile:\n    - \"-\"\n    - "+logFile+"\nclean:\n  cacheDir: "+cache+"\n",
	), 0o644))

	_, console, err := run(t, "--config", cfgPath, "clean", "--dir", dir)
	require.NoError(t, err)

	assert.Equal(t, "removed "+cache+"\n", console)
	assert.NoDirExists(t, cache)

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"removed `)
}

func TestCleanFlagsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	mkdir(t, dir, ".hlx", "build")

	cfgPath := filepath.Join(dir, "hlx.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{"logging":{"level":"info","logFile":"-"}}`), 0o644))

	_, console, err := run(t, "--config", cfgPath, "--log-level", "error", "clean", "--dir", dir)
	require.NoError(t, err)

	assert.Empty(t, console, "info entries are below the error level")
	assert.NoDirExists(t, filepath.Join(dir, ".hlx", "build"))
}

func TestCleanRefusesWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	keep := filepath.Join(dir, "hlx.yaml")
	require.NoError(t, os.WriteFile(keep, nil, 0o644))

	_, console, err := run(t, "clean", "--dir", dir, "--target-dir", ".", "--log-file", "-")
	require.NoError(t, err)

	assert.Equal(t, "error: unable to remove .: "+clean.ErrWorkingDir.Error()+"\n", console)
	assert.FileExists(t, keep)
}

func TestCleanErrors(t *testing.T) {
	t.Run("InvalidConfig", func(t *testing.T) {
		cfgPath := filepath.Join(t.TempDir(), "hlx.json")
		require.NoError(t, os.WriteFile(cfgPath, []byte(`{"clean":{"cacheDir":42}}`), 0o644))

		_, _, err := run(t, "--config", cfgPath, "clean")

		var verr *config.ValidationError
		assert.True(t, errors.As(err, &verr), "expected a validation error, got %v", err)
	})

	t.Run("UnexpectedArgument", func(t *testing.T) {
		_, _, err := run(t, "clean", "extra")
		assert.Error(t, err)
	})
}

func TestVersion(t *testing.T) {
	stdout, _, err := run(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, stdout, version)
}
