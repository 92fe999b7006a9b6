package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shunnNet/co/internal/config"
	"github.com/shunnNet/co/internal/controller"
	domainmocks "github.com/shunnNet/co/internal/domain/mocks"
)

func withWorkflow(t *testing.T, wf *domainmocks.MockWorkflow) {
	t.Helper()

	originalWorkflow := workflow
	workflow = wf

	t.Cleanup(func() { workflow = originalWorkflow })
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func newTestRoot(out *bytes.Buffer, sub ...*cobra.Command) *cobra.Command {
	cmd := newRootCmd()
	cmd.AddCommand(sub...)
	cmd.SetOut(out)
	cmd.SetErr(out)

	return cmd
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()

	assert.Equal(t, "co", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, rootLongDescription, cmd.Long)
	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("log-level"))
}

func TestRootCmd_SetupWorkflow(t *testing.T) {
	t.Setenv(config.EnvConfigPath, "")
	t.Setenv(config.EnvAPIKey, "")
	t.Setenv(config.EnvOpenAIKey, "")

	t.Run("list wires a real workflow without a key", func(t *testing.T) {
		dir := t.TempDir()
		writeTestFile(t, filepath.Join(dir, "co.yaml"), "cache: \"\"\n")
		writeTestFile(t, filepath.Join(dir, "src", "index.js"), "// co\nimport './a.js'\n// co-end\n")

		var out bytes.Buffer
		cmd := newTestRoot(&out, newListCmd())

		originalWorkflow, originalUI := workflow, ui
		workflow, ui = nil, controller.NewSimpleUI(cmd)
		t.Cleanup(func() { workflow, ui = originalWorkflow, originalUI })

		cmd.SetArgs([]string{"--config", filepath.Join(dir, "co.yaml"), "list"})
		require.NoError(t, cmd.Execute())

		assert.NotNil(t, workflow)
		assert.Contains(t, out.String(), filepath.Join(dir, "src", "index.js"))
		assert.Contains(t, out.String(), filepath.Join(dir, "src", "a.js"))
	})

	t.Run("run without a key fails", func(t *testing.T) {
		dir := t.TempDir()
		writeTestFile(t, filepath.Join(dir, "co.yaml"), "concurrency: 1\n")

		var out bytes.Buffer
		cmd := newTestRoot(&out, newRunCmd())

		originalWorkflow := workflow
		workflow = nil
		t.Cleanup(func() { workflow = originalWorkflow })

		cmd.SetArgs([]string{"--config", filepath.Join(dir, "co.yaml"), "run"})
		err := cmd.Execute()
		require.ErrorIs(t, err, config.ErrMissingAPIKey)
		assert.Nil(t, workflow)
	})

	t.Run("invalid log level fails", func(t *testing.T) {
		dir := t.TempDir()
		writeTestFile(t, filepath.Join(dir, "co.yaml"), "concurrency: 1\n")

		var out bytes.Buffer
		cmd := newTestRoot(&out, newListCmd())

		originalWorkflow, originalUI := workflow, ui
		workflow, ui = nil, nil
		t.Cleanup(func() { workflow, ui = originalWorkflow, originalUI })

		cmd.SetArgs([]string{"--config", filepath.Join(dir, "co.yaml"), "--log-level", "loud", "list"})
		require.Error(t, cmd.Execute())
	})
}

func TestNewLogger(t *testing.T) {
	t.Run("live view logs to the log file, not the terminal", func(t *testing.T) {
		var terminal bytes.Buffer
		cmd := newWatchCmd()
		cmd.SetOut(&terminal)
		cmd.SetErr(&terminal)

		cfg := &config.Config{Log: filepath.Join(t.TempDir(), ".co", "co.log")}

		logger, err := newLogger(cmd, cfg, controller.NewTUI(&terminal), "info")
		require.NoError(t, err)

		logger.Error("generation failed", "target", "/p/a.js")

		assert.Empty(t, terminal.String())

		data, err := os.ReadFile(cfg.Log)
		require.NoError(t, err)
		assert.Contains(t, string(data), "generation failed")
		assert.Contains(t, string(data), "target=/p/a.js")
	})

	t.Run("live view without a log file drops output", func(t *testing.T) {
		var terminal bytes.Buffer
		cmd := newWatchCmd()
		cmd.SetErr(&terminal)

		logger, err := newLogger(cmd, &config.Config{}, controller.NewTUI(&terminal), "debug")
		require.NoError(t, err)

		logger.Error("generation failed")

		assert.Empty(t, terminal.String())
	})

	t.Run("plain output logs to stderr", func(t *testing.T) {
		var stderr bytes.Buffer
		cmd := newRunCmd()
		cmd.SetErr(&stderr)

		cfg := &config.Config{Log: filepath.Join(t.TempDir(), "co.log")}

		logger, err := newLogger(cmd, cfg, controller.NewSimpleUI(cmd), "info")
		require.NoError(t, err)

		logger.Warn("rate limited")

		assert.Contains(t, stderr.String(), "rate limited")
		assert.NoFileExists(t, cfg.Log)
	})
}

func TestSetupWorkflow_PipedWatchUsesPlainOutput(t *testing.T) {
	t.Setenv(config.EnvAPIKey, "sk-test")

	dir := t.TempDir()
	path := filepath.Join(dir, "co.yaml")
	writeTestFile(t, path, "concurrency: 1\n")

	originalUI, originalConfig, originalLevel := ui, configPathFlag, logLevelFlag
	ui, configPathFlag, logLevelFlag = nil, path, "info"
	t.Cleanup(func() { ui, configPathFlag, logLevelFlag = originalUI, originalConfig, originalLevel })

	var out bytes.Buffer
	cmd := newWatchCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	wf, err := setupWorkflow(cmd)
	require.NoError(t, err)

	assert.NotNil(t, wf)
	assert.IsType(t, &controller.SimpleUI{}, ui)
	assert.False(t, controller.OwnsTerminal(ui))
}
