package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(strings.TrimSpace(content)), 0o600))

	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvConfigPath, "")
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvOpenAIKey, "")
}

func TestLoad(t *testing.T) {
	t.Run("parses yaml over defaults", func(t *testing.T) {
		clearEnv(t)

		dir := t.TempDir()
		path := writeConfig(t, dir, `
baseDir: web
includes:
  - "src/**/*.js"
targets:
  - "src/generated/**"
alias:
  "@/": "src/"
  "~abs": "/opt/shared"
generator:
  model: gpt-4o
  temperature: 0.2
  apiKey: sk-file
watch:
  debounce: 1s
concurrency: 8
`)

		cfg, err := Load(path)
		require.NoError(t, err)

		base := filepath.Join(dir, "web")
		assert.Equal(t, path, cfg.Path)
		assert.Equal(t, base, cfg.BaseDir)
		assert.Equal(t, []string{"src/**/*.js"}, cfg.Includes)
		assert.Equal(t, Default().Excludes, cfg.Excludes)
		assert.Equal(t, []string{"src/generated/**"}, cfg.Targets)
		assert.Equal(t, filepath.Join(base, "src")+"/", cfg.Alias["@/"])
		assert.Equal(t, "/opt/shared", cfg.Alias["~abs"])
		assert.Equal(t, "gpt-4o", cfg.Generator.Model)
		assert.InDelta(t, 0.2, cfg.Generator.Temperature, 0.0001)
		assert.Equal(t, "sk-file", cfg.Generator.APIKey)
		assert.Equal(t, time.Second, cfg.Watch.Debounce)
		assert.Equal(t, 8, cfg.Concurrency)
		assert.Equal(t, filepath.Join(base, ".co", "cache.json"), cfg.Cache)
		assert.Equal(t, filepath.Join(base, ".co", "co.log"), cfg.Log)
		require.NoError(t, cfg.Validate())
	})

	t.Run("empty cache disables persistence", func(t *testing.T) {
		clearEnv(t)

		path := writeConfig(t, t.TempDir(), `cache: ""`)

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Empty(t, cfg.Cache)
	})

	t.Run("absolute log path is kept", func(t *testing.T) {
		clearEnv(t)

		path := writeConfig(t, t.TempDir(), `log: /var/log/co.log`)

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "/var/log/co.log", cfg.Log)
	})

	t.Run("env config path is used when no flag is given", func(t *testing.T) {
		clearEnv(t)

		dir := t.TempDir()
		path := writeConfig(t, dir, `concurrency: 2`)
		t.Setenv(EnvConfigPath, path)

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, 2, cfg.Concurrency)
		assert.Equal(t, dir, cfg.BaseDir)
	})

	t.Run("missing explicit file is an error", func(t *testing.T) {
		clearEnv(t)

		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("missing implicit file yields defaults", func(t *testing.T) {
		clearEnv(t)

		dir := t.TempDir()
		t.Chdir(dir)

		cfg, err := Load("")
		require.NoError(t, err)

		wd, err := os.Getwd()
		require.NoError(t, err)

		assert.Equal(t, wd, cfg.BaseDir)
		assert.Empty(t, cfg.Path)
		assert.Equal(t, []string{"**/*"}, cfg.Includes)
		assert.Equal(t, "gpt-3.5-turbo", cfg.Generator.Model)
		assert.Equal(t, 300*time.Millisecond, cfg.Watch.Debounce)
		assert.Equal(t, 4, cfg.Concurrency)
	})

	t.Run("invalid yaml is an error", func(t *testing.T) {
		clearEnv(t)

		path := writeConfig(t, t.TempDir(), "includes: [")

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse")
	})

	t.Run("negative concurrency is rejected", func(t *testing.T) {
		clearEnv(t)

		path := writeConfig(t, t.TempDir(), "concurrency: -1")

		_, err := Load(path)
		require.Error(t, err)
	})
}

func TestAPIKeyFallback(t *testing.T) {
	t.Run("co key wins over openai key", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvAPIKey, "sk-co")
		t.Setenv(EnvOpenAIKey, "sk-openai")

		cfg, err := Load(writeConfig(t, t.TempDir(), "concurrency: 1"))
		require.NoError(t, err)
		assert.Equal(t, "sk-co", cfg.Generator.APIKey)
	})

	t.Run("openai key is the last resort", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvOpenAIKey, "sk-openai")

		cfg, err := Load(writeConfig(t, t.TempDir(), "concurrency: 1"))
		require.NoError(t, err)
		assert.Equal(t, "sk-openai", cfg.Generator.APIKey)
	})

	t.Run("validate requires a key", func(t *testing.T) {
		clearEnv(t)

		cfg, err := Load(writeConfig(t, t.TempDir(), "concurrency: 1"))
		require.NoError(t, err)
		require.ErrorIs(t, cfg.Validate(), ErrMissingAPIKey)
		require.NoError(t, cfg.ValidateLayout())
	})
}
