// Package config loads the co.yaml project configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultFileName is looked up in the working directory when no path is given.
	DefaultFileName = "co.yaml"

	// EnvConfigPath overrides the config file location.
	EnvConfigPath = "CO_CONFIG_PATH"
	// EnvAPIKey supplies the generator credential.
	EnvAPIKey = "CO_API_KEY"
	// EnvOpenAIKey is the fallback generator credential.
	EnvOpenAIKey = "OPENAI_API_KEY"

	defaultModel       = "gpt-3.5-turbo"
	defaultDebounce    = 300 * time.Millisecond
	defaultConcurrency = 4
	defaultCache       = ".co/cache.json"
	defaultLog         = ".co/co.log"
)

// ErrMissingAPIKey is returned by Validate when no credential is configured.
var ErrMissingAPIKey = errors.New("generator api key is required (set generator.apiKey, " + EnvAPIKey + " or " + EnvOpenAIKey + ")")

// GeneratorConfig holds the text generation service parameters.
type GeneratorConfig struct {
	Model       string  `yaml:"model"`
	Temperature float32 `yaml:"temperature"`
	APIKey      string  `yaml:"apiKey"`
	BaseURL     string  `yaml:"baseURL"`
}

// WatchConfig holds watch loop settings.
type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce"`
}

// Config models co.yaml. Paths are absolute after Load.
type Config struct {
	BaseDir     string            `yaml:"baseDir"`
	Includes    []string          `yaml:"includes"`
	Excludes    []string          `yaml:"excludes"`
	Targets     []string          `yaml:"targets"`
	Alias       map[string]string `yaml:"alias"`
	Generator   GeneratorConfig   `yaml:"generator"`
	Watch       WatchConfig       `yaml:"watch"`
	Concurrency int               `yaml:"concurrency"`
	Cache       string            `yaml:"cache"`

	// Log receives log output while the live watch view owns the terminal.
	// Empty drops it.
	Log string `yaml:"log"`

	// Path is the file the config was read from; empty when defaults were used.
	Path string `yaml:"-"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Includes: []string{"**/*"},
		Excludes: []string{"**/node_modules/**", "**/.vscode/**", "**/.git/**"},
		Generator: GeneratorConfig{
			Model: defaultModel,
		},
		Watch:       WatchConfig{Debounce: defaultDebounce},
		Concurrency: defaultConcurrency,
		Cache:       defaultCache,
		Log:         defaultLog,
	}
}

// Load reads the config at path. An empty path falls back to $CO_CONFIG_PATH
// and then to co.yaml in the working directory; only the implicit co.yaml
// may be missing, in which case defaults rooted at the working directory
// are returned.
func Load(path string) (*Config, error) {
	explicit := true

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}

	if path == "" {
		explicit = false
		path = DefaultFileName
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}

	cfg := Default()

	data, err := os.ReadFile(abs)

	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", abs, err)
		}

		cfg.Path = abs
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("config: read %s: %w", abs, err)
	}

	cfg.normalize(filepath.Dir(abs))
	cfg.applyEnv()

	if err := cfg.ValidateLayout(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) normalize(dir string) {
	switch {
	case c.BaseDir == "":
		c.BaseDir = dir
	case !filepath.IsAbs(c.BaseDir):
		c.BaseDir = filepath.Join(dir, c.BaseDir)
	}

	c.BaseDir = filepath.Clean(c.BaseDir)

	if c.Cache != "" && !filepath.IsAbs(c.Cache) {
		c.Cache = filepath.Join(c.BaseDir, c.Cache)
	}

	if c.Log != "" && !filepath.IsAbs(c.Log) {
		c.Log = filepath.Join(c.BaseDir, c.Log)
	}

	for prefix, replacement := range c.Alias {
		if filepath.IsAbs(replacement) {
			continue
		}

		resolved := filepath.Join(c.BaseDir, replacement)
		if strings.HasSuffix(replacement, "/") {
			resolved += "/"
		}

		c.Alias[prefix] = resolved
	}

	c.Generator.Model = strings.TrimSpace(c.Generator.Model)
	if c.Generator.Model == "" {
		c.Generator.Model = defaultModel
	}

	if len(c.Includes) == 0 {
		c.Includes = Default().Includes
	}
}

func (c *Config) applyEnv() {
	if c.Generator.APIKey != "" {
		return
	}

	if key := os.Getenv(EnvAPIKey); key != "" {
		c.Generator.APIKey = key
		return
	}

	c.Generator.APIKey = os.Getenv(EnvOpenAIKey)
}

// ValidateLayout checks the settings every command depends on.
func (c *Config) ValidateLayout() error {
	if c.Concurrency < 0 {
		return fmt.Errorf("concurrency must be >= 0, got %d", c.Concurrency)
	}

	if c.Watch.Debounce <= 0 {
		return fmt.Errorf("watch.debounce must be positive, got %s", c.Watch.Debounce)
	}

	return nil
}

// Validate additionally requires a generator credential.
func (c *Config) Validate() error {
	if err := c.ValidateLayout(); err != nil {
		return err
	}

	if c.Generator.APIKey == "" {
		return ErrMissingAPIKey
	}

	return nil
}
