// Package cmd provides the root command and CLI setup for co.
package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/shunnNet/co/internal/adapter"
	"github.com/shunnNet/co/internal/config"
	"github.com/shunnNet/co/internal/controller"
	"github.com/shunnNet/co/internal/domain"
	"github.com/shunnNet/co/internal/domain/directives"
	"github.com/shunnNet/co/internal/logging"
	m "github.com/shunnNet/co/internal/model"
)

const (
	// requiresGeneratorAnnotation marks commands that call the text generator.
	requiresGeneratorAnnotation = "co/generator"
	// liveViewAnnotation marks commands that may take over the terminal.
	liveViewAnnotation = "co/live"
)

var workflow domain.Workflow
var ui controller.UI

var configPathFlag string
var logLevelFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

const rootLongDescription = `co generates and patches files with a language model, driven by
directives written in your own sources.

A source opts in by importing a file inside a "// co" block, by linking it
inside a "<!-- co -->" block in markdown, or by importing a path matched by
the configured targets. Existing targets are patched region by region
between "co-target" markers; missing targets are written in full.

Configuration is read from co.yaml (or $CO_CONFIG_PATH).`

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "co",
		Short:        "Directive-driven file generation",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if workflow != nil {
				return nil
			}

			wf, err := setupWorkflow(cmd)
			if err != nil {
				return err
			}

			workflow = wf

			return nil
		},
	}
	cmd.PersistentFlags().StringVarP(&configPathFlag, "config", "c", "", "path to co.yaml (default $"+config.EnvConfigPath+" or ./co.yaml)")
	cmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "info", "log level: debug, info, warn or error")

	return cmd
}

func setupWorkflow(cmd *cobra.Command) (domain.Workflow, error) {
	cfg, err := config.Load(configPathFlag)
	if err != nil {
		return nil, err
	}

	if cmd.Annotations[requiresGeneratorAnnotation] == "true" {
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	}

	if ui == nil {
		ui = controller.NewUI(cmd, cmd.Annotations[liveViewAnnotation] == "true")
	}

	logger, err := newLogger(cmd, cfg, ui, logLevelFlag)
	if err != nil {
		return nil, err
	}

	return newWorkflow(cfg, logger, ui), nil
}

// newLogger writes to stderr unless ui draws over the terminal. Then the
// log goes to cfg.Log, or nowhere when no log file is configured.
func newLogger(cmd *cobra.Command, cfg *config.Config, ui controller.UI, level string) (*log.Logger, error) {
	w := cmd.ErrOrStderr()

	if controller.OwnsTerminal(ui) {
		w = io.Discard

		if cfg.Log != "" {
			f, err := logging.OpenFile(cfg.Log)
			if err != nil {
				return nil, err
			}

			w = f
		}
	}

	return logging.New(w, level)
}

// newWorkflow wires the local adapters and the generation graph for cfg.
func newWorkflow(cfg *config.Config, logger *log.Logger, ui controller.UI) domain.Workflow {
	fs := adapter.NewLocalSourceFSAdapter()
	base := m.Path(cfg.BaseDir)

	paths := directives.NewPathResolver(fs, cfg.Alias)
	resolverOpts := directives.Options{
		Paths:   paths,
		Matcher: directives.NewGlobMatcher(paths, base, cfg.Targets),
	}
	dispatcher := directives.NewDispatcher(
		directives.NewScriptResolver(resolverOpts),
		directives.NewMarkdownResolver(resolverOpts),
	)

	generator := adapter.NewOpenAIGenerator(adapter.GeneratorOptions{
		APIKey:      cfg.Generator.APIKey,
		Model:       cfg.Generator.Model,
		Temperature: cfg.Generator.Temperature,
		BaseURL:     cfg.Generator.BaseURL,
	})
	store := adapter.NewResultStore(m.Path(cfg.Cache))

	graph := domain.NewGraph(
		fs,
		dispatcher,
		domain.NewGenerationResolver(fs, generator, cfg.Concurrency),
		store,
		logger,
		domain.GraphOptions{BaseDir: base, Concurrency: cfg.Concurrency},
	)

	// co's own cache and log must not trigger watch passes.
	excludes := append([]string{}, cfg.Excludes...)
	for _, own := range []string{cfg.Cache, cfg.Log} {
		if own != "" {
			excludes = append(excludes, filepath.ToSlash(own))
		}
	}

	return domain.NewWorkflow(graph, adapter.NewLocalWatcher(), paths, store, ui, logger, domain.WorkflowOptions{
		BaseDir:  base,
		Includes: cfg.Includes,
		Excludes: excludes,
		Debounce: cfg.Watch.Debounce,
	})
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
