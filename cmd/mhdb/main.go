// Package main provides the mhdb binary: it converts the curated
// mental-health workbooks into Turtle documents, one per enabled module.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-mhdb"
	"github.com/goliatone/go-mhdb/internal/prompt"
	"github.com/goliatone/go-mhdb/pkg/config"
	"github.com/goliatone/go-mhdb/pkg/module"
	"github.com/goliatone/go-mhdb/pkg/orchestrator"
)

const appName = "mhdb"

func main() {
	if err := rootCmd().Execute(); err != nil {
		if !errors.Is(err, prompt.ErrAborted) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

type flags struct {
	configPath  string
	input       string
	output      string
	modules     []string
	interactive bool
	renderer    string
	version     string
	offline     bool
	verbose     bool
}

func rootCmd() *cobra.Command {
	var fl flags

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Generate mental-health ontology Turtle documents from spreadsheets",
		Long: `mhdb reads the five curated mental-health workbooks (states, disorders,
resources, assessments, sensors) and emits one RDF Turtle document per
enabled module, with provenance headers and resolved namespace prefixes.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, fl)
		},
	}

	cmd.Flags().StringVarP(&fl.configPath, "config", "c", "", "config file path (default: mhdb.yaml when present)")
	cmd.Flags().StringVar(&fl.input, "input", "", "input directory holding the workbook cache")
	cmd.Flags().StringVar(&fl.output, "output", "", "output directory for the generated documents")
	cmd.Flags().StringSliceVar(&fl.modules, "modules", nil, "modules to generate (overrides the config enable flags)")
	cmd.Flags().BoolVarP(&fl.interactive, "interactive", "i", false, "pick modules interactively")
	cmd.Flags().StringVar(&fl.renderer, "renderer", "", "output format: turtle or ntriples")
	cmd.Flags().StringVar(&fl.version, "version-string", "", "version embedded in the document headers")
	cmd.Flags().BoolVar(&fl.offline, "offline", false, "skip remote fetch, use cached workbooks only")
	cmd.Flags().BoolVarP(&fl.verbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(versionCmd())
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the default database version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", appName, config.DefaultConfig().Version)
		},
	}
}

func run(cmd *cobra.Command, fl flags) error {
	logger := newLogger(fl.verbose)
	slog.SetDefault(logger)

	cfg, err := loadConfig(fl, logger)
	if err != nil {
		return err
	}
	if err := applyFlagOverrides(cmd, fl, cfg); err != nil {
		return err
	}

	if fl.interactive {
		if err := selectModules(cmd.Context(), prompt.NewSurveyDriver(), cfg); err != nil {
			return err
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if len(cfg.EnabledModules()) == 0 {
		logger.Warn("no modules enabled, nothing to generate")
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return mhdb.Run(ctx, cfg, orchestrator.WithLogger(logger))
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func loadConfig(fl flags, logger *slog.Logger) (*config.Config, error) {
	loader := config.NewLoader(logger)
	if fl.configPath != "" {
		return loader.LoadFile(fl.configPath)
	}
	return loader.Load()
}

// applyFlagOverrides layers explicitly set flags over the loaded config.
func applyFlagOverrides(cmd *cobra.Command, fl flags, cfg *config.Config) error {
	if cmd.Flags().Changed("input") {
		cfg.Input = fl.input
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = fl.output
	}
	if cmd.Flags().Changed("renderer") {
		cfg.Renderer = fl.renderer
	}
	if cmd.Flags().Changed("version-string") {
		cfg.Version = fl.version
	}
	if fl.offline {
		cfg.Offline = true
	}
	if cmd.Flags().Changed("modules") {
		for _, name := range module.Names() {
			cfg.SetEnabled(name, false)
		}
		for _, raw := range fl.modules {
			name, err := module.Parse(raw)
			if err != nil {
				return err
			}
			cfg.SetEnabled(name, true)
		}
	}
	return nil
}

// selectModules replaces the config enable flags with an interactive pick,
// defaulting to whatever the config already enables.
func selectModules(ctx context.Context, driver prompt.Driver, cfg *config.Config) error {
	options := make([]string, 0, len(module.Names()))
	for _, name := range module.Names() {
		options = append(options, string(name))
	}
	defaults := make([]string, 0, len(options))
	for _, name := range cfg.EnabledModules() {
		defaults = append(defaults, string(name))
	}

	picked, err := driver.MultiSelect(ctx, prompt.MultiSelectConfig{
		Message:  "Modules to generate:",
		Options:  options,
		Defaults: defaults,
		Help:     "Each module emits one Turtle document.",
	})
	if err != nil {
		return err
	}

	for _, name := range module.Names() {
		cfg.SetEnabled(name, false)
	}
	for _, raw := range picked {
		name, err := module.Parse(raw)
		if err != nil {
			return err
		}
		cfg.SetEnabled(name, true)
	}
	return nil
}
