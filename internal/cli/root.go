// Package cli implements the wirekit command, which inspects the demo
// translation registry and the checkpoints written through it.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/reoring/wirekit"
	"github.com/reoring/wirekit/i18n"
	"github.com/reoring/wirekit/internal/demo"
)

// Execute runs the command with configuration from the environment.
func Execute() {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "wirekit:", err)
		os.Exit(2)
	}
	if err := NewRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries the state shared by every subcommand once flags are parsed.
type app struct {
	cfg    Config
	logger *zap.Logger
	format wirekit.Format
	reg    *wirekit.Registry
}

// NewRootCmd returns the root command; cfg provides the flag defaults.
func NewRootCmd(cfg Config) *cobra.Command {
	a := &app{cfg: cfg}

	cmd := &cobra.Command{
		Use:          "wirekit",
		Short:        "Inspect translation registries and checkpoints",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	pf.StringVar(&a.cfg.LogFormat, "log-format", cfg.LogFormat, "log encoding (console, json)")
	pf.StringVarP(&a.cfg.Format, "format", "f", cfg.Format, "text format (json, yaml)")
	pf.IntVar(&a.cfg.Indent, "indent", cfg.Indent, "JSON indentation width, 0 for compact output")
	pf.StringVar(&a.cfg.Duplicates, "duplicates", cfg.Duplicates, "duplicate rule policy (ignore, warn, reject)")
	pf.StringVar(&a.cfg.Lang, "lang", cfg.Lang, "error message language (en, ja)")

	cmd.AddCommand(schemasCmd(a), jsonSchemaCmd(a), checkpointCmd(a))
	return cmd
}

func (a *app) init(cmd *cobra.Command) error {
	i18n.SetLanguage(a.cfg.Lang)
	a.logger = newLogger(a.cfg.LogLevel, a.cfg.LogFormat, cmd.ErrOrStderr())

	f, err := wirekit.ParseFormat(a.cfg.Format)
	if err != nil {
		return err
	}
	a.format = f

	opts, err := a.cfg.registryOptions()
	if err != nil {
		return err
	}
	reg, err := demo.Registry(append(opts, wirekit.WithLogger(a.logger))...)
	if err != nil {
		return fmt.Errorf("build registry: %w", err)
	}
	a.reg = reg
	return nil
}
