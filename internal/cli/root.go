// SPDX-License-Identifier: MIT
// Package cli implements the lvmat command tree on top of cobra.
package cli

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmatrix/internal/config"
	"github.com/katalvlaran/lvmatrix/internal/logging"
)

// RootOptions holds global flags and the state resolved from them before any
// subcommand runs.
type RootOptions struct {
	ConfigFile string
	LogLevel   string
	LogFormat  string
	Format     string // "text" | "json" | "yaml"
	Precision  int

	Config config.Config
	Log    logging.Logger
}

// NewRootCommand creates the root command for the lvmat CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "lvmat",
		Short: "lvmat - dense real matrix calculator",
		Long: `Evaluate dense real-valued matrix operations from the command line.

Matrices are YAML flow literals such as "[[1,2],[3,4]]", or @path to a YAML
file holding either a bare list of rows or a "matrix:" key. Use @- for stdin.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.ConfigFile, "config", "", "config file (default: lvmat.yaml in the user config dir or cwd)")
	pf.StringVar(&opts.LogLevel, "log-level", "warn", "log level (debug|info|warn|error)")
	pf.StringVar(&opts.LogFormat, "log-format", "auto", "log format (auto|console|json)")
	pf.StringVarP(&opts.Format, "format", "o", config.FormatText, "output format (text|json|yaml)")
	pf.IntVarP(&opts.Precision, "precision", "p", -1, "max decimals in output, -1 for shortest round-trip form")

	for _, u := range unaryCommands {
		cmd.AddCommand(newUnaryCommand(opts, u))
	}
	for _, b := range binaryCommands {
		cmd.AddCommand(newBinaryCommand(opts, b))
	}
	cmd.AddCommand(NewScaleCommand(opts))
	cmd.AddCommand(NewBatchCommand(opts))

	return cmd
}

// resolve loads the configuration and builds the logger.
func (o *RootOptions) resolve(cmd *cobra.Command) error {
	cfg, err := config.Load(cmd.Flags(), o.ConfigFile)
	if err != nil {
		return WrapExitError(ExitCommandError, "configuration", err)
	}
	log, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return WrapExitError(ExitCommandError, "configuration", err)
	}
	o.Config = cfg
	o.Log = log
	log.Debug("configuration loaded",
		logging.String("format", cfg.Output.Format),
		logging.Int("precision", cfg.Output.Precision),
		logging.Int("workers", cfg.Batch.Workers))

	return nil
}

// formatter returns the output formatter for the resolved configuration.
func (o *RootOptions) formatter(cmd *cobra.Command) *Formatter {
	return &Formatter{
		Format:    o.Config.Output.Format,
		Precision: o.Config.Output.Precision,
		Writer:    cmd.OutOrStdout(),
	}
}

// logger returns the resolved logger, or a no-op one when a command runs
// without its root (unit tests).
func (o *RootOptions) logger() logging.Logger {
	if o.Log == nil {
		return logging.Nop()
	}
	return o.Log
}

func defaultWorkers() int { return runtime.NumCPU() }
