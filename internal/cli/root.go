// Package cli wires the ratio pipeline into a cobra command tree.
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ib-77/ratiorail/internal/config"
)

// RootOptions holds global flags and the state built from them before any
// subcommand runs.
type RootOptions struct {
	ConfigPath string
	LogLevel   string
	Verbose    bool

	Config config.Config
	Logger *zap.Logger
}

// NewRootCommand creates the root command for the ratiorail CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{Logger: zap.NewNop()}

	cmd := &cobra.Command{
		Use:           "ratiorail",
		Short:         "ratiorail - fallible ratio pipeline",
		Long:          "Parse, divide, describe and plan colon-separated ratios on a success/failure railway.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return WrapExitError(ExitCommandError, "load config", err)
			}
			if opts.LogLevel != "" {
				cfg.Log.Level = opts.LogLevel
			}
			if opts.Verbose {
				cfg.Log.Level = "debug"
			}
			logger, err := NewLogger(cfg.Log, cmd.ErrOrStderr())
			if err != nil {
				return WrapExitError(ExitCommandError, "build logger", err)
			}
			opts.Config = cfg
			opts.Logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = opts.Logger.Sync()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to a YAML config file")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level override (debug|info|warn|error)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output (debug logging)")

	cmd.AddCommand(NewParseCommand(opts))
	cmd.AddCommand(NewDivideCommand(opts))
	cmd.AddCommand(NewStatusCommand(opts))
	cmd.AddCommand(NewNormalizeCommand(opts))
	cmd.AddCommand(NewPlanCommand(opts))

	return cmd
}
