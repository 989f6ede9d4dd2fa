// Package cli implements the ringtail command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/momentics/cowring/internal/config"
	"github.com/momentics/cowring/internal/logger"
)

var (
	// Version info (set by main package).
	version   = "dev"
	buildTime = "unknown"
	gitCommit = "unknown"
)

// options carries state shared by the command tree of one invocation.
type options struct {
	cfgFile  string
	logLevel string
	cfg      *config.Config
}

// NewRootCmd builds the ringtail command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "ringtail",
		Short: "ringtail - keep the last N lines of a stream",
		Long: `ringtail reads lines from files or stdin and keeps only the most
recent N of them in a fixed-capacity ring buffer.

Example usage:
  ringtail tail -n 20 app.log          # last 20 lines of app.log
  dmesg | ringtail tail -n 5           # last 5 lines of stdin
  ringtail tail a.log b.log --stats    # per-file tails plus ring stats`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "version" {
				return nil
			}

			cfg, err := config.Load(opts.cfgFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if opts.logLevel != "" {
				cfg.Logging.Level = opts.logLevel
			}
			opts.cfg = cfg

			if err := logger.Setup(logger.Config{
				Level:  cfg.Logging.Level,
				Format: cfg.Logging.Format,
				Output: cfg.Logging.Output,
				File:   cfg.Logging.File,
			}); err != nil {
				return fmt.Errorf("failed to setup logger: %w", err)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.ringtail/ringtail.yaml)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (overrides config)")

	root.AddCommand(newTailCmd(opts))
	root.AddCommand(newVersionCmd())
	return root
}

// Execute executes the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// SetVersion sets the version information.
func SetVersion(v, bt, gc string) {
	version = v
	buildTime = bt
	gitCommit = gc
}
