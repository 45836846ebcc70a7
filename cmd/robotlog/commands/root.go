// Package commands provides the CLI commands for robotlog.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"robotlog/internal/config"
	"robotlog/internal/logging"
)

var (
	// Version information set at build time
	Version   = "0.1.0"
	BuildTime = "dev"
)

type rootOptions struct {
	configPath string
	logLevel   string
	logPretty  bool

	cfg *config.Config
}

// NewRootCmd builds the robotlog command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "robotlog",
		Short: "Replay robot command logs inside a room",
		Long: `robotlog replays a log of robot commands inside a rectangular room and
prints where the robot ends up.

Run 'robotlog run <file>' to replay a session file, or 'robotlog run --prompt'
to type the room size and the log interactively.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default ~/.robotlog.yaml, ./.robotlog.yaml)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (DEBUG|INFO|WARN|ERROR)")
	cmd.PersistentFlags().BoolVar(&opts.logPretty, "log-pretty", false, "Human-readable logs on stderr")

	cmd.SetVersionTemplate(fmt.Sprintf("robotlog %s (%s)\n", Version, BuildTime))

	cmd.AddCommand(newRunCmd(opts))
	return cmd
}

// setup loads the config, lets flags override it and starts the logger.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if flags.Changed("log-pretty") {
		cfg.LogPretty = o.logPretty
	}
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}

	lc := cfg.Logging()
	lc.Output = cmd.ErrOrStderr()
	logging.Init(lc)

	o.cfg = cfg
	return nil
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
