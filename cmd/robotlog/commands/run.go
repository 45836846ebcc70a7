package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"robotlog/internal/input"
	"robotlog/internal/logging"
	"robotlog/internal/robot"
)

type runOptions struct {
	*rootOptions
	prompt bool
	render bool
	trace  bool
}

func newRunCmd(root *rootOptions) *cobra.Command {
	opts := &runOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Replay a command log and print the final robot state",
		Long: `Replay a command log and print the final state as "<code> <x> <y>".

The input has the room size (width height) on the first line and the command
log on the second. Codes: F forward, T backward, D turn right, E turn left.
Output codes: N north, S south, L east, O west.

Examples:
  robotlog run session.txt
  printf '5 5\nFFDF\n' | robotlog run
  robotlog run --prompt --render`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args)
		},
	}

	cmd.Flags().BoolVarP(&opts.prompt, "prompt", "p", false, "Prompt for the room size and the log")
	cmd.Flags().BoolVarP(&opts.render, "render", "r", false, "Draw the room after the run")
	cmd.Flags().BoolVar(&opts.trace, "trace", false, "Log every state transition")
	return cmd
}

func (o *runOptions) run(cmd *cobra.Command, args []string) error {
	if !cmd.Flags().Changed("render") {
		o.render = o.cfg.Render
	}
	if !cmd.Flags().Changed("trace") {
		o.trace = o.cfg.Trace
	}

	session, err := o.load(cmd, args)
	if err != nil {
		return err
	}

	var step input.StepFunc
	if o.trace {
		if logging.Logger.GetLevel() > logging.DebugLevel {
			logging.Logger = logging.Logger.Level(logging.DebugLevel)
		}
		step = traceStep
	}
	r := session.Replay(step)

	logging.Info().
		Int("commands", len(session.Commands)).
		Str("state", r.String()).
		Msg("replay finished")

	out := cmd.OutOrStdout()
	if o.render {
		return robot.Render(out, r)
	}
	_, err = fmt.Fprintln(out, r)
	return err
}

func (o *runOptions) load(cmd *cobra.Command, args []string) (*input.Session, error) {
	if len(args) == 1 && args[0] != "-" {
		return input.LoadFile(args[0])
	}
	var prompt io.Writer
	if o.prompt {
		prompt = cmd.OutOrStdout()
	}
	return input.Read(cmd.InOrStdin(), prompt)
}

func traceStep(step int, cmd robot.Command, r *robot.Robot) {
	x, y := r.Position()
	logging.Debug().
		Int("step", step).
		Str("command", cmd.String()).
		Str("orientation", r.Orientation().String()).
		Int("x", x).
		Int("y", y).
		Msg("step")
}
