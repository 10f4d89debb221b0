package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewDebugCommand creates the debug command, which flips the persisted
// debug flag gating per-decision resolver logging.
func NewDebugCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "debug <on|off>",
		Short:         "Toggle per-decision debug logging",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			var debug bool
			switch args[0] {
			case "on":
				debug = true
			case "off":
				debug = false
			default:
				return NewExitError(ExitCommandError, fmt.Sprintf("expected on or off, got %q", args[0]))
			}

			eng, cleanup, err := openEngine(rootOpts)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := eng.SetDebug(debug); err != nil {
				return WrapExitError(ExitFailure, "failed to save configuration", err)
			}
			return formatter.Success(fmt.Sprintf("debug %s", args[0]))
		},
	}
	return cmd
}
