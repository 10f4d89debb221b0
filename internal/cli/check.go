package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hushd/hush/internal/region"
)

// checkResult is the payload of a check command.
type checkResult struct {
	Event     string `json:"event"`
	World     string `json:"world,omitempty"`
	Cancelled bool   `json:"cancelled"`
}

// NewCheckCommand creates the check command: a dry run of the resolver
// against the current configuration.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	var world string
	var at string

	cmd := &cobra.Command{
		Use:   "check <event>",
		Short: "Ask whether an event occurrence would be suppressed",
		Long: `Run the resolver for a hypothetical event occurrence. Supply --world
and --at to exercise the WORLD and REGION tiers; without them only GLOBAL
rules can match.

Example:
  hush check BlockBreakEvent --world world
  hush check PlayerInteractEvent --world world --at 150,70,150`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			var point *region.Point
			if at != "" {
				p, err := parsePoint(at)
				if err != nil {
					return WrapExitError(ExitCommandError, "invalid --at", err)
				}
				point = &p
			}

			eng, cleanup, err := openEngine(rootOpts)
			if err != nil {
				return err
			}
			defer cleanup()

			cancelled := eng.ShouldCancel(args[0], world, point)
			if formatter.Format == "json" {
				return formatter.Success(checkResult{Event: args[0], World: world, Cancelled: cancelled})
			}
			return formatter.Success(fmt.Sprintf("cancelled: %t", cancelled))
		},
	}

	cmd.Flags().StringVar(&world, "world", "", "world of the occurrence")
	cmd.Flags().StringVar(&at, "at", "", "location of the occurrence as x,y,z")
	return cmd
}

// parsePoint parses "x,y,z" into a Point.
func parsePoint(s string) (region.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return region.Point{}, fmt.Errorf("expected x,y,z, got %q", s)
	}
	coords := make([]float64, 3)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return region.Point{}, fmt.Errorf("coordinate %q: %w", part, err)
		}
		coords[i] = v
	}
	return region.Point{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}
