package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hushd/hush/internal/region"
)

// NewRegionCommand creates the region command group.
func NewRegionCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "region",
		Short: "Manage named regions",
	}
	cmd.AddCommand(newRegionAddCommand(rootOpts))
	cmd.AddCommand(newRegionRemoveCommand(rootOpts))
	cmd.AddCommand(newRegionListCommand(rootOpts))
	return cmd
}

func newRegionAddCommand(rootOpts *RootOptions) *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "add <name> <world> <x1> <y1> <z1> <x2> <y2> <z2>",
		Short: "Add a region spanning two corners",
		Long: `Add a named axis-aligned region between two opposite corners. The
corners may be given in any order; they are normalized on insert.

Example:
  hush region add spawn world 100 64 100 200 128 200 --description "spawn area"`,
		Args:          cobra.ExactArgs(8),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			coords := make([]float64, 6)
			for i, arg := range args[2:] {
				v, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return WrapExitError(ExitCommandError, fmt.Sprintf("invalid coordinate %q", arg), err)
				}
				coords[i] = v
			}
			p1 := region.Point{X: coords[0], Y: coords[1], Z: coords[2]}
			p2 := region.Point{X: coords[3], Y: coords[4], Z: coords[5]}

			eng, cleanup, err := openEngine(rootOpts)
			if err != nil {
				return err
			}
			defer cleanup()

			added, err := eng.AddRegion(region.New(args[0], args[1], p1, p2, description))
			if err != nil {
				return WrapExitError(ExitFailure, "failed to save configuration", err)
			}
			if !added {
				return NewExitError(ExitFailure, fmt.Sprintf("region %q already exists", args[0]))
			}
			return formatter.Success(fmt.Sprintf("added region %s", args[0]))
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "optional region description")
	return cmd
}

func newRegionRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a region and every rule referencing it",
		Long: `Remove the named region. Every REGION-scoped rule referencing it is
deleted in the same edit - region rules cannot outlive their region.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			eng, cleanup, err := openEngine(rootOpts)
			if err != nil {
				return err
			}
			defer cleanup()

			removed, err := eng.RemoveRegion(args[0])
			if err != nil {
				return WrapExitError(ExitFailure, "failed to save configuration", err)
			}
			if !removed {
				return NewExitError(ExitFailure, fmt.Sprintf("no region named %q", args[0]))
			}
			return formatter.Success(fmt.Sprintf("removed region %s", args[0]))
		},
	}
	return cmd
}

// regionView is the JSON shape of one region in list output.
type regionView struct {
	Name        string       `json:"name"`
	World       string       `json:"world"`
	Min         region.Point `json:"min"`
	Max         region.Point `json:"max"`
	Description string       `json:"description,omitempty"`
}

func newRegionListCommand(rootOpts *RootOptions) *cobra.Command {
	var world string

	cmd := &cobra.Command{
		Use:           "list",
		Short:         "List regions",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			eng, cleanup, err := openEngine(rootOpts)
			if err != nil {
				return err
			}
			defer cleanup()

			var list []region.Region
			if world != "" {
				list = eng.RegionsForWorld(world)
			} else {
				list = eng.Regions()
			}

			if formatter.Format == "json" {
				views := make([]regionView, 0, len(list))
				for _, r := range list {
					views = append(views, regionView{
						Name: r.Name, World: r.World, Min: r.Min, Max: r.Max, Description: r.Description,
					})
				}
				return formatter.Success(views)
			}

			if len(list) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no regions")
				return nil
			}
			for _, r := range list {
				fmt.Fprintf(cmd.OutOrStdout(), "%s [%s] (%g,%g,%g)-(%g,%g,%g)\n",
					r.Name, r.World, r.Min.X, r.Min.Y, r.Min.Z, r.Max.X, r.Max.Y, r.Max.Z)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&world, "world", "", "list regions for one world only")
	return cmd
}
