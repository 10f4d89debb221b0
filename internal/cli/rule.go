package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hushd/hush/internal/catalog"
	"github.com/hushd/hush/internal/rules"
)

// ruleTargetFlags holds the scope target flags shared by the rule
// subcommands.
type ruleTargetFlags struct {
	World  string
	Region string
}

func (f *ruleTargetFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.World, "world", "", "target world (WORLD scope)")
	cmd.Flags().StringVar(&f.Region, "region", "", "target region (REGION scope)")
}

// parseRuleArgs validates the <event> <scope> positional args against the
// target flags and builds the identity key fields.
func parseRuleArgs(args []string, flags *ruleTargetFlags) (event string, scope rules.Scope, err error) {
	event = args[0]
	scope, err = rules.ParseScope(args[1])
	if err != nil {
		return "", "", err
	}
	switch scope {
	case rules.ScopeWorld:
		if flags.World == "" {
			return "", "", fmt.Errorf("scope WORLD requires --world")
		}
		if flags.Region != "" {
			return "", "", fmt.Errorf("--region is only valid with scope REGION")
		}
	case rules.ScopeRegion:
		if flags.Region == "" {
			return "", "", fmt.Errorf("scope REGION requires --region")
		}
		if flags.World != "" {
			return "", "", fmt.Errorf("--world is only valid with scope WORLD")
		}
	default:
		if flags.World != "" || flags.Region != "" {
			return "", "", fmt.Errorf("scope GLOBAL takes no --world or --region")
		}
	}
	return event, scope, nil
}

// NewRuleCommand creates the rule command group.
func NewRuleCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rule",
		Short: "Manage suppression rules",
	}
	cmd.AddCommand(newRuleAddCommand(rootOpts))
	cmd.AddCommand(newRuleRemoveCommand(rootOpts))
	cmd.AddCommand(newRuleEnableCommand(rootOpts, true))
	cmd.AddCommand(newRuleEnableCommand(rootOpts, false))
	cmd.AddCommand(newRuleListCommand(rootOpts))
	return cmd
}

func newRuleAddCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &ruleTargetFlags{}
	var disabled bool
	var manifest string

	cmd := &cobra.Command{
		Use:   "add <event> <scope>",
		Short: "Add a suppression rule (replaces an identical one)",
		Long: `Add a suppression rule for an event at scope GLOBAL, WORLD, or REGION.

Adding a rule with the same (event, scope, world, region) identity as an
existing rule replaces it. The event name is not validated - rules may
reference events the host has not announced yet. Pass --manifest to get an
advisory warning when the name is absent from a catalog manifest.

Example:
  hush rule add BlockBreakEvent GLOBAL
  hush rule add PlayerInteractEvent REGION --region spawn`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			event, scope, err := parseRuleArgs(args, flags)
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid rule", err)
			}

			if manifest != "" {
				warnUnknownEvent(formatter, manifest, event)
			}

			eng, cleanup, err := openEngine(rootOpts)
			if err != nil {
				return err
			}
			defer cleanup()

			rule := rules.NewRule(event, scope, flags.World, flags.Region)
			rule.Enabled = !disabled
			if err := eng.AddRule(rule); err != nil {
				return WrapExitError(ExitFailure, "failed to add rule", err)
			}
			return formatter.Success(fmt.Sprintf("added rule: %s", rule))
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&disabled, "disabled", false, "create the rule disabled")
	cmd.Flags().StringVar(&manifest, "manifest", "", "catalog manifest for an advisory event-name check")
	return cmd
}

func newRuleRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &ruleTargetFlags{}

	cmd := &cobra.Command{
		Use:   "remove <event> <scope>",
		Short: "Remove the rule matching the exact identity",
		Long: `Remove the rule whose (event, scope, world, region) identity matches the
given fields exactly. Removing a WORLD rule never touches a GLOBAL rule for
the same event.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			event, scope, err := parseRuleArgs(args, flags)
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid rule", err)
			}

			eng, cleanup, err := openEngine(rootOpts)
			if err != nil {
				return err
			}
			defer cleanup()

			removed, err := eng.RemoveRule(rules.NewKey(event, scope, flags.World, flags.Region))
			if err != nil {
				return WrapExitError(ExitFailure, "failed to save configuration", err)
			}
			if !removed {
				return formatter.Success("no matching rule")
			}
			return formatter.Success("rule removed")
		},
	}

	flags.register(cmd)
	return cmd
}

func newRuleEnableCommand(rootOpts *RootOptions, enable bool) *cobra.Command {
	flags := &ruleTargetFlags{}

	use, short := "enable <event> <scope>", "Enable a rule without recreating it"
	if !enable {
		use, short = "disable <event> <scope>", "Disable a rule without deleting it"
	}

	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			event, scope, err := parseRuleArgs(args, flags)
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid rule", err)
			}

			eng, cleanup, err := openEngine(rootOpts)
			if err != nil {
				return err
			}
			defer cleanup()

			found, err := eng.SetRuleEnabled(rules.NewKey(event, scope, flags.World, flags.Region), enable)
			if err != nil {
				return WrapExitError(ExitFailure, "failed to save configuration", err)
			}
			if !found {
				return NewExitError(ExitFailure, "no matching rule")
			}
			if enable {
				return formatter.Success("rule enabled")
			}
			return formatter.Success("rule disabled")
		},
	}

	flags.register(cmd)
	return cmd
}

// ruleView is the JSON shape of one rule in list output.
type ruleView struct {
	Event   string `json:"event"`
	Scope   string `json:"scope"`
	Enabled bool   `json:"enabled"`
	World   string `json:"world,omitempty"`
	Region  string `json:"region,omitempty"`
}

func newRuleListCommand(rootOpts *RootOptions) *cobra.Command {
	var event string

	cmd := &cobra.Command{
		Use:           "list",
		Short:         "List suppression rules",
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

			var list []rules.Rule
			if event != "" {
				list = eng.RulesFor(event)
			} else {
				list = eng.Rules()
			}

			if formatter.Format == "json" {
				views := make([]ruleView, 0, len(list))
				for _, r := range list {
					views = append(views, ruleView{
						Event:   r.Event,
						Scope:   string(r.Scope),
						Enabled: r.Enabled,
						World:   r.World,
						Region:  r.Region,
					})
				}
				return formatter.Success(views)
			}

			if len(list) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no rules")
				return nil
			}
			for _, r := range list {
				fmt.Fprintln(cmd.OutOrStdout(), r)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&event, "event", "", "list rules for one event only")
	return cmd
}

// warnUnknownEvent emits an advisory warning when the event name is absent
// from the catalog manifest. Advisory only: the rule is added either way,
// since the resolver treats names as opaque.
func warnUnknownEvent(formatter *OutputFormatter, manifestPath, event string) {
	cat, err := catalog.ManifestProvider{Path: manifestPath}.Discover()
	if err != nil {
		formatter.VerboseLog("warning: could not read catalog manifest: %v", err)
		return
	}
	entry, known := cat.Lookup(event)
	if !known {
		formatter.VerboseLog("warning: event %q is not in the catalog manifest", event)
		return
	}
	if !entry.Cancellable {
		formatter.VerboseLog("warning: catalog marks event %q as not cancellable", event)
	}
}
