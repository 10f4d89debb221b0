package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hushd/hush/internal/catalog"
	"github.com/hushd/hush/internal/config"
)

// NewCatalogCommand creates the catalog command group.
func NewCatalogCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the event catalog",
	}
	cmd.AddCommand(newCatalogDumpCommand(rootOpts))
	return cmd
}

func newCatalogDumpCommand(rootOpts *RootOptions) *cobra.Command {
	var manifest string
	var out string

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Write the diagnostic catalog artifact",
		Long: `Read the catalog manifest produced by the host-side discovery adapter
and write the diagnostic dump artifact: every known event name with its
host type, cancellability, and origin. The artifact is write-only - the
engine never reads it back; it exists so operators can see what is
controllable.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			cat, err := catalog.ManifestProvider{Path: manifest}.Discover()
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to read catalog manifest", err)
			}
			formatter.VerboseLog("discovered %d events", len(cat))

			if err := config.WriteCatalog(out, cat); err != nil {
				return WrapExitError(ExitFailure, "failed to write catalog dump", err)
			}
			return formatter.Success(fmt.Sprintf("wrote %d events to %s", len(cat), out))
		},
	}

	cmd.Flags().StringVar(&manifest, "manifest", "", "path to the catalog manifest (required)")
	cmd.Flags().StringVar(&out, "out", "", "path for the dump artifact (required)")
	_ = cmd.MarkFlagRequired("manifest")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}
