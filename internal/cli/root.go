package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hushd/hush/internal/config"
	"github.com/hushd/hush/internal/engine"
	"github.com/hushd/hush/internal/journal"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	ConfigPath  string
	JournalPath string
	Format      string // "json" | "text"
	Verbose     bool
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the hush CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "hush",
		Short: "hush - selective event suppression",
		Long: `Suppress named host events selectively: everywhere, within one
world, or within a named 3-D region. Rules and regions live in a single
operator-editable configuration document; every edit is saved immediately.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			level := slog.LevelInfo
			if opts.Verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "hush.yaml", "path to the configuration document")
	cmd.PersistentFlags().StringVar(&opts.JournalPath, "journal", "", "path to the mutation journal database (optional)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewRuleCommand(opts))
	cmd.AddCommand(NewRegionCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewCatalogCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewJournalCommand(opts))
	cmd.AddCommand(NewDebugCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// newFormatter builds the output formatter for a command invocation.
func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}

// openEngine loads the configuration into a fresh engine, attaching the
// journal when one is configured. The returned cleanup func closes the
// journal and must be called even on error paths that return an engine.
func openEngine(opts *RootOptions) (*engine.Engine, func(), error) {
	store := config.NewStore(opts.ConfigPath)

	var engineOpts []engine.Option
	cleanup := func() {}
	if opts.JournalPath != "" {
		j, err := journal.Open(opts.JournalPath)
		if err != nil {
			return nil, cleanup, WrapExitError(ExitCommandError, "failed to open journal", err)
		}
		cleanup = func() {
			if err := j.Close(); err != nil {
				slog.Error("error closing journal", "error", err)
			}
		}
		engineOpts = append(engineOpts, engine.WithJournal(j))
	}

	eng, err := engine.New(store, engineOpts...)
	if err != nil {
		cleanup()
		return nil, func() {}, WrapExitError(ExitCommandError, "failed to load configuration", err)
	}
	return eng, cleanup, nil
}
