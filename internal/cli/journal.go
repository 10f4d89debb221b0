package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hushd/hush/internal/journal"
)

// journalView is the JSON shape of one journal entry.
type journalView struct {
	ID     string    `json:"id"`
	At     time.Time `json:"at"`
	Op     string    `json:"op"`
	Detail string    `json:"detail,omitempty"`
}

// NewJournalCommand creates the journal command.
func NewJournalCommand(rootOpts *RootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Show recent configuration edits",
		Long: `List the most recent entries in the mutation journal, newest first.
Requires --journal to point at the journal database.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)

			if rootOpts.JournalPath == "" {
				return NewExitError(ExitCommandError, "journal command requires --journal")
			}

			j, err := journal.Open(rootOpts.JournalPath)
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to open journal", err)
			}
			defer j.Close()

			entries, err := j.Recent(cmd.Context(), limit)
			if err != nil {
				return WrapExitError(ExitFailure, "failed to read journal", err)
			}

			if formatter.Format == "json" {
				views := make([]journalView, 0, len(entries))
				for _, e := range entries {
					views = append(views, journalView{ID: e.ID, At: e.At, Op: e.Op, Detail: e.Detail})
				}
				return formatter.Success(views)
			}

			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "journal is empty")
				return nil
			}
			for _, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %-15s %s\n",
					e.At.Format(time.RFC3339), e.Op, e.Detail)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum entries to show")
	return cmd
}
