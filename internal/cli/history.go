package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/shoestock/internal/tracker"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Limit int
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List journaled restocks, newest first",
		Long: `List restocks recorded in the journal, newest first.

Requires a journal (--journal, journal_path or SHOESTOCK_JOURNAL).

Example:
  shoestock history --journal ./restocks.db --limit 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "maximum number of events (0 = all)")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	a, err := openApp(opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	events, err := a.tracker.History(commandContext(cmd), opts.Limit)
	if errors.Is(err, tracker.ErrJournalDisabled) {
		return a.formatter.Fail(ExitCommandError, ErrCodeJournal, err.Error(), nil)
	}
	if err != nil {
		return a.formatter.Fail(ExitCommandError, ErrCodeJournal, "failed to read journal", err)
	}

	if a.formatter.IsJSON() {
		return a.formatter.Success(events)
	}
	if len(events) == 0 {
		fmt.Fprintln(a.formatter.Writer, "No restocks recorded.")
		return nil
	}

	tw := tabwriter.NewWriter(a.formatter.Writer, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Seq\tRecorded\tCode\tProduct\tAdded\tQuantity\tLines")
	for _, ev := range events {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%d\t%d\n",
			ev.Seq, ev.RecordedAt.Format(time.RFC3339), ev.Code, ev.Product,
			ev.Added, ev.NewQuantity, ev.LinesPatched)
	}
	return tw.Flush()
}
