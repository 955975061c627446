package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/shoestock/internal/report"
)

// NewViewCommand creates the view command.
func NewViewCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "List every record as a table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(rootOpts, cmd)
		},
	}

	return cmd
}

func runView(opts *RootOptions, cmd *cobra.Command) error {
	a, err := openApp(opts, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.load(commandContext(cmd)); err != nil {
		return err
	}

	records := a.tracker.Store().Records()
	if a.formatter.IsJSON() {
		return a.formatter.Success(records)
	}
	return report.WriteTable(a.formatter.Writer, records)
}
