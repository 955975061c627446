package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewSearchCommand creates the search command.
func NewSearchCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <code>",
		Short: "Find the first record with a product code",
		Long: `Find the first record whose product code matches exactly.

Codes are not unique; the earliest record in file order is returned.
Exits with code 1 when nothing matches.

Example:
  shoestock search AB1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runSearch(opts *RootOptions, code string, cmd *cobra.Command) error {
	a, err := openApp(opts, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.load(commandContext(cmd)); err != nil {
		return err
	}

	record, ok := a.tracker.Store().FindByCode(code)
	if !ok {
		return a.formatter.Fail(ExitFailure, ErrCodeNotFound, fmt.Sprintf("No shoe found with code %s.", code), nil)
	}
	if a.formatter.IsJSON() {
		return a.formatter.Success(record)
	}
	return a.formatter.Success(record.String())
}
