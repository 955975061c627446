package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewHighestCommand creates the highest command.
func NewHighestCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "highest",
		Short: "Show the record with the highest quantity (on sale)",
		Long: `Show the record with the highest positive quantity; it is the one on sale.

Records with a quantity of zero never qualify. Exits with code 1 when no
record qualifies.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHighest(rootOpts, cmd)
		},
	}

	return cmd
}

func runHighest(opts *RootOptions, cmd *cobra.Command) error {
	a, err := openApp(opts, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.load(commandContext(cmd)); err != nil {
		return err
	}

	record, ok := a.tracker.Store().FindMaxQuantity()
	if !ok {
		return a.formatter.Fail(ExitFailure, ErrCodeEmpty, "There are no shoes in the inventory.", nil)
	}
	if a.formatter.IsJSON() {
		return a.formatter.Success(record)
	}
	return a.formatter.Success(fmt.Sprintf(
		"The shoe with the highest quantity is %s with %d units and it's on sale.",
		record.Product, record.Quantity))
}
