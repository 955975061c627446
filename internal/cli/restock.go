package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RestockOptions holds flags for the restock command.
type RestockOptions struct {
	*RootOptions
	Add int
}

// NewRestockCommand creates the restock command.
func NewRestockCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RestockOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "restock",
		Short: "Add stock to the record with the lowest quantity",
		Long: `Add stock to the record with the lowest quantity, without prompting.

Every line in the inventory file that shares the record's country receives
the new quantity. When a journal is configured the restock is recorded.

Example:
  shoestock restock --add 10
  shoestock restock --add 5 --journal ./restocks.db`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRestock(opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Add, "add", 0, "number of units to add (required)")
	_ = cmd.MarkFlagRequired("add")

	return cmd
}

func runRestock(opts *RestockOptions, cmd *cobra.Command) error {
	a, err := openApp(opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if opts.Add < 0 {
		return a.formatter.Fail(ExitCommandError, ErrCodeInvalidInput,
			fmt.Sprintf("invalid --add %d: must not be negative", opts.Add), nil)
	}

	ctx := commandContext(cmd)
	if err := a.load(ctx); err != nil {
		return err
	}

	record, ok := a.tracker.Store().FindMinQuantity()
	if !ok {
		return a.formatter.Fail(ExitFailure, ErrCodeEmpty, "There are no shoes in the inventory.", nil)
	}
	before := record.Quantity

	result, err := a.tracker.Restock(ctx, record, opts.Add)
	if err != nil {
		return a.formatter.Fail(ExitCommandError, ErrCodeWriteFailed, "failed to restock", err)
	}

	if a.formatter.IsJSON() {
		return a.formatter.Success(result)
	}
	fmt.Fprintf(a.formatter.Writer, "The shoe with the lowest quantity is %s with %d units in stock.\n", record.Product, before)
	fmt.Fprintf(a.formatter.Writer, "%d %s added to stock.\n", result.Added, record.Product)
	a.formatter.VerboseLog("Patched %d line(s) in %s", result.LinesPatched, a.cfg.InventoryPath)
	return nil
}
