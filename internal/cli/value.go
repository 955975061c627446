package cli

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/roach88/shoestock/internal/report"
)

// ItemValue is the JSON shape of one value-per-item line.
type ItemValue struct {
	Product string          `json:"product"`
	Code    string          `json:"code"`
	Value   decimal.Decimal `json:"value"`
}

// NewValueCommand creates the value command.
func NewValueCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "value",
		Short: "Print cost times quantity for every record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValue(rootOpts, cmd)
		},
	}

	return cmd
}

func runValue(opts *RootOptions, cmd *cobra.Command) error {
	a, err := openApp(opts, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.load(commandContext(cmd)); err != nil {
		return err
	}

	records := a.tracker.Store().Records()
	if !a.formatter.IsJSON() {
		return report.WriteValues(a.formatter.Writer, records)
	}

	values := make([]ItemValue, 0, len(records))
	for _, r := range records {
		values = append(values, ItemValue{Product: r.Product, Code: r.Code, Value: r.Value()})
	}
	return a.formatter.Success(values)
}
