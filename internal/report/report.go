// Package report renders inventory listings for the console.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/roach88/shoestock/internal/inventory"
)

// Columns are the table headings, in display order.
var Columns = []string{"Country", "Code", "Product", "Cost", "Quantity"}

// WriteTable renders records as a table: a heading row, a dashed rule
// sized to each column, and one row per record.
func WriteTable(w io.Writer, records []*inventory.Record) error {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.Country,
			r.Code,
			r.Product,
			r.Cost.String(),
			strconv.Itoa(r.Quantity),
		})
	}

	widths := make([]int, len(Columns))
	for i, c := range Columns {
		widths[i] = len(c)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], len(cell))
		}
	}
	rule := make([]string, len(widths))
	for i, n := range widths {
		rule[i] = strings.Repeat("-", n)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	writeRow(tw, Columns)
	writeRow(tw, rule)
	for _, row := range rows {
		writeRow(tw, row)
	}
	return tw.Flush()
}

func writeRow(w io.Writer, cells []string) {
	fmt.Fprintln(w, strings.Join(cells, "\t"))
}

// WriteValues prints the stock value of every record as
// "product (code): value".
func WriteValues(w io.Writer, records []*inventory.Record) error {
	if _, err := fmt.Fprintln(w, "Value per item:"); err != nil {
		return err
	}
	for _, r := range records {
		if _, err := fmt.Fprintf(w, "%s (%s): %s\n", r.Product, r.Code, r.Value().String()); err != nil {
			return err
		}
	}
	return nil
}
