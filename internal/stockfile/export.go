package stockfile

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gocarina/gocsv"

	"github.com/roach88/shoestock/internal/inventory"
)

// exportRow is the CSV shape of a record. Its header matches the inventory
// file header, so an export can be loaded back as an inventory file.
type exportRow struct {
	Country  string `csv:"Country"`
	Code     string `csv:"Code"`
	Product  string `csv:"Product"`
	Cost     string `csv:"Cost"`
	Quantity int    `csv:"Quantity"`
}

// ErrUnquotableField is returned by Export for a text field the CSV writer
// would quote. The inventory format has no quoting, so such a record
// could not be loaded back.
var ErrUnquotableField = errors.New("field would need quoting")

// Export writes records to w in inventory file format, header included.
// Nothing is written when any record has a field that would need quoting.
func Export(records []*inventory.Record, w io.Writer) error {
	rows := make([]*exportRow, 0, len(records))
	for _, r := range records {
		if err := checkFields(r); err != nil {
			return fmt.Errorf("export inventory: %w", err)
		}
		rows = append(rows, &exportRow{
			Country:  r.Country,
			Code:     r.Code,
			Product:  r.Product,
			Cost:     r.Cost.String(),
			Quantity: r.Quantity,
		})
	}
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("export inventory: %w", err)
	}
	return nil
}

// checkFields rejects text fields that encoding/csv would quote.
func checkFields(r *inventory.Record) error {
	for _, field := range []struct{ name, value string }{
		{"country", r.Country},
		{"code", r.Code},
		{"product", r.Product},
	} {
		if needsQuoting(field.value) {
			return fmt.Errorf("record %s: %s %q: %w", r.Code, field.name, field.value, ErrUnquotableField)
		}
	}
	return nil
}

func needsQuoting(s string) bool {
	if s == "" {
		return false
	}
	if s == `\.` || strings.ContainsAny(s, ",\"\r\n") {
		return true
	}
	first, _ := utf8.DecodeRuneInString(s)
	return unicode.IsSpace(first)
}
