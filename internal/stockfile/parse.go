package stockfile

import (
	"fmt"
	"strings"

	"github.com/roach88/shoestock/internal/inventory"
)

// FieldCount is the number of comma-separated fields in a data line.
const FieldCount = 5

// Header is the header line written by Export.
const Header = "Country,Code,Product,Cost,Quantity"

// FieldCountError reports a data line with the wrong number of fields.
type FieldCountError struct {
	Got int
}

func (e *FieldCountError) Error() string {
	return fmt.Sprintf("expected %d fields, got %d", FieldCount, e.Got)
}

// ParseLine parses one data line into a record.
// Surrounding whitespace on the line is ignored.
func ParseLine(line string) (*inventory.Record, error) {
	fields := strings.Split(strings.TrimSpace(line), ",")
	if len(fields) != FieldCount {
		return nil, &FieldCountError{Got: len(fields)}
	}

	cost, err := inventory.ParseCost(fields[3])
	if err != nil {
		return nil, err
	}
	quantity, err := inventory.ParseQuantity(fields[4])
	if err != nil {
		return nil, err
	}

	return &inventory.Record{
		Country:  fields[0],
		Code:     fields[1],
		Product:  fields[2],
		Cost:     cost,
		Quantity: quantity,
	}, nil
}
