package inventory

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Record is a single shoe stock entry.
type Record struct {
	Country  string          `json:"country"`
	Code     string          `json:"code"`
	Product  string          `json:"product"`
	Cost     decimal.Decimal `json:"cost"`
	Quantity int             `json:"quantity"`
}

// String renders the record the way search results print it.
func (r *Record) String() string {
	return fmt.Sprintf("Shoe(country=%s, code=%s, product=%s, cost=%s, quantity=%d)",
		r.Country, r.Code, r.Product, r.Cost.String(), r.Quantity)
}

// Value returns the stock value of the record: cost times quantity.
func (r *Record) Value() decimal.Decimal {
	return r.Cost.Mul(decimal.NewFromInt(int64(r.Quantity)))
}

// NewManualRecord builds a record from values typed by a user.
//
// Country and product are title-cased and the code is upper-cased. Cost and
// quantity are validated with ParseCost and ParseQuantity; the first failure
// is returned as *InvalidNumberError.
func NewManualRecord(country, code, product, cost, quantity string) (*Record, error) {
	c, err := ParseCost(cost)
	if err != nil {
		return nil, err
	}
	q, err := ParseQuantity(quantity)
	if err != nil {
		return nil, err
	}
	return &Record{
		Country:  NormalizeName(country),
		Code:     NormalizeCode(code),
		Product:  NormalizeName(product),
		Cost:     c,
		Quantity: q,
	}, nil
}

// NormalizeName title-cases free text such as a country or product name.
func NormalizeName(s string) string {
	return cases.Title(language.Und).String(s)
}

// NormalizeCode upper-cases a product code.
func NormalizeCode(s string) string {
	return strings.ToUpper(s)
}

// ParseCost parses a non-negative decimal unit cost.
func ParseCost(s string) (decimal.Decimal, error) {
	raw := strings.TrimSpace(s)
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, &InvalidNumberError{Field: "cost", Input: s, Kind: KindNotANumber, Err: err}
	}
	if d.IsNegative() {
		return decimal.Zero, &InvalidNumberError{Field: "cost", Input: s, Kind: KindNegative}
	}
	return d, nil
}

// ParseQuantity parses a non-negative integer unit count.
func ParseQuantity(s string) (int, error) {
	return parseCount("quantity", s)
}

// ParseAmount parses a non-negative number of units to add during a restock.
func ParseAmount(s string) (int, error) {
	return parseCount("amount", s)
}

func parseCount(field, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &InvalidNumberError{Field: field, Input: s, Kind: KindNotANumber, Err: err}
	}
	if n < 0 {
		return 0, &InvalidNumberError{Field: field, Input: s, Kind: KindNegative}
	}
	return n, nil
}
