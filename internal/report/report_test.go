package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/shoestock/internal/inventory"
)

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func record(country, code, product, cost string, quantity int) *inventory.Record {
	return &inventory.Record{
		Country:  country,
		Code:     code,
		Product:  product,
		Cost:     decimal.RequireFromString(cost),
		Quantity: quantity,
	}
}

func sampleRecords() []*inventory.Record {
	return []*inventory.Record{
		record("France", "AB1", "Boot", "49.99", 3),
		record("South Africa", "ZA22", "Running Shoe", "120", 15),
	}
}

func TestWriteTable_SingleRecord(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, []*inventory.Record{
		record("France", "AB1", "Boot", "49.99", 3),
	}))

	newGoldie(t).Assert(t, "table_single", buf.Bytes())

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"France", "AB1", "Boot", "49.99", "3"}, strings.Fields(lines[2]))
}

func TestWriteTable_ColumnsWiden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, sampleRecords()))

	newGoldie(t).Assert(t, "table_multiple", buf.Bytes())
}

func TestWriteTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, nil))

	newGoldie(t).Assert(t, "table_empty", buf.Bytes())
}

func TestWriteTable_NoTrailingSpaces(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, sampleRecords()))

	for _, line := range strings.Split(buf.String(), "\n") {
		assert.Equal(t, strings.TrimRight(line, " "), line)
	}
}

func TestWriteValues(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteValues(&buf, sampleRecords()))

	newGoldie(t).Assert(t, "values", buf.Bytes())
}

func TestWriteValues_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteValues(&buf, nil))
	assert.Equal(t, "Value per item:\n", buf.String())
}
