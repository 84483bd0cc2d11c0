package domain

import (
	"strconv"
	"strings"
	"time"
)

// Row maps a column name to the raw cell value for one record.
// Cells are kept as strings; numeric and date interpretation happens
// at analysis time so that ragged extracts never fail ingestion.
type Row map[string]string

// Dataset is an ordered tabular extract: a header plus its rows.
// The Excel and SQL extracts of the same ledger need not share the
// same column set or row count.
type Dataset struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// dateLayouts are the calendar formats accepted for Date columns,
// most specific first.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
}

// RowCount returns the number of data rows in the dataset.
func (d Dataset) RowCount() int {
	return len(d.Rows)
}

// HasColumn reports whether the dataset header contains the given column.
func (d Dataset) HasColumn(name string) bool {
	for _, col := range d.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// NumericColumns returns, in header order, every column whose non-null
// values all parse as numbers. A column with only null cells is not
// considered numeric.
func (d Dataset) NumericColumns() []string {
	var numeric []string
	for _, col := range d.Columns {
		seen := false
		ok := true
		for _, row := range d.Rows {
			cell := row[col]
			if IsNull(cell) {
				continue
			}
			seen = true
			if _, err := strconv.ParseFloat(strings.TrimSpace(cell), 64); err != nil {
				ok = false
				break
			}
		}
		if seen && ok {
			numeric = append(numeric, col)
		}
	}
	return numeric
}

// SumColumn returns the sum of a column's non-null values and the count
// of null cells encountered. Cells that fail to parse count as null.
func (d Dataset) SumColumn(col string) (sum float64, nulls int) {
	for _, row := range d.Rows {
		cell := row[col]
		if IsNull(cell) {
			nulls++
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
		if err != nil {
			nulls++
			continue
		}
		sum += v
	}
	return sum, nulls
}

// IsNull reports whether a cell represents a missing value.
func IsNull(cell string) bool {
	switch strings.TrimSpace(cell) {
	case "", "NULL", "null", "NaN", "nan":
		return true
	}
	return false
}

// ParseDate parses a cell as a calendar date, trying each accepted layout.
func ParseDate(cell string) (time.Time, error) {
	cell = strings.TrimSpace(cell)
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, cell)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
