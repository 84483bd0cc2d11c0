package usecase

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"gl-reconciler/internal/domain"
)

// DefaultSumTolerance is the absolute tolerance applied when comparing
// column totals, absorbing float rounding noise.
const DefaultSumTolerance = 0.01

// AnalyzeOptions tunes the statistical analyzer.
type AnalyzeOptions struct {
	// SumTolerance overrides DefaultSumTolerance when positive.
	SumTolerance float64
	// StrictDates makes the date-range check fail loudly on malformed
	// dates instead of degrading to an informational issue.
	StrictDates bool
}

func (o AnalyzeOptions) tolerance() float64 {
	if o.SumTolerance > 0 {
		return o.SumTolerance
	}
	return DefaultSumTolerance
}

// money formats sums with thousand separators the way the audit report
// expects.
var money = message.NewPrinter(language.English)

// Analyze performs the local statistical reconciliation of the Excel
// and SQL extracts. It is pure with respect to its inputs and, unless
// StrictDates is set, never returns an error for structurally valid
// datasets. The checks run in a fixed order so issue ordering is
// deterministic.
func Analyze(excel, sql domain.Dataset, opts AnalyzeOptions) (domain.AnalysisResult, error) {
	result := domain.AnalysisResult{
		ExcelRowCount: excel.RowCount(),
		SQLRowCount:   sql.RowCount(),
		RowCountDelta: excel.RowCount() - sql.RowCount(),
		Issues:        []string{},
	}

	// 1. Row counts.
	if excel.RowCount() != sql.RowCount() {
		result.Issues = append(result.Issues,
			fmt.Sprintf("Row count mismatch: Excel has %d, SQL has %d", excel.RowCount(), sql.RowCount()))
	}

	// 2. Column alignment, order and identity.
	if !equalColumns(excel.Columns, sql.Columns) {
		result.Issues = append(result.Issues, "Column structure differs between files")
	}

	// 3. Aggregate sums and null counts per shared numeric column.
	tol := opts.tolerance()
	for _, col := range excel.NumericColumns() {
		if !sql.HasColumn(col) {
			continue
		}
		excelSum, excelNulls := excel.SumColumn(col)
		sqlSum, sqlNulls := sql.SumColumn(col)

		if diff := math.Abs(excelSum - sqlSum); diff > tol {
			larger := math.Max(math.Abs(excelSum), math.Abs(sqlSum))
			pct := 0.0
			if larger > 0 {
				pct = diff / larger * 100
			}
			result.Issues = append(result.Issues, money.Sprintf(
				"%s totals differ: Excel=$%.2f, SQL=$%.2f (Difference: $%.2f, %s%%)",
				col, excelSum, sqlSum, diff, formatPercent(pct)))
		}

		if excelNulls != sqlNulls {
			result.Issues = append(result.Issues,
				fmt.Sprintf("%s has different null counts: Excel=%d, SQL=%d", col, excelNulls, sqlNulls))
		}
	}

	// 4. Fully-duplicated rows within each extract.
	excelDupes := countDuplicateRows(excel)
	sqlDupes := countDuplicateRows(sql)
	if excelDupes > 0 || sqlDupes > 0 {
		result.Issues = append(result.Issues,
			fmt.Sprintf("Duplicate records found - Excel: %d, SQL: %d", excelDupes, sqlDupes))
	}

	// 5. Date range comparison, best effort unless StrictDates.
	if excel.HasColumn("Date") && sql.HasColumn("Date") {
		excelRange, errA := dateRange(excel)
		sqlRange, errB := dateRange(sql)
		switch {
		case errA != nil || errB != nil:
			if opts.StrictDates {
				err := errA
				if err == nil {
					err = errB
				}
				return domain.AnalysisResult{}, fmt.Errorf("date range comparison failed: %w", err)
			}
			result.Issues = append(result.Issues, "Unable to parse date fields for comparison")
		case excelRange != sqlRange:
			result.Issues = append(result.Issues,
				fmt.Sprintf("Date ranges differ - Excel: %s, SQL: %s", excelRange, sqlRange))
		}
	}

	// 6. Informational entries when everything reconciled cleanly.
	if len(result.Issues) == 0 {
		reconciled := excel.RowCount()
		if sql.RowCount() < reconciled {
			reconciled = sql.RowCount()
		}
		result.Issues = append(result.Issues,
			"No major discrepancies detected in statistical analysis",
			money.Sprintf("Total records reconciled: %d", reconciled))
	}

	return result, nil
}

func equalColumns(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// countDuplicateRows counts rows that repeat an earlier row exactly,
// i.e. duplicates beyond the first occurrence: a row appearing twice
// counts as one duplicate.
func countDuplicateRows(d domain.Dataset) int {
	seen := make(map[string]bool, len(d.Rows))
	dupes := 0
	var key strings.Builder
	for _, row := range d.Rows {
		key.Reset()
		for _, col := range d.Columns {
			key.WriteString(row[col])
			key.WriteByte(0x1f)
		}
		k := key.String()
		if seen[k] {
			dupes++
		} else {
			seen[k] = true
		}
	}
	return dupes
}

// dateRange parses every value of the Date column and formats the
// [min, max] span. Any unparseable cell, or an empty dataset, is an
// error so the caller can decide between degrading and failing.
func dateRange(d domain.Dataset) (string, error) {
	var min, max time.Time
	parsed := false
	for _, row := range d.Rows {
		t, err := domain.ParseDate(row["Date"])
		if err != nil {
			return "", fmt.Errorf("could not parse date %q: %w", row["Date"], err)
		}
		if !parsed || t.Before(min) {
			min = t
		}
		if !parsed || t.After(max) {
			max = t
		}
		parsed = true
	}
	if !parsed {
		return "", fmt.Errorf("no date values present")
	}
	return fmt.Sprintf("%s to %s", min.Format(time.DateOnly), max.Format(time.DateOnly)), nil
}

// formatPercent keeps small percentages visible without padding large
// ones with trailing zeros.
func formatPercent(pct float64) string {
	s := strconv.FormatFloat(pct, 'f', 4, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "" || s == "-" {
		return "0"
	}
	return s
}
