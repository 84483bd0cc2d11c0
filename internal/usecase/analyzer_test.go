package usecase_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"gl-reconciler/internal/domain"
	"gl-reconciler/internal/usecase"
)

func ledgerDataset(debits ...string) domain.Dataset {
	ds := domain.Dataset{Columns: []string{"transaction_id", "debit"}}
	for i, d := range debits {
		ds.Rows = append(ds.Rows, domain.Row{
			"transaction_id": fmt.Sprintf("T%d", i+1),
			"debit":          d,
		})
	}
	return ds
}

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name       string
		excel      domain.Dataset
		sql        domain.Dataset
		opts       usecase.AnalyzeOptions
		wantDelta  int
		wantIssues []string
		wantErr    bool
	}{
		{
			name:      "identical datasets produce only informational entries",
			excel:     ledgerDataset("100", "200", "300"),
			sql:       ledgerDataset("100", "200", "300"),
			wantDelta: 0,
			wantIssues: []string{
				"No major discrepancies detected in statistical analysis",
				"Total records reconciled: 3",
			},
		},
		{
			name:      "row count mismatch",
			excel:     ledgerDataset("100", "200"),
			sql:       ledgerDataset("100", "200", "300"),
			wantDelta: -1,
			wantIssues: []string{
				"Row count mismatch: Excel has 2, SQL has 3",
				"debit totals differ: Excel=$300.00, SQL=$600.00 (Difference: $300.00, 50%)",
			},
		},
		{
			name:  "column structure differs",
			excel: domain.Dataset{Columns: []string{"transaction_id", "debit"}},
			sql:   domain.Dataset{Columns: []string{"transaction_id", "credit"}},
			wantIssues: []string{
				"Column structure differs between files",
			},
		},
		{
			name:  "sum difference at exactly the tolerance does not trigger",
			excel: ledgerDataset("2"),
			sql:   ledgerDataset("2.01"),
			wantIssues: []string{
				"No major discrepancies detected in statistical analysis",
				"Total records reconciled: 1",
			},
		},
		{
			name:  "sum difference just over the tolerance triggers",
			excel: ledgerDataset("2"),
			sql:   ledgerDataset("2.0100001"),
			wantIssues: []string{
				"debit totals differ: Excel=$2.00, SQL=$2.01 (Difference: $0.01, 0.4975%)",
			},
		},
		{
			name: "null counts differ while sums agree",
			excel: domain.Dataset{
				Columns: []string{"transaction_id", "debit"},
				Rows: []domain.Row{
					{"transaction_id": "T1", "debit": "100"},
					{"transaction_id": "T2", "debit": ""},
				},
			},
			sql: domain.Dataset{
				Columns: []string{"transaction_id", "debit"},
				Rows: []domain.Row{
					{"transaction_id": "T1", "debit": "50"},
					{"transaction_id": "T2", "debit": "50"},
				},
			},
			wantIssues: []string{
				"debit has different null counts: Excel=1, SQL=0",
			},
		},
		{
			name: "duplicate rows counted beyond first occurrence",
			excel: domain.Dataset{
				Columns: []string{"transaction_id", "debit"},
				Rows: []domain.Row{
					{"transaction_id": "T1", "debit": "100"},
					{"transaction_id": "T1", "debit": "100"},
					{"transaction_id": "T2", "debit": "200"},
				},
			},
			sql: domain.Dataset{
				Columns: []string{"transaction_id", "debit"},
				Rows: []domain.Row{
					{"transaction_id": "T1", "debit": "100"},
					{"transaction_id": "T2", "debit": "200"},
					{"transaction_id": "T3", "debit": "100"},
				},
			},
			wantDelta: 0,
			wantIssues: []string{
				"Duplicate records found - Excel: 1, SQL: 0",
			},
		},
		{
			name: "date ranges differ",
			excel: domain.Dataset{
				Columns: []string{"Date", "debit"},
				Rows: []domain.Row{
					{"Date": "2024-01-01", "debit": "100"},
					{"Date": "2024-01-03", "debit": "200"},
				},
			},
			sql: domain.Dataset{
				Columns: []string{"Date", "debit"},
				Rows: []domain.Row{
					{"Date": "2024-01-01", "debit": "100"},
					{"Date": "2024-01-02", "debit": "200"},
				},
			},
			wantIssues: []string{
				"Date ranges differ - Excel: 2024-01-01 to 2024-01-03, SQL: 2024-01-01 to 2024-01-02",
			},
		},
		{
			name: "malformed date degrades to informational issue",
			excel: domain.Dataset{
				Columns: []string{"Date", "debit"},
				Rows: []domain.Row{
					{"Date": "not-a-date", "debit": "100"},
				},
			},
			sql: domain.Dataset{
				Columns: []string{"Date", "debit"},
				Rows: []domain.Row{
					{"Date": "2024-01-01", "debit": "100"},
				},
			},
			wantIssues: []string{
				"Unable to parse date fields for comparison",
			},
		},
		{
			name: "malformed date fails loudly in strict mode",
			excel: domain.Dataset{
				Columns: []string{"Date", "debit"},
				Rows: []domain.Row{
					{"Date": "not-a-date", "debit": "100"},
				},
			},
			sql: domain.Dataset{
				Columns: []string{"Date", "debit"},
				Rows: []domain.Row{
					{"Date": "2024-01-01", "debit": "100"},
				},
			},
			opts:    usecase.AnalyzeOptions{StrictDates: true},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := usecase.Analyze(tt.excel, tt.sql, tt.opts)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.excel.RowCount(), got.ExcelRowCount)
			assert.Equal(t, tt.sql.RowCount(), got.SQLRowCount)
			assert.Equal(t, tt.wantDelta, got.RowCountDelta)
			assert.Equal(t, tt.wantIssues, got.Issues)
		})
	}
}

func TestAnalyzeEndToEndTotalsDrift(t *testing.T) {
	excel := ledgerDataset("100", "100", "100")
	sql := ledgerDataset("100", "100", "100.02")

	got, err := usecase.Analyze(excel, sql, usecase.AnalyzeOptions{})
	assert.NoError(t, err)
	assert.Equal(t, []string{
		"debit totals differ: Excel=$300.00, SQL=$300.02 (Difference: $0.02, 0.0067%)",
	}, got.Issues)

	report := usecase.BuildReport(nil, got)
	assert.Len(t, report, 1)
	assert.Equal(t, "Statistical Analysis", report[0].DiscrepancyType)
	assert.Equal(t, domain.ImpactHigh, report[0].Impact)
}

func TestAnalyzeIssuesNeverEmpty(t *testing.T) {
	empty := domain.Dataset{Columns: []string{"debit"}}
	got, err := usecase.Analyze(empty, empty, usecase.AnalyzeOptions{})
	assert.NoError(t, err)
	assert.Equal(t, []string{
		"No major discrepancies detected in statistical analysis",
		"Total records reconciled: 0",
	}, got.Issues)
}

func TestAnalyzeDoesNotMutateInputs(t *testing.T) {
	excel := ledgerDataset("100", "200")
	sql := ledgerDataset("100", "300")
	_, err := usecase.Analyze(excel, sql, usecase.AnalyzeOptions{})
	assert.NoError(t, err)
	assert.Equal(t, ledgerDataset("100", "200"), excel)
	assert.Equal(t, ledgerDataset("100", "300"), sql)
}
