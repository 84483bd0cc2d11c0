package domain

// AnalysisResult summarizes the local statistical reconciliation of the
// Excel and SQL extracts. Issues is never empty: when nothing is wrong
// the analyzer emits informational entries instead, so downstream
// consumers can rely on at least one entry being present.
type AnalysisResult struct {
	ExcelRowCount int      `json:"total_excel_rows"`
	SQLRowCount   int      `json:"total_sql_rows"`
	RowCountDelta int      `json:"row_difference"`
	Issues        []string `json:"potential_issues"`
}
