package domain

// Impact classifies how severe a reported discrepancy is.
type Impact string

const (
	ImpactHigh   Impact = "High"
	ImpactMedium Impact = "Medium"
)

// ReportRow is one line of the final reconciliation report. The JSON
// field names are the report's external contract and match the CSV
// header produced by ReportHeader.
type ReportRow struct {
	TransactionID   string `json:"Transaction ID"`
	DiscrepancyType string `json:"Discrepancy Type"`
	Description     string `json:"Description"`
	ExcelData       string `json:"Excel Data"`
	SQLData         string `json:"SQL Data"`
	Impact          Impact `json:"Impact"`
}

// ReportHeader returns the column names of the exported report, in
// output order.
func ReportHeader() []string {
	return []string{"Transaction ID", "Discrepancy Type", "Description", "Excel Data", "SQL Data", "Impact"}
}

// Fields returns the row's values in ReportHeader order.
func (r ReportRow) Fields() []string {
	return []string{r.TransactionID, r.DiscrepancyType, r.Description, r.ExcelData, r.SQLData, string(r.Impact)}
}
