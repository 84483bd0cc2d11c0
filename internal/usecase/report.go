package usecase

import (
	"strings"
	"unicode"

	"gl-reconciler/internal/domain"
)

// BuildReport merges the statistical findings with the AI-identified
// mismatches into one normalized report. Statistical rows come first,
// AI rows follow in input order; nothing is re-sorted or de-duplicated,
// since the two row kinds are independent evidence sources.
func BuildReport(outcomes []domain.MismatchOutcome, analysis domain.AnalysisResult) []domain.ReportRow {
	report := make([]domain.ReportRow, 0, len(analysis.Issues)+len(outcomes))

	for _, issue := range analysis.Issues {
		impact := domain.ImpactMedium
		if strings.Contains(strings.ToLower(issue), "total") {
			impact = domain.ImpactHigh
		}
		report = append(report, domain.ReportRow{
			TransactionID:   "Statistical",
			DiscrepancyType: "Statistical Analysis",
			Description:     issue,
			ExcelData:       "Aggregate data",
			SQLData:         "Aggregate data",
			Impact:          impact,
		})
	}

	// A lone error outcome means the whole AI run failed; it contributes
	// nothing. Error outcomes mixed into a larger response are skipped
	// individually.
	if len(outcomes) == 0 || (len(outcomes) == 1 && outcomes[0].Err != nil) {
		return report
	}

	for _, outcome := range outcomes {
		if !outcome.OK() {
			continue
		}
		rec := outcome.Record
		report = append(report, domain.ReportRow{
			TransactionID:   defaultString(rec.TransactionID, "Unknown"),
			DiscrepancyType: titleCase(defaultString(rec.DiscrepancyType, "Unknown")),
			Description:     defaultString(rec.Reason, "No description"),
			ExcelData:       rec.ExcelData.String(),
			SQLData:         rec.SQLData.String(),
			Impact:          domain.ImpactHigh,
		})
	}
	return report
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// titleCase capitalizes the first letter of each space-separated word
// and lowercases the rest; underscores do not break words, so
// "amount_difference" becomes "Amount_difference".
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
