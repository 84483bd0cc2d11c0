package usecase

import (
	"context"

	"gl-reconciler/internal/domain"
)

// ExtractRepository defines the interface for loading the two ledger
// extracts. The usecase layer depends on this interface, not on a
// concrete implementation.
//
//go:generate mockgen -destination=mocks/mock_interfaces.go -source=interface.go ExtractRepository MismatchDetector
type ExtractRepository interface {
	// GetExcelDataset loads the Excel-side extract from a file path.
	GetExcelDataset(ctx context.Context, source string) (domain.Dataset, error)
	// GetSQLDataset loads the SQL-side extract; source is either a file
	// path or, when the repository is database-backed, a query.
	GetSQLDataset(ctx context.Context, source string) (domain.Dataset, error)
}

// MismatchDetector is the external AI collaborator. Detection failures
// are reported in-band as a single error outcome, never as a Go error,
// so a failed AI run degrades to a statistics-only report.
type MismatchDetector interface {
	Detect(ctx context.Context, excel, sql domain.Dataset) []domain.MismatchOutcome
}
