package gateway

import (
	"context"

	"github.com/jmoiron/sqlx"

	"gl-reconciler/internal/domain"
)

// ExtractRepository implements usecase.ExtractRepository. The Excel
// side always comes from a file; the SQL side comes from the database
// when one is attached, otherwise from a file as well.
type ExtractRepository struct {
	db *sqlx.DB
}

// NewExtractRepository creates a repository. db may be nil for
// file-only operation.
func NewExtractRepository(db *sqlx.DB) *ExtractRepository {
	return &ExtractRepository{db: db}
}

// GetExcelDataset reads the Excel-side extract from a CSV or XLSX file.
func (r *ExtractRepository) GetExcelDataset(_ context.Context, source string) (domain.Dataset, error) {
	return ReadDatasetFile(source)
}

// GetSQLDataset loads the SQL-side extract. With a database attached,
// source is the extract query; otherwise it is a file path.
func (r *ExtractRepository) GetSQLDataset(ctx context.Context, source string) (domain.Dataset, error) {
	if r.db != nil {
		return QueryDataset(ctx, r.db, source)
	}
	return ReadDatasetFile(source)
}
