package gateway

import (
	"context"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"gl-reconciler/internal/domain"
)

// OpenMySQL connects to the ledger database holding the SQL-side
// extract.
func OpenMySQL(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

// QueryDataset runs a query and materializes the full result set as a
// Dataset. Column order follows the select list; SQL NULL becomes a
// null cell.
func QueryDataset(ctx context.Context, db *sqlx.DB, query string) (domain.Dataset, error) {
	rows, err := db.QueryxContext(ctx, query)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("extract query failed: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("could not read result columns: %w", err)
	}

	ds := domain.Dataset{Columns: cols}
	for rows.Next() {
		vals, err := rows.SliceScan()
		if err != nil {
			return domain.Dataset{}, fmt.Errorf("could not scan result row: %w", err)
		}
		row := make(domain.Row, len(cols))
		for i, col := range cols {
			row[col] = cellString(vals[i])
		}
		ds.Rows = append(ds.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return domain.Dataset{}, fmt.Errorf("result iteration failed: %w", err)
	}
	return ds, nil
}

func cellString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(val)
	case time.Time:
		return val.Format("2006-01-02 15:04:05")
	default:
		return fmt.Sprintf("%v", val)
	}
}
