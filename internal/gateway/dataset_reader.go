package gateway

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"gl-reconciler/internal/domain"
)

// ReadDatasetFile loads a tabular extract from disk, picking the parser
// by file extension: .xlsx/.xlsm go through excelize, everything else
// is treated as CSV.
func ReadDatasetFile(path string) (domain.Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return readExcelDataset(path)
	default:
		return readCSVDataset(path)
	}
}

func readCSVDataset(path string) (domain.Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("failed to open extract file %s: %w", path, err)
	}
	defer file.Close()

	ds, err := ReadCSV(file)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("error reading %s: %w", path, err)
	}
	return ds, nil
}

// ReadCSV parses a header row plus data rows from a CSV stream into a
// Dataset. Ragged rows are tolerated: short rows leave trailing columns
// null, extra cells are dropped.
func ReadCSV(r io.Reader) (domain.Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return domain.Dataset{}, fmt.Errorf("extract is empty: missing header row")
	}
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("failed to read header: %w", err)
	}

	ds := domain.Dataset{Columns: header}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return domain.Dataset{}, fmt.Errorf("error reading record: %w", err)
		}
		ds.Rows = append(ds.Rows, recordToRow(header, record))
	}
	return ds, nil
}

func readExcelDataset(path string) (domain.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("failed to open Excel file %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return domain.Dataset{}, fmt.Errorf("no sheets found in Excel file %s", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("failed to read rows from %s: %w", path, err)
	}
	if len(rows) == 0 {
		return domain.Dataset{}, fmt.Errorf("extract is empty: missing header row")
	}

	ds := domain.Dataset{Columns: rows[0]}
	for _, record := range rows[1:] {
		ds.Rows = append(ds.Rows, recordToRow(rows[0], record))
	}
	return ds, nil
}

func recordToRow(header, record []string) domain.Row {
	row := make(domain.Row, len(header))
	for i, col := range header {
		if i < len(record) {
			row[col] = record[i]
		} else {
			row[col] = ""
		}
	}
	return row
}
