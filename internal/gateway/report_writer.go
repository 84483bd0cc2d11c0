package gateway

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"gl-reconciler/internal/domain"
)

// WriteReportCSV writes the report as delimited text, header first.
func WriteReportCSV(w io.Writer, report []domain.ReportRow) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(domain.ReportHeader()); err != nil {
		return fmt.Errorf("failed to write report header: %w", err)
	}
	for _, row := range report {
		if err := writer.Write(row.Fields()); err != nil {
			return fmt.Errorf("failed to write report row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteReportJSON writes the report as a JSON array, one object per
// row, field names matching the CSV header.
func WriteReportJSON(w io.Writer, report []domain.ReportRow) error {
	if report == nil {
		report = []domain.ReportRow{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// WriteReportExcel saves the report as an XLSX workbook with a single
// styled sheet.
func WriteReportExcel(outputPath string, report []domain.ReportRow) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Reconciliation Report"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create report sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to drop default sheet: %w", err)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 12},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
	})

	for i, header := range domain.ReportHeader() {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for r, row := range report {
		for c, value := range row.Fields() {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			f.SetCellValue(sheetName, cell, value)
		}
	}

	f.SetColWidth(sheetName, "A", "B", 18)
	f.SetColWidth(sheetName, "C", "C", 60)
	f.SetColWidth(sheetName, "D", "E", 25)

	if err := f.SaveAs(outputPath); err != nil {
		return fmt.Errorf("failed to save report workbook: %w", err)
	}
	return nil
}
