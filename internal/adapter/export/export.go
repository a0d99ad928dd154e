// Package export writes the lake comparison table in downloadable formats.
// Values are written raw, not in the display formatting of the page.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/couchcryptid/lake-extent-dashboard/internal/domain"
)

// SheetName is the worksheet holding the comparison table.
const SheetName = "Lake Comparison"

// Content types for the export formats.
const (
	CSVContentType  = "text/csv; charset=utf-8"
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var header = []string{"name", "area_2020", "area_2024", "change", "trend"}

// WriteComparisonCSV writes the comparison table as CSV.
func WriteComparisonCSV(w io.Writer, lakes domain.LakeComparison) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, l := range lakes {
		row := []string{
			l.Name,
			strconv.FormatFloat(l.Area2020, 'f', -1, 64),
			strconv.FormatFloat(l.Area2024, 'f', -1, 64),
			strconv.FormatFloat(l.Change, 'f', -1, 64),
			l.Trend,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row %q: %w", l.Name, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteComparisonXLSX writes the comparison table as an Excel workbook with
// a bold header row and numeric cells.
func WriteComparisonXLSX(w io.Writer, lakes domain.LakeComparison) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	headerRow := make([]any, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &headerRow); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	if err := f.SetCellStyle(SheetName, "A1", "E1", bold); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	for i, l := range lakes {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{l.Name, l.Area2020, l.Area2024, l.Change, l.Trend}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("write row %q: %w", l.Name, err)
		}
	}
	if err := f.SetColWidth(SheetName, "A", "A", 18); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}
	if err := f.SetColWidth(SheetName, "B", "E", 12); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
