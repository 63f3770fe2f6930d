package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// RenderXLSX writes the report as a single-sheet workbook.
func RenderXLSX(report Report) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Session Stats"
	if _, err := f.NewSheet(sheet); err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("delete default sheet: %w", err)
	}

	if err := f.SetCellValue(sheet, "A1", report.Title); err != nil {
		return nil, fmt.Errorf("write title: %w", err)
	}
	if err := f.SetCellValue(sheet, "A2", "Generated "+report.GeneratedAt.Format("2006-01-02 15:04")); err != nil {
		return nil, fmt.Errorf("write timestamp: %w", err)
	}

	const headerRow = 4
	for i, h := range columnHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, headerRow)
		if err != nil {
			return nil, fmt.Errorf("header cell name: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("write header %q: %w", h, err)
		}
	}

	row := headerRow + 1
	for _, item := range report.Rows {
		cells := map[string]any{
			fmt.Sprintf("A%d", row): item.Name,
			fmt.Sprintf("B%d", row): item.JerseyNumber,
			fmt.Sprintf("C%d", row): item.TotalPasses,
			fmt.Sprintf("D%d", row): item.AverageCell(),
		}
		for cell, value := range cells {
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("write cell %s: %w", cell, err)
			}
		}
		row++
	}

	if err := f.SetColWidth(sheet, "A", "A", 24); err != nil {
		return nil, fmt.Errorf("set column width: %w", err)
	}
	if err := f.SetColWidth(sheet, "B", "D", 14); err != nil {
		return nil, fmt.Errorf("set column width: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
