package utils

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// SaveWorkbook writes every table to its own sheet of one XLSX file
func SaveWorkbook(tables []Table, filename string) error {
	f := excelize.NewFile()
	defer f.Close()

	const defaultSheet = "Sheet1"
	for _, t := range tables {
		if _, err := f.NewSheet(t.Name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", t.Name, err)
		}
		for i, record := range t.Records {
			row := make([]interface{}, len(record))
			for j, v := range record {
				row[j] = v
			}
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(t.Name, cell, &row); err != nil {
				return fmt.Errorf("failed to write sheet %s: %w", t.Name, err)
			}
		}
	}

	if len(tables) > 0 {
		if err := f.DeleteSheet(defaultSheet); err != nil {
			return fmt.Errorf("failed to remove default sheet: %w", err)
		}
	}
	if err := f.SaveAs(filename); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
