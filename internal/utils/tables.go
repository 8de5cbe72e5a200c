// Package utils provides output helpers for the stats-report-extractor
package utils

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
)

// Table is one named output table, encoded once and rendered to every sink
type Table struct {
	Name string
	// Data is the CSV encoding, header row first
	Data string
	// Records is Data split into cells, header row first
	Records [][]string
}

// Rows returns the number of data rows
func (t Table) Rows() int {
	if len(t.Records) == 0 {
		return 0
	}
	return len(t.Records) - 1
}

// TableOf encodes rows using their csv struct tags
func TableOf[T any](name string, rows []T) (Table, error) {
	if rows == nil {
		rows = []T{}
	}
	data, err := gocsv.MarshalString(&rows)
	if err != nil {
		return Table{}, fmt.Errorf("failed to encode %s: %w", name, err)
	}
	records, err := csv.NewReader(strings.NewReader(data)).ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return Table{Name: name, Data: data, Records: records}, nil
}

// SaveCSV writes the table to <dir>/<name>.csv and returns the file path
func SaveCSV(t Table, dir string) (string, error) {
	filename := filepath.Join(dir, t.Name+".csv")
	if err := os.WriteFile(filename, []byte(t.Data), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return filename, nil
}
