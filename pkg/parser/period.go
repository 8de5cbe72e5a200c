package parser

import (
	"log"
	"strings"

	"github.com/myusername/stats-report-extractor/pkg/models"
	"github.com/myusername/stats-report-extractor/pkg/tables"
)

// PeriodStatistics lists the per-period tables in the order they are combined
var PeriodStatistics = []string{"Goals by Period", "Shots by Period", "Shots on Goal"}

// FindTableByHeader returns the first table whose title or header row
// mentions keyword, case-insensitively
func FindTableByHeader(candidates []tables.Table, keyword string) (tables.Table, bool) {
	key := strings.ToLower(keyword)
	for _, t := range candidates {
		if anyContains(headerCells(t), key) {
			return t, true
		}
		if anyContains(columnLabels(t), key) {
			return t, true
		}
	}
	return tables.Table{}, false
}

// headerCells flattens the first two rows of a table
func headerCells(t tables.Table) []string {
	var cells []string
	for i := 0; i < len(t.Rows) && i < 2; i++ {
		cells = append(cells, t.Rows[i]...)
	}
	return cells
}

// columnLabels returns the column names after promoting the first row to the header
func columnLabels(t tables.Table) []string {
	if len(t.Rows) == 0 {
		return nil
	}
	return t.Rows[0]
}

func anyContains(cells []string, key string) bool {
	for _, c := range cells {
		if strings.Contains(strings.ToLower(c), key) {
			return true
		}
	}
	return false
}

// ParsePeriodStats finds each per-period table and reshapes it into one
// row per (team, period). Missing or malformed tables are skipped with a warning.
func ParsePeriodStats(candidates []tables.Table) []models.PeriodStat {
	var all []models.PeriodStat
	for _, stat := range PeriodStatistics {
		t, ok := FindTableByHeader(candidates, stat)
		if !ok {
			log.Printf("Warning: Table not found for '%s' - skipping.", stat)
			continue
		}
		rows, ok := ReshapePeriodTable(t, strings.ReplaceAll(stat, " by Period", ""))
		if !ok {
			log.Printf("Skipping malformed table: %s", stat)
			continue
		}
		all = append(all, rows...)
	}
	return all
}

// ReshapePeriodTable turns a wide table (title row, header row, one row per
// team) into long form. It reports false when no Team column can be recovered.
func ReshapePeriodTable(t tables.Table, statistic string) ([]models.PeriodStat, bool) {
	if len(t.Rows) < 2 || len(t.Rows[1]) == 0 {
		return nil, false
	}

	// Every column labelled like the first one becomes Team, so blank padding
	// columns collapse into it below
	header := append([]string(nil), t.Rows[1]...)
	if old := header[0]; old != "Team" {
		for i, name := range header {
			if name == old {
				header[i] = "Team"
			}
		}
	}

	// Keep the first column of each name
	seen := make(map[string]bool)
	var keep []int
	for i, name := range header {
		if seen[name] {
			continue
		}
		seen[name] = true
		keep = append(keep, i)
	}

	data := t.Rows[2:]
	var out []models.PeriodStat
	for _, col := range keep[1:] {
		for _, row := range data {
			out = append(out, models.PeriodStat{
				Team:      cellAt(row, 0),
				Period:    header[col],
				Value:     cellAt(row, col),
				Statistic: statistic,
			})
		}
	}
	return out, true
}

func cellAt(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
