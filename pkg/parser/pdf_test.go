package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myusername/stats-report-extractor/pkg/layout"
	"github.com/myusername/stats-report-extractor/pkg/models"
	"github.com/myusername/stats-report-extractor/pkg/tables"
)

const reportPDF = "../../testdata/stats_report_2025.pdf"

func TestFirstPageOfReport(t *testing.T) {
	text, err := ReadFirstPageText(reportPDF, layout.DefaultOptions())
	require.NoError(t, err)

	records := ExtractRecordSummary(text)
	assert.Equal(t, []models.RecordSummary{
		{Type: "All Games", Overall: "10-5", Home: "6-2", Away: "4-3", Neutral: "0-0"},
		{Type: "Conference", Overall: "6-1", Home: "3-1", Away: "3-0", Neutral: "0-0"},
	}, records)

	games, err := ParseGameTable(text, "2025")
	require.NoError(t, err)
	assert.Equal(t, []models.GameResult{
		{Date: "Feb 8 2025", Opponent: "at Goucher", Score: "W 14-9", Att: 212},
		{Date: "Feb 12 2025", Opponent: "VS Mary Washington", Score: "L 8-10", Att: 350},
		{Date: "Mar 1 2025", Opponent: "#3 Salisbury", Score: "W 12-11", Att: 1045},
	}, games)
}

func TestReadFirstPageTextMissingFile(t *testing.T) {
	_, err := ReadFirstPageText("../../testdata/missing.pdf", layout.DefaultOptions())
	assert.ErrorContains(t, err, "error reading first page text")
}

func TestPeriodStatsOfReport(t *testing.T) {
	found, err := tables.ReadPDF(reportPDF, tables.DefaultOptions())
	require.NoError(t, err)

	rows := ParsePeriodStats(found)

	// goals 2x3 (the footnote column is dropped), shots 2x2
	require.Len(t, rows, 10)
	assert.Equal(t, models.PeriodStat{Team: "Stevenson", Period: "1st", Value: "5", Statistic: "Goals"}, rows[0])
	assert.Equal(t, models.PeriodStat{Team: "Opponents", Period: "Total", Value: "7", Statistic: "Goals"}, rows[5])
	assert.Equal(t, models.PeriodStat{Team: "Stevenson", Period: "1st", Value: "15", Statistic: "Shots"}, rows[6])
	assert.Equal(t, models.PeriodStat{Team: "Opponents", Period: "2nd", Value: "9", Statistic: "Shots"}, rows[9])
}
