package parser

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/myusername/stats-report-extractor/pkg/models"
)

var recordRegex = regexp.MustCompile(
	`^(ALL GAMES|CONFERENCE|NON-CONFERENCE)\s+` +
		`(\d+-\d+)\s+` +
		`(\d+-\d+)\s+` +
		`(\d+-\d+)\s+` +
		`(\d+-\d+)`)

// ExtractRecordSummary parses the overall, home, away and neutral records
// from the first page text. Lines that do not match are skipped.
func ExtractRecordSummary(text string) []models.RecordSummary {
	title := cases.Title(language.English)

	var records []models.RecordSummary
	for _, line := range strings.Split(text, "\n") {
		m := recordRegex.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		records = append(records, models.RecordSummary{
			Type:    title.String(m[1]),
			Overall: m[2],
			Home:    m[3],
			Away:    m[4],
			Neutral: m[5],
		})
	}
	return records
}
