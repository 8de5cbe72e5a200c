package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/myusername/stats-report-extractor/pkg/models"
)

// ParseGameTable parses the game-by-game table that follows the
// "Date ... Opponent ... Score ... Att." header on the first page
func ParseGameTable(text, year string) ([]models.GameResult, error) {
	lines := strings.Split(text, "\n")

	// Find the header line
	headerIdx := -1
	for i, l := range lines {
		if isGameHeader(l) {
			headerIdx = i
			break
		}
	}
	if headerIdx == -1 {
		return nil, ErrGameHeaderNotFound
	}

	// Parse game lines until the table ends
	var games []models.GameResult
	for _, line := range lines[headerIdx+1:] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "PLAYER") || strings.HasPrefix(trimmed, "TEAM STATISTICS") {
			break
		}

		parts := strings.Fields(line)
		if len(parts) < 4 {
			continue
		}

		// Attendance is the last token and must be a non-negative count
		att, err := strconv.Atoi(parts[len(parts)-1])
		if err == nil && att < 0 {
			err = ErrNegativeAttendance
		}
		if err != nil {
			return nil, fmt.Errorf("invalid attendance in game line %q: %w", trimmed, err)
		}
		var opponent string
		if len(parts) > 5 {
			opponent = strings.Join(parts[2:len(parts)-3], " ")
		}
		games = append(games, models.GameResult{
			Date:     strings.Join(parts[0:2], " ") + " " + year,
			Opponent: opponent,
			Score:    parts[len(parts)-3] + " " + parts[len(parts)-2],
			Att:      att,
		})
	}
	return games, nil
}

func isGameHeader(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "Date") &&
		strings.Contains(line, "Opponent") &&
		strings.Contains(line, "Score") &&
		strings.Contains(line, "Att.")
}

// FormatGameLine renders a game back into the single-spaced line layout it was parsed from
func FormatGameLine(g models.GameResult, year string) string {
	date := strings.TrimSpace(strings.TrimSuffix(g.Date, " "+year))
	parts := []string{date}
	if g.Opponent != "" {
		parts = append(parts, g.Opponent)
	}
	parts = append(parts, g.Score, strconv.Itoa(g.Att))
	return strings.Join(parts, " ")
}
