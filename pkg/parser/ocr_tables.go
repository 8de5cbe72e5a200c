package parser

import (
	"fmt"
	"strings"

	"github.com/myusername/stats-report-extractor/pkg/models"
	"github.com/myusername/stats-report-extractor/pkg/ocr"
)

var (
	playerPageKeywords = []string{"PLAYER", "GP", "Pts"}
	teamPageKeywords   = []string{"TEAM STATISTICS"}
)

// playerStatColumns is the width of the numeric block that ends a player line
const playerStatColumns = 11

// ParsePlayerTable parses per-player statistics from the first recognized
// page that carries the player table header
func ParsePlayerTable(pages []ocr.Page) ([]models.PlayerStat, error) {
	page, ok := ocr.FindPage(pages, playerPageKeywords...)
	if !ok {
		return nil, fmt.Errorf("player stats image: %w", ErrNoMatchingPage)
	}

	var players []models.PlayerStat
	for _, line := range page.Lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "Total") || strings.HasPrefix(trimmed, "Opponents") {
			continue
		}
		if stat, ok := parsePlayerLine(trimmed); ok {
			players = append(players, stat)
		}
	}
	return players, nil
}

// parsePlayerLine splits a line into a name and the trailing numeric block.
// OCR noise ahead of the block stays in the name.
func parsePlayerLine(line string) (models.PlayerStat, bool) {
	parts := strings.Fields(line)
	if len(parts) < playerStatColumns+1 {
		return models.PlayerStat{}, false
	}
	nums := parts[len(parts)-playerStatColumns:]
	return models.PlayerStat{
		Player: strings.Join(parts[:len(parts)-playerStatColumns], " "),
		GP:     nums[0],
		G:      nums[1],
		A:      nums[2],
		Pts:    nums[3],
		Sh:     nums[4],
		Gw:     nums[5],
		GB:     nums[6],
		DC:     nums[7],
		TO:     nums[8],
		CT:     nums[9],
	}, true
}

// ParseTeamStats parses team-versus-opponent statistics from the first
// recognized page that carries the team statistics heading
func ParseTeamStats(pages []ocr.Page) ([]models.TeamStat, error) {
	page, ok := ocr.FindPage(pages, teamPageKeywords...)
	if !ok {
		return nil, fmt.Errorf("team statistics image: %w", ErrNoMatchingPage)
	}

	var stats []models.TeamStat
	for _, line := range page.Lines {
		parts := strings.Fields(line)
		if len(parts) < 3 {
			continue
		}
		stats = append(stats, models.TeamStat{
			Statistic: strings.Join(parts[:len(parts)-2], " "),
			SU:        parts[len(parts)-2],
			OPP:       parts[len(parts)-1],
		})
	}
	return stats, nil
}
