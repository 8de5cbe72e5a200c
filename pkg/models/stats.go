// Package models contains data structures for sports report statistics
package models

// RecordSummary holds a win-loss record line for one game category
type RecordSummary struct {
	Type    string `csv:"Type"`
	Overall string `csv:"Overall"`
	Home    string `csv:"Home"`
	Away    string `csv:"Away"`
	Neutral string `csv:"Neutral"`
}

// GameResult holds one row of the game-by-game log
type GameResult struct {
	Date     string `csv:"Date"`
	Opponent string `csv:"Opponent"`
	Score    string `csv:"Score"`
	Att      int    `csv:"Att"`
}

// PlayerStat holds statistics for a player
type PlayerStat struct {
	Player string `csv:"Player"`
	GP     string `csv:"GP"`
	G      string `csv:"G"`
	A      string `csv:"A"`
	Pts    string `csv:"Pts"`
	Sh     string `csv:"Sh"`
	Gw     string `csv:"Gw"`
	GB     string `csv:"GB"`
	DC     string `csv:"DC"`
	TO     string `csv:"TO"`
	CT     string `csv:"CT"`
}

// TeamStat holds one team-versus-opponent statistic
type TeamStat struct {
	Statistic string `csv:"TEAM STATISTICS"`
	SU        string `csv:"SU"`
	OPP       string `csv:"OPP"`
}

// PeriodStat holds one (team, period) value of a per-period statistic
type PeriodStat struct {
	Team      string `csv:"Team"`
	Period    string `csv:"Period"`
	Value     string `csv:"Value"`
	Statistic string `csv:"Statistic"`
}

// Report holds every table extracted from a single document
type Report struct {
	Source      string
	Year        string
	Records     []RecordSummary
	Games       []GameResult
	Players     []PlayerStat
	TeamStats   []TeamStat
	PeriodStats []PeriodStat
}
