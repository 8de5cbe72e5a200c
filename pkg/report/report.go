// Package report runs every extractor over one statistics report
package report

import (
	"errors"
	"fmt"
	"log"

	"github.com/myusername/stats-report-extractor/internal/config"
	"github.com/myusername/stats-report-extractor/pkg/layout"
	"github.com/myusername/stats-report-extractor/pkg/models"
	"github.com/myusername/stats-report-extractor/pkg/ocr"
	"github.com/myusername/stats-report-extractor/pkg/parser"
	"github.com/myusername/stats-report-extractor/pkg/tables"
)

// Step names double as output file names
const (
	StepRecords   = "record_summary"
	StepGames     = "game_stats"
	StepPlayers   = "player_stats"
	StepTeamStats = "team_stats"
	StepPeriods   = "period_stats"
)

// Steps lists every step in run order
var Steps = []string{StepRecords, StepGames, StepPlayers, StepTeamStats, StepPeriods}

// StepError records the failure of one extraction step
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Services reads the document. Each service is called at most once per run
// and its result shared by the extractors that need it.
type Services struct {
	FirstPageText  func(path string) (string, error)
	RecognizePages func(path string) ([]ocr.Page, error)
	DetectTables   func(path string) ([]tables.Table, error)
}

// NewServices returns the PDF-backed services configured by cfg
func NewServices(cfg config.Config) Services {
	layoutOpts := layout.Options{
		RowTolerance: cfg.Tables.RowTolerance,
		WordGap:      cfg.Tables.WordGap,
	}
	ocrOpts := ocr.Options{
		DPI:            cfg.OCR.DPI,
		Language:       cfg.OCR.Language,
		TessdataPrefix: cfg.OCR.TessdataPrefix,
	}
	tableOpts := tables.Options{
		Pages:   cfg.Tables.Pages,
		CellGap: cfg.Tables.CellGap,
		RowGap:  cfg.Tables.RowGap,
		MinRows: cfg.Tables.MinRows,
		Layout:  layoutOpts,
	}

	return Services{
		FirstPageText: func(path string) (string, error) {
			return parser.ReadFirstPageText(path, layoutOpts)
		},
		RecognizePages: func(path string) ([]ocr.Page, error) {
			return ocr.RecognizeDocument(path, ocrOpts)
		},
		DetectTables: func(path string) ([]tables.Table, error) {
			return tables.ReadPDF(path, tableOpts)
		},
	}
}

// Result is the outcome of one run
type Result struct {
	Report models.Report
	// Completed lists the steps that succeeded, in run order
	Completed []string
	Errors    []error
}

// Succeeded reports whether step completed
func (r *Result) Succeeded(step string) bool {
	for _, s := range r.Completed {
		if s == step {
			return true
		}
	}
	return false
}

// Err joins the step errors, or returns nil when every step succeeded
func (r *Result) Err() error {
	return errors.Join(r.Errors...)
}

func (r *Result) done(step string, rows int) {
	log.Printf("Extracted %d rows for %s", rows, step)
	r.Completed = append(r.Completed, step)
}

func (r *Result) fail(step string, err error) {
	log.Printf("Error in %s: %v", step, err)
	r.Errors = append(r.Errors, &StepError{Step: step, Err: err})
}

// Runner runs the extraction steps in order, isolating their failures
type Runner struct {
	svc Services
	// ocrRequired turns a missing OCR page into a step failure instead of an empty table
	ocrRequired bool
}

// NewRunner creates a Runner over svc
func NewRunner(svc Services, ocrRequired bool) *Runner {
	return &Runner{svc: svc, ocrRequired: ocrRequired}
}

// Run extracts every table from the document at path
func (r *Runner) Run(path, year string) *Result {
	res := &Result{Report: models.Report{Source: path, Year: year}}

	// Text layer: record summary and game log
	text, err := r.svc.FirstPageText(path)
	if err != nil {
		res.fail(StepRecords, err)
		res.fail(StepGames, err)
	} else {
		res.Report.Records = parser.ExtractRecordSummary(text)
		res.done(StepRecords, len(res.Report.Records))

		if games, err := parser.ParseGameTable(text, year); err != nil {
			res.fail(StepGames, err)
		} else {
			res.Report.Games = games
			res.done(StepGames, len(games))
		}
	}

	// OCR: player and team statistics
	pages, err := r.svc.RecognizePages(path)
	if err != nil {
		res.fail(StepPlayers, err)
		res.fail(StepTeamStats, err)
	} else {
		players, err := parser.ParsePlayerTable(pages)
		if r.ocrStepOK(res, StepPlayers, err) {
			res.Report.Players = players
			res.done(StepPlayers, len(players))
		}

		teamStats, err := parser.ParseTeamStats(pages)
		if r.ocrStepOK(res, StepTeamStats, err) {
			res.Report.TeamStats = teamStats
			res.done(StepTeamStats, len(teamStats))
		}
	}

	// Detected tables: per-period statistics
	found, err := r.svc.DetectTables(path)
	if err != nil {
		res.fail(StepPeriods, err)
	} else {
		log.Printf("Detected %d tables", len(found))
		res.Report.PeriodStats = parser.ParsePeriodStats(found)
		res.done(StepPeriods, len(res.Report.PeriodStats))
	}

	return res
}

// ocrStepOK records err for step and reports whether the step's rows should be kept
func (r *Runner) ocrStepOK(res *Result, step string, err error) bool {
	switch {
	case err == nil:
		return true
	case errors.Is(err, parser.ErrNoMatchingPage) && !r.ocrRequired:
		log.Printf("Warning: %v - writing empty %s.", err, step)
		return true
	default:
		res.fail(step, err)
		return false
	}
}
