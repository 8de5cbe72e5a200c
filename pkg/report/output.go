package report

import (
	"fmt"
	"io"
	"log"

	"github.com/myusername/stats-report-extractor/internal/utils"
)

// Tables encodes the tables of every completed step, in run order
func Tables(res *Result) ([]utils.Table, error) {
	encoders := map[string]func() (utils.Table, error){
		StepRecords:   func() (utils.Table, error) { return utils.TableOf(StepRecords, res.Report.Records) },
		StepGames:     func() (utils.Table, error) { return utils.TableOf(StepGames, res.Report.Games) },
		StepPlayers:   func() (utils.Table, error) { return utils.TableOf(StepPlayers, res.Report.Players) },
		StepTeamStats: func() (utils.Table, error) { return utils.TableOf(StepTeamStats, res.Report.TeamStats) },
		StepPeriods:   func() (utils.Table, error) { return utils.TableOf(StepPeriods, res.Report.PeriodStats) },
	}

	var out []utils.Table
	for _, step := range Steps {
		if !res.Succeeded(step) {
			continue
		}
		t, err := encoders[step]()
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// WriteOutputs writes one CSV per completed step into dir, the optional
// workbook, and a console summary to w. It returns the written file paths.
func WriteOutputs(res *Result, dir, workbook string, w io.Writer) ([]string, error) {
	tbls, err := Tables(res)
	if err != nil {
		return nil, err
	}

	var written []string
	for _, t := range tbls {
		if w != nil {
			utils.DisplayTable(w, t)
		}
		path, err := utils.SaveCSV(t, dir)
		if err != nil {
			return written, err
		}
		log.Printf("Saved %s (%d rows) to %s", t.Name, t.Rows(), path)
		written = append(written, path)
	}

	if workbook != "" {
		if err := utils.SaveWorkbook(tbls, workbook); err != nil {
			return written, fmt.Errorf("error saving workbook: %w", err)
		}
		log.Printf("Saved workbook to %s", workbook)
		written = append(written, workbook)
	}
	return written, nil
}
