// Package tables detects stream-style tables in the text layer of a PDF
package tables

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/myusername/stats-report-extractor/pkg/layout"
)

// Table is a detected grid of text cells
type Table struct {
	Page int
	Rows [][]string
}

// Options controls table detection
type Options struct {
	// Pages selects pages, e.g. "1-end", "2", "1,3-4"
	Pages string
	// CellGap is the word gap, as a multiple of the font size, that separates two cells
	CellGap float64
	// RowGap is the vertical gap, as a multiple of the median line pitch, that ends a table
	RowGap float64
	// MinRows is the smallest table kept, title row included
	MinRows int
	Layout  layout.Options
}

// DefaultOptions returns the detection settings used for statistics reports
func DefaultOptions() Options {
	return Options{
		Pages:   "1-end",
		CellGap: 1.0,
		RowGap:  1.8,
		MinRows: 3,
		Layout:  layout.DefaultOptions(),
	}
}

// ReadPDF detects tables on the selected pages of the PDF at path
func ReadPDF(path string, opts Options) ([]Table, error) {
	doc, err := layout.Open(path, opts.Layout)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	pages, err := ParsePages(opts.Pages, doc.NumPage())
	if err != nil {
		return nil, err
	}

	var found []Table
	for _, n := range pages {
		page, err := doc.Page(n)
		if err != nil {
			return nil, err
		}
		found = append(found, Detect(n, page.Lines, opts)...)
	}
	return found, nil
}

// ParsePages expands a page selection such as "1-end" or "1,3-4" against a
// document of total pages
func ParsePages(sel string, total int) ([]int, error) {
	sel = strings.TrimSpace(sel)
	if sel == "" || sel == "all" {
		sel = "1-end"
	}

	seen := make(map[int]bool)
	var pages []int
	add := func(n int) {
		if n >= 1 && n <= total && !seen[n] {
			seen[n] = true
			pages = append(pages, n)
		}
	}

	for _, part := range strings.Split(sel, ",") {
		part = strings.TrimSpace(part)
		from, to, isRange := strings.Cut(part, "-")
		start, err := pageNumber(from, total)
		if err != nil {
			return nil, fmt.Errorf("invalid page selection %q: %w", sel, err)
		}
		end := start
		if isRange {
			end, err = pageNumber(to, total)
			if err != nil {
				return nil, fmt.Errorf("invalid page selection %q: %w", sel, err)
			}
		}
		for n := start; n <= end; n++ {
			add(n)
		}
	}
	return pages, nil
}

func pageNumber(s string, total int) (int, error) {
	s = strings.TrimSpace(s)
	if s == "end" {
		return total, nil
	}
	return strconv.Atoi(s)
}

// Detect finds tables among the lines of one page. A run of multi-cell lines
// forms a table body; a single-cell line directly above a body becomes the
// table's title row.
func Detect(page int, lines []layout.Line, opts Options) []Table {
	pitch := medianPitch(lines)

	var found []Table
	var block [][]cell
	var prevY float64

	flush := func() {
		if t, ok := buildTable(page, block, opts.MinRows); ok {
			found = append(found, t)
		}
		block = nil
	}

	for _, ln := range lines {
		cells := splitCells(ln, opts.CellGap)
		if len(cells) == 0 {
			continue
		}
		if len(block) > 0 && pitch > 0 && prevY-ln.Y > opts.RowGap*pitch {
			flush()
		}
		if len(cells) == 1 {
			flush()
		}
		block = append(block, cells)
		prevY = ln.Y
	}
	flush()

	return found
}

type cell struct {
	x0, x1 float64
	text   string
}

func (c cell) center() float64 { return (c.x0 + c.x1) / 2 }

// splitCells merges the words of a line into cells separated by wide gaps
func splitCells(ln layout.Line, cellGap float64) []cell {
	var cells []cell
	for _, w := range ln.Words {
		if w.Text == "" {
			continue
		}
		if n := len(cells); n > 0 && w.X0-cells[n-1].x1 <= cellGap*size(w) {
			cells[n-1].text += " " + w.Text
			cells[n-1].x1 = w.X1
			continue
		}
		cells = append(cells, cell{x0: w.X0, x1: w.X1, text: w.Text})
	}
	return cells
}

func size(w layout.Word) float64 {
	if w.Size > 0 {
		return w.Size
	}
	return 1
}

func buildTable(page int, block [][]cell, minRows int) (Table, bool) {
	if len(block) < minRows {
		return Table{}, false
	}

	// The widest row defines the column anchors
	var anchors []cell
	for _, row := range block {
		if len(row) > len(anchors) {
			anchors = row
		}
	}
	if len(anchors) < 2 {
		return Table{}, false
	}

	rows := make([][]string, 0, len(block))
	for _, row := range block {
		out := make([]string, len(anchors))
		for _, c := range row {
			col := column(anchors, c)
			if out[col] != "" {
				out[col] += " " + c.text
			} else {
				out[col] = c.text
			}
		}
		rows = append(rows, out)
	}
	return Table{Page: page, Rows: rows}, true
}

// column returns the anchor overlapping c the most, or the nearest by centre
func column(anchors []cell, c cell) int {
	best, bestOverlap := -1, 0.0
	for i, a := range anchors {
		if o := min(a.x1, c.x1) - max(a.x0, c.x0); o > bestOverlap {
			best, bestOverlap = i, o
		}
	}
	if best >= 0 {
		return best
	}

	best = 0
	for i, a := range anchors {
		if abs(a.center()-c.center()) < abs(anchors[best].center()-c.center()) {
			best = i
		}
	}
	return best
}

func medianPitch(lines []layout.Line) float64 {
	var gaps []float64
	for i := 1; i < len(lines); i++ {
		if d := lines[i-1].Y - lines[i].Y; d > 0 {
			gaps = append(gaps, d)
		}
	}
	if len(gaps) == 0 {
		return 0
	}
	sort.Float64s(gaps)
	return gaps[len(gaps)/2]
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
