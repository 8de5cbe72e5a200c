// Package layout rebuilds words and lines from the positioned text layer of PDF pages
package layout

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

// Word is a run of glyphs on one line with no gap wider than the word gap
type Word struct {
	X0   float64
	X1   float64
	Size float64
	Text string
}

// Line is a group of words sharing a baseline
type Line struct {
	Y     float64
	Words []Word
}

// Text returns the words of the line joined by single spaces
func (l Line) Text() string {
	parts := make([]string, 0, len(l.Words))
	for _, w := range l.Words {
		parts = append(parts, w.Text)
	}
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}

// Page is the rebuilt text layer of one page
type Page struct {
	Number int
	Lines  []Line
	// Plain is the unpositioned text, used when the page has no positioned rows
	Plain string
}

// Text returns the page text with one line per row, top to bottom
func (p Page) Text() string {
	if len(p.Lines) == 0 {
		return p.Plain
	}
	rows := make([]string, 0, len(p.Lines))
	for _, l := range p.Lines {
		rows = append(rows, l.Text())
	}
	return strings.Join(rows, "\n")
}

// Options controls how glyphs are grouped
type Options struct {
	// RowTolerance is the largest baseline difference, in points, for two glyphs to share a line
	RowTolerance float64
	// WordGap is the horizontal gap, as a fraction of the font size, that starts a new word
	WordGap float64
}

// DefaultOptions returns the grouping used for typical statistics reports
func DefaultOptions() Options {
	return Options{RowTolerance: 2.0, WordGap: 0.25}
}

// Document is an open PDF whose pages can be rebuilt on demand
type Document struct {
	f    *os.File
	r    *pdf.Reader
	opts Options
}

// Open opens the PDF at path
func Open(path string, opts Options) (*Document, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening PDF: %w", err)
	}
	return &Document{f: f, r: r, opts: opts}, nil
}

// Close releases the underlying file
func (d *Document) Close() error {
	return d.f.Close()
}

// NumPage returns the number of pages in the document
func (d *Document) NumPage() int {
	return d.r.NumPage()
}

// Page rebuilds page n (1-based)
func (d *Document) Page(n int) (Page, error) {
	if n < 1 || n > d.r.NumPage() {
		return Page{}, fmt.Errorf("page %d out of range (document has %d pages)", n, d.r.NumPage())
	}
	p := d.r.Page(n)
	if p.V.IsNull() {
		return Page{Number: n}, nil
	}

	rows, err := p.GetTextByRow()
	if err != nil {
		return Page{}, fmt.Errorf("error reading text rows of page %d: %w", n, err)
	}
	var texts []pdf.Text
	for _, row := range rows {
		texts = append(texts, row.Content...)
	}
	page := Page{Number: n, Lines: BuildLines(texts, d.opts)}

	if len(page.Lines) == 0 {
		plain, err := p.GetPlainText(nil)
		if err != nil {
			return Page{}, fmt.Errorf("error extracting text from page %d: %w", n, err)
		}
		page.Plain = plain
	}
	return page, nil
}

// PageText opens path and returns the rebuilt text of page n
func PageText(path string, n int, opts Options) (string, error) {
	doc, err := Open(path, opts)
	if err != nil {
		return "", err
	}
	defer doc.Close()

	page, err := doc.Page(n)
	if err != nil {
		return "", err
	}
	return page.Text(), nil
}

// BuildLines groups positioned glyphs into lines ordered top to bottom,
// each with its words ordered left to right
func BuildLines(texts []pdf.Text, opts Options) []Line {
	type row struct {
		y      float64
		glyphs []pdf.Text
	}
	var rows []*row

	for _, t := range texts {
		if t.S == "" {
			continue
		}
		var placed bool
		for _, r := range rows {
			if abs(r.y-t.Y) < opts.RowTolerance {
				r.glyphs = append(r.glyphs, t)
				placed = true
				break
			}
		}
		if !placed {
			rows = append(rows, &row{y: t.Y, glyphs: []pdf.Text{t}})
		}
	}

	// PDF space grows upward, so the top line has the largest Y
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].y > rows[j].y })

	lines := make([]Line, 0, len(rows))
	for _, r := range rows {
		sort.SliceStable(r.glyphs, func(i, j int) bool { return r.glyphs[i].X < r.glyphs[j].X })
		words := buildWords(r.glyphs, opts.WordGap)
		if len(words) == 0 {
			continue
		}
		lines = append(lines, Line{Y: r.y, Words: words})
	}
	return lines
}

func buildWords(glyphs []pdf.Text, wordGap float64) []Word {
	var words []Word
	var cur *Word

	for _, g := range glyphs {
		if strings.TrimSpace(g.S) == "" {
			cur = nil
			continue
		}
		end := g.X + glyphWidth(g)
		if cur != nil && g.X-cur.X1 <= wordGap*fontSize(g) {
			cur.Text += g.S
			if end > cur.X1 {
				cur.X1 = end
			}
			continue
		}
		words = append(words, Word{X0: g.X, X1: end, Size: fontSize(g), Text: g.S})
		cur = &words[len(words)-1]
	}

	for i := range words {
		words[i].Text = strings.TrimSpace(words[i].Text)
	}
	return words
}

func glyphWidth(g pdf.Text) float64 {
	if g.W > 0 {
		return g.W
	}
	return 0.5 * fontSize(g) * float64(utf8.RuneCountInString(g.S))
}

func fontSize(g pdf.Text) float64 {
	if g.FontSize > 0 {
		return g.FontSize
	}
	return 1
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
