package layout

import (
	"strings"
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// glyphs lays out s one character per glyph starting at x
func glyphs(s string, x, y float64) []pdf.Text {
	var out []pdf.Text
	for _, r := range s {
		out = append(out, pdf.Text{X: x, Y: y, W: 5, FontSize: 10, S: string(r)})
		x += 5
	}
	return out
}

func TestBuildLinesOrdersTopToBottom(t *testing.T) {
	var texts []pdf.Text
	texts = append(texts, glyphs("second", 10, 680)...)
	texts = append(texts, glyphs("first", 10, 700)...)

	lines := BuildLines(texts, DefaultOptions())

	require.Len(t, lines, 2)
	assert.Equal(t, "first", lines[0].Text())
	assert.Equal(t, "second", lines[1].Text())
}

func TestBuildLinesSplitsWordsOnGap(t *testing.T) {
	var texts []pdf.Text
	texts = append(texts, glyphs("ALL", 10, 700)...)
	texts = append(texts, glyphs("GAMES", 40, 700)...)
	texts = append(texts, glyphs("10-5", 120, 700.5)...)

	lines := BuildLines(texts, DefaultOptions())

	require.Len(t, lines, 1)
	require.Len(t, lines[0].Words, 3)
	assert.Equal(t, "ALL", lines[0].Words[0].Text)
	assert.InDelta(t, 10, lines[0].Words[0].X0, 0.001)
	assert.InDelta(t, 25, lines[0].Words[0].X1, 0.001)
	assert.Equal(t, "ALL GAMES 10-5", lines[0].Text())
}

func TestBuildLinesSpaceGlyphBreaksWord(t *testing.T) {
	texts := glyphs("Date Opponent", 10, 500)

	lines := BuildLines(texts, DefaultOptions())

	require.Len(t, lines, 1)
	require.Len(t, lines[0].Words, 2)
	assert.Equal(t, "Opponent", lines[0].Words[1].Text)
}

func TestBuildLinesUnsortedGlyphs(t *testing.T) {
	texts := glyphs("abc", 10, 100)
	texts[0], texts[2] = texts[2], texts[0]

	lines := BuildLines(texts, DefaultOptions())

	require.Len(t, lines, 1)
	assert.Equal(t, "abc", lines[0].Text())
}

func TestPageTextFallsBackToPlain(t *testing.T) {
	p := Page{Number: 1, Plain: "raw text"}
	assert.Equal(t, "raw text", p.Text())

	p.Lines = []Line{{Y: 1, Words: []Word{{Text: "a"}, {Text: "b"}}}}
	assert.Equal(t, "a b", p.Text())
}

func TestBuildLinesEmpty(t *testing.T) {
	assert.Empty(t, BuildLines(nil, DefaultOptions()))
}

func TestPageTextOfReport(t *testing.T) {
	text, err := PageText("../../testdata/stats_report_2025.pdf", 1, DefaultOptions())

	require.NoError(t, err)
	lines := strings.Split(text, "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, "ALL GAMES 10-5 6-2 4-3 0-0", lines[2])
	assert.Equal(t, "Date Opponent Score Att.", lines[4])
	assert.Equal(t, "Feb 8 at Goucher W 14-9 212", lines[5])
}

func TestDocumentPages(t *testing.T) {
	doc, err := Open("../../testdata/stats_report_2025.pdf", DefaultOptions())
	require.NoError(t, err)
	defer doc.Close()

	assert.Equal(t, 2, doc.NumPage())

	page, err := doc.Page(2)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Number)
	require.NotEmpty(t, page.Lines)
	assert.Equal(t, "Goals by Period", page.Lines[0].Text())

	_, err = doc.Page(3)
	assert.ErrorContains(t, err, "out of range")

	_, err = Open("../../testdata/missing.pdf", DefaultOptions())
	assert.ErrorContains(t, err, "error opening PDF")
}
