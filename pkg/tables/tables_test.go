package tables

import (
	"testing"

	"github.com/myusername/stats-report-extractor/pkg/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// line builds a layout line from cells given as x position and text
func line(y float64, cells ...any) layout.Line {
	ln := layout.Line{Y: y}
	for i := 0; i+1 < len(cells); i += 2 {
		x := cells[i].(float64)
		text := cells[i+1].(string)
		ln.Words = append(ln.Words, layout.Word{X0: x, X1: x + 5*float64(len(text)), Size: 10, Text: text})
	}
	return ln
}

func TestDetectTitledTable(t *testing.T) {
	lines := []layout.Line{
		line(700, 50.0, "Goals by Period"),
		line(688, 50.0, "Team", 150.0, "1st", 200.0, "2nd", 250.0, "Total"),
		line(676, 50.0, "Stevenson", 150.0, "5", 200.0, "7", 250.0, "12"),
		line(664, 50.0, "Opponents", 150.0, "3", 200.0, "4", 250.0, "7"),
	}

	found := Detect(2, lines, DefaultOptions())

	require.Len(t, found, 1)
	tbl := found[0]
	assert.Equal(t, 2, tbl.Page)
	require.Len(t, tbl.Rows, 4)
	assert.Equal(t, []string{"Goals by Period", "", "", ""}, tbl.Rows[0])
	assert.Equal(t, []string{"Team", "1st", "2nd", "Total"}, tbl.Rows[1])
	assert.Equal(t, []string{"Opponents", "3", "4", "7"}, tbl.Rows[3])
}

func TestDetectSplitsOnTitleAndGap(t *testing.T) {
	lines := []layout.Line{
		line(700, 50.0, "Goals by Period"),
		line(688, 50.0, "Team", 150.0, "1st", 200.0, "2nd"),
		line(676, 50.0, "SU", 150.0, "5", 200.0, "7"),
		line(664, 50.0, "Shots by Period"),
		line(652, 50.0, "Team", 150.0, "1st", 200.0, "2nd"),
		line(640, 50.0, "SU", 150.0, "15", 200.0, "17"),
		line(628, 50.0, "OPP", 150.0, "11", 200.0, "9"),
		// a wide gap ends the table
		line(500, 50.0, "Notes", 150.0, "x", 200.0, "y"),
	}

	found := Detect(1, lines, DefaultOptions())

	require.Len(t, found, 2)
	assert.Equal(t, "Goals by Period", found[0].Rows[0][0])
	assert.Len(t, found[0].Rows, 3)
	assert.Equal(t, "Shots by Period", found[1].Rows[0][0])
	assert.Len(t, found[1].Rows, 4)
}

func TestDetectDropsSmallBlocks(t *testing.T) {
	lines := []layout.Line{
		line(700, 50.0, "Heading"),
		line(688, 50.0, "a", 150.0, "b"),
	}
	assert.Empty(t, Detect(1, lines, DefaultOptions()))
}

func TestDetectMergesCloseWordsIntoOneCell(t *testing.T) {
	lines := []layout.Line{
		line(700, 50.0, "Team", 150.0, "1st"),
		line(688, 50.0, "Stevenson", 97.0, "Univ.", 150.0, "4"),
		line(676, 50.0, "Opponents", 150.0, "2"),
	}

	found := Detect(1, lines, DefaultOptions())

	require.Len(t, found, 1)
	assert.Equal(t, []string{"Stevenson Univ.", "4"}, found[0].Rows[1])
}

func TestColumnFallsBackToNearestCentre(t *testing.T) {
	anchors := []cell{{x0: 0, x1: 10}, {x0: 100, x1: 110}}
	assert.Equal(t, 1, column(anchors, cell{x0: 80, x1: 85}))
	assert.Equal(t, 0, column(anchors, cell{x0: 5, x1: 20}))
}

func TestParsePages(t *testing.T) {
	tests := []struct {
		sel string
		want []int
	}{
		{"1-end", []int{1, 2, 3, 4}},
		{"", []int{1, 2, 3, 4}},
		{"2", []int{2}},
		{"1,3-4", []int{1, 3, 4}},
		{"3-end,1", []int{3, 4, 1}},
		{"2-9", []int{2, 3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.sel, func(t *testing.T) {
			got, err := ParsePages(tt.sel, 4)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParsePages("x-2", 4)
	assert.Error(t, err)
}

func TestReadPDF(t *testing.T) {
	found, err := ReadPDF("../../testdata/stats_report_2025.pdf", DefaultOptions())

	require.NoError(t, err)
	require.Len(t, found, 3)

	games := found[0]
	assert.Equal(t, 1, games.Page)
	require.Len(t, games.Rows, 4)
	assert.Equal(t, []string{"Date", "Opponent", "Score", "Att."}, games.Rows[0])
	assert.Equal(t, []string{"Feb 12", "VS Mary Washington", "L 8-10", "350"}, games.Rows[2])

	goals := found[1]
	assert.Equal(t, 2, goals.Page)
	require.Len(t, goals.Rows, 4)
	assert.Equal(t, []string{"Goals by Period", "", "", "", ""}, goals.Rows[0])
	assert.Equal(t, []string{"", "1st", "2nd", "Total", ""}, goals.Rows[1])
	assert.Equal(t, []string{"Stevenson", "5", "7", "12", "*"}, goals.Rows[2])

	shots := found[2]
	assert.Equal(t, []string{"Team", "1st", "2nd"}, shots.Rows[1])
	assert.Equal(t, []string{"Opponents", "11", "9"}, shots.Rows[3])
}

func TestReadPDFPageSelection(t *testing.T) {
	opts := DefaultOptions()
	opts.Pages = "2"

	found, err := ReadPDF("../../testdata/stats_report_2025.pdf", opts)

	require.NoError(t, err)
	require.Len(t, found, 2)
	for _, tbl := range found {
		assert.Equal(t, 2, tbl.Page)
	}

	_, err = ReadPDF("../../testdata/missing.pdf", opts)
	assert.Error(t, err)
}
