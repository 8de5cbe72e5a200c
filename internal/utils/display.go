package utils

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// DisplayTable prints a table with aligned columns
func DisplayTable(w io.Writer, t Table) {
	fmt.Fprintf(w, "\n=========== %s (%d rows) ===========\n", strings.ToUpper(strings.ReplaceAll(t.Name, "_", " ")), t.Rows())
	if len(t.Records) == 0 {
		return
	}

	widths := make([]int, len(t.Records[0]))
	for _, record := range t.Records {
		for i, v := range record {
			if i < len(widths) && utf8.RuneCountInString(v) > widths[i] {
				widths[i] = utf8.RuneCountInString(v)
			}
		}
	}

	printRow := func(cells []string) {
		parts := make([]string, len(widths))
		for i := range widths {
			var v string
			if i < len(cells) {
				v = cells[i]
			}
			parts[i] = fmt.Sprintf("%-*s", widths[i], v)
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, " | "), " "))
	}

	printRow(t.Records[0])
	dashes := make([]string, len(widths))
	for i, n := range widths {
		dashes[i] = strings.Repeat("-", n)
	}
	fmt.Fprintln(w, strings.Join(dashes, "-+-"))
	for _, record := range t.Records[1:] {
		printRow(record)
	}
}
