// Package parser extracts statistics tables from the text of a sports report
package parser

import (
	"errors"
	"fmt"

	"github.com/myusername/stats-report-extractor/pkg/layout"
)

var (
	// ErrGameHeaderNotFound is returned when no line looks like the game table header
	ErrGameHeaderNotFound = errors.New("game table header not found")
	// ErrNoMatchingPage is returned when no recognized page carries the expected keywords
	ErrNoMatchingPage = errors.New("no page matched")
	// ErrNegativeAttendance is returned for a game line whose attendance is below zero
	ErrNegativeAttendance = errors.New("attendance is negative")
)

// ReadFirstPageText returns the rebuilt text layer of the first page of the PDF at pdfPath
func ReadFirstPageText(pdfPath string, opts layout.Options) (string, error) {
	text, err := layout.PageText(pdfPath, 1, opts)
	if err != nil {
		return "", fmt.Errorf("error reading first page text: %w", err)
	}
	return text, nil
}
