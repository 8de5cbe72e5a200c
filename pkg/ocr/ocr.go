// Package ocr rasterizes PDF pages and recognizes their text
package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Page is the recognized text of one rasterized page
type Page struct {
	Number int
	Lines  []string
}

// Text returns the recognized lines joined by newlines
func (p Page) Text() string {
	return strings.Join(p.Lines, "\n")
}

// Contains reports whether the page text contains every keyword
func (p Page) Contains(keywords ...string) bool {
	text := p.Text()
	for _, k := range keywords {
		if !strings.Contains(text, k) {
			return false
		}
	}
	return true
}

// Rasterizer renders document pages to images
type Rasterizer interface {
	NumPage() int
	// Image renders page n (0-based) at the given resolution
	Image(n int, dpi float64) (image.Image, error)
	Close() error
}

// Engine turns an encoded page image into hOCR markup
type Engine interface {
	HOCR(img []byte) (string, error)
	Close() error
}

// Options controls rasterization and recognition
type Options struct {
	DPI            float64
	Language       string
	TessdataPrefix string
}

// DefaultOptions returns the settings used for statistics reports
func DefaultOptions() Options {
	return Options{DPI: 300, Language: "eng"}
}

// RecognizeDocument rasterizes every page of the PDF at path and recognizes its text
func RecognizeDocument(path string, opts Options) ([]Page, error) {
	r, err := OpenDocument(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	e, err := NewTesseract(opts)
	if err != nil {
		return nil, err
	}
	defer e.Close()

	return Recognize(r, e, opts.DPI)
}

// Recognize runs every page of r through e, in page order
func Recognize(r Rasterizer, e Engine, dpi float64) ([]Page, error) {
	n := r.NumPage()
	pages := make([]Page, 0, n)

	for i := 0; i < n; i++ {
		img, err := r.Image(i, dpi)
		if err != nil {
			return nil, fmt.Errorf("error rasterizing page %d: %w", i+1, err)
		}

		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("error encoding page %d: %w", i+1, err)
		}

		hocr, err := e.HOCR(buf.Bytes())
		if err != nil {
			return nil, fmt.Errorf("error recognizing page %d: %w", i+1, err)
		}

		lines, err := ParseHOCR(strings.NewReader(hocr))
		if err != nil {
			return nil, fmt.Errorf("error parsing hOCR of page %d: %w", i+1, err)
		}
		log.Printf("Recognized page %d: %d lines", i+1, len(lines))
		pages = append(pages, Page{Number: i + 1, Lines: lines})
	}
	return pages, nil
}

// ParseHOCR returns one string per ocr_line, its words joined by single spaces
func ParseHOCR(r io.Reader) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	var lines []string
	doc.Find(".ocr_line, .ocr_textfloat, .ocr_header, .ocr_caption").Each(func(i int, s *goquery.Selection) {
		var words []string
		s.Find(".ocrx_word").Each(func(j int, w *goquery.Selection) {
			if text := strings.TrimSpace(w.Text()); text != "" {
				words = append(words, text)
			}
		})
		if len(words) == 0 {
			// Blank lines still separate blocks
			lines = append(lines, "")
			return
		}
		lines = append(lines, strings.Join(words, " "))
	})
	return lines, nil
}

// FindPage returns the first page containing every keyword
func FindPage(pages []Page, keywords ...string) (Page, bool) {
	for _, p := range pages {
		if p.Contains(keywords...) {
			return p, true
		}
	}
	return Page{}, false
}
