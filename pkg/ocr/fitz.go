package ocr

import (
	"fmt"
	"image"

	"github.com/gen2brain/go-fitz"
)

// fitzDocument renders pages with MuPDF
type fitzDocument struct {
	doc *fitz.Document
}

// OpenDocument opens the PDF at path for rasterization
func OpenDocument(path string) (Rasterizer, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF for rendering: %w", err)
	}
	return &fitzDocument{doc: doc}, nil
}

func (d *fitzDocument) NumPage() int {
	return d.doc.NumPage()
}

func (d *fitzDocument) Image(n int, dpi float64) (image.Image, error) {
	return d.doc.ImageDPI(n, dpi)
}

func (d *fitzDocument) Close() error {
	return d.doc.Close()
}
