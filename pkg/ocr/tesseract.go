package ocr

import (
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

// tesseract recognizes page images with a gosseract client
type tesseract struct {
	client *gosseract.Client
}

// NewTesseract creates a Tesseract engine configured from opts
func NewTesseract(opts Options) (Engine, error) {
	client := gosseract.NewClient()
	if opts.TessdataPrefix != "" {
		if err := client.SetTessdataPrefix(opts.TessdataPrefix); err != nil {
			client.Close()
			return nil, fmt.Errorf("failed to set tessdata prefix: %w", err)
		}
	}
	if opts.Language != "" {
		if err := client.SetLanguage(opts.Language); err != nil {
			client.Close()
			return nil, fmt.Errorf("failed to set OCR language: %w", err)
		}
	}
	return &tesseract{client: client}, nil
}

func (t *tesseract) HOCR(img []byte) (string, error) {
	if err := t.client.SetImageFromBytes(img); err != nil {
		return "", err
	}
	return t.client.HOCRText()
}

func (t *tesseract) Close() error {
	return t.client.Close()
}
