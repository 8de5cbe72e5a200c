package report

import (
	"fmt"
	"log"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Inspect validates the PDF at path and returns its page count.
// Validation problems are logged, not returned.
func Inspect(path string) (int, error) {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	if err := api.ValidateFile(path, conf); err != nil {
		log.Printf("Warning: %s did not pass validation: %v", path, err)
	}

	pages, err := api.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("error reading PDF %s: %w", path, err)
	}
	log.Printf("Document %s has %d pages", path, pages)
	return pages, nil
}
