// ABOUTME: PDF text extraction producing one page of plain text per PDF page
// ABOUTME: Pure parse, no side effects; page order follows the document
package loader

import (
	"fmt"

	"github.com/ledongthuc/pdf"

	"docqa/internal/models"
)

// PDFLoader extracts plain text from PDF files page by page.
type PDFLoader struct{}

// NewPDFLoader creates a PDFLoader.
func NewPDFLoader() *PDFLoader {
	return &PDFLoader{}
}

// Load parses the PDF at path into ordered pages of plain text.
// Pages that carry no extractable text are returned empty rather than
// dropped, so page numbering stays aligned with the document.
func (l *PDFLoader) Load(path string) ([]models.Page, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening pdf %s: %w", path, err)
	}
	defer f.Close()

	total := reader.NumPage()
	pages := make([]models.Page, 0, total)
	for num := 1; num <= total; num++ {
		page := reader.Page(num)
		if page.V.IsNull() {
			pages = append(pages, models.Page{Number: num})
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("extracting text from %s page %d: %w", path, num, err)
		}
		pages = append(pages, models.Page{Number: num, Text: text})
	}

	return pages, nil
}
