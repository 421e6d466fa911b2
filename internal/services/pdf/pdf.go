// Package pdf inspects uploaded PDF books.
//
// We use the ledongthuc/pdf library — a pure Go implementation, no CGO or
// external dependencies required. This makes deployment simpler (just a
// single binary).
//
// Unlike a full text-extraction pipeline, book uploads only need the page
// count (for progress tracking) and enough text to feed keyword analysis.
package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Info holds what the reader needs to know about an uploaded PDF.
type Info struct {
	PageCount int
	Text      string // Plain text for keyword analysis; may be empty for scanned PDFs
}

// Inspect opens a PDF from memory and returns its page count plus whatever
// plain text it can pull out. Pages that fail text extraction (image-only
// scans) are skipped without failing the whole document.
func Inspect(data []byte) (*Info, error) {
	reader := bytes.NewReader(data)
	size := int64(len(data))

	pdfReader, err := pdf.NewReader(reader, size)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	pageCount := pdfReader.NumPage()
	if pageCount == 0 {
		return &Info{}, nil
	}

	var allText strings.Builder
	for i := 1; i <= pageCount; i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		allText.WriteString(strings.TrimSpace(text))
		allText.WriteString("\n")
	}

	return &Info{
		PageCount: pageCount,
		Text:      strings.TrimSpace(allText.String()),
	}, nil
}

// Validate checks if the data looks like a valid PDF by checking the magic bytes.
func Validate(data []byte) bool {
	// PDF files start with "%PDF-"
	return len(data) >= 5 && string(data[:5]) == "%PDF-"
}
