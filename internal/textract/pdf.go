package textract

import (
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// fromPDF extracts text from a PDF page by page. Pages that yield no text
// (scanned images) are skipped; a document with no extractable text at all
// returns an error so the caller does not route an empty claim.
func fromPDF(path string) (string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", fmt.Errorf("open PDF: %w", err)
	}
	defer func() { _ = doc.Close() }()

	if doc.NumPage() == 0 {
		return "", fmt.Errorf("PDF has no pages: %s", path)
	}

	var buf strings.Builder
	for page := 0; page < doc.NumPage(); page++ {
		text, err := doc.Text(page)
		if err != nil {
			return "", fmt.Errorf("extract page %d: %w", page+1, err)
		}
		if text != "" {
			buf.WriteString(text)
			buf.WriteString("\n")
		}
	}

	if strings.TrimSpace(buf.String()) == "" {
		return "", fmt.Errorf("no extractable text in PDF: %s", path)
	}

	return buf.String(), nil
}
