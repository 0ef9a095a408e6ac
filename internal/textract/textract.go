// Package textract turns FNOL source documents into raw text. It is the
// only place the pipeline touches document formats; everything downstream
// operates on the returned string.
package textract

import (
	"fmt"
	"path/filepath"
	"strings"
)

// FromFile extracts the text content of a document, dispatching on the
// file extension. An unsupported extension or an unreadable file is a
// fatal error for that document; partial extraction is never attempted.
func FromFile(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		return fromTextFile(path)
	case ".pdf":
		return fromPDF(path)
	case ".html", ".htm":
		return fromHTMLFile(path)
	default:
		return "", fmt.Errorf("unsupported file type: %s", filepath.Ext(path))
	}
}
