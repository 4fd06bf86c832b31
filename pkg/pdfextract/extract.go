// Package pdfextract pulls plain text out of PDF resumes.
package pdfextract

import (
	"bytes"
	"errors"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrNoText means the PDF parsed fine but contained no extractable text,
// which usually indicates a scanned image resume.
var ErrNoText = errors.New("no extractable text in pdf")

// Text extracts the plain text of a PDF held in memory.
func Text(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	out := strings.TrimSpace(sb.String())
	if out == "" {
		return "", ErrNoText
	}
	return out, nil
}
