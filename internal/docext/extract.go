// Package docext turns uploaded documents into the plain-text input contract
// of the analyzer: a UTF-8 blob plus a readability judgment. It is the only
// place that knows about file formats; everything downstream sees text.
package docext

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Supported document formats.
const (
	FormatPDF  = "application/pdf"
	FormatText = "text/plain"
)

// Extract converts a raw document into extracted text. The byte ceiling is
// enforced before any parsing. Unreadable-but-parseable content is not an
// error: it comes back with Readable=false and an explanatory note.
func Extract(data []byte, format string, limits config.Limits) (*types.ExtractedText, error) {
	if len(data) > limits.MaxInputBytes {
		return nil, &InputTooLargeError{Size: len(data), Limit: limits.MaxInputBytes}
	}

	var text string
	switch format {
	case FormatText:
		text = string(data)
	case FormatPDF:
		extracted, err := extractPDFText(data)
		if err != nil {
			return nil, &ExtractionError{Format: format, Cause: err}
		}
		text = extracted
	default:
		return nil, &UnsupportedFormatError{Format: format}
	}

	readable, note := judgeReadability(text)
	return &types.ExtractedText{
		Text:     text,
		Readable: readable,
		Note:     note,
	}, nil
}

// extractPDFText concatenates the plain text of every page. Pages that fail
// to yield text are skipped rather than failing the document.
func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}

	if strings.TrimSpace(b.String()) == "" {
		return "", fmt.Errorf("no readable text found; the pdf may contain only images")
	}
	return b.String(), nil
}
