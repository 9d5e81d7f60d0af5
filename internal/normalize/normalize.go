// Package normalize cleans extracted resume text into a canonical line stream.
package normalize

import (
	"strings"
	"unicode"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// bulletMarkers are the leading characters stripped from list items so the
// downstream heuristics see bare text.
var bulletMarkers = []string{"•", "◦", "▪", "●", "·", "‣", "*", "- ", "– ", "— ", "> "}

// encodingArtifacts maps common extraction artifacts to their plain
// equivalents before any other cleaning runs.
var encodingArtifacts = strings.NewReplacer(
	"\u00A0", " ", // non-breaking space
	"\uFEFF", "", // byte order mark
	"\u200B", "", // zero-width space
	"\r", "",
	"\t", " ",
	"’", "'",
	"‘", "'",
	"“", `"`,
	"”", `"`,
)

// Normalize converts a raw UTF-8 text blob into an immutable RawDocument:
// artifacts removed, bullets stripped, whitespace collapsed, empty lines
// dropped. Line order is preserved.
func Normalize(raw string) *types.RawDocument {
	cleaned := encodingArtifacts.Replace(raw)

	var lines []string
	words := 0
	for _, line := range strings.Split(cleaned, "\n") {
		line = normalizeLine(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
		words += len(strings.Fields(line))
	}

	return &types.RawDocument{
		Lines:     lines,
		ByteSize:  len(raw),
		WordCount: words,
	}
}

// normalizeLine trims a single line, strips one leading bullet marker, and
// collapses internal whitespace runs.
func normalizeLine(line string) string {
	line = strings.TrimSpace(line)

	for _, marker := range bulletMarkers {
		if strings.HasPrefix(line, marker) {
			line = strings.TrimSpace(strings.TrimPrefix(line, marker))
			break
		}
	}

	return collapseSpaces(line)
}

// collapseSpaces replaces any run of whitespace with a single space.
func collapseSpaces(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	inSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			inSpace = true
			continue
		}
		if inSpace && sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		inSpace = false
		sb.WriteRune(r)
	}
	return sb.String()
}
