package extract

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

	// phonePattern accepts common US/international shapes: optional country
	// code, optional area code parens, separators of space/dot/dash.
	phonePattern = regexp.MustCompile(`(\+?\d{1,3}[\s.\-]?)?\(?\d{3}\)?[\s.\-]?\d{3}[\s.\-]?\d{4}`)

	// locationPattern matches "City, ST" or "City, Country" shapes.
	locationPattern = regexp.MustCompile(`^[A-Z][A-Za-z .\-]+,\s*(?:[A-Z]{2}|[A-Z][A-Za-z ]+)$`)
)

// extractContact pulls contact fields from the document's contact block only,
// to avoid false positives from body text. First valid match wins for each
// field; anything not found stays absent, which is a valid, scoreable state.
func extractContact(doc *types.RawDocument, sections []types.Section) types.ContactInfo {
	var contact types.ContactInfo

	for _, section := range sections {
		if section.Kind != types.KindContact {
			continue
		}
		for i := section.BodyStart(); i < section.EndLine; i++ {
			line := doc.Line(i)

			if contact.Email == "" {
				if match := emailPattern.FindString(line); match != "" {
					contact.Email = match
				}
			}
			if contact.Phone == "" {
				// Strip the email first so digits in an address are never
				// mistaken for a phone number.
				candidate := emailPattern.ReplaceAllString(line, "")
				if match := phonePattern.FindString(candidate); match != "" && digitCount(match) >= 10 {
					contact.Phone = strings.TrimSpace(match)
				}
			}
			if contact.Location == "" {
				for _, part := range strings.Split(line, "|") {
					part = strings.TrimSpace(part)
					if locationPattern.MatchString(part) && !emailPattern.MatchString(part) {
						contact.Location = part
						break
					}
				}
			}
		}
	}

	return contact
}

// digitCount returns the number of decimal digits in s.
func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
