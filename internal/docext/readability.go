package docext

import (
	"fmt"
	"strings"
)

// resumeIndicators are vocabulary markers used to judge whether extracted
// text is actually a resume. Fewer than minIndicators matches marks the text
// unreadable for analysis purposes.
var resumeIndicators = []string{
	"experience", "education", "skills", "work", "employment",
	"university", "college", "degree", "project", "internship",
	"software", "technical", "programming", "development",
}

const (
	minIndicators = 3
	shortWords    = 200
	longWords     = 2000
)

// judgeReadability classifies extracted text. The judgment is advisory input
// to the analyzer's sparse-content check, not a hard gate: a false result
// still flows through as data.
func judgeReadability(text string) (bool, string) {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < 100 {
		return false, "document too short to be a comprehensive resume"
	}

	lower := strings.ToLower(text)
	found := 0
	for _, indicator := range resumeIndicators {
		if strings.Contains(lower, indicator) {
			found++
		}
	}
	if found < minIndicators {
		return false, fmt.Sprintf("content may not be a resume; found only %d resume indicators", found)
	}

	words := len(strings.Fields(text))
	if words < shortWords {
		return false, fmt.Sprintf("resume too short (%d words); professional resumes typically contain 300-1000 words", words)
	}
	if words > longWords {
		return true, fmt.Sprintf("resume is quite long (%d words); consider condensing", words)
	}

	return true, ""
}
