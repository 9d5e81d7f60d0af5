package narrative

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// buildPrompt renders the deterministic analysis into the narrative prompt.
// The model only ever sees the derived facts, never raw resume text, and it
// is told explicitly not to re-score anything.
func buildPrompt(profile *types.ResumeProfile, report *types.ScoreReport) string {
	var b strings.Builder

	b.WriteString("You are an experienced career coach reviewing a resume analysis.\n")
	b.WriteString("Write a short narrative (3-5 sentences) summarizing the resume's quality\n")
	b.WriteString("and the single most valuable improvement. Do not restate the numbers as a\n")
	b.WriteString("list and do not invent facts beyond the analysis below.\n\n")

	fmt.Fprintf(&b, "Overall score: %d/100 (%s)\n\n", report.Total, report.Grade)

	b.WriteString("Category breakdown:\n")
	for _, c := range report.Categories {
		fmt.Fprintf(&b, "- %s: %d/%d\n", c.Category, c.Points, c.Max)
		for _, reason := range c.Reasons {
			fmt.Fprintf(&b, "  %s\n", reason)
		}
	}

	if len(profile.Skills) > 0 {
		names := make([]string, len(profile.Skills))
		for i, s := range profile.Skills {
			names[i] = s.Canonical
		}
		fmt.Fprintf(&b, "\nRecognized skills: %s\n", strings.Join(names, ", "))
	}
	if len(profile.Claims) > 0 {
		fmt.Fprintf(&b, "Quantified achievements found: %d\n", len(profile.Claims))
	}

	return b.String()
}
