// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScoreReport outputs a human-readable summary of the score report.
func (p *Printer) PrintScoreReport(report *types.ScoreReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total:  %d/100 (%s)\n\n", report.Total, report.Grade))

	for _, c := range report.Categories {
		sb.WriteString(fmt.Sprintf("%-24s %d/%d\n", c.Category, c.Points, c.Max))
		for _, reason := range c.Reasons {
			sb.WriteString(fmt.Sprintf("  %s\n", reason))
		}
	}

	p.printBox("SCORE REPORT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRoleMatches outputs role compatibility results, most valuable missing
// skills first.
func (p *Printer) PrintRoleMatches(matches []types.RoleMatchResult) {
	if len(matches) == 0 {
		return
	}

	var sb strings.Builder
	for i, match := range matches {
		sb.WriteString(fmt.Sprintf("%s: %d/100\n", match.Role, match.Compatibility))

		count := min(len(match.Missing), maxItemsToShow)
		for j := 0; j < count; j++ {
			sb.WriteString(fmt.Sprintf("  • missing %s (-%d)\n", match.Missing[j].Skill, match.Missing[j].Weight))
		}
		if len(match.Missing) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(match.Missing)-maxItemsToShow))
		}
		if i < len(matches)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("ROLE COMPATIBILITY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintInsights outputs the strength and weakness statements.
func (p *Printer) PrintInsights(strengths []types.Strength, weaknesses []types.Weakness) {
	if len(strengths) == 0 && len(weaknesses) == 0 {
		return
	}

	var sb strings.Builder
	if len(strengths) > 0 {
		sb.WriteString("Strengths:\n")
		for _, s := range strengths {
			sb.WriteString(fmt.Sprintf("  • %s\n", s.Statement))
		}
	}
	if len(weaknesses) > 0 {
		if len(strengths) > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("Weaknesses:\n")
		for _, w := range weaknesses {
			sb.WriteString(fmt.Sprintf("  • %s\n", w.Statement))
		}
	}

	p.printBox("STRENGTHS & WEAKNESSES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSparse outputs the refusal summary for content too sparse to analyze.
func (p *Printer) PrintSparse(sparse *types.SparseResult) {
	if sparse == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(sparse.Reason + "\n\n")
	sb.WriteString(fmt.Sprintf("Characters: %d\n", sparse.CharCount))
	sb.WriteString(fmt.Sprintf("Words:      %d", sparse.WordCount))

	p.printBox("CONTENT TOO SPARSE", sb.String())
}

// PrintNarrative outputs the AI narrative, or its unavailability note.
func (p *Printer) PrintNarrative(ai *types.AIInsight) {
	if ai == nil {
		return
	}
	if !ai.Available {
		p.printBox("AI NARRATIVE", ai.Note)
		return
	}
	p.printBox("AI NARRATIVE", strings.TrimSpace(ai.Narrative))
}
