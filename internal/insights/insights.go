// Package insights turns a score report into strength and weakness
// statements. It is a pure read-only view over the scorer's output: the
// evidence strings are the scorer's own reasons, so insight text can never
// contradict the score that produced it.
package insights

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// displayNames maps category identifiers to the phrasing used in statements.
var displayNames = map[types.ScoreCategory]string{
	types.ScoreContact:      "contact information",
	types.ScoreSkills:       "skills coverage",
	types.ScoreExperience:   "experience detail",
	types.ScoreAchievements: "quantified achievements",
	types.ScoreContent:      "content structure",
}

// Analyze derives strengths and weaknesses from the report's category ratios.
// A category at or above the strength threshold becomes a strength; one below
// the weakness threshold becomes a weakness. Output follows the report's
// category order, so identical reports always yield identical insights.
func Analyze(report *types.ScoreReport, cfg *config.Config) ([]types.Strength, []types.Weakness) {
	var strengths []types.Strength
	var weaknesses []types.Weakness

	for _, c := range report.Categories {
		ratio := c.Ratio()
		switch {
		case ratio >= cfg.Insights.StrengthRatio:
			strengths = append(strengths, types.Strength{
				Category:  c.Category,
				Statement: fmt.Sprintf("Strong %s (%d/%d)", displayName(c.Category), c.Points, c.Max),
				Evidence:  reasonsWithPrefix(c.Reasons, "+"),
			})
		case ratio < cfg.Insights.WeaknessRatio:
			weaknesses = append(weaknesses, types.Weakness{
				Category:  c.Category,
				Statement: fmt.Sprintf("Weak %s (%d/%d)", displayName(c.Category), c.Points, c.Max),
				Evidence:  reasonsWithPrefix(c.Reasons, "-"),
			})
		}
	}

	return strengths, weaknesses
}

func displayName(category types.ScoreCategory) string {
	if name, ok := displayNames[category]; ok {
		return name
	}
	return string(category)
}

// reasonsWithPrefix selects the scorer reasons matching the given sign, so
// strengths cite earned points and weaknesses cite deductions.
func reasonsWithPrefix(reasons []string, prefix string) []string {
	var out []string
	for _, r := range reasons {
		if strings.HasPrefix(r, prefix) {
			out = append(out, r)
		}
	}
	return out
}
