// Package scoring evaluates a resume profile against fixed, declarative rule
// sets and produces per-category scores with human-readable reasons. Scoring
// is pure: the same profile and config always yield the same report.
package scoring

import (
	"fmt"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Rule is a single scoreable criterion. Check inspects the profile read-only;
// Points are awarded when it passes. Pass and Fail are the reason templates,
// rendered with the signed point value so every reason explains exactly how
// it moved the score.
type Rule struct {
	Points int
	Pass   string
	Fail   string
	Check  func(p *types.ResumeProfile) bool
}

// evaluate runs a rule set against the profile. Points accumulate from
// passing rules and are clamped to [0, max]; every rule contributes a reason
// line so a below-max score is always explained.
func evaluate(category types.ScoreCategory, max int, rules []Rule, p *types.ResumeProfile) types.CategoryScore {
	score := types.CategoryScore{
		Category: category,
		Max:      max,
		Reasons:  make([]string, 0, len(rules)),
	}

	for _, rule := range rules {
		if rule.Check(p) {
			score.Points += rule.Points
			score.Reasons = append(score.Reasons, fmt.Sprintf("+%d: %s", rule.Points, rule.Pass))
		} else {
			score.Reasons = append(score.Reasons, fmt.Sprintf("-%d: %s", rule.Points, rule.Fail))
		}
	}

	if score.Points > max {
		score.Points = max
	}
	if score.Points < 0 {
		score.Points = 0
	}
	return score
}
