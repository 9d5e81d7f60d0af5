package observability

import (
	"bytes"
	"testing"

	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintScoreReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScoreReport(&types.ScoreReport{
		Categories: []types.CategoryScore{
			{Category: types.ScoreContact, Points: 6, Max: 15, Reasons: []string{"-5: no phone number found"}},
		},
		Total: 72,
		Grade: "Good",
	})
	output := buf.String()

	assert.Contains(t, output, "SCORE REPORT")
	assert.Contains(t, output, "72/100 (Good)")
	assert.Contains(t, output, "contact")
	assert.Contains(t, output, "no phone number found")
}

func TestPrintScoreReport_NilIsSilent(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintScoreReport(nil)
	assert.Empty(t, buf.String())
}

func TestPrintRoleMatches(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRoleMatches([]types.RoleMatchResult{
		{
			Role:          "Backend Developer",
			Compatibility: 93,
			Matched:       []string{"Go"},
			Missing:       []types.MissingSkill{{Skill: "Kubernetes", Weight: 7}},
		},
	})
	output := buf.String()

	assert.Contains(t, output, "ROLE COMPATIBILITY")
	assert.Contains(t, output, "Backend Developer: 93/100")
	assert.Contains(t, output, "missing Kubernetes (-7)")
}

func TestPrintInsights(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintInsights(
		[]types.Strength{{Category: types.ScoreContact, Statement: "Strong contact information (15/15)"}},
		[]types.Weakness{{Category: types.ScoreAchievements, Statement: "Weak quantified achievements (0/20)"}},
	)
	output := buf.String()

	assert.Contains(t, output, "Strong contact information")
	assert.Contains(t, output, "Weak quantified achievements")
}

func TestPrintSparse(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSparse(&types.SparseResult{
		Reason:    "content too sparse: 20 words, need at least 50",
		CharCount: 120,
		WordCount: 20,
	})
	output := buf.String()

	assert.Contains(t, output, "CONTENT TOO SPARSE")
	assert.Contains(t, output, "Words:      20")
}

func TestPrintNarrative_Unavailable(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintNarrative(&types.AIInsight{Available: false, Note: "AI insight unavailable"})

	assert.Contains(t, buf.String(), "AI insight unavailable")
}
