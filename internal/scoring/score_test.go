package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/types"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Default()
	require.NoError(t, err)
	return cfg
}

func skill(canonical string, category types.SkillCategory) types.SkillToken {
	return types.SkillToken{
		Raw:        canonical,
		Canonical:  canonical,
		Category:   category,
		Confidence: types.ConfidenceExact,
	}
}

// fullProfile earns every rule in every category.
func fullProfile() *types.ResumeProfile {
	return &types.ResumeProfile{
		Contact: types.ContactInfo{Email: "a@b.com", Phone: "(555) 123-4567"},
		Skills: []types.SkillToken{
			skill("Python", types.CategoryLanguage),
			skill("Go", types.CategoryLanguage),
			skill("TypeScript", types.CategoryLanguage),
			skill("React", types.CategoryFramework),
			skill("Django", types.CategoryFramework),
			skill("Docker", types.CategoryTool),
			skill("Kubernetes", types.CategoryTool),
			skill("AWS", types.CategoryTool),
			skill("Machine Learning", types.CategoryDomain),
			skill("Leadership", types.CategorySoftSkill),
			skill("Communication", types.CategorySoftSkill),
		},
		Claims: []types.QuantifiedClaim{
			{Metric: types.MetricPercent, Value: 35},
			{Metric: types.MetricCount, Value: 10000},
			{Metric: types.MetricDuration, Value: 6},
		},
		Experience: []types.ExperienceEntry{
			{Title: "Senior Engineer", DateRange: "2020 - 2023"},
			{Title: "Engineer", DateRange: "2017 - 2020"},
		},
		SectionCoverage: map[types.SectionKind]int{
			types.KindContact:    1,
			types.KindSummary:    1,
			types.KindSkills:     1,
			types.KindExperience: 1,
			types.KindEducation:  1,
		},
		WordCount: 500,
	}
}

func TestScore_FullProfileReachesEveryMax(t *testing.T) {
	report := Score(fullProfile(), testConfig(t))

	require.Len(t, report.Categories, 5)
	for _, c := range report.Categories {
		assert.Equal(t, c.Max, c.Points, string(c.Category))
	}
	assert.Equal(t, 100, report.Total)
	assert.Equal(t, "Excellent", report.Grade)
}

func TestScore_EmailAndPhoneAloneMaxContact(t *testing.T) {
	p := &types.ResumeProfile{
		Contact:         types.ContactInfo{Email: "a@b.com", Phone: "555-123-4567"},
		SectionCoverage: map[types.SectionKind]int{},
	}
	report := Score(p, testConfig(t))

	contact, ok := report.CategoryByName(types.ScoreContact)
	require.True(t, ok)
	assert.Equal(t, 15, contact.Points)
	assert.Equal(t, 15, contact.Max)
}

func TestScore_PartialContactExplainsDeductions(t *testing.T) {
	p := &types.ResumeProfile{
		Contact:         types.ContactInfo{Email: "a@b.com"},
		SectionCoverage: map[types.SectionKind]int{},
	}
	report := Score(p, testConfig(t))

	contact, ok := report.CategoryByName(types.ScoreContact)
	require.True(t, ok)
	assert.Equal(t, 6, contact.Points)
	joined := strings.Join(contact.Reasons, "\n")
	assert.Contains(t, joined, "+6: email address present")
	assert.Contains(t, joined, "-5: no phone number found")
}

func TestScore_EmptyProfileScoresZeroWithReasons(t *testing.T) {
	p := &types.ResumeProfile{SectionCoverage: map[types.SectionKind]int{}}
	report := Score(p, testConfig(t))

	assert.Equal(t, 0, report.Total)
	assert.Equal(t, "Needs Improvement", report.Grade)
	for _, c := range report.Categories {
		assert.Zero(t, c.Points, string(c.Category))
		assert.NotEmpty(t, c.Reasons, string(c.Category))
	}
}

func TestScore_TotalEqualsCategorySum(t *testing.T) {
	p := fullProfile()
	p.Contact.Phone = ""
	p.Claims = p.Claims[:1]
	report := Score(p, testConfig(t))

	assert.Equal(t, report.SumPoints(), report.Total)
}

func TestScore_PointsNeverExceedMax(t *testing.T) {
	report := Score(fullProfile(), testConfig(t))
	for _, c := range report.Categories {
		assert.LessOrEqual(t, c.Points, c.Max, string(c.Category))
		assert.GreaterOrEqual(t, c.Points, 0, string(c.Category))
	}
}

func TestScore_AddingSkillNeverLowersSkillScore(t *testing.T) {
	cfg := testConfig(t)
	p := &types.ResumeProfile{
		Skills:          []types.SkillToken{skill("Python", types.CategoryLanguage)},
		SectionCoverage: map[types.SectionKind]int{},
	}
	before, _ := Score(p, cfg).CategoryByName(types.ScoreSkills)

	p.Skills = append(p.Skills, skill("Docker", types.CategoryTool))
	after, _ := Score(p, cfg).CategoryByName(types.ScoreSkills)

	assert.GreaterOrEqual(t, after.Points, before.Points)
}

func TestScore_SingleMetricTypeMissesVarietyBonus(t *testing.T) {
	p := &types.ResumeProfile{
		Claims: []types.QuantifiedClaim{
			{Metric: types.MetricPercent, Value: 10},
			{Metric: types.MetricPercent, Value: 20},
			{Metric: types.MetricPercent, Value: 30},
		},
		SectionCoverage: map[types.SectionKind]int{},
	}
	report := Score(p, testConfig(t))

	ach, ok := report.CategoryByName(types.ScoreAchievements)
	require.True(t, ok)
	assert.Equal(t, 15, ach.Points)
}

func TestScore_Deterministic(t *testing.T) {
	cfg := testConfig(t)
	p := fullProfile()
	assert.Equal(t, Score(p, cfg), Score(p, cfg))
}

func TestScore_GradeBoundaries(t *testing.T) {
	cfg := testConfig(t)
	cases := []struct {
		total int
		grade string
	}{
		{100, "Excellent"},
		{90, "Excellent"},
		{89, "Very Good"},
		{70, "Good"},
		{60, "Fair"},
		{50, "Developing"},
		{49, "Needs Improvement"},
		{0, "Needs Improvement"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.grade, cfg.GradeFor(tc.total), "total %d", tc.total)
	}
}
