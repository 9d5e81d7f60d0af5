package scoring

import (
	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Score evaluates all five categories and aggregates them into a report. The
// per-category maxima come from the config and the total is clamped to
// [0, 100] before grading.
func Score(p *types.ResumeProfile, cfg *config.Config) *types.ScoreReport {
	return Aggregate([]types.CategoryScore{
		evaluate(types.ScoreContact, cfg.MaxFor(types.ScoreContact), contactRules, p),
		evaluate(types.ScoreSkills, cfg.MaxFor(types.ScoreSkills), skillsRules, p),
		evaluate(types.ScoreExperience, cfg.MaxFor(types.ScoreExperience), experienceRules, p),
		evaluate(types.ScoreAchievements, cfg.MaxFor(types.ScoreAchievements), achievementRules, p),
		evaluate(types.ScoreContent, cfg.MaxFor(types.ScoreContent), contentRules, p),
	}, cfg)
}

// Aggregate sums already-evaluated category scores into a graded report. The
// total is recomputed from the categories and clamped to [0, 100].
func Aggregate(categories []types.CategoryScore, cfg *config.Config) *types.ScoreReport {
	report := &types.ScoreReport{Categories: categories}
	report.Total = report.SumPoints()
	if report.Total > 100 {
		report.Total = 100
	}
	if report.Total < 0 {
		report.Total = 0
	}
	report.Grade = cfg.GradeFor(report.Total)
	return report
}

// contactRules reward reachable candidates: each channel scores on its own
// and having both adds a completeness bonus, so email plus phone alone maxes
// the category.
var contactRules = []Rule{
	{
		Points: 6,
		Pass:   "email address present",
		Fail:   "no email address found",
		Check:  func(p *types.ResumeProfile) bool { return p.Contact.HasEmail() },
	},
	{
		Points: 5,
		Pass:   "phone number present",
		Fail:   "no phone number found",
		Check:  func(p *types.ResumeProfile) bool { return p.Contact.HasPhone() },
	},
	{
		Points: 4,
		Pass:   "both email and phone provided",
		Fail:   "provide both an email address and a phone number",
		Check:  func(p *types.ResumeProfile) bool { return p.Contact.HasEmail() && p.Contact.HasPhone() },
	},
}

var skillsRules = []Rule{
	{
		Points: 6,
		Pass:   "programming language listed",
		Fail:   "no programming language recognized",
		Check:  hasSkillCategory(types.CategoryLanguage),
	},
	{
		Points: 6,
		Pass:   "framework or library listed",
		Fail:   "no framework or library recognized",
		Check:  hasSkillCategory(types.CategoryFramework),
	},
	{
		Points: 5,
		Pass:   "tool or platform listed",
		Fail:   "no tool or platform recognized",
		Check:  hasSkillCategory(types.CategoryTool),
	},
	{
		Points: 4,
		Pass:   "domain knowledge listed",
		Fail:   "no domain knowledge recognized",
		Check:  hasSkillCategory(types.CategoryDomain),
	},
	{
		Points: 3,
		Pass:   "soft skill listed",
		Fail:   "no soft skills recognized",
		Check:  hasSkillCategory(types.CategorySoftSkill),
	},
	{
		Points: 6,
		Pass:   "broad skill set (10 or more distinct skills)",
		Fail:   "fewer than 10 distinct skills recognized",
		Check:  func(p *types.ResumeProfile) bool { return len(p.Skills) >= 10 },
	},
}

var experienceRules = []Rule{
	{
		Points: 8,
		Pass:   "experience section present",
		Fail:   "no experience section found",
		Check:  func(p *types.ResumeProfile) bool { return p.HasSection(types.KindExperience) },
	},
	{
		Points: 6,
		Pass:   "role titles identified",
		Fail:   "no role titles identified",
		Check: func(p *types.ResumeProfile) bool {
			for _, e := range p.Experience {
				if e.Title != "" {
					return true
				}
			}
			return false
		},
	},
	{
		Points: 5,
		Pass:   "employment dates identified",
		Fail:   "no employment date ranges identified",
		Check: func(p *types.ResumeProfile) bool {
			for _, e := range p.Experience {
				if e.DateRange != "" {
					return true
				}
			}
			return false
		},
	},
	{
		Points: 6,
		Pass:   "multiple positions listed",
		Fail:   "only one position identified",
		Check:  func(p *types.ResumeProfile) bool { return len(p.Experience) >= 2 },
	},
}

var achievementRules = []Rule{
	{
		Points: 8,
		Pass:   "quantified achievement present",
		Fail:   "no quantified achievements found; add measurable results",
		Check:  func(p *types.ResumeProfile) bool { return len(p.Claims) >= 1 },
	},
	{
		Points: 7,
		Pass:   "three or more quantified achievements",
		Fail:   "fewer than three quantified achievements",
		Check:  func(p *types.ResumeProfile) bool { return len(p.Claims) >= 3 },
	},
	{
		Points: 5,
		Pass:   "varied metric types used",
		Fail:   "achievements use a single metric type",
		Check:  func(p *types.ResumeProfile) bool { return distinctMetrics(p) >= 2 },
	},
}

var contentRules = []Rule{
	{
		Points: 4,
		Pass:   "well-structured with recognizable sections",
		Fail:   "fewer than three recognizable sections; add clear headings",
		Check: func(p *types.ResumeProfile) bool {
			kinds := 0
			for kind, count := range p.SectionCoverage {
				if kind != types.KindOther && count > 0 {
					kinds++
				}
			}
			return kinds >= 3
		},
	},
	{
		Points: 3,
		Pass:   "length in the effective range",
		Fail:   "length outside the 300-1000 word range",
		Check:  func(p *types.ResumeProfile) bool { return p.WordCount >= 300 && p.WordCount <= 1000 },
	},
	{
		Points: 3,
		Pass:   "summary section present",
		Fail:   "no summary section found",
		Check:  func(p *types.ResumeProfile) bool { return p.HasSection(types.KindSummary) },
	},
}

func hasSkillCategory(category types.SkillCategory) func(*types.ResumeProfile) bool {
	return func(p *types.ResumeProfile) bool {
		for _, s := range p.Skills {
			if s.Category == category {
				return true
			}
		}
		return false
	}
}

func distinctMetrics(p *types.ResumeProfile) int {
	seen := make(map[types.MetricType]bool)
	for _, claim := range p.Claims {
		seen[claim.Metric] = true
	}
	return len(seen)
}
