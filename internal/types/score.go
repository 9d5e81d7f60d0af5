package types

// ScoreCategory names one of the five scoring dimensions.
type ScoreCategory string

// The five scoring dimensions. Their point maxima are configuration-defined
// and sum to 100 by construction.
const (
	ScoreContact      ScoreCategory = "contact"
	ScoreSkills       ScoreCategory = "skills"
	ScoreExperience   ScoreCategory = "experience_quality"
	ScoreAchievements ScoreCategory = "quantified_achievements"
	ScoreContent      ScoreCategory = "content_optimization"
)

// ScoreCategories lists the dimensions in report order.
var ScoreCategories = []ScoreCategory{
	ScoreContact,
	ScoreSkills,
	ScoreExperience,
	ScoreAchievements,
	ScoreContent,
}

// CategoryScore is one scoring dimension with itemized reasoning.
// Points never exceed Max, and Reasons is non-empty whenever Points < Max.
type CategoryScore struct {
	Category ScoreCategory `json:"category"`
	Points   int           `json:"points"`
	Max      int           `json:"max"`
	Reasons  []string      `json:"reasons"`
}

// Ratio returns the earned/max ratio, or 0 when Max is zero.
func (c CategoryScore) Ratio() float64 {
	if c.Max <= 0 {
		return 0
	}
	return float64(c.Points) / float64(c.Max)
}

// ScoreReport is the full scoring result. Total is always recomputed from the
// category scores so the two can never drift apart.
type ScoreReport struct {
	Categories []CategoryScore `json:"categories"`
	Total      int             `json:"total"`
	Grade      string          `json:"grade"`
}

// CategoryByName returns the category score with the given name, if present.
func (r *ScoreReport) CategoryByName(name ScoreCategory) (CategoryScore, bool) {
	for _, c := range r.Categories {
		if c.Category == name {
			return c, true
		}
	}
	return CategoryScore{}, false
}

// SumPoints returns the sum of earned points across all categories.
func (r *ScoreReport) SumPoints() int {
	sum := 0
	for _, c := range r.Categories {
		sum += c.Points
	}
	return sum
}
