package types

// ContactInfo holds extracted reachability data. Absent fields are empty
// strings; absence is a valid, scoreable state.
type ContactInfo struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
}

// HasEmail reports whether a validated email address was extracted.
func (c ContactInfo) HasEmail() bool { return c.Email != "" }

// HasPhone reports whether a validated phone number was extracted.
func (c ContactInfo) HasPhone() bool { return c.Phone != "" }

// SkillCategory is the canonical category of a recognized skill.
type SkillCategory string

// Skill categories fixed by the static taxonomy.
const (
	CategoryLanguage  SkillCategory = "language"
	CategoryFramework SkillCategory = "framework"
	CategoryTool      SkillCategory = "tool"
	CategorySoftSkill SkillCategory = "soft_skill"
	CategoryDomain    SkillCategory = "domain"
)

// MatchConfidence distinguishes exact taxonomy matches from fuzzy ones.
type MatchConfidence string

// Match confidence levels.
const (
	ConfidenceExact MatchConfidence = "exact"
	ConfidenceFuzzy MatchConfidence = "fuzzy"
)

// SkillToken is one recognized skill mention, collapsed by canonical form.
type SkillToken struct {
	Raw        string          `json:"raw"`
	Canonical  string          `json:"canonical"`
	Category   SkillCategory   `json:"category"`
	Confidence MatchConfidence `json:"confidence"`
}

// MetricType classifies the numeric impact found in a quantified claim.
type MetricType string

// Metric types in detection priority order: percent > currency > count > duration.
const (
	MetricPercent  MetricType = "percent"
	MetricCurrency MetricType = "currency"
	MetricCount    MetricType = "count"
	MetricDuration MetricType = "duration"
)

// QuantifiedClaim is a line containing measurable impact, found only in
// experience or project sections.
type QuantifiedClaim struct {
	LineIndex int        `json:"line_index"`
	Metric    MetricType `json:"metric"`
	Value     float64    `json:"value"`
	Text      string     `json:"text"`
}

// ExperienceEntry holds positional facts extracted from an experience or
// project section. Missing dates or titles are recorded as empty rather than
// failing extraction.
type ExperienceEntry struct {
	Title     string `json:"title,omitempty"`
	DateRange string `json:"date_range,omitempty"`
	LineIndex int    `json:"line_index"`
}

// ResumeProfile is the aggregate structured view of one resume. It is built
// once per pipeline run and never mutated after construction.
type ResumeProfile struct {
	Contact         ContactInfo         `json:"contact"`
	Skills          []SkillToken        `json:"skills"`
	Claims          []QuantifiedClaim   `json:"claims"`
	Experience      []ExperienceEntry   `json:"experience"`
	SectionCoverage map[SectionKind]int `json:"section_coverage"`
	WordCount       int                 `json:"word_count"`
}

// HasSkill reports whether the profile contains a skill with the given
// canonical name (case-sensitive; canonical forms are taxonomy-defined).
func (p *ResumeProfile) HasSkill(canonical string) bool {
	for _, s := range p.Skills {
		if s.Canonical == canonical {
			return true
		}
	}
	return false
}

// HasSection reports whether at least one section of the given kind was found.
func (p *ResumeProfile) HasSection(kind SectionKind) bool {
	return p.SectionCoverage[kind] > 0
}
