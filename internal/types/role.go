package types

// RequiredSkill is one weighted skill requirement in a role profile.
// Weight is the number of compatibility points the skill is worth.
type RequiredSkill struct {
	Skill  string `json:"skill" validate:"required"`
	Weight int    `json:"weight" validate:"gt=0"`
}

// RoleProfile is the static configuration of a target job role. It is
// supplied by configuration and read-only to the core.
type RoleProfile struct {
	Name string `json:"name" validate:"required"`
	// RequiredSkills in declared order; declaration order breaks weight ties
	// when sorting missing skills.
	RequiredSkills []RequiredSkill `json:"required_skills" validate:"required,min=1,dive"`
	Seniority      string          `json:"seniority,omitempty" validate:"omitempty,oneof=junior mid senior"`
}

// TotalWeight returns the sum of all required skill weights.
func (r RoleProfile) TotalWeight() int {
	total := 0
	for _, s := range r.RequiredSkills {
		total += s.Weight
	}
	return total
}

// MissingSkill is a required skill absent from a resume profile.
type MissingSkill struct {
	Skill  string `json:"skill"`
	Weight int    `json:"weight"`
}

// RoleMatchResult describes the fit of a resume profile to one role profile.
// Compatibility is in [0,100]; Missing is sorted by weight descending, ties
// broken by the role profile's declared order.
type RoleMatchResult struct {
	Role          string         `json:"role"`
	Compatibility int            `json:"compatibility"`
	Matched       []string       `json:"matched,omitempty"`
	Missing       []MissingSkill `json:"missing,omitempty"`
}
