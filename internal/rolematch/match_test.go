package rolematch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func profileWithSkills(names ...string) *types.ResumeProfile {
	p := &types.ResumeProfile{}
	for _, name := range names {
		p.Skills = append(p.Skills, types.SkillToken{
			Raw:        name,
			Canonical:  name,
			Category:   types.CategoryLanguage,
			Confidence: types.ConfidenceExact,
		})
	}
	return p
}

func TestMatch_MissingWeightsSubtractFromHundred(t *testing.T) {
	role := types.RoleProfile{
		Name: "Backend Developer",
		RequiredSkills: []types.RequiredSkill{
			{Skill: "A", Weight: 5},
			{Skill: "B", Weight: 3},
			{Skill: "C", Weight: 2},
		},
	}

	result := Match(profileWithSkills("B"), role)

	assert.Equal(t, 93, result.Compatibility)
	assert.Equal(t, []string{"B"}, result.Matched)
	require.Len(t, result.Missing, 2)
	assert.Equal(t, "A", result.Missing[0].Skill)
	assert.Equal(t, "C", result.Missing[1].Skill)
}

func TestMatch_AllSkillsPresent(t *testing.T) {
	role := types.RoleProfile{
		Name: "Software Engineer",
		RequiredSkills: []types.RequiredSkill{
			{Skill: "Go", Weight: 20},
			{Skill: "Docker", Weight: 10},
		},
	}

	result := Match(profileWithSkills("Go", "Docker"), role)

	assert.Equal(t, 100, result.Compatibility)
	assert.Empty(t, result.Missing)
	assert.Equal(t, []string{"Go", "Docker"}, result.Matched)
}

func TestMatch_CompatibilityFloorsAtZero(t *testing.T) {
	role := types.RoleProfile{
		Name: "Everything Expert",
		RequiredSkills: []types.RequiredSkill{
			{Skill: "A", Weight: 60},
			{Skill: "B", Weight: 60},
		},
	}

	result := Match(profileWithSkills(), role)

	assert.Equal(t, 0, result.Compatibility)
	assert.Len(t, result.Missing, 2)
}

func TestMatch_MissingSortedByWeightThenDeclaredOrder(t *testing.T) {
	role := types.RoleProfile{
		Name: "Role",
		RequiredSkills: []types.RequiredSkill{
			{Skill: "Low", Weight: 2},
			{Skill: "TiedFirst", Weight: 5},
			{Skill: "TiedSecond", Weight: 5},
			{Skill: "High", Weight: 9},
		},
	}

	result := Match(profileWithSkills(), role)

	require.Len(t, result.Missing, 4)
	assert.Equal(t, "High", result.Missing[0].Skill)
	assert.Equal(t, "TiedFirst", result.Missing[1].Skill)
	assert.Equal(t, "TiedSecond", result.Missing[2].Skill)
	assert.Equal(t, "Low", result.Missing[3].Skill)
}

func TestMatchAll_ResultsFollowRoleOrder(t *testing.T) {
	roles := []types.RoleProfile{
		{Name: "First", RequiredSkills: []types.RequiredSkill{{Skill: "Go", Weight: 10}}},
		{Name: "Second", RequiredSkills: []types.RequiredSkill{{Skill: "Rust", Weight: 10}}},
		{Name: "Third", RequiredSkills: []types.RequiredSkill{{Skill: "Go", Weight: 4}, {Skill: "Docker", Weight: 6}}},
	}

	results, err := MatchAll(context.Background(), profileWithSkills("Go"), roles)

	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "First", results[0].Role)
	assert.Equal(t, 100, results[0].Compatibility)
	assert.Equal(t, "Second", results[1].Role)
	assert.Equal(t, 90, results[1].Compatibility)
	assert.Equal(t, "Third", results[2].Role)
	assert.Equal(t, 94, results[2].Compatibility)
}

func TestMatchAll_EmptyRolesReturnsEmpty(t *testing.T) {
	results, err := MatchAll(context.Background(), profileWithSkills("Go"), nil)

	require.NoError(t, err)
	assert.Empty(t, results)
}
