// Package rolematch compares an extracted skill set against weighted role
// profiles. Matching is read-only over the resume profile and additive only:
// it contributes compatibility results without touching the score report.
package rolematch

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Match computes the compatibility of a resume profile with one role.
// Compatibility starts at 100 and loses each missing skill's weight, floored
// at 0. Missing skills come back sorted by weight descending, ties broken by
// the role's declared order, so the caller can present the most valuable gap
// first.
func Match(p *types.ResumeProfile, role types.RoleProfile) types.RoleMatchResult {
	result := types.RoleMatchResult{
		Role:          role.Name,
		Compatibility: 100,
	}

	for _, req := range role.RequiredSkills {
		if p.HasSkill(req.Skill) {
			result.Matched = append(result.Matched, req.Skill)
			continue
		}
		result.Missing = append(result.Missing, types.MissingSkill{
			Skill:  req.Skill,
			Weight: req.Weight,
		})
		result.Compatibility -= req.Weight
	}

	if result.Compatibility < 0 {
		result.Compatibility = 0
	}

	// Stable sort preserves declared order among equal weights.
	sort.SliceStable(result.Missing, func(i, j int) bool {
		return result.Missing[i].Weight > result.Missing[j].Weight
	})

	return result
}

// MatchAll evaluates every role concurrently. Each goroutine writes only its
// own slot, so results always come back in the roles' given order regardless
// of scheduling.
func MatchAll(ctx context.Context, p *types.ResumeProfile, roles []types.RoleProfile) ([]types.RoleMatchResult, error) {
	results := make([]types.RoleMatchResult, len(roles))

	g, ctx := errgroup.WithContext(ctx)
	for i, role := range roles {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = Match(p, role)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
