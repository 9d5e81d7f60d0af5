// Package pipeline provides the high-level orchestration for a resume
// analysis: normalize, segment, extract, quantify, score, then role matching
// and insights, with an optional AI narrative at the end. Every run is
// stateless; concurrent runs share only the immutable config.
package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/extract"
	"github.com/jonathan/resume-analyzer/internal/insights"
	"github.com/jonathan/resume-analyzer/internal/narrative"
	"github.com/jonathan/resume-analyzer/internal/normalize"
	"github.com/jonathan/resume-analyzer/internal/quantify"
	"github.com/jonathan/resume-analyzer/internal/rolematch"
	"github.com/jonathan/resume-analyzer/internal/scoring"
	"github.com/jonathan/resume-analyzer/internal/segment"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// defaultAITimeout bounds the narrative call when the caller does not set one.
const defaultAITimeout = 15 * time.Second

// unavailableNote is the degraded-narrative note on the result.
const unavailableNote = "AI insight unavailable"

// UnknownRoleError is returned when a requested role name is not configured.
type UnknownRoleError struct {
	Role string
}

func (e *UnknownRoleError) Error() string {
	return fmt.Sprintf("unknown role profile: %q", e.Role)
}

// Options selects per-run behavior.
type Options struct {
	// Roles filters role matching to the named profiles. Empty means all
	// configured roles. An unknown name fails the run.
	Roles []string
	// Readable is the document extractor's judgment, when one ran. False
	// short-circuits to a sparse result.
	Readable *bool
	// ReadabilityNote explains a false Readable flag.
	ReadabilityNote string
	// AI enables the narrative generator.
	AI bool
	// AITimeout bounds the narrative call; zero means the default.
	AITimeout time.Duration
}

// Analyzer runs analyses against one loaded config. It is safe for
// concurrent use.
type Analyzer struct {
	cfg       *config.Config
	generator narrative.Generator
}

// New creates an Analyzer. A nil generator disables the AI narrative.
func New(cfg *config.Config, generator narrative.Generator) *Analyzer {
	if generator == nil {
		generator = narrative.Disabled{}
	}
	return &Analyzer{cfg: cfg, generator: generator}
}

// Analyze runs the full pipeline over one resume text. Sparse or unreadable
// content is a terminal result, not an error; the only error paths are
// unknown role names and context cancellation.
func (a *Analyzer) Analyze(ctx context.Context, text string, opts Options) (*types.AnalysisResult, error) {
	result := &types.AnalysisResult{ID: uuid.New()}

	if sparse := a.sparseCheck(text, opts); sparse != nil {
		result.Sparse = sparse
		return result, nil
	}

	roles, err := a.selectRoles(opts.Roles)
	if err != nil {
		return nil, err
	}

	doc := normalize.Normalize(text)
	sections := segment.Segment(doc, a.cfg)
	claims := quantify.Detect(doc, sections)
	profile := extract.Extract(doc, sections, claims, a.cfg)
	report := scoring.Score(profile, a.cfg)

	result.Profile = profile
	result.Report = report
	result.Strengths, result.Weaknesses = insights.Analyze(report, a.cfg)

	// Role matching and the narrative call are independent of each other;
	// run them in parallel. The narrative branch never fails the run.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		matches, err := rolematch.MatchAll(gctx, profile, roles)
		if err != nil {
			return err
		}
		result.RoleMatches = matches
		return nil
	})
	if opts.AI {
		g.Go(func() error {
			result.AI = a.generateNarrative(gctx, profile, report, opts.AITimeout)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}

// sparseCheck applies the configured character/word minimums and the
// extractor's readability judgment. A non-nil return is terminal.
func (a *Analyzer) sparseCheck(text string, opts Options) *types.SparseResult {
	chars := len(strings.TrimSpace(text))
	words := len(strings.Fields(text))

	if opts.Readable != nil && !*opts.Readable {
		reason := opts.ReadabilityNote
		if reason == "" {
			reason = "document content was judged unreadable"
		}
		return &types.SparseResult{Reason: reason, CharCount: chars, WordCount: words}
	}
	if chars < a.cfg.Limits.MinChars {
		return &types.SparseResult{
			Reason:    fmt.Sprintf("content too sparse: %d characters, need at least %d", chars, a.cfg.Limits.MinChars),
			CharCount: chars,
			WordCount: words,
		}
	}
	if words < a.cfg.Limits.MinWords {
		return &types.SparseResult{
			Reason:    fmt.Sprintf("content too sparse: %d words, need at least %d", words, a.cfg.Limits.MinWords),
			CharCount: chars,
			WordCount: words,
		}
	}
	return nil
}

// selectRoles resolves the requested role names against the config, or
// returns every configured role when no filter is given.
func (a *Analyzer) selectRoles(names []string) ([]types.RoleProfile, error) {
	if len(names) == 0 {
		return a.cfg.RoleProfiles, nil
	}

	roles := make([]types.RoleProfile, 0, len(names))
	for _, name := range names {
		role, ok := a.cfg.RoleByName(name)
		if !ok {
			return nil, &UnknownRoleError{Role: name}
		}
		roles = append(roles, role)
	}
	return roles, nil
}

// generateNarrative runs the generator under its own deadline and degrades
// any failure to an unavailable insight.
func (a *Analyzer) generateNarrative(ctx context.Context, profile *types.ResumeProfile, report *types.ScoreReport, timeout time.Duration) *types.AIInsight {
	if timeout <= 0 {
		timeout = defaultAITimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	text, err := a.generator.Generate(ctx, profile, report)
	if err != nil {
		return &types.AIInsight{Available: false, Note: unavailableNote}
	}
	return &types.AIInsight{Available: true, Narrative: text}
}
