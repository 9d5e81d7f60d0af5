// Package narrative provides the optional AI-generated commentary on an
// analysis. It is a collaborator behind a capability interface: the
// deterministic pipeline never depends on its availability, and any failure
// here degrades to an unavailable insight rather than an error.
package narrative

import (
	"context"
	"errors"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// ErrUnavailable is returned when no narrative backend is configured or the
// backend cannot produce a result. Callers degrade to AIInsight{Available:
// false} on any error, this one included.
var ErrUnavailable = errors.New("narrative generation unavailable")

// Generator produces a prose narrative for a completed analysis. The context
// carries the caller's deadline; implementations must respect it.
type Generator interface {
	Generate(ctx context.Context, profile *types.ResumeProfile, report *types.ScoreReport) (string, error)
	Close() error
}

// Disabled is the Generator used when no API key is configured. It fails
// immediately with ErrUnavailable.
type Disabled struct{}

// Generate always returns ErrUnavailable.
func (Disabled) Generate(context.Context, *types.ResumeProfile, *types.ScoreReport) (string, error) {
	return "", ErrUnavailable
}

// Close is a no-op.
func (Disabled) Close() error { return nil }
