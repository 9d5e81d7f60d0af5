package ratelimit

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock drives the limiter deterministically, without sleeps.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func testLimiter(settings Settings) (*Limiter, *fakeClock) {
	settings.SweepEvery = 0 // no background goroutine in tests
	l := New(settings)
	clock := &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	l.now = clock.now
	return l, clock
}

func enabled(perMinute int) Settings {
	return Settings{Enabled: true, PerMinute: perMinute, MaxIdle: time.Hour}
}

func TestCheck_BurstThenRefusal(t *testing.T) {
	l, _ := testLimiter(enabled(10))

	for i := 0; i < 10; i++ {
		d := l.Check("10.0.0.1", "/roles", http.MethodGet)
		require.True(t, d.Allowed, "request %d", i+1)
		assert.Equal(t, 10, d.Limit)
		assert.Equal(t, 9-i, d.Remaining)
	}

	d := l.Check("10.0.0.1", "/roles", http.MethodGet)
	assert.False(t, d.Allowed)
	assert.Equal(t, 0, d.Remaining)
	assert.Greater(t, d.RetryAfter, time.Duration(0))
	assert.True(t, d.ResetAt.After(l.now()))
}

func TestCheck_TokensRefillOverTime(t *testing.T) {
	l, clock := testLimiter(enabled(60)) // one token per second

	for i := 0; i < 60; i++ {
		require.True(t, l.Check("c", "/roles", http.MethodGet).Allowed)
	}
	require.False(t, l.Check("c", "/roles", http.MethodGet).Allowed)

	clock.advance(2 * time.Second)
	assert.True(t, l.Check("c", "/roles", http.MethodGet).Allowed)
	assert.True(t, l.Check("c", "/roles", http.MethodGet).Allowed)
	assert.False(t, l.Check("c", "/roles", http.MethodGet).Allowed)
}

func TestCheck_RouteRuleOverridesDefault(t *testing.T) {
	settings := enabled(100)
	settings.Rules = []Rule{{Path: "/analyze", Method: http.MethodPost, PerMinute: 60, Burst: 2}}
	l, _ := testLimiter(settings)

	assert.True(t, l.Check("c", "/analyze", http.MethodPost).Allowed)
	assert.True(t, l.Check("c", "/analyze", http.MethodPost).Allowed)
	d := l.Check("c", "/analyze", http.MethodPost)
	assert.False(t, d.Allowed)
	assert.Equal(t, 60, d.Limit)

	// The default budget still applies to other routes.
	assert.True(t, l.Check("c", "/roles", http.MethodGet).Allowed)
}

func TestCheck_UnmeteredRoute(t *testing.T) {
	settings := enabled(1)
	settings.Rules = DefaultRules()
	l, _ := testLimiter(settings)

	for i := 0; i < 50; i++ {
		d := l.Check("c", "/health", http.MethodGet)
		require.True(t, d.Allowed)
		assert.Zero(t, d.Limit)
	}
}

func TestCheck_ExemptClientBypassesMetering(t *testing.T) {
	settings := enabled(1)
	settings.Exempt = map[string]bool{"10.0.0.9": true}
	l, _ := testLimiter(settings)

	for i := 0; i < 20; i++ {
		require.True(t, l.Check("10.0.0.9", "/roles", http.MethodGet).Allowed)
	}
}

func TestCheck_BlockedClientAlwaysRefused(t *testing.T) {
	settings := enabled(100)
	settings.Blocked = map[string]bool{"10.0.0.66": true}
	l, _ := testLimiter(settings)

	d := l.Check("10.0.0.66", "/roles", http.MethodGet)
	assert.False(t, d.Allowed)
	assert.True(t, l.Check("10.0.0.1", "/roles", http.MethodGet).Allowed)
}

func TestCheck_DisabledAdmitsEverything(t *testing.T) {
	l, _ := testLimiter(Settings{Enabled: false})

	for i := 0; i < 100; i++ {
		require.True(t, l.Check("c", "/analyze", http.MethodPost).Allowed)
	}
}

func TestCheck_ClientsHaveIndependentBudgets(t *testing.T) {
	l, _ := testLimiter(enabled(1))

	require.True(t, l.Check("a", "/roles", http.MethodGet).Allowed)
	require.False(t, l.Check("a", "/roles", http.MethodGet).Allowed)
	assert.True(t, l.Check("b", "/roles", http.MethodGet).Allowed)
}

func TestCheck_MethodsHaveIndependentBudgets(t *testing.T) {
	settings := enabled(100)
	settings.Rules = []Rule{{Path: "/analyze", Method: http.MethodPost, PerMinute: 60, Burst: 1}}
	l, _ := testLimiter(settings)

	require.True(t, l.Check("c", "/analyze", http.MethodPost).Allowed)
	require.False(t, l.Check("c", "/analyze", http.MethodPost).Allowed)
	assert.True(t, l.Check("c", "/analyze", http.MethodGet).Allowed)
}

func TestSweep_DropsIdleBuckets(t *testing.T) {
	settings := enabled(10)
	settings.MaxIdle = 30 * time.Minute
	l, clock := testLimiter(settings)

	l.Check("idle", "/roles", http.MethodGet)
	clock.advance(20 * time.Minute)
	l.Check("busy", "/roles", http.MethodGet)
	clock.advance(15 * time.Minute)

	l.sweep()

	l.mu.Lock()
	defer l.mu.Unlock()
	assert.Len(t, l.buckets, 1)
	for key := range l.buckets {
		assert.Contains(t, key, "busy")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "")

	settings := FromEnv()

	assert.True(t, settings.Enabled)
	assert.Equal(t, 300, settings.PerMinute)
	assert.Equal(t, time.Hour, settings.MaxIdle)
	assert.NotEmpty(t, settings.Rules)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "42")
	t.Setenv("RATE_LIMIT_SWEEP_INTERVAL", "90s")
	t.Setenv("RATE_LIMIT_EXEMPT", "10.0.0.1, 10.0.0.2")
	t.Setenv("RATE_LIMIT_BLOCKED", "10.9.9.9")

	settings := FromEnv()

	assert.False(t, settings.Enabled)
	assert.Equal(t, 42, settings.PerMinute)
	assert.Equal(t, 90*time.Second, settings.SweepEvery)
	assert.True(t, settings.Exempt["10.0.0.1"])
	assert.True(t, settings.Exempt["10.0.0.2"])
	assert.True(t, settings.Blocked["10.9.9.9"])
}
