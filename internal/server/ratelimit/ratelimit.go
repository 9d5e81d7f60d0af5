// Package ratelimit admits or refuses HTTP requests using per-client,
// per-route token buckets. Analysis endpoints are more expensive than reads,
// so each route carries its own budget.
package ratelimit

import (
	"sync"
	"time"
)

// Decision is the outcome of one admission check, carrying what the caller
// needs for X-RateLimit response headers.
type Decision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetAt    time.Time
	RetryAfter time.Duration
}

// allowAll is the decision for unmetered traffic; Limit 0 tells the caller
// to omit the rate headers.
var allowAll = Decision{Allowed: true}

// bucket tracks one client's budget on one route. Tokens refill continuously
// at rate per second up to capacity; updated doubles as the idle marker for
// the sweeper.
type bucket struct {
	tokens   float64
	capacity float64
	rate     float64
	updated  time.Time
}

func (b *bucket) refill(now time.Time) {
	elapsed := now.Sub(b.updated).Seconds()
	if elapsed > 0 {
		b.tokens += elapsed * b.rate
		if b.tokens > b.capacity {
			b.tokens = b.capacity
		}
	}
	b.updated = now
}

// Limiter meters clients against the configured route budgets. The zero
// value is not usable; create one with New.
type Limiter struct {
	settings Settings
	now      func() time.Time

	mu      sync.Mutex
	buckets map[string]*bucket

	sweeper *time.Ticker
	done    chan struct{}
}

// New creates a Limiter and, when metering is enabled, starts the background
// sweep that drops idle buckets.
func New(settings Settings) *Limiter {
	l := &Limiter{
		settings: settings,
		now:      time.Now,
		buckets:  make(map[string]*bucket),
		done:     make(chan struct{}),
	}

	if settings.Enabled && settings.SweepEvery > 0 {
		l.sweeper = time.NewTicker(settings.SweepEvery)
		go l.sweepLoop()
	}

	return l
}

// Check decides whether one request from the given client may proceed.
// Exempt clients and unmetered routes are always admitted; blocked clients
// never are.
func (l *Limiter) Check(client, path, method string) Decision {
	if !l.settings.Enabled || l.settings.Exempt[client] {
		return allowAll
	}
	if l.settings.Blocked[client] {
		return Decision{Allowed: false}
	}

	limit, burst := l.budgetFor(path, method)
	if limit <= 0 {
		return allowAll
	}

	now := l.now()
	key := client + " " + method + " " + path

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{
			tokens:   float64(burst),
			capacity: float64(burst),
			rate:     float64(limit) / 60,
			updated:  now,
		}
		l.buckets[key] = b
	}

	b.refill(now)

	d := Decision{Limit: limit}
	if b.tokens >= 1 {
		b.tokens--
		d.Allowed = true
	} else {
		d.RetryAfter = durationFor(1-b.tokens, b.rate)
	}
	d.Remaining = int(b.tokens)
	d.ResetAt = now.Add(durationFor(b.capacity-b.tokens, b.rate))
	return d
}

// Close stops the background sweep. Safe to call once.
func (l *Limiter) Close() {
	if l.sweeper != nil {
		l.sweeper.Stop()
		close(l.done)
	}
}

// budgetFor resolves the route's budget: exact rule match first, then the
// default. A rule with PerMinute <= 0 marks the route unmetered.
func (l *Limiter) budgetFor(path, method string) (limit, burst int) {
	for _, rule := range l.settings.Rules {
		if rule.Path == path && rule.Method == method {
			return rule.PerMinute, ruleBurst(rule)
		}
	}
	return l.settings.PerMinute, l.settings.PerMinute
}

func ruleBurst(r Rule) int {
	if r.Burst > 0 {
		return r.Burst
	}
	return r.PerMinute
}

// durationFor converts a token deficit into wall time at the given refill
// rate.
func durationFor(tokens, rate float64) time.Duration {
	if tokens <= 0 || rate <= 0 {
		return 0
	}
	return time.Duration(tokens / rate * float64(time.Second))
}

func (l *Limiter) sweepLoop() {
	for {
		select {
		case <-l.sweeper.C:
			l.sweep()
		case <-l.done:
			return
		}
	}
}

// sweep discards buckets untouched for longer than MaxIdle. An idle bucket
// is full anyway, so dropping it never changes an admission decision.
func (l *Limiter) sweep() {
	cutoff := l.now().Add(-l.settings.MaxIdle)

	l.mu.Lock()
	defer l.mu.Unlock()
	for key, b := range l.buckets {
		if b.updated.Before(cutoff) {
			delete(l.buckets, key)
		}
	}
}
