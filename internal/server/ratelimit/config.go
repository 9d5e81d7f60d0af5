package ratelimit

import (
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

// Rule is the budget for one route. PerMinute <= 0 marks the route
// unmetered.
type Rule struct {
	Path      string
	Method    string
	PerMinute int
	Burst     int
}

// Settings configures a Limiter. Clients in Exempt bypass metering entirely;
// clients in Blocked are refused before any bucket is consulted.
type Settings struct {
	Enabled    bool
	PerMinute  int
	SweepEvery time.Duration
	MaxIdle    time.Duration
	Exempt     map[string]bool
	Blocked    map[string]bool
	Rules      []Rule
}

// FromEnv builds Settings from RATE_LIMIT_* environment variables, falling
// back to the built-in route rules and defaults.
func FromEnv() Settings {
	return Settings{
		Enabled:    envBool("RATE_LIMIT_ENABLED", true),
		PerMinute:  envInt("RATE_LIMIT_PER_MINUTE", 300),
		SweepEvery: envDuration("RATE_LIMIT_SWEEP_INTERVAL", 5*time.Minute),
		MaxIdle:    envDuration("RATE_LIMIT_MAX_IDLE", time.Hour),
		Exempt:     splitClients(os.Getenv("RATE_LIMIT_EXEMPT")),
		Blocked:    splitClients(os.Getenv("RATE_LIMIT_BLOCKED")),
		Rules:      DefaultRules(),
	}
}

// DefaultRules returns the built-in route budgets. Uploads pay for text
// extraction on top of analysis, token issuance is kept slow to discourage
// secret guessing, and the health check is unmetered.
func DefaultRules() []Rule {
	return []Rule{
		{Path: "/analyze/upload", Method: http.MethodPost, PerMinute: 30, Burst: 5},
		{Path: "/analyze", Method: http.MethodPost, PerMinute: 60, Burst: 10},
		{Path: "/token", Method: http.MethodPost, PerMinute: 10, Burst: 3},
		{Path: "/health", Method: http.MethodGet, PerMinute: 0},
	}
}

func envBool(key string, fallback bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

// splitClients parses a comma-separated client list into a membership set.
func splitClients(value string) map[string]bool {
	set := make(map[string]bool)
	for _, id := range strings.Split(value, ",") {
		if id = strings.TrimSpace(id); id != "" {
			set[id] = true
		}
	}
	return set
}
