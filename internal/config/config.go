// Package config provides loading and fail-fast validation of the analyzer's
// static configuration tables: heading synonyms, skill taxonomy, role
// profiles, category maxima, and grade tiers.
package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-analyzer/internal/schemas"
	"github.com/jonathan/resume-analyzer/internal/types"
)

//go:embed default_config.json
var defaultConfigJSON []byte

//go:embed analyzer_config.schema.json
var configSchemaJSON []byte

// TaxonomyEntry maps a canonical skill name and its aliases to a category.
type TaxonomyEntry struct {
	Canonical string              `json:"canonical" validate:"required"`
	Category  types.SkillCategory `json:"category" validate:"required,oneof=language framework tool soft_skill domain"`
	Aliases   []string            `json:"aliases,omitempty"`
}

// GradeTier is one named band of total score values. Bands are selected by
// the highest MinTotal not exceeding the total.
type GradeTier struct {
	Name     string `json:"name" validate:"required"`
	MinTotal int    `json:"min_total" validate:"gte=0,lte=100"`
}

// Limits holds input acceptance thresholds.
type Limits struct {
	MinChars      int `json:"min_chars" validate:"gt=0"`
	MinWords      int `json:"min_words" validate:"gt=0"`
	MaxInputBytes int `json:"max_input_bytes" validate:"gt=0"`
}

// InsightThresholds holds the earned/max ratio cutoffs used by the
// strength/weakness analyzer.
type InsightThresholds struct {
	StrengthRatio float64 `json:"strength_ratio" validate:"gt=0,lte=1"`
	WeaknessRatio float64 `json:"weakness_ratio" validate:"gte=0,lt=1"`
}

// Config is the immutable configuration for one analyzer instance. It is
// loaded once at startup and passed explicitly into each component; changing
// it changes scoring outcomes but never the algorithm.
type Config struct {
	HeadingSynonyms map[types.SectionKind][]string `json:"heading_synonyms" validate:"required"`
	SkillTaxonomy   []TaxonomyEntry                `json:"skill_taxonomy" validate:"required,min=1,dive"`
	RoleProfiles    []types.RoleProfile            `json:"role_profiles" validate:"required,min=1,dive"`
	CategoryMaxima  map[types.ScoreCategory]int    `json:"category_maxima" validate:"required"`
	GradeTiers      []GradeTier                    `json:"grade_tiers" validate:"required,min=2,dive"`
	Limits          Limits                         `json:"limits"`
	Insights        InsightThresholds              `json:"insight_thresholds"`

	// aliasIndex maps normalized alias/canonical forms to taxonomy entries.
	// Built once at load time.
	aliasIndex map[string]TaxonomyEntry
}

// Load reads, schema-validates, and semantically validates a configuration
// file. Any failure is fatal to the caller: a malformed table is a static
// programming error, not a per-request condition.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return Parse(data)
}

// Default returns the embedded default configuration.
func Default() (*Config, error) {
	return Parse(defaultConfigJSON)
}

// Parse validates raw configuration JSON and builds the immutable Config.
func Parse(data []byte) (*Config, error) {
	if err := schemas.Validate(configSchemaJSON, data); err != nil {
		return nil, fmt.Errorf("config rejected by schema: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config failed field validation: %w", err)
	}

	if err := cfg.check(); err != nil {
		return nil, err
	}

	cfg.buildAliasIndex()
	return &cfg, nil
}

// check enforces the cross-field invariants the struct tags cannot express.
func (c *Config) check() error {
	// Every non-catch-all section kind needs at least one heading synonym.
	for _, kind := range types.SectionKindPriority {
		if kind == types.KindContact {
			// The contact block is found positionally, a heading is optional.
			continue
		}
		if len(c.HeadingSynonyms[kind]) == 0 {
			return fmt.Errorf("config error: no heading synonyms for section kind %q", kind)
		}
	}

	// The five category maxima must all be present and sum to exactly 100.
	sum := 0
	for _, cat := range types.ScoreCategories {
		max, ok := c.CategoryMaxima[cat]
		if !ok {
			return fmt.Errorf("config error: missing category maximum for %q", cat)
		}
		if max <= 0 {
			return fmt.Errorf("config error: category maximum for %q must be positive", cat)
		}
		sum += max
	}
	if sum != 100 {
		return fmt.Errorf("config error: category maxima sum to %d, want 100", sum)
	}

	// Grade tiers must have unique boundaries and a tier reachable from 0.
	seen := make(map[int]bool)
	lowest := 101
	for _, tier := range c.GradeTiers {
		if seen[tier.MinTotal] {
			return fmt.Errorf("config error: duplicate grade tier boundary %d", tier.MinTotal)
		}
		seen[tier.MinTotal] = true
		if tier.MinTotal < lowest {
			lowest = tier.MinTotal
		}
	}
	if lowest != 0 {
		return fmt.Errorf("config error: grade tiers must include a band starting at 0, lowest is %d", lowest)
	}

	// Taxonomy aliases and canonical names may not collide across entries.
	owner := make(map[string]string)
	for _, entry := range c.SkillTaxonomy {
		for _, form := range append([]string{entry.Canonical}, entry.Aliases...) {
			key := NormalizeToken(form)
			if key == "" {
				return fmt.Errorf("config error: empty alias in taxonomy entry %q", entry.Canonical)
			}
			if prev, dup := owner[key]; dup && prev != entry.Canonical {
				return fmt.Errorf("config error: alias %q claimed by both %q and %q", form, prev, entry.Canonical)
			}
			owner[key] = entry.Canonical
		}
	}

	// Role names must be unique.
	roles := make(map[string]bool)
	for _, role := range c.RoleProfiles {
		if roles[role.Name] {
			return fmt.Errorf("config error: duplicate role profile %q", role.Name)
		}
		roles[role.Name] = true
	}

	if c.Insights.WeaknessRatio >= c.Insights.StrengthRatio {
		return fmt.Errorf("config error: weakness_ratio %.2f must be below strength_ratio %.2f",
			c.Insights.WeaknessRatio, c.Insights.StrengthRatio)
	}

	return nil
}

// buildAliasIndex precomputes the normalized alias lookup table.
func (c *Config) buildAliasIndex() {
	c.aliasIndex = make(map[string]TaxonomyEntry)
	for _, entry := range c.SkillTaxonomy {
		c.aliasIndex[NormalizeToken(entry.Canonical)] = entry
		for _, alias := range entry.Aliases {
			c.aliasIndex[NormalizeToken(alias)] = entry
		}
	}
}

// LookupSkill resolves a raw token against the taxonomy. The boolean reports
// whether the token is a recognized skill.
func (c *Config) LookupSkill(token string) (TaxonomyEntry, bool) {
	entry, ok := c.aliasIndex[NormalizeToken(token)]
	return entry, ok
}

// MaxFor returns the configured point maximum for a category.
func (c *Config) MaxFor(cat types.ScoreCategory) int {
	return c.CategoryMaxima[cat]
}

// GradeFor maps a total score to its grade tier name.
func (c *Config) GradeFor(total int) string {
	best := GradeTier{MinTotal: -1}
	for _, tier := range c.GradeTiers {
		if total >= tier.MinTotal && tier.MinTotal > best.MinTotal {
			best = tier
		}
	}
	return best.Name
}

// RoleByName returns the role profile with the given name, if configured.
func (c *Config) RoleByName(name string) (types.RoleProfile, bool) {
	for _, role := range c.RoleProfiles {
		if strings.EqualFold(role.Name, name) {
			return role, true
		}
	}
	return types.RoleProfile{}, false
}

// NormalizeToken lowercases a token and strips the punctuation that commonly
// decorates skill mentions, so "Node.js," and "nodejs" collide.
func NormalizeToken(token string) string {
	lower := strings.ToLower(strings.TrimSpace(token))
	var sb strings.Builder
	for _, r := range lower {
		switch r {
		case '.', ',', ';', ':', '(', ')', '[', ']', '/', '\'', '"':
			continue
		default:
			sb.WriteRune(r)
		}
	}
	return strings.TrimSpace(sb.String())
}
