package extract

import (
	"strings"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// skillSectionKinds are the kinds whose text is scanned for skill mentions.
var skillSectionKinds = map[types.SectionKind]bool{
	types.KindSkills:     true,
	types.KindExperience: true,
	types.KindProjects:   true,
}

// extractSkills tokenizes skill and experience/project sections and matches
// tokens against the static taxonomy. Unrecognized tokens are discarded, and
// duplicates collapse onto their canonical form with the higher confidence
// kept. Output order follows taxonomy declaration order, so identical input
// always yields an identical skill list.
func extractSkills(doc *types.RawDocument, sections []types.Section, cfg *config.Config) []types.SkillToken {
	// Collect the two corpora: delimited list tokens from skills sections
	// (exact matches) and prose lines from experience/project sections
	// (fuzzy phrase matches).
	var listTokens []string
	var proseLines []string

	for _, section := range sections {
		if !skillSectionKinds[section.Kind] {
			continue
		}
		for i := section.BodyStart(); i < section.EndLine; i++ {
			line := doc.Line(i)
			if section.Kind == types.KindSkills {
				listTokens = append(listTokens, splitSkillList(line)...)
			} else {
				proseLines = append(proseLines, " "+config.NormalizeToken(line)+" ")
			}
		}
	}

	found := make(map[string]types.SkillToken)
	for _, token := range listTokens {
		if entry, ok := cfg.LookupSkill(token); ok {
			recordSkill(found, entry, token, types.ConfidenceExact)
			continue
		}
		// "Python/Go" style compound tokens: retry the parts. The whole token
		// is tried first so "CI/CD" resolves as itself.
		if strings.ContainsRune(token, '/') {
			for _, part := range strings.Split(token, "/") {
				if entry, ok := cfg.LookupSkill(part); ok {
					recordSkill(found, entry, part, types.ConfidenceExact)
				}
			}
		}
	}

	for _, entry := range cfg.SkillTaxonomy {
		forms := append([]string{entry.Canonical}, entry.Aliases...)
		for _, form := range forms {
			phrase := " " + config.NormalizeToken(form) + " "
			for _, line := range proseLines {
				if strings.Contains(line, phrase) {
					recordSkill(found, entry, form, types.ConfidenceFuzzy)
					break
				}
			}
		}
	}

	// Deterministic output order: taxonomy declaration order.
	skills := make([]types.SkillToken, 0, len(found))
	for _, entry := range cfg.SkillTaxonomy {
		if token, ok := found[entry.Canonical]; ok {
			skills = append(skills, token)
		}
	}
	return skills
}

// recordSkill collapses a match onto its canonical form. An exact match
// upgrades an earlier fuzzy one; it is never downgraded.
func recordSkill(found map[string]types.SkillToken, entry config.TaxonomyEntry, raw string, conf types.MatchConfidence) {
	existing, ok := found[entry.Canonical]
	if ok && (existing.Confidence == types.ConfidenceExact || conf == types.ConfidenceFuzzy) {
		return
	}
	found[entry.Canonical] = types.SkillToken{
		Raw:        strings.TrimSpace(raw),
		Canonical:  entry.Canonical,
		Category:   entry.Category,
		Confidence: conf,
	}
}

// splitSkillList breaks a skills-section line into candidate tokens on the
// delimiters people actually use in skill lists.
func splitSkillList(line string) []string {
	// A "Languages: Python, Go" style prefix is a label, not a skill.
	if idx := strings.Index(line, ":"); idx >= 0 && idx < len(line)-1 {
		line = line[idx+1:]
	}

	tokens := strings.FieldsFunc(line, func(r rune) bool {
		switch r {
		case ',', '|', ';', '·':
			return true
		}
		return false
	})

	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}
