// Package segment partitions a normalized resume into labeled sections using
// heading heuristics.
package segment

import (
	"strings"
	"unicode"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// maxHeadingWords and maxHeadingLen bound what can plausibly be a section
// heading: real headings are short.
const (
	maxHeadingWords = 5
	maxHeadingLen   = 48
)

// Segment partitions the document into sections covering every line exactly
// once. Lines before the first detected heading form a contact block (top of
// document); if no headings are detected at all, the whole document becomes a
// single catch-all section.
func Segment(doc *types.RawDocument, cfg *config.Config) []types.Section {
	if len(doc.Lines) == 0 {
		return nil
	}

	var sections []types.Section
	open := types.Section{Kind: types.KindContact, StartLine: 0}
	sawHeading := false

	for i, line := range doc.Lines {
		kind, ok := headingKind(line, cfg)
		if !ok {
			continue
		}

		// Close the running section. Adjacent headings produce an empty
		// section, which is valid.
		if i > open.StartLine || open.HasHeading {
			open.EndLine = i
			sections = append(sections, open)
		}
		open = types.Section{Kind: kind, StartLine: i, HasHeading: true}
		sawHeading = true
	}

	open.EndLine = len(doc.Lines)
	sections = append(sections, open)

	if !sawHeading {
		// Zero headings: the whole document is one catch-all section. This is
		// reported downstream as a content weakness, not an error.
		return []types.Section{{Kind: types.KindOther, StartLine: 0, EndLine: len(doc.Lines)}}
	}

	return sections
}

// headingKind reports whether the line is a section heading and, if so, which
// kind it introduces. A line qualifies when its shape matches heading
// formatting and its normalized text matches a known synonym. When the text
// matches synonyms of several kinds, the first kind in declared priority
// order wins.
func headingKind(line string, cfg *config.Config) (types.SectionKind, bool) {
	if !looksLikeHeading(line) {
		return "", false
	}

	normalized := normalizeHeading(line)
	if normalized == "" {
		return "", false
	}

	for _, kind := range types.SectionKindPriority {
		for _, syn := range cfg.HeadingSynonyms[kind] {
			if matchesSynonym(normalized, strings.ToLower(syn)) {
				return kind, true
			}
		}
	}

	return "", false
}

// looksLikeHeading applies the formatting heuristics: short, title-case or
// all-caps, optional trailing colon, no sentence punctuation at the end.
func looksLikeHeading(line string) bool {
	if len(line) > maxHeadingLen {
		return false
	}
	words := strings.Fields(line)
	if len(words) == 0 || len(words) > maxHeadingWords {
		return false
	}

	trimmed := strings.TrimSuffix(line, ":")
	if trimmed == "" {
		return false
	}
	switch trimmed[len(trimmed)-1] {
	case '.', '!', '?', ',', ';':
		return false
	}

	return isAllCaps(trimmed) || isTitleCase(trimmed)
}

// isAllCaps reports whether every letter in s is uppercase.
func isAllCaps(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

// isTitleCase reports whether every word longer than three characters starts
// with an uppercase letter; short connectives ("and", "of") are allowed in
// lowercase.
func isTitleCase(s string) bool {
	startsUpper := 0
	significant := 0
	for _, word := range strings.Fields(s) {
		runes := []rune(word)
		if !unicode.IsLetter(runes[0]) {
			continue
		}
		if len(runes) <= 3 && significant > 0 {
			continue
		}
		significant++
		if unicode.IsUpper(runes[0]) {
			startsUpper++
		}
	}
	return significant > 0 && startsUpper == significant
}

// normalizeHeading lowercases the heading and strips the trailing colon and
// surrounding whitespace.
func normalizeHeading(line string) string {
	normalized := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line), ":"))
	return strings.ToLower(normalized)
}

// matchesSynonym reports whether the normalized heading equals the synonym or
// contains it as a whole phrase ("technical skills and projects" matches
// "technical skills").
func matchesSynonym(heading, synonym string) bool {
	if heading == synonym {
		return true
	}
	padded := " " + heading + " "
	return strings.Contains(padded, " "+synonym+" ")
}
