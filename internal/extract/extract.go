// Package extract pulls structured facts out of segmented resume sections:
// contact fields, categorized skill tokens, role titles, and date ranges.
// Extraction errors are always soft: a field that cannot be extracted is
// recorded as absent, never as a failure.
package extract

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// dateRangePattern matches "Jan 2020 - Mar 2023", "2019–2021",
// "06/2018 - Present" and similar shapes.
var dateRangePattern = regexp.MustCompile(
	`(?i)\b((?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{4}|\d{1,2}/\d{4}|\d{4})\s*(?:-|–|—|to)\s*((?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{4}|\d{1,2}/\d{4}|\d{4}|present|current)\b`)

// Extract builds the aggregate ResumeProfile from the segmented document.
// The quantified claims are produced by the detector and handed in here so
// the profile is complete at construction and never mutated afterwards.
func Extract(doc *types.RawDocument, sections []types.Section, claims []types.QuantifiedClaim, cfg *config.Config) *types.ResumeProfile {
	coverage := make(map[types.SectionKind]int)
	for _, section := range sections {
		coverage[section.Kind]++
	}

	return &types.ResumeProfile{
		Contact:         extractContact(doc, sections),
		Skills:          extractSkills(doc, sections, cfg),
		Claims:          claims,
		Experience:      extractExperience(doc, sections),
		SectionCoverage: coverage,
		WordCount:       doc.WordCount,
	}
}

// extractExperience applies positional heuristics over experience and project
// sections: the first body line is a role title candidate, and any line
// containing a date-range pattern contributes an entry. Malformed or missing
// dates leave the field absent.
func extractExperience(doc *types.RawDocument, sections []types.Section) []types.ExperienceEntry {
	var entries []types.ExperienceEntry

	for _, section := range sections {
		if section.Kind != types.KindExperience && section.Kind != types.KindProjects {
			continue
		}

		sectionHadDate := false
		for i := section.BodyStart(); i < section.EndLine; i++ {
			line := doc.Line(i)
			match := dateRangePattern.FindString(line)
			if match == "" {
				continue
			}
			sectionHadDate = true

			title := strings.Trim(strings.TrimSpace(dateRangePattern.ReplaceAllString(line, "")), "|,–—- ")
			if title == "" && i > section.BodyStart() {
				// Date on its own line: the title is usually the line above.
				title = doc.Line(i - 1)
			}
			entries = append(entries, types.ExperienceEntry{
				Title:     title,
				DateRange: match,
				LineIndex: i,
			})
		}

		// A section with prose but no parseable dates still describes one
		// position; keep the title and leave the dates absent.
		if !sectionHadDate && section.BodyStart() < section.EndLine {
			entries = append(entries, types.ExperienceEntry{
				Title:     doc.Line(section.BodyStart()),
				LineIndex: section.BodyStart(),
			})
		}
	}

	return entries
}
