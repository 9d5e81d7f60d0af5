// Package types provides type definitions for structured data used throughout the resume-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// RawDocument represents the normalized text of one resume.
// It is immutable once produced by the normalizer.
type RawDocument struct {
	Lines     []string `json:"lines"`
	ByteSize  int      `json:"byte_size"`
	WordCount int      `json:"word_count"`
}

// Line returns the line at index i, or an empty string if out of range.
func (d *RawDocument) Line(i int) string {
	if i < 0 || i >= len(d.Lines) {
		return ""
	}
	return d.Lines[i]
}

// SectionKind identifies the logical role of a resume section.
type SectionKind string

// Section kinds recognized by the segmenter. KindOther is the catch-all.
const (
	KindContact        SectionKind = "contact"
	KindSummary        SectionKind = "summary"
	KindSkills         SectionKind = "skills"
	KindExperience     SectionKind = "experience"
	KindProjects       SectionKind = "projects"
	KindEducation      SectionKind = "education"
	KindCertifications SectionKind = "certifications"
	KindOther          SectionKind = "other"
)

// SectionKindPriority is the declared order used when a heading line could
// match more than one section kind. First match wins.
var SectionKindPriority = []SectionKind{
	KindContact,
	KindSummary,
	KindSkills,
	KindExperience,
	KindProjects,
	KindEducation,
	KindCertifications,
}

// Section represents a labeled, contiguous block of document lines.
// StartLine is inclusive, EndLine is exclusive. Sections produced by the
// segmenter are non-overlapping and cover the whole document.
type Section struct {
	Kind      SectionKind `json:"kind"`
	StartLine int         `json:"start_line"`
	EndLine   int         `json:"end_line"`
	// HasHeading reports whether StartLine is a detected heading line.
	HasHeading bool `json:"has_heading"`
}

// BodyStart returns the index of the first body line (past the heading, if any).
func (s Section) BodyStart() int {
	if s.HasHeading {
		return s.StartLine + 1
	}
	return s.StartLine
}

// Len returns the number of lines the section spans, including its heading.
func (s Section) Len() int {
	return s.EndLine - s.StartLine
}
