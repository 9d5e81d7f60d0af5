package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/normalize"
	"github.com/jonathan/resume-analyzer/internal/types"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Default()
	require.NoError(t, err)
	return cfg
}

const sampleResume = `John Smith
john.smith@example.com | (555) 123-4567
Summary
Engineer with eight years of backend experience.
Technical Skills
Go, Python, PostgreSQL
Work Experience
Senior Engineer at Acme
Reduced latency by 40% across services.
Education
B.S. Computer Science`

func TestSegment_LabelsKnownSections(t *testing.T) {
	doc := normalize.Normalize(sampleResume)
	sections := Segment(doc, testConfig(t))

	kinds := make([]types.SectionKind, len(sections))
	for i, s := range sections {
		kinds[i] = s.Kind
	}

	assert.Equal(t, []types.SectionKind{
		types.KindContact,
		types.KindSummary,
		types.KindSkills,
		types.KindExperience,
		types.KindEducation,
	}, kinds)
}

func TestSegment_PartitionCoversEveryLineExactlyOnce(t *testing.T) {
	doc := normalize.Normalize(sampleResume)
	sections := Segment(doc, testConfig(t))

	require.NotEmpty(t, sections)
	assert.Equal(t, 0, sections[0].StartLine)
	assert.Equal(t, len(doc.Lines), sections[len(sections)-1].EndLine)
	for i := 1; i < len(sections); i++ {
		assert.Equal(t, sections[i-1].EndLine, sections[i].StartLine,
			"sections must be contiguous with no gaps or overlaps")
	}
}

func TestSegment_NoHeadingsYieldsSingleOtherSection(t *testing.T) {
	doc := normalize.Normalize("just some prose that rambles on with no structure at all.\nmore prose here.")
	sections := Segment(doc, testConfig(t))

	require.Len(t, sections, 1)
	assert.Equal(t, types.KindOther, sections[0].Kind)
	assert.Equal(t, 0, sections[0].StartLine)
	assert.Equal(t, len(doc.Lines), sections[0].EndLine)
}

func TestSegment_TopOfDocumentBecomesContactBlock(t *testing.T) {
	doc := normalize.Normalize("Jane Doe\njane@example.com\nExperience\nDid things at a company.")
	sections := Segment(doc, testConfig(t))

	require.Len(t, sections, 2)
	assert.Equal(t, types.KindContact, sections[0].Kind)
	assert.False(t, sections[0].HasHeading)
	assert.Equal(t, 2, sections[0].EndLine)
}

func TestSegment_DocumentStartingWithHeadingHasNoContactBlock(t *testing.T) {
	doc := normalize.Normalize("Experience\nDid things.")
	sections := Segment(doc, testConfig(t))

	require.Len(t, sections, 1)
	assert.Equal(t, types.KindExperience, sections[0].Kind)
	assert.True(t, sections[0].HasHeading)
}

func TestSegment_AdjacentHeadingsProduceEmptySection(t *testing.T) {
	doc := normalize.Normalize("Skills\nExperience\nBuilt the thing.")
	sections := Segment(doc, testConfig(t))

	require.Len(t, sections, 2)
	assert.Equal(t, types.KindSkills, sections[0].Kind)
	assert.Equal(t, 1, sections[0].Len()) // heading line only, empty body
	assert.Equal(t, types.KindExperience, sections[1].Kind)
}

func TestSegment_SynonymsMapToSameKind(t *testing.T) {
	for _, heading := range []string{"Work Experience", "EMPLOYMENT HISTORY", "Professional Experience:"} {
		doc := normalize.Normalize(heading + "\nsome body text here.")
		sections := Segment(doc, testConfig(t))

		require.NotEmpty(t, sections, heading)
		assert.Equal(t, types.KindExperience, sections[0].Kind, heading)
	}
}

func TestSegment_MultiKindHeadingResolvedByPriority(t *testing.T) {
	// "Technical Skills and Projects" matches both the skills and projects
	// synonym sets; skills wins by declared priority order.
	doc := normalize.Normalize("Technical Skills and Projects\nGo, Docker")
	sections := Segment(doc, testConfig(t))

	require.NotEmpty(t, sections)
	assert.Equal(t, types.KindSkills, sections[0].Kind)
}

func TestSegment_SentencesAreNotHeadings(t *testing.T) {
	doc := normalize.Normalize("Experience\nI gained experience.\nMy skills grew over time here.")
	sections := Segment(doc, testConfig(t))

	require.Len(t, sections, 1)
	assert.Equal(t, types.KindExperience, sections[0].Kind)
}

func TestSegment_LongLinesAreNotHeadings(t *testing.T) {
	doc := normalize.Normalize("Experience With Many Enterprise Systems And Frameworks Across Industries\nbody")
	sections := Segment(doc, testConfig(t))

	// The long title-case line exceeds the heading shape limits, so the whole
	// document is a catch-all section.
	require.Len(t, sections, 1)
	assert.Equal(t, types.KindOther, sections[0].Kind)
}

func TestSegment_EmptyDocument(t *testing.T) {
	doc := normalize.Normalize("")
	assert.Nil(t, Segment(doc, testConfig(t)))
}
