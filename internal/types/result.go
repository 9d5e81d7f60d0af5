package types

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Strength is a human-readable strength statement derived from a category
// score, reusing the scorer's own reason strings.
type Strength struct {
	Category  ScoreCategory `json:"category"`
	Statement string        `json:"statement"`
	Evidence  []string      `json:"evidence,omitempty"`
}

// Weakness is a human-readable weakness statement derived from a category
// score, reusing the scorer's own reason strings.
type Weakness struct {
	Category  ScoreCategory `json:"category"`
	Statement string        `json:"statement"`
	Evidence  []string      `json:"evidence,omitempty"`
}

// AIInsight carries the optional AI-generated narrative. When the
// collaborator times out or fails, Available is false and Note explains why;
// the deterministic results are unaffected.
type AIInsight struct {
	Available bool   `json:"available"`
	Narrative string `json:"narrative,omitempty"`
	Note      string `json:"note,omitempty"`
}

// SparseResult is the terminal result for content below the minimum
// character/word thresholds. It replaces a ScoreReport; it is not an error.
type SparseResult struct {
	Reason    string `json:"reason"`
	CharCount int    `json:"char_count"`
	WordCount int    `json:"word_count"`
}

// AnalysisResult is the full output of one pipeline run. When Sparse is
// non-nil the document was refused and all other analysis fields are nil.
type AnalysisResult struct {
	ID          uuid.UUID         `json:"analysis_id"`
	Sparse      *SparseResult     `json:"sparse,omitempty"`
	Profile     *ResumeProfile    `json:"profile,omitempty"`
	Report      *ScoreReport      `json:"report,omitempty"`
	RoleMatches []RoleMatchResult `json:"role_matches,omitempty"`
	Strengths   []Strength        `json:"strengths,omitempty"`
	Weaknesses  []Weakness        `json:"weaknesses,omitempty"`
	AI          *AIInsight        `json:"ai,omitempty"`
}

// ExtractedText is the input contract from the document-extraction
// collaborator: a UTF-8 text blob plus its readability judgment.
type ExtractedText struct {
	Text     string `json:"text"`
	Readable bool   `json:"readable"`
	Note     string `json:"note,omitempty"`
}

// AnalyzeRequest is the HTTP request body for a text analysis.
type AnalyzeRequest struct {
	Text     string   `json:"text" validate:"required,min=1"`
	Readable *bool    `json:"readable,omitempty"`
	Roles    []string `json:"roles,omitempty"`
	AI       bool     `json:"ai,omitempty"`
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
