package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/jonathan/resume-analyzer/internal/docext"
	"github.com/jonathan/resume-analyzer/internal/pipeline"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// aiRequestTimeout bounds the narrative branch of HTTP-triggered analyses.
const aiRequestTimeout = 10 * time.Second

// handleAnalyze runs the pipeline over a text body.
// POST /analyze {"text": "...", "readable": true, "roles": [...], "ai": false}
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "text is required")
		return
	}
	if len(req.Text) > s.cfg.Limits.MaxInputBytes {
		s.errorResponse(w, http.StatusRequestEntityTooLarge, "text exceeds the input size limit")
		return
	}

	result, err := s.analyzer.Analyze(r.Context(), req.Text, pipeline.Options{
		Roles:     req.Roles,
		Readable:  req.Readable,
		AI:        req.AI,
		AITimeout: aiRequestTimeout,
	})
	if err != nil {
		s.analysisError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleAnalyzeUpload accepts a multipart PDF or TXT upload, extracts its
// text, and runs the pipeline with the extractor's readability judgment.
// POST /analyze/upload (multipart field "file"; optional "roles" and "ai")
func (s *Server) handleAnalyzeUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(int64(s.cfg.Limits.MaxInputBytes)); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, int64(s.cfg.Limits.MaxInputBytes)+1))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read upload")
		return
	}

	extracted, err := docext.Extract(data, formatForUpload(header.Filename), s.cfg.Limits)
	if err != nil {
		s.analysisError(w, err)
		return
	}

	result, err := s.analyzer.Analyze(r.Context(), extracted.Text, pipeline.Options{
		Roles:           splitRoles(r.FormValue("roles")),
		Readable:        &extracted.Readable,
		ReadabilityNote: extracted.Note,
		AI:              r.FormValue("ai") == "true",
		AITimeout:       aiRequestTimeout,
	})
	if err != nil {
		s.analysisError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleRoles lists the configured role profiles.
// GET /roles
func (s *Server) handleRoles(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"roles": s.cfg.RoleProfiles,
	})
}

// tokenRequest is the body of a token issuance request.
type tokenRequest struct {
	Secret string `json:"secret"`
}

// handleToken issues a short-lived bearer token to callers presenting the
// shared secret. Disabled (404) when auth is not configured.
// POST /token {"secret": "..."}
func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	if s.jwtService == nil {
		s.errorResponse(w, http.StatusNotFound, "authentication is not enabled")
		return
	}

	var req tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Secret != s.jwtService.config.Secret {
		s.errorResponse(w, http.StatusUnauthorized, "invalid secret")
		return
	}

	token, err := s.jwtService.GenerateToken()
	if err != nil {
		log.Printf("Error generating token: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"token": token})
}

// analysisError maps pipeline and extraction errors onto HTTP statuses.
func (s *Server) analysisError(w http.ResponseWriter, err error) {
	var unknownRole *pipeline.UnknownRoleError
	var tooLarge *docext.InputTooLargeError
	var unsupported *docext.UnsupportedFormatError
	var extraction *docext.ExtractionError

	switch {
	case errors.As(err, &unknownRole):
		s.errorResponse(w, http.StatusBadRequest, unknownRole.Error())
	case errors.As(err, &tooLarge):
		s.errorResponse(w, http.StatusRequestEntityTooLarge, tooLarge.Error())
	case errors.As(err, &unsupported):
		s.errorResponse(w, http.StatusUnsupportedMediaType, unsupported.Error())
	case errors.As(err, &extraction):
		s.errorResponse(w, http.StatusUnprocessableEntity, extraction.Error())
	default:
		log.Printf("Analysis error: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "analysis failed")
	}
}

// formatForUpload maps an uploaded filename to a docext format identifier.
func formatForUpload(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return docext.FormatPDF
	case ".txt", ".text":
		return docext.FormatText
	default:
		return filepath.Ext(filename)
	}
}

// splitRoles parses the comma-separated roles form value.
func splitRoles(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	roles := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			roles = append(roles, trimmed)
		}
	}
	return roles
}
