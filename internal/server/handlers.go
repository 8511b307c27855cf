package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/shubhamdevjs/BeatATS/internal/analysis"
	"github.com/shubhamdevjs/BeatATS/internal/employment"
	"github.com/shubhamdevjs/BeatATS/internal/knockout"
	"github.com/shubhamdevjs/BeatATS/internal/matching"
	"github.com/shubhamdevjs/BeatATS/internal/schemas"
	"github.com/shubhamdevjs/BeatATS/internal/types"
)

// AnalyzeRequest carries one resume and one JD per call. Both are kept
// raw until schema validation has passed.
type AnalyzeRequest struct {
	Resume json.RawMessage `json:"resume"`
	JD     json.RawMessage `json:"jd"`
}

// handleAnalyze runs the full pipeline and returns the complete report.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	resume, jd, ok := s.decodeRequest(w, r)
	if !ok {
		return
	}

	report, err := analysis.Analyze(r.Context(), resume, jd, s.policy)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "analysis failed: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, report)
}

// handleKnockout runs only the eligibility branch: classification,
// experience totals, and the knockout rules.
func (s *Server) handleKnockout(w http.ResponseWriter, r *http.Request) {
	resume, jd, ok := s.decodeRequest(w, r)
	if !ok {
		return
	}

	now := time.Now().UTC()
	classifier := employment.NewClassifier(s.policy, now)
	classified := classifier.ClassifyAll(resume.Sections.Experience)
	totals := employment.Totals(classified, s.policy, now)
	resume.ExperienceTotals = &totals

	s.jsonResponse(w, http.StatusOK, knockout.Evaluate(resume, jd, s.policy))
}

// handleMatch runs only the skill matching branch.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	resume, jd, ok := s.decodeRequest(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, matching.Match(resume, jd, s.policy))
}

// decodeRequest parses the request body, validates both documents
// against their schemas when schema paths are configured, and decodes
// them into engine types. On failure it writes the error response and
// returns ok=false.
func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request) (*types.Resume, *types.JobDescription, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read request body: "+err.Error())
		return nil, nil, false
	}

	var req AnalyzeRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return nil, nil, false
	}
	if len(req.Resume) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "resume is required")
		return nil, nil, false
	}
	if len(req.JD) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "jd is required")
		return nil, nil, false
	}

	if !s.validateDocument(w, s.resumeSchemaPath, req.Resume, "resume") {
		return nil, nil, false
	}
	if !s.validateDocument(w, s.jdSchemaPath, req.JD, "jd") {
		return nil, nil, false
	}

	var resume types.Resume
	if err := json.Unmarshal(req.Resume, &resume); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid resume document: "+err.Error())
		return nil, nil, false
	}
	var jd types.JobDescription
	if err := json.Unmarshal(req.JD, &jd); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid jd document: "+err.Error())
		return nil, nil, false
	}
	return &resume, &jd, true
}

func (s *Server) validateDocument(w http.ResponseWriter, schemaPath string, document []byte, name string) bool {
	if schemaPath == "" {
		return true
	}
	err := schemas.ValidateDocument(schemaPath, document)
	if err == nil {
		return true
	}

	var ve *schemas.ValidationError
	if errors.As(err, &ve) {
		fields := make([]map[string]string, 0, len(ve.Errors))
		for _, fe := range ve.Errors {
			fields = append(fields, map[string]string{"field": fe.Field, "message": fe.Message})
		}
		s.jsonResponse(w, http.StatusUnprocessableEntity, map[string]any{
			"error":    name + " failed schema validation",
			"document": name,
			"details":  fields,
		})
		return false
	}
	s.errorResponse(w, http.StatusInternalServerError, err.Error())
	return false
}
