package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/mohitbhoir789/resume-builder/internal/types"
)

var validate = validator.New()

// GenerateRequest is the body of POST /v1/resume.
type GenerateRequest struct {
	Profile string `json:"profile" validate:"required"`
	Job     struct {
		Title   string `json:"title"`
		Company string `json:"company"`
		Text    string `json:"text" validate:"required"`
	} `json:"job" validate:"required"`
}

// ScoreRequest is the body of POST /v1/score.
type ScoreRequest struct {
	Profile string `json:"profile" validate:"required"`
	Job     struct {
		Title   string `json:"title"`
		Company string `json:"company"`
		Text    string `json:"text" validate:"required"`
	} `json:"job" validate:"required"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// handleGenerate runs the full pipeline and returns the run result.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "profile and job.text are required")
		return
	}

	job := types.JobDescription{
		Title:   req.Job.Title,
		Company: req.Job.Company,
		RawText: req.Job.Text,
	}

	result, err := s.pipeline.Generate(r.Context(), req.Profile, job)
	if err != nil {
		status := HTTPStatus(err)
		if status == http.StatusInternalServerError {
			log.Printf("run failed for profile %s: %v", req.Profile, err)
			writeError(w, status, "pipeline run failed")
			return
		}
		writeError(w, status, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// handleScore runs extraction, mapping, and scoring without rendering.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "profile and job.text are required")
		return
	}

	job := types.JobDescription{
		Title:   req.Job.Title,
		Company: req.Job.Company,
		RawText: req.Job.Text,
	}

	detail, err := s.pipeline.Score(r.Context(), req.Profile, job)
	if err != nil {
		status := HTTPStatus(err)
		if status == http.StatusInternalServerError {
			log.Printf("score failed for profile %s: %v", req.Profile, err)
			writeError(w, status, "scoring failed")
			return
		}
		writeError(w, status, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, detail)
}

// handleGetRun returns the audit record of a past run.
func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	runID := r.PathValue("id")

	var result types.RunResult
	if err := s.store.LoadAudit(runID, &result); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			writeError(w, http.StatusNotFound, "run not found")
			return
		}
		log.Printf("failed to load run %s: %v", runID, err)
		writeError(w, http.StatusInternalServerError, "failed to load run")
		return
	}

	writeJSON(w, http.StatusOK, &result)
}

// handleGetRunPDF serves the rendered document of a past run.
func (s *Server) handleGetRunPDF(w http.ResponseWriter, r *http.Request) {
	runID := r.PathValue("id")

	var result types.RunResult
	if err := s.store.LoadAudit(runID, &result); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			writeError(w, http.StatusNotFound, "run not found")
			return
		}
		log.Printf("failed to load run %s: %v", runID, err)
		writeError(w, http.StatusInternalServerError, "failed to load run")
		return
	}
	if result.DocumentPath == "" {
		writeError(w, http.StatusNotFound, "run produced no document")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	http.ServeFile(w, r, result.DocumentPath)
}

// handleListProfiles returns the names of the available profiles.
func (s *Server) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	names, err := s.profiles.List(r.Context())
	if err != nil {
		log.Printf("failed to list profiles: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list profiles")
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"profiles": names})
}

// handleHealth reports service liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
