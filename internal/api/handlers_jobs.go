package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/doclift/doclift/internal/pipeline"
	"github.com/doclift/doclift/internal/report"
	"github.com/go-chi/chi/v5"
)

// handleListJobs returns snapshots of all known jobs, newest first.
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	jobs := s.orchestrator.ListJobs()
	snaps := make([]pipeline.JobSnapshot, 0, len(jobs))
	for _, j := range jobs {
		snaps = append(snaps, j.Snapshot())
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"jobs": snaps})
}

// handleGetOutline returns the finished outline for a completed job.
func (s *Server) handleGetOutline(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	job := s.orchestrator.GetJob(jobID)
	if job == nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return
	}

	snap := job.Snapshot()
	switch snap.Status {
	case pipeline.StatusCompleted:
	case pipeline.StatusFailed:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]any{
			"error":  "extraction failed",
			"errors": snap.Progress.Errors,
		})
		return
	default:
		jsonError(w, fmt.Sprintf("job is %s", snap.Status), http.StatusConflict)
		return
	}

	out := job.Result()
	if out == nil {
		jsonError(w, "no outline available", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := report.NewJSONWriter(w).Write(out); err != nil {
		s.log.Error("failed to write outline response", "job_id", jobID, "error", err)
	}
}
