// internal/adapters/http_server/handlers.go
package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"trip_planner/internal/app"
	"trip_planner/internal/domain"
)

type Handlers struct {
	P  *app.PlanService
	RL *RateLimiter
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

type planRequest struct {
	Prompt string `json:"prompt"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	if h.RL != nil {
		s.mux.With(RateLimit(h.RL)).Post("/v1/plan", h.plan)
	} else {
		s.mux.Post("/v1/plan", h.plan)
	}
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func (h *Handlers) plan(w http.ResponseWriter, r *http.Request) {
	var req planRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "request body must be JSON with a prompt field")
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		writeProblem(w, http.StatusBadRequest, "Prompt is required", "prompt must be a non-empty string")
		return
	}

	plan, err := h.P.PlanTrip(r.Context(), req.Prompt)
	switch {
	case errors.Is(err, domain.ErrNoCandidates):
		writeProblem(w, http.StatusNotFound, "No matches",
			"No hotels found matching your criteria. Try adjusting your search.")
		return
	case errors.Is(err, domain.ErrNoBrandCandidates):
		writeProblem(w, http.StatusNotFound, "No matches for brand",
			"No hotels found for selected brand. Try adjusting your search.")
		return
	case err != nil:
		log.Error().Err(err).Msg("plan request failed")
		writeProblem(w, http.StatusInternalServerError, "Internal error", "")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(plan); err != nil {
		log.Error().Err(err).Msg("failed to write plan body")
	}
}
