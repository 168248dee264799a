// Package v1alpha1 exposes the resolution service over HTTP with JSON
// bodies. Handlers validate request shape, delegate to the orchestrator,
// and map error codes to HTTP statuses; they hold no game logic.
package v1alpha1

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/destinyrpg/destiny-api/internal/errors"
	"github.com/destinyrpg/destiny-api/internal/orchestrators/resolution"
)

// HandlerConfig holds dependencies for the resolution handler
type HandlerConfig struct {
	ResolutionService resolution.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.ResolutionService == nil {
		return errors.InvalidArgument("resolution service is required")
	}
	return nil
}

// Handler serves the v1alpha1 resolution API
type Handler struct {
	resolutionService resolution.Service
}

// NewHandler creates a new resolution handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		resolutionService: cfg.ResolutionService,
	}, nil
}

// Routes returns the router for the v1alpha1 API surface
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/characters/{characterID}/actions/{actionID}/resolve", h.handleResolveAction)
	r.Get("/characters/{characterID}/results", h.handleListActionResults)
	r.Get("/characters/{characterID}/stats", h.handleGetCareerStats)
	r.Get("/results/{resultID}", h.handleGetActionResult)
	r.Get("/actions", h.handleListActions)

	return r
}

func (h *Handler) handleResolveAction(w http.ResponseWriter, r *http.Request) {
	out, err := h.resolutionService.ResolveAction(r.Context(), &resolution.ResolveActionInput{
		CharacterID: chi.URLParam(r, "characterID"),
		ActionID:    chi.URLParam(r, "actionID"),
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, out.Result)
}

func (h *Handler) handleGetActionResult(w http.ResponseWriter, r *http.Request) {
	out, err := h.resolutionService.GetActionResult(r.Context(), &resolution.GetActionResultInput{
		ResultID: chi.URLParam(r, "resultID"),
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusOK, out.Result)
}

func (h *Handler) handleListActionResults(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	out, err := h.resolutionService.ListActionResults(r.Context(), &resolution.ListActionResultsInput{
		CharacterID: chi.URLParam(r, "characterID"),
		Limit:       limit,
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"results": out.Results})
}

func (h *Handler) handleGetCareerStats(w http.ResponseWriter, r *http.Request) {
	out, err := h.resolutionService.GetCareerStats(r.Context(), &resolution.GetCareerStatsInput{
		CharacterID: chi.URLParam(r, "characterID"),
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusOK, out.Stats)
}

func (h *Handler) handleListActions(w http.ResponseWriter, r *http.Request) {
	out, err := h.resolutionService.ListActions(r.Context(), &resolution.ListActionsInput{})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"actions": out.Actions})
}

func parseLimit(raw string) (int64, error) {
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || limit < 0 {
		return 0, errors.InvalidArgumentf("invalid limit: %s", raw)
	}
	return limit, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
