// Package handlers implements the HTTP handlers behind the insights
// API. Every handler reads one dataset snapshot up front and answers
// entirely from it, so a concurrent reload never changes the data
// mid-request.
package handlers

import (
	"net/http"

	"football-insights/internal/api/response"
	"football-insights/internal/dataset"
)

// TeamsHandler serves the team and tournament selector lists.
type TeamsHandler struct {
	store *dataset.Store
}

// NewTeamsHandler creates a new TeamsHandler.
func NewTeamsHandler(store *dataset.Store) *TeamsHandler {
	return &TeamsHandler{store: store}
}

// GetTeams returns every team in the dataset, sorted and
// deduplicated across both home and away appearances.
func (h *TeamsHandler) GetTeams(w http.ResponseWriter, _ *http.Request) {
	snap := h.store.Snapshot()
	response.Success(w, snap.Matches.Teams())
}

// GetTournaments returns the sorted list of distinct tournaments.
func (h *TeamsHandler) GetTournaments(w http.ResponseWriter, _ *http.Request) {
	snap := h.store.Snapshot()
	response.Success(w, snap.Matches.Tournaments())
}
