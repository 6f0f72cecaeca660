package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"football-insights/internal/api/response"
	"football-insights/internal/dataset"
)

const defaultRankingLimit = 10

// RankingsHandler serves ranking snapshot lookups.
type RankingsHandler struct {
	store *dataset.Store
}

// NewRankingsHandler creates a new RankingsHandler.
func NewRankingsHandler(store *dataset.Store) *RankingsHandler {
	return &RankingsHandler{store: store}
}

// GetRankings returns the top teams from the latest ranking snapshot
// within the given year, ascending by rank.
func (h *RankingsHandler) GetRankings(w http.ResponseWriter, r *http.Request) {
	snap := h.store.Snapshot()

	year, err := yearParam(r, "year")
	if err != nil {
		response.BadRequest(w, err)
		return
	}
	if year == 0 {
		response.BadRequest(w, fmt.Errorf("missing %q query parameter", "year"))
		return
	}

	limit := defaultRankingLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 {
			response.BadRequest(w, fmt.Errorf("invalid %q query parameter: %q", "limit", raw))
			return
		}
	}

	response.Success(w, snap.Rankings.TopNForYear(year, limit))
}

// TeamRankResponse is the payload for a single team's rank lookup.
type TeamRankResponse struct {
	Team   string `json:"team"`
	Year   int    `json:"year"`
	Rank   int    `json:"rank"`
	Ranked bool   `json:"ranked"`
}

// GetTeamRank returns one team's rank in the latest snapshot within
// the given year. A team absent from that snapshot comes back with
// Ranked false, not an error: unranked is part of the domain.
func (h *RankingsHandler) GetTeamRank(w http.ResponseWriter, r *http.Request) {
	snap := h.store.Snapshot()

	team := chi.URLParam(r, "team")
	year, err := yearParam(r, "year")
	if err != nil {
		response.BadRequest(w, err)
		return
	}
	if year == 0 {
		response.BadRequest(w, fmt.Errorf("missing %q query parameter", "year"))
		return
	}

	rank := snap.Rankings.RankOf(year, team)
	response.Success(w, TeamRankResponse{
		Team:   team,
		Year:   year,
		Rank:   rank,
		Ranked: rank != dataset.NotRanked,
	})
}
