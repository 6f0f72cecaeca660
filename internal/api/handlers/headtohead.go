package handlers

import (
	"fmt"
	"net/http"

	"football-insights/internal/api/response"
	"football-insights/internal/dataset"
	"football-insights/internal/stats"
)

// HeadToHeadHandler serves the comparative head-to-head view.
type HeadToHeadHandler struct {
	store *dataset.Store
}

// NewHeadToHeadHandler creates a new HeadToHeadHandler.
func NewHeadToHeadHandler(store *dataset.Store) *HeadToHeadHandler {
	return &HeadToHeadHandler{store: store}
}

// GetHeadToHead returns the full head-to-head summary for a pair of
// teams: win counts, four-metric profiles, outcome flow, goal KPIs
// and the last five meetings. Pairs with no shared history get a 404
// rather than an all-zero summary.
func (h *HeadToHeadHandler) GetHeadToHead(w http.ResponseWriter, r *http.Request) {
	snap := h.store.Snapshot()

	teamA := r.URL.Query().Get("team_a")
	teamB := r.URL.Query().Get("team_b")
	if teamA == "" || teamB == "" {
		response.BadRequest(w, fmt.Errorf("both team_a and team_b query parameters are required"))
		return
	}
	if teamA == teamB {
		response.BadRequest(w, fmt.Errorf("team_a and team_b must differ"))
		return
	}
	for _, team := range []string{teamA, teamB} {
		if !snap.Matches.HasTeam(team) {
			response.NotFound(w, fmt.Errorf("unknown team %q", team))
			return
		}
	}

	summary, ok := stats.HeadToHead(snap.Matches.Records(), teamA, teamB)
	if !ok {
		response.NotFound(w, fmt.Errorf("no matches between %q and %q", teamA, teamB))
		return
	}

	response.Success(w, summary)
}
