package handlers

import (
	"fmt"
	"net/http"

	"football-insights/internal/api/response"
	"football-insights/internal/dataset"
	"football-insights/internal/stats"
)

// InsightsHandler serves the aggregate views: win rates, goal trends,
// home/away splits and streaks.
type InsightsHandler struct {
	store *dataset.Store
}

// NewInsightsHandler creates a new InsightsHandler.
func NewInsightsHandler(store *dataset.Store) *InsightsHandler {
	return &InsightsHandler{store: store}
}

// WinRateResponse is the payload for the win-rate view.
type WinRateResponse struct {
	Team        string                  `json:"team"`
	Tournament  string                  `json:"tournament,omitempty"`
	Matches     int                     `json:"matches"`
	Tally       stats.Tally             `json:"tally"`
	Percentages stats.Percentages       `json:"percentages"`
	Tournaments []stats.TournamentTally `json:"tournaments"`
}

// GetWinRates returns win/draw/loss tallies and percentages for a
// team, optionally restricted to one tournament and a year range,
// plus the per-tournament breakdown.
func (h *InsightsHandler) GetWinRates(w http.ResponseWriter, r *http.Request) {
	snap := h.store.Snapshot()

	team, known, err := teamParam(r, snap, "team")
	if err != nil {
		response.BadRequest(w, err)
		return
	}
	if !known {
		response.NotFound(w, fmt.Errorf("unknown team %q", team))
		return
	}

	records, err := filteredRecords(r, snap, team)
	if err != nil {
		response.BadRequest(w, err)
		return
	}

	tally := stats.OutcomeTally(records, team)
	response.Success(w, WinRateResponse{
		Team:        team,
		Tournament:  r.URL.Query().Get("tournament"),
		Matches:     tally.Total(),
		Tally:       tally,
		Percentages: tally.Percentages(),
		Tournaments: stats.TallyByTournament(records, team),
	})
}

// GoalTrendResponse is the payload for the goal-trend view.
type GoalTrendResponse struct {
	Team       string              `json:"team"`
	Tournament string              `json:"tournament,omitempty"`
	Years      []stats.YearlyGoals `json:"years"`
}

// GetGoalTrends returns average home and away goals per year. Years
// with no matches after filtering are absent from the series.
func (h *InsightsHandler) GetGoalTrends(w http.ResponseWriter, r *http.Request) {
	snap := h.store.Snapshot()

	team, known, err := teamParam(r, snap, "team")
	if err != nil {
		response.BadRequest(w, err)
		return
	}
	if !known {
		response.NotFound(w, fmt.Errorf("unknown team %q", team))
		return
	}

	records, err := filteredRecords(r, snap, team)
	if err != nil {
		response.BadRequest(w, err)
		return
	}

	response.Success(w, GoalTrendResponse{
		Team:       team,
		Tournament: r.URL.Query().Get("tournament"),
		Years:      stats.AverageGoalsByYear(records),
	})
}

// GetHomeAway returns the home-vs-away win/draw/loss split for a
// team. Friendlies are excluded: hosting advantage is only meaningful
// across competitive fixtures.
func (h *InsightsHandler) GetHomeAway(w http.ResponseWriter, r *http.Request) {
	snap := h.store.Snapshot()

	team, known, err := teamParam(r, snap, "team")
	if err != nil {
		response.BadRequest(w, err)
		return
	}
	if !known {
		response.NotFound(w, fmt.Errorf("unknown team %q", team))
		return
	}

	records := stats.Competitive(snap.Matches.Records())
	records = stats.ByTeam(records, team)
	response.Success(w, stats.SplitHomeAway(records, team))
}

// StreakResponse is the payload for the streak view.
type StreakResponse struct {
	Team    string            `json:"team"`
	Streaks stats.StreakStats `json:"streaks"`
	Current string            `json:"current"`
}

// GetStreaks returns current and longest win/loss streaks for a team.
// The Overall sentinel is rejected: a streak needs one perspective.
func (h *InsightsHandler) GetStreaks(w http.ResponseWriter, r *http.Request) {
	snap := h.store.Snapshot()

	team := r.URL.Query().Get("team")
	if team == "" || team == stats.Overall {
		response.BadRequest(w, fmt.Errorf("streaks require a specific team"))
		return
	}
	if !snap.Matches.HasTeam(team) {
		response.NotFound(w, fmt.Errorf("unknown team %q", team))
		return
	}

	streaks := stats.Streaks(snap.Matches.Records(), team)
	response.Success(w, StreakResponse{
		Team:    team,
		Streaks: streaks,
		Current: stats.FormatCurrentStreak(streaks.CurrentStreak),
	})
}

// Over25Response is the payload for the over-2.5-goals view.
type Over25Response struct {
	Team       string  `json:"team"`
	Tournament string  `json:"tournament,omitempty"`
	Matches    int     `json:"matches"`
	OverPct    float64 `json:"over_2_5_pct"`
}

// GetOverRate returns the share of matches clearing 2.5 total goals.
func (h *InsightsHandler) GetOverRate(w http.ResponseWriter, r *http.Request) {
	snap := h.store.Snapshot()

	team, known, err := teamParam(r, snap, "team")
	if err != nil {
		response.BadRequest(w, err)
		return
	}
	if !known {
		response.NotFound(w, fmt.Errorf("unknown team %q", team))
		return
	}

	records, err := filteredRecords(r, snap, team)
	if err != nil {
		response.BadRequest(w, err)
		return
	}

	response.Success(w, Over25Response{
		Team:       team,
		Tournament: r.URL.Query().Get("tournament"),
		Matches:    len(records),
		OverPct:    stats.OverThreshold(records, 2.5),
	})
}
