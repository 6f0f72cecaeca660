package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/components"

	"football-insights/internal/api/response"
	"football-insights/internal/charts"
	"football-insights/internal/dataset"
	"football-insights/internal/stats"
)

// DashboardHandler renders the interactive HTML dashboard.
type DashboardHandler struct {
	store *dataset.Store
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(store *dataset.Store) *DashboardHandler {
	return &DashboardHandler{store: store}
}

// GetDashboard renders the full dashboard page: win rates by
// tournament, goal trends, the home/away split, and when an opponent
// is selected, the head-to-head radar and outcome flow. The team
// defaults to the Overall sentinel so the page works with no
// selection at all.
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	snap := h.store.Snapshot()

	team := r.URL.Query().Get("team")
	if team == "" {
		team = stats.Overall
	}
	if team != stats.Overall && !snap.Matches.HasTeam(team) {
		response.NotFound(w, fmt.Errorf("unknown team %q", team))
		return
	}

	records := stats.ByTeam(snap.Matches.Records(), team)
	records = stats.ByTournament(records, r.URL.Query().Get("tournament"))

	page := components.NewPage()
	page.PageTitle = "Football Insights"

	winRateCfg := charts.DefaultChartConfig()
	winRateCfg.Title = fmt.Sprintf("Win Rate by Tournament: %s", team)
	page.AddCharts(charts.WinRateBar(stats.TallyByTournament(records, team), winRateCfg))

	trendCfg := charts.DefaultChartConfig()
	trendCfg.Title = "Average Goals per Year"
	page.AddCharts(charts.GoalTrendLine(stats.AverageGoalsByYear(records), trendCfg))

	splitCfg := charts.DefaultChartConfig()
	splitCfg.Title = fmt.Sprintf("Home vs Away: %s", team)
	splitCfg.Subtitle = "Competitive matches only"
	competitive := stats.Competitive(stats.ByTeam(snap.Matches.Records(), team))
	page.AddCharts(charts.HomeAwayBar(stats.SplitHomeAway(competitive, team), splitCfg))

	opponent := r.URL.Query().Get("opponent")
	if opponent != "" && team != stats.Overall && opponent != team {
		if summary, ok := stats.HeadToHead(snap.Matches.Records(), team, opponent); ok {
			radarCfg := charts.DefaultChartConfig()
			radarCfg.Title = fmt.Sprintf("%s vs %s", team, opponent)
			page.AddCharts(charts.HeadToHeadRadar(summary, radarCfg))

			flowCfg := charts.DefaultChartConfig()
			flowCfg.Title = "Match Outcome Flow"
			flowCfg.Subtitle = fmt.Sprintf("%d meetings", summary.TotalMatches)
			page.AddCharts(charts.HeadToHeadSankey(summary, flowCfg))
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Render(w); err != nil {
		log.Printf("Failed to render dashboard: %v", err)
	}
}
