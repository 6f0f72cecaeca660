package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"football-insights/internal/api/handlers"
	"football-insights/internal/api/response"
	"football-insights/internal/version"
)

// setupRoutes configures all API routes.
func (s *Server) setupRoutes() {
	// Health check endpoint (no versioning)
	s.router.Get("/health", s.healthCheck)

	// Interactive dashboard
	dashboardHandler := handlers.NewDashboardHandler(s.store)
	s.router.Get("/dashboard", dashboardHandler.GetDashboard)

	// API v1 routes
	s.router.Route("/api/v1", func(r chi.Router) {
		teamsHandler := handlers.NewTeamsHandler(s.store)
		r.Get("/teams", teamsHandler.GetTeams)
		r.Get("/tournaments", teamsHandler.GetTournaments)

		insightsHandler := handlers.NewInsightsHandler(s.store)
		r.Get("/win-rates", insightsHandler.GetWinRates)
		r.Get("/goal-trends", insightsHandler.GetGoalTrends)
		r.Get("/home-away", insightsHandler.GetHomeAway)
		r.Get("/streaks", insightsHandler.GetStreaks)
		r.Get("/over-rate", insightsHandler.GetOverRate)

		h2hHandler := handlers.NewHeadToHeadHandler(s.store)
		r.Get("/head-to-head", h2hHandler.GetHeadToHead)

		rankingsHandler := handlers.NewRankingsHandler(s.store)
		r.Route("/rankings", func(r chi.Router) {
			r.Get("/", rankingsHandler.GetRankings)
			r.Get("/{team}", rankingsHandler.GetTeamRank)
		})
	})
}

// healthCheck returns server health status.
func (s *Server) healthCheck(w http.ResponseWriter, _ *http.Request) {
	snap := s.store.Snapshot()
	response.JSON(w, http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"service": "football-insights-api",
		"version": version.GetVersion(),
		"matches": snap.Matches.Len(),
	})
}
