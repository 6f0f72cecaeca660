package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"football-insights/internal/config"
	"football-insights/internal/dataset"
)

func testServer(t *testing.T, cfg config.ServerConfig) *Server {
	t.Helper()

	matches := []dataset.Match{
		dataset.NewMatch(time.Date(2018, time.June, 17, 0, 0, 0, 0, time.UTC),
			"Germany", "Mexico", 0, 1, "FIFA World Cup"),
		dataset.NewMatch(time.Date(2018, time.June, 23, 0, 0, 0, 0, time.UTC),
			"Germany", "Sweden", 2, 1, "FIFA World Cup"),
	}
	store := dataset.NewStore(dataset.NewRepository(matches), nil)
	return NewServer(cfg, store)
}

func TestNewServer(t *testing.T) {
	cfg := config.DefaultConfig().Server
	server := testServer(t, cfg)

	if server == nil {
		t.Fatal("NewServer returned nil")
	}
	if server.Port() != cfg.Port {
		t.Errorf("Expected port %d, got %d", cfg.Port, server.Port())
	}
}

func TestHealthCheck(t *testing.T) {
	server := testServer(t, config.DefaultConfig().Server)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode health response: %v", err)
	}
	if body["status"] != "healthy" {
		t.Errorf("Expected healthy status, got %v", body["status"])
	}
	if body["matches"] != float64(2) {
		t.Errorf("Expected 2 matches, got %v", body["matches"])
	}
}

func TestRoutesWired(t *testing.T) {
	server := testServer(t, config.DefaultConfig().Server)

	// Routing only: each endpoint answers something other than 404
	// page-not-found for a well-formed request.
	paths := []string{
		"/api/v1/teams",
		"/api/v1/tournaments",
		"/api/v1/win-rates?team=Germany",
		"/api/v1/goal-trends?team=Overall",
		"/api/v1/home-away?team=Germany",
		"/api/v1/streaks?team=Germany",
		"/api/v1/over-rate?team=Overall",
		"/api/v1/head-to-head?team_a=Germany&team_b=Mexico",
		"/dashboard",
	}

	for _, path := range paths {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		server.Router().ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("GET %s: expected status 200, got %d: %s", path, rec.Code, rec.Body.String())
		}
	}
}

func TestRankingsWithoutTable(t *testing.T) {
	server := testServer(t, config.DefaultConfig().Server)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rankings?year=2018", nil)
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)

	// No table loaded degrades to an empty list, not an error.
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
}

func TestRateLimit(t *testing.T) {
	cfg := config.DefaultConfig().Server
	cfg.RateLimit = 1
	cfg.RateBurst = 1
	server := testServer(t, cfg)

	first := httptest.NewRecorder()
	server.Router().ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/health", nil))
	if first.Code != http.StatusOK {
		t.Fatalf("Expected first request to pass, got %d", first.Code)
	}

	second := httptest.NewRecorder()
	server.Router().ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/health", nil))
	if second.Code != http.StatusTooManyRequests {
		t.Errorf("Expected status 429 after burst exhausted, got %d", second.Code)
	}
}
