// Package main runs the football insights API server over a match
// history dataset loaded from CSV or the SQLite archive.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"football-insights/internal/api"
	"football-insights/internal/config"
	"football-insights/internal/dataset"
	"football-insights/internal/storage"
	"football-insights/internal/version"
)

var (
	configPath = flag.String("config", "", "Path to the TOML config file")
	port       = flag.Int("port", 0, "Listen port (overrides config)")
	matchesCSV = flag.String("matches", "", "Path to the match history CSV (overrides config)")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *matchesCSV != "" {
		cfg.Data.Source = config.SourceCSV
		cfg.Data.MatchesCSV = *matchesCSV
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	store, err := loadDataset(cfg)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}

	snap := store.Snapshot()
	fmt.Printf("Football Insights - API Server %s\n", version.GetVersion())
	fmt.Printf("Matches loaded: %d (%d teams, %d tournaments)\n",
		snap.Matches.Len(), len(snap.Matches.Teams()), len(snap.Matches.Tournaments()))
	if snap.Rankings.Len() > 0 {
		fmt.Printf("Ranking entries: %d\n", snap.Rankings.Len())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Data.Watch && cfg.Data.Source == config.SourceCSV {
		watcher := dataset.NewWatcher(store, cfg.Data.MatchesCSV)
		go func() {
			if err := watcher.Run(ctx); err != nil {
				log.Printf("Dataset watcher stopped: %v", err)
			}
		}()
	}

	server := api.NewServer(cfg.Server, store)
	if err := server.Start(); err != nil {
		log.Fatalf("Failed to start API server: %v", err)
	}

	fmt.Printf("API server running at http://localhost:%d\n", server.Port())
	fmt.Printf("Dashboard at http://localhost:%d/dashboard\n", server.Port())
	fmt.Println("Press Ctrl+C to stop")

	<-ctx.Done()
	stop()

	fmt.Println()
	fmt.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	fmt.Println("API server stopped.")
}

// loadDataset builds the initial snapshot from the configured source.
func loadDataset(cfg *config.Config) (*dataset.Store, error) {
	switch cfg.Data.Source {
	case config.SourceSQLite:
		return loadFromArchive(cfg.Data.ArchivePath)
	default:
		return loadFromCSV(cfg.Data.MatchesCSV, cfg.Data.RankingsCSV)
	}
}

func loadFromCSV(matchesPath, rankingsPath string) (*dataset.Store, error) {
	matches, err := dataset.LoadCSV(matchesPath)
	if err != nil {
		return nil, fmt.Errorf("loading matches: %w", err)
	}

	var rankings *dataset.RankingTable
	if rankingsPath != "" {
		rankings, err = dataset.LoadRankingsCSV(rankingsPath)
		if err != nil {
			// Rankings are optional. A missing table only disables
			// the ranking endpoints.
			log.Printf("Rankings unavailable: %v", err)
			rankings = nil
		}
	}

	return dataset.NewStore(matches, rankings), nil
}

func loadFromArchive(path string) (*dataset.Store, error) {
	cfg := storage.DefaultConfig(path)
	cfg.AutoMigrate = true
	db, err := storage.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("opening archive: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing archive: %v", err)
		}
	}()

	ctx := context.Background()
	matches, err := db.LoadMatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading matches from archive: %w", err)
	}
	rankings, err := db.LoadRankings(ctx)
	if err != nil {
		log.Printf("Rankings unavailable: %v", err)
		rankings = nil
	}

	return dataset.NewStore(matches, rankings), nil
}
