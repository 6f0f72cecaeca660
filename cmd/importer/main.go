// Package main imports the match history and ranking CSVs into the
// SQLite archive, so the server can run against a single file.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"football-insights/internal/dataset"
	"football-insights/internal/storage"
)

var (
	matchesCSV  = flag.String("matches", "international_matches.csv", "Path to the match history CSV")
	rankingsCSV = flag.String("rankings", "", "Path to the ranking CSV (optional)")
	archivePath = flag.String("archive", "football.db", "Path to the SQLite archive to write")
)

func main() {
	flag.Parse()

	matches, err := dataset.LoadCSV(*matchesCSV)
	if err != nil {
		log.Fatalf("Failed to load matches: %v", err)
	}

	cfg := storage.DefaultConfig(*archivePath)
	cfg.AutoMigrate = true
	db, err := storage.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to open archive: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing archive: %v", err)
		}
	}()

	ctx := context.Background()

	if err := db.InsertMatches(ctx, matches.Records()); err != nil {
		log.Fatalf("Failed to import matches: %v", err)
	}
	fmt.Printf("Imported %d matches into %s\n", matches.Len(), *archivePath)

	if *rankingsCSV != "" {
		rankings, err := dataset.LoadRankingsCSV(*rankingsCSV)
		if err != nil {
			log.Fatalf("Failed to load rankings: %v", err)
		}
		if err := db.InsertRankings(ctx, rankings.Entries()); err != nil {
			log.Fatalf("Failed to import rankings: %v", err)
		}
		fmt.Printf("Imported %d ranking entries\n", rankings.Len())
	}
}
