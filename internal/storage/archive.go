package storage

import (
	"context"
	"fmt"
	"time"

	"football-insights/internal/dataset"
)

// dateFormat is how dates are stored in the archive. ISO dates sort
// lexicographically, which the indices rely on.
const dateFormat = "2006-01-02"

// InsertMatches appends match records to the archive in one
// transaction.
func (db *DB) InsertMatches(ctx context.Context, records []dataset.Match) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO matches (match_date, home_team, away_team, home_goals, away_goals, tournament)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, m := range records {
		_, err := stmt.ExecContext(ctx,
			m.Date.Format(dateFormat), m.HomeTeam, m.AwayTeam, m.HomeGoals, m.AwayGoals, m.Tournament)
		if err != nil {
			return fmt.Errorf("insert match %s vs %s: %w", m.HomeTeam, m.AwayTeam, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// LoadMatches reads the full archive in insertion order and rebuilds
// the repository. Outcome labels are re-derived from the stored goal
// counts by the record constructor, so they always agree with the
// load-time invariant.
func (db *DB) LoadMatches(ctx context.Context) (*dataset.Repository, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT match_date, home_team, away_team, home_goals, away_goals, tournament
		 FROM matches ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query matches: %w", err)
	}
	defer rows.Close()

	var records []dataset.Match
	for rows.Next() {
		var dateStr, home, away, tournament string
		var homeGoals, awayGoals int
		if err := rows.Scan(&dateStr, &home, &away, &homeGoals, &awayGoals, &tournament); err != nil {
			return nil, fmt.Errorf("scan match row: %w", err)
		}
		date, err := time.Parse(dateFormat, dateStr)
		if err != nil {
			// The importer only writes valid dates; a bad row here
			// means hand-edited data, which follows the same
			// drop-silently policy as the CSV loader.
			continue
		}
		records = append(records, dataset.NewMatch(date, home, away, homeGoals, awayGoals, tournament))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate matches: %w", err)
	}

	return dataset.NewRepository(records), nil
}

// CountMatches returns the number of archived match rows.
func (db *DB) CountMatches(ctx context.Context) (int, error) {
	var n int
	if err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM matches`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count matches: %w", err)
	}
	return n, nil
}

// InsertRankings appends ranking entries to the archive in one
// transaction.
func (db *DB) InsertRankings(ctx context.Context, entries []dataset.RankingEntry) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO rankings (rank_date, team, rank) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx, e.Date.Format(dateFormat), e.Team, e.Rank); err != nil {
			return fmt.Errorf("insert ranking for %s: %w", e.Team, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// LoadRankings reads the full ranking archive.
func (db *DB) LoadRankings(ctx context.Context) (*dataset.RankingTable, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT rank_date, team, rank FROM rankings ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query rankings: %w", err)
	}
	defer rows.Close()

	var entries []dataset.RankingEntry
	for rows.Next() {
		var dateStr, team string
		var rank int
		if err := rows.Scan(&dateStr, &team, &rank); err != nil {
			return nil, fmt.Errorf("scan ranking row: %w", err)
		}
		date, err := time.Parse(dateFormat, dateStr)
		if err != nil {
			continue
		}
		entries = append(entries, dataset.RankingEntry{Date: date, Team: team, Rank: rank})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rankings: %w", err)
	}

	return dataset.NewRankingTable(entries), nil
}
