package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"
)

// NotRanked is returned by RankOf when a team has no ranking entry
// for the requested year.
const NotRanked = -1

// RankingEntry is one row of a periodic ranking snapshot.
type RankingEntry struct {
	Date time.Time `json:"date"`
	Team string    `json:"team"`
	Rank int       `json:"rank"`
}

// RankingTable holds periodic ranking snapshots. Like the match
// repository it is built once and read-only thereafter. The table is
// optional: a nil *RankingTable degrades every lookup to "no data".
type RankingTable struct {
	entries []RankingEntry
}

// NewRankingTable builds a table from already-validated entries.
func NewRankingTable(entries []RankingEntry) *RankingTable {
	return &RankingTable{entries: entries}
}

// LoadRankingsCSV reads a ranking table from disk. Rows with
// unparseable dates or ranks are dropped silently, mirroring the
// match loader's cleaning policy.
func LoadRankingsCSV(path string) (*RankingTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ranking table: %w", err)
	}
	defer f.Close()

	table, err := ReadRankings(f)
	if err != nil {
		return nil, fmt.Errorf("read ranking table %s: %w", path, err)
	}
	return table, nil
}

// ReadRankings parses CSV ranking rows from r.
func ReadRankings(r io.Reader) (*RankingTable, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	dateCol, teamCol, rankCol := -1, -1, -1
	for i, name := range header {
		switch normalizeHeader(name) {
		case "date", "rank_date", "ranking date":
			dateCol = i
		case "team", "country", "country_full", "country full":
			teamCol = i
		case "rank":
			rankCol = i
		}
	}
	if dateCol < 0 || teamCol < 0 || rankCol < 0 {
		return nil, fmt.Errorf("ranking table header missing date, team or rank column")
	}

	var entries []RankingEntry
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		if len(row) <= dateCol || len(row) <= teamCol || len(row) <= rankCol {
			continue
		}

		date, ok := parseDate(row[dateCol])
		if !ok {
			continue
		}
		team := strings.TrimSpace(row[teamCol])
		if team == "" {
			continue
		}
		rank, err := strconv.Atoi(strings.TrimSpace(row[rankCol]))
		if err != nil || rank < 1 {
			continue
		}

		entries = append(entries, RankingEntry{Date: date, Team: team, Rank: rank})
	}

	return NewRankingTable(entries), nil
}

// Entries returns every retained ranking entry.
func (t *RankingTable) Entries() []RankingEntry {
	if t == nil {
		return nil
	}
	return t.entries
}

// Len returns the number of retained ranking entries.
func (t *RankingTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// snapshotForYear returns the entries of the latest ranking date
// within the year, or nil when the year has no data.
func (t *RankingTable) snapshotForYear(year int) []RankingEntry {
	if t == nil {
		return nil
	}

	var latest time.Time
	for _, e := range t.entries {
		if e.Date.Year() == year && e.Date.After(latest) {
			latest = e.Date
		}
	}
	if latest.IsZero() {
		return nil
	}

	var snapshot []RankingEntry
	for _, e := range t.entries {
		if e.Date.Equal(latest) {
			snapshot = append(snapshot, e)
		}
	}
	return snapshot
}

// TopNForYear returns the n best-ranked teams of the most recent
// ranking snapshot within the year, ascending by rank. A year with no
// data yields an empty result, never an error.
func (t *RankingTable) TopNForYear(year, n int) []RankingEntry {
	snapshot := t.snapshotForYear(year)
	if len(snapshot) == 0 || n <= 0 {
		return []RankingEntry{}
	}

	sort.SliceStable(snapshot, func(i, j int) bool {
		return snapshot[i].Rank < snapshot[j].Rank
	})
	if n > len(snapshot) {
		n = len(snapshot)
	}
	return snapshot[:n]
}

// RankOf returns the team's rank in the most recent snapshot of the
// year, or NotRanked when the team or year has no entry.
func (t *RankingTable) RankOf(year int, team string) int {
	for _, e := range t.snapshotForYear(year) {
		if e.Team == team {
			return e.Rank
		}
	}
	return NotRanked
}
