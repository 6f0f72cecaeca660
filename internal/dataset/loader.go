package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// dateLayouts are the date formats accepted in source tables. The
// historical CSV mixes several notations, so each is tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"02/01/2006",
	"01/02/2006",
	"Jan 2, 2006",
	"2 January 2006",
}

func parseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// LoadCSV reads a match history table from disk and builds a
// repository. A missing or unreadable file is an error; individual
// rows with unparseable dates or malformed goal counts are silently
// dropped, which is a deliberate cleaning policy rather than a
// failure mode.
func LoadCSV(path string) (*Repository, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open match table: %w", err)
	}
	defer f.Close()

	repo, err := ReadMatches(f)
	if err != nil {
		return nil, fmt.Errorf("read match table %s: %w", path, err)
	}
	return repo, nil
}

// ReadMatches parses CSV match rows from r. The first row must be a
// header containing at least the date, team, goal and tournament
// columns; header names are matched case-insensitively.
func ReadMatches(r io.Reader) (*Repository, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols, err := matchColumns(header)
	if err != nil {
		return nil, err
	}

	var records []Match
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		m, ok := parseMatchRow(row, cols)
		if !ok {
			continue
		}
		records = append(records, m)
	}

	return NewRepository(records), nil
}

// matchCols maps the required columns to their header positions.
type matchCols struct {
	date, home, away, homeGoals, awayGoals, tournament int
}

func matchColumns(header []string) (matchCols, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[normalizeHeader(name)] = i
	}

	cols := matchCols{}
	required := []struct {
		dst   *int
		names []string
	}{
		{&cols.date, []string{"date"}},
		{&cols.home, []string{"home team", "home_team"}},
		{&cols.away, []string{"away team", "away_team"}},
		{&cols.homeGoals, []string{"home goals", "home_goals", "home score", "home_score"}},
		{&cols.awayGoals, []string{"away goals", "away_goals", "away score", "away_score"}},
		{&cols.tournament, []string{"tournament", "competition"}},
	}

	for _, req := range required {
		found := false
		for _, name := range req.names {
			if i, ok := index[name]; ok {
				*req.dst = i
				found = true
				break
			}
		}
		if !found {
			return matchCols{}, fmt.Errorf("missing column %q in match table header", req.names[0])
		}
	}
	return cols, nil
}

func normalizeHeader(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func parseMatchRow(row []string, cols matchCols) (Match, bool) {
	max := cols.date
	for _, i := range []int{cols.home, cols.away, cols.homeGoals, cols.awayGoals, cols.tournament} {
		if i > max {
			max = i
		}
	}
	if len(row) <= max {
		return Match{}, false
	}

	date, ok := parseDate(row[cols.date])
	if !ok {
		return Match{}, false
	}

	home := strings.TrimSpace(row[cols.home])
	away := strings.TrimSpace(row[cols.away])
	if home == "" || away == "" {
		return Match{}, false
	}

	homeGoals, err := strconv.Atoi(strings.TrimSpace(row[cols.homeGoals]))
	if err != nil || homeGoals < 0 {
		return Match{}, false
	}
	awayGoals, err := strconv.Atoi(strings.TrimSpace(row[cols.awayGoals]))
	if err != nil || awayGoals < 0 {
		return Match{}, false
	}

	return NewMatch(date, home, away, homeGoals, awayGoals, strings.TrimSpace(row[cols.tournament])), true
}
