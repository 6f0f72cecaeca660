package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"football-insights/internal/dataset"
	"football-insights/internal/stats"
)

// teamParam reads a team query parameter and checks it against the
// dataset. The Overall sentinel passes without a lookup. Returns an
// error suitable for a 400 when missing and ok=false when the team is
// unknown.
func teamParam(r *http.Request, snap *dataset.Snapshot, name string) (string, bool, error) {
	team := r.URL.Query().Get(name)
	if team == "" {
		return "", false, fmt.Errorf("missing %q query parameter", name)
	}
	if team == stats.Overall {
		return team, true, nil
	}
	return team, snap.Matches.HasTeam(team), nil
}

// yearParam reads an optional integer year parameter; absent means 0.
func yearParam(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %q query parameter: %q", name, raw)
	}
	return year, nil
}

// filteredRecords applies the common team/tournament/year filters from
// the request to the snapshot's records.
func filteredRecords(r *http.Request, snap *dataset.Snapshot, team string) ([]dataset.Match, error) {
	records := snap.Matches.Records()
	records = stats.ByTeam(records, team)
	records = stats.ByTournament(records, r.URL.Query().Get("tournament"))

	from, err := yearParam(r, "from")
	if err != nil {
		return nil, err
	}
	to, err := yearParam(r, "to")
	if err != nil {
		return nil, err
	}
	return stats.ByYearRange(records, from, to), nil
}
