package dataset

import "sort"

// Repository is the full ordered match history plus derived team and
// tournament indices. It is built once at load time and read-only
// thereafter, so it is safe for any number of concurrent readers.
type Repository struct {
	records     []Match
	teams       []string
	tournaments []string
}

// NewRepository builds a repository from already-validated records.
// Record order is preserved; team and tournament indices are sorted
// and deduplicated so UI enumeration is deterministic.
func NewRepository(records []Match) *Repository {
	teamSet := make(map[string]struct{})
	tournamentSet := make(map[string]struct{})
	for _, m := range records {
		teamSet[m.HomeTeam] = struct{}{}
		teamSet[m.AwayTeam] = struct{}{}
		tournamentSet[m.Tournament] = struct{}{}
	}

	return &Repository{
		records:     records,
		teams:       sortedKeys(teamSet),
		tournaments: sortedKeys(tournamentSet),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Records returns the full match history in input order. Callers must
// not mutate the returned slice.
func (r *Repository) Records() []Match {
	return r.records
}

// Teams returns every team name appearing home or away, sorted.
func (r *Repository) Teams() []string {
	return r.teams
}

// Tournaments returns every tournament name, sorted.
func (r *Repository) Tournaments() []string {
	return r.tournaments
}

// Len returns the number of retained match records.
func (r *Repository) Len() int {
	return len(r.records)
}

// HasTeam reports whether the team appears anywhere in the history.
func (r *Repository) HasTeam(team string) bool {
	i := sort.SearchStrings(r.teams, team)
	return i < len(r.teams) && r.teams[i] == team
}
