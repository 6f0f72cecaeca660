// Package stats computes descriptive statistics over match records.
// Every function is a pure pass over its input slice; empty input is
// always a valid, non-error case.
package stats

import "football-insights/internal/dataset"

// AllTournaments is the sentinel tournament filter value meaning "do
// not filter by tournament".
const AllTournaments = "All"

// Overall is the sentinel team value meaning "every team": views
// that accept it aggregate the whole dataset instead of one side's
// matches.
const Overall = "Overall"

// ByTeam returns the matches in which the team played home or away.
// The sentinel Overall (or an empty name) returns the input
// unchanged.
func ByTeam(records []dataset.Match, team string) []dataset.Match {
	if team == "" || team == Overall {
		return records
	}
	var out []dataset.Match
	for _, m := range records {
		if m.Involves(team) {
			out = append(out, m)
		}
	}
	return out
}

// ByTournament returns matches in the named tournament. The sentinel
// AllTournaments (or an empty name) returns the input unchanged.
func ByTournament(records []dataset.Match, tournament string) []dataset.Match {
	if tournament == "" || tournament == AllTournaments {
		return records
	}
	var out []dataset.Match
	for _, m := range records {
		if m.Tournament == tournament {
			out = append(out, m)
		}
	}
	return out
}

// ExcludingTournament returns every match not in the named
// tournament. Used with dataset.FriendlyTournament for competitive
// views.
func ExcludingTournament(records []dataset.Match, tournament string) []dataset.Match {
	var out []dataset.Match
	for _, m := range records {
		if m.Tournament != tournament {
			out = append(out, m)
		}
	}
	return out
}

// Competitive returns the matches played outside friendlies.
func Competitive(records []dataset.Match) []dataset.Match {
	return ExcludingTournament(records, dataset.FriendlyTournament)
}

// ByYearRange returns matches whose calendar year falls within the
// inclusive [from, to] bounds. A zero bound is open on that side.
func ByYearRange(records []dataset.Match, from, to int) []dataset.Match {
	var out []dataset.Match
	for _, m := range records {
		year := m.Date.Year()
		if from != 0 && year < from {
			continue
		}
		if to != 0 && year > to {
			continue
		}
		out = append(out, m)
	}
	return out
}
