// Package dataset provides the in-memory match and ranking tables the
// insight engines compute over.
package dataset

import "time"

// Outcome is the absolute result of a match, fixed at load time.
type Outcome int

const (
	// Draw means neither side scored more goals.
	Draw Outcome = iota
	// HomeWin means the home side scored more goals.
	HomeWin
	// AwayWin means the away side scored more goals.
	AwayWin
)

// String returns a human-readable outcome label.
func (o Outcome) String() string {
	switch o {
	case HomeWin:
		return "home_win"
	case AwayWin:
		return "away_win"
	default:
		return "draw"
	}
}

// Match is one historical fixture. Records are immutable once loaded.
type Match struct {
	Date       time.Time `json:"date"`
	HomeTeam   string    `json:"home_team"`
	AwayTeam   string    `json:"away_team"`
	HomeGoals  int       `json:"home_goals"`
	AwayGoals  int       `json:"away_goals"`
	Tournament string    `json:"tournament"`
	Outcome    Outcome   `json:"outcome"`
}

// FriendlyTournament is the distinguished non-competitive tournament
// value, excluded from "competitive matches only" views.
const FriendlyTournament = "Friendly"

// IsCompetitive reports whether the match was played in a competitive
// tournament rather than as a friendly.
func (m Match) IsCompetitive() bool {
	return m.Tournament != FriendlyTournament
}

// Involves reports whether the given team played in the match on
// either side.
func (m Match) Involves(team string) bool {
	return m.HomeTeam == team || m.AwayTeam == team
}

// Winner returns the winning team name, or "" for a draw.
func (m Match) Winner() string {
	switch m.Outcome {
	case HomeWin:
		return m.HomeTeam
	case AwayWin:
		return m.AwayTeam
	default:
		return ""
	}
}

// TotalGoals returns the combined goal count of both sides.
func (m Match) TotalGoals() int {
	return m.HomeGoals + m.AwayGoals
}

// NewMatch builds a match record with its outcome label derived from
// the goal counts. Loaders use this so the label is fixed exactly once.
func NewMatch(date time.Time, home, away string, homeGoals, awayGoals int, tournament string) Match {
	return Match{
		Date:       date,
		HomeTeam:   home,
		AwayTeam:   away,
		HomeGoals:  homeGoals,
		AwayGoals:  awayGoals,
		Tournament: tournament,
		Outcome:    deriveOutcome(homeGoals, awayGoals),
	}
}

// deriveOutcome computes the outcome label from the goal counts.
// It is applied exactly once, when a record enters the repository.
func deriveOutcome(homeGoals, awayGoals int) Outcome {
	switch {
	case homeGoals > awayGoals:
		return HomeWin
	case awayGoals > homeGoals:
		return AwayWin
	default:
		return Draw
	}
}
