package stats

import (
	"sort"

	"football-insights/internal/dataset"
)

// Result is a match outcome reframed from one team's perspective.
type Result int

const (
	// Loss means the perspective team was on the losing side.
	Loss Result = iota
	// Draw means the match was drawn.
	Draw
	// Win means the perspective team was on the winning side.
	Win
)

// ResultFor reclassifies a match's absolute outcome into the
// perspective team's win/draw/loss frame. The team is assumed to have
// played in the match.
func ResultFor(m dataset.Match, team string) Result {
	switch m.Outcome {
	case dataset.Draw:
		return Draw
	case dataset.HomeWin:
		if m.HomeTeam == team {
			return Win
		}
		return Loss
	default: // AwayWin
		if m.AwayTeam == team {
			return Win
		}
		return Loss
	}
}

// Tally holds perspective win/draw/loss counts.
type Tally struct {
	Wins   int `json:"wins"`
	Draws  int `json:"draws"`
	Losses int `json:"losses"`
}

// Total returns the number of matches behind the tally.
func (t Tally) Total() int {
	return t.Wins + t.Draws + t.Losses
}

// Percentages holds a win/draw/loss percentage triple on the 0-100
// scale.
type Percentages struct {
	Win  float64 `json:"win_pct"`
	Draw float64 `json:"draw_pct"`
	Loss float64 `json:"loss_pct"`
}

// Percentages converts the tally to percentages. An empty tally
// yields all zeroes rather than a division fault; callers render that
// as a no-data state.
func (t Tally) Percentages() Percentages {
	total := t.Total()
	if total == 0 {
		return Percentages{}
	}
	return Percentages{
		Win:  float64(t.Wins) * 100 / float64(total),
		Draw: float64(t.Draws) * 100 / float64(total),
		Loss: float64(t.Losses) * 100 / float64(total),
	}
}

// OutcomeTally counts wins, draws and losses from the team's
// perspective over the given matches. The Overall sentinel reads
// every match from the hosting side, so wins mean home wins.
func OutcomeTally(records []dataset.Match, team string) Tally {
	var t Tally
	for _, m := range records {
		switch resultFrom(m, team) {
		case Win:
			t.Wins++
		case Draw:
			t.Draws++
		case Loss:
			t.Losses++
		}
	}
	return t
}

func resultFrom(m dataset.Match, team string) Result {
	if team == Overall {
		return ResultFor(m, m.HomeTeam)
	}
	return ResultFor(m, team)
}

// TournamentTally is a team's record within one tournament.
type TournamentTally struct {
	Tournament  string      `json:"tournament"`
	Tally       Tally       `json:"tally"`
	Percentages Percentages `json:"percentages"`
}

// TallyByTournament groups the team's matches by tournament and
// tallies each group, ordered by tournament name.
func TallyByTournament(records []dataset.Match, team string) []TournamentTally {
	byTournament := make(map[string]Tally)
	for _, m := range records {
		t := byTournament[m.Tournament]
		switch resultFrom(m, team) {
		case Win:
			t.Wins++
		case Draw:
			t.Draws++
		case Loss:
			t.Losses++
		}
		byTournament[m.Tournament] = t
	}

	names := make([]string, 0, len(byTournament))
	for name := range byTournament {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]TournamentTally, 0, len(names))
	for _, name := range names {
		t := byTournament[name]
		out = append(out, TournamentTally{
			Tournament:  name,
			Tally:       t,
			Percentages: t.Percentages(),
		})
	}
	return out
}

// YearlyGoals holds average home and away goals for one calendar year.
type YearlyGoals struct {
	Year         int     `json:"year"`
	AvgHomeGoals float64 `json:"avg_home_goals"`
	AvgAwayGoals float64 `json:"avg_away_goals"`
}

// AverageGoalsByYear groups matches by calendar year and averages
// home and away goals independently, ordered by year ascending. Years
// with no matches are absent, not zero-filled.
func AverageGoalsByYear(records []dataset.Match) []YearlyGoals {
	type sums struct {
		home, away, count int
	}
	byYear := make(map[int]sums)
	for _, m := range records {
		s := byYear[m.Date.Year()]
		s.home += m.HomeGoals
		s.away += m.AwayGoals
		s.count++
		byYear[m.Date.Year()] = s
	}

	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Ints(years)

	out := make([]YearlyGoals, 0, len(years))
	for _, y := range years {
		s := byYear[y]
		out = append(out, YearlyGoals{
			Year:         y,
			AvgHomeGoals: float64(s.home) / float64(s.count),
			AvgAwayGoals: float64(s.away) / float64(s.count),
		})
	}
	return out
}

// OverThreshold returns the percentage of matches whose combined goal
// count exceeds the threshold, or 0 for empty input.
func OverThreshold(records []dataset.Match, threshold float64) float64 {
	if len(records) == 0 {
		return 0
	}
	over := 0
	for _, m := range records {
		if float64(m.TotalGoals()) > threshold {
			over++
		}
	}
	return float64(over) * 100 / float64(len(records))
}

// HomeAwaySplit holds a team's record split by match location.
type HomeAwaySplit struct {
	Team      string      `json:"team"`
	HomeTotal int         `json:"home_total"`
	AwayTotal int         `json:"away_total"`
	Home      Percentages `json:"home"`
	Away      Percentages `json:"away"`
}

// SplitHomeAway computes the home-side and away-side win/draw/loss
// percentage triples for a team. The Overall sentinel aggregates
// every record: each match counts once on the home side and once on
// the away side, from the respective hosting/visiting perspective.
func SplitHomeAway(records []dataset.Match, team string) HomeAwaySplit {
	var home, away Tally
	for _, m := range records {
		if team == Overall || m.HomeTeam == team {
			switch m.Outcome {
			case dataset.HomeWin:
				home.Wins++
			case dataset.Draw:
				home.Draws++
			default:
				home.Losses++
			}
		}
		if team == Overall || m.AwayTeam == team {
			switch m.Outcome {
			case dataset.AwayWin:
				away.Wins++
			case dataset.Draw:
				away.Draws++
			default:
				away.Losses++
			}
		}
	}

	return HomeAwaySplit{
		Team:      team,
		HomeTotal: home.Total(),
		AwayTotal: away.Total(),
		Home:      home.Percentages(),
		Away:      away.Percentages(),
	}
}
