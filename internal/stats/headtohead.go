package stats

import (
	"sort"

	"football-insights/internal/dataset"
)

// formWeights weight the most recent shared meetings, newest first.
var formWeights = [5]float64{5, 4, 3, 2, 1}

// overUnderLine is the combined-goals line quoted in the head-to-head
// KPIs.
const overUnderLine = 2.5

// TeamProfile is one side's comparative profile over a shared
// head-to-head history. All rates are percentages at full precision.
type TeamProfile struct {
	Team string `json:"team"`
	// Wins is the raw win count within the shared history.
	Wins int `json:"wins"`
	// WinRate is wins over total shared matches.
	WinRate float64 `json:"win_rate"`
	// HomeWinRate is wins as the hosting side over matches hosted;
	// 0 when the team never hosted the opponent.
	HomeWinRate float64 `json:"home_win_rate"`
	// CleanSheets is the share of shared matches in which the
	// opponent failed to score, on either ground.
	CleanSheets float64 `json:"clean_sheets"`
	// RecentForm is the recency-weighted score over the last (up to)
	// five meetings, bounded in [0,100].
	RecentForm float64 `json:"recent_form"`
	// AvgGoals is the team's own goals per shared match.
	AvgGoals float64 `json:"avg_goals"`
}

// FlowEdge is one directed edge of the outcome-flow breakdown:
// matches hosted by Host that ended in the given bucket. Winner is
// empty for the draw bucket. Zero-count edges are never emitted.
type FlowEdge struct {
	Host   string `json:"host"`
	Winner string `json:"winner,omitempty"`
	Count  int    `json:"count"`
}

// HeadToHeadSummary is the full comparative picture for one unordered
// team pair.
type HeadToHeadSummary struct {
	TeamA        string          `json:"team_a"`
	TeamB        string          `json:"team_b"`
	TotalMatches int             `json:"total_matches"`
	WinsA        int             `json:"wins_a"`
	WinsB        int             `json:"wins_b"`
	Draws        int             `json:"draws"`
	ProfileA     TeamProfile     `json:"profile_a"`
	ProfileB     TeamProfile     `json:"profile_b"`
	Flow         []FlowEdge      `json:"flow"`
	AvgGoals     float64         `json:"avg_goals_per_match"`
	OverPct      float64         `json:"over_2_5_pct"`
	LastMeetings []dataset.Match `json:"last_meetings"`
}

// SharedHistory returns every match between the two teams, in either
// home/away configuration, preserving input order.
func SharedHistory(records []dataset.Match, a, b string) []dataset.Match {
	var out []dataset.Match
	for _, m := range records {
		if (m.HomeTeam == a && m.AwayTeam == b) || (m.HomeTeam == b && m.AwayTeam == a) {
			out = append(out, m)
		}
	}
	return out
}

// HeadToHead summarizes the shared history of teams a and b. The
// second return value is false when the teams are identical or have
// never met; that is the soft "no shared history" marker, not an
// error.
func HeadToHead(records []dataset.Match, a, b string) (*HeadToHeadSummary, bool) {
	if a == b {
		return nil, false
	}
	shared := SharedHistory(records, a, b)
	if len(shared) == 0 {
		return nil, false
	}

	total := len(shared)
	summary := &HeadToHeadSummary{
		TeamA:        a,
		TeamB:        b,
		TotalMatches: total,
	}

	var goalsTotal int
	for _, m := range shared {
		goalsTotal += m.TotalGoals()
		switch m.Winner() {
		case a:
			summary.WinsA++
		case b:
			summary.WinsB++
		default:
			summary.Draws++
		}
	}

	// Chronological copy for recency-sensitive pieces. The input
	// order carries no guarantee.
	chrono := make([]dataset.Match, len(shared))
	copy(chrono, shared)
	sort.SliceStable(chrono, func(i, j int) bool {
		return chrono[i].Date.Before(chrono[j].Date)
	})

	summary.ProfileA = profileFor(shared, chrono, a, summary.WinsA)
	summary.ProfileB = profileFor(shared, chrono, b, summary.WinsB)
	summary.Flow = flowEdges(shared, a, b)
	summary.AvgGoals = float64(goalsTotal) / float64(total)
	summary.OverPct = OverThreshold(shared, overUnderLine)
	summary.LastMeetings = lastMeetings(chrono, 5)

	return summary, true
}

func profileFor(shared, chrono []dataset.Match, team string, wins int) TeamProfile {
	total := len(shared)

	homeMatches, homeWins := 0, 0
	cleanSheets := 0
	ownGoals := 0
	for _, m := range shared {
		if m.HomeTeam == team {
			homeMatches++
			if m.Outcome == dataset.HomeWin {
				homeWins++
			}
			if m.AwayGoals == 0 {
				cleanSheets++
			}
			ownGoals += m.HomeGoals
		} else {
			if m.HomeGoals == 0 {
				cleanSheets++
			}
			ownGoals += m.AwayGoals
		}
	}

	p := TeamProfile{
		Team:       team,
		Wins:       wins,
		WinRate:    pct(wins, total),
		CleanSheets: pct(cleanSheets, total),
		RecentForm: recentForm(chrono, team),
		AvgGoals:   float64(ownGoals) / float64(total),
	}
	if homeMatches > 0 {
		p.HomeWinRate = pct(homeWins, homeMatches)
	}
	return p
}

// recentForm scores the chronologically last five meetings, newest
// weighted heaviest. A win contributes the full weight, a draw half,
// a loss nothing; the denominator is the sum of the weights actually
// used, so short histories are not penalized.
func recentForm(chrono []dataset.Match, team string) float64 {
	n := len(chrono)
	if n == 0 {
		return 0
	}
	considered := n
	if considered > len(formWeights) {
		considered = len(formWeights)
	}

	var scored, possible float64
	for i := 0; i < considered; i++ {
		weight := formWeights[i]
		possible += weight
		// i=0 is the most recent meeting.
		switch ResultFor(chrono[n-1-i], team) {
		case Win:
			scored += weight
		case Draw:
			scored += weight / 2
		}
	}
	if possible == 0 {
		return 0
	}
	return scored * 100 / possible
}

// flowEdges accumulates (hosting team, outcome bucket) counts from
// the fixed a-vs-b perspective. Zero-count edges are omitted: a
// zero-weight flow link is visually meaningless.
func flowEdges(shared []dataset.Match, a, b string) []FlowEdge {
	type key struct {
		host, winner string
	}
	counts := make(map[key]int)
	for _, m := range shared {
		counts[key{m.HomeTeam, m.Winner()}]++
	}

	var edges []FlowEdge
	for _, host := range []string{a, b} {
		for _, winner := range []string{a, b, ""} {
			if c := counts[key{host, winner}]; c > 0 {
				edges = append(edges, FlowEdge{Host: host, Winner: winner, Count: c})
			}
		}
	}
	return edges
}

// lastMeetings returns up to n meetings, most recent first.
func lastMeetings(chrono []dataset.Match, n int) []dataset.Match {
	if n > len(chrono) {
		n = len(chrono)
	}
	out := make([]dataset.Match, 0, n)
	for i := len(chrono) - 1; i >= len(chrono)-n; i-- {
		out = append(out, chrono[i])
	}
	return out
}

func pct(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) * 100 / float64(total)
}
