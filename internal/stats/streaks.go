package stats

import (
	"fmt"
	"sort"

	"football-insights/internal/dataset"
)

// StreakStats summarizes a team's win/loss runs. CurrentStreak is
// positive for an active win run, negative for an active loss run,
// and 0 after a draw or with no history.
type StreakStats struct {
	CurrentStreak     int `json:"current_streak"`
	LongestWinStreak  int `json:"longest_win_streak"`
	LongestLossStreak int `json:"longest_loss_streak"`
}

// Streaks calculates streak statistics for a team over the given
// matches. Records are ordered chronologically internally, so input
// order does not matter.
func Streaks(records []dataset.Match, team string) StreakStats {
	chrono := make([]dataset.Match, 0, len(records))
	for _, m := range records {
		if m.Involves(team) {
			chrono = append(chrono, m)
		}
	}
	sort.SliceStable(chrono, func(i, j int) bool {
		return chrono[i].Date.Before(chrono[j].Date)
	})

	var stats StreakStats
	currentWins := 0
	currentLosses := 0

	for _, m := range chrono {
		switch ResultFor(m, team) {
		case Win:
			currentWins++
			currentLosses = 0
			if currentWins > stats.LongestWinStreak {
				stats.LongestWinStreak = currentWins
			}
		case Loss:
			currentLosses++
			currentWins = 0
			if currentLosses > stats.LongestLossStreak {
				stats.LongestLossStreak = currentLosses
			}
		default:
			// A draw breaks both runs.
			currentWins = 0
			currentLosses = 0
		}
	}

	if currentWins > 0 {
		stats.CurrentStreak = currentWins
	} else if currentLosses > 0 {
		stats.CurrentStreak = -currentLosses
	}

	return stats
}

// FormatCurrentStreak returns a human-readable string for the current
// streak value.
func FormatCurrentStreak(streak int) string {
	if streak == 0 {
		return "No active streak"
	}
	if streak > 0 {
		if streak == 1 {
			return "1 win streak"
		}
		return fmt.Sprintf("%d win streak", streak)
	}
	absStreak := -streak
	if absStreak == 1 {
		return "1 loss streak"
	}
	return fmt.Sprintf("%d loss streak", absStreak)
}
