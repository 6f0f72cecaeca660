package stats

import (
	"testing"

	"football-insights/internal/dataset"
)

func TestHeadToHeadSoftFail(t *testing.T) {
	records := []dataset.Match{
		match(day(2020, 1, 1), "Brazil", 1, "Argentina", 0, "Copa America"),
	}

	tests := []struct {
		name   string
		a, b   string
	}{
		{"Identical teams", "Brazil", "Brazil"},
		{"No shared history", "Brazil", "Germany"},
		{"Both unknown", "Atlantis", "Lemuria"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary, ok := HeadToHead(records, tt.a, tt.b)
			if ok {
				t.Fatalf("HeadToHead(%q, %q) ok = true, want soft no-history marker", tt.a, tt.b)
			}
			if summary != nil {
				t.Errorf("summary = %+v, want nil", summary)
			}
		})
	}
}

func TestHeadToHeadThreeMatchScenario(t *testing.T) {
	// A won twice (once home, once away), B won its only home match.
	records := []dataset.Match{
		match(day(2019, 1, 1), "A", 2, "B", 0, "Cup"),
		match(day(2019, 6, 1), "B", 1, "A", 3, "Cup"),
		match(day(2020, 1, 1), "B", 2, "A", 1, "Cup"),
	}

	summary, ok := HeadToHead(records, "A", "B")
	if !ok {
		t.Fatal("expected shared history")
	}

	if summary.TotalMatches != 3 || summary.WinsA != 2 || summary.WinsB != 1 || summary.Draws != 0 {
		t.Fatalf("raw tallies = %d total, %d/%d/%d", summary.TotalMatches, summary.WinsA, summary.WinsB, summary.Draws)
	}

	if !almostEqual(summary.ProfileA.WinRate, 200.0/3) {
		t.Errorf("A win rate = %f, want 66.67", summary.ProfileA.WinRate)
	}
	if !almostEqual(summary.ProfileA.HomeWinRate, 100) {
		t.Errorf("A home win rate = %f, want 100 (won its only home match)", summary.ProfileA.HomeWinRate)
	}
	// B hosted twice, winning once.
	if !almostEqual(summary.ProfileB.HomeWinRate, 50) {
		t.Errorf("B home win rate = %f, want 50", summary.ProfileB.HomeWinRate)
	}
	// A kept B scoreless in the first match only.
	if !almostEqual(summary.ProfileA.CleanSheets, 100.0/3) {
		t.Errorf("A clean sheets = %f, want 33.33", summary.ProfileA.CleanSheets)
	}
	if !almostEqual(summary.ProfileB.CleanSheets, 0) {
		t.Errorf("B clean sheets = %f, want 0", summary.ProfileB.CleanSheets)
	}
	// A's own goals: 2+3+1 over 3 matches.
	if !almostEqual(summary.ProfileA.AvgGoals, 2) {
		t.Errorf("A avg goals = %f, want 2", summary.ProfileA.AvgGoals)
	}
	// Combined: 9 goals over 3 matches.
	if !almostEqual(summary.AvgGoals, 3) {
		t.Errorf("combined avg goals = %f, want 3", summary.AvgGoals)
	}
	// Matches with 2, 4 and 3 goals: two exceed 2.5.
	if !almostEqual(summary.OverPct, 200.0/3) {
		t.Errorf("over 2.5 pct = %f, want 66.67", summary.OverPct)
	}
}

func TestRecentFormWeighting(t *testing.T) {
	// Chronological results for A, oldest first: W W L D W.
	// Newest first with weights 5..1: W(5) D(4) L(3) W(2) W(1).
	records := []dataset.Match{
		match(day(2015, 1, 1), "A", 1, "B", 0, "Cup"),
		match(day(2016, 1, 1), "B", 0, "A", 2, "Cup"),
		match(day(2017, 1, 1), "B", 3, "A", 1, "Cup"),
		match(day(2018, 1, 1), "A", 2, "B", 2, "Cup"),
		match(day(2019, 1, 1), "A", 1, "B", 0, "Cup"),
	}

	summary, ok := HeadToHead(records, "A", "B")
	if !ok {
		t.Fatal("expected shared history")
	}

	// (5 + 4/2 + 0 + 2 + 1) / 15 * 100
	want := (5.0 + 2.0 + 0 + 2.0 + 1.0) * 100 / 15
	if !almostEqual(summary.ProfileA.RecentForm, want) {
		t.Errorf("A recent form = %f, want %f", summary.ProfileA.RecentForm, want)
	}
}

func TestRecentFormBounds(t *testing.T) {
	allWins := []dataset.Match{
		match(day(2018, 1, 1), "A", 2, "B", 0, "Cup"),
		match(day(2019, 1, 1), "B", 0, "A", 1, "Cup"),
		match(day(2020, 1, 1), "A", 3, "B", 1, "Cup"),
	}

	summary, ok := HeadToHead(allWins, "A", "B")
	if !ok {
		t.Fatal("expected shared history")
	}
	if !almostEqual(summary.ProfileA.RecentForm, 100) {
		t.Errorf("form for a perfect record = %f, want exactly 100", summary.ProfileA.RecentForm)
	}
	if !almostEqual(summary.ProfileB.RecentForm, 0) {
		t.Errorf("form for a winless, drawless record = %f, want exactly 0", summary.ProfileB.RecentForm)
	}
}

func TestRecentFormShortHistoryDenominator(t *testing.T) {
	// Two meetings only: weights 5 and 4 are used, denominator 9.
	records := []dataset.Match{
		match(day(2019, 1, 1), "A", 0, "B", 1, "Cup"), // older: A loss
		match(day(2020, 1, 1), "A", 2, "B", 0, "Cup"), // newer: A win
	}

	summary, ok := HeadToHead(records, "A", "B")
	if !ok {
		t.Fatal("expected shared history")
	}
	want := 5.0 * 100 / 9
	if !almostEqual(summary.ProfileA.RecentForm, want) {
		t.Errorf("short-history form = %f, want %f", summary.ProfileA.RecentForm, want)
	}
}

func TestRecentFormUsesLastFiveOnly(t *testing.T) {
	// Six meetings; the oldest is an A loss that must not count.
	records := []dataset.Match{
		match(day(2014, 1, 1), "B", 4, "A", 0, "Cup"),
		match(day(2015, 1, 1), "A", 1, "B", 0, "Cup"),
		match(day(2016, 1, 1), "A", 1, "B", 0, "Cup"),
		match(day(2017, 1, 1), "A", 1, "B", 0, "Cup"),
		match(day(2018, 1, 1), "A", 1, "B", 0, "Cup"),
		match(day(2019, 1, 1), "A", 1, "B", 0, "Cup"),
	}

	summary, ok := HeadToHead(records, "A", "B")
	if !ok {
		t.Fatal("expected shared history")
	}
	if !almostEqual(summary.ProfileA.RecentForm, 100) {
		t.Errorf("form = %f, want 100: the sixth-oldest loss is outside the window", summary.ProfileA.RecentForm)
	}
}

func TestHomeWinRateNeverHosted(t *testing.T) {
	records := []dataset.Match{
		match(day(2019, 1, 1), "B", 0, "A", 2, "Cup"),
		match(day(2020, 1, 1), "B", 1, "A", 1, "Cup"),
	}

	summary, ok := HeadToHead(records, "A", "B")
	if !ok {
		t.Fatal("expected shared history")
	}
	if summary.ProfileA.HomeWinRate != 0 {
		t.Errorf("home win rate for a team that never hosted = %f, want 0", summary.ProfileA.HomeWinRate)
	}
}

func TestFlowEdges(t *testing.T) {
	records := []dataset.Match{
		match(day(2016, 1, 1), "A", 2, "B", 0, "Cup"), // A hosts, A wins
		match(day(2017, 1, 1), "A", 0, "B", 1, "Cup"), // A hosts, B wins
		match(day(2018, 1, 1), "A", 1, "B", 1, "Cup"), // A hosts, draw
		match(day(2019, 1, 1), "B", 2, "A", 1, "Cup"), // B hosts, B wins
		match(day(2020, 1, 1), "B", 2, "A", 0, "Cup"), // B hosts, B wins
	}

	summary, ok := HeadToHead(records, "A", "B")
	if !ok {
		t.Fatal("expected shared history")
	}

	sum := 0
	for _, edge := range summary.Flow {
		if edge.Count == 0 {
			t.Errorf("zero-valued flow edge emitted: %+v", edge)
		}
		sum += edge.Count
	}
	if sum != summary.TotalMatches {
		t.Errorf("flow edge counts sum to %d, want %d", sum, summary.TotalMatches)
	}

	// 4 distinct (host, bucket) pairs occur; B hosting never drew or
	// lost, A hosting covered all three buckets.
	if len(summary.Flow) != 4 {
		t.Fatalf("got %d flow edges, want 4: %+v", len(summary.Flow), summary.Flow)
	}

	wantEdge := FlowEdge{Host: "B", Winner: "B", Count: 2}
	found := false
	for _, edge := range summary.Flow {
		if edge == wantEdge {
			found = true
		}
	}
	if !found {
		t.Errorf("edge %+v missing from flow %+v", wantEdge, summary.Flow)
	}
}

func TestLastMeetingsOrder(t *testing.T) {
	// Input deliberately out of chronological order.
	records := []dataset.Match{
		match(day(2018, 1, 1), "A", 1, "B", 0, "Cup"),
		match(day(2020, 1, 1), "B", 2, "A", 2, "Cup"),
		match(day(2016, 1, 1), "B", 1, "A", 0, "Cup"),
		match(day(2019, 1, 1), "A", 3, "B", 1, "Cup"),
		match(day(2015, 1, 1), "A", 0, "B", 0, "Cup"),
		match(day(2017, 1, 1), "B", 0, "A", 1, "Cup"),
	}

	summary, ok := HeadToHead(records, "A", "B")
	if !ok {
		t.Fatal("expected shared history")
	}
	if len(summary.LastMeetings) != 5 {
		t.Fatalf("got %d last meetings, want 5", len(summary.LastMeetings))
	}
	wantYears := []int{2020, 2019, 2018, 2017, 2016}
	for i, m := range summary.LastMeetings {
		if m.Date.Year() != wantYears[i] {
			t.Errorf("meeting %d is from %d, want %d", i, m.Date.Year(), wantYears[i])
		}
	}
}

func TestSharedHistoryIgnoresThirdParties(t *testing.T) {
	records := []dataset.Match{
		match(day(2019, 1, 1), "A", 1, "B", 0, "Cup"),
		match(day(2019, 2, 1), "A", 2, "C", 0, "Cup"),
		match(day(2019, 3, 1), "C", 1, "B", 1, "Cup"),
	}

	shared := SharedHistory(records, "A", "B")
	if len(shared) != 1 {
		t.Fatalf("shared history has %d matches, want 1", len(shared))
	}
}
