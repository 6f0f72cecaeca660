package stats

import (
	"testing"

	"football-insights/internal/dataset"
)

func filterFixture() []dataset.Match {
	return []dataset.Match{
		match(day(2018, 6, 1), "France", 4, "Croatia", 2, "World Cup"),
		match(day(2019, 3, 1), "France", 1, "Germany", 1, "Friendly"),
		match(day(2020, 9, 1), "Croatia", 2, "France", 1, "Nations League"),
		match(day(2021, 6, 1), "Germany", 0, "Croatia", 0, "Euro"),
	}
}

func TestByTeam(t *testing.T) {
	records := filterFixture()

	tests := []struct {
		team string
		want int
	}{
		{"France", 3},
		{"Croatia", 3},
		{"Germany", 2},
		{"Brazil", 0},
	}

	for _, tt := range tests {
		t.Run(tt.team, func(t *testing.T) {
			got := ByTeam(records, tt.team)
			if len(got) != tt.want {
				t.Errorf("ByTeam(%q) returned %d matches, want %d", tt.team, len(got), tt.want)
			}
			for _, m := range got {
				if !m.Involves(tt.team) {
					t.Errorf("match %s vs %s does not involve %q", m.HomeTeam, m.AwayTeam, tt.team)
				}
			}
		})
	}
}

func TestByTeamOverall(t *testing.T) {
	records := filterFixture()

	if got := ByTeam(records, Overall); len(got) != len(records) {
		t.Errorf("sentinel %q returned %d, want everything", Overall, len(got))
	}
	if got := ByTeam(records, ""); len(got) != len(records) {
		t.Errorf("empty team returned %d, want everything", len(got))
	}
}

func TestByTournament(t *testing.T) {
	records := filterFixture()

	if got := ByTournament(records, "World Cup"); len(got) != 1 {
		t.Errorf("exact tournament filter returned %d, want 1", len(got))
	}
	if got := ByTournament(records, AllTournaments); len(got) != len(records) {
		t.Errorf("sentinel %q returned %d, want everything", AllTournaments, len(got))
	}
	if got := ByTournament(records, ""); len(got) != len(records) {
		t.Errorf("empty tournament returned %d, want everything", len(got))
	}
	if got := ByTournament(records, "Copa America"); len(got) != 0 {
		t.Errorf("unknown tournament returned %d, want 0", len(got))
	}
}

func TestCompetitive(t *testing.T) {
	records := filterFixture()
	got := Competitive(records)
	if len(got) != 3 {
		t.Fatalf("Competitive returned %d matches, want 3", len(got))
	}
	for _, m := range got {
		if m.Tournament == dataset.FriendlyTournament {
			t.Errorf("friendly match leaked through competitive filter")
		}
	}
}

func TestByYearRange(t *testing.T) {
	records := filterFixture()

	tests := []struct {
		name     string
		from, to int
		want     int
	}{
		{"Closed range", 2019, 2020, 2},
		{"Open lower bound", 0, 2018, 1},
		{"Open upper bound", 2020, 0, 2},
		{"Fully open", 0, 0, 4},
		{"Empty range", 2022, 2023, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ByYearRange(records, tt.from, tt.to); len(got) != tt.want {
				t.Errorf("ByYearRange(%d, %d) = %d matches, want %d", tt.from, tt.to, len(got), tt.want)
			}
		})
	}
}

func TestFiltersCompose(t *testing.T) {
	records := filterFixture()

	ab := ByTournament(ByTeam(records, "France"), "Friendly")
	ba := ByTeam(ByTournament(records, "Friendly"), "France")

	if len(ab) != 1 || len(ba) != 1 {
		t.Fatalf("composed filters returned %d and %d matches, want 1 and 1", len(ab), len(ba))
	}
	if ab[0] != ba[0] {
		t.Errorf("filter order changed the result: %+v vs %+v", ab[0], ba[0])
	}
}
