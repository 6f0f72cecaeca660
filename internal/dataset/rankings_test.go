package dataset

import (
	"strings"
	"testing"
	"time"
)

func rankingFixture() *RankingTable {
	d := func(y, m, dom int) time.Time {
		return time.Date(y, time.Month(m), dom, 0, 0, 0, 0, time.UTC)
	}
	return NewRankingTable([]RankingEntry{
		{Date: d(2019, 4, 1), Team: "Belgium", Rank: 1},
		{Date: d(2019, 4, 1), Team: "France", Rank: 2},
		{Date: d(2019, 4, 1), Team: "Brazil", Rank: 3},
		// A later snapshot within the same year supersedes April.
		{Date: d(2019, 10, 1), Team: "Belgium", Rank: 1},
		{Date: d(2019, 10, 1), Team: "Brazil", Rank: 2},
		{Date: d(2019, 10, 1), Team: "France", Rank: 3},
		{Date: d(2020, 2, 1), Team: "Belgium", Rank: 2},
		{Date: d(2020, 2, 1), Team: "France", Rank: 1},
	})
}

func TestTopNForYear(t *testing.T) {
	table := rankingFixture()

	got := table.TopNForYear(2019, 2)
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}
	// Must come from the October snapshot, not April.
	if got[0].Team != "Belgium" || got[1].Team != "Brazil" {
		t.Errorf("top 2 for 2019 = %s, %s; want Belgium, Brazil", got[0].Team, got[1].Team)
	}

	if got := table.TopNForYear(2018, 5); len(got) != 0 {
		t.Errorf("year with no data returned %d entries, want empty", len(got))
	}
	if got := table.TopNForYear(2019, 0); len(got) != 0 {
		t.Errorf("n=0 returned %d entries, want empty", len(got))
	}
	if got := table.TopNForYear(2020, 10); len(got) != 2 {
		t.Errorf("n beyond snapshot size returned %d entries, want all 2", len(got))
	}
}

func TestRankOf(t *testing.T) {
	table := rankingFixture()

	tests := []struct {
		year int
		team string
		want int
	}{
		{2019, "Brazil", 2}, // October snapshot
		{2020, "France", 1},
		{2019, "Germany", NotRanked},
		{2018, "Belgium", NotRanked},
	}

	for _, tt := range tests {
		if got := table.RankOf(tt.year, tt.team); got != tt.want {
			t.Errorf("RankOf(%d, %q) = %d, want %d", tt.year, tt.team, got, tt.want)
		}
	}
}

func TestNilRankingTable(t *testing.T) {
	var table *RankingTable

	if got := table.TopNForYear(2020, 5); len(got) != 0 {
		t.Errorf("nil table TopNForYear returned %d entries", len(got))
	}
	if got := table.RankOf(2020, "Brazil"); got != NotRanked {
		t.Errorf("nil table RankOf = %d, want NotRanked", got)
	}
	if table.Len() != 0 {
		t.Errorf("nil table Len = %d", table.Len())
	}
}

func TestReadRankings(t *testing.T) {
	csv := `rank_date,country_full,rank
2019-04-01,Belgium,1
bad-date,France,2
2019-04-01,France,0
2019-04-01,Brazil,3
`
	table, err := ReadRankings(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ReadRankings: %v", err)
	}
	// The bad date and the rank below 1 are dropped.
	if table.Len() != 2 {
		t.Fatalf("retained %d entries, want 2", table.Len())
	}
	if got := table.RankOf(2019, "Belgium"); got != 1 {
		t.Errorf("RankOf Belgium = %d, want 1", got)
	}
}

func TestReadRankingsBadHeader(t *testing.T) {
	if _, err := ReadRankings(strings.NewReader("a,b,c\n1,2,3\n")); err == nil {
		t.Fatal("expected error for unrecognized header")
	}
}
