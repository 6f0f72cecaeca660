package dataset

import "testing"

func TestStoreReplace(t *testing.T) {
	first := NewRepository([]Match{{HomeTeam: "A", AwayTeam: "B"}})
	rankings := NewRankingTable([]RankingEntry{{Team: "A", Rank: 1}})
	store := NewStore(first, rankings)

	snap := store.Snapshot()
	if snap.Matches != first || snap.Rankings != rankings {
		t.Fatal("initial snapshot does not hold the seeded data")
	}

	second := NewRepository(nil)
	store.Replace(second, nil)

	snap = store.Snapshot()
	if snap.Matches != second {
		t.Error("replace did not swap the match repository")
	}
	if snap.Rankings != rankings {
		t.Error("nil rankings on replace must keep the previous table")
	}
}
