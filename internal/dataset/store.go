package dataset

import "sync/atomic"

// Snapshot pairs a match repository with its optional ranking table.
type Snapshot struct {
	Matches  *Repository
	Rankings *RankingTable
}

// Store holds the live dataset snapshot. Queries read the whole
// snapshot through a single atomic pointer, so a background reload
// can replace the data without any reader-side locking: readers that
// started on the old snapshot simply finish on it.
type Store struct {
	current atomic.Pointer[Snapshot]
}

// NewStore creates a store seeded with the given snapshot.
func NewStore(matches *Repository, rankings *RankingTable) *Store {
	s := &Store{}
	s.current.Store(&Snapshot{Matches: matches, Rankings: rankings})
	return s
}

// Snapshot returns the current dataset snapshot.
func (s *Store) Snapshot() *Snapshot {
	return s.current.Load()
}

// Replace swaps in a new snapshot. Nil fields keep their previous
// value, so a match reload does not discard the ranking table.
func (s *Store) Replace(matches *Repository, rankings *RankingTable) {
	prev := s.current.Load()
	next := &Snapshot{Matches: matches, Rankings: rankings}
	if next.Matches == nil && prev != nil {
		next.Matches = prev.Matches
	}
	if next.Rankings == nil && prev != nil {
		next.Rankings = prev.Rankings
	}
	s.current.Store(next)
}
