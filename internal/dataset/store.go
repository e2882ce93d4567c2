package dataset

import (
	"sync/atomic"
	"time"

	"github.com/urbanwheels/dashboard-go/internal/models"
)

// Snapshot is an immutable view of the full dataset. Records keep the
// source-file order and must not be mutated after construction.
type Snapshot struct {
	Records  []models.Record
	LoadedAt time.Time
}

// NewSnapshot wraps a record slice loaded from the source file
func NewSnapshot(records []models.Record) *Snapshot {
	return &Snapshot{Records: records, LoadedAt: time.Now()}
}

// Years returns the distinct calendar years present, ascending
func (s *Snapshot) Years() []int {
	seen := make(map[int]bool)
	var years []int
	for _, r := range s.Records {
		if !seen[r.Year] {
			seen[r.Year] = true
			years = append(years, r.Year)
		}
	}
	// dataset is date-ordered, but don't rely on it
	for i := 1; i < len(years); i++ {
		for j := i; j > 0 && years[j] < years[j-1]; j-- {
			years[j], years[j-1] = years[j-1], years[j]
		}
	}
	return years
}

// DateRange returns the earliest and latest record dates. The zero time
// is returned for an empty snapshot.
func (s *Snapshot) DateRange() (min, max time.Time) {
	for i, r := range s.Records {
		if i == 0 {
			min, max = r.Date, r.Date
			continue
		}
		if r.Date.Before(min) {
			min = r.Date
		}
		if r.Date.After(max) {
			max = r.Date
		}
	}
	return min, max
}

// Store holds the current snapshot behind an atomic pointer. Readers
// always see a complete snapshot; Replace swaps in a new one without
// touching snapshots held by in-flight requests.
type Store struct {
	current atomic.Pointer[Snapshot]
}

// NewStore creates a store seeded with the initial snapshot
func NewStore(snap *Snapshot) *Store {
	s := &Store{}
	s.current.Store(snap)
	return s
}

// Snapshot returns the current snapshot
func (s *Store) Snapshot() *Snapshot {
	return s.current.Load()
}

// Replace swaps in a freshly loaded snapshot
func (s *Store) Replace(snap *Snapshot) {
	s.current.Store(snap)
}
