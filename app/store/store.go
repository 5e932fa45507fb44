package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"thesis-progress-dashboard/app/engine"
	"thesis-progress-dashboard/app/models"
)

// Snapshot is one immutable load of the dataset together with its cached
// aggregation. The ID doubles as the cache key: a new load means a new
// snapshot, never an in-place update.
type Snapshot struct {
	ID       uuid.UUID
	LoadedAt time.Time
	Records  []models.StudentRecord
	Stats    *engine.Aggregation
}

// Store holds the current snapshot. Reads keep working against the old
// snapshot while a replacement is being built.
type Store struct {
	mu   sync.RWMutex
	snap *Snapshot
}

// New returns a store with an empty snapshot, so views stay consistent
// before the first successful load.
func New() *Store {
	return &Store{snap: newSnapshot(nil)}
}

func newSnapshot(records []models.StudentRecord) *Snapshot {
	return &Snapshot{
		ID:       uuid.New(),
		LoadedAt: time.Now(),
		Records:  records,
		Stats:    engine.Aggregate(records),
	}
}

// Replace builds a snapshot from freshly loaded records and swaps it in.
func (s *Store) Replace(records []models.StudentRecord) *Snapshot {
	snap := newSnapshot(records)
	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
	return snap
}

// Snapshot returns the current snapshot.
func (s *Store) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}
