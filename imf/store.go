package imf

import (
	"sync/atomic"
	"time"

	"go-imf-rate-provider/domain"
)

// snapshot one published feed. Never mutated after it is stored.
type snapshot struct {
	tables   Tables
	stats    domain.ReloadStats
	loadedAt time.Time
}

// store holds the current snapshot. Readers load it once per query, so a query sees either the old or
// the new tables in full.
type store struct {
	current atomic.Pointer[snapshot]
}

func newStore() *store {
	s := &store{}
	s.current.Store(&snapshot{tables: emptyTables()})
	return s
}

func (s *store) load() *snapshot {
	return s.current.Load()
}

func (s *store) replace(snap *snapshot) {
	s.current.Store(snap)
}
