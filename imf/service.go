// Package imf provides exchange rates from the IMF SDR rate feed.
// The feed quotes every currency against the SDR, so most rates between two other currencies are chained
// through it.
package imf

import (
	"context"
	"fmt"
	"io"
	"slices"
	"sync"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"go-imf-rate-provider/alias"
	"go-imf-rate-provider/domain"
)

// Service answers point-in-time rate queries from the latest loaded feed
type Service interface {
	// OnNewData replaces all rates with the ones read from r. On error the previous rates stay in effect.
	OnNewData(r io.Reader) error

	// GetRate looks up the rate for a query. false means no rate is available.
	GetRate(ctx context.Context, q domain.Query) (domain.Rate, bool)

	// Currencies lists every currency with at least one rate, sorted
	Currencies() []domain.Currency

	Status() Status
}

// Status describes the last successful reload. LoadedAt is zero until the first one.
type Status struct {
	LoadedAt time.Time
	Stats    domain.ReloadStats
}

func (s Status) Loaded() bool {
	return !s.LoadedAt.IsZero()
}

type service struct {
	parser *Parser
	store  *store

	// reload serializes OnNewData, queries never take it
	reload sync.Mutex

	now    func() time.Time
	logger log.Logger
}

// NewService constructs an empty Service. It has no rates until OnNewData is called.
func NewService(aliases *alias.Table, logger log.Logger) Service {
	return newService(aliases, logger, time.Now)
}

func newService(aliases *alias.Table, logger log.Logger, now func() time.Time) *service {
	return &service{
		parser: NewParser(aliases, logger, now),
		store:  newStore(),
		now:    now,
		logger: logger,
	}
}

func (s *service) OnNewData(r io.Reader) error {
	s.reload.Lock()
	defer s.reload.Unlock()

	tables, stats, err := s.parser.Parse(r)
	if err != nil {
		return fmt.Errorf("loading rates: %w", err)
	}
	s.store.replace(&snapshot{
		tables:   tables,
		stats:    stats,
		loadedAt: s.now(),
	})

	level.Info(s.logger).Log(
		"msg", "rates loaded",
		"lines", stats.Lines,
		"currency_to_sdr", stats.CurrencyToPivot,
		"sdr_to_currency", stats.PivotToCurrency,
		"skipped_lines", stats.SkippedLines,
		"skipped_values", stats.SkippedValues,
	)
	return nil
}

func (s *service) GetRate(_ context.Context, q domain.Query) (domain.Rate, bool) {
	now := s.now()
	snap := s.store.load()
	return resolve(snap.tables, q.Base, q.Term, q.Date(now), now)
}

func (s *service) Currencies() []domain.Currency {
	snap := s.store.load()
	seen := map[domain.Currency]struct{}{}
	for c := range snap.tables.CurrencyToPivot {
		seen[c] = struct{}{}
	}
	for c := range snap.tables.PivotToCurrency {
		seen[c] = struct{}{}
	}
	if len(seen) > 0 {
		seen[domain.Pivot] = struct{}{}
	}

	currencies := make([]domain.Currency, 0, len(seen))
	for c := range seen {
		currencies = append(currencies, c)
	}
	slices.Sort(currencies)
	return currencies
}

func (s *service) Status() Status {
	snap := s.store.load()
	return Status{
		LoadedAt: snap.loadedAt,
		Stats:    snap.stats,
	}
}
