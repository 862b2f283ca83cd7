package imf

import (
	"context"
	"io"
	"time"

	"go-imf-rate-provider/domain"
	"go-imf-rate-provider/metrics"
)

// instrumentingService decorates an imf.Service with prometheus metrics
type instrumentingService struct {
	next    Service
	metrics *metrics.Metrics
}

// NewInstrumentingService returns a new instrumenting Service
func NewInstrumentingService(m *metrics.Metrics, s Service) Service {
	return &instrumentingService{
		next:    s,
		metrics: m,
	}
}

func (s *instrumentingService) OnNewData(r io.Reader) error {
	begin := time.Now()
	err := s.next.OnNewData(r)
	s.metrics.ReloadDuration.Observe(time.Since(begin).Seconds())
	if err != nil {
		s.metrics.ReloadsTotal.WithLabelValues(metrics.ResultError).Inc()
		return err
	}

	s.metrics.ReloadsTotal.WithLabelValues(metrics.ResultOK).Inc()
	stats := s.next.Status().Stats
	s.metrics.LinesSkippedTotal.Add(float64(stats.SkippedLines))
	s.metrics.ValuesSkippedTotal.Add(float64(stats.SkippedValues))
	s.metrics.RecordsStored.WithLabelValues(metrics.DirectionCurrencyToPivot).Set(float64(stats.CurrencyToPivot))
	s.metrics.RecordsStored.WithLabelValues(metrics.DirectionPivotToCurrency).Set(float64(stats.PivotToCurrency))
	return nil
}

func (s *instrumentingService) GetRate(ctx context.Context, q domain.Query) (domain.Rate, bool) {
	rate, ok := s.next.GetRate(ctx, q)
	outcome := metrics.OutcomeDirect
	switch {
	case !ok:
		outcome = metrics.OutcomeAbsent
	case q.Base == q.Term:
		outcome = metrics.OutcomeIdentity
	case rate.Chained():
		outcome = metrics.OutcomeChained
	}
	s.metrics.LookupsTotal.WithLabelValues(outcome).Inc()
	return rate, ok
}

func (s *instrumentingService) Currencies() []domain.Currency {
	return s.next.Currencies()
}

func (s *instrumentingService) Status() Status {
	return s.next.Status()
}
