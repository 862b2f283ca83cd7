// Package metrics holds the prometheus collectors of the rate provider.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ResultOK    = "ok"
	ResultError = "error"

	DirectionCurrencyToPivot = "currency_to_sdr"
	DirectionPivotToCurrency = "sdr_to_currency"

	OutcomeDirect   = "direct"
	OutcomeChained  = "chained"
	OutcomeIdentity = "identity"
	OutcomeAbsent   = "absent"
)

// Metrics collectors for feed reloads and rate lookups
type Metrics struct {
	// Reloads by result
	ReloadsTotal   *prometheus.CounterVec
	ReloadDuration prometheus.Histogram

	// Feed quality
	LinesSkippedTotal  prometheus.Counter
	ValuesSkippedTotal prometheus.Counter
	RecordsStored      *prometheus.GaugeVec

	// Lookups by outcome
	LookupsTotal *prometheus.CounterVec
}

// New creates the collectors and registers them with reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ReloadsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "imf_reloads_total",
				Help: "Feed reloads by result",
			},
			[]string{"result"},
		),
		ReloadDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "imf_reload_duration_seconds",
				Help:    "Time spent parsing and publishing a feed",
				Buckets: prometheus.DefBuckets,
			},
		),
		LinesSkippedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "imf_lines_skipped_total",
				Help: "Feed lines skipped because the currency name is unknown",
			},
		),
		ValuesSkippedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "imf_values_skipped_total",
				Help: "Feed values skipped because they are malformed, zero or in the future",
			},
		),
		RecordsStored: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "imf_records_stored",
				Help: "Dated rates held by the current snapshot",
			},
			[]string{"direction"},
		),
		LookupsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "imf_lookups_total",
				Help: "Rate lookups by outcome",
			},
			[]string{"outcome"},
		),
	}
}
