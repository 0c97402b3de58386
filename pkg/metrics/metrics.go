// Package metrics exposes Prometheus metrics for the scan and purchase flows.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Scan outcomes.
const (
	OutcomeSuccess     = "success"
	OutcomeInvalid     = "invalid"
	OutcomeInference   = "inference_error"
	OutcomeParse       = "parse_error"
	OutcomePersistence = "persistence_error"
)

// Metrics is safe to use through a nil pointer; every method is then a no-op.
type Metrics struct {
	registry *prometheus.Registry

	scansTotal        *prometheus.CounterVec
	inferenceDuration *prometheus.HistogramVec
	kbLookupsTotal    *prometheus.CounterVec
	purchasesTotal    prometheus.Counter
}

// New creates a registry holding the app metrics plus the Go and process
// collectors.
func New() (*Metrics, error) {
	reg := prometheus.NewRegistry()
	m := &Metrics{registry: reg}
	m.initMetrics()
	if err := reg.Register(m); err != nil {
		return nil, err
	}
	if err := reg.Register(collectors.NewGoCollector()); err != nil {
		return nil, err
	}
	if err := reg.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Metrics) initMetrics() {
	m.scansTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agrow_scans_total",
			Help: "Scan requests by outcome",
		},
		[]string{"outcome"},
	)
	m.inferenceDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "agrow_inference_duration_seconds",
			Help:    "Time spent in one vision inference call",
			Buckets: prometheus.ExponentialBuckets(0.25, 2, 9),
		},
		[]string{"status"},
	)
	m.kbLookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agrow_kb_lookups_total",
			Help: "Knowledge base lookups during reconciliation",
		},
		[]string{"result"}, // match, miss
	)
	m.purchasesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "agrow_purchases_total",
		Help: "Purchases created",
	})
}

func (m *Metrics) Describe(ch chan<- *prometheus.Desc) {
	m.scansTotal.Describe(ch)
	m.inferenceDuration.Describe(ch)
	m.kbLookupsTotal.Describe(ch)
	m.purchasesTotal.Describe(ch)
}

func (m *Metrics) Collect(ch chan<- prometheus.Metric) {
	m.scansTotal.Collect(ch)
	m.inferenceDuration.Collect(ch)
	m.kbLookupsTotal.Collect(ch)
	m.purchasesTotal.Collect(ch)
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) RecordScan(outcome string) {
	if m == nil {
		return
	}
	m.scansTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveInference(d time.Duration, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.inferenceDuration.WithLabelValues(status).Observe(d.Seconds())
}

func (m *Metrics) RecordKBLookup(matched bool) {
	if m == nil {
		return
	}
	result := "miss"
	if matched {
		result = "match"
	}
	m.kbLookupsTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) RecordPurchase() {
	if m == nil {
		return
	}
	m.purchasesTotal.Inc()
}
