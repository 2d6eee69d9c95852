// SPDX-License-Identifier: MIT

package cache

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors of the result cache and of the
// engine stages that fill it. A nil *Metrics is valid and records nothing.
type Metrics struct {
	Hits          *prometheus.CounterVec
	Misses        *prometheus.CounterVec
	Invalidations prometheus.Counter
	Compute       *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on reg when reg is non-nil.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Hits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "surveyspace_cache_hits_total",
				Help: "Total number of cluster cache hits by kind",
			},
			[]string{"kind"},
		),
		Misses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "surveyspace_cache_misses_total",
				Help: "Total number of cluster cache misses by kind",
			},
			[]string{"kind"},
		),
		Invalidations: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "surveyspace_cache_invalidations_total",
				Help: "Total number of cache entries dropped by Invalidate",
			},
		),
		Compute: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "surveyspace_compute_seconds",
				Help:    "Duration of each engine stage in seconds",
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
			},
			[]string{"stage"},
		),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.Hits, m.Misses, m.Invalidations, m.Compute} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Metrics) hit(kind string) {
	if m != nil {
		m.Hits.WithLabelValues(kind).Inc()
	}
}

func (m *Metrics) miss(kind string) {
	if m != nil {
		m.Misses.WithLabelValues(kind).Inc()
	}
}

func (m *Metrics) invalidated(n int) {
	if m != nil && n > 0 {
		m.Invalidations.Add(float64(n))
	}
}

// ObserveCompute records the duration of an engine stage.
func (m *Metrics) ObserveCompute(stage string, d time.Duration) {
	if m != nil {
		m.Compute.WithLabelValues(stage).Observe(d.Seconds())
	}
}
