package httpapi

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Export outcomes.
const (
	outcomeOK      = "ok"
	outcomeInvalid = "invalid"
	outcomeFailed  = "failed"
)

// Metrics are the export counters served on /metrics.
type Metrics struct {
	exports *prometheus.CounterVec
	slides  prometheus.Histogram
	bytes   prometheus.Histogram
}

// NewMetrics registers the export metrics with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		exports: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "deckc",
				Name:      "exports_total",
				Help:      "Presentation exports by outcome (ok, invalid, failed).",
			},
			[]string{"outcome"},
		),
		slides: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "deckc",
			Name:      "export_slides",
			Help:      "Physical slides per successful export.",
			Buckets:   []float64{1, 2, 5, 10, 20, 50, 100},
		}),
		bytes: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "deckc",
			Name:      "export_bytes",
			Help:      "Size in bytes of each produced package.",
			Buckets:   prometheus.ExponentialBuckets(16*1024, 2, 10),
		}),
	}
}

func (m *Metrics) observe(outcome string, slides, size int) {
	m.exports.WithLabelValues(outcome).Inc()
	if outcome == outcomeOK {
		m.slides.Observe(float64(slides))
		m.bytes.Observe(float64(size))
	}
}
