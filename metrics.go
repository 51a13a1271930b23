package ieee754

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts conversions. A nil *Metrics records nothing.
type Metrics struct {
	Encodes         *prometheus.CounterVec
	Decodes         *prometheus.CounterVec
	Errors          *prometheus.CounterVec
	UnableToScale   prometheus.Counter
	ScaleIterations prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg. A nil reg
// leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		Encodes: f.NewCounterVec(prometheus.CounterOpts{
			Name: "ieee754_encodes_total",
			Help: "Total number of successful encodes by class",
		}, []string{"class"}),

		Decodes: f.NewCounterVec(prometheus.CounterOpts{
			Name: "ieee754_decodes_total",
			Help: "Total number of successful decodes by class",
		}, []string{"class"}),

		Errors: f.NewCounterVec(prometheus.CounterOpts{
			Name: "ieee754_errors_total",
			Help: "Total number of failed conversions by kind",
		}, []string{"kind"}),

		UnableToScale: f.NewCounter(prometheus.CounterOpts{
			Name: "ieee754_unable_to_scale_total",
			Help: "Total number of values truncated by the scaler",
		}),

		ScaleIterations: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "ieee754_scale_iterations",
			Help:    "Number of doublings needed to scale a value",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),
	}
}

func (m *Metrics) encoded(r *Result) {
	if m == nil {
		return
	}

	m.Encodes.WithLabelValues(r.Class().String()).Inc()

	if r.scaled != nil {
		m.ScaleIterations.Observe(float64(r.scaled.Scale))

		if r.scaled.Unable {
			m.UnableToScale.Inc()
		}
	}
}

func (m *Metrics) decoded(d *Decoded) {
	if m == nil {
		return
	}

	m.Decodes.WithLabelValues(d.Class.String()).Inc()
}

func (m *Metrics) failed(err error) {
	if m == nil {
		return
	}

	m.Errors.WithLabelValues(Kind(err)).Inc()
}
