package life

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are the runner's prometheus collectors.
type Metrics struct {
	generations prometheus.Counter
	population  prometheus.Gauge
	stepSeconds prometheus.Histogram
	inputs      *prometheus.CounterVec
	dropped     prometheus.Counter
	backups     prometheus.Gauge
	rate        prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		generations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "life",
			Name:      "generations_total",
			Help:      "Generations computed.",
		}),
		population: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "life",
			Name:      "population",
			Help:      "Live cells after the last generation.",
		}),
		stepSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "life",
			Name:      "step_seconds",
			Help:      "Time to compute one generation.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}),
		inputs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "life",
			Name:      "inputs_total",
			Help:      "Inputs handled, by kind.",
		}, []string{"kind"}),
		dropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "life",
			Name:      "inputs_dropped_total",
			Help:      "Inputs discarded because the backlog or mailbox was full.",
		}),
		backups: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "life",
			Name:      "backups",
			Help:      "Stored world backups.",
		}),
		rate: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "life",
			Name:      "rate",
			Help:      "Target generations per second.",
		}),
	}

	var errs []error
	for _, c := range []prometheus.Collector{
		m.generations, m.population, m.stepSeconds, m.inputs, m.dropped, m.backups, m.rate,
	} {
		errs = append(errs, reg.Register(c))
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return m, nil
}
