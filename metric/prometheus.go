package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusCollector implements Collector on Prometheus primitives.
type PrometheusCollector struct {
	BindAttempts   *prometheus.CounterVec
	BindRetries    *prometheus.CounterVec
	Unbinds        *prometheus.CounterVec
	ActiveBindings prometheus.Gauge
}

// NewPrometheusCollector creates the binding metrics. The caller registers
// them with a registry via Register.
func NewPrometheusCollector() *PrometheusCollector {
	return &PrometheusCollector{
		BindAttempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "streambind",
				Subsystem: "bindings",
				Name:      "attempts_total",
				Help:      "Total number of bind attempts",
			},
			[]string{"binding", "destination", "outcome"},
		),

		BindRetries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "streambind",
				Subsystem: "bindings",
				Name:      "retries_total",
				Help:      "Total number of scheduled bind retries",
			},
			[]string{"binding", "destination"},
		),

		Unbinds: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "streambind",
				Subsystem: "bindings",
				Name:      "unbinds_total",
				Help:      "Total number of unbound bindings",
			},
			[]string{"binding"},
		),

		ActiveBindings: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "streambind",
				Subsystem: "bindings",
				Name:      "active",
				Help:      "Number of currently recorded bindings",
			},
		),
	}
}

// Register registers all collectors with reg.
func (c *PrometheusCollector) Register(reg prometheus.Registerer) error {
	for _, col := range []prometheus.Collector{
		c.BindAttempts, c.BindRetries, c.Unbinds, c.ActiveBindings,
	} {
		if err := reg.Register(col); err != nil {
			return err
		}
	}
	return nil
}

// RecordBindAttempt implements Collector.
func (c *PrometheusCollector) RecordBindAttempt(binding, destination string, success bool) {
	outcome := "failure"
	if success {
		outcome = "success"
	}
	c.BindAttempts.WithLabelValues(binding, destination, outcome).Inc()
}

// RecordBindRetry implements Collector.
func (c *PrometheusCollector) RecordBindRetry(binding, destination string) {
	c.BindRetries.WithLabelValues(binding, destination).Inc()
}

// RecordUnbind implements Collector.
func (c *PrometheusCollector) RecordUnbind(binding string) {
	c.Unbinds.WithLabelValues(binding).Inc()
}

// RecordActiveBindings implements Collector.
func (c *PrometheusCollector) RecordActiveBindings(delta int) {
	c.ActiveBindings.Add(float64(delta))
}
