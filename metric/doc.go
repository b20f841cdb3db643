// Package metric collects binding lifecycle metrics. The binding layer
// records through the Collector capability; NoOpCollector is the default
// and PrometheusCollector exposes counters and a gauge under the
// "streambind" namespace.
package metric
