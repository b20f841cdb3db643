package metric

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusCollector(t *testing.T) {
	c := NewPrometheusCollector()
	require.NoError(t, c.Register(prometheus.NewRegistry()))

	c.RecordBindAttempt("input1", "orders", true)
	c.RecordBindAttempt("input1", "orders", false)
	c.RecordBindRetry("input1", "orders")
	c.RecordUnbind("input1")
	c.RecordActiveBindings(2)
	c.RecordActiveBindings(-1)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.BindAttempts.WithLabelValues("input1", "orders", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.BindAttempts.WithLabelValues("input1", "orders", "failure")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.BindRetries.WithLabelValues("input1", "orders")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Unbinds.WithLabelValues("input1")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.ActiveBindings))
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NoError(t, NewPrometheusCollector().Register(reg))
	assert.Error(t, NewPrometheusCollector().Register(reg))
}

func TestNoOpCollector(t *testing.T) {
	var c NoOpCollector
	assert.NotPanics(t, func() {
		c.RecordBindAttempt("input1", "orders", true)
		c.RecordBindRetry("input1", "orders")
		c.RecordUnbind("input1")
		c.RecordActiveBindings(1)
	})
}
