package binding

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streambind/streambind-go/config"
)

func TestServicePropertiesConsumer(t *testing.T) {
	t.Run("defaults apply when nothing is configured", func(t *testing.T) {
		props := NewServiceProperties(config.NewMapSource(nil))

		cp, err := props.ConsumerProperties("input1")

		require.NoError(t, err)
		assert.Equal(t, 1, cp.Concurrency)
		assert.Equal(t, 3, cp.MaxAttempts)
		assert.False(t, cp.Multiplex)
	})

	t.Run("channel-specific values override", func(t *testing.T) {
		props := NewServiceProperties(config.NewMapSource(map[string]string{
			"streambind.bindings.input1.consumer.concurrency": "4",
			"streambind.bindings.input1.consumer.multiplex":   "true",
		}))

		cp, err := props.ConsumerProperties("input1")

		require.NoError(t, err)
		assert.Equal(t, 4, cp.Concurrency)
		assert.True(t, cp.Multiplex)
	})

	t.Run("unset values fall back to the shared default root", func(t *testing.T) {
		props := NewServiceProperties(config.NewMapSource(map[string]string{
			"streambind.bindings.input1.consumer.concurrency": "4",
			"streambind.default.consumer.maxattempts":         "7",
		}))

		cp, err := props.ConsumerProperties("input1")

		require.NoError(t, err)
		assert.Equal(t, 4, cp.Concurrency)
		assert.Equal(t, 7, cp.MaxAttempts)
	})

	t.Run("channel-specific value wins over the shared default", func(t *testing.T) {
		props := NewServiceProperties(config.NewMapSource(map[string]string{
			"streambind.bindings.input1.consumer.concurrency": "4",
			"streambind.default.consumer.concurrency":         "9",
		}))

		cp, err := props.ConsumerProperties("input1")

		require.NoError(t, err)
		assert.Equal(t, 4, cp.Concurrency)
	})

	t.Run("invalid values surface as configuration errors", func(t *testing.T) {
		props := NewServiceProperties(config.NewMapSource(map[string]string{
			"streambind.bindings.input1.consumer.concurrency": "many",
		}))

		_, err := props.ConsumerProperties("input1")

		assert.Error(t, err)
	})

	t.Run("custom roots", func(t *testing.T) {
		props := NewServiceProperties(config.NewMapSource(map[string]string{
			"app.channels.input1.consumer.concurrency": "4",
			"app.shared.consumer.maxattempts":          "7",
		}),
			WithBindingsRoot("app.channels"),
			WithDefaultsRoot("app.shared"),
		)

		cp, err := props.ConsumerProperties("input1")

		require.NoError(t, err)
		assert.Equal(t, 4, cp.Concurrency)
		assert.Equal(t, 7, cp.MaxAttempts)
	})
}

func TestServicePropertiesProducer(t *testing.T) {
	props := NewServiceProperties(config.NewMapSource(map[string]string{
		"streambind.bindings.output.producer.partitioncount": "8",
		"streambind.default.producer.requiredgroups":         "audit,billing",
	}))

	pp, err := props.ProducerProperties("output")

	require.NoError(t, err)
	assert.Equal(t, 8, pp.PartitionCount)
	assert.Equal(t, []string{"audit", "billing"}, pp.RequiredGroups)
}

func TestDestinationGroupAndBinder(t *testing.T) {
	t.Run("destination defaults to the channel name", func(t *testing.T) {
		props := NewServiceProperties(config.NewMapSource(nil))
		assert.Equal(t, "input1", props.Destination("input1"))
	})

	t.Run("configured destination wins", func(t *testing.T) {
		props := NewServiceProperties(config.NewMapSource(map[string]string{
			"streambind.bindings.input1.destination": "orders,returns",
		}))
		assert.Equal(t, "orders,returns", props.Destination("input1"))
	})

	t.Run("group defaults to anonymous", func(t *testing.T) {
		props := NewServiceProperties(config.NewMapSource(nil))
		assert.Equal(t, "", props.Group("input1"))
	})

	t.Run("group resolves per channel", func(t *testing.T) {
		props := NewServiceProperties(config.NewMapSource(map[string]string{
			"streambind.bindings.input1.group": "billing",
		}))
		assert.Equal(t, "billing", props.Group("input1"))
	})

	t.Run("binder name falls back to the global default binder", func(t *testing.T) {
		props := NewServiceProperties(config.NewMapSource(map[string]string{
			"streambind.defaultbinder":          "rabbit",
			"streambind.bindings.input2.binder": "kafka",
		}))

		assert.Equal(t, "rabbit", props.BinderName("input1"))
		assert.Equal(t, "kafka", props.BinderName("input2"))
	})
}

func TestRetryInterval(t *testing.T) {
	t.Run("defaults to 30 seconds", func(t *testing.T) {
		props := NewServiceProperties(config.NewMapSource(nil))
		assert.Equal(t, 30*time.Second, props.RetryInterval())
	})

	t.Run("bare numbers are seconds", func(t *testing.T) {
		props := NewServiceProperties(config.NewMapSource(map[string]string{
			"streambind.bindingretryinterval": "5",
		}))
		assert.Equal(t, 5*time.Second, props.RetryInterval())
	})

	t.Run("duration strings are accepted", func(t *testing.T) {
		props := NewServiceProperties(config.NewMapSource(map[string]string{
			"streambind.binding-retry-interval": "250ms",
		}))
		assert.Equal(t, 250*time.Millisecond, props.RetryInterval())
	})

	t.Run("option overrides configuration", func(t *testing.T) {
		props := NewServiceProperties(config.NewMapSource(map[string]string{
			"streambind.bindingretryinterval": "5",
		}), WithRetryInterval(time.Second))
		assert.Equal(t, time.Second, props.RetryInterval())
	})
}
