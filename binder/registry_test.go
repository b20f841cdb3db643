package binder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopBinder struct{ name string }

func (b *nopBinder) BindConsumer(destination, group string, input any, properties *ConsumerProperties) (Binding, error) {
	return nil, nil
}

func (b *nopBinder) BindProducer(destination string, output any, properties *ProducerProperties) (Binding, error) {
	return nil, nil
}

func TestSimpleRegistry(t *testing.T) {
	t.Run("resolves by name", func(t *testing.T) {
		r := NewSimpleRegistry()
		rabbit := &nopBinder{name: "rabbit"}
		kafka := &nopBinder{name: "kafka"}
		r.Register("rabbit", rabbit)
		r.Register("kafka", kafka)

		b, err := r.Get("kafka", nil)

		require.NoError(t, err)
		assert.Same(t, kafka, b)
	})

	t.Run("first registered binder is the default", func(t *testing.T) {
		r := NewSimpleRegistry()
		rabbit := &nopBinder{name: "rabbit"}
		r.Register("rabbit", rabbit)
		r.Register("kafka", &nopBinder{name: "kafka"})

		b, err := r.Get("", nil)

		require.NoError(t, err)
		assert.Same(t, rabbit, b)
	})

	t.Run("SetDefault overrides the default", func(t *testing.T) {
		r := NewSimpleRegistry()
		kafka := &nopBinder{name: "kafka"}
		r.Register("rabbit", &nopBinder{name: "rabbit"})
		r.Register("kafka", kafka)
		r.SetDefault("kafka")

		b, err := r.Get("", nil)

		require.NoError(t, err)
		assert.Same(t, kafka, b)
	})

	t.Run("unknown name", func(t *testing.T) {
		r := NewSimpleRegistry()

		_, err := r.Get("missing", nil)

		assert.ErrorIs(t, err, ErrUnknownBinder)
	})
}
