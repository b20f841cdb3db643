package binder

import (
	"github.com/streambind/streambind-go/config"
)

// PropertiesProvider bundles a binder's default consumer and producer
// extensions. The binding layer binds the whole provider at the binder's
// defaults root, then merges the direction-specific extension into a
// channel's extended properties.
type PropertiesProvider interface {
	// ConsumerExtension returns a pointer to the default consumer
	// extension, or nil when the binder has none.
	ConsumerExtension() any

	// ProducerExtension returns a pointer to the default producer
	// extension, or nil when the binder has none.
	ProducerExtension() any
}

// ExtendedPropertiesBinder is implemented by binders that layer
// binder-specific properties on top of the generic consumer/producer
// properties.
type ExtendedPropertiesBinder interface {
	Binder

	// ExtendedConsumerProperties returns the resolved consumer extension
	// for the named channel.
	ExtendedConsumerProperties(channelName string) any

	// ExtendedProducerProperties returns the resolved producer extension
	// for the named channel.
	ExtendedProducerProperties(channelName string) any

	// DefaultsRoot is the configuration root of the binder's own default
	// properties. An empty path disables defaults merging.
	DefaultsRoot() config.PropertyPath

	// NewPropertiesProvider returns a fresh provider to bind defaults into.
	NewPropertiesProvider() PropertiesProvider
}
