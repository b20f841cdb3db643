package binder

import (
	"fmt"
	"time"
)

// ConsumerProperties are the generic consumer-side binding properties.
// Extension carries binder-specific properties when the binder supports
// them, nil otherwise.
type ConsumerProperties struct {
	// Concurrency is the number of concurrent deliveries per binding.
	Concurrency int

	// InstanceCount and InstanceIndex describe the consumer's position in a
	// partitioned group. -1 means "not set".
	InstanceCount int
	InstanceIndex int

	// Multiplex binds a comma-delimited destination list as a single
	// backend subscription instead of one binding per destination.
	Multiplex bool

	// MaxAttempts and the backoff triple govern redelivery of failed
	// messages by the binder.
	MaxAttempts            int
	BackOffInitialInterval time.Duration
	BackOffMaxInterval     time.Duration
	BackOffMultiplier      float64

	Extension any
}

// NewConsumerProperties returns consumer properties with defaults applied.
func NewConsumerProperties() *ConsumerProperties {
	return &ConsumerProperties{
		Concurrency:            1,
		InstanceCount:          -1,
		InstanceIndex:          -1,
		MaxAttempts:            3,
		BackOffInitialInterval: time.Second,
		BackOffMaxInterval:     10 * time.Second,
		BackOffMultiplier:      2.0,
	}
}

// Validate checks declared constraints. A failure is a configuration error:
// fatal, never retried.
func (p *ConsumerProperties) Validate() error {
	if p.Concurrency < 1 {
		return fmt.Errorf("%w: concurrency must be at least 1, got %d", ErrInvalidConfiguration, p.Concurrency)
	}
	if p.InstanceCount < -1 {
		return fmt.Errorf("%w: instance count must be >= -1, got %d", ErrInvalidConfiguration, p.InstanceCount)
	}
	if p.InstanceIndex < -1 {
		return fmt.Errorf("%w: instance index must be >= -1, got %d", ErrInvalidConfiguration, p.InstanceIndex)
	}
	if p.MaxAttempts < 1 {
		return fmt.Errorf("%w: max attempts must be at least 1, got %d", ErrInvalidConfiguration, p.MaxAttempts)
	}
	if p.BackOffMultiplier < 1.0 {
		return fmt.Errorf("%w: backoff multiplier must be at least 1.0, got %v", ErrInvalidConfiguration, p.BackOffMultiplier)
	}
	return nil
}

// ProducerProperties are the generic producer-side binding properties.
type ProducerProperties struct {
	// PartitionCount is the number of partitions of the target.
	PartitionCount int

	// RequiredGroups are consumer groups the binder must provision
	// destinations for, even before any consumer binds.
	RequiredGroups []string

	// ErrorChannelEnabled routes send failures to an error channel.
	ErrorChannelEnabled bool

	Extension any
}

// NewProducerProperties returns producer properties with defaults applied.
func NewProducerProperties() *ProducerProperties {
	return &ProducerProperties{
		PartitionCount: 1,
	}
}

// Validate checks declared constraints.
func (p *ProducerProperties) Validate() error {
	if p.PartitionCount < 1 {
		return fmt.Errorf("%w: partition count must be at least 1, got %d", ErrInvalidConfiguration, p.PartitionCount)
	}
	return nil
}
