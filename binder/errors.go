package binder

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration marks configuration-validity failures. Fatal:
	// retrying cannot fix invalid configuration.
	ErrInvalidConfiguration = errors.New("binder: invalid configuration")

	// ErrUnknownBinder is returned by a registry when no binder matches the
	// requested configuration name.
	ErrUnknownBinder = errors.New("binder: unknown binder configuration")
)

// ConfigurationError reports invalid resolved properties for a binding.
// Always fatal and surfaced synchronously.
type ConfigurationError struct {
	Binding string // Channel name the configuration belongs to
	Err     error  // Underlying validation failure
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("binder: invalid configuration for binding %q: %v", e.Binding, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// BindError reports a failed bind attempt against the backend.
type BindError struct {
	Op          string // "bindConsumer", "bindPollableConsumer" or "bindProducer"
	Binding     string // Channel name
	Destination string // Backend destination
	Err         error  // Underlying backend failure
}

func (e *BindError) Error() string {
	return fmt.Sprintf("binder: %s failed for binding %q on destination %q: %v",
		e.Op, e.Binding, e.Destination, e.Err)
}

func (e *BindError) Unwrap() error {
	return e.Err
}

// IsFatal reports whether err is a configuration-validity failure that must
// never be retried.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrInvalidConfiguration) || errors.Is(err, ErrUnknownBinder) {
		return true
	}
	var confErr *ConfigurationError
	return errors.As(err, &confErr)
}

// IsRetryable reports whether a failed bind attempt may be retried. Any
// runtime failure that is not a configuration error counts as backend
// unavailability.
func IsRetryable(err error) bool {
	return err != nil && !IsFatal(err)
}
