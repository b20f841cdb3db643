package metric

// Collector records binding lifecycle metrics.
type Collector interface {
	// RecordBindAttempt records one bind attempt and its outcome.
	RecordBindAttempt(binding, destination string, success bool)

	// RecordBindRetry records a scheduled retry of a failed bind.
	RecordBindRetry(binding, destination string)

	// RecordUnbind records an unbind of a recorded binding.
	RecordUnbind(binding string)

	// RecordActiveBindings adjusts the active-binding gauge.
	RecordActiveBindings(delta int)
}

// NoOpCollector is a no-op implementation of Collector.
type NoOpCollector struct{}

// RecordBindAttempt does nothing.
func (NoOpCollector) RecordBindAttempt(binding, destination string, success bool) {}

// RecordBindRetry does nothing.
func (NoOpCollector) RecordBindRetry(binding, destination string) {}

// RecordUnbind does nothing.
func (NoOpCollector) RecordUnbind(binding string) {}

// RecordActiveBindings does nothing.
func (NoOpCollector) RecordActiveBindings(delta int) {}
