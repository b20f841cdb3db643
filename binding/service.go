package binding

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/streambind/streambind-go/binder"
	"github.com/streambind/streambind-go/metric"
)

// BindingService binds named channels to a backend by delegating to a
// binder from the registry. It owns the table of live bindings and, when a
// scheduler is configured, defers failed binds into a retry loop instead of
// failing application startup.
type BindingService struct {
	props     *ServiceProperties
	registry  binder.Registry
	scheduler TaskScheduler
	logger    *slog.Logger
	metrics   metric.Collector

	mu               sync.Mutex
	consumerBindings map[string][]binder.Binding
	producerBindings map[string]binder.Binding
}

// ServiceOption configures the BindingService.
type ServiceOption func(*BindingService)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ServiceOption {
	return func(s *BindingService) {
		s.logger = logger
	}
}

// WithScheduler enables deferred binding. Without a scheduler, bind
// failures propagate synchronously regardless of the retry interval.
func WithScheduler(scheduler TaskScheduler) ServiceOption {
	return func(s *BindingService) {
		s.scheduler = scheduler
	}
}

// WithMetrics sets the metrics collector.
func WithMetrics(collector metric.Collector) ServiceOption {
	return func(s *BindingService) {
		s.metrics = collector
	}
}

// NewBindingService creates a binding service.
func NewBindingService(props *ServiceProperties, registry binder.Registry, options ...ServiceOption) *BindingService {
	s := &BindingService{
		props:            props,
		registry:         registry,
		logger:           slog.Default(),
		metrics:          metric.NoOpCollector{},
		consumerBindings: make(map[string][]binder.Binding),
		producerBindings: make(map[string]binder.Binding),
	}

	for _, opt := range options {
		opt(s)
	}

	return s
}

// BindConsumer binds the named input channel. The destination may be a
// comma-delimited list: with Multiplex set the whole list is bound as one
// backend subscription, otherwise each destination is bound separately,
// using the pollable bind when the input declares that capability. The
// resulting bindings replace any prior entry for the name.
func (s *BindingService) BindConsumer(input any, name string) ([]binder.Binding, error) {
	b, err := s.registry.Get(s.props.BinderName(name), input)
	if err != nil {
		return nil, err
	}

	props, err := s.props.ConsumerProperties(name)
	if err != nil {
		return nil, err
	}

	if epb, ok := b.(binder.ExtendedPropertiesBinder); ok {
		props.Extension = epb.ExtendedConsumerProperties(name)
		if err := mergeExtendedDefaults(s.props.Source(), epb, props.Extension, false, name); err != nil {
			return nil, &binder.ConfigurationError{Binding: name, Err: err}
		}
	}

	if err := props.Validate(); err != nil {
		return nil, &binder.ConfigurationError{Binding: name, Err: err}
	}

	group := s.props.Group(name)
	destination := s.props.Destination(name)

	var bindings []binder.Binding
	if props.Multiplex {
		bnd, err := s.doBindConsumer(input, name, b, props, destination, group)
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, bnd)
	} else {
		for _, target := range splitDestinations(destination) {
			var bnd binder.Binding
			if source, ok := input.(binder.PollableSource); ok {
				bnd, err = s.doBindPollableConsumer(source, name, b, props, target, group)
			} else {
				bnd, err = s.doBindConsumer(input, name, b, props, target, group)
			}
			if err != nil {
				return nil, err
			}
			bindings = append(bindings, bnd)
		}
	}

	s.mu.Lock()
	previous := len(s.consumerBindings[name])
	recorded := make([]binder.Binding, len(bindings))
	copy(recorded, bindings)
	s.consumerBindings[name] = recorded
	s.mu.Unlock()
	s.metrics.RecordActiveBindings(len(bindings) - previous)

	out := make([]binder.Binding, len(bindings))
	copy(out, bindings)
	return out, nil
}

// BindProducer binds the named output channel to its single destination.
// The resulting binding replaces any prior entry for the name.
func (s *BindingService) BindProducer(output any, name string) (binder.Binding, error) {
	destination := s.props.Destination(name)

	b, err := s.registry.Get(s.props.BinderName(name), output)
	if err != nil {
		return nil, err
	}

	props, err := s.props.ProducerProperties(name)
	if err != nil {
		return nil, err
	}

	if epb, ok := b.(binder.ExtendedPropertiesBinder); ok {
		props.Extension = epb.ExtendedProducerProperties(name)
		if err := mergeExtendedDefaults(s.props.Source(), epb, props.Extension, true, name); err != nil {
			return nil, &binder.ConfigurationError{Binding: name, Err: err}
		}
	}

	if err := props.Validate(); err != nil {
		return nil, &binder.ConfigurationError{Binding: name, Err: err}
	}

	bnd, err := s.doBindProducer(output, name, b, props, destination)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	_, replaced := s.producerBindings[name]
	s.producerBindings[name] = bnd
	s.mu.Unlock()
	if !replaced {
		s.metrics.RecordActiveBindings(1)
	}

	return bnd, nil
}

// UnbindConsumers removes and unbinds all recorded consumer bindings for
// the name. An unknown name is a warn-logged no-op.
func (s *BindingService) UnbindConsumers(name string) {
	s.mu.Lock()
	bindings := s.consumerBindings[name]
	delete(s.consumerBindings, name)
	s.mu.Unlock()

	if len(bindings) == 0 {
		s.logger.Warn("trying to unbind, but no binding found", "binding", name)
		return
	}

	for _, bnd := range bindings {
		if err := bnd.Unbind(); err != nil {
			s.logger.Error("failed to unbind consumer", "binding", name, "error", err)
		}
	}
	s.metrics.RecordUnbind(name)
	s.metrics.RecordActiveBindings(-len(bindings))
}

// UnbindProducers removes and unbinds the recorded producer binding for the
// name. An unknown name is a warn-logged no-op.
func (s *BindingService) UnbindProducers(name string) {
	s.mu.Lock()
	bnd, ok := s.producerBindings[name]
	delete(s.producerBindings, name)
	s.mu.Unlock()

	if !ok {
		s.logger.Warn("trying to unbind, but no binding found", "binding", name)
		return
	}

	if err := bnd.Unbind(); err != nil {
		s.logger.Error("failed to unbind producer", "binding", name, "error", err)
	}
	s.metrics.RecordUnbind(name)
	s.metrics.RecordActiveBindings(-1)
}

// ExtendedProducerProperties returns the resolved producer extension for
// the name, or false when the binder does not support extended properties.
func (s *BindingService) ExtendedProducerProperties(output any, name string) (any, bool) {
	b, err := s.registry.Get(s.props.BinderName(name), output)
	if err != nil {
		return nil, false
	}
	if epb, ok := b.(binder.ExtendedPropertiesBinder); ok {
		return epb.ExtendedProducerProperties(name), true
	}
	return nil, false
}

// ConsumerBindings returns the recorded consumer bindings for the name.
func (s *BindingService) ConsumerBindings(name string) []binder.Binding {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]binder.Binding, len(s.consumerBindings[name]))
	copy(out, s.consumerBindings[name])
	return out
}

// ProducerBinding returns the recorded producer binding for the name.
func (s *BindingService) ProducerBinding(name string) (binder.Binding, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	bnd, ok := s.producerBindings[name]
	return bnd, ok
}

// Properties exposes the service's property resolver.
func (s *BindingService) Properties() *ServiceProperties {
	return s.props
}

func (s *BindingService) retryEnabled() bool {
	return s.scheduler != nil && s.props.RetryInterval() > 0
}

func (s *BindingService) doBindConsumer(input any, name string, b binder.Binder, props *binder.ConsumerProperties, target, group string) (binder.Binding, error) {
	bnd, err := b.BindConsumer(target, group, input, props)
	s.metrics.RecordBindAttempt(name, target, err == nil)
	if err == nil {
		return bnd, nil
	}
	if !s.retryEnabled() || binder.IsFatal(err) {
		return nil, s.bindFailure("bindConsumer", name, target, err)
	}

	late := NewLateBinding()
	s.rescheduleConsumerBinding(input, name, b, props, target, group, late, err)
	return late, nil
}

func (s *BindingService) doBindPollableConsumer(source binder.PollableSource, name string, b binder.Binder, props *binder.ConsumerProperties, target, group string) (binder.Binding, error) {
	pcb, ok := b.(binder.PollableConsumerBinder)
	if !ok {
		return nil, &binder.ConfigurationError{
			Binding: name,
			Err:     fmt.Errorf("%w: binder does not support pollable consumers", binder.ErrInvalidConfiguration),
		}
	}

	bnd, err := pcb.BindPollableConsumer(target, group, source, props)
	s.metrics.RecordBindAttempt(name, target, err == nil)
	if err == nil {
		return bnd, nil
	}
	if !s.retryEnabled() || binder.IsFatal(err) {
		return nil, s.bindFailure("bindPollableConsumer", name, target, err)
	}

	late := NewLateBinding()
	s.reschedulePollableConsumerBinding(source, name, pcb, props, target, group, late, err)
	return late, nil
}

func (s *BindingService) doBindProducer(output any, name string, b binder.Binder, props *binder.ProducerProperties, target string) (binder.Binding, error) {
	bnd, err := b.BindProducer(target, output, props)
	s.metrics.RecordBindAttempt(name, target, err == nil)
	if err == nil {
		return bnd, nil
	}
	if !s.retryEnabled() || binder.IsFatal(err) {
		return nil, s.bindFailure("bindProducer", name, target, err)
	}

	late := NewLateBinding()
	s.rescheduleProducerBinding(output, name, b, props, target, late, err)
	return late, nil
}

func (s *BindingService) rescheduleConsumerBinding(input any, name string, b binder.Binder, props *binder.ConsumerProperties, target, group string, late *LateBinding, cause error) {
	s.logRetry("consumer", name, target, late, cause)
	s.scheduler.Schedule(func() {
		bnd, err := b.BindConsumer(target, group, input, props)
		s.metrics.RecordBindAttempt(name, target, err == nil)
		if err != nil {
			if binder.IsFatal(err) {
				s.logGiveUp("consumer", name, target, late, err)
				return
			}
			s.rescheduleConsumerBinding(input, name, b, props, target, group, late, err)
			return
		}
		s.setLateDelegate(name, target, late, bnd)
	}, s.props.RetryInterval())
}

func (s *BindingService) reschedulePollableConsumerBinding(source binder.PollableSource, name string, pcb binder.PollableConsumerBinder, props *binder.ConsumerProperties, target, group string, late *LateBinding, cause error) {
	s.logRetry("consumer", name, target, late, cause)
	s.scheduler.Schedule(func() {
		bnd, err := pcb.BindPollableConsumer(target, group, source, props)
		s.metrics.RecordBindAttempt(name, target, err == nil)
		if err != nil {
			if binder.IsFatal(err) {
				s.logGiveUp("consumer", name, target, late, err)
				return
			}
			s.reschedulePollableConsumerBinding(source, name, pcb, props, target, group, late, err)
			return
		}
		s.setLateDelegate(name, target, late, bnd)
	}, s.props.RetryInterval())
}

func (s *BindingService) rescheduleProducerBinding(output any, name string, b binder.Binder, props *binder.ProducerProperties, target string, late *LateBinding, cause error) {
	s.logRetry("producer", name, target, late, cause)
	s.scheduler.Schedule(func() {
		bnd, err := b.BindProducer(target, output, props)
		s.metrics.RecordBindAttempt(name, target, err == nil)
		if err != nil {
			if binder.IsFatal(err) {
				s.logGiveUp("producer", name, target, late, err)
				return
			}
			s.rescheduleProducerBinding(output, name, b, props, target, late, err)
			return
		}
		s.setLateDelegate(name, target, late, bnd)
	}, s.props.RetryInterval())
}

func (s *BindingService) setLateDelegate(name, target string, late *LateBinding, bnd binder.Binding) {
	if err := late.SetDelegate(bnd); err != nil {
		s.logger.Error("failed to unbind late delegate",
			"binding", name,
			"destination", target,
			"lateBinding", late.ID(),
			"error", err,
		)
		return
	}
	s.logger.Info("late binding succeeded",
		"binding", name,
		"destination", target,
		"lateBinding", late.ID(),
	)
}

func (s *BindingService) logRetry(direction, name, target string, late *LateBinding, cause error) {
	s.metrics.RecordBindRetry(name, target)
	s.logger.Error("failed to create "+direction+" binding; retrying",
		"binding", name,
		"destination", target,
		"lateBinding", late.ID(),
		"retryInterval", s.props.RetryInterval(),
		"error", cause,
	)
}

func (s *BindingService) logGiveUp(direction, name, target string, late *LateBinding, err error) {
	s.logger.Error("failed to create "+direction+" binding; not retryable",
		"binding", name,
		"destination", target,
		"lateBinding", late.ID(),
		"error", err,
	)
}

// bindFailure shapes a synchronous bind failure: configuration errors pass
// through unmodified, backend failures gain binding context.
func (s *BindingService) bindFailure(op, name, target string, err error) error {
	if binder.IsFatal(err) {
		return err
	}
	return &binder.BindError{Op: op, Binding: name, Destination: target, Err: err}
}

func splitDestinations(destination string) []string {
	var out []string
	for _, part := range strings.Split(destination, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		out = append(out, destination)
	}
	return out
}
