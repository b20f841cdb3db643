// Package streambind binds named logical channels of a message-driven
// application to a pluggable messaging backend. Backends plug in through
// the binder.Binder capability; per-channel configuration is resolved from
// a config.Source with layered default fallback; bind failures against an
// unavailable backend are deferred into a background retry loop so startup
// is never blocked by a transient outage.
package streambind

import (
	"fmt"
	"log/slog"

	"github.com/streambind/streambind-go/binder"
	"github.com/streambind/streambind-go/binding"
	"github.com/streambind/streambind-go/config"
	"github.com/streambind/streambind-go/metric"
)

// Client is the main entry point. It wires a configuration source and a
// binder registry into a BindingService with a running retry scheduler.
type Client struct {
	service   *binding.BindingService
	scheduler *binding.TimerScheduler
}

type clientConfig struct {
	logger          *slog.Logger
	metrics         metric.Collector
	propertyOptions []binding.PropertiesOption
}

// ClientOption configures the Client.
type ClientOption func(*clientConfig)

// WithClientLogger sets the logger.
func WithClientLogger(logger *slog.Logger) ClientOption {
	return func(cfg *clientConfig) {
		cfg.logger = logger
	}
}

// WithClientMetrics sets the metrics collector.
func WithClientMetrics(collector metric.Collector) ClientOption {
	return func(cfg *clientConfig) {
		cfg.metrics = collector
	}
}

// WithPropertyOptions passes options through to the property resolver,
// e.g. binding.WithBindingsRoot or binding.WithRetryInterval.
func WithPropertyOptions(options ...binding.PropertiesOption) ClientOption {
	return func(cfg *clientConfig) {
		cfg.propertyOptions = append(cfg.propertyOptions, options...)
	}
}

// NewClient creates a client over the given configuration source and
// binder registry.
func NewClient(src config.Source, registry binder.Registry, options ...ClientOption) (*Client, error) {
	if src == nil {
		return nil, fmt.Errorf("streambind: configuration source must not be nil")
	}
	if registry == nil {
		return nil, fmt.Errorf("streambind: binder registry must not be nil")
	}

	cfg := &clientConfig{
		logger:  slog.Default(),
		metrics: metric.NoOpCollector{},
	}
	for _, opt := range options {
		opt(cfg)
	}

	props := binding.NewServiceProperties(src, cfg.propertyOptions...)
	scheduler := binding.NewTimerScheduler()
	service := binding.NewBindingService(props, registry,
		binding.WithLogger(cfg.logger),
		binding.WithScheduler(scheduler),
		binding.WithMetrics(cfg.metrics),
	)

	return &Client{
		service:   service,
		scheduler: scheduler,
	}, nil
}

// BindConsumer binds the named input channel.
func (c *Client) BindConsumer(input any, name string) ([]binder.Binding, error) {
	return c.service.BindConsumer(input, name)
}

// BindProducer binds the named output channel.
func (c *Client) BindProducer(output any, name string) (binder.Binding, error) {
	return c.service.BindProducer(output, name)
}

// UnbindConsumers removes and unbinds the consumer bindings for the name.
func (c *Client) UnbindConsumers(name string) {
	c.service.UnbindConsumers(name)
}

// UnbindProducers removes and unbinds the producer binding for the name.
func (c *Client) UnbindProducers(name string) {
	c.service.UnbindProducers(name)
}

// Service exposes the underlying binding service.
func (c *Client) Service() *binding.BindingService {
	return c.service
}

// Close stops the retry scheduler. Pending late bindings stay pending.
func (c *Client) Close() error {
	c.scheduler.Stop()
	return nil
}
