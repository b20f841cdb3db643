package binding

import (
	"time"

	"github.com/streambind/streambind-go/binder"
	"github.com/streambind/streambind-go/config"
)

// Configuration layout defaults. All paths are canonical dotted names.
const (
	// DefaultBindingsRoot is the root of per-channel binding configuration.
	DefaultBindingsRoot = "streambind.bindings"

	// DefaultDefaultsRoot is the shared-default root channel-specific
	// lookups fall back to.
	DefaultDefaultsRoot = "streambind.default"

	// DefaultRetryInterval applies when no retry interval is configured.
	DefaultRetryInterval = 30 * time.Second
)

const (
	retryIntervalKey = "streambind.bindingretryinterval"
	defaultBinderKey = "streambind.defaultbinder"
)

// ServiceProperties resolves per-channel binding configuration from a
// Source, with unset channel-specific properties falling back to the
// shared default root.
type ServiceProperties struct {
	source        config.Source
	bindingsRoot  config.PropertyPath
	defaultsRoot  config.PropertyPath
	retryInterval time.Duration
	retrySet      bool
}

// PropertiesOption configures ServiceProperties.
type PropertiesOption func(*ServiceProperties)

// WithBindingsRoot overrides the per-channel configuration root.
func WithBindingsRoot(root string) PropertiesOption {
	return func(p *ServiceProperties) {
		p.bindingsRoot = config.NewPath(root)
	}
}

// WithDefaultsRoot overrides the shared-default configuration root.
func WithDefaultsRoot(root string) PropertiesOption {
	return func(p *ServiceProperties) {
		p.defaultsRoot = config.NewPath(root)
	}
}

// WithRetryInterval overrides the configured binding retry interval. A
// value of zero or less disables deferred binding.
func WithRetryInterval(interval time.Duration) PropertiesOption {
	return func(p *ServiceProperties) {
		p.retryInterval = interval
		p.retrySet = true
	}
}

// NewServiceProperties creates a property resolver over src.
func NewServiceProperties(src config.Source, options ...PropertiesOption) *ServiceProperties {
	p := &ServiceProperties{
		source:       src,
		bindingsRoot: config.NewPath(DefaultBindingsRoot),
		defaultsRoot: config.NewPath(DefaultDefaultsRoot),
	}

	for _, opt := range options {
		opt(p)
	}

	if !p.retrySet {
		p.retryInterval = DefaultRetryInterval
		if raw, ok := src.Get(config.NewPath(retryIntervalKey)); ok {
			if d, err := time.ParseDuration(raw); err == nil {
				p.retryInterval = d
			} else if secs, err := parseSeconds(raw); err == nil {
				p.retryInterval = secs
			}
		}
	}

	return p
}

// resolverFor builds the fallback rule table for one channel: everything
// under <bindings root>.<name> falls back to the same suffix under the
// shared default root.
func (p *ServiceProperties) resolverFor(name string) *config.DefaultResolver {
	return config.NewDefaultResolver(config.FallbackRule{
		Source:   p.bindingsRoot.Append(name),
		Fallback: p.defaultsRoot,
	})
}

// Destination returns the channel's destination string, which may be a
// comma-delimited list. Defaults to the channel name itself.
func (p *ServiceProperties) Destination(name string) string {
	path := p.bindingsRoot.Append(name).Append("destination")
	if v, ok := config.Lookup(p.source, p.resolverFor(name), path); ok && v != "" {
		return v
	}
	return name
}

// Group returns the channel's consumer group, or "" for an anonymous group.
func (p *ServiceProperties) Group(name string) string {
	path := p.bindingsRoot.Append(name).Append("group")
	v, _ := config.Lookup(p.source, p.resolverFor(name), path)
	return v
}

// BinderName returns the configured binder name for the channel, falling
// back to the globally configured default binder. "" selects the registry
// default.
func (p *ServiceProperties) BinderName(name string) string {
	path := p.bindingsRoot.Append(name).Append("binder")
	if v, ok := config.Lookup(p.source, p.resolverFor(name), path); ok && v != "" {
		return v
	}
	v, _ := p.source.Get(config.NewPath(defaultBinderKey))
	return v
}

// ConsumerProperties resolves the generic consumer properties for the
// channel, applying defaults, shared-default fallback and channel-specific
// overrides in that order.
func (p *ServiceProperties) ConsumerProperties(name string) (*binder.ConsumerProperties, error) {
	props := binder.NewConsumerProperties()
	root := p.bindingsRoot.Append(name).Append("consumer")
	if err := config.BindStruct(p.source, root, props, config.WithResolver(p.resolverFor(name))); err != nil {
		return nil, &binder.ConfigurationError{Binding: name, Err: err}
	}
	return props, nil
}

// ProducerProperties resolves the generic producer properties for the
// channel.
func (p *ServiceProperties) ProducerProperties(name string) (*binder.ProducerProperties, error) {
	props := binder.NewProducerProperties()
	root := p.bindingsRoot.Append(name).Append("producer")
	if err := config.BindStruct(p.source, root, props, config.WithResolver(p.resolverFor(name))); err != nil {
		return nil, &binder.ConfigurationError{Binding: name, Err: err}
	}
	return props, nil
}

// RetryInterval returns the delay between deferred bind attempts. Zero or
// less disables deferred binding.
func (p *ServiceProperties) RetryInterval() time.Duration {
	return p.retryInterval
}

// Source exposes the underlying configuration source.
func (p *ServiceProperties) Source() config.Source {
	return p.source
}

func parseSeconds(raw string) (time.Duration, error) {
	d, err := time.ParseDuration(raw + "s")
	if err != nil {
		return 0, err
	}
	return d, nil
}
