package binder

// Binding is an opaque handle to an active subscription or publication.
type Binding interface {
	// Unbind releases the binding. Idempotent.
	Unbind() error
}

// Binder performs the actual bind/unbind against a messaging backend.
// Implementations live outside this module; the binding layer only depends
// on this capability.
type Binder interface {
	// BindConsumer binds input to destination as part of group and starts
	// message delivery.
	BindConsumer(destination, group string, input any, properties *ConsumerProperties) (Binding, error)

	// BindProducer binds output to destination for publication.
	BindProducer(destination string, output any, properties *ProducerProperties) (Binding, error)
}

// PollableSource is the capability a pull-based input declares. Poll hands
// at most one message to handler and reports whether one was available.
type PollableSource interface {
	Poll(handler func(message any) error) (bool, error)
}

// PollableConsumerBinder is implemented by binders that support pull-based
// consumption.
type PollableConsumerBinder interface {
	Binder

	BindPollableConsumer(destination, group string, source PollableSource, properties *ConsumerProperties) (Binding, error)
}
