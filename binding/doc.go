// Package binding orchestrates the binding of named channels to a
// messaging backend.
//
// BindingService selects a binder from the registry, resolves the channel's
// properties (generic properties with shared-default fallback, plus
// binder-specific extended properties merged against binder defaults),
// validates them, and invokes the binder's bind operations. It owns the
// table of live bindings, keyed by channel name.
//
// When a TaskScheduler is configured and the retry interval is positive,
// a bind attempt that fails with a retryable backend error returns a
// LateBinding immediately and keeps retrying in the background until the
// real binding succeeds. Configuration errors are never retried. Unbinding
// a LateBinding before the real binding arrives guarantees the eventual
// binding is released on arrival rather than leaked.
package binding
