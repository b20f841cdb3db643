// Package binder defines the capabilities the binding layer consumes and
// exposes: the Binder backend contract, the Binding handle, pollable-source
// support, generic consumer/producer properties with validation, extended
// binder-specific properties, the binder registry, and the error taxonomy
// separating fatal configuration errors from retryable backend failures.
//
// Concrete binders (broker clients) live outside this module and plug in
// through the Binder and Registry interfaces.
package binder
