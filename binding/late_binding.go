package binding

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/streambind/streambind-go/binder"
)

// LateBinding is a binding handle returned before the real backend binding
// exists. The delegate arrives asynchronously from the retry loop; delegate
// arrival and unbind requests are serialized under one mutex so a delegate
// can never be left active after the caller gave up on it.
type LateBinding struct {
	id string

	mu       sync.Mutex
	delegate binder.Binding
	unbound  bool
}

// NewLateBinding creates a pending late binding.
func NewLateBinding() *LateBinding {
	return &LateBinding{id: uuid.New().String()}
}

// ID returns the handle's identity, used to correlate log entries across
// retry cycles.
func (l *LateBinding) ID() string {
	return l.id
}

// SetDelegate installs the real binding. If the proxy was already unbound,
// the delegate is immediately unbound instead of being installed.
func (l *LateBinding) SetDelegate(delegate binder.Binding) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.unbound {
		return delegate.Unbind()
	}
	l.delegate = delegate
	return nil
}

// Unbind implements binder.Binding. Before a delegate exists it marks the
// proxy unbound so a later delegate is neutralized on arrival; afterwards
// it forwards synchronously. Idempotent.
func (l *LateBinding) Unbind() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.unbound {
		return nil
	}
	l.unbound = true
	if l.delegate != nil {
		return l.delegate.Unbind()
	}
	return nil
}

// Bound reports whether the real delegate has arrived.
func (l *LateBinding) Bound() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.delegate != nil
}

func (l *LateBinding) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return fmt.Sprintf("LateBinding[id=%s, delegate=%v]", l.id, l.delegate)
}
