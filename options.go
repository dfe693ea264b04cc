package typebus

import (
	"sync"

	"github.com/dshills/typebus/dispatch"
)

// Option configures a Bus.
type Option func(*busConfig)

// busConfig contains configuration for the bus.
type busConfig struct {
	// newLocker builds the router lock and every per-type group lock.
	newLocker func() Locker

	// panicObserver, when set, recovers handler panics and reports them.
	panicObserver dispatch.PanicHandler
}

// defaultBusConfig returns the thread-safe default configuration.
func defaultBusConfig() busConfig {
	return busConfig{
		newLocker: func() Locker { return &sync.Mutex{} },
	}
}

// WithLockerFactory sets the factory used for the router lock and every
// per-type group lock.
func WithLockerFactory(f func() Locker) Option {
	return func(c *busConfig) {
		if f != nil {
			c.newLocker = f
		}
	}
}

// WithoutLocking disables all locking. Use for single-goroutine
// deployments where mutex overhead is unwanted.
func WithoutLocking() Option {
	return func(c *busConfig) {
		c.newLocker = func() Locker { return NoOpLocker{} }
	}
}

// WithPanicObserver recovers handler panics instead of letting them
// propagate to the Publish caller. The observer receives the event being
// delivered, the panic value, and the captured stack. The Publish that hit
// the panic still stops at the faulting handler.
func WithPanicObserver(h dispatch.PanicHandler) Option {
	return func(c *busConfig) {
		if h != nil {
			c.panicObserver = h
		}
	}
}

// SubscribeOption configures a single subscription.
type SubscribeOption func(*subscribeConfig)

// subscribeConfig contains configuration for one registration.
type subscribeConfig struct {
	priority Priority
}

// WithPriority sets the subscription's priority. The default is
// PriorityDefault.
func WithPriority(p Priority) SubscribeOption {
	return func(c *subscribeConfig) {
		c.priority = p
	}
}
