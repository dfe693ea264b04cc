package typebus

import (
	"reflect"
	"sync/atomic"

	"github.com/dshills/typebus/dispatch"
)

// Bus routes published events to the subscribers registered for the
// event's exact type. Create one with New and use the package-level generic
// Subscribe, Unsubscribe, and Publish functions against it.
//
// The bus lock guards only the type-to-group map; each group has its own
// lock, so two independent event types never contend once their groups
// exist.
type Bus struct {
	mu        Locker
	groups    map[reflect.Type]any
	newLocker func() Locker
	exec      *dispatch.Executor

	// Stats
	published atomic.Uint64
	invoked   atomic.Uint64
	panics    atomic.Uint64
}

// New creates a bus. The default locking policy is one *sync.Mutex per
// lock; see WithoutLocking and WithLockerFactory.
func New(opts ...Option) *Bus {
	cfg := defaultBusConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	var execOpts []dispatch.ExecutorOption
	if cfg.panicObserver != nil {
		execOpts = append(execOpts, dispatch.WithPanicHandler(cfg.panicObserver))
	}

	return &Bus{
		mu:        cfg.newLocker(),
		groups:    make(map[reflect.Type]any),
		newLocker: cfg.newLocker,
		exec:      dispatch.NewExecutor(execOpts...),
	}
}

// Stats contains bus counters.
type Stats struct {
	// EventsPublished counts Publish calls that found a subscriber group.
	EventsPublished uint64

	// HandlersInvoked counts handler executions that completed.
	HandlersInvoked uint64

	// HandlerPanics counts handler panics recovered by a panic observer.
	HandlerPanics uint64
}

// Stats returns a snapshot of the bus counters.
func (b *Bus) Stats() Stats {
	return Stats{
		EventsPublished: b.published.Load(),
		HandlersInvoked: b.invoked.Load(),
		HandlerPanics:   b.panics.Load(),
	}
}

// groupKey returns the map key for an (event, result) type pair. Keying on
// the callback signature keeps plain and value-returning registrations for
// the same event type apart.
func groupKey[T, R any]() reflect.Type {
	return reflect.TypeFor[func(*T) R]()
}

// lookup returns the group for [T, R], creating it when create is set.
// A group, once created, is never removed: an empty group and an absent key
// both dispatch nothing, but only the absent key reports false to the
// caller.
func lookup[T, R any](b *Bus, create bool) *group[T, R] {
	key := groupKey[T, R]()

	b.mu.Lock()
	defer b.mu.Unlock()

	slot, ok := b.groups[key]
	if !ok {
		if !create {
			return nil
		}
		g := newGroup[T, R](b.newLocker())
		b.groups[key] = g
		return g
	}
	return slot.(*group[T, R])
}

// Subscribe registers cb for events of type T. It always succeeds, lazily
// creating the per-type group on first use. Duplicates are not detected:
// subscribing the same callback twice makes it run twice, and each
// Unsubscribe removes one registration.
func Subscribe[T any](b *Bus, cb Callback[T, Void], opts ...SubscribeOption) {
	SubscribeValue(b, cb, opts...)
}

// SubscribeValue registers a value-returning callback; PublishValue retains
// the last result across the priority-ordered sequence.
func SubscribeValue[T, R any](b *Bus, cb Callback[T, R], opts ...SubscribeOption) {
	cfg := subscribeConfig{priority: PriorityDefault}
	for _, opt := range opts {
		opt(&cfg)
	}
	lookup[T, R](b, true).add(cb, cfg.priority)
}

// Unsubscribe removes the first registration matching cb's identity. It
// returns false only when type T was never subscribed; true does not mean
// an entry was actually removed — removal is idempotent and a miss is a
// no-op.
func Unsubscribe[T any](b *Bus, cb Callback[T, Void]) bool {
	return UnsubscribeValue(b, cb)
}

// UnsubscribeValue is Unsubscribe for value-returning registrations.
func UnsubscribeValue[T, R any](b *Bus, cb Callback[T, R]) bool {
	g := lookup[T, R](b, false)
	if g == nil {
		return false
	}
	g.remove(cb.id)
	return true
}

// Publish invokes every subscriber of T with ev, highest priority first,
// on the calling goroutine. Each handler sees the mutations of the handlers
// before it. Publish returns false only when type T was never subscribed;
// callers must treat false as "possibly nobody is listening", not as a
// configuration error.
//
// A handler panic propagates to the caller and skips the remaining
// handlers, unless the bus was built with WithPanicObserver, in which case
// the panic is reported and Publish returns normally — still without
// running the handlers after the faulting one.
func Publish[T any](b *Bus, ev *T) bool {
	_, ok := PublishValue[T, Void](b, ev)
	return ok
}

// PublishValue is Publish for value-returning subscribers. It returns the
// last handler's result: last writer wins across the priority-ordered
// sequence.
func PublishValue[T, R any](b *Bus, ev *T) (R, bool) {
	var last R

	g := lookup[T, R](b, false)
	if g == nil {
		return last, false
	}

	// Snapshot under the group lock, invoke outside it. A handler that
	// subscribes or unsubscribes during its own invocation affects the
	// next Publish, never this snapshot.
	snap := g.snapshot()
	b.published.Add(1)

	for i := range snap {
		cb := snap[i].cb
		var out R
		res := b.exec.Invoke(ev, func() {
			out = cb.invoke(ev)
		})
		if res.Panicked {
			b.panics.Add(1)
			break
		}
		last = out
		b.invoked.Add(1)
	}
	return last, true
}
