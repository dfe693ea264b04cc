// Package typebus is an in-process, type-routed publish/subscribe
// dispatcher. Producers publish a typed event value; subscribers registered
// for that exact type are invoked synchronously, in priority order, on the
// publishing goroutine. There is no queue, no network, and no persistence:
// delivery is best-effort and scoped to the calling process.
//
// # Routing
//
// The routing key is the event's own Go type. No base event type or topic
// string is required; any struct works as an event:
//
//	type AttackEvent struct {
//		Damage int
//	}
//
// Go methods cannot introduce type parameters, so the API surface is
// package-level generic functions that take the bus as their first
// argument:
//
//	bus := typebus.New()
//	typebus.Subscribe(bus, typebus.Func(BaseAttack), typebus.WithPriority(typebus.PriorityHigh))
//	typebus.Subscribe(bus, typebus.Method(&player, (*Player).Attack))
//
//	event := AttackEvent{}
//	typebus.Publish(bus, &event)
//
// Handlers receive a pointer to the published event and may mutate it in
// place; handlers later in the same Publish observe the mutations of
// handlers before them. Handlers must not retain the pointer beyond the
// call.
//
// # Identity
//
// Every callback carries a comparable Identity so it can later be removed.
// Func identifies a callback by the function's code pointer; Method by the
// receiver address, the method expression's code pointer, and the declaring
// type. The same receiver and method always produce an equal identity, two
// receivers of the same type never do, and a function identity never equals
// a method identity.
//
// Pass named functions to Func. Closures built from the same function
// literal share a code pointer and therefore compare equal, which makes
// Unsubscribe remove whichever was registered first.
//
// # Priorities
//
// Subscribers of one event type run in descending priority order; ties run
// in registration order. Re-subscribing the same callback is not detected:
// it runs once per registration, and each Unsubscribe removes one
// registration.
//
// # Concurrency
//
// The exclusion primitive is chosen per bus at construction. The default is
// *sync.Mutex; WithoutLocking builds a bus for single-goroutine use. The
// router lock guards only the type-to-group map, each per-type group has
// its own lock, and no lock is held while handlers run, so a handler may
// freely Subscribe or Unsubscribe — including on its own event type —
// without deadlocking. Publish dispatches against a snapshot: a
// subscription racing with an in-flight Publish may or may not be included
// in that Publish, but is always visible to the next one.
//
// # Failure semantics
//
// A Publish or Unsubscribe for a type that was never subscribed returns
// false; this is a normal outcome, not an error, and once a type has been
// subscribed even once the return value can no longer distinguish "no
// current subscribers" from "never subscribed".
//
// A handler panic propagates to the Publish caller and the remaining
// handlers in that Publish are not invoked. WithPanicObserver turns the
// panic into a report instead; the faulting Publish still stops early.
//
// The bus never extends the lifetime of subscriber objects. A registered
// callback keeps its captured receiver reachable, but a subscriber whose
// owner considers it logically dead keeps running until someone
// unsubscribes it; detecting that is the caller's responsibility.
package typebus
