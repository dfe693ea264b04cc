package typebus

import "reflect"

// Void is the result type of callbacks that return nothing. Plain handlers
// built with Func and Method are Callback[T, Void].
type Void = struct{}

// Callback pairs an invocable with a comparable Identity. T is the event
// type; R is the handler result type, Void for plain handlers. The identity
// is the unit of registration and removal; the invocable is what Publish
// runs. Build values with Func, Method, FuncValue, or MethodValue.
type Callback[T, R any] struct {
	id   Identity
	call func(*T) R
}

// Identity returns the callback's identity.
func (c Callback[T, R]) Identity() Identity { return c.id }

// Release clears the invocable; a released callback invokes as a no-op but
// keeps its identity, so it can still be passed to Unsubscribe. The bus
// stores its own copy at Subscribe time, so releasing a caller-held copy
// does not silence an already-registered one — unsubscribe it instead.
func (c *Callback[T, R]) Release() { c.call = nil }

// invoke runs the callback unless it has been released.
func (c Callback[T, R]) invoke(ev *T) (out R) {
	if c.call != nil {
		out = c.call(ev)
	}
	return out
}

// Func wraps a top-level function as a callback with no result.
//
// Identity is the function's code pointer, so pass named functions:
// closures built from the same literal share a code pointer and would
// compare equal to each other.
func Func[T any](fn func(*T)) Callback[T, Void] {
	if fn == nil {
		panic("typebus: nil callback function")
	}
	return Callback[T, Void]{
		id: funcIdentity(fn),
		call: func(ev *T) Void {
			fn(ev)
			return Void{}
		},
	}
}

// FuncValue wraps a top-level function whose result PublishValue retains.
func FuncValue[T, R any](fn func(*T) R) Callback[T, R] {
	if fn == nil {
		panic("typebus: nil callback function")
	}
	return Callback[T, R]{
		id:   funcIdentity(fn),
		call: fn,
	}
}

// Method wraps a method bound to a receiver. Pass the method expression:
//
//	typebus.Method(&player, (*Player).Attack)
//
// The bus holds the receiver non-owningly: registration keeps it reachable
// but the bus never manages its lifetime.
func Method[C, T any](recv *C, method func(*C, *T)) Callback[T, Void] {
	if recv == nil || method == nil {
		panic("typebus: nil receiver or method")
	}
	return Callback[T, Void]{
		id: methodIdentity(recv, method, reflect.TypeFor[C]()),
		call: func(ev *T) Void {
			method(recv, ev)
			return Void{}
		},
	}
}

// MethodValue wraps a value-returning method bound to a receiver.
func MethodValue[C, T, R any](recv *C, method func(*C, *T) R) Callback[T, R] {
	if recv == nil || method == nil {
		panic("typebus: nil receiver or method")
	}
	return Callback[T, R]{
		id: methodIdentity(recv, method, reflect.TypeFor[C]()),
		call: func(ev *T) R {
			return method(recv, ev)
		},
	}
}
