package typebus

import "reflect"

// identityKind discriminates the two identity variants. Comparing the kind
// first prevents a function identity from ever colliding with a method
// identity whose fields happen to match.
type identityKind uint8

const (
	kindFunc identityKind = iota + 1
	kindMethod
)

// String returns a human-readable kind name.
func (k identityKind) String() string {
	switch k {
	case kindFunc:
		return "func"
	case kindMethod:
		return "method"
	default:
		return "unknown"
	}
}

// Identity uniquely identifies a registered callback so it can later be
// removed. It is a plain comparable value; compare with ==.
//
// A function identity records the function's code pointer. A method
// identity records the receiver address, the method expression's code
// pointer (a stable per-method-slot value), and the declaring type. Two
// receivers of the same type with the same method compare unequal; the same
// receiver and method registered twice compare equal, which is what makes
// duplicate removal work.
type Identity struct {
	kind     identityKind
	fn       uintptr
	receiver uintptr
	owner    reflect.Type
}

// Kind reports whether the identity names a function or a bound method.
func (id Identity) Kind() string { return id.kind.String() }

// funcIdentity builds the identity of a free function.
func funcIdentity(fn any) Identity {
	return Identity{
		kind: kindFunc,
		fn:   reflect.ValueOf(fn).Pointer(),
	}
}

// methodIdentity builds the identity of a method bound to a receiver. The
// receiver address is recorded as a uintptr for comparison only; the
// callback closure is what keeps the receiver reachable.
func methodIdentity(recv, method any, owner reflect.Type) Identity {
	return Identity{
		kind:     kindMethod,
		fn:       reflect.ValueOf(method).Pointer(),
		receiver: reflect.ValueOf(recv).Pointer(),
		owner:    owner,
	}
}
