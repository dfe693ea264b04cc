package typebus

import "sync"

// Locker is the exclusion capability used by a bus and its per-type groups.
// *sync.Mutex satisfies it natively. The factory passed at construction
// fixes the thread-safety class of a bus instance for its lifetime; it is a
// configuration axis, not a behavioral one.
type Locker interface {
	Lock()
	Unlock()
	TryLock() bool
}

// NoOpLocker is a Locker that does nothing. A bus built with it must only
// be used from a single goroutine.
type NoOpLocker struct{}

// Lock implements Locker.
func (NoOpLocker) Lock() {}

// Unlock implements Locker.
func (NoOpLocker) Unlock() {}

// TryLock implements Locker.
func (NoOpLocker) TryLock() bool { return true }

var (
	_ Locker = (*sync.Mutex)(nil)
	_ Locker = NoOpLocker{}
)
