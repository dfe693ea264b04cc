package typebus

import "sort"

// entry is one registration in a per-type group.
type entry[T, R any] struct {
	cb       Callback[T, R]
	priority Priority
}

// group holds the registrations for one (event, result) type pair, kept
// sorted by descending priority. Every mutating or snapshot-reading
// operation runs under the group's own lock; handler invocation never
// does, so a handler calling back into the bus cannot deadlock.
type group[T, R any] struct {
	mu      Locker
	entries []entry[T, R]
}

func newGroup[T, R any](mu Locker) *group[T, R] {
	return &group[T, R]{mu: mu}
}

// add appends a registration and restores descending-priority order.
// The sort is stable: entries sharing a priority keep registration order.
// Subscription is rare relative to publication, so sorting on insert keeps
// the publish path copy-and-iterate only.
func (g *group[T, R]) add(cb Callback[T, R], priority Priority) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.entries = append(g.entries, entry[T, R]{cb: cb, priority: priority})
	sort.SliceStable(g.entries, func(i, j int) bool {
		return g.entries[i].priority > g.entries[j].priority
	})
}

// remove deletes the first entry matching id. Removing an identity that is
// not present is a no-op, not an error.
func (g *group[T, R]) remove(id Identity) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if i := g.find(id); i >= 0 {
		g.entries = append(g.entries[:i], g.entries[i+1:]...)
	}
}

// find returns the index of the first entry matching id, or -1.
// Callers must hold g.mu.
func (g *group[T, R]) find(id Identity) int {
	for i := range g.entries {
		if g.entries[i].cb.id == id {
			return i
		}
	}
	return -1
}

// snapshot returns an independent copy of the current entries, so dispatch
// can iterate without the lock. Mutating the live group afterwards cannot
// affect entries already being invoked.
func (g *group[T, R]) snapshot() []entry[T, R] {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.entries) == 0 {
		return nil
	}
	out := make([]entry[T, R], len(g.entries))
	copy(out, g.entries)
	return out
}

// count returns the number of current registrations.
func (g *group[T, R]) count() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return len(g.entries)
}
