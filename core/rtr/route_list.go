package rtr

import "sync"

// RouteTable is the ordered log of registered routes, kept for inspection purposes
// (route overview, startup listing, tests). Lookups never go through it.
//
// Entries come back in registration order. Re-registering a method and path
// replaces the entry in place so the table mirrors what the routers will dispatch to.
type RouteTable[E any] struct {
	mu      sync.RWMutex
	entries []E
	index   map[string]int // method + " " + path -> position in entries
}

// NewRouteTable creates an empty table.
func NewRouteTable[E any]() *RouteTable[E] {
	return &RouteTable[E]{index: make(map[string]int, 32)}
}

// Put records the entry for method and path.
func (rt *RouteTable[E]) Put(method, path string, entry E) {
	key := method + " " + path

	rt.mu.Lock()
	defer rt.mu.Unlock()

	if i, ok := rt.index[key]; ok {
		rt.entries[i] = entry
		return
	}

	rt.index[key] = len(rt.entries)
	rt.entries = append(rt.entries, entry)
}

// Snapshot returns a copy of the entries. The caller owns the returned slice.
func (rt *RouteTable[E]) Snapshot() []E {
	rt.mu.RLock()
	defer rt.mu.RUnlock()

	out := make([]E, len(rt.entries))
	copy(out, rt.entries)
	return out
}

// Len is the number of distinct routes recorded.
func (rt *RouteTable[E]) Len() int {
	rt.mu.RLock()
	defer rt.mu.RUnlock()
	return len(rt.entries)
}
