package rtr

import (
	"github.com/rohanthewiz/rweb/v2/consts"
)

// HashRouter serves static paths (no parameters) with a single map lookup per method.
type HashRouter[T any] struct {
	get    map[string]T
	others map[string]map[string]T // keyed by method token
}

// NewHashRouter creates a router with its maps initialized.
// It is important to use this method when a new hash router is needed
func NewHashRouter[T any]() *HashRouter[T] {
	return &HashRouter[T]{
		get:    make(map[string]T, 16),
		others: make(map[string]map[string]T, 8),
	}
}

// Add registers a new handler for the given method and path.
// Registering the same method and path again replaces the handler.
func (hr *HashRouter[T]) Add(method string, path string, handler T) {
	if method == consts.MethodGet {
		hr.get[path] = handler
		return
	}

	m, ok := hr.others[method]
	if !ok {
		m = make(map[string]T)
		hr.others[method] = m
	}
	m[path] = handler
}

// Lookup finds the handler for the given route.
func (hr *HashRouter[T]) Lookup(method string, path string) (handler T, ok bool) {
	if method == consts.MethodGet {
		handler, ok = hr.get[path]
		return
	}

	handler, ok = hr.others[method][path]
	return
}
