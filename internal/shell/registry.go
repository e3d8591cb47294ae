package shell

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrDuplicateKey is returned when a registry is built with the same key twice.
	ErrDuplicateKey = errors.New("shell: duplicate view key")
	// ErrNoFallback is returned when a registry is built without a fallback view.
	ErrNoFallback = errors.New("shell: fallback view is required")
)

// Factory builds a fresh view instance.
type Factory[V any] func() V

// Entry binds a key to the factory that renders it.
type Entry[V any] struct {
	Key     ViewKey
	Factory Factory[V]
}

// Register is a small constructor for Entry that reads well in registry literals.
func Register[V any](key ViewKey, f Factory[V]) Entry[V] {
	return Entry[V]{Key: key, Factory: f}
}

// Registry maps view keys to factories. It is immutable once built and falls
// back to a designated view for keys it does not know.
type Registry[V any] struct {
	fallback Factory[V]
	entries  map[ViewKey]Factory[V]
}

// NewRegistry builds an immutable registry.
func NewRegistry[V any](fallback Factory[V], entries ...Entry[V]) (*Registry[V], error) {
	if fallback == nil {
		return nil, ErrNoFallback
	}
	m := make(map[ViewKey]Factory[V], len(entries))
	for _, e := range entries {
		if e.Factory == nil {
			return nil, fmt.Errorf("shell: nil factory for %q", e.Key)
		}
		if _, dup := m[e.Key]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, e.Key)
		}
		m[e.Key] = e.Factory
	}
	return &Registry[V]{fallback: fallback, entries: m}, nil
}

// MustRegistry is NewRegistry for package-level tables that are known good.
func MustRegistry[V any](fallback Factory[V], entries ...Entry[V]) *Registry[V] {
	r, err := NewRegistry(fallback, entries...)
	if err != nil {
		panic(err)
	}
	return r
}

// Resolve returns the view registered for key, or the fallback view when the
// key is unknown. The boolean reports whether key was registered.
func (r *Registry[V]) Resolve(key ViewKey) (V, bool) {
	if f, ok := r.entries[key]; ok {
		return f(), true
	}
	return r.fallback(), false
}

// Has reports whether key has a registered view.
func (r *Registry[V]) Has(key ViewKey) bool {
	_, ok := r.entries[key]
	return ok
}

// Keys returns the registered keys sorted lexically.
func (r *Registry[V]) Keys() []ViewKey {
	keys := make([]ViewKey, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Len returns the number of registered keys.
func (r *Registry[V]) Len() int { return len(r.entries) }

// Unregistered returns the keys of nav entries that have no registered view,
// in nav order and without duplicates.
func (r *Registry[V]) Unregistered(nav []NavEntry) []ViewKey {
	var missing []ViewKey
	for _, e := range nav {
		if r.Has(e.Key) || slices.Contains(missing, e.Key) {
			continue
		}
		missing = append(missing, e.Key)
	}
	return missing
}
