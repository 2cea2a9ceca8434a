// Package derive provides the derivation registry: a process-wide table
// mapping a derivation name to the pure function that computes a derived
// field's value. Names are bound lazily — a schema may reference a
// derivation long before (or without) it being registered; the miss
// surfaces only when the field is read.
package derive

import (
	"sort"
	"sync"
)

// Source is the record view a derivation computes from. Get resolves a
// field through the owning schema, so a derivation may read other derived
// fields. Recursion is unguarded: a derivation that reads its own field
// will recurse until the stack runs out.
type Source interface {
	Get(name string) (any, error)
}

// Func computes a derived field's value from a record, the options declared
// on the field, and the property name being resolved.
type Func func(rec Source, options map[string]any, prop string) (any, error)

// Registry maps derivation names to functions.
//
// Registration is last-write-wins, matching the schema registry's policy.
type Registry struct {
	mu  sync.RWMutex
	fns map[string]Func
}

// NewRegistry creates a new derivation registry
func NewRegistry() *Registry {
	return &Registry{
		fns: make(map[string]Func),
	}
}

// Register stores fn under name, replacing any previous entry.
func (r *Registry) Register(name string, fn Func) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.fns[name] = fn
}

// Lookup returns the derivation registered under name
func (r *Registry) Lookup(name string) (Func, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fn, exists := r.fns[name]
	return fn, exists
}

// Names returns the registered derivation names, sorted
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.fns))
	for name := range r.fns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered derivations
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.fns)
}

// Clear removes all registered derivations (useful for testing)
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.fns = make(map[string]Func)
}
