package schema

import (
	"fmt"
	"sort"
	"sync"
)

// Registry manages all resource schemas in the application.
//
// Registration is last-write-wins: re-registering a type name replaces the
// previous schema. This keeps repeated test setup deterministic without
// requiring Clear() between cases.
type Registry struct {
	mu      sync.RWMutex
	schemas map[string]*ResourceSchema
}

// NewRegistry creates a new schema registry
func NewRegistry() *Registry {
	return &Registry{
		schemas: make(map[string]*ResourceSchema),
	}
}

// Register validates and stores a resource schema, indexed by its type name.
// An existing schema under the same type name is replaced.
func (r *Registry) Register(schema *ResourceSchema) error {
	if err := schema.validate(); err != nil {
		return fmt.Errorf("schema validation failed for %s: %w", schema.Type, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.schemas[schema.Type] = schema
	return nil
}

// Get retrieves a resource schema by type name
func (r *Registry) Get(typeName string) (*ResourceSchema, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	schema, exists := r.schemas[typeName]
	return schema, exists
}

// All returns a copy of all registered schemas
func (r *Registry) All() map[string]*ResourceSchema {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*ResourceSchema, len(r.schemas))
	for k, v := range r.schemas {
		result[k] = v
	}
	return result
}

// List returns the registered type names, sorted
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.schemas))
	for name := range r.schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Exists checks if a resource schema exists
func (r *Registry) Exists(typeName string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.schemas[typeName]
	return exists
}

// Count returns the number of registered schemas
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.schemas)
}

// Clear removes all registered schemas (useful for testing)
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.schemas = make(map[string]*ResourceSchema)
}
