// Package record provides the record surface and the attribute resolution
// engine. A record conforms to exactly one resource schema; property reads
// are resolved against that schema at access time, with derived fields
// dispatched to named derivations looked up lazily in the derivation
// registry.
package record

import (
	"fmt"

	"github.com/fieldwork-labs/fieldwork/derive"
	"github.com/fieldwork-labs/fieldwork/schema"
)

// DerivationNotFoundError is returned when a derived field's named
// derivation is absent from the registry at read time. It is raised afresh
// on every access; a failed read mutates nothing.
type DerivationNotFoundError struct {
	Derivation string
	Field      string
	Kind       schema.FieldKind
}

// Error implements the error interface
func (e *DerivationNotFoundError) Error() string {
	return fmt.Sprintf("No '%s' derivation registered for use by the '%s' field '%s'", e.Derivation, e.Kind, e.Field)
}

// Resolver resolves property reads through the schema and derivation
// registries. It holds no per-record state; resolution is a pure function
// of the record snapshot, the schema, and the registry contents at call
// time.
type Resolver struct {
	schemas     *schema.Registry
	derivations *derive.Registry
}

// NewResolver creates a resolver over the given registries
func NewResolver(schemas *schema.Registry, derivations *derive.Registry) *Resolver {
	return &Resolver{
		schemas:     schemas,
		derivations: derivations,
	}
}

// Schemas returns the resolver's schema registry
func (r *Resolver) Schemas() *schema.Registry {
	return r.schemas
}

// Derivations returns the resolver's derivation registry
func (r *Resolver) Derivations() *derive.Registry {
	return r.derivations
}

// Resolve produces the value of a property read against a record.
//
// A plain field returns the stored raw value verbatim; a missing raw value
// is nil, with no default substitution. A derived field binds its
// derivation name at this moment, not at schema registration: if the name
// is registered the derivation is invoked with (record, options, property)
// and its value or error propagates unchanged; if not, the read fails with
// DerivationNotFoundError. Nothing is cached — every read re-invokes the
// derivation, and a derivation reading derived fields recurses without
// cycle detection.
func (r *Resolver) Resolve(rec *Record, s *schema.ResourceSchema, prop string) (any, error) {
	decl, ok := s.Field(prop)
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", schema.ErrFieldNotFound, s.Type, prop)
	}

	switch decl.Kind {
	case schema.KindField:
		return rec.RawValue(decl.Name), nil

	case schema.KindDerived:
		fn, ok := r.derivations.Lookup(decl.Derivation)
		if !ok {
			return nil, &DerivationNotFoundError{
				Derivation: decl.Derivation,
				Field:      decl.Name,
				Kind:       decl.Kind,
			}
		}
		return fn(rec, decl.Options, prop)

	default:
		return nil, fmt.Errorf("cannot resolve %s.%s: unsupported field kind", s.Type, prop)
	}
}
