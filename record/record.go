package record

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/fieldwork-labs/fieldwork/schema"
)

// Record is an instance of a registered resource type. It stores raw values
// for plain fields only; derived values are computed on every read and
// never cached. The identifier and type discriminator live on the record
// surface itself, not in the raw store, so reads and writes of those names
// always agree.
type Record struct {
	id       string
	typeName string
	attrs    map[string]any

	schema   *schema.ResourceSchema
	resolver *Resolver
}

// New constructs a record of the given type with the given raw attribute
// values. The type must already be registered. An "id" attribute is routed
// to the record's identifier; a "type" attribute must match typeName.
func (r *Resolver) New(typeName string, attrs map[string]any) (*Record, error) {
	s, ok := r.schemas.Get(typeName)
	if !ok {
		return nil, &schema.SchemaNotFoundError{Type: typeName}
	}

	rec := &Record{
		typeName: typeName,
		attrs:    make(map[string]any, len(attrs)),
		schema:   s,
		resolver: r,
	}

	for name, v := range attrs {
		switch name {
		case schema.IdentityField:
			id, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("identifier for %s must be a string, got %T", typeName, v)
			}
			rec.id = id
		case schema.TypeField:
			if tn, ok := v.(string); !ok || tn != typeName {
				return nil, fmt.Errorf("type attribute %v conflicts with resource type %s", v, typeName)
			}
		default:
			rec.attrs[name] = v
		}
	}

	return rec, nil
}

// ID returns the record's identifier, or the empty string if none has been
// assigned yet.
func (r *Record) ID() string {
	return r.id
}

// SetID assigns the record's identifier
func (r *Record) SetID(id string) {
	r.id = id
}

// Identify assigns a fresh UUID if the record has no identifier yet, and
// returns the identifier either way.
func (r *Record) Identify() string {
	if r.id == "" {
		r.id = uuid.NewString()
	}
	return r.id
}

// Type returns the record's resource type name
func (r *Record) Type() string {
	return r.typeName
}

// Schema returns the record's owning schema
func (r *Record) Schema() *schema.ResourceSchema {
	return r.schema
}

// surfaceOwned reports whether the record surface answers the property
// itself. Identifier and type reads stay on the surface unless the schema
// author explicitly derived them, in which case the engine dispatches as
// for any other derived field.
func (r *Record) surfaceOwned(name string) bool {
	if name != schema.IdentityField && name != schema.TypeField {
		return false
	}
	decl, ok := r.schema.Field(name)
	return !ok || decl.Kind != schema.KindDerived
}

// Get resolves a property read. Identifier and type reads are answered by
// the record surface itself; everything else goes through the resolution
// engine.
func (r *Record) Get(name string) (any, error) {
	if r.surfaceOwned(name) {
		if name == schema.TypeField {
			return r.typeName, nil
		}
		if r.id == "" {
			return nil, nil
		}
		return r.id, nil
	}
	return r.resolver.Resolve(r, r.schema, name)
}

// Set stores a raw value for a plain field. An "id" write is routed to the
// record's identifier so a later read returns exactly what was stored; the
// type discriminator is fixed at construction. Derived fields are
// read-only: their values exist only as the output of their derivation.
func (r *Record) Set(name string, value any) error {
	decl, declared := r.schema.Field(name)
	if declared && decl.Kind == schema.KindDerived {
		return fmt.Errorf("cannot write derived field %s.%s", r.typeName, name)
	}

	switch name {
	case schema.IdentityField:
		id, ok := value.(string)
		if !ok {
			return fmt.Errorf("identifier for %s must be a string, got %T", r.typeName, value)
		}
		r.id = id
		return nil
	case schema.TypeField:
		return fmt.Errorf("cannot write type field of a %s record", r.typeName)
	}

	if !declared {
		return fmt.Errorf("%w: %s.%s", schema.ErrFieldNotFound, r.typeName, name)
	}
	r.attrs[name] = value
	return nil
}

// RawValue returns the stored raw value for a field name, or nil when none
// has been stored. No coercion, no default substitution.
func (r *Record) RawValue(name string) any {
	return r.attrs[name]
}
