// Package schema defines resource schemas and the registry that owns them.
// A resource schema declares the shape of a record type as an ordered list
// of field declarations: plain stored fields and derived fields whose values
// are computed at read time by a named derivation.
package schema

import "fmt"

// FieldKind distinguishes a plain stored attribute from a computed one.
type FieldKind int

const (
	// KindField is a plain attribute stored on the record.
	KindField FieldKind = iota

	// KindDerived is a computed attribute resolved through a named
	// derivation on every read.
	KindDerived
)

// String returns the string representation of the field kind.
func (k FieldKind) String() string {
	switch k {
	case KindField:
		return "field"
	case KindDerived:
		return "derived"
	default:
		return "unknown"
	}
}

// ParseFieldKind converts a string to a FieldKind.
func ParseFieldKind(s string) (FieldKind, error) {
	switch s {
	case "field":
		return KindField, nil
	case "derived":
		return KindDerived, nil
	default:
		return 0, fmt.Errorf("unknown field kind: %s", s)
	}
}

// Field is a single declaration in a resource schema.
type Field struct {
	Name string
	Kind FieldKind

	// Derivation names the computation invoked for a derived field. The
	// name is bound lazily, at read time, so a schema may be registered
	// before (or without) its derivations.
	Derivation string

	// Options is passed verbatim to the derivation. The engine never
	// inspects it; validating its contents is the derivation's job.
	Options map[string]any
}

// ResourceSchema describes one record type. Field order is significant for
// consumers that enumerate fields; resolution only uses the name index.
type ResourceSchema struct {
	Type   string
	Fields []Field

	index map[string]int
}

// NewResourceSchema creates a schema for the given type name.
func NewResourceSchema(typeName string, fields ...Field) *ResourceSchema {
	s := &ResourceSchema{
		Type:   typeName,
		Fields: fields,
	}
	s.reindex()
	return s
}

func (s *ResourceSchema) reindex() {
	s.index = make(map[string]int, len(s.Fields))
	for i, f := range s.Fields {
		if _, dup := s.index[f.Name]; !dup {
			s.index[f.Name] = i
		}
	}
}

// Field returns the declaration with the given name.
func (s *ResourceSchema) Field(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.Fields[i], true
}

// HasField returns true if the schema declares a field with the given name.
func (s *ResourceSchema) HasField(name string) bool {
	_, ok := s.index[name]
	return ok
}

// FieldNames returns the declared field names in declaration order.
func (s *ResourceSchema) FieldNames() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}

// validate checks the structural invariants of the schema: field names are
// unique, derived fields name a derivation, plain fields do not.
func (s *ResourceSchema) validate() error {
	if s.Type == "" {
		return fmt.Errorf("%w: empty type name", ErrInvalidSchema)
	}
	seen := make(map[string]bool, len(s.Fields))
	for _, f := range s.Fields {
		if f.Name == "" {
			return fmt.Errorf("%w: %s declares a field with no name", ErrInvalidSchema, s.Type)
		}
		if seen[f.Name] {
			return fmt.Errorf("%w: %s declares field %q more than once", ErrInvalidSchema, s.Type, f.Name)
		}
		seen[f.Name] = true

		switch f.Kind {
		case KindField:
			if f.Derivation != "" {
				return fmt.Errorf("%w: field %s.%s names a derivation but is not derived", ErrInvalidSchema, s.Type, f.Name)
			}
		case KindDerived:
			if f.Derivation == "" {
				return fmt.Errorf("%w: derived field %s.%s names no derivation", ErrInvalidSchema, s.Type, f.Name)
			}
		default:
			return fmt.Errorf("%w: field %s.%s has unknown kind", ErrInvalidSchema, s.Type, f.Name)
		}
	}
	return nil
}
