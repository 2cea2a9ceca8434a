package schema

import (
	"encoding/json"
	"fmt"
)

// Document is the JSON form of a set of resource schemas. Schema files are
// plain data: no derivation code appears in them, only derivation names to
// be bound at read time.
type Document struct {
	Version   string        `json:"version,omitempty"`
	Resources []ResourceDoc `json:"resources"`
}

// ResourceDoc is the JSON form of a single resource schema.
type ResourceDoc struct {
	Type   string     `json:"type"`
	Fields []FieldDoc `json:"fields"`
}

// FieldDoc is the JSON form of a field declaration.
type FieldDoc struct {
	Name       string         `json:"name"`
	Kind       string         `json:"kind"`
	Derivation string         `json:"derivation,omitempty"`
	Options    map[string]any `json:"options,omitempty"`
}

// ParseDocument decodes a JSON schema document into resource schemas.
// The schemas are returned exactly as authored; callers wanting the
// conventional identity and type declarations apply WithDefaults.
func ParseDocument(data []byte) ([]*ResourceSchema, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal schema document: %w", err)
	}

	schemas := make([]*ResourceSchema, 0, len(doc.Resources))
	for _, res := range doc.Resources {
		fields := make([]Field, 0, len(res.Fields))
		for _, fd := range res.Fields {
			kind, err := ParseFieldKind(fd.Kind)
			if err != nil {
				return nil, fmt.Errorf("resource %s, field %s: %w", res.Type, fd.Name, err)
			}
			fields = append(fields, Field{
				Name:       fd.Name,
				Kind:       kind,
				Derivation: fd.Derivation,
				Options:    fd.Options,
			})
		}
		schemas = append(schemas, NewResourceSchema(res.Type, fields...))
	}
	return schemas, nil
}

// DocumentFor converts schemas back to their JSON document form, preserving
// field declaration order.
func DocumentFor(schemas ...*ResourceSchema) Document {
	doc := Document{Resources: make([]ResourceDoc, 0, len(schemas))}
	for _, s := range schemas {
		res := ResourceDoc{Type: s.Type, Fields: make([]FieldDoc, 0, len(s.Fields))}
		for _, f := range s.Fields {
			res.Fields = append(res.Fields, FieldDoc{
				Name:       f.Name,
				Kind:       f.Kind.String(),
				Derivation: f.Derivation,
				Options:    f.Options,
			})
		}
		doc.Resources = append(doc.Resources, res)
	}
	return doc
}

// LoadDocument parses a JSON schema document, augments each resource with
// the conventional defaults, and registers it.
func (r *Registry) LoadDocument(data []byte) error {
	schemas, err := ParseDocument(data)
	if err != nil {
		return err
	}
	for _, s := range schemas {
		if err := r.Register(WithDefaults(s)); err != nil {
			return err
		}
	}
	return nil
}
