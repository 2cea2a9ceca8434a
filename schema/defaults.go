package schema

// Default declarations injected by WithDefaults. Every registered resource
// exposes an identifier and a type discriminator without the author having
// to repeat them.
const (
	IdentityField = "id"
	TypeField     = "type"
)

// WithDefaults returns a schema with the conventional identity and type
// declarations prepended ahead of the caller-supplied fields. A field the
// author declared explicitly is never overwritten. The input schema is not
// modified, and applying WithDefaults twice yields the same schema as
// applying it once.
func WithDefaults(partial *ResourceSchema) *ResourceSchema {
	defaults := []Field{
		{Name: IdentityField, Kind: KindField},
		{Name: TypeField, Kind: KindField},
	}

	fields := make([]Field, 0, len(defaults)+len(partial.Fields))
	for _, d := range defaults {
		if !partial.HasField(d.Name) {
			fields = append(fields, d)
		}
	}
	fields = append(fields, partial.Fields...)

	return NewResourceSchema(partial.Type, fields...)
}
