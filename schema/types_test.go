package schema

import "testing"

func TestFieldKindString(t *testing.T) {
	tests := []struct {
		kind     FieldKind
		expected string
	}{
		{KindField, "field"},
		{KindDerived, "derived"},
		{FieldKind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("FieldKind(%d).String() = %q, want %q", tt.kind, got, tt.expected)
		}
	}
}

func TestParseFieldKind(t *testing.T) {
	t.Run("valid kinds", func(t *testing.T) {
		for s, want := range map[string]FieldKind{
			"field":   KindField,
			"derived": KindDerived,
		} {
			got, err := ParseFieldKind(s)
			if err != nil {
				t.Errorf("unexpected error for %q: %v", s, err)
			}
			if got != want {
				t.Errorf("ParseFieldKind(%q) = %v, want %v", s, got, want)
			}
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		if _, err := ParseFieldKind("computed"); err == nil {
			t.Error("expected error for unknown kind")
		}
	})
}

func TestResourceSchemaFieldLookup(t *testing.T) {
	s := NewResourceSchema("user",
		Field{Name: "firstName", Kind: KindField},
		Field{Name: "lastName", Kind: KindField},
		Field{Name: "fullName", Kind: KindDerived, Derivation: "concat"},
	)

	t.Run("declared field", func(t *testing.T) {
		f, ok := s.Field("fullName")
		if !ok {
			t.Fatal("fullName should be declared")
		}
		if f.Kind != KindDerived {
			t.Errorf("expected derived kind, got %v", f.Kind)
		}
		if f.Derivation != "concat" {
			t.Errorf("expected concat derivation, got %q", f.Derivation)
		}
	})

	t.Run("undeclared field", func(t *testing.T) {
		if _, ok := s.Field("email"); ok {
			t.Error("email should not be declared")
		}
		if s.HasField("email") {
			t.Error("HasField should be false for email")
		}
	})

	t.Run("field order preserved", func(t *testing.T) {
		names := s.FieldNames()
		expected := []string{"firstName", "lastName", "fullName"}
		if len(names) != len(expected) {
			t.Fatalf("expected %d names, got %d", len(expected), len(names))
		}
		for i, name := range expected {
			if names[i] != name {
				t.Errorf("names[%d] = %q, want %q", i, names[i], name)
			}
		}
	})
}

func TestResourceSchemaValidate(t *testing.T) {
	tests := []struct {
		name    string
		schema  *ResourceSchema
		wantErr bool
	}{
		{
			name: "valid schema",
			schema: NewResourceSchema("user",
				Field{Name: "firstName", Kind: KindField},
				Field{Name: "fullName", Kind: KindDerived, Derivation: "concat"},
			),
		},
		{
			name:    "empty type name",
			schema:  NewResourceSchema("", Field{Name: "a", Kind: KindField}),
			wantErr: true,
		},
		{
			name: "duplicate field name",
			schema: NewResourceSchema("user",
				Field{Name: "name", Kind: KindField},
				Field{Name: "name", Kind: KindField},
			),
			wantErr: true,
		},
		{
			name:    "unnamed field",
			schema:  NewResourceSchema("user", Field{Kind: KindField}),
			wantErr: true,
		},
		{
			name:    "derived field without derivation",
			schema:  NewResourceSchema("user", Field{Name: "fullName", Kind: KindDerived}),
			wantErr: true,
		},
		{
			name:    "plain field with derivation",
			schema:  NewResourceSchema("user", Field{Name: "name", Kind: KindField, Derivation: "concat"}),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.schema.validate()
			if tt.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
