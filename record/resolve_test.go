package record

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldwork-labs/fieldwork/derive"
	"github.com/fieldwork-labs/fieldwork/schema"
)

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()

	schemas := schema.NewRegistry()
	err := schemas.Register(schema.WithDefaults(schema.NewResourceSchema("user",
		schema.Field{Name: "firstName", Kind: schema.KindField},
		schema.Field{Name: "lastName", Kind: schema.KindField},
		schema.Field{
			Name:       "fullName",
			Kind:       schema.KindDerived,
			Derivation: "concat",
			Options: map[string]any{
				"fields":    []string{"firstName", "lastName"},
				"separator": " ",
			},
		},
	)))
	require.NoError(t, err)

	return NewResolver(schemas, derive.NewRegistry())
}

func TestResolvePlainField(t *testing.T) {
	r := newTestResolver(t)

	rec, err := r.New("user", map[string]any{"firstName": "Rey", "lastName": "Skybarker"})
	require.NoError(t, err)

	t.Run("returns stored value verbatim", func(t *testing.T) {
		v, err := rec.Get("firstName")
		require.NoError(t, err)
		assert.Equal(t, "Rey", v)
	})

	t.Run("missing raw value is nil", func(t *testing.T) {
		other, err := r.New("user", nil)
		require.NoError(t, err)

		v, err := other.Get("firstName")
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("last stored value wins", func(t *testing.T) {
		require.NoError(t, rec.Set("firstName", "Finn"))
		v, err := rec.Get("firstName")
		require.NoError(t, err)
		assert.Equal(t, "Finn", v)

		require.NoError(t, rec.Set("firstName", "Rey"))
	})
}

func TestResolveDerivedField(t *testing.T) {
	r := newTestResolver(t)
	derive.RegisterBuiltins(r.Derivations())

	rec, err := r.New("user", map[string]any{"firstName": "Rey", "lastName": "Skybarker"})
	require.NoError(t, err)

	t.Run("invokes the named derivation", func(t *testing.T) {
		v, err := rec.Get("fullName")
		require.NoError(t, err)
		assert.Equal(t, "Rey Skybarker", v)
	})

	t.Run("every read recomputes", func(t *testing.T) {
		require.NoError(t, rec.Set("lastName", "Palpaskywalker"))

		v, err := rec.Get("fullName")
		require.NoError(t, err)
		assert.Equal(t, "Rey Palpaskywalker", v)

		require.NoError(t, rec.Set("lastName", "Skybarker"))
	})

	t.Run("derivation receives record options and property name", func(t *testing.T) {
		var gotProp string
		var gotOptions map[string]any
		r.Derivations().Register("concat", func(src derive.Source, options map[string]any, prop string) (any, error) {
			gotProp = prop
			gotOptions = options
			return "seen", nil
		})

		v, err := rec.Get("fullName")
		require.NoError(t, err)
		assert.Equal(t, "seen", v)
		assert.Equal(t, "fullName", gotProp)
		assert.Equal(t, " ", gotOptions["separator"])

		derive.RegisterBuiltins(r.Derivations())
	})

	t.Run("derivation errors propagate unchanged", func(t *testing.T) {
		boom := errors.New("boom")
		r.Derivations().Register("concat", func(src derive.Source, options map[string]any, prop string) (any, error) {
			return nil, boom
		})

		_, err := rec.Get("fullName")
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)

		derive.RegisterBuiltins(r.Derivations())
	})

	t.Run("derivations may read derived fields", func(t *testing.T) {
		schemas := r.Schemas()
		require.NoError(t, schemas.Register(schema.WithDefaults(schema.NewResourceSchema("profile",
			schema.Field{Name: "firstName", Kind: schema.KindField},
			schema.Field{Name: "lastName", Kind: schema.KindField},
			schema.Field{
				Name:       "fullName",
				Kind:       schema.KindDerived,
				Derivation: "concat",
				Options:    map[string]any{"fields": []string{"firstName", "lastName"}, "separator": " "},
			},
			schema.Field{
				Name:       "greeting",
				Kind:       schema.KindDerived,
				Derivation: "concat",
				Options:    map[string]any{"fields": []string{"salutation", "fullName"}, "separator": " "},
			},
			schema.Field{Name: "salutation", Kind: schema.KindField},
		))))

		p, err := r.New("profile", map[string]any{
			"salutation": "Hello",
			"firstName":  "Rey",
			"lastName":   "Skybarker",
		})
		require.NoError(t, err)

		v, err := p.Get("greeting")
		require.NoError(t, err)
		assert.Equal(t, "Hello Rey Skybarker", v)
	})
}

func TestResolveUnregisteredDerivation(t *testing.T) {
	// Same schema, but concat never registered.
	r := newTestResolver(t)

	rec, err := r.New("user", map[string]any{"firstName": "Rey", "lastName": "Skybarker"})
	require.NoError(t, err)

	t.Run("fails with the deterministic message", func(t *testing.T) {
		_, err := rec.Get("fullName")
		require.Error(t, err)

		var dnf *DerivationNotFoundError
		require.True(t, errors.As(err, &dnf))
		assert.Equal(t, "concat", dnf.Derivation)
		assert.Equal(t, "fullName", dnf.Field)
		assert.Equal(t, schema.KindDerived, dnf.Kind)
		assert.Equal(t,
			"No 'concat' derivation registered for use by the 'derived' field 'fullName'",
			err.Error())
	})

	t.Run("identical on every attempt", func(t *testing.T) {
		_, first := rec.Get("fullName")
		_, second := rec.Get("fullName")
		require.Error(t, first)
		require.Error(t, second)
		assert.Equal(t, first.Error(), second.Error())
	})

	t.Run("registering afterwards fixes the read", func(t *testing.T) {
		derive.RegisterBuiltins(r.Derivations())

		v, err := rec.Get("fullName")
		require.NoError(t, err)
		assert.Equal(t, "Rey Skybarker", v)
	})
}

func TestResolveUnknownProperty(t *testing.T) {
	r := newTestResolver(t)

	rec, err := r.New("user", nil)
	require.NoError(t, err)

	_, err = rec.Get("email")
	require.Error(t, err)
	assert.True(t, errors.Is(err, schema.ErrFieldNotFound))
}
