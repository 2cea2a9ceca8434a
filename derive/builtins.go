package derive

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingOptions is returned by built-in derivations that require
// declared options. The engine itself passes options through unexamined;
// rejecting a nil options map is the derivation's own policy.
var ErrMissingOptions = errors.New("derivation requires options")

// RegisterBuiltins seeds a registry with the standard derivation library.
func RegisterBuiltins(r *Registry) {
	r.Register("concat", Concat)
}

// Concat joins the values of the fields named by options["fields"] with
// options["separator"]. A missing separator means empty-string joining.
// Nil field values contribute nothing but keep their separator position.
func Concat(rec Source, options map[string]any, prop string) (any, error) {
	if options == nil {
		return nil, fmt.Errorf("%w: concat used by '%s' declares no options", ErrMissingOptions, prop)
	}

	names, err := stringSlice(options["fields"])
	if err != nil {
		return nil, fmt.Errorf("concat used by '%s': %w", prop, err)
	}

	separator := ""
	if sep, ok := options["separator"].(string); ok {
		separator = sep
	}

	parts := make([]string, len(names))
	for i, name := range names {
		v, err := rec.Get(name)
		if err != nil {
			return nil, err
		}
		if v != nil {
			parts[i] = fmt.Sprint(v)
		}
	}
	return strings.Join(parts, separator), nil
}

// stringSlice coerces an options value into a list of field names. Decoded
// JSON documents carry []any; Go-authored schemas tend to use []string.
func stringSlice(v any) ([]string, error) {
	switch list := v.(type) {
	case []string:
		return list, nil
	case []any:
		names := make([]string, len(list))
		for i, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("options.fields[%d] is not a string", i)
			}
			names[i] = s
		}
		return names, nil
	case nil:
		return nil, fmt.Errorf("%w: options.fields is not set", ErrMissingOptions)
	default:
		return nil, fmt.Errorf("options.fields must be a list of field names")
	}
}
