package schema

import (
	"errors"
	"fmt"
)

// Common schema errors
var (
	// ErrInvalidSchema is returned when a schema fails structural validation
	ErrInvalidSchema = errors.New("invalid schema")

	// ErrFieldNotFound is returned when a property name matches no declaration
	ErrFieldNotFound = errors.New("field not declared in schema")
)

// SchemaNotFoundError is returned when a type name is absent from the
// schema registry.
type SchemaNotFoundError struct {
	Type string
}

// Error implements the error interface
func (e *SchemaNotFoundError) Error() string {
	return fmt.Sprintf("no schema registered for resource type '%s'", e.Type)
}
