package dialect

import (
	"errors"
	"fmt"
)

// UnsupportedTypeError is returned when a canonical column type has no
// native mapping for the target dialect, neither through a fast-path
// rendering rule nor through the provider's type registry. The rendering
// call fails as a whole; no partial DDL is ever produced.
type UnsupportedTypeError struct {
	Dialect string // Target dialect name
	Type    string // Canonical type that failed to resolve
}

// Error returns the error string.
func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("dialect: unsupported column type %q for dialect %q", e.Type, e.Dialect)
}

// NewUnsupportedTypeError returns a new UnsupportedTypeError for the
// given dialect and canonical type name.
func NewUnsupportedTypeError(dialect, typ string) *UnsupportedTypeError {
	return &UnsupportedTypeError{Dialect: dialect, Type: typ}
}

// IsUnsupportedType returns true if the error is an UnsupportedTypeError.
func IsUnsupportedType(err error) bool {
	if err == nil {
		return false
	}
	var e *UnsupportedTypeError
	return errors.As(err, &e)
}

// MalformedSchemaError reports a schema description that cannot be
// rendered as valid SQL, such as auto-increment requested on a
// non-integer column. It is reported to the caller instead of producing
// invalid DDL.
type MalformedSchemaError struct {
	Table   string // Table name, may be empty
	Column  string // Column name, may be empty
	Message string
}

// Error returns the error string.
func (e *MalformedSchemaError) Error() string {
	switch {
	case e.Table != "" && e.Column != "":
		return fmt.Sprintf("dialect: malformed schema: %s.%s: %s", e.Table, e.Column, e.Message)
	case e.Column != "":
		return fmt.Sprintf("dialect: malformed schema: column %s: %s", e.Column, e.Message)
	case e.Table != "":
		return fmt.Sprintf("dialect: malformed schema: table %s: %s", e.Table, e.Message)
	default:
		return fmt.Sprintf("dialect: malformed schema: %s", e.Message)
	}
}

// NewMalformedSchemaError returns a new MalformedSchemaError scoped to
// the given table and column.
func NewMalformedSchemaError(table, column, msg string) *MalformedSchemaError {
	return &MalformedSchemaError{Table: table, Column: column, Message: msg}
}

// IsMalformedSchema returns true if the error is a MalformedSchemaError.
func IsMalformedSchema(err error) bool {
	if err == nil {
		return false
	}
	var e *MalformedSchemaError
	return errors.As(err, &e)
}
