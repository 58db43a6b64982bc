package schema

// Type is the canonical, engine-agnostic column type tag. Dialect
// providers resolve it to a native type name through their TypeMap or
// through a dialect-specific fast path (variable-length strings,
// auto-increment integers).
type Type string

const (
	// TypeString is a variable-length string, optionally length-bounded.
	TypeString Type = "string"
	// TypeText is an unbounded text value; Length is ignored.
	TypeText Type = "text"
	// TypeInt is a 32-bit signed integer.
	TypeInt Type = "int"
	// TypeInt64 is a 64-bit signed integer.
	TypeInt64 Type = "int64"
	// TypeBool is a boolean value.
	TypeBool Type = "bool"
	// TypeFloat64 is a double-precision floating point value.
	TypeFloat64 Type = "float64"
	// TypeDecimal is a fixed-precision decimal; Precision and Scale apply.
	TypeDecimal Type = "decimal"
	// TypeDateTime is a date with time of day.
	TypeDateTime Type = "datetime"
	// TypeDate is a calendar date without time of day.
	TypeDate Type = "date"
	// TypeTime is a time of day without a date.
	TypeTime Type = "time"
	// TypeUUID is a universally unique identifier.
	TypeUUID Type = "uuid"
	// TypeBytes is a variable-length binary value.
	TypeBytes Type = "bytes"
)

// Valid reports if the type is one of the canonical type tags.
func (t Type) Valid() bool {
	switch t {
	case TypeString, TypeText, TypeInt, TypeInt64, TypeBool, TypeFloat64,
		TypeDecimal, TypeDateTime, TypeDate, TypeTime, TypeUUID, TypeBytes:
		return true
	}
	return false
}

// Integer reports if the type belongs to the integer family. Only
// integer-family columns may be auto-incremented.
func (t Type) Integer() bool {
	return t == TypeInt || t == TypeInt64
}

// Textual reports if the type is a string type for which Length is
// meaningful.
func (t Type) Textual() bool {
	return t == TypeString || t == TypeText
}

// Numeric reports if the type is numeric (integer, float or decimal).
func (t Type) Numeric() bool {
	return t.Integer() || t == TypeFloat64 || t == TypeDecimal
}

// String returns the canonical name of the type.
func (t Type) String() string { return string(t) }

// Column is the canonical description of a single table column. It is
// built by the caller and read, never mutated, by dialect providers.
type Column struct {
	// Name is the column name before any naming strategy is applied.
	Name string
	// Type is the canonical value type.
	Type Type
	// Nullable renders as an explicit NULL / NOT NULL clause unless the
	// auto-increment fast path applies.
	Nullable bool
	// Length bounds variable-length string columns; zero means unbounded.
	// It is only meaningful for textual types.
	Length int
	// Precision and Scale apply to decimal columns; zero values fall back
	// to the provider defaults.
	Precision int
	Scale     int
	// Default is a raw SQL default-value expression appended through the
	// dialect's default clause when non-empty.
	Default string
	// PrimaryKey marks the column as (part of) the primary key.
	PrimaryKey bool
	// AutoIncrement requests identity generation. Requires an
	// integer-family Type.
	AutoIncrement bool
}
