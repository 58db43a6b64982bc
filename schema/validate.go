package schema

import (
	"fmt"
	"strings"

	"github.com/syssam/dialect"
)

// unsafeIdent holds characters that no dialect can quote safely.
const unsafeIdent = "\"`\x00"

// ValidateColumn checks the invariants a single column must satisfy
// before any provider renders it. The table name is used for error
// context only and may be empty.
func ValidateColumn(table string, c Column) error {
	if c.Name == "" {
		return dialect.NewMalformedSchemaError(table, "", "column has no name")
	}
	if strings.ContainsAny(c.Name, unsafeIdent) {
		return dialect.NewMalformedSchemaError(table, c.Name, "column name cannot be safely quoted")
	}
	if !c.Type.Valid() {
		return dialect.NewMalformedSchemaError(table, c.Name, fmt.Sprintf("unknown canonical type %q", c.Type))
	}
	if c.AutoIncrement && !c.Type.Integer() {
		return dialect.NewMalformedSchemaError(table, c.Name,
			fmt.Sprintf("auto-increment requires an integer type, got %q", c.Type))
	}
	if c.Length > 0 && !c.Type.Textual() {
		return dialect.NewMalformedSchemaError(table, c.Name,
			fmt.Sprintf("length is only valid for string types, got %q", c.Type))
	}
	return nil
}

// ValidateTable checks a full table description: identifier safety of
// the table and schema names, plus every column's invariants.
func ValidateTable(t *Table) error {
	if t.Name == "" {
		return dialect.NewMalformedSchemaError("", "", "table has no name")
	}
	if strings.ContainsAny(t.Name, unsafeIdent) {
		return dialect.NewMalformedSchemaError(t.Name, "", "table name cannot be safely quoted")
	}
	if strings.ContainsAny(t.Schema, unsafeIdent) {
		return dialect.NewMalformedSchemaError(t.Name, "", "schema name cannot be safely quoted")
	}
	if len(t.Columns) == 0 {
		return dialect.NewMalformedSchemaError(t.Name, "", "table has no columns")
	}
	for _, c := range t.Columns {
		if err := ValidateColumn(t.Name, c); err != nil {
			return err
		}
	}
	return nil
}
