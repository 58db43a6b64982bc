package schema

import (
	"strings"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NamingStrategy computes the canonical table and column names a dialect
// provider emits. Implementations are stateless pure functions and may
// be shared freely between providers.
type NamingStrategy interface {
	// TableName returns the table name to quote for the given model.
	TableName(Model) string
	// ColumnName returns the column name to quote.
	ColumnName(string) string
}

// SameNaming emits names exactly as given. It is the default for
// dialects that preserve identifier case inside quotes.
type SameNaming struct{}

// TableName returns the model's table name unchanged.
func (SameNaming) TableName(m Model) string { return m.Name }

// ColumnName returns the column name unchanged.
func (SameNaming) ColumnName(name string) string { return name }

// LowercaseNaming folds names to lower case, matching engines such as
// PostgreSQL that fold unquoted identifiers.
type LowercaseNaming struct{}

// TableName returns the model's table name in lower case.
func (LowercaseNaming) TableName(m Model) string { return strings.ToLower(m.Name) }

// ColumnName returns the column name in lower case.
func (LowercaseNaming) ColumnName(name string) string { return strings.ToLower(name) }

// SnakeNaming converts Go-style names to snake_case and pluralizes table
// names, so a model named "OrderItem" maps to the table "order_items".
type SnakeNaming struct{}

// TableName returns the pluralized snake_case form of the model name.
func (SnakeNaming) TableName(m Model) string {
	return inflect.Pluralize(inflect.Underscore(m.Name))
}

// ColumnName returns the snake_case form of the column name.
func (SnakeNaming) ColumnName(name string) string {
	return inflect.Underscore(name)
}

var titleCaser = cases.Title(language.English)

// GoName maps a database identifier to an exported Go-style identifier,
// e.g. "created_at" to "CreatedAt". It is used by callers that generate
// record types from introspected columns.
func GoName(name string) string {
	parts := strings.Split(name, "_")
	for i, p := range parts {
		parts[i] = titleCaser.String(p)
	}
	return strings.Join(parts, "")
}
