package sql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/syssam/dialect"
	"github.com/syssam/dialect/schema"
)

// Provider is the per-engine dialect contract. A Provider is constructed
// once, is immutable afterwards, and is safe for concurrent use; its
// only registry-like state (the type map) is write-once at construction.
type Provider interface {
	// Dialect returns the dialect name served by this provider.
	Dialect() string
	// CreateConnection opens a driver-level connection for the given data
	// source. Closing the returned driver is the caller's responsibility.
	CreateConnection(source string) (*Driver, error)
	// ColumnDefinition renders the DDL fragment for a single column.
	ColumnDefinition(c schema.Column) (string, error)
	// CreateTable renders a complete CREATE TABLE statement for the table.
	CreateTable(t *schema.Table) (string, error)
	// QuoteIdent quotes a single identifier segment.
	QuoteIdent(name string) string
	// QuoteTable quotes the possibly schema-qualified table name of the
	// model. Dots inside the schema qualifier split into separately
	// quoted segments.
	QuoteTable(m schema.Model) string
	// DropTable renders the drop statement for the model, cascading where
	// the engine supports it.
	DropTable(m schema.Model) string
	// DatePart renders a date-part extraction expression. The part name
	// is lower-cased before substitution.
	DatePart(part, expr string) string
	// Placeholder returns the bound-parameter placeholder for position n
	// (1-based).
	Placeholder(n int) string
	// ToBinary encodes raw bytes using the dialect's literal escaping
	// rules.
	ToBinary(b []byte) string
	// BinaryLiteral renders raw bytes as a complete SQL literal.
	BinaryLiteral(b []byte) string
	// BindValue normalizes a Go value before it is bound as a parameter.
	BindValue(v any) any
	// SelectIdentity returns the statement that reads the last generated
	// identity value on this connection.
	SelectIdentity() string
	// TableExists reports whether the named table exists, using a
	// parameterized catalog query.
	TableExists(ctx context.Context, conn dialect.ExecQuerier, table string) (bool, error)
	// Tables streams the tables visible in the given schema. The result
	// is lazy and not restartable; a fresh call issues a fresh catalog
	// query.
	Tables(ctx context.Context, conn dialect.ExecQuerier, schemaName string) (*TableIterator, error)
	// Columns streams the column metadata of the named table, lazily and
	// non-restartably, mirroring Tables.
	Columns(ctx context.Context, conn dialect.ExecQuerier, table, schemaName string) (*ColumnIterator, error)
	// ColumnType maps a native catalog type name back to its canonical
	// type tag.
	ColumnType(native string) schema.Type
	// Naming returns the provider's naming strategy.
	Naming() schema.NamingStrategy
	// Visitor returns a fresh dialect-bound expression compiler. One
	// visitor compiles one expression; independent expressions take
	// separate instances.
	Visitor() *Visitor
}

// base carries the construction-time configuration shared by all SQL
// providers and implements the behavior that does not diverge between
// engines. Concrete providers embed it and override only what differs.
type base struct {
	dialect    string
	driverName string // database/sql registration name

	quote         rune
	paramPrefix   string // "$" for positional $n, "" for ?
	stringFormat  string // length-bounded string column, e.g. "VARCHAR(%d)"
	textType      string // unbounded string column
	defaultString int    // fallback length when the caller sets none
	boundedString bool   // apply the fallback instead of the unbounded form

	// serialTypes replace the column type on the auto-increment fast
	// path. Engines without serial types leave it nil and set the
	// autoIncrement token instead.
	serialTypes   map[schema.Type]string
	autoIncrement string // e.g. "AUTO_INCREMENT"; rendered after PRIMARY KEY when tokenAfterPK
	tokenAfterPK  bool

	defaultFormat  string // default-value clause, e.g. "DEFAULT %s"
	dropCascade    bool
	datePartFormat string // e.g. "date_part('%s', %s)"
	selectIdentity string
	nativeUUID     bool

	defaultSchema string
	existsQuery   string // one table-name parameter
	tablesQuery   string // one schema parameter
	columnsQuery  string // schema and table parameters, in that order

	types  *schema.TypeMap
	naming schema.NamingStrategy
}

// Dialect returns the dialect name served by this provider.
func (b *base) Dialect() string { return b.dialect }

// Naming returns the provider's naming strategy.
func (b *base) Naming() schema.NamingStrategy { return b.naming }

// SelectIdentity returns the select-last-identity statement.
func (b *base) SelectIdentity() string { return b.selectIdentity }

// CreateConnection opens a connection through the registered
// database/sql driver. Driver errors propagate unchanged; the caller
// owns the returned connection.
func (b *base) CreateConnection(source string) (*Driver, error) {
	drv, err := Open(b.driverName, source)
	if err != nil {
		return nil, err
	}
	return NewDriver(b.dialect, drv.Conn), nil
}

// QuoteIdent quotes a single identifier segment, doubling any embedded
// quote character.
func (b *base) QuoteIdent(name string) string {
	q := string(b.quote)
	return q + strings.ReplaceAll(name, q, q+q) + q
}

// QuoteTable quotes the model's table name, independently quoting the
// schema qualifier when present. A literal dot inside the schema name
// splits into separately quoted segments, so schema "a.b" and table "t"
// render as "a"."b"."t".
func (b *base) QuoteTable(m schema.Model) string {
	table := b.QuoteIdent(b.naming.TableName(m))
	if !m.Qualified() {
		return table
	}
	segments := strings.Split(m.Schema, ".")
	quoted := make([]string, 0, len(segments)+1)
	for _, s := range segments {
		quoted = append(quoted, b.QuoteIdent(s))
	}
	return strings.Join(append(quoted, table), ".")
}

// DropTable renders the drop statement, appending CASCADE for engines
// that support cascading drops.
func (b *base) DropTable(m schema.Model) string {
	stmt := "DROP TABLE " + b.QuoteTable(m)
	if b.dropCascade {
		stmt += " CASCADE"
	}
	return stmt
}

// DatePart renders the date-part extraction expression with the part
// name lower-cased.
func (b *base) DatePart(part, expr string) string {
	return fmt.Sprintf(b.datePartFormat, strings.ToLower(part), expr)
}

// Placeholder returns the bound-parameter placeholder for position n.
func (b *base) Placeholder(n int) string {
	if b.paramPrefix != "" {
		return fmt.Sprintf("%s%d", b.paramPrefix, n)
	}
	return "?"
}

// BindValue normalizes values for engines that lack a native type for
// them. UUIDs bind as their text form unless the engine stores them
// natively.
func (b *base) BindValue(v any) any {
	if !b.nativeUUID {
		if id, ok := v.(uuid.UUID); ok {
			return id.String()
		}
	}
	return v
}

// ColumnDefinition renders one column's DDL fragment. It is a pure
// function of the column and the fixed registry.
func (b *base) ColumnDefinition(c schema.Column) (string, error) {
	if err := schema.ValidateColumn("", c); err != nil {
		return "", err
	}
	name := b.QuoteIdent(b.naming.ColumnName(c.Name))
	typ, err := b.columnType(c)
	if err != nil {
		return "", err
	}
	// Auto-increment columns skip explicit nullability and defaults.
	// NOT NULL is implied by the serial type or identity token.
	if c.AutoIncrement {
		parts := []string{name, typ}
		if b.autoIncrement != "" && !b.tokenAfterPK {
			parts = append(parts, b.autoIncrement)
		}
		if c.PrimaryKey {
			parts = append(parts, "PRIMARY KEY")
		}
		// Engines with a trailing identity token (SQLite) only accept it
		// directly after PRIMARY KEY.
		if b.autoIncrement != "" && b.tokenAfterPK && c.PrimaryKey {
			parts = append(parts, b.autoIncrement)
		}
		return strings.Join(parts, " "), nil
	}
	parts := []string{name, typ}
	if c.PrimaryKey {
		parts = append(parts, "PRIMARY KEY")
	} else if c.Nullable {
		parts = append(parts, "NULL")
	} else {
		parts = append(parts, "NOT NULL")
	}
	if c.Default != "" {
		parts = append(parts, fmt.Sprintf(b.defaultFormat, c.Default))
	}
	return strings.Join(parts, " "), nil
}

// columnType resolves the native type token for the column, applying the
// string-length and serial fast paths before falling back to the
// registry.
func (b *base) columnType(c schema.Column) (string, error) {
	if c.AutoIncrement {
		if st, ok := b.serialTypes[c.Type]; ok {
			return st, nil
		}
	}
	if c.Type == schema.TypeString {
		n := c.Length
		// Engines without an unbounded indexable string type fall back
		// to the configured default length.
		if n <= 0 && b.boundedString {
			n = b.defaultString
		}
		if n > 0 {
			return fmt.Sprintf(b.stringFormat, n), nil
		}
		return b.textType, nil
	}
	if c.Type == schema.TypeText {
		return b.textType, nil
	}
	if c.Type == schema.TypeDecimal && c.Precision > 0 {
		scale := c.Scale
		return fmt.Sprintf("%s(%d,%d)", b.decimalBase(), c.Precision, scale), nil
	}
	native, ok := b.types.Native(c.Type)
	if !ok {
		return "", dialect.NewUnsupportedTypeError(b.dialect, c.Type.String())
	}
	return native, nil
}

// decimalBase returns the registered decimal type with any fixed
// precision stripped, so caller-supplied precision and scale replace the
// provider defaults.
func (b *base) decimalBase() string {
	native, ok := b.types.Native(schema.TypeDecimal)
	if !ok {
		return "DECIMAL"
	}
	if i := strings.IndexByte(native, '('); i > 0 {
		return native[:i]
	}
	return native
}

// CreateTable assembles a full CREATE TABLE statement from the per-column
// fragments, appending a composite primary-key clause when more than one
// column is marked as key.
func (b *base) CreateTable(t *schema.Table) (string, error) {
	return b.createTable(b, t)
}

// createTable holds the shared assembly logic; the provider argument
// routes per-column rendering through dialect overrides.
func (b *base) createTable(p interface {
	ColumnDefinition(schema.Column) (string, error)
	QuoteIdent(string) string
	QuoteTable(schema.Model) string
}, t *schema.Table) (string, error) {
	if err := schema.ValidateTable(t); err != nil {
		return "", err
	}
	pk := t.PrimaryKey()
	composite := len(pk) > 1
	defs := make([]string, 0, len(t.Columns)+1)
	for _, c := range t.Columns {
		if composite {
			// Key columns render without the inline PRIMARY KEY token;
			// the table-level constraint names them instead.
			c.PrimaryKey = false
		}
		def, err := p.ColumnDefinition(c)
		if err != nil {
			return "", err
		}
		defs = append(defs, def)
	}
	if composite {
		quoted := make([]string, len(pk))
		for i, name := range pk {
			quoted[i] = p.QuoteIdent(b.naming.ColumnName(name))
		}
		defs = append(defs, "PRIMARY KEY ("+strings.Join(quoted, ", ")+")")
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", p.QuoteTable(t.Model()), strings.Join(defs, ", ")), nil
}
