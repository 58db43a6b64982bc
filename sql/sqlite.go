package sql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/syssam/dialect"
	"github.com/syssam/dialect/schema"
)

// SQLite is the SQLite dialect provider. The engine has no schemas, no
// cascading drop, and exposes its catalog through sqlite_master and the
// table_info pragma rather than information_schema.
type SQLite struct {
	base
}

// NewSQLite returns a SQLite provider.
func NewSQLite(opts ...Option) *SQLite {
	p := &SQLite{base: base{
		dialect:       dialect.SQLite,
		driverName:    "sqlite",
		quote:         '"',
		stringFormat:  "VARCHAR(%d)",
		textType:      "TEXT",
		defaultString: 255,
		serialTypes: map[schema.Type]string{
			schema.TypeInt:   "INTEGER",
			schema.TypeInt64: "INTEGER",
		},
		autoIncrement:  "AUTOINCREMENT",
		tokenAfterPK:   true,
		defaultFormat:  "DEFAULT %s",
		selectIdentity: "SELECT last_insert_rowid()",
		existsQuery: "SELECT COUNT(*) FROM sqlite_master " +
			"WHERE type = 'table' AND name = ?",
		types: schema.NewTypeMap(map[schema.Type]string{
			schema.TypeInt:      "INTEGER",
			schema.TypeInt64:    "INTEGER",
			schema.TypeBool:     "INTEGER",
			schema.TypeFloat64:  "REAL",
			schema.TypeDecimal:  "NUMERIC",
			schema.TypeDateTime: "DATETIME",
			schema.TypeDate:     "DATE",
			schema.TypeTime:     "TIME",
			schema.TypeUUID:     "TEXT",
			schema.TypeBytes:    "BLOB",
		}),
		naming: schema.SameNaming{},
	}}
	for _, opt := range opts {
		opt(&p.base)
	}
	return p
}

// datePartCodes maps lower-cased date-part names to strftime format
// codes.
var datePartCodes = map[string]string{
	"year":   "%Y",
	"month":  "%m",
	"day":    "%d",
	"hour":   "%H",
	"minute": "%M",
	"second": "%S",
}

// DatePart renders date-part extraction through strftime, cast back to
// an integer. Unknown part names fall back to strftime's %Y.
func (p *SQLite) DatePart(part, expr string) string {
	code, ok := datePartCodes[strings.ToLower(part)]
	if !ok {
		code = "%Y"
	}
	return fmt.Sprintf("CAST(strftime('%s', %s) AS INTEGER)", code, expr)
}

// Tables streams the user tables recorded in sqlite_master. SQLite has
// no schemas; the schemaName argument is ignored.
func (p *SQLite) Tables(ctx context.Context, conn dialect.ExecQuerier, schemaName string) (*TableIterator, error) {
	rows := &Rows{}
	query := "SELECT name FROM sqlite_master " +
		"WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name"
	if err := conn.Query(ctx, query, []any{}, rows); err != nil {
		return nil, err
	}
	return &TableIterator{rows: rows}, nil
}

// Columns streams the column metadata reported by the table_info pragma.
// PRAGMA arguments cannot be bound, so the table name goes through the
// identifier quoting path instead.
func (p *SQLite) Columns(ctx context.Context, conn dialect.ExecQuerier, table, schemaName string) (*ColumnIterator, error) {
	rows := &Rows{}
	query := fmt.Sprintf("PRAGMA table_info(%s)", p.QuoteIdent(table))
	if err := conn.Query(ctx, query, []any{}, rows); err != nil {
		return nil, err
	}
	return &ColumnIterator{rows: rows, scan: p.scanPragmaColumn}, nil
}

// scanPragmaColumn adapts the table_info row shape: cid, name, type,
// notnull, dflt_value, pk.
func (p *SQLite) scanPragmaColumn(rows ColumnScanner) (schema.Column, error) {
	var (
		cid      int
		name     string
		dataType string
		notNull  int
		dflt     sql.NullString
		pk       int
	)
	if err := rows.Scan(&cid, &name, &dataType, &notNull, &dflt, &pk); err != nil {
		return schema.Column{}, err
	}
	c := schema.Column{
		Name:       name,
		Type:       p.ColumnType(dataType),
		Nullable:   notNull == 0,
		PrimaryKey: pk > 0,
	}
	if dflt.Valid {
		c.Default = dflt.String
	}
	return c, nil
}

// ColumnType maps a SQLite declared type to its canonical tag, following
// the engine's affinity rules.
func (p *SQLite) ColumnType(native string) schema.Type {
	name := baseTypeName(native)
	switch {
	case name == "":
		return schema.TypeText
	case strings.Contains(name, "int"):
		return schema.TypeInt64
	case strings.Contains(name, "char"), strings.Contains(name, "clob"):
		return schema.TypeString
	case strings.Contains(name, "text"):
		return schema.TypeText
	case strings.Contains(name, "blob"):
		return schema.TypeBytes
	case strings.Contains(name, "real"), strings.Contains(name, "floa"), strings.Contains(name, "doub"):
		return schema.TypeFloat64
	case name == "numeric", name == "decimal":
		return schema.TypeDecimal
	case name == "boolean", name == "bool":
		return schema.TypeBool
	case name == "datetime", name == "timestamp":
		return schema.TypeDateTime
	case name == "date":
		return schema.TypeDate
	case name == "time":
		return schema.TypeTime
	default:
		return schema.TypeText
	}
}

// Visitor returns a fresh expression compiler bound to this provider.
func (p *SQLite) Visitor() *Visitor { return NewVisitor(p) }

var _ Provider = (*SQLite)(nil)
