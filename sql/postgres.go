package sql

import (
	"context"
	"strings"

	_ "github.com/lib/pq" // registers the "postgres" driver

	"github.com/syssam/dialect"
	"github.com/syssam/dialect/schema"
)

// Postgres is the PostgreSQL dialect provider. Unquoted identifiers fold
// to lower case, bound parameters are positional ($1, $2, ...), and
// binary literals use the octal-escaped bytea form.
type Postgres struct {
	base
}

// NewPostgres returns a PostgreSQL provider. The returned provider is
// immutable and safe for concurrent use.
func NewPostgres(opts ...Option) *Postgres {
	p := &Postgres{base: base{
		dialect:       dialect.Postgres,
		driverName:    "postgres",
		quote:         '"',
		paramPrefix:   "$",
		stringFormat:  "CHARACTER VARYING(%d)",
		textType:      "TEXT",
		defaultString: 255,
		serialTypes: map[schema.Type]string{
			schema.TypeInt:   "SERIAL",
			schema.TypeInt64: "BIGSERIAL",
		},
		defaultFormat:  "DEFAULT %s",
		dropCascade:    true,
		datePartFormat: "date_part('%s', %s)",
		selectIdentity: "SELECT lastval()",
		nativeUUID:     true,
		defaultSchema:  "public",
		existsQuery: "SELECT COUNT(*) FROM pg_catalog.pg_class c " +
			"JOIN pg_catalog.pg_namespace n ON n.oid = c.relnamespace " +
			"WHERE c.relkind = 'r' AND c.relname = $1",
		tablesQuery: "SELECT table_name FROM information_schema.tables " +
			"WHERE table_schema = $1 AND table_type = 'BASE TABLE' ORDER BY table_name",
		columnsQuery: "SELECT column_name, data_type, is_nullable, character_maximum_length " +
			"FROM information_schema.columns WHERE table_schema = $1 AND table_name = $2 " +
			"ORDER BY ordinal_position",
		types: schema.NewTypeMap(map[schema.Type]string{
			schema.TypeInt:      "INTEGER",
			schema.TypeInt64:    "BIGINT",
			schema.TypeBool:     "BOOLEAN",
			schema.TypeFloat64:  "DOUBLE PRECISION",
			schema.TypeDecimal:  "NUMERIC(38,6)",
			schema.TypeDateTime: "TIMESTAMP",
			schema.TypeDate:     "DATE",
			schema.TypeTime:     "TIME",
			schema.TypeUUID:     "UUID",
			schema.TypeBytes:    "BYTEA",
		}),
		naming: schema.LowercaseNaming{},
	}}
	for _, opt := range opts {
		opt(&p.base)
	}
	return p
}

// BinaryLiteral renders raw bytes as an escape-string bytea literal.
// Each escape backslash produced by ToBinary doubles inside the E''
// string so the server sees the octal sequences intact.
func (p *Postgres) BinaryLiteral(data []byte) string {
	return "E'" + strings.ReplaceAll(p.ToBinary(data), `\`, `\\`) + "'::bytea"
}

// Columns streams the column metadata of the named table from
// information_schema.
func (p *Postgres) Columns(ctx context.Context, conn dialect.ExecQuerier, table, schemaName string) (*ColumnIterator, error) {
	return p.columns(p, ctx, conn, table, schemaName)
}

// ColumnType maps a PostgreSQL catalog type name to its canonical tag.
func (p *Postgres) ColumnType(native string) schema.Type {
	switch baseTypeName(native) {
	case "smallint", "int2", "integer", "int", "int4", "serial":
		return schema.TypeInt
	case "bigint", "int8", "bigserial":
		return schema.TypeInt64
	case "boolean", "bool":
		return schema.TypeBool
	case "real", "float4", "double precision", "float8":
		return schema.TypeFloat64
	case "numeric", "decimal", "money":
		return schema.TypeDecimal
	case "character varying", "varchar", "character", "char":
		return schema.TypeString
	case "date":
		return schema.TypeDate
	case "time", "time without time zone", "time with time zone":
		return schema.TypeTime
	case "timestamp", "timestamp without time zone", "timestamp with time zone", "timestamptz":
		return schema.TypeDateTime
	case "uuid":
		return schema.TypeUUID
	case "bytea":
		return schema.TypeBytes
	default:
		return schema.TypeText
	}
}

// Visitor returns a fresh expression compiler bound to this provider.
func (p *Postgres) Visitor() *Visitor { return NewVisitor(p) }

// baseTypeName strips any length or precision suffix from a native
// catalog type name, e.g. "varchar(255)" to "varchar".
func baseTypeName(native string) string {
	native = strings.ToLower(strings.TrimSpace(native))
	if i := strings.IndexByte(native, '('); i > 0 {
		native = strings.TrimSpace(native[:i])
	}
	return native
}

var _ Provider = (*Postgres)(nil)
