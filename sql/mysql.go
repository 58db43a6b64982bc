package sql

import (
	"context"

	_ "github.com/go-sql-driver/mysql" // registers the "mysql" driver

	"github.com/syssam/dialect"
	"github.com/syssam/dialect/schema"
)

// MySQL is the MySQL/MariaDB dialect provider: backtick quoting,
// question-mark placeholders, AUTO_INCREMENT identity columns, and no
// cascading drop.
type MySQL struct {
	base
}

// NewMySQL returns a MySQL provider.
func NewMySQL(opts ...Option) *MySQL {
	p := &MySQL{base: base{
		dialect:        dialect.MySQL,
		driverName:     "mysql",
		quote:          '`',
		stringFormat:   "VARCHAR(%d)",
		textType:       "LONGTEXT",
		defaultString:  255,
		boundedString:  true,
		autoIncrement:  "AUTO_INCREMENT",
		defaultFormat:  "DEFAULT %s",
		datePartFormat: "EXTRACT(%s FROM %s)",
		selectIdentity: "SELECT LAST_INSERT_ID()",
		existsQuery: "SELECT COUNT(*) FROM information_schema.tables " +
			"WHERE table_schema = DATABASE() AND table_name = ?",
		// NULLIF falls back to the connection's current database when no
		// schema is configured.
		tablesQuery: "SELECT table_name FROM information_schema.tables " +
			"WHERE table_schema = COALESCE(NULLIF(?, ''), DATABASE()) " +
			"AND table_type = 'BASE TABLE' ORDER BY table_name",
		columnsQuery: "SELECT column_name, data_type, is_nullable, character_maximum_length " +
			"FROM information_schema.columns " +
			"WHERE table_schema = COALESCE(NULLIF(?, ''), DATABASE()) AND table_name = ? " +
			"ORDER BY ordinal_position",
		types: schema.NewTypeMap(map[schema.Type]string{
			schema.TypeInt:      "INT",
			schema.TypeInt64:    "BIGINT",
			schema.TypeBool:     "TINYINT(1)",
			schema.TypeFloat64:  "DOUBLE",
			schema.TypeDecimal:  "DECIMAL(38,6)",
			schema.TypeDateTime: "DATETIME",
			schema.TypeDate:     "DATE",
			schema.TypeTime:     "TIME",
			schema.TypeUUID:     "CHAR(36)",
			schema.TypeBytes:    "LONGBLOB",
		}),
		naming: schema.SameNaming{},
	}}
	for _, opt := range opts {
		opt(&p.base)
	}
	return p
}

// Columns streams the column metadata of the named table from
// information_schema.
func (p *MySQL) Columns(ctx context.Context, conn dialect.ExecQuerier, table, schemaName string) (*ColumnIterator, error) {
	return p.columns(p, ctx, conn, table, schemaName)
}

// ColumnType maps a MySQL catalog type name to its canonical tag.
func (p *MySQL) ColumnType(native string) schema.Type {
	switch baseTypeName(native) {
	case "tinyint", "bit":
		return schema.TypeBool
	case "smallint", "mediumint", "int", "integer":
		return schema.TypeInt
	case "bigint":
		return schema.TypeInt64
	case "float", "double", "real":
		return schema.TypeFloat64
	case "decimal", "numeric":
		return schema.TypeDecimal
	case "varchar", "char":
		return schema.TypeString
	case "date":
		return schema.TypeDate
	case "time":
		return schema.TypeTime
	case "datetime", "timestamp":
		return schema.TypeDateTime
	case "blob", "tinyblob", "mediumblob", "longblob", "binary", "varbinary":
		return schema.TypeBytes
	default:
		return schema.TypeText
	}
}

// Visitor returns a fresh expression compiler bound to this provider.
func (p *MySQL) Visitor() *Visitor { return NewVisitor(p) }

var _ Provider = (*MySQL)(nil)
