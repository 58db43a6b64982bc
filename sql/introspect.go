package sql

import (
	"context"
	"database/sql"

	"github.com/syssam/dialect"
	"github.com/syssam/dialect/schema"
)

// TableExists reports whether the named table exists in the engine's
// catalog. The name is always bound as a parameter, never concatenated
// into the query text.
func (b *base) TableExists(ctx context.Context, conn dialect.ExecQuerier, table string) (bool, error) {
	name := b.naming.TableName(schema.Model{Name: table})
	rows := &Rows{}
	if err := conn.Query(ctx, b.existsQuery, []any{name}, rows); err != nil {
		return false, err
	}
	defer rows.Close()
	var count int64
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return false, err
		}
	}
	if err := rows.Err(); err != nil {
		return false, err
	}
	return count > 0, nil
}

// Tables issues the catalog query for the tables visible in the given
// schema and returns a lazy iterator over the result. The iterator is
// finite and not restartable; regenerating it requires a fresh call.
// An empty schemaName selects the provider's default schema.
func (b *base) Tables(ctx context.Context, conn dialect.ExecQuerier, schemaName string) (*TableIterator, error) {
	if schemaName == "" {
		schemaName = b.defaultSchema
	}
	rows := &Rows{}
	if err := conn.Query(ctx, b.tablesQuery, []any{schemaName}, rows); err != nil {
		return nil, err
	}
	return &TableIterator{rows: rows, schemaName: schemaName}, nil
}

// columns issues the catalog query for the named table's columns and
// returns a lazy iterator over the result, mirroring Tables. Concrete
// providers expose it as Columns, routing native-type resolution through
// their dialect-specific ColumnType.
func (b *base) columns(p interface {
	ColumnType(string) schema.Type
}, ctx context.Context, conn dialect.ExecQuerier, table, schemaName string) (*ColumnIterator, error) {
	if schemaName == "" {
		schemaName = b.defaultSchema
	}
	name := b.naming.TableName(schema.Model{Name: table})
	rows := &Rows{}
	if err := conn.Query(ctx, b.columnsQuery, []any{schemaName, name}, rows); err != nil {
		return nil, err
	}
	return &ColumnIterator{rows: rows, scan: informationSchemaColumn(p.ColumnType)}, nil
}

// TableIterator streams table definitions from a catalog query. It
// consumes the connection's result cursor sequentially and must not be
// shared across goroutines.
type TableIterator struct {
	rows       *Rows
	schemaName string
	cur        schema.Table
	err        error
}

// Next advances to the next table. It returns false when the sequence is
// exhausted or an error occurred; consult Err afterwards.
func (it *TableIterator) Next() bool {
	if it.err != nil || !it.rows.Next() {
		return false
	}
	var name string
	if err := it.rows.Scan(&name); err != nil {
		it.err = err
		return false
	}
	it.cur = schema.Table{Name: name, Schema: it.schemaName}
	return true
}

// Table returns the current table definition.
func (it *TableIterator) Table() schema.Table { return it.cur }

// Err returns the first error encountered while iterating.
func (it *TableIterator) Err() error {
	if it.err != nil {
		return it.err
	}
	return it.rows.Err()
}

// Close releases the underlying cursor.
func (it *TableIterator) Close() error { return it.rows.Close() }

// ColumnIterator streams column definitions from a catalog query. Like
// TableIterator it owns a single cursor and is not restartable. The scan
// function adapts the engine's catalog row shape to the canonical model.
type ColumnIterator struct {
	rows *Rows
	scan func(ColumnScanner) (schema.Column, error)
	cur  schema.Column
	err  error
}

// informationSchemaColumn scans the standard information_schema.columns
// row shape: name, native type, YES/NO nullability, max length.
func informationSchemaColumn(typer func(string) schema.Type) func(ColumnScanner) (schema.Column, error) {
	return func(rows ColumnScanner) (schema.Column, error) {
		var (
			name     string
			dataType string
			nullable string
			length   sql.NullInt64
		)
		if err := rows.Scan(&name, &dataType, &nullable, &length); err != nil {
			return schema.Column{}, err
		}
		c := schema.Column{
			Name:     name,
			Type:     typer(dataType),
			Nullable: nullable == "YES",
		}
		if length.Valid {
			c.Length = int(length.Int64)
		}
		return c, nil
	}
}

// Next advances to the next column.
func (it *ColumnIterator) Next() bool {
	if it.err != nil || !it.rows.Next() {
		return false
	}
	c, err := it.scan(it.rows)
	if err != nil {
		it.err = err
		return false
	}
	it.cur = c
	return true
}

// Column returns the current column definition.
func (it *ColumnIterator) Column() schema.Column { return it.cur }

// Err returns the first error encountered while iterating.
func (it *ColumnIterator) Err() error {
	if it.err != nil {
		return it.err
	}
	return it.rows.Err()
}

// Close releases the underlying cursor.
func (it *ColumnIterator) Close() error { return it.rows.Close() }
