package dialect

import "context"

// Dialect names recognized by the sql sub-package.
const (
	Postgres = "postgres"
	MySQL    = "mysql"
	SQLite   = "sqlite"
)

// ExecQuerier wraps the database operations the SQL-generation layer
// depends on. It is implemented by both Driver and Tx.
type ExecQuerier interface {
	// Exec executes a query that does not return records. For example, in
	// SQL, INSERT or UPDATE. It scans the result into the pointer v for
	// SQL drivers, v should be a *sql.Result.
	Exec(ctx context.Context, query string, args, v any) error
	// Query executes a query that returns rows, typically a SELECT in SQL.
	// It scans the result into the pointer v. For SQL drivers, v should be
	// a *sql.Rows.
	Query(ctx context.Context, query string, args, v any) error
}

// Driver is the driver-level connection handle returned by a dialect
// provider. The provider never closes a Driver it did not open itself;
// connection lifecycle belongs to the caller.
type Driver interface {
	ExecQuerier
	// Tx starts and returns a new transaction.
	Tx(context.Context) (Tx, error)
	// Close closes the underlying connection.
	Close() error
	// Dialect returns the dialect name of the driver.
	Dialect() string
}

// Tx wraps transactional operations on top of ExecQuerier.
type Tx interface {
	ExecQuerier
	// Commit commits the transaction.
	Commit() error
	// Rollback discards the transaction.
	Rollback() error
}
