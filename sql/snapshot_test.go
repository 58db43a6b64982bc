package sql

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/dialect"
	"github.com/syssam/dialect/schema"
)

// TestSnapshot tests draining the catalog into a fully-resolved table
// list over a single connection.
func TestSnapshot(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	p := NewPostgres()
	drv := OpenDB(dialect.Postgres, db)

	mock.ExpectQuery("SELECT table_name FROM information_schema.tables").
		WithArgs("public").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).
			AddRow("users").
			AddRow("posts"))

	colHeader := []string{"column_name", "data_type", "is_nullable", "character_maximum_length"}
	// Tables resolve in sorted order.
	mock.ExpectQuery("SELECT column_name, data_type").
		WithArgs("public", "posts").
		WillReturnRows(sqlmock.NewRows(colHeader).
			AddRow("id", "bigint", "NO", nil).
			AddRow("title", "character varying", "NO", 200))
	mock.ExpectQuery("SELECT column_name, data_type").
		WithArgs("public", "users").
		WillReturnRows(sqlmock.NewRows(colHeader).
			AddRow("id", "bigint", "NO", nil))

	tables, err := Snapshot(context.Background(), p, drv, "")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	require.Len(t, tables, 2)
	assert.Equal(t, "posts", tables[0].Name)
	assert.Equal(t, "public", tables[0].Schema)
	require.Len(t, tables[0].Columns, 2)
	assert.Equal(t, schema.Column{Name: "title", Type: schema.TypeString, Length: 200}, tables[0].Columns[1])
	assert.Equal(t, "users", tables[1].Name)
	require.Len(t, tables[1].Columns, 1)
}

// TestSnapshotPropagatesErrors tests that a failing catalog query aborts
// the snapshot.
func TestSnapshotPropagatesErrors(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	p := NewPostgres()
	drv := OpenDB(dialect.Postgres, db)

	t.Run("tables_query", func(t *testing.T) {
		mock.ExpectQuery("SELECT table_name FROM information_schema.tables").
			WillReturnError(errors.New("permission denied"))

		_, err := Snapshot(context.Background(), p, drv, "")
		require.Error(t, err)
	})

	t.Run("columns_query", func(t *testing.T) {
		mock.ExpectQuery("SELECT table_name FROM information_schema.tables").
			WithArgs("public").
			WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("users"))
		mock.ExpectQuery("SELECT column_name, data_type").
			WillReturnError(errors.New("permission denied"))

		_, err := Snapshot(context.Background(), p, drv, "")
		require.Error(t, err)
	})
}
