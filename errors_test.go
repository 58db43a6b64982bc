package dialect

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUnsupportedTypeError tests the error string and type check,
// including wrapped errors.
func TestUnsupportedTypeError(t *testing.T) {
	err := NewUnsupportedTypeError(Postgres, "geometry")
	assert.Equal(t, `dialect: unsupported column type "geometry" for dialect "postgres"`, err.Error())
	assert.True(t, IsUnsupportedType(err))
	assert.True(t, IsUnsupportedType(fmt.Errorf("rendering table: %w", err)))
	assert.False(t, IsUnsupportedType(nil))
	assert.False(t, IsUnsupportedType(errors.New("other")))
	assert.False(t, IsMalformedSchema(err))
}

// TestMalformedSchemaError tests the error string variants for the
// table/column combinations.
func TestMalformedSchemaError(t *testing.T) {
	tests := []struct {
		name          string
		table, column string
		want          string
	}{
		{"table_and_column", "users", "id", "dialect: malformed schema: users.id: boom"},
		{"column_only", "", "id", "dialect: malformed schema: column id: boom"},
		{"table_only", "users", "", "dialect: malformed schema: table users: boom"},
		{"message_only", "", "", "dialect: malformed schema: boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewMalformedSchemaError(tt.table, tt.column, "boom")
			assert.Equal(t, tt.want, err.Error())
			assert.True(t, IsMalformedSchema(err))
		})
	}

	err := NewMalformedSchemaError("users", "id", "boom")
	require.True(t, IsMalformedSchema(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, IsMalformedSchema(nil))
	assert.False(t, IsUnsupportedType(err))
}
