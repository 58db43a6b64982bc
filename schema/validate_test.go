package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/dialect"
)

// TestValidateColumn tests the per-column invariants.
func TestValidateColumn(t *testing.T) {
	tests := []struct {
		name    string
		column  Column
		wantErr bool
	}{
		{"valid", Column{Name: "id", Type: TypeInt64}, false},
		{"valid_bounded_string", Column{Name: "name", Type: TypeString, Length: 100}, false},
		{"valid_auto_increment", Column{Name: "id", Type: TypeInt, AutoIncrement: true}, false},
		{"no_name", Column{Type: TypeInt}, true},
		{"quote_in_name", Column{Name: `na"me`, Type: TypeInt}, true},
		{"backtick_in_name", Column{Name: "na`me", Type: TypeInt}, true},
		{"nul_in_name", Column{Name: "na\x00me", Type: TypeInt}, true},
		{"unknown_type", Column{Name: "c", Type: Type("json")}, true},
		{"auto_increment_on_string", Column{Name: "c", Type: TypeString, AutoIncrement: true}, true},
		{"length_on_integer", Column{Name: "c", Type: TypeInt, Length: 10}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateColumn("users", tt.column)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, dialect.IsMalformedSchema(err))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

// TestValidateTable tests the table-level invariants and column error
// propagation.
func TestValidateTable(t *testing.T) {
	valid := func() *Table {
		return &Table{
			Name:    "users",
			Columns: []Column{{Name: "id", Type: TypeInt64, PrimaryKey: true}},
		}
	}

	t.Run("valid", func(t *testing.T) {
		require.NoError(t, ValidateTable(valid()))
	})

	t.Run("no_name", func(t *testing.T) {
		tab := valid()
		tab.Name = ""
		err := ValidateTable(tab)
		require.Error(t, err)
		assert.True(t, dialect.IsMalformedSchema(err))
	})

	t.Run("unquotable_name", func(t *testing.T) {
		tab := valid()
		tab.Name = `users"; drop`
		require.Error(t, ValidateTable(tab))
	})

	t.Run("unquotable_schema", func(t *testing.T) {
		tab := valid()
		tab.Schema = `app"`
		require.Error(t, ValidateTable(tab))
	})

	t.Run("dotted_schema_allowed", func(t *testing.T) {
		tab := valid()
		tab.Schema = "a.b"
		require.NoError(t, ValidateTable(tab))
	})

	t.Run("no_columns", func(t *testing.T) {
		tab := valid()
		tab.Columns = nil
		require.Error(t, ValidateTable(tab))
	})

	t.Run("column_error_carries_table", func(t *testing.T) {
		tab := valid()
		tab.Columns = append(tab.Columns, Column{Name: "bio", Type: TypeString, AutoIncrement: true})
		err := ValidateTable(tab)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "users")
		assert.Contains(t, err.Error(), "bio")
	})
}
