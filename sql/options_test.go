package sql

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/dialect/schema"
)

// TestLoadOptions tests reading provider configuration from a YAML file
// and applying it at construction time.
func TestLoadOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dialect.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"default_string_length: 64\n"+
			"default_schema: app\n"+
			"naming: snake\n"), 0600))

	o, err := LoadOptions(path)
	require.NoError(t, err)
	assert.Equal(t, 64, o.DefaultStringLength)
	assert.Equal(t, "app", o.DefaultSchema)
	assert.Equal(t, "snake", o.Naming)

	opts, err := o.Apply()
	require.NoError(t, err)
	p := NewMySQL(opts...)

	def, err := p.ColumnDefinition(schema.Column{Name: "FirstName", Type: schema.TypeString})
	require.NoError(t, err)
	assert.Equal(t, "`first_name` VARCHAR(64) NOT NULL", def)
	assert.Equal(t, "`order_items`", p.QuoteTable(schema.Model{Name: "OrderItem"}))
}

// TestLoadOptionsErrors tests error reporting for missing files, broken
// YAML and unknown naming strategies.
func TestLoadOptionsErrors(t *testing.T) {
	t.Run("missing_file", func(t *testing.T) {
		_, err := LoadOptions(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("broken_yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.yaml")
		require.NoError(t, os.WriteFile(path, []byte("naming: [unterminated"), 0600))
		_, err := LoadOptions(path)
		require.Error(t, err)
	})

	t.Run("unknown_naming", func(t *testing.T) {
		o := &Options{Naming: "camel"}
		_, err := o.Apply()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "camel")
	})
}

// TestOptionsDefaults tests that zero-valued options leave the provider
// untouched.
func TestOptionsDefaults(t *testing.T) {
	o := &Options{}
	opts, err := o.Apply()
	require.NoError(t, err)
	assert.Empty(t, opts)

	p := NewPostgres(opts...)
	assert.IsType(t, schema.LowercaseNaming{}, p.Naming())
}
