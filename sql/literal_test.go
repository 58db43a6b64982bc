package sql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestToBinary tests the octal escaping rules: printable ASCII passes
// through except quote and backslash, everything else renders as a
// three-digit octal escape.
func TestToBinary(t *testing.T) {
	p := NewPostgres()
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{"printable", []byte("Alice"), "Alice"},
		{"space_and_tilde", []byte{0x20, 0x7e}, " ~"},
		{"null_byte", []byte{0x00}, `\000`},
		{"quote", []byte{0x27}, `\047`},
		{"backslash", []byte{0x5c}, `\134`},
		{"delete", []byte{0x7f}, `\177`},
		{"high_byte", []byte{0xff}, `\377`},
		{"mixed", []byte("Mo\x00se"), `Mo\000se`},
		{"empty", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.ToBinary(tt.input))
		})
	}
}

// TestBinaryLiteral tests the complete binary literal forms per dialect.
func TestBinaryLiteral(t *testing.T) {
	data := []byte{0x0a, 0x41, 0xff}

	t.Run("postgres_bytea", func(t *testing.T) {
		// The escape backslashes double inside the E'' string.
		assert.Equal(t, `E'\\012A\\377'::bytea`, NewPostgres().BinaryLiteral(data))
	})
	t.Run("mysql_hex", func(t *testing.T) {
		assert.Equal(t, "X'0A41FF'", NewMySQL().BinaryLiteral(data))
	})
	t.Run("sqlite_hex", func(t *testing.T) {
		assert.Equal(t, "X'0A41FF'", NewSQLite().BinaryLiteral(data))
	})
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "X''", NewMySQL().BinaryLiteral(nil))
	})
}
