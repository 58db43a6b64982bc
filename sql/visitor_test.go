package sql

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestVisitorPostgres tests expression compilation against the
// positional-placeholder dialect.
func TestVisitorPostgres(t *testing.T) {
	p := NewPostgres()
	tests := []struct {
		name     string
		expr     Expr
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "equality",
			expr:     EQ("name", "Alice"),
			wantSQL:  `"name" = $1`,
			wantArgs: []any{"Alice"},
		},
		{
			name:     "folded_column_name",
			expr:     EQ("Name", "Alice"),
			wantSQL:  `"name" = $1`,
			wantArgs: []any{"Alice"},
		},
		{
			name:     "ordered_placeholders",
			expr:     And(GT("age", 21), LTE("age", 65)),
			wantSQL:  `("age" > $1 AND "age" <= $2)`,
			wantArgs: []any{21, 65},
		},
		{
			name:     "single_predicate_passthrough",
			expr:     And(NEQ("status", "closed")),
			wantSQL:  `"status" <> $1`,
			wantArgs: []any{"closed"},
		},
		{
			name:     "nested_grouping",
			expr:     Or(EQ("a", 1), And(EQ("b", 2), EQ("c", 3))),
			wantSQL:  `("a" = $1 OR ("b" = $2 AND "c" = $3))`,
			wantArgs: []any{1, 2, 3},
		},
		{
			name:     "negation",
			expr:     Not(EQ("deleted", true)),
			wantSQL:  `NOT ("deleted" = $1)`,
			wantArgs: []any{true},
		},
		{
			name:     "in_set",
			expr:     In("status", "open", "pending"),
			wantSQL:  `"status" IN ($1, $2)`,
			wantArgs: []any{"open", "pending"},
		},
		{
			name:    "empty_in_is_false",
			expr:    In("status"),
			wantSQL: "FALSE",
		},
		{
			name:    "empty_not_in_is_true",
			expr:    NotIn("status"),
			wantSQL: "TRUE",
		},
		{
			name:     "like_contains",
			expr:     Contains("name", "li"),
			wantSQL:  `"name" LIKE $1`,
			wantArgs: []any{"%li%"},
		},
		{
			name:     "like_prefix",
			expr:     HasPrefix("name", "Al"),
			wantSQL:  `"name" LIKE $1`,
			wantArgs: []any{"Al%"},
		},
		{
			name:     "like_suffix",
			expr:     HasSuffix("name", "ce"),
			wantSQL:  `"name" LIKE $1`,
			wantArgs: []any{"%ce"},
		},
		{
			name:    "is_null",
			expr:    IsNull("deleted_at"),
			wantSQL: `"deleted_at" IS NULL`,
		},
		{
			name:    "not_null",
			expr:    NotNull("deleted_at"),
			wantSQL: `"deleted_at" IS NOT NULL`,
		},
		{
			name:    "nil_equality_degrades",
			expr:    EQ("deleted_at", nil),
			wantSQL: `"deleted_at" IS NULL`,
		},
		{
			name:    "nil_inequality_degrades",
			expr:    NEQ("deleted_at", nil),
			wantSQL: `"deleted_at" IS NOT NULL`,
		},
		{
			name:    "binary_operand_inlines",
			expr:    EQ("digest", []byte{0x00, 0x41}),
			wantSQL: `"digest" = E'\\000A'::bytea`,
		},
		{
			name:     "binary_among_parameters",
			expr:     And(EQ("id", 7), EQ("digest", []byte("A"))),
			wantSQL:  `("id" = $1 AND "digest" = E'A'::bytea)`,
			wantArgs: []any{7},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := p.Visitor().Compile(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, sql)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

// TestVisitorMySQL tests the anonymous-placeholder dialect and UUID
// parameter normalization.
func TestVisitorMySQL(t *testing.T) {
	p := NewMySQL()

	t.Run("placeholders", func(t *testing.T) {
		sql, args, err := p.Visitor().Compile(And(EQ("a", 1), EQ("b", 2)))
		require.NoError(t, err)
		assert.Equal(t, "(`a` = ? AND `b` = ?)", sql)
		assert.Equal(t, []any{1, 2}, args)
	})

	t.Run("uuid_binds_as_text", func(t *testing.T) {
		id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
		sql, args, err := p.Visitor().Compile(EQ("ref", id))
		require.NoError(t, err)
		assert.Equal(t, "`ref` = ?", sql)
		assert.Equal(t, []any{id.String()}, args)
	})

	t.Run("binary_inlines_as_hex", func(t *testing.T) {
		sql, args, err := p.Visitor().Compile(EQ("digest", []byte{0xde, 0xad}))
		require.NoError(t, err)
		assert.Equal(t, "`digest` = X'DEAD'", sql)
		assert.Empty(t, args)
	})
}

// TestVisitorErrors tests the single-use guard and malformed trees.
func TestVisitorErrors(t *testing.T) {
	p := NewPostgres()

	t.Run("single_use", func(t *testing.T) {
		v := p.Visitor()
		_, _, err := v.Compile(EQ("a", 1))
		require.NoError(t, err)
		_, _, err = v.Compile(EQ("a", 1))
		require.Error(t, err)
	})

	t.Run("nil_expression", func(t *testing.T) {
		_, _, err := p.Visitor().Compile(nil)
		require.Error(t, err)
	})

	t.Run("empty_conjunction", func(t *testing.T) {
		_, _, err := p.Visitor().Compile(And())
		require.Error(t, err)
	})

	t.Run("empty_disjunction", func(t *testing.T) {
		_, _, err := p.Visitor().Compile(Or())
		require.Error(t, err)
	})
}
