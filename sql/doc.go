// Package sql implements the dialect providers that translate the
// canonical schema model into engine-specific SQL text.
//
// A [Provider] is constructed once per process and reused; it is
// immutable after construction and safe for concurrent use. Three
// engines are built in:
//
//	p := sql.NewPostgres()
//	p := sql.NewMySQL()
//	p := sql.NewSQLite()
//
// # DDL generation
//
// Column fragments and full statements render from the schema model:
//
//	def, err := p.ColumnDefinition(schema.Column{
//	    Name: "id", Type: schema.TypeInt64,
//	    PrimaryKey: true, AutoIncrement: true,
//	})
//	// "id" BIGSERIAL PRIMARY KEY
//
//	stmt := p.DropTable(schema.Model{Name: "users"})
//	// DROP TABLE "users" CASCADE
//
// # Expression compilation
//
// Predicates compile to parameterized SQL through a dialect-bound
// visitor; one visitor compiles one expression:
//
//	query, args, err := p.Visitor().Compile(
//	    sql.And(sql.EQ("name", "a8m"), sql.GT("age", 30)),
//	)
//	// ("name" = $1 AND "age" > $2), [a8m 30]
//
// # Catalog introspection
//
// Tables and Columns stream catalog metadata lazily through iterators
// bound to the caller's connection; [Snapshot] drains them into a full
// schema description. Introspection queries always bind user-supplied
// names as parameters.
package sql
