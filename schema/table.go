package schema

// Table is the canonical description of a table: a name, an optional
// schema qualifier, and an ordered sequence of columns. Column order is
// significant and is preserved in generated DDL.
type Table struct {
	Name    string
	Schema  string // Optional schema qualifier; empty means unqualified.
	Columns []Column
}

// Model returns the generation-time view of the table.
func (t *Table) Model() Model {
	return Model{Name: t.Name, Schema: t.Schema}
}

// PrimaryKey returns the names of the primary-key columns in definition
// order.
func (t *Table) PrimaryKey() []string {
	var pk []string
	for _, c := range t.Columns {
		if c.PrimaryKey {
			pk = append(pk, c.Name)
		}
	}
	return pk
}

// Column returns the column with the given name, if any.
func (t *Table) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// Model is the fully-resolved table description used at SQL-generation
// time. It is owned by the caller; providers read it but never mutate it.
type Model struct {
	// Name is the table name before the naming strategy is applied.
	Name string
	// Schema is the schema qualifier; empty means the table is
	// unqualified.
	Schema string
}

// Qualified reports if the model carries a schema qualifier.
func (m Model) Qualified() bool { return m.Schema != "" }
