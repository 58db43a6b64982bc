package sql

// Expr is a node of a typed predicate expression tree. Trees are built
// with the package constructors (EQ, And, In, ...) and compiled to
// parameterized SQL by a dialect-bound Visitor.
type Expr interface {
	expr()
}

// column references a named column.
type column struct {
	name string
}

// C references the column with the given name. The name is passed
// through the owning provider's naming strategy and identifier quoting
// at compile time.
func C(name string) Expr { return column{name: name} }

// value is a literal operand bound as a parameter at compile time.
type value struct {
	v any
}

// V wraps a Go value as an expression operand. Most values bind as
// parameters; []byte values render as dialect binary literals.
func V(v any) Expr { return value{v: v} }

// binary is an infix comparison between two operands.
type binary struct {
	op   string
	l, r Expr
}

// EQ returns the predicate col = v.
func EQ(col string, v any) Expr { return binary{op: "=", l: C(col), r: V(v)} }

// NEQ returns the predicate col <> v.
func NEQ(col string, v any) Expr { return binary{op: "<>", l: C(col), r: V(v)} }

// GT returns the predicate col > v.
func GT(col string, v any) Expr { return binary{op: ">", l: C(col), r: V(v)} }

// GTE returns the predicate col >= v.
func GTE(col string, v any) Expr { return binary{op: ">=", l: C(col), r: V(v)} }

// LT returns the predicate col < v.
func LT(col string, v any) Expr { return binary{op: "<", l: C(col), r: V(v)} }

// LTE returns the predicate col <= v.
func LTE(col string, v any) Expr { return binary{op: "<=", l: C(col), r: V(v)} }

// like matches col against a pattern built from the value at compile
// time.
type like struct {
	col    string
	v      string
	prefix bool // pattern starts with %
	suffix bool // pattern ends with %
}

// Like returns the predicate col LIKE pattern, with the pattern bound as
// given.
func Like(col, pattern string) Expr { return like{col: col, v: pattern} }

// Contains matches columns containing the substring v.
func Contains(col, v string) Expr { return like{col: col, v: v, prefix: true, suffix: true} }

// HasPrefix matches columns starting with v.
func HasPrefix(col, v string) Expr { return like{col: col, v: v, suffix: true} }

// HasSuffix matches columns ending with v.
func HasSuffix(col, v string) Expr { return like{col: col, v: v, prefix: true} }

// in matches col against a set of values.
type in struct {
	col string
	vs  []any
	neg bool
}

// In returns the predicate col IN (vs...). An empty value list compiles
// to FALSE.
func In(col string, vs ...any) Expr { return in{col: col, vs: vs} }

// NotIn returns the predicate col NOT IN (vs...). An empty value list
// compiles to TRUE.
func NotIn(col string, vs ...any) Expr { return in{col: col, vs: vs, neg: true} }

// null tests col for NULL.
type null struct {
	col string
	neg bool
}

// IsNull returns the predicate col IS NULL.
func IsNull(col string) Expr { return null{col: col} }

// NotNull returns the predicate col IS NOT NULL.
func NotNull(col string) Expr { return null{col: col, neg: true} }

// nary is a logical conjunction or disjunction.
type nary struct {
	op    string
	preds []Expr
}

// And groups predicates with AND. A single predicate passes through
// ungrouped.
func And(preds ...Expr) Expr { return nary{op: "AND", preds: preds} }

// Or groups predicates with OR.
func Or(preds ...Expr) Expr { return nary{op: "OR", preds: preds} }

// not negates a predicate.
type not struct {
	p Expr
}

// Not negates the given predicate.
func Not(p Expr) Expr { return not{p: p} }

func (column) expr() {}
func (value) expr()  {}
func (binary) expr() {}
func (like) expr()   {}
func (in) expr()     {}
func (null) expr()   {}
func (nary) expr()   {}
func (not) expr()    {}
