package sql

import (
	"fmt"
	"strings"
)

// Visitor compiles one typed expression tree into dialect-correct SQL
// text plus the ordered parameter values to bind when executing it. A
// visitor is bound to a single provider for quoting and placeholder
// rules and holds no state beyond one compilation pass: one instance
// compiles one expression, and independent expressions take separate
// instances.
type Visitor struct {
	p    Provider
	sb   strings.Builder
	args []any
	used bool
	err  error
}

// NewVisitor returns a visitor bound to the given provider.
func NewVisitor(p Provider) *Visitor {
	return &Visitor{p: p}
}

// Compile walks the expression tree and returns the SQL fragment and
// its parameter bindings. Executing the text with those values against
// the originating connection reproduces the expression's semantics.
func (v *Visitor) Compile(e Expr) (string, []any, error) {
	if v.used {
		return "", nil, fmt.Errorf("dialect/sql: visitor already consumed; use a new visitor per expression")
	}
	v.used = true
	if e == nil {
		return "", nil, fmt.Errorf("dialect/sql: cannot compile a nil expression")
	}
	v.visit(e)
	if v.err != nil {
		return "", nil, v.err
	}
	return v.sb.String(), v.args, nil
}

func (v *Visitor) visit(e Expr) {
	if v.err != nil {
		return
	}
	switch e := e.(type) {
	case column:
		v.sb.WriteString(v.ident(e.name))
	case value:
		v.operand(e.v)
	case binary:
		v.binary(e)
	case like:
		v.like(e)
	case in:
		v.in(e)
	case null:
		v.null(e)
	case nary:
		v.nary(e)
	case not:
		v.sb.WriteString("NOT (")
		v.visit(e.p)
		v.sb.WriteString(")")
	default:
		v.err = fmt.Errorf("dialect/sql: unknown expression node %T", e)
	}
}

func (v *Visitor) binary(e binary) {
	// Comparison against a nil operand degrades to a NULL test; engines
	// never match NULL with = or <>.
	if r, ok := e.r.(value); ok && r.v == nil {
		switch e.op {
		case "=":
			v.visit(e.l)
			v.sb.WriteString(" IS NULL")
			return
		case "<>":
			v.visit(e.l)
			v.sb.WriteString(" IS NOT NULL")
			return
		}
	}
	v.visit(e.l)
	v.sb.WriteString(" " + e.op + " ")
	v.visit(e.r)
}

func (v *Visitor) like(e like) {
	pattern := e.v
	if e.prefix {
		pattern = "%" + pattern
	}
	if e.suffix {
		pattern += "%"
	}
	v.sb.WriteString(v.ident(e.col))
	v.sb.WriteString(" LIKE ")
	v.operand(pattern)
}

func (v *Visitor) in(e in) {
	// IN over the empty set is vacuously false, NOT IN vacuously true.
	if len(e.vs) == 0 {
		if e.neg {
			v.sb.WriteString("TRUE")
		} else {
			v.sb.WriteString("FALSE")
		}
		return
	}
	v.sb.WriteString(v.ident(e.col))
	if e.neg {
		v.sb.WriteString(" NOT IN (")
	} else {
		v.sb.WriteString(" IN (")
	}
	for i, val := range e.vs {
		if i > 0 {
			v.sb.WriteString(", ")
		}
		v.operand(val)
	}
	v.sb.WriteString(")")
}

func (v *Visitor) null(e null) {
	v.sb.WriteString(v.ident(e.col))
	if e.neg {
		v.sb.WriteString(" IS NOT NULL")
	} else {
		v.sb.WriteString(" IS NULL")
	}
}

func (v *Visitor) nary(e nary) {
	switch len(e.preds) {
	case 0:
		v.err = fmt.Errorf("dialect/sql: empty %s expression", e.op)
	case 1:
		v.visit(e.preds[0])
	default:
		v.sb.WriteString("(")
		for i, p := range e.preds {
			if i > 0 {
				v.sb.WriteString(" " + e.op + " ")
			}
			v.visit(p)
		}
		v.sb.WriteString(")")
	}
}

// operand emits a single value operand. Binary data renders inline as a
// dialect literal; everything else binds as an ordered parameter.
func (v *Visitor) operand(val any) {
	if b, ok := val.([]byte); ok {
		v.sb.WriteString(v.p.BinaryLiteral(b))
		return
	}
	v.args = append(v.args, v.p.BindValue(val))
	v.sb.WriteString(v.p.Placeholder(len(v.args)))
}

// ident quotes a column reference through the provider's naming strategy.
func (v *Visitor) ident(name string) string {
	return v.p.QuoteIdent(v.p.Naming().ColumnName(name))
}
