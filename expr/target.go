package expr

import (
	"github.com/lp-core/logicalplan/schema"
)

// Target is a named output expression of a projection or aggregation:
// an expression plus an optional alias. A target with an alias
// produces an output column named by the alias; otherwise the column
// is named by the expression's AutoName.
type Target struct {
	Expr  EvalNode
	Alias string
}

// NewTarget builds an unaliased target.
func NewTarget(e EvalNode) Target {
	return Target{Expr: e}
}

// NewAliasedTarget builds a target with an explicit output name.
func NewAliasedTarget(e EvalNode, alias string) Target {
	return Target{Expr: e, Alias: alias}
}

// HasAlias reports whether t carries an explicit alias.
func (t Target) HasAlias() bool {
	return t.Alias != ""
}

// OutputName is the alias if set, otherwise the expression's
// AutoName.
func (t Target) OutputName() string {
	if t.HasAlias() {
		return t.Alias
	}
	return t.Expr.AutoName()
}

// Clone returns an independently mutable copy of t.
func (t Target) Clone() Target {
	return Target{Expr: t.Expr.Clone(), Alias: t.Alias}
}

// TargetsToSchema builds a Schema from a target list: each target
// contributes one column, named per OutputName, typed by its
// expression's value type. The produced columns carry no qualifier —
// a target list belongs to the node that produces it, not to any
// underlying relation.
func TargetsToSchema(targets []Target) schema.Schema {
	out := make(schema.Schema, len(targets))
	for i, t := range targets {
		out[i] = schema.NewColumn("", t.OutputName(), t.Expr.Type())
	}
	return out
}

// SchemaToTargets is the reverse shape of TargetsToSchema: each
// column becomes a bare field-reference target with no alias.
func SchemaToTargets(s schema.Schema) []Target {
	out := make([]Target, len(s))
	for i, c := range s {
		out[i] = NewTarget(NewFieldRef(c))
	}
	return out
}

// StripTarget returns a deep-cloned copy of targets in which every
// field-reference target has its column's qualifier removed (local
// name preserved). Used when pushing targets across a relation
// boundary, where the qualifier no longer applies.
func StripTarget(targets []Target) []Target {
	out := make([]Target, len(targets))
	for i, t := range targets {
		out[i] = t.Clone()
		out[i].Expr = stripQualifiers(out[i].Expr)
	}
	return out
}

func stripQualifiers(e EvalNode) EvalNode {
	if fr, ok := e.(*FieldRef); ok {
		fr.Column = fr.Column.WithQualifier("")
		return fr
	}
	children := e.Children()
	if len(children) == 0 {
		return e
	}
	newChildren := make([]EvalNode, len(children))
	for i, c := range children {
		newChildren[i] = stripQualifiers(c)
	}
	return WithChildren(e, newChildren...)
}
