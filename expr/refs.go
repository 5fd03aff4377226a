package expr

import "github.com/lp-core/logicalplan/schema"

// FindAllColumnRefs returns every field reference in e, pre-order,
// source order, with duplicates preserved.
func FindAllColumnRefs(e EvalNode) []schema.Column {
	var out []schema.Column
	walkColumnRefs(e, func(c schema.Column) {
		out = append(out, c)
	})
	return out
}

// FindDistinctRefColumns is FindAllColumnRefs deduplicated by
// qualified name, keeping first-seen order.
func FindDistinctRefColumns(e EvalNode) []schema.Column {
	seen := make(map[string]bool)
	var out []schema.Column
	walkColumnRefs(e, func(c schema.Column) {
		key := c.QualifiedName()
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, c)
	})
	return out
}

func walkColumnRefs(e EvalNode, visit func(schema.Column)) {
	if e == nil {
		return
	}
	if fr, ok := e.(*FieldRef); ok {
		visit(fr.Column)
		return
	}
	for _, c := range e.Children() {
		walkColumnRefs(c, visit)
	}
}

// FindDistinctAggFunction collects every aggregate-function
// subexpression of e, deduplicated by structural equality (function
// descriptor + args + distinct flag).
func FindDistinctAggFunction(e EvalNode) []*AggCall {
	var out []*AggCall
	walkAggCalls(e, func(a *AggCall) {
		for _, existing := range out {
			if existing.Equal(a) {
				return
			}
		}
		out = append(out, a)
	})
	return out
}

func walkAggCalls(e EvalNode, visit func(*AggCall)) {
	if e == nil {
		return
	}
	if agg, ok := e.(*AggCall); ok {
		visit(agg)
		// Aggregate arguments are not themselves searched: an aggregate
		// nested inside another aggregate's arguments is not collected.
		return
	}
	for _, c := range e.Children() {
		walkAggCalls(c, visit)
	}
}
