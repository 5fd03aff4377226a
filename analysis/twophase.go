package analysis

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/lp-core/logicalplan/expr"
	"github.com/lp-core/logicalplan/plan"
	"github.com/lp-core/logicalplan/planerr"
	"github.com/lp-core/logicalplan/schema"
)

// TransformGroupByTo2Pv2 splits gb into a partial-aggregation child
// (runs per partition) and a final-aggregation parent (merges
// partials), returned as two independent nodes the caller is
// responsible for wiring into the plan. gb itself is mutated in
// place and returned as parent: its aggregate target expressions are
// re-argumented (the same *expr.AggCall objects, found by
// expr.FindDistinctAggFunction, survive into parent unchanged except
// for Args/Phase), and its grouping-column passthrough targets are
// replaced with field references into the new child.
//
// For every distinct aggregate subexpression found across gb.Targets,
// a fresh intermediate column name is allocated from a single
// monotonic counter shared across the whole call, so no two targets
// ever collide on a column_k name.
func TransformGroupByTo2Pv2(pf *plan.PIDFactory, gb *plan.GroupByNode) (parent, child *plan.GroupByNode, err error) {
	childTargets, err := splitGroupByTargets(gb)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	child = plan.NewGroupByNode(pf, append([]schema.Column(nil), gb.GroupingColumns...), childTargets, gb.Children()[0])
	gb.RecomputeSchema()
	logger.WithFields(logrus.Fields{
		"groupingColumns": len(gb.GroupingColumns),
		"childTargets":    len(childTargets),
		"parentTargets":   len(gb.Targets),
	}).Debug("transformGroupByTo2P")
	return gb, child, nil
}

// TransformGroupByTo2P is TransformGroupByTo2Pv2 plus auto-wiring:
// the returned node already has the new partial-aggregation node as
// its child.
func TransformGroupByTo2P(pf *plan.PIDFactory, gb *plan.GroupByNode) (*plan.GroupByNode, error) {
	parent, child, err := TransformGroupByTo2Pv2(pf, gb)
	if err != nil {
		return nil, err
	}
	wired, err := parent.WithChildren(child)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return wired.(*plan.GroupByNode), nil
}

// splitGroupByTargets does the actual per-target splitting work
// shared by both transform variants. It mutates gb.Targets in place
// (rewriting it to the parent's final target list) and returns the
// child's target list.
//
// Ordering note: the child's target list is aggregates first, then
// grouping columns appended afterward — even when a grouping column's
// own passthrough target appeared earlier in gb.Targets. A
// passthrough target is never added to the child during the main
// loop; it's resolved by the catch-up pass below, which appends every
// grouping column not already present as a plain field target. This
// means every grouping-column passthrough target ends up backed by
// the same appended column, however many targets echo it.
func splitGroupByTargets(gb *plan.GroupByNode) ([]expr.Target, error) {
	k := 0
	nextColumnName := func() string {
		name := fmt.Sprintf("column_%d", k)
		k++
		return name
	}

	childTargets := make([]expr.Target, 0, len(gb.Targets))
	parentTargets := make([]expr.Target, len(gb.Targets))
	passthrough := make([]bool, len(gb.Targets))

	for i, t := range gb.Targets {
		aggs := expr.FindDistinctAggFunction(t.Expr)
		if len(aggs) == 0 {
			passthrough[i] = true
			continue
		}

		for _, f := range aggs {
			if f.Distinct {
				newArgs := make([]expr.EvalNode, len(f.Args))
				for ai, arg := range f.Args {
					name := nextColumnName()
					childTargets = append(childTargets, expr.NewAliasedTarget(arg.Clone(), name))
					newArgs[ai] = expr.NewFieldRef(schema.NewColumn("", name, arg.Type()))
				}
				f.Args = newArgs
				f.Phase = expr.PhaseFinal
				continue
			}

			name := nextColumnName()
			childAgg := f.Clone().(*expr.AggCall)
			childAgg.Phase = expr.PhaseFirst
			childTargets = append(childTargets, expr.NewAliasedTarget(childAgg, name))

			f.Args = []expr.EvalNode{expr.NewFieldRef(schema.NewColumn("", name, childAgg.Type()))}
			f.Phase = expr.PhaseFinal
		}
		parentTargets[i] = t
	}

	for _, gc := range gb.GroupingColumns {
		if !childTargetsContainColumn(childTargets, gc) {
			childTargets = append(childTargets, expr.NewTarget(expr.NewFieldRef(gc)))
		}
	}

	for i, t := range gb.Targets {
		if !passthrough[i] {
			continue
		}
		gc, ok := groupingColumnEchoedBy(t, gb.GroupingColumns)
		if !ok {
			err := planerr.ErrMalformedExpression.New(
				fmt.Sprintf("target %q has no aggregate and does not echo a grouping column", t.OutputName()))
			return nil, errors.WithStack(err)
		}
		parentTargets[i] = expr.NewAliasedTarget(expr.NewFieldRef(schema.NewColumn("", gc.Name, gc.Type)), t.OutputName())
	}

	gb.Targets = parentTargets
	return childTargets, nil
}

func childTargetsContainColumn(targets []expr.Target, gc schema.Column) bool {
	for _, t := range targets {
		if fr, ok := t.Expr.(*expr.FieldRef); ok && fr.Column.Equal(gc) {
			return true
		}
	}
	return false
}

func groupingColumnEchoedBy(t expr.Target, groupingColumns []schema.Column) (schema.Column, bool) {
	fr, ok := t.Expr.(*expr.FieldRef)
	if !ok {
		return schema.Column{}, false
	}
	for _, gc := range groupingColumns {
		if fr.Column.Equal(gc) {
			return gc, true
		}
	}
	return schema.Column{}, false
}

// TransformSortTo2P splits sort into a partial sort per input stream
// (the new child, fresh PID) and a merge sort (a copy of the original
// node, same PID, parented over the child; sort itself keeps its old
// child). The two nodes intentionally
// share the same Specs slice by reference rather than each holding an
// independent copy — a later rewrite that wants to change one side's
// sort keys must clone Specs itself before mutating it, or it will
// silently change both nodes.
func TransformSortTo2P(pf *plan.PIDFactory, sort *plan.SortNode) (*plan.SortNode, error) {
	child := plan.NewSortNode(pf, sort.Specs, sort.Children()[0])
	wired, err := sort.WithChildren(child)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	logger.WithFields(logrus.Fields{"specs": len(sort.Specs), "parentPID": sort.PID(), "childPID": child.PID()}).Debug("transformSortTo2P")
	return wired.(*plan.SortNode), nil
}
