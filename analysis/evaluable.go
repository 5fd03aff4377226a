package analysis

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/lp-core/logicalplan/expr"
	"github.com/lp-core/logicalplan/plan"
	"github.com/lp-core/logicalplan/planerr"
	"github.com/lp-core/logicalplan/visit"
)

// canonicalNamed is implemented by scan node kinds, whose
// CanonicalName is a method rather than a bare field.
type canonicalNamed interface {
	CanonicalName() string
}

// CanBeEvaluated decides whether e may be evaluated at node's
// position in the tree — i.e. whether every column e references is
// actually in scope there. The rule depends on node's kind:
//
//   - JOIN: e's column qualifiers must split exactly two ways, one
//     side covered by the left child's relation lineage, the other by
//     the right's. Either assignment of the two qualifiers to sides is
//     accepted.
//   - SCAN / PARTITIONED_SCAN: every column's qualifier must be the
//     scan's own canonical name, and present in the scan's exposed
//     columns.
//   - TABLE_SUBQUERY: every column's qualifier must be the subquery's
//     canonical name, and present in its outSchema.
//   - Anything else: every column's qualified name must be present in
//     node's inSchema.
func CanBeEvaluated(e expr.EvalNode, node plan.LogicalNode) (bool, error) {
	result, err := canBeEvaluated(e, node)
	if err != nil {
		return false, errors.WithStack(err)
	}
	fields := logrus.Fields{"result": result}
	if node != nil {
		fields["node"] = node.Kind()
		fields["pid"] = node.PID()
	}
	logger.WithFields(fields).Debug("canBeEvaluated")
	return result, nil
}

func canBeEvaluated(e expr.EvalNode, node plan.LogicalNode) (bool, error) {
	if node == nil {
		return false, planerr.ErrInvariantViolation.New("CanBeEvaluated: node is nil")
	}
	cols := expr.FindDistinctRefColumns(e)

	switch node.Kind() {
	case plan.KindJoin:
		join, ok := node.(*plan.JoinNode)
		if !ok {
			return false, planerr.ErrMalformedExpression.New("CanBeEvaluated: KindJoin node is not *plan.JoinNode")
		}
		left, right := join.Left(), join.Right()
		if left == nil || right == nil {
			return false, planerr.ErrInvariantViolation.New("CanBeEvaluated: join has a nil child")
		}

		qualifiers := make(map[string]bool)
		for _, c := range cols {
			qualifiers[c.Qualifier] = true
		}
		if len(qualifiers) != 2 {
			return false, nil
		}

		leftNames := toSet(visit.GetRelationLineage(left))
		rightNames := toSet(visit.GetRelationLineage(right))
		var sawLeft, sawRight bool
		for q := range qualifiers {
			switch {
			case leftNames[q]:
				sawLeft = true
			case rightNames[q]:
				sawRight = true
			default:
				return false, nil
			}
		}
		return sawLeft && sawRight, nil

	case plan.KindScan, plan.KindPartitionedScan:
		named, ok := node.(canonicalNamed)
		if !ok {
			return false, planerr.ErrMalformedExpression.New("CanBeEvaluated: scan node has no CanonicalName")
		}
		name := named.CanonicalName()
		for _, c := range cols {
			if c.Qualifier != name {
				return false, nil
			}
			if !node.OutSchema().Contains(c.QualifiedName()) {
				return false, nil
			}
		}
		return true, nil

	case plan.KindTableSubquery:
		sub, ok := node.(*plan.TableSubqueryNode)
		if !ok {
			return false, planerr.ErrMalformedExpression.New("CanBeEvaluated: KindTableSubquery node is not *plan.TableSubqueryNode")
		}
		for _, c := range cols {
			if c.Qualifier != sub.CanonicalName {
				return false, nil
			}
			if !node.OutSchema().Contains(c.QualifiedName()) {
				return false, nil
			}
		}
		return true, nil

	default:
		for _, c := range cols {
			if !node.InSchema().Contains(c.QualifiedName()) {
				return false, nil
			}
		}
		return true, nil
	}
}

func toSet(names []string) map[string]bool {
	out := make(map[string]bool, len(names))
	for _, n := range names {
		out[n] = true
	}
	return out
}
