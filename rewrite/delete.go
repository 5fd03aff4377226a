package rewrite

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/lp-core/logicalplan/plan"
	"github.com/lp-core/logicalplan/planerr"
)

// DeleteNode splices toRemove out of the tree by replacing it, in
// parent, with toRemove's own child. toRemove must be a unary node —
// deleting a binary or leaf node would leave parent with an
// ill-defined arity, so that's rejected outright.
//
// parent may be unary (its single child is toRemove) or binary (one of
// its two children, matched by DeepEquals rather than pointer
// identity, is toRemove). Returns parent's replacement.
func DeleteNode(parent, toRemove plan.LogicalNode) (plan.LogicalNode, error) {
	if toRemove.Shape() != plan.ShapeUnary {
		err := planerr.ErrInvariantViolation.New(
			fmt.Sprintf("DeleteNode requires a unary node, got %s (%s)", toRemove.Kind(), toRemove.Shape()))
		return nil, errors.WithStack(err)
	}
	replacement := toRemove.Children()[0]

	switch parent.Shape() {
	case plan.ShapeUnary:
		if !plan.DeepEquals(parent.Children()[0], toRemove) {
			return nil, errors.WithStack(planerr.ErrInvariantViolation.New("DeleteNode: toRemove is not parent's child"))
		}
		result, err := parent.WithChildren(replacement)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		return result, nil

	case plan.ShapeBinary:
		children := parent.Children()
		left, right := children[0], children[1]
		var result plan.LogicalNode
		var err error
		switch {
		case plan.DeepEquals(left, toRemove):
			result, err = parent.WithChildren(replacement, right)
		case plan.DeepEquals(right, toRemove):
			result, err = parent.WithChildren(left, replacement)
		default:
			return nil, errors.WithStack(planerr.ErrInvariantViolation.New("DeleteNode: toRemove is not parent's child"))
		}
		if err != nil {
			return nil, errors.WithStack(err)
		}
		return result, nil

	default:
		err := planerr.ErrInvariantViolation.New(
			fmt.Sprintf("DeleteNode: parent %s has no children to remove from", parent.Kind()))
		return nil, errors.WithStack(err)
	}
}
