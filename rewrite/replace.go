package rewrite

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/lp-core/logicalplan/plan"
	"github.com/lp-core/logicalplan/planerr"
	"github.com/lp-core/logicalplan/visit"
)

// ReplaceNode walks root post-order and substitutes new for every node
// structurally equal (via plan.DeepEquals) to old. The walk never
// descends into a freshly substituted subtree — new is taken as-is,
// not re-examined for further matches. Any WithChildren error
// encountered while rebuilding ancestors is returned immediately;
// nothing here is logged-and-swallowed. A root with no match is
// returned unchanged.
func ReplaceNode(root, old, new plan.LogicalNode) (plan.LogicalNode, error) {
	result, _, err := TransformUp(root, func(n plan.LogicalNode) (plan.LogicalNode, TreeIdentity, error) {
		if plan.DeepEquals(n, old) {
			return new, NewTree, nil
		}
		return n, SameTree, nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return result, nil
}

// ReplaceNodeOfKind substitutes newNode for the child of kind at
// root's first matching parent (visit.FindTopParentNode: the first
// node, in post-order, with some child of kind). The parent must be
// unary and newNode must not be binary, since a unary parent can only
// ever carry one replacement child. If the old child itself was
// unary, newNode's own child pointer is set to the old child's child
// — the old child is excised and newNode takes its place with the
// grandchild beneath it. A root with no parent of kind is returned
// unchanged.
func ReplaceNodeOfKind(root, newNode plan.LogicalNode, kind plan.Kind) (plan.LogicalNode, error) {
	parent, ok := visit.FindTopParentNode(root, kind)
	if !ok {
		return root, nil
	}
	if parent.Shape() != plan.ShapeUnary {
		err := planerr.ErrInvariantViolation.New(
			fmt.Sprintf("ReplaceNodeOfKind: parent %s of kind %s is %s, not unary", parent.Kind(), kind, parent.Shape()))
		return nil, errors.WithStack(err)
	}
	if newNode.Shape() == plan.ShapeBinary {
		err := planerr.ErrInvariantViolation.New(
			fmt.Sprintf("ReplaceNodeOfKind: replacement %s may not be binary", newNode.Kind()))
		return nil, errors.WithStack(err)
	}

	oldChild := parent.Children()[0]
	wired := newNode
	if oldChild.Shape() == plan.ShapeUnary && newNode.Shape() == plan.ShapeUnary {
		var err error
		wired, err = newNode.WithChildren(oldChild.Children()[0])
		if err != nil {
			return nil, errors.WithStack(err)
		}
	}

	newParent, err := parent.WithChildren(wired)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return ReplaceNode(root, parent, newParent)
}
