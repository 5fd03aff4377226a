// Package rewrite builds new plan trees out of old ones: a generic
// bottom-up transform, and the two structural edits the analysis
// package's two-phase transforms need — deleting a unary node out of
// the tree and replacing one node with another.
package rewrite

import "github.com/lp-core/logicalplan/plan"

// TreeIdentity reports whether a transform produced a structurally new
// node or handed back the same one unchanged, so TransformUp can avoid
// rebuilding parents whose children didn't actually change.
type TreeIdentity bool

const (
	SameTree TreeIdentity = false
	NewTree  TreeIdentity = true
)

// NodeFunc is applied to a single node during TransformUp. It returns
// the (possibly replaced) node, whether it differs from the input, and
// any error — TransformUp aborts and propagates the error immediately,
// it never swallows one.
type NodeFunc func(n plan.LogicalNode) (plan.LogicalNode, TreeIdentity, error)

// TransformUp rewrites n bottom-up: every child is transformed first,
// then f is applied to the (possibly rebuilt) node itself. A node is
// only rebuilt via WithChildren when at least one child actually
// changed; f can still force a rebuild of an unchanged node by
// returning NewTree.
func TransformUp(n plan.LogicalNode, f NodeFunc) (plan.LogicalNode, TreeIdentity, error) {
	if n == nil {
		return n, SameTree, nil
	}

	children := n.Children()
	newChildren := make([]plan.LogicalNode, len(children))
	childrenChanged := false
	for i, c := range children {
		newChild, same, err := TransformUp(c, f)
		if err != nil {
			return nil, SameTree, err
		}
		newChildren[i] = newChild
		if same == NewTree {
			childrenChanged = true
		}
	}

	current := n
	if childrenChanged {
		rebuilt, err := n.WithChildren(newChildren...)
		if err != nil {
			return nil, SameTree, err
		}
		current = rebuilt
	}

	result, same, err := f(current)
	if err != nil {
		return nil, SameTree, err
	}
	if same == NewTree || childrenChanged {
		return result, NewTree, nil
	}
	return result, SameTree, nil
}
