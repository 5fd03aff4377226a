// Package visit supplies the tree-traversal helpers the logical node
// model itself doesn't carry: nodes have no parent pointer, so every
// search or lineage query here walks down from a supplied root with an
// explicit stack instead of walking up from a leaf.
package visit

import "github.com/lp-core/logicalplan/plan"

// Visitor receives a node during a walk and returns the Visitor to use
// for that node's children, or nil to stop descending beneath it.
type Visitor interface {
	Visit(n plan.LogicalNode) Visitor
}

// VisitorFunc adapts a plain function to the Visitor interface.
type VisitorFunc func(plan.LogicalNode) Visitor

// Visit implements Visitor.
func (f VisitorFunc) Visit(n plan.LogicalNode) Visitor { return f(n) }

// Walk traverses n and its descendants pre-order, calling v.Visit at
// every node. Inspect, PreOrder and InspectWithinQueryBlock are
// written on top of it; PostOrder and the search helpers built on
// PostOrder recurse on their own.
func Walk(v Visitor, n plan.LogicalNode) {
	if v = v.Visit(n); v == nil {
		return
	}
	if n == nil {
		return
	}
	for _, c := range n.Children() {
		Walk(v, c)
	}
}

// inspector adapts a bool-returning predicate to Visitor: returning
// false stops descent beneath the current node without stopping the
// rest of the walk.
type inspector func(plan.LogicalNode) bool

func (f inspector) Visit(n plan.LogicalNode) Visitor {
	if n == nil {
		return nil
	}
	if f(n) {
		return f
	}
	return nil
}

// Inspect walks n pre-order, calling f at every node. f returns
// whether to descend into that node's children.
func Inspect(n plan.LogicalNode, f func(plan.LogicalNode) bool) {
	Walk(inspector(f), n)
}

// PreOrder calls f on every non-nil node in n's tree, parent before
// children, left before right.
func PreOrder(n plan.LogicalNode, f func(plan.LogicalNode)) {
	Inspect(n, func(node plan.LogicalNode) bool {
		if node != nil {
			f(node)
		}
		return true
	})
}

// PostOrder calls f on every non-nil node in n's tree, children before
// parent, left before right.
func PostOrder(n plan.LogicalNode, f func(plan.LogicalNode)) {
	if n == nil {
		return
	}
	for _, c := range n.Children() {
		PostOrder(c, f)
	}
	f(n)
}

// queryBlockVisitor behaves like a pre-order Inspect, except it never
// descends beneath a TableSubqueryNode: the subquery node itself is
// still visited, but its child (the nested query block) is not, since
// that child belongs to a different query block.
type queryBlockVisitor func(plan.LogicalNode) bool

func (f queryBlockVisitor) Visit(n plan.LogicalNode) Visitor {
	if n == nil {
		return nil
	}
	if !f(n) {
		return nil
	}
	if n.Kind() == plan.KindTableSubquery {
		return nil
	}
	return f
}

// InspectWithinQueryBlock is Inspect's query-block-respecting variant:
// f is still called on a TableSubqueryNode it encounters, but the walk
// never crosses into that subquery's own child.
func InspectWithinQueryBlock(n plan.LogicalNode, f func(plan.LogicalNode) bool) {
	Walk(queryBlockVisitor(f), n)
}
