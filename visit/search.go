package visit

import "github.com/lp-core/logicalplan/plan"

// FindTopNode returns the first node of the given kind discovered in
// post-order, or false if none match. Despite the name, this is NOT a
// shallowest-match search: post-order visits children before their
// parent, so for a tree this returns the deepest, leftmost matching
// node — a match near the root is only returned once every one of its
// descendants has been checked and none matched.
func FindTopNode(root plan.LogicalNode, kind plan.Kind) (plan.LogicalNode, bool) {
	var found plan.LogicalNode
	var ok bool
	PostOrder(root, func(n plan.LogicalNode) {
		if ok {
			return
		}
		if n.Kind() == kind {
			found = n
			ok = true
		}
	})
	return found, ok
}

// FindAllNodes returns every node of the given kind in root's tree, in
// post-order.
func FindAllNodes(root plan.LogicalNode, kind plan.Kind) []plan.LogicalNode {
	var out []plan.LogicalNode
	PostOrder(root, func(n plan.LogicalNode) {
		if n.Kind() == kind {
			out = append(out, n)
		}
	})
	return out
}

// FindTopParentNode returns the first node, in post-order, that has at
// least one child of the given kind. For a binary node, either side
// matching is sufficient.
func FindTopParentNode(root plan.LogicalNode, kind plan.Kind) (plan.LogicalNode, bool) {
	var found plan.LogicalNode
	var ok bool
	PostOrder(root, func(n plan.LogicalNode) {
		if ok {
			return
		}
		for _, c := range n.Children() {
			if c != nil && c.Kind() == kind {
				found = n
				ok = true
				return
			}
		}
	})
	return found, ok
}

// relationNamer is implemented by every node kind that terminates a
// relation lineage: scans and subqueries.
type relationNamer interface {
	RelationLineageName() string
}

// GetRelationLineage returns the canonical names of every SCAN node
// reachable from root, in post-order, descending across query-block
// boundaries. A TableSubqueryNode itself contributes no entry here —
// its scans are reported instead, since this variant never stops at
// the boundary.
func GetRelationLineage(root plan.LogicalNode) []string {
	var out []string
	PostOrder(root, func(n plan.LogicalNode) {
		switch n.Kind() {
		case plan.KindScan, plan.KindPartitionedScan:
			out = append(out, n.(relationNamer).RelationLineageName())
		}
	})
	return out
}

// GetRelationLineageWithinQueryBlock is GetRelationLineage's
// query-block-respecting variant: it additionally records a
// TableSubqueryNode's own canonical name, but does not descend into
// the subquery to collect the relations inside it.
func GetRelationLineageWithinQueryBlock(root plan.LogicalNode) []string {
	var out []string
	postOrderWithinQueryBlock(root, func(n plan.LogicalNode) {
		switch n.Kind() {
		case plan.KindScan, plan.KindPartitionedScan, plan.KindTableSubquery:
			out = append(out, n.(relationNamer).RelationLineageName())
		}
	})
	return out
}

// postOrderWithinQueryBlock is PostOrder's query-block-respecting
// variant: it does not recurse beneath a TableSubqueryNode, but still
// calls f on the subquery node itself.
func postOrderWithinQueryBlock(n plan.LogicalNode, f func(plan.LogicalNode)) {
	if n == nil {
		return
	}
	if n.Kind() != plan.KindTableSubquery {
		for _, c := range n.Children() {
			postOrderWithinQueryBlock(c, f)
		}
	}
	f(n)
}
