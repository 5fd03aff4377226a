package plan

import (
	"fmt"

	"github.com/lp-core/logicalplan/schema"
)

// TableSubqueryNode wraps a nested query block and exposes it as a
// relation under CanonicalName. Subqueries form a query-block
// boundary: the query-block-respecting visitor (package visit)
// records this node but does not descend into its child.
type TableSubqueryNode struct {
	unaryBase

	CanonicalName string
	out           schema.Schema
}

// NewTableSubqueryNode builds a subquery node over child, named
// canonicalName; its output schema is child's output schema
// re-qualified to canonicalName.
func NewTableSubqueryNode(pf *PIDFactory, canonicalName string, child LogicalNode) *TableSubqueryNode {
	out := make(schema.Schema, len(child.OutSchema()))
	for i, c := range child.OutSchema() {
		out[i] = c.WithQualifier(canonicalName)
	}
	return &TableSubqueryNode{
		unaryBase:     unaryBase{pid: pf.NextPID(), child: child},
		CanonicalName: canonicalName,
		out:           out,
	}
}

func (t *TableSubqueryNode) Kind() Kind              { return KindTableSubquery }
func (t *TableSubqueryNode) OutSchema() schema.Schema { return t.out }

// RelationLineageName satisfies the lineage-tracking contract package
// visit uses to collect relation names without importing node-kind
// specifics.
func (t *TableSubqueryNode) RelationLineageName() string {
	return t.CanonicalName
}

func (t *TableSubqueryNode) WithChildren(children ...LogicalNode) (LogicalNode, error) {
	child, err := checkUnaryChildren(KindTableSubquery, children)
	if err != nil {
		return nil, err
	}
	cp := *t
	cp.child = child
	return &cp, nil
}

func (t *TableSubqueryNode) Clone(pf *PIDFactory) LogicalNode {
	cp := *t
	cp.pid = pf.NextPID()
	cp.out = t.out.Clone()
	return &cp
}

func (t *TableSubqueryNode) PlanString() string {
	return fmt.Sprintf("TableSubquery(%s)", t.CanonicalName)
}
