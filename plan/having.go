package plan

import (
	"github.com/lp-core/logicalplan/expr"
	"github.com/lp-core/logicalplan/schema"
)

// HavingNode filters the output of a GroupByNode by a predicate over
// aggregated columns. Pass-through schema, distinct from FilterNode
// only by its position (post-aggregation) and tag.
type HavingNode struct {
	unaryBase

	Predicate expr.EvalNode
}

// NewHavingNode builds a having filter over child.
func NewHavingNode(pf *PIDFactory, predicate expr.EvalNode, child LogicalNode) *HavingNode {
	return &HavingNode{
		unaryBase: unaryBase{pid: pf.NextPID(), child: child},
		Predicate: predicate,
	}
}

func (h *HavingNode) Kind() Kind               { return KindHaving }
func (h *HavingNode) OutSchema() schema.Schema { return h.InSchema() }

func (h *HavingNode) WithChildren(children ...LogicalNode) (LogicalNode, error) {
	child, err := checkUnaryChildren(KindHaving, children)
	if err != nil {
		return nil, err
	}
	cp := *h
	cp.child = child
	return &cp, nil
}

func (h *HavingNode) Clone(pf *PIDFactory) LogicalNode {
	cp := *h
	cp.pid = pf.NextPID()
	cp.Predicate = h.Predicate.Clone()
	return &cp
}

func (h *HavingNode) PlanString() string {
	return "Having(" + predicateString(h.Predicate) + ")"
}
