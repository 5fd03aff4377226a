package plan

import (
	"github.com/lp-core/logicalplan/expr"
	"github.com/lp-core/logicalplan/schema"
)

// FilterNode (SELECTION) keeps only the input rows for which
// Predicate evaluates true. Pass-through schema: OutSchema ==
// InSchema.
type FilterNode struct {
	unaryBase

	Predicate expr.EvalNode
}

// NewFilterNode builds a filter over child.
func NewFilterNode(pf *PIDFactory, predicate expr.EvalNode, child LogicalNode) *FilterNode {
	return &FilterNode{
		unaryBase: unaryBase{pid: pf.NextPID(), child: child},
		Predicate: predicate,
	}
}

func (f *FilterNode) Kind() Kind               { return KindFilter }
func (f *FilterNode) OutSchema() schema.Schema { return f.InSchema() }

func (f *FilterNode) WithChildren(children ...LogicalNode) (LogicalNode, error) {
	child, err := checkUnaryChildren(KindFilter, children)
	if err != nil {
		return nil, err
	}
	cp := *f
	cp.child = child
	return &cp, nil
}

func (f *FilterNode) Clone(pf *PIDFactory) LogicalNode {
	cp := *f
	cp.pid = pf.NextPID()
	cp.Predicate = f.Predicate.Clone()
	return &cp
}

func (f *FilterNode) PlanString() string {
	return "Filter(" + predicateString(f.Predicate) + ")"
}

func predicateString(e expr.EvalNode) string {
	if e == nil {
		return ""
	}
	return e.AutoName()
}
