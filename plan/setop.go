package plan

import (
	"fmt"

	"github.com/lp-core/logicalplan/schema"
)

// SetOpKind distinguishes the three set operations this core
// supports.
type SetOpKind int

const (
	SetOpUnion SetOpKind = iota
	SetOpIntersect
	SetOpExcept
)

func (k SetOpKind) String() string {
	switch k {
	case SetOpUnion:
		return "Union"
	case SetOpIntersect:
		return "Intersect"
	case SetOpExcept:
		return "Except"
	default:
		return "Unknown"
	}
}

func (k SetOpKind) toNodeKind() Kind {
	switch k {
	case SetOpUnion:
		return KindUnion
	case SetOpIntersect:
		return KindIntersect
	default:
		return KindExcept
	}
}

// SetOpNode combines two same-shaped relations via UNION, INTERSECT,
// or EXCEPT. Its output schema is its left child's output schema
// (both sides are required to share a schema shape; this core does
// not itself verify that — the planner frontend does).
type SetOpNode struct {
	binaryBase

	Op       SetOpKind
	Distinct bool
}

// NewSetOpNode builds a set operation over left and right.
func NewSetOpNode(pf *PIDFactory, op SetOpKind, distinct bool, left, right LogicalNode) *SetOpNode {
	return &SetOpNode{
		binaryBase: binaryBase{pid: pf.NextPID(), left: left, right: right},
		Op:         op,
		Distinct:   distinct,
	}
}

func (s *SetOpNode) Kind() Kind               { return s.Op.toNodeKind() }
func (s *SetOpNode) OutSchema() schema.Schema { return s.left.OutSchema() }

func (s *SetOpNode) WithChildren(children ...LogicalNode) (LogicalNode, error) {
	left, right, err := checkBinaryChildren(s.Kind(), children)
	if err != nil {
		return nil, err
	}
	cp := *s
	cp.left, cp.right = left, right
	return &cp, nil
}

func (s *SetOpNode) Clone(pf *PIDFactory) LogicalNode {
	cp := *s
	cp.pid = pf.NextPID()
	return &cp
}

func (s *SetOpNode) PlanString() string {
	if s.Distinct {
		return fmt.Sprintf("%s(distinct)", s.Op)
	}
	return fmt.Sprintf("%s(all)", s.Op)
}
