package plan

import (
	"fmt"

	"github.com/lp-core/logicalplan/expr"
	"github.com/lp-core/logicalplan/schema"
)

// JoinType is the closed set of join kinds this core supports. INNER
// is the only commutative kind (swapping left/right yields the same
// result set).
type JoinType int

const (
	JoinInner JoinType = iota
	JoinLeft
	JoinRight
	JoinFull
	JoinSemi
	JoinAnti
	JoinCross
)

var joinTypeNames = map[JoinType]string{
	JoinInner: "INNER",
	JoinLeft:  "LEFT",
	JoinRight: "RIGHT",
	JoinFull:  "FULL",
	JoinSemi:  "SEMI",
	JoinAnti:  "ANTI",
	JoinCross: "CROSS",
}

func (j JoinType) String() string {
	if s, ok := joinTypeNames[j]; ok {
		return s
	}
	return "UNKNOWN"
}

// JoinNode combines rows from its left (outer) and right (inner)
// children, with ordering convention left=outer, right=inner.
type JoinNode struct {
	binaryBase

	Type      JoinType
	Predicate expr.EvalNode // nil for CROSS
}

// NewJoinNode builds a join. left is the outer child, right the inner
// child.
func NewJoinNode(pf *PIDFactory, joinType JoinType, predicate expr.EvalNode, left, right LogicalNode) *JoinNode {
	return &JoinNode{
		binaryBase: binaryBase{pid: pf.NextPID(), left: left, right: right},
		Type:       joinType,
		Predicate:  predicate,
	}
}

func (j *JoinNode) Kind() Kind               { return KindJoin }
func (j *JoinNode) OutSchema() schema.Schema { return j.InSchema() }

func (j *JoinNode) WithChildren(children ...LogicalNode) (LogicalNode, error) {
	left, right, err := checkBinaryChildren(KindJoin, children)
	if err != nil {
		return nil, err
	}
	cp := *j
	cp.left, cp.right = left, right
	return &cp, nil
}

func (j *JoinNode) Clone(pf *PIDFactory) LogicalNode {
	cp := *j
	cp.pid = pf.NextPID()
	if j.Predicate != nil {
		cp.Predicate = j.Predicate.Clone()
	}
	return &cp
}

func (j *JoinNode) PlanString() string {
	if j.Predicate == nil {
		return fmt.Sprintf("Join(%s)", j.Type)
	}
	return fmt.Sprintf("Join(%s, %s)", j.Type, j.Predicate.AutoName())
}
