package plan

import (
	"fmt"

	"github.com/lp-core/logicalplan/schema"
)

// LimitNode caps its input to Count rows, after skipping Offset.
// Pass-through schema.
type LimitNode struct {
	unaryBase

	Count  int64
	Offset int64
}

// NewLimitNode builds a limit over child.
func NewLimitNode(pf *PIDFactory, count, offset int64, child LogicalNode) *LimitNode {
	return &LimitNode{
		unaryBase: unaryBase{pid: pf.NextPID(), child: child},
		Count:     count,
		Offset:    offset,
	}
}

func (l *LimitNode) Kind() Kind               { return KindLimit }
func (l *LimitNode) OutSchema() schema.Schema { return l.InSchema() }

func (l *LimitNode) WithChildren(children ...LogicalNode) (LogicalNode, error) {
	child, err := checkUnaryChildren(KindLimit, children)
	if err != nil {
		return nil, err
	}
	cp := *l
	cp.child = child
	return &cp, nil
}

func (l *LimitNode) Clone(pf *PIDFactory) LogicalNode {
	cp := *l
	cp.pid = pf.NextPID()
	return &cp
}

func (l *LimitNode) PlanString() string {
	if l.Offset != 0 {
		return fmt.Sprintf("Limit(%d, offset %d)", l.Count, l.Offset)
	}
	return fmt.Sprintf("Limit(%d)", l.Count)
}
