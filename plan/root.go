package plan

import "github.com/lp-core/logicalplan/schema"

// RootNode is the single entry point of a plan: a unary wrapper over
// the plan's top operator, carrying no payload of its own.
type RootNode struct {
	unaryBase
}

// NewRootNode wraps child as the plan's root.
func NewRootNode(pf *PIDFactory, child LogicalNode) *RootNode {
	return &RootNode{unaryBase: unaryBase{pid: pf.NextPID(), child: child}}
}

func (r *RootNode) Kind() Kind               { return KindRoot }
func (r *RootNode) OutSchema() schema.Schema { return r.InSchema() }

func (r *RootNode) WithChildren(children ...LogicalNode) (LogicalNode, error) {
	child, err := checkUnaryChildren(KindRoot, children)
	if err != nil {
		return nil, err
	}
	cp := *r
	cp.child = child
	return &cp, nil
}

func (r *RootNode) Clone(pf *PIDFactory) LogicalNode {
	cp := *r
	cp.pid = pf.NextPID()
	return &cp
}

func (r *RootNode) PlanString() string { return "Root" }

// TerminalNode is a childless no-op source, e.g. the implicit
// relation of a parser-synthesized "SELECT <const-expr>" with no FROM
// clause, or the end marker of a DDL statement with no underlying
// relation.
type TerminalNode struct {
	leafBase
}

// NewTerminalNode builds a terminal leaf with an empty output schema.
func NewTerminalNode(pf *PIDFactory) *TerminalNode {
	return &TerminalNode{leafBase: leafBase{pid: pf.NextPID()}}
}

func (t *TerminalNode) Kind() Kind { return KindTerminal }

func (t *TerminalNode) WithChildren(children ...LogicalNode) (LogicalNode, error) {
	if err := checkLeafChildren(KindTerminal, children); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *TerminalNode) Clone(pf *PIDFactory) LogicalNode {
	cp := *t
	cp.pid = pf.NextPID()
	return &cp
}

func (t *TerminalNode) PlanString() string { return "Terminal" }
