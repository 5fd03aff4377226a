package plan

import (
	"strings"

	"github.com/lp-core/logicalplan/expr"
	"github.com/lp-core/logicalplan/schema"
)

// GroupByNode aggregates its input by GroupingColumns, computing one
// output column per target. Each target is either a grouping-column
// echo (a bare field reference to a grouping column) or an expression
// containing one or more aggregate calls.
type GroupByNode struct {
	unaryBase

	GroupingColumns []schema.Column
	Targets         []expr.Target
	Distinct        bool

	out schema.Schema
}

// NewGroupByNode builds a group-by over child.
func NewGroupByNode(pf *PIDFactory, groupingColumns []schema.Column, targets []expr.Target, child LogicalNode) *GroupByNode {
	return &GroupByNode{
		unaryBase:       unaryBase{pid: pf.NextPID(), child: child},
		GroupingColumns: groupingColumns,
		Targets:         targets,
		out:             expr.TargetsToSchema(targets),
	}
}

func (g *GroupByNode) Kind() Kind               { return KindGroupBy }
func (g *GroupByNode) OutSchema() schema.Schema { return g.out }

// RecomputeSchema rebuilds OutSchema from the current Targets. Used
// by the two-phase transforms after they mutate Targets in place.
func (g *GroupByNode) RecomputeSchema() {
	g.out = expr.TargetsToSchema(g.Targets)
}

func (g *GroupByNode) WithChildren(children ...LogicalNode) (LogicalNode, error) {
	child, err := checkUnaryChildren(KindGroupBy, children)
	if err != nil {
		return nil, err
	}
	cp := *g
	cp.child = child
	return &cp, nil
}

func (g *GroupByNode) Clone(pf *PIDFactory) LogicalNode {
	cp := *g
	cp.pid = pf.NextPID()
	cp.GroupingColumns = append([]schema.Column(nil), g.GroupingColumns...)
	cp.Targets = cloneTargets(g.Targets)
	cp.out = g.out.Clone()
	return &cp
}

func (g *GroupByNode) PlanString() string {
	names := make([]string, len(g.Targets))
	for i, t := range g.Targets {
		names[i] = t.OutputName()
	}
	return "GroupBy(" + strings.Join(names, ", ") + ")"
}
