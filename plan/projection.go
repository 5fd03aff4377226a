package plan

import (
	"strings"

	"github.com/lp-core/logicalplan/expr"
	"github.com/lp-core/logicalplan/schema"
)

// ProjectionNode evaluates Targets against its input row and produces
// one output column per target.
type ProjectionNode struct {
	unaryBase

	Targets []expr.Target
	out     schema.Schema
}

// NewProjectionNode builds a projection over child, computing its
// output schema from targets.
func NewProjectionNode(pf *PIDFactory, targets []expr.Target, child LogicalNode) *ProjectionNode {
	return &ProjectionNode{
		unaryBase: unaryBase{pid: pf.NextPID(), child: child},
		Targets:   targets,
		out:       expr.TargetsToSchema(targets),
	}
}

func (p *ProjectionNode) Kind() Kind               { return KindProjection }
func (p *ProjectionNode) OutSchema() schema.Schema { return p.out }

func (p *ProjectionNode) WithChildren(children ...LogicalNode) (LogicalNode, error) {
	child, err := checkUnaryChildren(KindProjection, children)
	if err != nil {
		return nil, err
	}
	cp := *p
	cp.child = child
	return &cp, nil
}

func (p *ProjectionNode) Clone(pf *PIDFactory) LogicalNode {
	cp := *p
	cp.pid = pf.NextPID()
	cp.Targets = cloneTargets(p.Targets)
	cp.out = p.out.Clone()
	return &cp
}

func (p *ProjectionNode) PlanString() string {
	names := make([]string, len(p.Targets))
	for i, t := range p.Targets {
		names[i] = t.OutputName()
	}
	return "Projection(" + strings.Join(names, ", ") + ")"
}

func cloneTargets(targets []expr.Target) []expr.Target {
	out := make([]expr.Target, len(targets))
	for i, t := range targets {
		out[i] = t.Clone()
	}
	return out
}
