package plan

import (
	"strings"

	uuid "github.com/satori/go.uuid"
	"gopkg.in/yaml.v2"
)

// Plan is a complete logical plan: a root node plus the PIDFactory
// that allocated every PID in its tree, and a stable identifier used
// for correlating log lines and traces across analysis passes.
type Plan struct {
	PlanID uuid.UUID
	Root   *RootNode
	pf     *PIDFactory
}

// NewPlan wraps root as a plan, allocating a fresh PlanID.
func NewPlan(pf *PIDFactory, root LogicalNode) *Plan {
	r, ok := root.(*RootNode)
	if !ok {
		r = NewRootNode(pf, root)
	}
	return &Plan{PlanID: uuid.NewV4(), Root: r, pf: pf}
}

// PIDFactory returns the factory that owns this plan's PID
// allocations, for rewrite passes that need to mint fresh PIDs for
// nodes they insert or clone.
func (p *Plan) PIDFactory() *PIDFactory { return p.pf }

// explainNode is the line tree Explain/DumpYAML render from.
type explainNode struct {
	Text     string        `yaml:"node"`
	Children []explainNode `yaml:"children,omitempty"`
}

func buildExplainNode(n LogicalNode) explainNode {
	children := n.Children()
	e := explainNode{Text: n.PlanString()}
	for _, c := range children {
		if c == nil {
			continue
		}
		e.Children = append(e.Children, buildExplainNode(c))
	}
	return e
}

// Explain renders n as an indented, multi-line plan tree, the way a
// query plan is shown to a human operator.
func Explain(n LogicalNode) string {
	var b strings.Builder
	writeExplain(&b, buildExplainNode(n), 0)
	return b.String()
}

func writeExplain(b *strings.Builder, e explainNode, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(e.Text)
	b.WriteByte('\n')
	for _, c := range e.Children {
		writeExplain(b, c, depth+1)
	}
}

// DumpYAML renders n's plan tree as YAML, for diffing plans across
// analyzer runs in tests and debug tooling.
func DumpYAML(n LogicalNode) (string, error) {
	out, err := yaml.Marshal(buildExplainNode(n))
	if err != nil {
		return "", err
	}
	return string(out), nil
}
