package plan

import (
	"fmt"
	"strings"

	"github.com/lp-core/logicalplan/schema"
)

// SortSpec orders rows by one column.
type SortSpec struct {
	Column     schema.Column
	Ascending  bool
	NullsFirst bool
}

// SortNode orders its input by an ordered list of sort specs.
// Pass-through schema.
type SortNode struct {
	unaryBase

	Specs []SortSpec
}

// NewSortNode builds a sort over child.
func NewSortNode(pf *PIDFactory, specs []SortSpec, child LogicalNode) *SortNode {
	return &SortNode{
		unaryBase: unaryBase{pid: pf.NextPID(), child: child},
		Specs:     specs,
	}
}

func (s *SortNode) Kind() Kind               { return KindSort }
func (s *SortNode) OutSchema() schema.Schema { return s.InSchema() }

func (s *SortNode) WithChildren(children ...LogicalNode) (LogicalNode, error) {
	child, err := checkUnaryChildren(KindSort, children)
	if err != nil {
		return nil, err
	}
	cp := *s
	cp.child = child
	return &cp, nil
}

func (s *SortNode) Clone(pf *PIDFactory) LogicalNode {
	cp := *s
	cp.pid = pf.NextPID()
	cp.Specs = append([]SortSpec(nil), s.Specs...)
	return &cp
}

func (s *SortNode) PlanString() string {
	parts := make([]string, len(s.Specs))
	for i, spec := range s.Specs {
		dir := "ASC"
		if !spec.Ascending {
			dir = "DESC"
		}
		parts[i] = fmt.Sprintf("%s %s", spec.Column.QualifiedName(), dir)
	}
	return "Sort(" + strings.Join(parts, ", ") + ")"
}
