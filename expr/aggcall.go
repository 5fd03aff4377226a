package expr

import (
	"fmt"
	"strings"

	"github.com/lp-core/logicalplan/types"
)

// AggPhase governs whether an aggregate call produces a partial
// (per-partition) value or a final, merged value. Two-phase
// aggregation splits a single-phase aggregate into a FIRST child and
// a FINAL parent.
type AggPhase int

const (
	PhaseFirst AggPhase = iota
	PhaseFinal
)

func (p AggPhase) String() string {
	if p == PhaseFirst {
		return "FIRST"
	}
	return "FINAL"
}

// AggCall is an aggregate function call: a function descriptor,
// arguments, a distinct flag, and a phase tag.
type AggCall struct {
	Desc     FunctionDesc
	Args     []EvalNode
	Distinct bool
	Phase    AggPhase `hash:"ignore"`
}

// NewAggCall builds an AggCall in phase FINAL (single-phase,
// non-distributed default).
func NewAggCall(desc FunctionDesc, distinct bool, args ...EvalNode) *AggCall {
	return &AggCall{Desc: desc, Args: args, Distinct: distinct, Phase: PhaseFinal}
}

func (a *AggCall) Kind() Kind           { return KindAggCall }
func (a *AggCall) Type() types.DataType { return a.Desc.ReturnType }
func (a *AggCall) Children() []EvalNode { return a.Args }

func (a *AggCall) AutoName() string {
	names := make([]string, len(a.Args))
	for i, arg := range a.Args {
		names[i] = arg.AutoName()
	}
	distinct := ""
	if a.Distinct {
		distinct = "DISTINCT "
	}
	return fmt.Sprintf("%s(%s%s)", a.Desc.Name, distinct, strings.Join(names, ", "))
}

func (a *AggCall) Clone() EvalNode {
	cp := *a
	cp.Args = cloneArgs(a.Args)
	return &cp
}

// Equal compares function descriptor, args, and distinct flag — the
// identity findDistinctAggFunction dedups on. Phase is intentionally
// excluded: the two-phase transform matches a pre-mutation aggregate
// by this equality and then changes its phase in place, so phase
// cannot be part of the identity it matches on.
func (a *AggCall) Equal(other EvalNode) bool {
	o, ok := other.(*AggCall)
	if !ok {
		return false
	}
	return a.Desc == o.Desc && a.Distinct == o.Distinct && equalArgs(a.Args, o.Args)
}

// EqualExact compares everything Equal does, plus Phase. Used where
// true identity (not just the dedup key) matters.
func (a *AggCall) EqualExact(other *AggCall) bool {
	return a.Equal(other) && a.Phase == other.Phase
}
