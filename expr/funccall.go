package expr

import (
	"fmt"
	"strings"

	"github.com/lp-core/logicalplan/types"
)

// FuncCall is a scalar function applied to its arguments.
type FuncCall struct {
	Desc FunctionDesc
	Args []EvalNode
}

// NewFuncCall builds a FuncCall.
func NewFuncCall(desc FunctionDesc, args ...EvalNode) *FuncCall {
	return &FuncCall{Desc: desc, Args: args}
}

func (f *FuncCall) Kind() Kind           { return KindFuncCall }
func (f *FuncCall) Type() types.DataType { return f.Desc.ReturnType }
func (f *FuncCall) Children() []EvalNode { return f.Args }

func (f *FuncCall) AutoName() string {
	names := make([]string, len(f.Args))
	for i, a := range f.Args {
		names[i] = a.AutoName()
	}
	return fmt.Sprintf("%s(%s)", f.Desc.Name, strings.Join(names, ", "))
}

func (f *FuncCall) Clone() EvalNode {
	cp := *f
	cp.Args = cloneArgs(f.Args)
	return &cp
}

func (f *FuncCall) Equal(other EvalNode) bool {
	o, ok := other.(*FuncCall)
	if !ok {
		return false
	}
	return f.Desc == o.Desc && equalArgs(f.Args, o.Args)
}

func cloneArgs(args []EvalNode) []EvalNode {
	out := make([]EvalNode, len(args))
	for i, a := range args {
		out[i] = a.Clone()
	}
	return out
}

func equalArgs(a, b []EvalNode) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
