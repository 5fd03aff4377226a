package expr

import (
	"fmt"

	"github.com/lp-core/logicalplan/types"
)

// UnaryOpKind is the closed set of unary operators.
type UnaryOpKind int

const (
	OpNot UnaryOpKind = iota
	OpNeg
)

func (op UnaryOpKind) String() string {
	switch op {
	case OpNot:
		return "NOT"
	case OpNeg:
		return "-"
	default:
		return "?"
	}
}

// Unary is a single-operand expression: NOT or arithmetic negation.
type Unary struct {
	Op      UnaryOpKind
	Operand EvalNode
	DType   types.DataType
}

// NewUnary builds a Unary expression.
func NewUnary(op UnaryOpKind, operand EvalNode, t types.DataType) *Unary {
	return &Unary{Op: op, Operand: operand, DType: t}
}

func (u *Unary) Kind() Kind           { return KindUnary }
func (u *Unary) Type() types.DataType { return u.DType }
func (u *Unary) Children() []EvalNode { return []EvalNode{u.Operand} }

func (u *Unary) AutoName() string {
	return fmt.Sprintf("%s(%s)", u.Op, u.Operand.AutoName())
}

func (u *Unary) Clone() EvalNode {
	cp := *u
	cp.Operand = u.Operand.Clone()
	return &cp
}

func (u *Unary) Equal(other EvalNode) bool {
	o, ok := other.(*Unary)
	if !ok {
		return false
	}
	return u.Op == o.Op && u.DType == o.DType && u.Operand.Equal(o.Operand)
}
