package expr

import (
	"fmt"

	"github.com/lp-core/logicalplan/types"
)

// BinaryOpKind is the closed set of binary operators: comparisons,
// logical connectives, and arithmetic.
type BinaryOpKind int

const (
	OpEq BinaryOpKind = iota
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
	OpAnd
	OpOr
	OpAdd
	OpSub
	OpMul
	OpDiv
)

var binaryOpSymbols = map[BinaryOpKind]string{
	OpEq:  "=",
	OpNe:  "<>",
	OpLt:  "<",
	OpLe:  "<=",
	OpGt:  ">",
	OpGe:  ">=",
	OpAnd: "AND",
	OpOr:  "OR",
	OpAdd: "+",
	OpSub: "-",
	OpMul: "*",
	OpDiv: "/",
}

func (op BinaryOpKind) String() string {
	if s, ok := binaryOpSymbols[op]; ok {
		return s
	}
	return "?"
}

// comparisonOps is the closed set {=, <>, <, <=, >, >=} used by
// IsComparisonOperator and IsJoinQual.
var comparisonOps = map[BinaryOpKind]bool{
	OpEq: true, OpNe: true, OpLt: true, OpLe: true, OpGt: true, OpGe: true,
}

// Binary is a two-operand expression: comparison, logical, or
// arithmetic.
type Binary struct {
	Op    BinaryOpKind
	Left  EvalNode
	Right EvalNode
	DType types.DataType
}

// NewBinary builds a Binary expression over the given operator and
// operands, with the given result type.
func NewBinary(op BinaryOpKind, left, right EvalNode, t types.DataType) *Binary {
	return &Binary{Op: op, Left: left, Right: right, DType: t}
}

func (b *Binary) Kind() Kind           { return KindBinary }
func (b *Binary) Type() types.DataType { return b.DType }
func (b *Binary) Children() []EvalNode { return []EvalNode{b.Left, b.Right} }
func (b *Binary) AutoName() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.AutoName(), b.Op, b.Right.AutoName())
}

func (b *Binary) Clone() EvalNode {
	cp := *b
	cp.Left = b.Left.Clone()
	cp.Right = b.Right.Clone()
	return &cp
}

func (b *Binary) Equal(other EvalNode) bool {
	o, ok := other.(*Binary)
	if !ok {
		return false
	}
	return b.Op == o.Op && b.DType == o.DType && b.Left.Equal(o.Left) && b.Right.Equal(o.Right)
}

// IsComparisonOperator reports whether e is a Binary expression using
// one of {=, <>, <, <=, >, >=}.
func IsComparisonOperator(e EvalNode) bool {
	b, ok := e.(*Binary)
	if !ok {
		return false
	}
	return comparisonOps[b.Op]
}
