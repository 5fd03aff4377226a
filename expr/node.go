// Copyright 2020-2021 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package expr is the scalar expression model: a recursive algebraic
// tree over columns, literals, function calls, and aggregates, plus
// the traversal helpers planner analyses use to find column
// references inside an expression.
package expr

import "github.com/lp-core/logicalplan/types"

// Kind is the closed tag of an EvalNode variant.
type Kind int

const (
	KindFieldRef Kind = iota
	KindLiteral
	KindBinary
	KindUnary
	KindFuncCall
	KindAggCall
)

func (k Kind) String() string {
	switch k {
	case KindFieldRef:
		return "FieldRef"
	case KindLiteral:
		return "Literal"
	case KindBinary:
		return "Binary"
	case KindUnary:
		return "Unary"
	case KindFuncCall:
		return "FuncCall"
	case KindAggCall:
		return "AggCall"
	default:
		return "Unknown"
	}
}

// EvalNode is a node of a scalar expression tree. Every variant
// exposes positional child access (empty for leaves), its computed
// value type, and a naming helper used to derive a default output
// column name when a Target carries no alias.
type EvalNode interface {
	Kind() Kind
	Type() types.DataType
	Children() []EvalNode
	// AutoName is the default display name used when a Target wrapping
	// this expression has no alias.
	AutoName() string
	// Clone returns a structurally equal, independently mutable copy.
	Clone() EvalNode
	// Equal reports structural equality (same kind, same payload, same
	// children in order).
	Equal(other EvalNode) bool
}

// WithChildren returns a copy of e with its children replaced by
// newChildren, matching e's arity. It mirrors plan.LogicalNode's
// WithChildren contract at the expression level and is how rewrites
// re-argument a call node without hand-rolling a type switch at every
// call site.
func WithChildren(e EvalNode, newChildren ...EvalNode) EvalNode {
	switch n := e.(type) {
	case *FieldRef:
		return n
	case *Literal:
		return n
	case *Binary:
		nn := *n
		nn.Left = newChildren[0]
		nn.Right = newChildren[1]
		return &nn
	case *Unary:
		nn := *n
		nn.Operand = newChildren[0]
		return &nn
	case *FuncCall:
		nn := *n
		nn.Args = append([]EvalNode(nil), newChildren...)
		return &nn
	case *AggCall:
		nn := *n
		nn.Args = append([]EvalNode(nil), newChildren...)
		return &nn
	default:
		return e
	}
}
