package expr

import (
	"fmt"

	"github.com/spf13/cast"

	"github.com/lp-core/logicalplan/types"
)

// Literal is a typed constant.
type Literal struct {
	Value any
	DType types.DataType

	autoName string
}

// NewLiteral builds a Literal, pre-computing its display name via
// spf13/cast so repeated AutoName calls (e.g. from targetsToSchema
// over a wide target list) don't re-stringify the value every time.
func NewLiteral(value any, t types.DataType) *Literal {
	name, err := cast.ToStringE(value)
	if err != nil {
		name = fmt.Sprintf("%v", value)
	}
	return &Literal{Value: value, DType: t, autoName: name}
}

func (l *Literal) Kind() Kind           { return KindLiteral }
func (l *Literal) Type() types.DataType { return l.DType }
func (l *Literal) Children() []EvalNode { return nil }
func (l *Literal) AutoName() string     { return l.autoName }
func (l *Literal) Clone() EvalNode      { cp := *l; return &cp }

func (l *Literal) Equal(other EvalNode) bool {
	o, ok := other.(*Literal)
	if !ok {
		return false
	}
	return l.DType == o.DType && l.Value == o.Value
}
