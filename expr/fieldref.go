package expr

import (
	"github.com/lp-core/logicalplan/schema"
	"github.com/lp-core/logicalplan/types"
)

// FieldRef is a reference to a column.
type FieldRef struct {
	Column schema.Column
}

// NewFieldRef builds a FieldRef over column.
func NewFieldRef(column schema.Column) *FieldRef {
	return &FieldRef{Column: column}
}

func (f *FieldRef) Kind() Kind           { return KindFieldRef }
func (f *FieldRef) Type() types.DataType { return f.Column.Type }
func (f *FieldRef) Children() []EvalNode { return nil }
func (f *FieldRef) AutoName() string     { return f.Column.Name }
func (f *FieldRef) Clone() EvalNode      { cp := *f; return &cp }

func (f *FieldRef) Equal(other EvalNode) bool {
	o, ok := other.(*FieldRef)
	if !ok {
		return false
	}
	return f.Column.Equal(o.Column)
}
