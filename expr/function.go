package expr

import "github.com/lp-core/logicalplan/types"

// FunctionKind distinguishes scalar from aggregate functions, as
// returned by the catalog's function lookup.
type FunctionKind int

const (
	FunctionScalar FunctionKind = iota
	FunctionAggregate
)

// FunctionDesc is the catalog's description of a function: signature,
// return type, and kind. The core treats it as an opaque, externally
// produced value.
type FunctionDesc struct {
	Name       string
	ReturnType types.DataType
	Kind       FunctionKind
}
