package plan

import "reflect"

// DeepEquals reports whether a and b are structurally equal: same
// kind, same payload, same children, recursively. PIDs are excluded
// from the comparison, since they are plan-local bookkeeping rather
// than semantic content — two plans built independently with their
// own PIDFactory can still be the same plan.
func DeepEquals(a, b LogicalNode) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind() != b.Kind() {
		return false
	}
	if !payloadEqual(a, b) {
		return false
	}
	ac, bc := a.Children(), b.Children()
	if len(ac) != len(bc) {
		return false
	}
	for i := range ac {
		if !DeepEquals(ac[i], bc[i]) {
			return false
		}
	}
	return true
}

// payloadEqual compares the node-specific fields of a and b, ignoring
// the embedded pid/child/left/right bookkeeping that DeepEquals
// already accounts for via Kind and Children.
func payloadEqual(a, b LogicalNode) bool {
	av := stripIdentity(a)
	bv := stripIdentity(b)
	return reflect.DeepEqual(av, bv)
}

// stripLeaf zeroes pid, keeping out intact.
func stripLeaf(b leafBase) leafBase { return leafBase{out: b.out} }

// stripUnary zeroes pid and the child pointer: the child is compared
// separately, recursively, by DeepEquals.
func stripUnary(b unaryBase) unaryBase { return unaryBase{} }

// stripBinary zeroes pid and both child pointers, for the same reason
// as stripUnary.
func stripBinary(b binaryBase) binaryBase { return binaryBase{} }

// stripIdentity returns a shallow copy of n's payload with its PID and
// child pointers zeroed, so reflect.DeepEqual only sees the fields a
// node type actually adds.
func stripIdentity(n LogicalNode) interface{} {
	switch v := n.(type) {
	case *RootNode:
		cp := *v
		cp.unaryBase = stripUnary(v.unaryBase)
		return cp
	case *TerminalNode:
		cp := *v
		cp.leafBase = stripLeaf(v.leafBase)
		return cp
	case *ScanNode:
		cp := *v
		cp.leafBase = stripLeaf(v.leafBase)
		return cp
	case *PartitionedScanNode:
		cp := *v
		cp.leafBase = stripLeaf(v.leafBase)
		return cp
	case *TableSubqueryNode:
		cp := *v
		cp.unaryBase = stripUnary(v.unaryBase)
		return cp
	case *FilterNode:
		cp := *v
		cp.unaryBase = stripUnary(v.unaryBase)
		return cp
	case *ProjectionNode:
		cp := *v
		cp.unaryBase = stripUnary(v.unaryBase)
		return cp
	case *GroupByNode:
		cp := *v
		cp.unaryBase = stripUnary(v.unaryBase)
		return cp
	case *HavingNode:
		cp := *v
		cp.unaryBase = stripUnary(v.unaryBase)
		return cp
	case *SortNode:
		cp := *v
		cp.unaryBase = stripUnary(v.unaryBase)
		return cp
	case *LimitNode:
		cp := *v
		cp.unaryBase = stripUnary(v.unaryBase)
		return cp
	case *JoinNode:
		cp := *v
		cp.binaryBase = stripBinary(v.binaryBase)
		return cp
	case *SetOpNode:
		cp := *v
		cp.binaryBase = stripBinary(v.binaryBase)
		return cp
	case *InsertNode:
		cp := *v
		cp.unaryBase = stripUnary(v.unaryBase)
		return cp
	case *CreateTableNode:
		cp := *v
		cp.leafBase = stripLeaf(v.leafBase)
		return cp
	case *DropTableNode:
		cp := *v
		cp.leafBase = stripLeaf(v.leafBase)
		return cp
	case *CreateDatabaseNode:
		cp := *v
		cp.leafBase = stripLeaf(v.leafBase)
		return cp
	case *DropDatabaseNode:
		cp := *v
		cp.leafBase = stripLeaf(v.leafBase)
		return cp
	case *CreateIndexNode:
		cp := *v
		cp.leafBase = stripLeaf(v.leafBase)
		return cp
	case *DropIndexNode:
		cp := *v
		cp.leafBase = stripLeaf(v.leafBase)
		return cp
	case *StoreNode:
		cp := *v
		cp.unaryBase = stripUnary(v.unaryBase)
		return cp
	default:
		return n
	}
}
