package plan

import (
	"fmt"

	"github.com/lp-core/logicalplan/planerr"
	"github.com/lp-core/logicalplan/schema"
)

// leafBase is embedded by every leaf node kind (scan, childless DDL):
// no children, out schema set at construction, in schema is always
// empty.
type leafBase struct {
	pid int64
	out schema.Schema
}

func (l *leafBase) PID() int64                   { return l.pid }
func (l *leafBase) Shape() Shape                  { return ShapeLeaf }
func (l *leafBase) Children() []LogicalNode       { return nil }
func (l *leafBase) InSchema() schema.Schema       { return nil }
func (l *leafBase) OutSchema() schema.Schema      { return l.out }

// checkLeafChildren validates the WithChildren contract for a leaf
// node: it must be called with zero children.
func checkLeafChildren(kind Kind, children []LogicalNode) error {
	if len(children) != 0 {
		return planerr.ErrInvariantViolation.New(
			fmt.Sprintf("%s is a leaf node and accepts no children, got %d", kind, len(children)))
	}
	return nil
}

// unaryBase is embedded by every unary node kind: exactly one child,
// in schema chains from the child's out schema.
type unaryBase struct {
	pid   int64
	child LogicalNode
}

func (u *unaryBase) PID() int64             { return u.pid }
func (u *unaryBase) Shape() Shape           { return ShapeUnary }
func (u *unaryBase) Children() []LogicalNode { return []LogicalNode{u.child} }
func (u *unaryBase) Child() LogicalNode     { return u.child }

func (u *unaryBase) InSchema() schema.Schema {
	if u.child == nil {
		return nil
	}
	return u.child.OutSchema()
}

func checkUnaryChildren(kind Kind, children []LogicalNode) (LogicalNode, error) {
	if len(children) != 1 {
		return nil, planerr.ErrInvariantViolation.New(
			fmt.Sprintf("%s is a unary node and requires exactly one child, got %d", kind, len(children)))
	}
	return children[0], nil
}

// binaryBase is embedded by every binary node kind: exactly two
// ordered children (left, right); in schema is the concatenation of
// their out schemas, with the left=outer, right=inner convention.
type binaryBase struct {
	pid         int64
	left, right LogicalNode
}

func (b *binaryBase) PID() int64 { return b.pid }
func (b *binaryBase) Shape() Shape { return ShapeBinary }
func (b *binaryBase) Children() []LogicalNode { return []LogicalNode{b.left, b.right} }
func (b *binaryBase) Left() LogicalNode  { return b.left }
func (b *binaryBase) Right() LogicalNode { return b.right }

func (b *binaryBase) InSchema() schema.Schema {
	if b.left == nil || b.right == nil {
		return nil
	}
	return schema.Concat(b.left.OutSchema(), b.right.OutSchema())
}

func checkBinaryChildren(kind Kind, children []LogicalNode) (LogicalNode, LogicalNode, error) {
	if len(children) != 2 {
		return nil, nil, planerr.ErrInvariantViolation.New(
			fmt.Sprintf("%s is a binary node and requires exactly two children, got %d", kind, len(children)))
	}
	return children[0], children[1], nil
}
