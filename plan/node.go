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

// Package plan is the tagged hierarchy of logical operator nodes:
// scan, join, filter, projection, group-by, sort, set operations,
// subquery, DDL, and root/terminal, with parent/child edges of arity
// 0/1/2 and per-node input/output schemas.
package plan

import "github.com/lp-core/logicalplan/schema"

// Kind is the closed tag drawn from the operator set this core
// supports.
type Kind int

const (
	KindRoot Kind = iota
	KindTerminal
	KindScan
	KindPartitionedScan
	KindTableSubquery
	KindFilter
	KindProjection
	KindGroupBy
	KindHaving
	KindSort
	KindLimit
	KindJoin
	KindUnion
	KindIntersect
	KindExcept
	KindInsert
	KindCreateTable
	KindDropTable
	KindCreateDatabase
	KindDropDatabase
	KindCreateIndex
	KindDropIndex
	KindStore
)

var kindNames = map[Kind]string{
	KindRoot:            "Root",
	KindTerminal:        "Terminal",
	KindScan:            "Scan",
	KindPartitionedScan: "PartitionedScan",
	KindTableSubquery:   "TableSubquery",
	KindFilter:          "Filter",
	KindProjection:      "Projection",
	KindGroupBy:         "GroupBy",
	KindHaving:          "Having",
	KindSort:            "Sort",
	KindLimit:           "Limit",
	KindJoin:            "Join",
	KindUnion:           "Union",
	KindIntersect:       "Intersect",
	KindExcept:          "Except",
	KindInsert:          "Insert",
	KindCreateTable:     "CreateTable",
	KindDropTable:       "DropTable",
	KindCreateDatabase:  "CreateDatabase",
	KindDropDatabase:    "DropDatabase",
	KindCreateIndex:     "CreateIndex",
	KindDropIndex:       "DropIndex",
	KindStore:           "Store",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}

// Shape classifies a node by its arity, so rewrites can dispatch
// exhaustively instead of relying on runtime type assertions alone.
type Shape int

const (
	ShapeLeaf Shape = iota
	ShapeUnary
	ShapeBinary
)

func (s Shape) String() string {
	switch s {
	case ShapeLeaf:
		return "Leaf"
	case ShapeUnary:
		return "Unary"
	case ShapeBinary:
		return "Binary"
	default:
		return "Unknown"
	}
}

// LogicalNode is the common shape of every planner tree node. Nodes
// carry no parent pointer: traversal helpers in package visit supply
// an explicit stack instead, keeping the tree acyclic.
type LogicalNode interface {
	// PID is this node's plan-local identifier, unique within its plan
	// and assigned by the plan's PIDFactory.
	PID() int64
	Kind() Kind
	Shape() Shape
	// InSchema is the schema of rows this node consumes.
	InSchema() schema.Schema
	// OutSchema is the schema of rows this node produces.
	OutSchema() schema.Schema
	// Children returns this node's children in positional order: empty
	// for a leaf, one element for a unary node, two for a binary node.
	Children() []LogicalNode
	// WithChildren returns a copy of this node with its children
	// replaced by newChildren, which must match this node's arity.
	WithChildren(newChildren ...LogicalNode) (LogicalNode, error)
	// Clone returns a structurally equal node with a fresh PID (stamped
	// from pf) and independently mutable payload. Children are not
	// recursively cloned.
	Clone(pf *PIDFactory) LogicalNode
	// PlanString is a stable, human-readable one-line summary used by
	// explain.
	PlanString() string
}
