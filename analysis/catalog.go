// Package analysis holds the planner-side analyses that sit above the
// node and expression model: predicate placement, join-key extraction,
// and the two-phase group-by/sort transforms distributed execution
// needs. Every analysis here is a pure function of its plan subtree
// plus whatever it reads from a Catalog/FunctionCatalog collaborator —
// nothing in this package keeps state across calls.
package analysis

import (
	"context"

	"github.com/opentracing/opentracing-go"

	"github.com/lp-core/logicalplan/expr"
	"github.com/lp-core/logicalplan/schema"
)

// TableDesc is the catalog's description of a table: its canonical
// name, its schema, and the partition keys the executor splits scans
// on.
type TableDesc struct {
	Name         string
	Schema       schema.Schema
	Partitioning []string
}

// Catalog is the table-side collaborator this package consumes.
// Implementations are expected to be pure lookups from planning's
// point of view: the same qualifiedName always resolves to the same
// TableDesc for the lifetime of a single planning pass.
type Catalog interface {
	LookupTable(ctx context.Context, qualifiedName string) (TableDesc, bool, error)
	HasDatabase(ctx context.Context, name string) bool
	HasTable(ctx context.Context, qualifiedName string) bool
	HasIndex(ctx context.Context, table, index string) bool
}

// FunctionCatalog is the function-side collaborator this package
// consumes.
type FunctionCatalog interface {
	LookupFunction(ctx context.Context, name string) (expr.FunctionDesc, bool, error)
}

// LookupTable wraps Catalog.LookupTable in a child span, the same way
// the teacher wraps every catalog/session round-trip made during
// analysis.
func LookupTable(ctx context.Context, cat Catalog, qualifiedName string) (TableDesc, bool, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "analysis.LookupTable")
	defer span.Finish()
	return cat.LookupTable(ctx, qualifiedName)
}

// LookupFunction wraps FunctionCatalog.LookupFunction in a child span.
func LookupFunction(ctx context.Context, fc FunctionCatalog, name string) (expr.FunctionDesc, bool, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "analysis.LookupFunction")
	defer span.Finish()
	return fc.LookupFunction(ctx, name)
}
