package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lp-core/logicalplan/expr"
	"github.com/lp-core/logicalplan/plan"
	"github.com/lp-core/logicalplan/schema"
	"github.com/lp-core/logicalplan/types"
)

type mockCatalog struct {
	tables map[string]TableDesc
}

func (m *mockCatalog) LookupTable(_ context.Context, qualifiedName string) (TableDesc, bool, error) {
	desc, ok := m.tables[qualifiedName]
	return desc, ok, nil
}

func (m *mockCatalog) HasDatabase(_ context.Context, name string) bool { return false }
func (m *mockCatalog) HasTable(_ context.Context, qualifiedName string) bool {
	_, ok := m.tables[qualifiedName]
	return ok
}
func (m *mockCatalog) HasIndex(_ context.Context, table, index string) bool { return false }

type mockFunctionCatalog struct {
	functions map[string]expr.FunctionDesc
}

func (m *mockFunctionCatalog) LookupFunction(_ context.Context, name string) (expr.FunctionDesc, bool, error) {
	desc, ok := m.functions[name]
	return desc, ok, nil
}

func TestLookupTableDelegatesToCatalog(t *testing.T) {
	cat := &mockCatalog{tables: map[string]TableDesc{
		"db.t": {Name: "db.t", Schema: tableSchema("db.t", "x")},
	}}

	desc, ok, err := LookupTable(context.Background(), cat, "db.t")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "db.t", desc.Name)

	_, ok, err = LookupTable(context.Background(), cat, "db.missing")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestLookupFunctionDelegatesToFunctionCatalog(t *testing.T) {
	fc := &mockFunctionCatalog{functions: map[string]expr.FunctionDesc{
		"sum": {Name: "sum", ReturnType: types.Int, Kind: expr.FunctionAggregate},
	}}

	desc, ok, err := LookupFunction(context.Background(), fc, "sum")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "sum", desc.Name)

	_, ok, err = LookupFunction(context.Background(), fc, "missing")
	require.NoError(t, err)
	require.False(t, ok)
}

func tableSchema(qualifier string, names ...string) schema.Schema {
	out := make(schema.Schema, len(names))
	for i, n := range names {
		out[i] = schema.NewColumn(qualifier, n, types.Int)
	}
	return out
}

// TestCanBeEvaluatedOnJoinPushable is S1's pushable case: a.x = b.y at
// Join(Scan(a), Scan(b)) is evaluable.
func TestCanBeEvaluatedOnJoinPushable(t *testing.T) {
	pf := plan.NewPIDFactory()
	left := plan.NewScanNode(pf, "a", "", tableSchema("", "x"))
	right := plan.NewScanNode(pf, "b", "", tableSchema("", "y"))
	join := plan.NewJoinNode(pf, plan.JoinInner, nil, left, right)

	pred := expr.NewBinary(expr.OpEq,
		expr.NewFieldRef(schema.NewColumn("a", "x", types.Int)),
		expr.NewFieldRef(schema.NewColumn("b", "y", types.Int)),
		types.Boolean)

	ok, err := CanBeEvaluated(pred, join)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestCanBeEvaluatedOnJoinSingleQualifierIsFalse is S1's non-pushable
// case: a.x = a.z only ever touches one side.
func TestCanBeEvaluatedOnJoinSingleQualifierIsFalse(t *testing.T) {
	pf := plan.NewPIDFactory()
	left := plan.NewScanNode(pf, "a", "", tableSchema("", "x", "z"))
	right := plan.NewScanNode(pf, "b", "", tableSchema("", "y"))
	join := plan.NewJoinNode(pf, plan.JoinInner, nil, left, right)

	pred := expr.NewBinary(expr.OpEq,
		expr.NewFieldRef(schema.NewColumn("a", "x", types.Int)),
		expr.NewFieldRef(schema.NewColumn("a", "z", types.Int)),
		types.Boolean)

	ok, err := CanBeEvaluated(pred, join)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCanBeEvaluatedOnScanRequiresMatchingQualifier(t *testing.T) {
	pf := plan.NewPIDFactory()
	scan := plan.NewScanNode(pf, "a", "", tableSchema("", "x"))

	own := expr.NewFieldRef(schema.NewColumn("a", "x", types.Int))
	ok, err := CanBeEvaluated(own, scan)
	require.NoError(t, err)
	require.True(t, ok)

	foreign := expr.NewFieldRef(schema.NewColumn("b", "y", types.Int))
	ok, err = CanBeEvaluated(foreign, scan)
	require.NoError(t, err)
	require.False(t, ok)
}

// TestGetJoinKeyPairsWithReversedOperands is S2: predicate (b.y = a.x)
// AND (a.k > 5), left schema {a.x,a.k}, right schema {b.y}; expect
// exactly one pair (a.x, b.y), the range predicate ignored.
func TestGetJoinKeyPairsWithReversedOperands(t *testing.T) {
	leftSchema := tableSchema("a", "x", "k")
	rightSchema := tableSchema("b", "y")

	joinQual := expr.NewBinary(expr.OpAnd,
		expr.NewBinary(expr.OpEq,
			expr.NewFieldRef(schema.NewColumn("b", "y", types.Int)),
			expr.NewFieldRef(schema.NewColumn("a", "x", types.Int)),
			types.Boolean),
		expr.NewBinary(expr.OpGt,
			expr.NewFieldRef(schema.NewColumn("a", "k", types.Int)),
			expr.NewLiteral(5, types.Int),
			types.Boolean),
		types.Boolean)

	pairs, err := GetJoinKeyPairs(joinQual, leftSchema, rightSchema)
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	require.Equal(t, schema.NewColumn("a", "x", types.Int), pairs[0].Left)
	require.Equal(t, schema.NewColumn("b", "y", types.Int), pairs[0].Right)
}

func TestGetJoinKeyPairsRejectsUnassignableSides(t *testing.T) {
	leftSchema := tableSchema("a", "x")
	rightSchema := tableSchema("b", "y")

	joinQual := expr.NewBinary(expr.OpEq,
		expr.NewFieldRef(schema.NewColumn("c", "z", types.Int)),
		expr.NewFieldRef(schema.NewColumn("d", "w", types.Int)),
		types.Boolean)

	_, err := GetJoinKeyPairs(joinQual, leftSchema, rightSchema)
	require.Error(t, err)
}

// TestTransformGroupByTo2PSplitsExactShape is S3.
func TestTransformGroupByTo2PSplitsExactShape(t *testing.T) {
	pf := plan.NewPIDFactory()
	scan := plan.NewScanNode(pf, "t", "", tableSchema("t", "g", "v"))
	gCol := schema.NewColumn("t", "g", types.Int)
	vCol := schema.NewColumn("t", "v", types.Int)

	sumDesc := expr.FunctionDesc{Name: "sum", ReturnType: types.Int, Kind: expr.FunctionAggregate}
	sumCall := expr.NewAggCall(sumDesc, false, expr.NewFieldRef(vCol))

	targets := []expr.Target{
		expr.NewTarget(expr.NewFieldRef(gCol)),
		expr.NewAliasedTarget(sumCall, "total"),
	}
	gb := plan.NewGroupByNode(pf, []schema.Column{gCol}, targets, scan)

	parent, err := TransformGroupByTo2P(pf, gb)
	require.NoError(t, err)

	child, ok := parent.Children()[0].(*plan.GroupByNode)
	require.True(t, ok)

	require.Len(t, child.Targets, 2)
	require.Equal(t, "column_0", child.Targets[0].OutputName())
	childAgg, ok := child.Targets[0].Expr.(*expr.AggCall)
	require.True(t, ok)
	require.Equal(t, expr.PhaseFirst, childAgg.Phase)
	require.Equal(t, "g", child.Targets[1].OutputName())

	require.True(t, child.OutSchema().Contains("column_0"))
	require.True(t, child.OutSchema().Contains("g"))

	require.Equal(t, "g", parent.Targets[0].OutputName())
	require.Equal(t, "total", parent.Targets[1].OutputName())
	parentAgg, ok := parent.Targets[1].Expr.(*expr.AggCall)
	require.True(t, ok)
	require.Equal(t, expr.PhaseFinal, parentAgg.Phase)
	require.Len(t, parentAgg.Args, 1)
	fr, ok := parentAgg.Args[0].(*expr.FieldRef)
	require.True(t, ok)
	require.Equal(t, "column_0", fr.Column.Name)

	require.True(t, parent.InSchema().Equal(child.OutSchema()))
}

func TestTransformSortTo2PSharesSpecsByReference(t *testing.T) {
	pf := plan.NewPIDFactory()
	scan := plan.NewScanNode(pf, "t", "", tableSchema("t", "g"))
	specs := []plan.SortSpec{{Column: schema.NewColumn("t", "g", types.Int), Ascending: true}}
	sort := plan.NewSortNode(pf, specs, scan)

	result, err := TransformSortTo2P(pf, sort)
	require.NoError(t, err)

	child, ok := result.Children()[0].(*plan.SortNode)
	require.True(t, ok)
	require.NotEqual(t, sort.PID(), child.PID())
	require.Equal(t, sort.PID(), result.PID())

	specs[0].Ascending = false
	require.Equal(t, result.Specs[0].Ascending, child.Specs[0].Ascending)
}

// TestIsCommutativeJoin is S6.
func TestIsCommutativeJoin(t *testing.T) {
	require.True(t, IsCommutativeJoin(plan.JoinInner))
	require.False(t, IsCommutativeJoin(plan.JoinLeft))
}
