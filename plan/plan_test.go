package plan

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lp-core/logicalplan/expr"
	"github.com/lp-core/logicalplan/schema"
	"github.com/lp-core/logicalplan/types"
)

func col(qualifier, name string, t types.DataType) schema.Column {
	return schema.NewColumn(qualifier, name, t)
}

func sampleSchema() schema.Schema {
	return schema.Schema{
		col("", "a", types.Int),
		col("", "b", types.Varchar),
	}
}

func TestPIDFactoryAllocatesStrictlyIncreasing(t *testing.T) {
	pf := NewPIDFactory()
	seen := map[int64]bool{}
	var prev int64
	for i := 0; i < 5; i++ {
		pid := pf.NextPID()
		require.False(t, seen[pid], "pid %d reused", pid)
		seen[pid] = true
		if i > 0 {
			require.Greater(t, pid, prev)
		}
		prev = pid
	}
}

func TestScanNodeQualifiesOutputColumns(t *testing.T) {
	pf := NewPIDFactory()
	scan := NewScanNode(pf, "db.t", "", sampleSchema())
	require.Equal(t, "db.t.a", scan.OutSchema()[0].QualifiedName())
	require.Equal(t, "db.t.b", scan.OutSchema()[1].QualifiedName())

	aliased := NewScanNode(pf, "db.t", "x", sampleSchema())
	require.Equal(t, "x.a", aliased.OutSchema()[0].QualifiedName())
	require.Equal(t, "x", aliased.CanonicalName())
}

func TestUnarySchemaChaining(t *testing.T) {
	pf := NewPIDFactory()
	scan := NewScanNode(pf, "db.t", "", sampleSchema())
	filter := NewFilterNode(pf, expr.NewLiteral(true, types.Boolean), scan)

	require.True(t, filter.InSchema().Equal(scan.OutSchema()))
	require.True(t, filter.OutSchema().Equal(scan.OutSchema()))
}

func TestBinarySchemaChainingIsLeftOuterRightInner(t *testing.T) {
	pf := NewPIDFactory()
	left := NewScanNode(pf, "db.l", "", sampleSchema())
	right := NewScanNode(pf, "db.r", "", sampleSchema())
	join := NewJoinNode(pf, JoinInner, nil, left, right)

	want := schema.Concat(left.OutSchema(), right.OutSchema())
	require.True(t, join.InSchema().Equal(want))
	require.True(t, join.OutSchema().Equal(want))
	require.Equal(t, left, join.Left())
	require.Equal(t, right, join.Right())
}

func TestWithChildrenRejectsWrongArity(t *testing.T) {
	pf := NewPIDFactory()
	scan := NewScanNode(pf, "db.t", "", sampleSchema())
	filter := NewFilterNode(pf, expr.NewLiteral(true, types.Boolean), scan)

	_, err := filter.WithChildren()
	require.Error(t, err)

	_, err = filter.WithChildren(scan, scan)
	require.Error(t, err)
}

func TestCloneStampsFreshPIDAndIsIndependent(t *testing.T) {
	pf := NewPIDFactory()
	scan := NewScanNode(pf, "db.t", "", sampleSchema())
	clone := scan.Clone(pf).(*ScanNode)

	require.NotEqual(t, scan.PID(), clone.PID())
	require.True(t, DeepEquals(scan, clone))

	clone.TableQualifiedName = "db.other"
	require.NotEqual(t, scan.TableQualifiedName, clone.TableQualifiedName)
}

func TestDeepEqualsIgnoresPID(t *testing.T) {
	pf1 := NewPIDFactory()
	pf2 := NewPIDFactory()
	// Burn a PID on pf2 so the two factories are out of sync, proving
	// DeepEquals doesn't depend on matching absolute PID values.
	pf2.NextPID()

	a := NewScanNode(pf1, "db.t", "", sampleSchema())
	b := NewScanNode(pf2, "db.t", "", sampleSchema())
	require.NotEqual(t, a.PID(), b.PID())
	require.True(t, DeepEquals(a, b))

	c := NewScanNode(pf2, "db.other", "", sampleSchema())
	require.False(t, DeepEquals(a, c))
}

func TestDeepEqualsRecursesIntoChildren(t *testing.T) {
	pf := NewPIDFactory()
	scanA := NewScanNode(pf, "db.t", "", sampleSchema())
	filterA := NewFilterNode(pf, expr.NewLiteral(int64(1), types.Int), scanA)

	scanB := NewScanNode(pf, "db.t", "", sampleSchema())
	filterB := NewFilterNode(pf, expr.NewLiteral(int64(1), types.Int), scanB)

	require.True(t, DeepEquals(filterA, filterB))

	filterC := NewFilterNode(pf, expr.NewLiteral(int64(2), types.Int), scanB)
	require.False(t, DeepEquals(filterA, filterC))
}

func TestHashCodeConsistentWithDeepEquals(t *testing.T) {
	pf := NewPIDFactory()
	a := NewScanNode(pf, "db.t", "", sampleSchema())
	b := NewScanNode(pf, "db.t", "", sampleSchema())
	require.True(t, DeepEquals(a, b))

	ha, err := HashCode(a)
	require.NoError(t, err)
	hb, err := HashCode(b)
	require.NoError(t, err)
	require.Equal(t, ha, hb)

	c := NewScanNode(pf, "db.other", "", sampleSchema())
	hc, err := HashCode(c)
	require.NoError(t, err)
	require.NotEqual(t, ha, hc)
}

func TestPlanWrapperAssignsRootAndID(t *testing.T) {
	pf := NewPIDFactory()
	scan := NewScanNode(pf, "db.t", "", sampleSchema())
	p := NewPlan(pf, scan)

	require.NotEqual(t, p.PlanID.String(), "")
	require.Equal(t, KindRoot, p.Root.Kind())
	require.Same(t, pf, p.PIDFactory())

	got := p.Root.Children()
	require.Len(t, got, 1)
	require.Equal(t, scan, got[0])
}

func TestExplainRendersIndentedTree(t *testing.T) {
	pf := NewPIDFactory()
	scan := NewScanNode(pf, "db.t", "", sampleSchema())
	filter := NewFilterNode(pf, expr.NewLiteral(true, types.Boolean), scan)

	out := Explain(filter)
	require.Contains(t, out, "Filter(")
	require.Contains(t, out, "  Scan(db.t)")
}

func TestDumpYAMLRendersNodeText(t *testing.T) {
	pf := NewPIDFactory()
	scan := NewScanNode(pf, "db.t", "", sampleSchema())
	out, err := DumpYAML(scan)
	require.NoError(t, err)
	require.Contains(t, out, "node: Scan(db.t)")
}

func TestSetOpOutSchemaIsLeftChild(t *testing.T) {
	pf := NewPIDFactory()
	left := NewScanNode(pf, "db.l", "", sampleSchema())
	right := NewScanNode(pf, "db.r", "", sampleSchema())
	u := NewSetOpNode(pf, SetOpUnion, false, left, right)

	require.True(t, u.OutSchema().Equal(left.OutSchema()))
	require.Equal(t, KindUnion, u.Kind())
}

func TestGroupByRecomputeSchema(t *testing.T) {
	pf := NewPIDFactory()
	scan := NewScanNode(pf, "db.t", "", sampleSchema())
	a, _ := scan.OutSchema().GetColumnByName("a")
	targets := []expr.Target{expr.NewTarget(expr.NewFieldRef(a))}
	gb := NewGroupByNode(pf, []schema.Column{a}, targets, scan)

	require.Len(t, gb.OutSchema(), 1)

	gb.Targets = append(gb.Targets, expr.NewAliasedTarget(expr.NewLiteral(int64(1), types.Int), "one"))
	gb.RecomputeSchema()
	require.Len(t, gb.OutSchema(), 2)
	require.Equal(t, "one", gb.OutSchema()[1].Name)
}

func TestDDLLeafNodesRejectChildren(t *testing.T) {
	pf := NewPIDFactory()
	ct := NewCreateTableNode(pf, "db.t", sampleSchema(), false)
	require.Equal(t, KindCreateTable, ct.Kind())
	require.Empty(t, ct.Children())

	_, err := ct.WithChildren(NewTerminalNode(pf))
	require.Error(t, err)
}

func TestInsertAndStoreArePassThroughUnary(t *testing.T) {
	pf := NewPIDFactory()
	scan := NewScanNode(pf, "db.t", "", sampleSchema())
	ins := NewInsertNode(pf, "db.other", scan)
	require.True(t, ins.OutSchema().Equal(scan.OutSchema()))

	store := NewStoreNode(pf, "shuffle-1", scan)
	require.True(t, store.OutSchema().Equal(scan.OutSchema()))
	require.Equal(t, "Store(shuffle-1)", store.PlanString())
}
