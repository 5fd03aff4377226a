package rewrite

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lp-core/logicalplan/expr"
	"github.com/lp-core/logicalplan/plan"
	"github.com/lp-core/logicalplan/planerr"
	"github.com/lp-core/logicalplan/schema"
	"github.com/lp-core/logicalplan/types"
)

func sampleSchema() schema.Schema {
	return schema.Schema{
		schema.NewColumn("", "a", types.Int),
		schema.NewColumn("", "b", types.Varchar),
	}
}

func TestDeleteNodeSplicesUnaryParent(t *testing.T) {
	pf := plan.NewPIDFactory()
	scan := plan.NewScanNode(pf, "db.t", "", sampleSchema())
	filter := plan.NewFilterNode(pf, expr.NewLiteral(true, types.Boolean), scan)
	having := plan.NewHavingNode(pf, expr.NewLiteral(true, types.Boolean), filter)

	result, err := DeleteNode(having, filter)
	require.NoError(t, err)
	require.Equal(t, 1, len(result.Children()))
	require.True(t, plan.DeepEquals(result.Children()[0], scan))
}

func TestDeleteNodeSplicesBinaryParentRightSide(t *testing.T) {
	pf := plan.NewPIDFactory()
	left := plan.NewScanNode(pf, "db.l", "", sampleSchema())
	rightScan := plan.NewScanNode(pf, "db.r", "", sampleSchema())
	rightFilter := plan.NewFilterNode(pf, expr.NewLiteral(true, types.Boolean), rightScan)
	join := plan.NewJoinNode(pf, plan.JoinInner, nil, left, rightFilter)

	result, err := DeleteNode(join, rightFilter)
	require.NoError(t, err)
	children := result.Children()
	require.True(t, plan.DeepEquals(children[0], left))
	require.True(t, plan.DeepEquals(children[1], rightScan))
}

func TestDeleteNodeRejectsNonUnaryTarget(t *testing.T) {
	pf := plan.NewPIDFactory()
	left := plan.NewScanNode(pf, "db.l", "", sampleSchema())
	right := plan.NewScanNode(pf, "db.r", "", sampleSchema())
	join := plan.NewJoinNode(pf, plan.JoinInner, nil, left, right)
	having := plan.NewHavingNode(pf, expr.NewLiteral(true, types.Boolean), join)

	_, err := DeleteNode(having, join)
	require.Error(t, err)
}

func TestDeleteNodeRejectsNodeNotAChild(t *testing.T) {
	pf := plan.NewPIDFactory()
	scanA := plan.NewScanNode(pf, "db.a", "", sampleSchema())
	scanB := plan.NewScanNode(pf, "db.b", "", sampleSchema())
	filterA := plan.NewFilterNode(pf, expr.NewLiteral(true, types.Boolean), scanA)
	unrelatedFilter := plan.NewFilterNode(pf, expr.NewLiteral(false, types.Boolean), scanB)

	_, err := DeleteNode(filterA, unrelatedFilter)
	require.Error(t, err)
}

func TestReplaceNodeSubstitutesEveryStructuralMatch(t *testing.T) {
	pf := plan.NewPIDFactory()
	scan := plan.NewScanNode(pf, "db.t", "", sampleSchema())
	filter := plan.NewFilterNode(pf, expr.NewLiteral(true, types.Boolean), scan)
	root := plan.NewRootNode(pf, filter)

	replacementScan := plan.NewScanNode(pf, "db.other", "", sampleSchema())
	result, err := ReplaceNode(root, scan, replacementScan)
	require.NoError(t, err)

	found, ok := result.Children()[0].Children()[0].(*plan.ScanNode)
	require.True(t, ok)
	require.Equal(t, "db.other", found.TableQualifiedName)
}

func TestReplaceNodeSubstitutesBothSidesOfABinaryNode(t *testing.T) {
	pf := plan.NewPIDFactory()
	leaf := plan.NewScanNode(pf, "db.shared", "", sampleSchema())
	join := plan.NewJoinNode(pf, plan.JoinInner, nil, leaf, leaf)

	replacement := plan.NewScanNode(pf, "db.replaced", "", sampleSchema())
	result, err := ReplaceNode(join, leaf, replacement)
	require.NoError(t, err)

	children := result.Children()
	for _, c := range children {
		got, ok := c.(*plan.ScanNode)
		require.True(t, ok)
		require.Equal(t, "db.replaced", got.TableQualifiedName)
	}
}

func TestReplaceNodeNoMatchLeavesTreeUnchanged(t *testing.T) {
	pf := plan.NewPIDFactory()
	scan := plan.NewScanNode(pf, "db.t", "", sampleSchema())
	filter := plan.NewFilterNode(pf, expr.NewLiteral(true, types.Boolean), scan)

	unrelated := plan.NewScanNode(pf, "db.nomatch", "", sampleSchema())
	replacement := plan.NewScanNode(pf, "db.repl", "", sampleSchema())

	result, err := ReplaceNode(filter, unrelated, replacement)
	require.NoError(t, err)
	require.True(t, plan.DeepEquals(result, filter))
}

func TestReplaceNodeOfKindExcisesUnaryChildAndPromotesGrandchild(t *testing.T) {
	pf := plan.NewPIDFactory()
	scan := plan.NewScanNode(pf, "db.t", "", sampleSchema())
	filter := plan.NewFilterNode(pf, expr.NewLiteral(true, types.Boolean), scan)
	having := plan.NewHavingNode(pf, expr.NewLiteral(true, types.Boolean), filter)

	replacement := plan.NewSortNode(pf, nil, nil)
	result, err := ReplaceNodeOfKind(having, replacement, plan.KindFilter)
	require.NoError(t, err)

	sort, ok := result.Children()[0].(*plan.SortNode)
	require.True(t, ok)
	require.True(t, plan.DeepEquals(sort.Children()[0], scan))
}

func TestReplaceNodeOfKindRejectsNonUnaryParent(t *testing.T) {
	pf := plan.NewPIDFactory()
	left := plan.NewScanNode(pf, "db.l", "", sampleSchema())
	right := plan.NewScanNode(pf, "db.r", "", sampleSchema())
	join := plan.NewJoinNode(pf, plan.JoinInner, nil, left, right)

	replacement := plan.NewScanNode(pf, "db.replaced", "", sampleSchema())
	_, err := ReplaceNodeOfKind(join, replacement, plan.KindScan)
	require.Error(t, err)
}

func TestReplaceNodeOfKindNoMatchLeavesTreeUnchanged(t *testing.T) {
	pf := plan.NewPIDFactory()
	scan := plan.NewScanNode(pf, "db.t", "", sampleSchema())
	filter := plan.NewFilterNode(pf, expr.NewLiteral(true, types.Boolean), scan)

	replacement := plan.NewScanNode(pf, "db.replaced", "", sampleSchema())
	result, err := ReplaceNodeOfKind(filter, replacement, plan.KindJoin)
	require.NoError(t, err)
	require.True(t, plan.DeepEquals(result, filter))
}

func TestTransformUpPropagatesErrorsFromNodeFunc(t *testing.T) {
	pf := plan.NewPIDFactory()
	scan := plan.NewScanNode(pf, "db.t", "", sampleSchema())
	filter := plan.NewFilterNode(pf, expr.NewLiteral(true, types.Boolean), scan)
	boom := planerr.ErrUnsupportedPlan.New("no scans allowed")

	_, _, err := TransformUp(filter, func(n plan.LogicalNode) (plan.LogicalNode, TreeIdentity, error) {
		if n.Kind() == plan.KindScan {
			return nil, SameTree, boom
		}
		return n, SameTree, nil
	})
	require.Error(t, err)
}
