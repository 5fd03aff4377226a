package analysis

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/lp-core/logicalplan/expr"
	"github.com/lp-core/logicalplan/plan"
	"github.com/lp-core/logicalplan/planerr"
	"github.com/lp-core/logicalplan/schema"
)

// KeyPair is one equi-join key: a column from the left (outer) side
// paired with its matching column from the right (inner) side.
type KeyPair struct {
	Left, Right schema.Column
}

// GetJoinKeyPairs pre-order walks joinQual, splitting on AND, and at
// every subexpression expr.IsJoinQual recognizes, assigns its two
// columns to leftSchema/rightSchema by whichever schema contains each
// column's qualified name. Pair ordering is always (fromLeftSchema,
// fromRightSchema) regardless of the predicate's own operand order. A
// qual whose columns can't be assigned one to each schema fails with
// ErrMalformedExpression.
func GetJoinKeyPairs(joinQual expr.EvalNode, leftSchema, rightSchema schema.Schema) ([]KeyPair, error) {
	var quals []expr.EvalNode
	collectJoinQuals(joinQual, &quals)

	pairs := make([]KeyPair, 0, len(quals))
	for _, q := range quals {
		b := q.(*expr.Binary)
		leftCol := expr.FindAllColumnRefs(b.Left)[0]
		rightCol := expr.FindAllColumnRefs(b.Right)[0]

		switch {
		case leftSchema.Contains(leftCol.QualifiedName()) && rightSchema.Contains(rightCol.QualifiedName()):
			pairs = append(pairs, KeyPair{Left: leftCol, Right: rightCol})
		case leftSchema.Contains(rightCol.QualifiedName()) && rightSchema.Contains(leftCol.QualifiedName()):
			pairs = append(pairs, KeyPair{Left: rightCol, Right: leftCol})
		default:
			err := planerr.ErrMalformedExpression.New(
				fmt.Sprintf("MalformedJoinPredicate: neither %s nor %s assigns one column to each side", leftCol.QualifiedName(), rightCol.QualifiedName()))
			return nil, errors.WithStack(err)
		}
	}
	logger.WithFields(logrus.Fields{"quals": len(quals), "pairs": len(pairs)}).Debug("getJoinKeyPairs")
	return pairs, nil
}

// collectJoinQuals descends through AND conjunctions, collecting every
// subexpression expr.IsJoinQual recognizes. A non-AND, non-join-qual
// subexpression (a range predicate, say) is dropped rather than
// descended into further.
func collectJoinQuals(e expr.EvalNode, out *[]expr.EvalNode) {
	if e == nil {
		return
	}
	if b, ok := e.(*expr.Binary); ok && b.Op == expr.OpAnd {
		collectJoinQuals(b.Left, out)
		collectJoinQuals(b.Right, out)
		return
	}
	if expr.IsJoinQual(e) {
		*out = append(*out, e)
	}
}

// GetSortKeysFromJoinQual derives ascending, nulls-last sort specs for
// each side from the key pairs GetJoinKeyPairs returns, preserving
// their order.
func GetSortKeysFromJoinQual(joinQual expr.EvalNode, leftSchema, rightSchema schema.Schema) (leftSpecs, rightSpecs []plan.SortSpec, err error) {
	pairs, err := GetJoinKeyPairs(joinQual, leftSchema, rightSchema)
	if err != nil {
		return nil, nil, err
	}
	leftSpecs = make([]plan.SortSpec, len(pairs))
	rightSpecs = make([]plan.SortSpec, len(pairs))
	for i, p := range pairs {
		leftSpecs[i] = plan.SortSpec{Column: p.Left, Ascending: true, NullsFirst: false}
		rightSpecs[i] = plan.SortSpec{Column: p.Right, Ascending: true, NullsFirst: false}
	}
	return leftSpecs, rightSpecs, nil
}

// RowComparator orders two same-shape row tuples by a fixed list of
// sort keys. Nothing in this core ever calls one — it is produced for
// a merge-join physical operator downstream to consume.
type RowComparator func(left, right []interface{}) int

// GetComparatorsFromJoinQual builds a RowComparator for each side from
// the sort specs GetSortKeysFromJoinQual derives.
func GetComparatorsFromJoinQual(joinQual expr.EvalNode, leftSchema, rightSchema schema.Schema) (leftCmp, rightCmp RowComparator, err error) {
	leftSpecs, rightSpecs, err := GetSortKeysFromJoinQual(joinQual, leftSchema, rightSchema)
	if err != nil {
		return nil, nil, err
	}
	return buildComparator(leftSchema, leftSpecs), buildComparator(rightSchema, rightSpecs), nil
}

func buildComparator(s schema.Schema, specs []plan.SortSpec) RowComparator {
	idx := make([]int, len(specs))
	for i, sp := range specs {
		idx[i] = -1
		for j, c := range s {
			if c.Equal(sp.Column) {
				idx[i] = j
				break
			}
		}
	}
	return func(left, right []interface{}) int {
		for k, i := range idx {
			if i < 0 {
				continue
			}
			cmp := compareValues(left[i], right[i], specs[k].NullsFirst)
			if cmp != 0 {
				if !specs[k].Ascending {
					cmp = -cmp
				}
				return cmp
			}
		}
		return 0
	}
}

// compareValues is a minimal, type-switched ordering over the value
// kinds this core's DataType tags can carry. Ordering among unlike
// types is arbitrary but stable; it is the executor's job to never
// compare mismatched-type columns in practice.
func compareValues(a, b interface{}, nullsFirst bool) int {
	if a == nil && b == nil {
		return 0
	}
	if a == nil {
		if nullsFirst {
			return -1
		}
		return 1
	}
	if b == nil {
		if nullsFirst {
			return 1
		}
		return -1
	}

	switch av := a.(type) {
	case int:
		bv := b.(int)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		default:
			return 0
		}
	case int64:
		bv := b.(int64)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		default:
			return 0
		}
	case float64:
		bv := b.(float64)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		default:
			return 0
		}
	case string:
		bv := b.(string)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		default:
			return 0
		}
	case bool:
		bv := b.(bool)
		switch {
		case av == bv:
			return 0
		case !av:
			return -1
		default:
			return 1
		}
	default:
		return 0
	}
}

// IsCommutativeJoin reports whether swapping a join's two sides
// preserves its result set. Only INNER is commutative.
func IsCommutativeJoin(joinType plan.JoinType) bool {
	return joinType == plan.JoinInner
}
