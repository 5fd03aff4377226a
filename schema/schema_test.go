package schema

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lp-core/logicalplan/types"
)

func TestColumnQualifiedName(t *testing.T) {
	c := NewColumn("a", "x", types.Int)
	require.Equal(t, "a.x", c.QualifiedName())
	require.True(t, c.HasQualifier())

	u := NewColumn("", "x", types.Int)
	require.Equal(t, "x", u.QualifiedName())
	require.False(t, u.HasQualifier())
}

func TestColumnEqual(t *testing.T) {
	a := NewColumn("a", "x", types.Int)
	b := NewColumn("a", "x", types.Int)
	c := NewColumn("a", "x", types.Varchar)
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
}

func TestSchemaContainsAndLookup(t *testing.T) {
	s := Schema{
		NewColumn("a", "x", types.Int),
		NewColumn("a", "y", types.Varchar),
		NewColumn("b", "y", types.Float),
	}

	require.True(t, s.Contains("a.x"))
	require.False(t, s.Contains("a.z"))

	col, ok := s.GetColumnByName("y")
	require.True(t, ok)
	require.Equal(t, "a", col.Qualifier) // first match in declaration order

	_, ok = s.GetColumnByName("z")
	require.False(t, ok)
}

func TestSchemaConcat(t *testing.T) {
	left := Schema{NewColumn("a", "x", types.Int)}
	right := Schema{NewColumn("b", "y", types.Varchar)}
	got := Concat(left, right)
	require.Equal(t, Schema{
		NewColumn("a", "x", types.Int),
		NewColumn("b", "y", types.Varchar),
	}, got)
}

func TestSchemaCloneIndependence(t *testing.T) {
	s := Schema{NewColumn("a", "x", types.Int)}
	clone := s.Clone()
	clone[0] = NewColumn("a", "z", types.Int)
	require.Equal(t, "x", s[0].Name)
}
