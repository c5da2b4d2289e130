package core_test

import (
	"testing"

	"github.com/dinesharanathunga/mgtoolkit/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet_UnionIntersectDifference(t *testing.T) {
	a := core.NewSet("x1", "x2", "x3")
	b := core.NewSet("x2", "x3", "x4")

	assert.Equal(t, core.NewSet("x1", "x2", "x3", "x4"), a.Union(b))
	assert.Equal(t, core.NewSet("x2", "x3"), a.Intersect(b))
	assert.Equal(t, core.NewSet("x1"), a.Difference(b))
}

func TestSet_OverlapsAndSubset(t *testing.T) {
	a := core.NewSet("x1")
	b := core.NewSet("x1", "x2")
	c := core.NewSet("x3")

	assert.True(t, a.Overlaps(b))
	assert.False(t, a.Overlaps(c))
	assert.True(t, a.IsSubsetOf(b))
	assert.False(t, b.IsSubsetOf(a))
}

func TestSet_EqualAndSlice(t *testing.T) {
	a := core.NewSet("x3", "x1", "x2")
	require.True(t, a.Equal(core.NewSet("x1", "x2", "x3")))
	assert.Equal(t, []core.Element{"x1", "x2", "x3"}, a.Slice())
}

func TestSet_CloneIsIndependent(t *testing.T) {
	a := core.NewSet("x1")
	b := a.Clone()
	b.Add("x2")

	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 2, b.Len())
}
