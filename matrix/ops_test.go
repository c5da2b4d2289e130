package matrix_test

import (
	"testing"

	"github.com/dinesharanathunga/mgtoolkit/core"
	"github.com/dinesharanathunga/mgtoolkit/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chain(t *testing.T) (core.Set, []*core.Edge) {
	t.Helper()
	gs := core.NewSet("x1", "x2", "x3")
	e1, err := core.NewEdge(core.NewSet("x1"), core.NewSet("x2"))
	require.NoError(t, err)
	e2, err := core.NewEdge(core.NewSet("x2"), core.NewSet("x3"))
	require.NoError(t, err)
	return gs, []*core.Edge{e1, e2}
}

func TestMultiply_RejectsMismatchedGeneratingSets(t *testing.T) {
	gs1 := core.NewSet("x1", "x2")
	gs2 := core.NewSet("x1", "x3")
	a := matrix.BuildAdjacency(gs1, nil)
	b := matrix.BuildAdjacency(gs2, nil)

	_, err := matrix.Multiply(a, b)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInconsistency)
}

func TestClosure_ConnectsTransitively(t *testing.T) {
	gs, edges := chain(t)
	m := matrix.BuildAdjacency(gs, edges)

	closure := matrix.Closure(m)

	i, j := closure.IndexOf("x1"), closure.IndexOf("x3")
	assert.NotEmpty(t, closure.At(i, j), "x1 must reach x3 through x2 in the closure")
}

func TestTranspose_SwapsCells(t *testing.T) {
	gs, edges := chain(t)
	m := matrix.BuildAdjacency(gs, edges)
	tm := matrix.Transpose(m)

	i, j := m.IndexOf("x1"), m.IndexOf("x2")
	assert.Equal(t, m.At(i, j), tm.At(j, i))
}

func TestAdd_UnionsCellsAcrossMatchingGeneratingSets(t *testing.T) {
	gs := core.NewSet("x1", "x2")
	e1, _ := core.NewEdge(core.NewSet("x1"), core.NewSet("x2"), core.WithLabel("e1"))
	e2, _ := core.NewEdge(core.NewSet("x1"), core.NewSet("x2"), core.WithLabel("e2"))

	a := matrix.BuildAdjacency(gs, []*core.Edge{e1})
	b := matrix.BuildAdjacency(gs, []*core.Edge{e2})

	combined, err := matrix.Add(a, b)
	require.NoError(t, err)
	i, j := combined.IndexOf("x1"), combined.IndexOf("x2")
	assert.Len(t, combined.At(i, j), 2)
}
