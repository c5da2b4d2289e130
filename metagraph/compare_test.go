package metagraph_test

import (
	"testing"

	"github.com/dinesharanathunga/mgtoolkit/core"
	"github.com/dinesharanathunga/mgtoolkit/metagraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDominates_SelfIsReflexive(t *testing.T) {
	mg := chainMetagraph(t)
	ok, err := mg.Dominates(mg)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestEquivalent_SelfIsTrue(t *testing.T) {
	mg := chainMetagraph(t)
	ok, err := mg.Equivalent(mg)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAddMetagraph_UnionsEdgesAndGeneratingSets(t *testing.T) {
	a := chainMetagraph(t)
	gs := core.NewSet("x3", "x4")
	b, err := metagraph.New(gs)
	require.NoError(t, err)
	e := newEdge(t, core.NewSet("x3"), core.NewSet("x4"), core.WithLabel("e5"))
	require.NoError(t, b.AddEdge(e))

	combined, err := a.AddMetagraph(b)
	require.NoError(t, err)
	assert.True(t, combined.GeneratingSet.Contains("x4"))
	assert.Len(t, combined.Edges(), 3)
}

func TestMultiplyMetagraph_RequiresIdenticalGeneratingSet(t *testing.T) {
	a := chainMetagraph(t)
	b, err := metagraph.New(core.NewSet("y1", "y2"))
	require.NoError(t, err)

	_, err = a.MultiplyMetagraph(b)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInconsistency)
}

func TestMultiplyMetagraph_ComposesAdjacency(t *testing.T) {
	gs := core.NewSet("x1", "x2", "x3")
	a, err := metagraph.New(gs)
	require.NoError(t, err)
	require.NoError(t, a.AddEdge(newEdge(t, core.NewSet("x1"), core.NewSet("x2"), core.WithLabel("e1"))))

	b, err := metagraph.New(gs)
	require.NoError(t, err)
	require.NoError(t, b.AddEdge(newEdge(t, core.NewSet("x2"), core.NewSet("x3"), core.WithLabel("e2"))))

	product, err := a.MultiplyMetagraph(b)
	require.NoError(t, err)
	assert.NotEmpty(t, product.Edges())
}
