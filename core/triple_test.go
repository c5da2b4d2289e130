package core_test

import (
	"testing"

	"github.com/dinesharanathunga/mgtoolkit/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTriple_RejectsNilEdges(t *testing.T) {
	_, err := core.NewTriple(nil, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestTriple_AbsentVsPresentEmpty(t *testing.T) {
	absent, err := core.NewTriple(core.AbsentSet(), core.AbsentSet(), []*core.Edge{})
	require.NoError(t, err)

	presentEmpty, err := core.NewTriple(core.PresentSet(core.NewSet()), core.AbsentSet(), []*core.Edge{})
	require.NoError(t, err)

	assert.False(t, absent.Equal(presentEmpty), "absent coinputs must not equal a present-but-empty set")
}

func TestTriple_EqualComparesEdgeMembership(t *testing.T) {
	e1, _ := core.NewEdge(core.NewSet("x1"), core.NewSet("x2"))
	e2, _ := core.NewEdge(core.NewSet("x1"), core.NewSet("x2"))

	t1, err := core.NewTriple(core.PresentSet(core.NewSet("x3")), core.AbsentSet(), []*core.Edge{e1})
	require.NoError(t, err)
	t2, err := core.NewTriple(core.PresentSet(core.NewSet("x3")), core.AbsentSet(), []*core.Edge{e2})
	require.NoError(t, err)

	assert.True(t, t1.Equal(t2))
}
