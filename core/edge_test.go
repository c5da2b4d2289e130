package core_test

import (
	"testing"

	"github.com/dinesharanathunga/mgtoolkit/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEdge_RejectsEmptyEndpoints(t *testing.T) {
	_, err := core.NewEdge(nil, core.NewSet("x2"))
	require.Error(t, err)

	_, err = core.NewEdge(core.NewSet("x1"), core.NewSet())
	require.Error(t, err)
}

func TestNewEdge_AttributesFoldIntoInvertex(t *testing.T) {
	e, err := core.NewEdge(
		core.NewSet("x1"),
		core.NewSet("x2"),
		core.WithAttributes(core.NewSet("action=buy")),
		core.WithLabel("e1"),
	)
	require.NoError(t, err)

	assert.True(t, e.Invertex.Contains("x1"))
	assert.True(t, e.Invertex.Contains("action=buy"))
	assert.Equal(t, "e1", e.Label)
}

func TestEdge_EqualComparesLabel(t *testing.T) {
	e1, _ := core.NewEdge(core.NewSet("x1"), core.NewSet("x2"), core.WithLabel("a"))
	e2, _ := core.NewEdge(core.NewSet("x1"), core.NewSet("x2"), core.WithLabel("b"))

	assert.False(t, e1.Equal(e2))
}
