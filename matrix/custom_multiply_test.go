package matrix_test

import (
	"testing"

	"github.com/dinesharanathunga/mgtoolkit/core"
	"github.com/dinesharanathunga/mgtoolkit/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomMultiply_PlusAndMinusSigns(t *testing.T) {
	e1, _ := core.NewEdge(core.NewSet("x1"), core.NewSet("x2"))

	minusOne := int8(-1)
	plusOne := int8(1)

	// matrix1: 1x1, a_i k = +1 (x2 is an outvertex member reached via e1)
	m1 := [][]matrix.IntCell{{&plusOne}}
	// matrix2: 1x1, b_kj = -1 (x2 is an invertex member of some other edge)
	m2 := [][]matrix.IntCell{{&minusOne}}

	result, err := matrix.CustomMultiply(m1, m2, []*core.Edge{e1})
	require.NoError(t, err)
	require.Len(t, result[0][0], 1)
	assert.Equal(t, matrix.Plus, result[0][0][0].Sign)
}

func TestCustomMultiply_DimensionMismatch(t *testing.T) {
	minusOne := int8(-1)
	m1 := [][]matrix.IntCell{{&minusOne, &minusOne}}
	m2 := [][]matrix.IntCell{{&minusOne}}

	_, err := matrix.CustomMultiply(m1, m2, []*core.Edge{})
	require.Error(t, err)
}
