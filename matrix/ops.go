package matrix

import (
	"github.com/dinesharanathunga/mgtoolkit/core"
	"github.com/dinesharanathunga/mgtoolkit/triple"
)

// Add combines a and b cell by cell via triple.Add. a and b must share
// the same generating set (in the same order); Add returns an
// Inconsistency core.Error otherwise.
func Add(a, b *AdjacencyMatrix) (*AdjacencyMatrix, error) {
	if !sameElements(a.Elements, b.Elements) {
		return nil, errIncompatible("a, b")
	}

	size := a.Size()
	result := newEmptyAdjacencyMatrix(a.Elements)
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			result.Cells[i][j] = triple.Add(a.Cells[i][j], b.Cells[i][j])
		}
	}
	return result, nil
}

// Multiply computes a·b over their shared generating set: cell (i, j) of
// the result is the union, over every intermediate element xk, of
// triple.MultiplyLists(a[i][k], b[k][j], x_i, x_j, x_k). a and b must
// share an identical generating set.
func Multiply(a, b *AdjacencyMatrix) (*AdjacencyMatrix, error) {
	if !sameElements(a.Elements, b.Elements) {
		return nil, errIncompatible("a, b")
	}

	size := a.Size()
	result := newEmptyAdjacencyMatrix(a.Elements)
	for i := 0; i < size; i++ {
		xi := a.Elements[i]
		for j := 0; j < size; j++ {
			xj := a.Elements[j]
			var cell []*core.Triple
			for k := 0; k < size; k++ {
				xk := a.Elements[k]
				aik := a.Cells[i][k]
				bkj := b.Cells[k][j]
				if aik == nil || bkj == nil {
					continue
				}
				produced := triple.MultiplyLists(aik, bkj, xi, xj, xk)
				cell = triple.Add(cell, produced)
			}
			result.Cells[i][j] = cell
		}
	}
	return result, nil
}

// Transpose returns a new matrix with rows and columns swapped:
// result[i][j] = m[j][i].
func Transpose(m *AdjacencyMatrix) *AdjacencyMatrix {
	size := m.Size()
	result := newEmptyAdjacencyMatrix(m.Elements)
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			result.Cells[i][j] = m.Cells[j][i]
		}
	}
	return result
}

// Equal reports whether a and b hold the same generating set, in the same
// order, with pairwise-equal cell contents.
func Equal(a, b *AdjacencyMatrix) bool {
	if !sameElements(a.Elements, b.Elements) {
		return false
	}
	size := a.Size()
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			if !cellsEqual(a.Cells[i][j], b.Cells[i][j]) {
				return false
			}
		}
	}
	return true
}

func cellsEqual(a, b []*core.Triple) bool {
	if len(a) != len(b) {
		return false
	}
	for _, t := range a {
		if !inList(t, b) {
			return false
		}
	}
	return true
}

func sameElements(a, b []core.Element) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Closure computes A*, the transitive closure of m, as A* = A + A^2 +
// A^3 + ...: each step multiplies the previous power by m and adds the
// result to A*, stopping when the new power equals the previous one or
// after len(m.Elements) steps, whichever comes first. This bound matches
// the fact that no metapath needs more than |X| edges to connect any two
// elements of a generating set of size |X|.
func Closure(m *AdjacencyMatrix) *AdjacencyMatrix {
	size := m.Size()
	power := m
	aStar := m
	for i := 0; i < size; i++ {
		nextPower, _ := Multiply(power, m)
		aStar, _ = Add(aStar, nextPower)
		if Equal(nextPower, power) {
			break
		}
		power = nextPower
	}
	return aStar
}
