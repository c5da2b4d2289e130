package metagraph

import (
	"fmt"

	"github.com/dinesharanathunga/mgtoolkit/core"
	"github.com/dinesharanathunga/mgtoolkit/matrix"
)

// GetElementFlowMetagraph builds the element-flow metagraph for subset: a
// metagraph over subset's elements describing how flow passes through
// the excluded elements (generating set minus subset) that act as
// intermediates between them.
//
// The construction splits the incidence matrix into G1 (rows restricted
// to subset) and G2 (rows restricted to the excluded elements), then runs
// matrix.CustomMultiply(G2, transpose(G1), edges): cell (excluded i,
// subset j) collects a Plus-tagged edge when excluded element i is
// produced by an edge that subset element j feeds into, and a
// Minus-tagged edge when excluded element i and subset element j are
// both consumed by the same edge. For every excluded element reached by
// at least one Minus-tagged and one Plus-tagged cell, an edge is added
// from the subset elements on its Minus side to the subset elements on
// its Plus side, labeled with the excluded element that mediates the
// flow.
func (mg *Metagraph) GetElementFlowMetagraph(subset core.Set) (*Metagraph, error) {
	if subset == nil || subset.Len() == 0 {
		return nil, core.NewError(core.InvalidArgument, "subset", "value_null")
	}
	if !subset.IsSubsetOf(mg.GeneratingSet) {
		return nil, core.NewError(core.Inconsistency, "subset", "not_a_subset")
	}

	incidence := mg.IncidenceMatrix()
	excluded := mg.GeneratingSet.Difference(subset)

	subsetElems := subset.Slice()
	excludedElems := excluded.Slice()

	g1 := submatrix(incidence, subsetElems)
	g2 := submatrix(incidence, excludedElems)
	g1T := transposeIntMatrix(g1)

	mult, err := matrix.CustomMultiply(g2, g1T, incidence.Edges)
	if err != nil {
		return nil, err
	}

	var efmEdges []*core.Edge
	for i, excludedElem := range excludedElems {
		var minusSide, plusSide core.Set
		minusSide = core.NewSet()
		plusSide = core.NewSet()
		var mediating []*core.Edge
		for j, subsetElem := range subsetElems {
			for _, se := range mult[i][j] {
				mediating = appendUniqueEdge(mediating, se.Edge)
				if se.Sign == matrix.Minus {
					minusSide.Add(subsetElem)
				} else {
					plusSide.Add(subsetElem)
				}
			}
		}
		if minusSide.Len() == 0 || plusSide.Len() == 0 {
			continue
		}
		label := fmt.Sprintf("flow(%s)", excludedElem)
		edge, err := core.NewEdge(minusSide, plusSide, core.WithLabel(label))
		if err != nil {
			continue
		}
		efmEdges = appendIfNewEdge(efmEdges, edge)
	}

	if len(efmEdges) == 0 {
		return New(subset)
	}

	efm, err := New(subset)
	if err != nil {
		return nil, err
	}
	if err := efm.AddEdgesFrom(efmEdges); err != nil {
		return nil, err
	}
	return efm, nil
}

func submatrix(m *matrix.IncidenceMatrix, rows []core.Element) [][]matrix.IntCell {
	_, cols := m.Size()
	result := make([][]matrix.IntCell, len(rows))
	for ri, elem := range rows {
		idx := indexOfElement(m.Elements, elem)
		result[ri] = make([]matrix.IntCell, cols)
		for j := 0; j < cols; j++ {
			v := m.At(idx, j)
			if v != 0 {
				val := v
				result[ri][j] = &val
			}
		}
	}
	return result
}

func indexOfElement(elems []core.Element, e core.Element) int {
	for i, x := range elems {
		if x == e {
			return i
		}
	}
	return -1
}

func transposeIntMatrix(m [][]matrix.IntCell) [][]matrix.IntCell {
	if len(m) == 0 {
		return nil
	}
	rows, cols := len(m), len(m[0])
	out := make([][]matrix.IntCell, cols)
	for j := 0; j < cols; j++ {
		out[j] = make([]matrix.IntCell, rows)
		for i := 0; i < rows; i++ {
			out[j][i] = m[i][j]
		}
	}
	return out
}

func appendUniqueEdge(list []*core.Edge, e *core.Edge) []*core.Edge {
	for _, existing := range list {
		if existing.Equal(e) {
			return list
		}
	}
	return append(list, e)
}
