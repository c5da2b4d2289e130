package matrix

import (
	"github.com/dinesharanathunga/mgtoolkit/core"
)

// BuildAdjacency constructs the adjacency matrix for a generating set and
// edge list: cell (i, j) holds one triple per edge whose invertex
// contains element i and whose outvertex contains element j, with
// coinputs/cooutputs derived from that edge relative to i and j.
//
// generatingSet is iterated in Slice() order so the resulting matrix's
// row/column order is deterministic across calls.
func BuildAdjacency(generatingSet core.Set, edges []*core.Edge) *AdjacencyMatrix {
	elements := generatingSet.Slice()
	m := newEmptyAdjacencyMatrix(elements)

	for i, xi := range elements {
		for j, xj := range elements {
			var cell []*core.Triple
			for _, e := range edges {
				if !e.Invertex.Contains(xi) || !e.Outvertex.Contains(xj) {
					continue
				}
				coinputs := elementCoinputs(e, xi)
				cooutputs := elementCooutputs(e, xj)
				t, err := core.NewTriple(coinputs, cooutputs, []*core.Edge{e})
				if err != nil {
					continue
				}
				if !inList(t, cell) {
					cell = append(cell, t)
				}
			}
			m.Cells[i][j] = cell
		}
	}
	return m
}

// elementCoinputs returns e's invertex minus xi, or absent if that
// leaves nothing.
func elementCoinputs(e *core.Edge, xi core.Element) *core.Set {
	remaining := e.Invertex.Difference(core.NewSet(xi))
	if remaining.Len() == 0 {
		return nil
	}
	return &remaining
}

// elementCooutputs returns e's outvertex minus xj, or absent if that
// leaves nothing.
func elementCooutputs(e *core.Edge, xj core.Element) *core.Set {
	remaining := e.Outvertex.Difference(core.NewSet(xj))
	if remaining.Len() == 0 {
		return nil
	}
	return &remaining
}

// BuildIncidence constructs the |generatingSet|×|edges| incidence matrix:
// -1 where the row element is in the edge's invertex, +1 where it is in
// the outvertex, absent otherwise.
func BuildIncidence(generatingSet core.Set, edges []*core.Edge) *IncidenceMatrix {
	elements := generatingSet.Slice()
	cells := make([][]*int8, len(elements))
	for i := range cells {
		cells[i] = make([]*int8, len(edges))
	}

	var minusOne int8 = -1
	var plusOne int8 = 1

	for i, xi := range elements {
		for j, e := range edges {
			switch {
			case e.Invertex.Contains(xi):
				cells[i][j] = &minusOne
			case e.Outvertex.Contains(xi):
				cells[i][j] = &plusOne
			}
		}
	}

	return &IncidenceMatrix{Elements: elements, Edges: append([]*core.Edge(nil), edges...), Cells: cells}
}

func inList(t *core.Triple, list []*core.Triple) bool {
	for _, other := range list {
		if t.Equal(other) {
			return true
		}
	}
	return false
}
