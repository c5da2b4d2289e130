package matrix

import "github.com/dinesharanathunga/mgtoolkit/core"

// AdjacencyMatrix is a square matrix of triple lists over a fixed,
// ordered generating set. Cells[i][j] is nil when no triple has been
// recorded for the (row i, column j) pair — the matrix-level analogue of
// core.Triple's absent coinputs/cooutputs.
type AdjacencyMatrix struct {
	Elements []core.Element
	Cells    [][][]*core.Triple
}

// Size returns the matrix's dimension (len(Elements)).
func (m *AdjacencyMatrix) Size() int {
	return len(m.Elements)
}

// IndexOf returns the row/column index of e, or -1 if e is not part of
// the matrix's generating set.
func (m *AdjacencyMatrix) IndexOf(e core.Element) int {
	for i, x := range m.Elements {
		if x == e {
			return i
		}
	}
	return -1
}

// At returns the triple list recorded for (row, col), or nil if absent.
func (m *AdjacencyMatrix) At(row, col int) []*core.Triple {
	return m.Cells[row][col]
}

// GeneratingSet returns the matrix's row/column labels as a core.Set.
func (m *AdjacencyMatrix) GeneratingSet() core.Set {
	return core.NewSet(m.Elements...)
}

// newEmptyAdjacencyMatrix allocates a size×size matrix of absent cells
// over elements.
func newEmptyAdjacencyMatrix(elements []core.Element) *AdjacencyMatrix {
	size := len(elements)
	cells := make([][][]*core.Triple, size)
	for i := range cells {
		cells[i] = make([][]*core.Triple, size)
	}
	return &AdjacencyMatrix{Elements: elements, Cells: cells}
}

// IncidenceMatrix records, for each generating-set element and each edge,
// whether the element belongs to the edge's invertex (-1), its outvertex
// (+1), or neither (0, represented as an absent cell).
type IncidenceMatrix struct {
	Elements []core.Element
	Edges    []*core.Edge
	Cells    [][]*int8
}

// Size returns (rows, cols) = (len(Elements), len(Edges)).
func (m *IncidenceMatrix) Size() (int, int) {
	return len(m.Elements), len(m.Edges)
}

// At returns the cell value for (element row, edge col): -1, 0, or +1.
func (m *IncidenceMatrix) At(row, col int) int8 {
	cell := m.Cells[row][col]
	if cell == nil {
		return 0
	}
	return *cell
}
