package matrix

import "github.com/dinesharanathunga/mgtoolkit/core"

// Sign distinguishes the two ways an edge can participate in an
// element-flow metagraph: Plus when flow enters an element as an output
// of one edge and the input of another, Minus when it enters as an input
// of both.
type Sign int8

const (
	// Plus tags an edge reached through a +1/-1 (outvertex/invertex) pairing.
	Plus Sign = 1
	// Minus tags an edge reached through a -1/-1 (invertex/invertex) pairing.
	Minus Sign = -1
)

func (s Sign) String() string {
	if s == Plus {
		return "+"
	}
	return "-"
}

// SignedEdge pairs an edge with the Sign under which it was produced by
// CustomMultiply.
type SignedEdge struct {
	Sign Sign
	Edge *core.Edge
}

// IntCell is a plain int8 matrix used by CustomMultiply's operands: the
// incidence matrix and its transpose, with nil cells meaning 0/absent.
type IntCell = *int8

// CustomMultiply multiplies two int8-valued matrices (typically an
// incidence matrix and its transpose) the way the element-flow metagraph
// construction requires: for each shared-dimension index k, a_ik=+1 and
// b_kj=-1 contribute Plus{edges[k]}, a_ik=-1 and b_kj=-1 contribute
// Minus{edges[k]}, and any other combination contributes nothing. Cells
// of the result are de-duplicated sets of SignedEdge.
//
// matrix1's column count must equal matrix2's row count; edges must have
// at least as many entries as that shared dimension, since edges[k]
// labels the k-th row/column being summed over.
func CustomMultiply(matrix1, matrix2 [][]IntCell, edges []*core.Edge) ([][][]SignedEdge, error) {
	if len(matrix1) == 0 || len(matrix2) == 0 {
		return nil, core.NewError(core.InvalidArgument, "matrix1, matrix2", "value_null")
	}
	cols1 := len(matrix1[0])
	rows2 := len(matrix2)
	if cols1 != rows2 {
		return nil, errDimensionMismatch("matrix1, matrix2")
	}
	if len(edges) < cols1 {
		return nil, core.NewError(core.RangeViolation, "edges", "value_out_of_bounds")
	}

	rows1 := len(matrix1)
	cols2 := len(matrix2[0])
	result := make([][][]SignedEdge, rows1)
	for i := 0; i < rows1; i++ {
		result[i] = make([][]SignedEdge, cols2)
		for j := 0; j < cols2; j++ {
			var cell []SignedEdge
			for k := 0; k < cols1; k++ {
				aik := cellValue(matrix1[i][k])
				bkj := cellValue(matrix2[k][j])
				switch {
				case aik == 1 && bkj == -1:
					cell = appendSignedEdgeUnique(cell, SignedEdge{Sign: Plus, Edge: edges[k]})
				case aik == -1 && bkj == -1:
					cell = appendSignedEdgeUnique(cell, SignedEdge{Sign: Minus, Edge: edges[k]})
				}
			}
			result[i][j] = cell
		}
	}
	return result, nil
}

func cellValue(c IntCell) int8 {
	if c == nil {
		return 0
	}
	return *c
}

func appendSignedEdgeUnique(list []SignedEdge, se SignedEdge) []SignedEdge {
	for _, existing := range list {
		if existing.Sign == se.Sign && existing.Edge.Equal(se.Edge) {
			return list
		}
	}
	return append(list, se)
}
