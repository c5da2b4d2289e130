// Package matrix builds adjacency and incidence matrix views of a
// metagraph over its generating set, and implements the matrix-level
// operations layered on top of the triple package: Add, Multiply,
// Transpose, CustomMultiply, and Closure.
//
// An AdjacencyMatrix is square, |X|×|X| for a generating set X, with each
// cell holding the (possibly absent) list of triples describing how the
// row element reaches the column element. An IncidenceMatrix is
// |X|×|E| for a metagraph with edge set E, with each cell in
// {-1, 0, +1}: -1 when the row element is in the edge's invertex, +1 when
// it is in the outvertex, 0 (absent) otherwise.
package matrix
