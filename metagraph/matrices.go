package metagraph

import "github.com/dinesharanathunga/mgtoolkit/matrix"

// AdjacencyMatrix builds and returns the metagraph's adjacency matrix.
// Unlike Closure, this is recomputed on every call: only the transitive
// closure is cached.
func (mg *Metagraph) AdjacencyMatrix() *matrix.AdjacencyMatrix {
	return matrix.BuildAdjacency(mg.GeneratingSet, mg.edges)
}

// IncidenceMatrix builds and returns the metagraph's incidence matrix.
func (mg *Metagraph) IncidenceMatrix() *matrix.IncidenceMatrix {
	return matrix.BuildIncidence(mg.GeneratingSet, mg.edges)
}

// Closure returns A*, the transitive closure of the metagraph's adjacency
// matrix, computing and caching it on first use. The cache is
// invalidated by any edge mutation (AddEdge, RemoveEdge, AddEdgesFrom,
// RemoveEdgesFrom) and by AddMetagraph/MultiplyMetagraph.
func (mg *Metagraph) Closure() *matrix.AdjacencyMatrix {
	if mg.aStar == nil {
		mg.aStar = matrix.Closure(mg.AdjacencyMatrix())
	}
	return mg.aStar
}
