package metagraph

import (
	"github.com/dinesharanathunga/mgtoolkit/core"
	"github.com/dinesharanathunga/mgtoolkit/matrix"
)

// Metagraph is a directed hypergraph over a fixed generating set: its
// edges connect sets of elements rather than single vertices. A
// Metagraph caches its adjacency matrix's transitive closure (A*) the
// first time it is needed, and invalidates that cache whenever an edge
// is added, removed, or the metagraph is combined with another.
type Metagraph struct {
	GeneratingSet core.GeneratingSet
	nodes         []*core.Node
	edges         []*core.Edge
	aStar         *matrix.AdjacencyMatrix
}

// New builds an empty Metagraph over generatingSet, which must be
// non-empty.
func New(generatingSet core.GeneratingSet) (*Metagraph, error) {
	if generatingSet == nil || generatingSet.Len() == 0 {
		return nil, core.NewError(core.InvalidArgument, "generatingSet", "value_null")
	}
	return &Metagraph{GeneratingSet: generatingSet.Clone()}, nil
}

// Nodes returns the metagraph's nodes.
func (mg *Metagraph) Nodes() []*core.Node {
	return mg.nodes
}

// Edges returns the metagraph's edges.
func (mg *Metagraph) Edges() []*core.Edge {
	return mg.edges
}

func (mg *Metagraph) hasNode(n *core.Node) bool {
	for _, existing := range mg.nodes {
		if existing.Equal(n) {
			return true
		}
	}
	return false
}

func (mg *Metagraph) hasEdge(e *core.Edge) bool {
	for _, existing := range mg.edges {
		if existing.Equal(e) {
			return true
		}
	}
	return false
}

// AddNode adds node to the metagraph, after checking every one of its
// elements belongs to the generating set.
func (mg *Metagraph) AddNode(node *core.Node) error {
	if node == nil {
		return core.NewError(core.InvalidArgument, "node", "value_null")
	}
	for e := range node.Elements {
		if !mg.GeneratingSet.Contains(e) {
			return core.NewError(core.RangeViolation, "node", "range_invalid")
		}
	}
	if !mg.hasNode(node) {
		mg.nodes = append(mg.nodes, node)
	}
	return nil
}

// RemoveNode removes node from the metagraph, returning a NotFound error
// if it isn't present.
func (mg *Metagraph) RemoveNode(node *core.Node) error {
	if node == nil {
		return core.NewError(core.InvalidArgument, "node", "value_null")
	}
	for i, existing := range mg.nodes {
		if existing.Equal(node) {
			mg.nodes = append(mg.nodes[:i], mg.nodes[i+1:]...)
			return nil
		}
	}
	return core.NewError(core.NotFound, "node", "value_not_found")
}

// AddNodesFrom adds every node in nodes to the metagraph.
func (mg *Metagraph) AddNodesFrom(nodes []*core.Node) error {
	if len(nodes) == 0 {
		return core.NewError(core.InvalidArgument, "nodes", "value_null")
	}
	for _, n := range nodes {
		if err := mg.AddNode(n); err != nil {
			return err
		}
	}
	return nil
}

// RemoveNodesFrom removes every node in nodes from the metagraph.
//
// The original toolkit's remove_nodes_from took a list of sets and
// checked isinstance(node, set), which could never succeed against a
// metagraph built from Node objects — a bug, not an intentional
// signature. RemoveNodesFrom instead takes []*core.Node, matching
// AddNodesFrom.
func (mg *Metagraph) RemoveNodesFrom(nodes []*core.Node) error {
	if len(nodes) == 0 {
		return core.NewError(core.InvalidArgument, "nodes", "value_null")
	}
	for _, n := range nodes {
		if !mg.hasNode(n) {
			return core.NewError(core.NotFound, "nodes", "value_not_found")
		}
	}
	for _, n := range nodes {
		_ = mg.RemoveNode(n)
	}
	return nil
}

// AddEdge adds edge to the metagraph, registering Node wrappers for its
// invertex and outvertex along the way, and invalidates the cached
// closure. An edge with an element outside the generating set is refused
// with a RangeViolation error.
func (mg *Metagraph) AddEdge(edge *core.Edge) error {
	if edge == nil {
		return core.NewError(core.InvalidArgument, "edge", "value_null")
	}
	if !edge.Invertex.Union(edge.Outvertex).IsSubsetOf(mg.GeneratingSet) {
		return core.NewError(core.RangeViolation, "edge", "range_invalid")
	}
	if n, err := core.NewNode(edge.Invertex); err == nil && !mg.hasNode(n) {
		mg.nodes = append(mg.nodes, n)
	}
	if n, err := core.NewNode(edge.Outvertex); err == nil && !mg.hasNode(n) {
		mg.nodes = append(mg.nodes, n)
	}
	if !mg.hasEdge(edge) {
		mg.edges = append(mg.edges, edge)
		mg.invalidateClosure()
	}
	return nil
}

// RemoveEdge removes edge from the metagraph if present, invalidating the
// cached closure.
func (mg *Metagraph) RemoveEdge(edge *core.Edge) error {
	if edge == nil {
		return core.NewError(core.InvalidArgument, "edge", "value_null")
	}
	for i, existing := range mg.edges {
		if existing.Equal(edge) {
			mg.edges = append(mg.edges[:i], mg.edges[i+1:]...)
			mg.invalidateClosure()
			return nil
		}
	}
	return nil
}

// AddEdgesFrom adds every edge in edges to the metagraph.
func (mg *Metagraph) AddEdgesFrom(edges []*core.Edge) error {
	if len(edges) == 0 {
		return core.NewError(core.InvalidArgument, "edges", "value_null")
	}
	for _, e := range edges {
		if err := mg.AddEdge(e); err != nil {
			return err
		}
	}
	return nil
}

// RemoveEdgesFrom removes every edge in edges from the metagraph.
func (mg *Metagraph) RemoveEdgesFrom(edges []*core.Edge) error {
	if len(edges) == 0 {
		return core.NewError(core.InvalidArgument, "edges", "value_null")
	}
	for _, e := range edges {
		if err := mg.RemoveEdge(e); err != nil {
			return err
		}
	}
	return nil
}

// GetEdges returns every edge whose invertex contains xi and whose
// outvertex contains xj.
//
// Despite the parameter names suggesting set membership, the original
// toolkit's get_edges tests whether a single element xi is "in" the
// invertex set and xj "in" the outvertex set — not whether an invertex
// set is passed at all. GetEdges preserves that single-element lookup.
func (mg *Metagraph) GetEdges(xi, xj core.Element) []*core.Edge {
	var result []*core.Edge
	for _, e := range mg.edges {
		if e.Invertex.Contains(xi) && e.Outvertex.Contains(xj) && !edgeInList(e, result) {
			result = append(result, e)
		}
	}
	return result
}

func edgeInList(e *core.Edge, list []*core.Edge) bool {
	for _, other := range list {
		if e.Equal(other) {
			return true
		}
	}
	return false
}

// edgeInListByEndpoints reports whether e shares its invertex and
// outvertex with some edge in list, ignoring label and attributes.
// IsCutset removes edges this way: a cut-set's effect on reachability
// depends only on which element sets an edge connects, not its label.
func edgeInListByEndpoints(e *core.Edge, list []*core.Edge) bool {
	for _, other := range list {
		if e.SameEndpoints(other) {
			return true
		}
	}
	return false
}

func (mg *Metagraph) invalidateClosure() {
	mg.aStar = nil
}
