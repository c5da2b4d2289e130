// Package mgtoolkit is the root of a metagraph toolkit: a library for
// representing metagraphs — directed hypergraphs whose edges connect
// sets of elements rather than single vertices — and computing their
// structural and reachability properties.
//
// The toolkit is organized into subpackages:
//
//	core/       — Element, Set, Node, Edge, Triple, and the error taxonomy
//	triple/     — the (alpha, beta, gamma) semiring: Add and Multiply over triples
//	matrix/     — adjacency/incidence matrix construction, multiply, closure
//	metagraph/  — Metagraph itself: metapaths, cut-sets, dominance, projection,
//	              inverse, and element-flow metagraphs
//	conditional/ — ConditionalMetagraph: a variables/propositions partition,
//	              context construction, and interpretation-quantified
//	              connectivity predicates
//	builder/    — synthetic metagraph generators for tests and examples
//
// This package itself holds no exported API; import the subpackage that
// matches the layer you need, typically metagraph or conditional.
package mgtoolkit
