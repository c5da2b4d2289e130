// Package metagraph implements the Metagraph type: a directed hypergraph
// whose edges connect sets of elements (core.Edge) rather than single
// vertices, together with the derived queries the toolkit is built
// around — metapath enumeration and dominance, cut-sets and bridges,
// projection onto a subset of the generating set, the inverse metagraph,
// and the element-flow metagraph.
//
// Metagraph is deliberately not safe for concurrent use: every method
// reads or mutates its node/edge lists and its cached transitive closure
// without any locking. Callers that need concurrent access must
// synchronize externally; this mirrors the toolkit's pure, single-
// threaded core and keeps the hot path (closure computation, metapath
// enumeration) free of lock overhead.
package metagraph
