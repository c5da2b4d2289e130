// Package builder generates synthetic metagraphs from well-known
// topologies: path, star, cycle, wheel, complete, and complete bipartite.
// Each topology is a Constructor closure that mutates a freshly created
// metagraph.Metagraph, composed through BuildMetagraph the same way the
// scalar-graph source this package is adapted from composes core.Graph
// constructors.
//
// Unlike a scalar graph's single-vertex edges, every edge a Constructor
// emits connects singleton element sets — the generating set fixture is
// the set of elements these singletons are drawn from, named by an IDFn
// (index -> core.Element).
//
// Errors: sentinel errors (ErrTooFewElements, ErrConstructFailed),
// checked with errors.Is.
package builder
