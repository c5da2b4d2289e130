// Package triple implements the semiring operations metagraph adjacency
// matrices are built from: Add, which merges two cells' triple lists by
// set union, and Multiply, which composes two triples across an
// intermediate generating-set element using the α(R)/β(R)/γ(R) rule.
//
// Every adjacency-matrix cell in matrix.AdjacencyMatrix is a []*core.Triple
// (or absent, meaning "no path recorded here yet"); this package is the
// only place that combines or composes those lists.
package triple
