// Package core defines the primitives every other package in mgtoolkit
// builds on: elements, sets of elements, nodes, edges whose endpoints are
// sets rather than single vertices, and the algebraic triples that the
// matrix and metagraph layers compose.
//
// A metagraph edge differs from an ordinary graph edge in one respect:
// its invertex and outvertex are sets of elements, not single elements.
// core.Set carries that distinction throughout the toolkit, including the
// "absent" vs. "empty" distinction required by Triple's coinput/cooutput
// fields (see Triple).
//
//	core/       — Element, Set, Node, Edge, Triple, GeneratingSet, Error
//	triple/     — the semiring operations over []*core.Triple
//	matrix/     — adjacency and incidence matrices built from triples
//	metagraph/  — the Metagraph type and its derived queries
//	conditional/— ConditionalMetagraph, layered on metagraph
//	builder/    — synthetic metagraph generators for tests and examples
package core
