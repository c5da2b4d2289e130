package triple

import "github.com/dinesharanathunga/mgtoolkit/core"

// Multiply composes a (the x_i→x_k triple) with b (the x_k→x_j triple)
// into the x_i→x_j triple that results from passing through the
// intermediate generating-set element xk, applying the α(R)/β(R)/γ(R)
// rule:
//
//   - α(R), the result's coinputs, is the union of a's and b's coinputs
//     (whichever are present), minus {xi} and minus a's cooutputs — or
//     left absent if neither a nor b has coinputs.
//   - β(R), the result's cooutputs, is the union of a's and b's cooutputs
//     plus {xk}, minus {xj}. Unlike α(R), β(R) is never absent: even when
//     neither a nor b has cooutputs, the composition still passes through
//     xk, so the result always reports at least {xk}\{xj}.
//   - γ(R), the result's edges, is the union (not concatenation) of a's
//     and b's edge lists, with duplicate edges (core.Edge.Equal) removed.
//
// Multiply returns nil if a or b is nil.
func Multiply(a, b *core.Triple, xi, xj, xk core.Element) *core.Triple {
	if a == nil || b == nil {
		return nil
	}

	alpha := unionPresent(a.Coinputs, b.Coinputs)
	if alpha != nil {
		subtrahend := core.NewSet(xi)
		if a.Cooutputs != nil {
			subtrahend = subtrahend.Union(*a.Cooutputs)
		}
		diff := alpha.Difference(subtrahend)
		alpha = &diff
	}

	betaUnion := unionPresent(a.Cooutputs, b.Cooutputs)
	var beta core.Set
	if betaUnion != nil {
		beta = betaUnion.Union(core.NewSet(xk)).Difference(core.NewSet(xj))
	} else {
		beta = core.NewSet(xk).Difference(core.NewSet(xj))
	}

	edges := unionEdges(a.Edges, b.Edges)

	result, err := core.NewTriple(alpha, core.PresentSet(beta), edges)
	if err != nil {
		// edges is always non-nil (possibly empty) here, so NewTriple
		// never actually rejects it; this guards against future changes
		// to unionEdges rather than a reachable runtime condition.
		return nil
	}
	return result
}

// MultiplyLists composes every triple in as with every triple in bs,
// de-duplicating the resulting triples. It mirrors the role Multiply
// plays at the single-triple level one level up: a matrix cell holds a
// list of triples, and two cells compose by multiplying every pair drawn
// from each list.
func MultiplyLists(as, bs []*core.Triple, xi, xj, xk core.Element) []*core.Triple {
	if as == nil || bs == nil {
		return nil
	}

	var result []*core.Triple
	for _, a := range as {
		for _, b := range bs {
			t := Multiply(a, b, xi, xj, xk)
			if t != nil && !inList(t, result) {
				result = append(result, t)
			}
		}
	}
	return result
}

func unionPresent(a, b *core.Set) *core.Set {
	switch {
	case a == nil && b == nil:
		return nil
	case a == nil:
		clone := b.Clone()
		return &clone
	case b == nil:
		clone := a.Clone()
		return &clone
	default:
		union := a.Union(*b)
		return &union
	}
}

func unionEdges(a, b []*core.Edge) []*core.Edge {
	result := make([]*core.Edge, 0, len(a)+len(b))
	result = append(result, a...)
	for _, e := range b {
		if !edgeInList(e, result) {
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
