package metagraph

import (
	"sort"
	"strings"

	"github.com/dinesharanathunga/mgtoolkit/core"
)

// GetProjection reduces mg to a metagraph over the sub-vocabulary sub,
// following the seven-step algorithm: restrict the closure to sub,
// collect candidate edge-collections and their net input/output triples,
// prune subsumed triples, trim overlapping cooutputs, merge triples that
// share coinputs and/or cooutputs, and finally restrict and emit one
// edge per surviving triple.
func (mg *Metagraph) GetProjection(sub core.Set) (*Metagraph, error) {
	if sub == nil || sub.Len() == 0 {
		return nil, core.NewError(core.InvalidArgument, "sub", "value_null")
	}
	if !sub.IsSubsetOf(mg.GeneratingSet) {
		return nil, core.NewError(core.Inconsistency, "sub", "not_a_subset")
	}

	aStar := mg.Closure()

	// Step 1: restrict to rows/columns in sub, pooling every edge that
	// appears in a closure cell between two sub elements — including
	// edges reached only through an excluded intermediate, since a
	// combination of several such edges may still net out to inputs
	// entirely within sub.
	var pool []*core.Edge
	for xi := range sub {
		i := aStar.IndexOf(xi)
		for xj := range sub {
			j := aStar.IndexOf(xj)
			cell := aStar.At(i, j)
			for _, t := range cell {
				for _, e := range t.Edges {
					if !edgeInList(e, pool) {
						pool = append(pool, e)
					}
				}
			}
		}
	}
	if len(pool) == 0 {
		return New(sub)
	}

	// Step 2/3: an edge-collection qualifies as a candidate only when its
	// net inputs (the union of invertices minus the union of outvertices)
	// lie entirely within sub — the single criterion that subsumes both
	// "a lone edge with invertex ⊆ sub" and "a multi-edge combination
	// that only nets out to sub once its internal intermediates cancel".
	var candidates []*core.Triple
	for _, combo := range nonEmptySubsets(pool) {
		netInputs, netOutputs := core.NewSet(), core.NewSet()
		for _, e := range combo {
			netInputs = netInputs.Union(e.Invertex)
			netOutputs = netOutputs.Union(e.Outvertex)
		}
		netInputs = netInputs.Difference(netOutputs)
		if !netInputs.IsSubsetOf(sub) {
			continue
		}
		tr, err := core.NewTriple(core.PresentSet(netInputs), core.PresentSet(netOutputs), combo)
		if err != nil {
			continue
		}
		candidates = append(candidates, tr)
	}
	if len(candidates) == 0 {
		return New(sub)
	}

	// Step 4: subsumption pruning.
	candidates = pruneSubsumed(candidates, sub)

	// Step 5: output trimming.
	candidates = trimOutputs(candidates)

	// Step 6: merge triples sharing coinputs+cooutputs, then coinputs only.
	candidates = mergeByBoth(candidates)
	candidates = mergeByCoinputs(candidates)

	// Step 7: restrict to sub and drop any triple left without both sides.
	proj, err := New(sub)
	if err != nil {
		return nil, err
	}
	for _, tr := range candidates {
		ci := restrictSet(tr.Coinputs, sub)
		co := restrictSet(tr.Cooutputs, sub)
		if ci == nil || ci.Len() == 0 || co == nil || co.Len() == 0 {
			continue
		}
		label := projectionLabel(tr.Edges)
		edge, err := core.NewEdge(*ci, *co, core.WithLabel(label))
		if err != nil {
			continue
		}
		if err := proj.AddEdge(edge); err != nil {
			return nil, err
		}
	}
	return proj, nil
}

func restrictSet(s *core.Set, sub core.Set) *core.Set {
	if s == nil {
		return nil
	}
	restricted := s.Intersect(sub)
	return &restricted
}

func projectionLabel(edges []*core.Edge) string {
	labels := make([]string, 0, len(edges))
	for _, e := range edges {
		if e.Label != "" {
			labels = append(labels, e.Label)
		} else {
			labels = append(labels, e.String())
		}
	}
	sort.Strings(labels)
	return strings.Join(labels, ";")
}

// pruneSubsumed drops a candidate ti when some other candidate tj has a
// subset of ti's edges and, restricted to sub, "covers" ti's cooutputs.
// That cover check compares ti's cooutputs against tj's COINPUTS, not
// tj's cooutputs — mirroring the original toolkit's get_projection, whose
// reduce-L0 step assigns outputs_j from j's coinputs right next to an
// outputs_i drawn correctly from i's cooutputs. Using tj's cooutputs
// there instead would read as the obviously-intended symmetric check, but
// it changes which candidates get eliminated, so pruneSubsumed keeps the
// original's comparison rather than the naively-corrected one.
func pruneSubsumed(candidates []*core.Triple, sub core.Set) []*core.Triple {
	var kept []*core.Triple
	for i, ti := range candidates {
		subsumed := false
		for j, tj := range candidates {
			if i == j {
				continue
			}
			if edgesSubset(tj.Edges, ti.Edges) && restrictedSuperset(tj.Coinputs, ti.Cooutputs, sub) {
				subsumed = true
				break
			}
		}
		if !subsumed {
			kept = append(kept, ti)
		}
	}
	return kept
}

func edgesSubset(a, b []*core.Edge) bool {
	for _, e := range a {
		if !edgeInList(e, b) {
			return false
		}
	}
	return true
}

func restrictedSuperset(a, b *core.Set, sub core.Set) bool {
	ar := restrictSet(a, sub)
	br := restrictSet(b, sub)
	if br == nil || br.Len() == 0 {
		return true
	}
	if ar == nil {
		return false
	}
	return br.IsSubsetOf(*ar)
}

func trimOutputs(candidates []*core.Triple) []*core.Triple {
	var result []*core.Triple
	for i, ti := range candidates {
		cooutputs := ti.Cooutputs
		for j, tj := range candidates {
			if i == j {
				continue
			}
			if setPtrSubsetOf(tj.Coinputs, ti.Coinputs) && setPtrSubsetOf(tj.Cooutputs, ti.Cooutputs) {
				cooutputs = subtractSet(cooutputs, tj.Cooutputs)
			}
		}
		if cooutputs == nil || cooutputs.Len() == 0 {
			continue
		}
		trimmed, err := core.NewTriple(ti.Coinputs, cooutputs, ti.Edges)
		if err != nil {
			continue
		}
		result = append(result, trimmed)
	}
	return result
}

func setPtrSubsetOf(a, b *core.Set) bool {
	if a == nil {
		return true
	}
	if b == nil {
		return a.Len() == 0
	}
	return a.IsSubsetOf(*b)
}

func subtractSet(a, b *core.Set) *core.Set {
	if a == nil {
		return nil
	}
	if b == nil {
		return a
	}
	diff := a.Difference(*b)
	return &diff
}

func mergeByBoth(candidates []*core.Triple) []*core.Triple {
	var merged []*core.Triple
	for _, tr := range candidates {
		found := false
		for i, m := range merged {
			if setPtrEqualProj(m.Coinputs, tr.Coinputs) && setPtrEqualProj(m.Cooutputs, tr.Cooutputs) {
				merged[i] = combineTriple(m, tr)
				found = true
				break
			}
		}
		if !found {
			merged = append(merged, tr)
		}
	}
	return merged
}

func mergeByCoinputs(candidates []*core.Triple) []*core.Triple {
	var merged []*core.Triple
	for _, tr := range candidates {
		found := false
		for i, m := range merged {
			if setPtrEqualProj(m.Coinputs, tr.Coinputs) {
				co := unionSetPtr(m.Cooutputs, tr.Cooutputs)
				combined, err := core.NewTriple(m.Coinputs, co, append(append([]*core.Edge{}, m.Edges...), tr.Edges...))
				if err == nil {
					merged[i] = combined
					found = true
					break
				}
			}
		}
		if !found {
			merged = append(merged, tr)
		}
	}
	return merged
}

func combineTriple(a, b *core.Triple) *core.Triple {
	edges := append(append([]*core.Edge{}, a.Edges...), b.Edges...)
	var deduped []*core.Edge
	for _, e := range edges {
		if !edgeInList(e, deduped) {
			deduped = append(deduped, e)
		}
	}
	combined, err := core.NewTriple(a.Coinputs, a.Cooutputs, deduped)
	if err != nil {
		return a
	}
	return combined
}

func unionSetPtr(a, b *core.Set) *core.Set {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	u := a.Union(*b)
	return &u
}

func setPtrEqualProj(a, b *core.Set) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.Equal(*b)
}
