package metagraph

import (
	"github.com/dinesharanathunga/mgtoolkit/core"
	"github.com/dinesharanathunga/mgtoolkit/matrix"
)

// Dominates reports whether mg dominates other: every metapath other can
// produce, between every non-trivial source/target pair drawn from
// other's own generating set, is dominated (Metapath.Dominates) by some
// metapath mg can produce over its own generating set.
//
// This mirrors the original toolkit's brute-force definition — enumerate
// every proper, non-empty source/target subset pair of each metagraph's
// generating set, collect the metapaths found, and cross-check dominance
// — with one correction: metapaths drawn "from other" are computed by
// calling other.GetAllMetapathsFrom, not mg's. The original calls
// self.get_all_metapaths_from for both halves, which only ever reports
// on mg's own reachability even when enumerating other's subsets; that
// is an implementation slip, not an intended asymmetry.
func (mg *Metagraph) Dominates(other *Metagraph) (bool, error) {
	if other == nil {
		return false, core.NewError(core.InvalidArgument, "other", "value_null")
	}

	ownMetapaths, err := allMetapathsOverGeneratingSet(mg, mg.GeneratingSet)
	if err != nil {
		return false, err
	}
	otherMetapaths, err := allMetapathsOverGeneratingSet(other, other.GeneratingSet)
	if err != nil {
		return false, err
	}

	for _, mp2 := range otherMetapaths {
		dominated := false
		for _, mp1 := range ownMetapaths {
			if mp1.Dominates(mp2) {
				dominated = true
				break
			}
		}
		if !dominated {
			return false, nil
		}
	}
	return true, nil
}

// Equivalent reports whether mg and other dominate each other.
func (mg *Metagraph) Equivalent(other *Metagraph) (bool, error) {
	if other == nil {
		return false, core.NewError(core.InvalidArgument, "other", "value_null")
	}
	forward, err := mg.Dominates(other)
	if err != nil || !forward {
		return false, err
	}
	return other.Dominates(mg)
}

func allMetapathsOverGeneratingSet(mg *Metagraph, gs core.GeneratingSet) ([]*Metapath, error) {
	elems := gs.Slice()
	if len(elems) > maxEnumerableSize {
		elems = elems[:maxEnumerableSize]
	}

	var all []*Metapath
	n := len(elems)
	upper := 1 << n
	if n == gs.Len() {
		// The whole generating set is not a proper subset of itself.
		upper--
	}
	for sourceMask := 1; sourceMask < upper; sourceMask++ {
		for targetMask := 1; targetMask < upper; targetMask++ {
			if sourceMask == targetMask {
				continue
			}
			source := maskToSet(elems, sourceMask)
			target := maskToSet(elems, targetMask)
			mps, err := mg.GetAllMetapathsFrom(source, target)
			if err != nil {
				continue
			}
			all = append(all, mps...)
		}
	}
	return all, nil
}

func maskToSet(elems []core.Element, mask int) core.Set {
	s := core.NewSet()
	for i, e := range elems {
		if mask&(1<<i) != 0 {
			s.Add(e)
		}
	}
	return s
}

// AddMetagraph combines other into mg by edge union: if the two
// generating sets are identical, other's edges are simply added; if they
// only overlap, mg's generating set is extended to their union before
// the edges are added. Either way mg is mutated in place and returned,
// and its cached closure is invalidated.
func (mg *Metagraph) AddMetagraph(other *Metagraph) (*Metagraph, error) {
	if other == nil {
		return nil, core.NewError(core.InvalidArgument, "other", "value_null")
	}

	if !mg.GeneratingSet.Equal(other.GeneratingSet) {
		mg.GeneratingSet = mg.GeneratingSet.Union(other.GeneratingSet)
		mg.invalidateClosure()
	}
	for _, e := range other.edges {
		if !mg.hasEdge(e) {
			if err := mg.AddEdge(e); err != nil {
				return nil, err
			}
		}
	}
	return mg, nil
}

// MultiplyMetagraph replaces mg's edges with the edge set implied by
// mg's adjacency matrix multiplied by other's, requiring the two
// metagraphs to share an identical generating set.
func (mg *Metagraph) MultiplyMetagraph(other *Metagraph) (*Metagraph, error) {
	if other == nil {
		return nil, core.NewError(core.InvalidArgument, "other", "value_null")
	}
	if !mg.GeneratingSet.Equal(other.GeneratingSet) {
		return nil, core.NewError(core.Inconsistency, "other", "not_identical")
	}

	product, err := matrix.Multiply(mg.AdjacencyMatrix(), other.AdjacencyMatrix())
	if err != nil {
		return nil, err
	}

	newEdges := edgesInMatrix(product)
	mg.edges = nil
	mg.nodes = nil
	mg.invalidateClosure()
	if len(newEdges) > 0 {
		if err := mg.AddEdgesFrom(newEdges); err != nil {
			return nil, err
		}
	}
	return mg, nil
}

func edgesInMatrix(m *matrix.AdjacencyMatrix) []*core.Edge {
	var out []*core.Edge
	size := m.Size()
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			for _, t := range m.At(i, j) {
				for _, e := range t.Edges {
					if !edgeInList(e, out) {
						out = append(out, e)
					}
				}
			}
		}
	}
	return out
}
