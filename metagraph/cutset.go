package metagraph

import "github.com/dinesharanathunga/mgtoolkit/core"

// IsRedundantEdge reports whether edge is redundant for metapath: removing
// it from the metagraph would still leave source able to reach target,
// because some other metapath covers the same ground.
//
// Redundancy is only meaningful when target has more than one element —
// with a singleton target there is no proper subset to fall back to, so
// IsRedundantEdge returns false without searching.
func (mg *Metagraph) IsRedundantEdge(edge *core.Edge, mp *Metapath, source, target core.Set) (bool, error) {
	if edge == nil {
		return false, core.NewError(core.InvalidArgument, "edge", "value_null")
	}
	if mp == nil {
		return false, core.NewError(core.InvalidArgument, "metapath", "value_null")
	}
	if source == nil || target == nil {
		return false, core.NewError(core.InvalidArgument, "source, target", "value_null")
	}
	ok, err := mg.IsMetapath(mp)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, core.NewError(core.InvalidArgument, "metapath", "arguments_invalid")
	}

	if target.Len() <= 1 {
		return false, nil
	}

	metapaths, err := mg.GetAllMetapathsFrom(source, target)
	if err != nil {
		return false, err
	}
	for _, other := range metapaths {
		if !edgeInList(edge, other.EdgeList) {
			return true, nil
		}
	}
	return false, nil
}

// IsCutset reports whether removing edges from the metagraph disconnects
// source from target: after edges are removed, no metapath between them
// remains.
func (mg *Metagraph) IsCutset(edges []*core.Edge, source, target core.Set) (bool, error) {
	if edges == nil {
		return false, core.NewError(core.InvalidArgument, "edges", "value_null")
	}
	if source == nil || target == nil {
		return false, core.NewError(core.InvalidArgument, "source, target", "value_null")
	}

	remaining := make([]*core.Edge, 0, len(mg.edges))
	for _, e := range mg.edges {
		if !edgeInListByEndpoints(e, edges) {
			remaining = append(remaining, e)
		}
	}

	probe, err := New(mg.GeneratingSet)
	if err != nil {
		return false, err
	}
	if len(remaining) > 0 {
		if err := probe.AddEdgesFrom(remaining); err != nil {
			return false, err
		}
	}

	metapaths, err := probe.GetAllMetapathsFrom(source, target)
	if err != nil {
		return false, err
	}
	return len(metapaths) == 0, nil
}

// IsBridge is an alias for IsCutset: a bridge is simply a cutset
// considered at the level of a single edge list, the way the original
// toolkit names the same check twice for readability at call sites.
func (mg *Metagraph) IsBridge(edges []*core.Edge, source, target core.Set) (bool, error) {
	return mg.IsCutset(edges, source, target)
}

// GetMinimalCutset returns the smallest edge set whose removal
// disconnects source from target, or nil if source and target are not
// connected in the first place.
func (mg *Metagraph) GetMinimalCutset(source, target core.Set) ([]*core.Edge, error) {
	if source == nil || target == nil {
		return nil, core.NewError(core.InvalidArgument, "source, target", "value_null")
	}

	metapaths, err := mg.GetAllMetapathsFrom(source, target)
	if err != nil {
		return nil, err
	}
	if len(metapaths) == 0 {
		return nil, nil
	}

	var cutsets [][]*core.Edge
	for _, mp := range metapaths {
		for _, subset := range nonEmptySubsets(mp.EdgeList) {
			if edgeListIn(subset, cutsets) {
				continue
			}
			isCut, err := mg.IsCutset(subset, source, target)
			if err != nil {
				return nil, err
			}
			if isCut {
				cutsets = append(cutsets, subset)
			}
		}
	}

	if len(cutsets) == 0 {
		return nil, nil
	}
	smallest := cutsets[0]
	for _, c := range cutsets {
		if len(c) < len(smallest) {
			smallest = c
		}
	}
	return smallest, nil
}

func edgeListIn(edges []*core.Edge, lists [][]*core.Edge) bool {
	for _, list := range lists {
		if edgeListsEqual(edges, list) {
			return true
		}
	}
	return false
}

func edgeListsEqual(a, b []*core.Edge) bool {
	if len(a) != len(b) {
		return false
	}
	for _, e := range a {
		if !edgeInList(e, b) {
			return false
		}
	}
	return true
}
