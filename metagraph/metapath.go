package metagraph

import (
	"github.com/dinesharanathunga/mgtoolkit/core"
	"github.com/dinesharanathunga/mgtoolkit/matrix"
)

// Metapath is a claim that edgeList connects source to target: every
// element of source can, by following edgeList, eventually produce every
// element of target. IsMetapath verifies that claim against a specific
// Metagraph.
type Metapath struct {
	Source   core.Set
	Target   core.Set
	EdgeList []*core.Edge
}

// NewMetapath builds a Metapath from non-empty source/target sets and an
// edge list (which may be empty).
func NewMetapath(source, target core.Set, edgeList []*core.Edge) (*Metapath, error) {
	if source == nil || source.Len() == 0 {
		return nil, core.NewError(core.InvalidArgument, "source", "value_null")
	}
	if target == nil || target.Len() == 0 {
		return nil, core.NewError(core.InvalidArgument, "target", "value_null")
	}
	return &Metapath{Source: source.Clone(), Target: target.Clone(), EdgeList: edgeList}, nil
}

// Dominates reports whether mp dominates other: mp's source is a subset
// of other's source, and other's target is a subset of mp's target — mp
// asks for no more and delivers no less.
func (mp *Metapath) Dominates(other *Metapath) bool {
	return mp.Source.IsSubsetOf(other.Source) && other.Target.IsSubsetOf(mp.Target)
}

// GetAllMetapathsFrom enumerates every valid Metapath from source to
// target. source and target must be non-empty subsets of the metagraph's
// generating set.
//
// The search first requires every element of source to independently
// reach at least one element of target in the cached closure — if any
// single source element reaches none of target, no metapath exists and
// GetAllMetapathsFrom returns (nil, nil) without enumerating candidates.
// Otherwise it pools the edges recorded along every fully-covering row
// and tests every non-empty subset of that pool with IsMetapath.
func (mg *Metagraph) GetAllMetapathsFrom(source, target core.Set) ([]*Metapath, error) {
	if source == nil || source.Len() == 0 {
		return nil, core.NewError(core.InvalidArgument, "source", "value_null")
	}
	if target == nil || target.Len() == 0 {
		return nil, core.NewError(core.InvalidArgument, "target", "value_null")
	}
	if !source.IsSubsetOf(mg.GeneratingSet) {
		return nil, core.NewError(core.Inconsistency, "source", "not_a_subset")
	}
	if !target.IsSubsetOf(mg.GeneratingSet) {
		return nil, core.NewError(core.Inconsistency, "target", "not_a_subset")
	}

	aStar := mg.Closure()

	var rows []int
	for xi := range source {
		rows = append(rows, aStar.IndexOf(xi))
	}

	var edgePool []*core.Edge
	for _, i := range rows {
		reached := core.NewSet()
		var edgesForRow []*core.Edge
		for xj := range target {
			j := aStar.IndexOf(xj)
			cell := aStar.At(i, j)
			if cell == nil {
				continue
			}
			reached.Add(xj)
			for _, t := range cell {
				for _, e := range t.Edges {
					if !edgeInList(e, edgesForRow) {
						edgesForRow = append(edgesForRow, e)
					}
				}
			}
		}
		if !target.IsSubsetOf(reached) {
			return nil, nil
		}
		for _, e := range edgesForRow {
			if !edgeInList(e, edgePool) {
				edgePool = append(edgePool, e)
			}
		}
	}

	var valid []*Metapath
	for _, subset := range nonEmptySubsets(edgePool) {
		mp, err := NewMetapath(source, target, subset)
		if err != nil {
			continue
		}
		ok, err := mg.IsMetapath(mp)
		if err == nil && ok {
			valid = append(valid, mp)
		}
	}
	return valid, nil
}

// IsMetapath reports whether candidate is a valid metapath in mg: every
// edge it names must appear among the triples recorded in the closure
// between some applicable source row and target column, and candidate's
// source/target sets must correctly bound the edges' combined
// invertex/outvertex.
func (mg *Metagraph) IsMetapath(candidate *Metapath) (bool, error) {
	if candidate == nil {
		return false, core.NewError(core.InvalidArgument, "candidate", "value_null")
	}

	aStar := mg.Closure()

	rows := uniqueIndices(aStar, candidate.Source)
	cols := uniqueIndices(aStar, candidate.Target)

	var validated []*core.Edge
	allInputs := core.NewSet()
	allOutputs := core.NewSet()

	for _, i := range rows {
		for _, j := range cols {
			cell := aStar.At(i, j)
			if cell == nil {
				continue
			}
			for _, edge := range candidate.EdgeList {
				for _, t := range cell {
					if edgeInList(edge, t.Edges) && !edgeInList(edge, validated) {
						validated = append(validated, edge)
					}
				}
				allInputs = allInputs.Union(edge.Invertex)
				allOutputs = allOutputs.Union(edge.Outvertex)
			}
		}
	}

	for _, edge := range candidate.EdgeList {
		if !edgeInList(edge, validated) {
			return false, nil
		}
	}

	netInputs := allInputs.Difference(allOutputs)
	return netInputs.IsSubsetOf(candidate.Source) && candidate.Target.IsSubsetOf(allOutputs), nil
}

// IsEdgeDominantMetapath reports whether mp is a valid metapath with no
// proper subset of its own edges also forming a metapath between the
// same source and target.
func (mg *Metagraph) IsEdgeDominantMetapath(mp *Metapath) (bool, error) {
	ok, err := mg.IsMetapath(mp)
	if err != nil || !ok {
		return false, err
	}

	for _, subset := range properNonEmptySubsets(mp.EdgeList) {
		candidate, err := NewMetapath(mp.Source, mp.Target, subset)
		if err != nil {
			continue
		}
		valid, err := mg.IsMetapath(candidate)
		if err == nil && valid {
			return false, nil
		}
	}
	return true, nil
}

// IsInputDominantMetapath reports whether mp is a valid metapath with no
// proper subset of its source set also able to reach its target.
func (mg *Metagraph) IsInputDominantMetapath(mp *Metapath) (bool, error) {
	ok, err := mg.IsMetapath(mp)
	if err != nil || !ok {
		return false, err
	}

	sourceElems := mp.Source.Slice()
	for _, subset := range properNonEmptyElementSubsets(sourceElems) {
		mps, err := mg.GetAllMetapathsFrom(subset, mp.Target)
		if err == nil && len(mps) > 0 {
			return false, nil
		}
	}
	return true, nil
}

// IsDominantMetapath reports whether mp is both edge-dominant and
// input-dominant.
func (mg *Metagraph) IsDominantMetapath(mp *Metapath) (bool, error) {
	ok, err := mg.IsMetapath(mp)
	if err != nil || !ok {
		return false, err
	}
	edgeDominant, err := mg.IsEdgeDominantMetapath(mp)
	if err != nil || !edgeDominant {
		return false, err
	}
	return mg.IsInputDominantMetapath(mp)
}

func uniqueIndices(aStar *matrix.AdjacencyMatrix, s core.Set) []int {
	var out []int
	for e := range s {
		idx := aStar.IndexOf(e)
		found := false
		for _, existing := range out {
			if existing == idx {
				found = true
				break
			}
		}
		if !found {
			out = append(out, idx)
		}
	}
	return out
}
