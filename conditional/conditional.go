package conditional

import (
	"strings"

	"github.com/dinesharanathunga/mgtoolkit/core"
	"github.com/dinesharanathunga/mgtoolkit/metagraph"
)

// ConditionalMetagraph is a metagraph.Metagraph whose generating set is
// partitioned into Variables and Propositions: propositions gate which
// edges survive under a given true/false assignment (GetContext), and
// every outvertex that names a proposition must name nothing else.
type ConditionalMetagraph struct {
	*metagraph.Metagraph
	Variables    core.Set
	Propositions core.Set
	metapathCap  int
}

// NewConditionalMetagraph builds a ConditionalMetagraph over the union of
// variables and propositions, which must be disjoint.
func NewConditionalMetagraph(variables, propositions core.Set, opts ...Option) (*ConditionalMetagraph, error) {
	if variables == nil || variables.Len() == 0 {
		return nil, core.NewError(core.InvalidArgument, "variables", "value_null")
	}
	if propositions == nil || propositions.Len() == 0 {
		return nil, core.NewError(core.InvalidArgument, "propositions", "value_null")
	}
	if variables.Overlaps(propositions) {
		return nil, core.NewError(core.InvalidArgument, "variables, propositions", "partition_invalid")
	}

	base, err := metagraph.New(variables.Union(propositions))
	if err != nil {
		return nil, err
	}
	cm := &ConditionalMetagraph{
		Metagraph:    base,
		Variables:    variables.Clone(),
		Propositions: propositions.Clone(),
		metapathCap:  defaultMetapathCap,
	}
	for _, opt := range opts {
		opt(cm)
	}
	return cm, nil
}

// AddEdgesFrom adds every edge in edges, additionally rejecting any edge
// whose outvertex mixes a proposition with any other element.
func (cm *ConditionalMetagraph) AddEdgesFrom(edges []*core.Edge) error {
	if len(edges) == 0 {
		return core.NewError(core.InvalidArgument, "edges", "value_null")
	}
	for _, e := range edges {
		for p := range cm.Propositions {
			if e.Outvertex.Contains(p) && e.Outvertex.Len() > 1 {
				return core.NewError(core.InvalidArgument, "edge", "value_invalid")
			}
		}
	}
	return cm.Metagraph.AddEdgesFrom(edges)
}

// GetContext specializes cm for a fixed true/false assignment of
// propositions: every trueProps member is removed from the invertex and
// outvertex of edges that carry it (the edge is dropped if either side
// becomes empty), and every edge naming any falseProps member anywhere is
// dropped outright.
func (cm *ConditionalMetagraph) GetContext(trueProps, falseProps core.Set) (*ConditionalMetagraph, error) {
	if trueProps == nil || trueProps.Len() == 0 {
		return nil, core.NewError(core.InvalidArgument, "trueProps", "value_null")
	}
	if falseProps == nil || falseProps.Len() == 0 {
		return nil, core.NewError(core.InvalidArgument, "falseProps", "value_null")
	}
	for p := range trueProps {
		if !cm.Propositions.Contains(p) {
			return nil, core.NewError(core.RangeViolation, "trueProps", "range_invalid")
		}
	}
	for p := range falseProps {
		if !cm.Propositions.Contains(p) {
			return nil, core.NewError(core.RangeViolation, "falseProps", "range_invalid")
		}
	}

	var surviving []*core.Edge
	for _, e := range cm.Edges() {
		if e.Invertex.Overlaps(falseProps) || e.Outvertex.Overlaps(falseProps) {
			continue
		}
		invertex := e.Invertex.Difference(trueProps)
		outvertex := e.Outvertex.Difference(trueProps)
		if invertex.Len() == 0 || outvertex.Len() == 0 {
			continue
		}
		edge, err := core.NewEdge(invertex, outvertex, core.WithLabel(e.Label))
		if err != nil {
			continue
		}
		surviving = append(surviving, edge)
	}

	context, err := NewConditionalMetagraph(cm.Variables, cm.Propositions, WithMetapathCap(cm.metapathCap))
	if err != nil {
		return nil, err
	}
	if len(surviving) > 0 {
		if err := context.AddEdgesFrom(surviving); err != nil {
			return nil, err
		}
	}
	return context, nil
}

// GetProjection projects cm onto subVars union Propositions, delegating
// to the base metagraph projection algorithm.
func (cm *ConditionalMetagraph) GetProjection(subVars core.Set) (*metagraph.Metagraph, error) {
	if subVars == nil || subVars.Len() == 0 {
		return nil, core.NewError(core.InvalidArgument, "subVars", "value_null")
	}
	base, err := metagraph.New(cm.Variables.Union(cm.Propositions))
	if err != nil {
		return nil, err
	}
	if len(cm.Edges()) > 0 {
		if err := base.AddEdgesFrom(cm.Edges()); err != nil {
			return nil, err
		}
	}
	return base.GetProjection(subVars.Union(cm.Propositions))
}

// GetAllMetapaths enumerates metapaths between every pair of distinct,
// non-overlapping node sets registered on cm, stopping once cm's
// metapath cap (10 by default) is reached.
func (cm *ConditionalMetagraph) GetAllMetapaths() ([]*metagraph.Metapath, error) {
	nodes := cm.Nodes()
	var all []*metagraph.Metapath
	for _, n1 := range nodes {
		for _, n2 := range nodes {
			if n1.Equal(n2) || n1.Elements.Overlaps(n2.Elements) {
				continue
			}
			mps, err := cm.GetAllMetapathsFrom(n1.Elements, n2.Elements)
			if err != nil {
				continue
			}
			for _, mp := range mps {
				if !metapathInList(mp, all) {
					all = append(all, mp)
				}
			}
			if len(all) >= cm.metapathCap {
				return all, nil
			}
		}
	}
	return all, nil
}

func metapathInList(mp *metagraph.Metapath, list []*metagraph.Metapath) bool {
	for _, existing := range list {
		if existing.Source.Equal(mp.Source) && existing.Target.Equal(mp.Target) && edgeListsEqual(existing.EdgeList, mp.EdgeList) {
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
		found := false
		for _, o := range b {
			if e.Equal(o) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// HasConflicts reports whether mp's edges, through the propositions
// among their combined invertices, carry more than one distinct
// action=... attribute value.
func (cm *ConditionalMetagraph) HasConflicts(mp *metagraph.Metapath) bool {
	invertices := core.NewSet()
	for _, e := range mp.EdgeList {
		invertices = invertices.Union(e.Invertex)
	}
	potentialConflicts := invertices.Intersect(cm.Propositions)
	return len(actionValues(potentialConflicts)) > 1
}

func actionValues(attributes core.Set) []string {
	var actions []string
	for a := range attributes {
		s := string(a)
		if !strings.Contains(s, "action=") {
			continue
		}
		value := strings.ReplaceAll(s, "action=", "")
		found := false
		for _, existing := range actions {
			if existing == value {
				found = true
				break
			}
		}
		if !found {
			actions = append(actions, value)
		}
	}
	return actions
}

// HasRedundancies reports whether mp is not a dominant metapath in cm.
func (cm *ConditionalMetagraph) HasRedundancies(mp *metagraph.Metapath) (bool, error) {
	dominant, err := cm.IsDominantMetapath(mp)
	if err != nil {
		return false, err
	}
	return !dominant, nil
}
