package triple

import "github.com/dinesharanathunga/mgtoolkit/core"

// Add merges a and b, the triple lists held by two adjacency-matrix cells
// that describe the same (row, column) pair, by set union: every triple
// already in a is kept, and every triple in b is appended unless an
// equal triple (core.Triple.Equal) is already present.
//
// A nil a or b is treated as an absent cell rather than an error, mirroring
// the adjacency matrix's own absent/empty-cell distinction: Add(nil, bs)
// returns bs unchanged, and Add(nil, nil) returns nil.
func Add(a, b []*core.Triple) []*core.Triple {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}

	result := make([]*core.Triple, len(a), len(a)+len(b))
	copy(result, a)
	for _, t := range b {
		if !inList(t, result) {
			result = append(result, t)
		}
	}
	return result
}

func inList(t *core.Triple, list []*core.Triple) bool {
	for _, other := range list {
		if t.Equal(other) {
			return true
		}
	}
	return false
}
