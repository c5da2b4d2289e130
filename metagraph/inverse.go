package metagraph

import (
	"fmt"

	"github.com/dinesharanathunga/mgtoolkit/core"
)

// GetInverse builds the inverse metagraph: a metagraph whose elements are
// tokens standing for mg's edges, with an edge from token(ek) to
// token(ej) whenever some generating-set element that ej consumes (as an
// invertex member) is produced by ek (as an outvertex member). Elements
// that no edge ever produces are connected from a universal "alpha"
// source; elements no edge ever consumes are connected to a universal
// "beta" sink.
func (mg *Metagraph) GetInverse() (*Metagraph, error) {
	incidence := mg.IncidenceMatrix()
	rows, cols := incidence.Size()

	tokens := make([]string, cols)
	for j, e := range incidence.Edges {
		tokens[j] = edgeToken(e, j)
	}

	var invEdges []*core.Edge
	for j := 0; j < cols; j++ {
		var invertexLabels []core.Element
		for i := 0; i < rows; i++ {
			if incidence.At(i, j) != -1 {
				continue
			}
			// element i is consumed by edge j; find every edge k that
			// produces element i.
			for k := 0; k < cols; k++ {
				if incidence.At(i, k) == 1 {
					invertexLabels = append(invertexLabels, core.Element(tokens[k]))
				}
			}
		}
		if len(invertexLabels) == 0 {
			continue
		}
		invertex := core.NewSet(invertexLabels...)
		outvertex := core.NewSet(core.Element(tokens[j]))
		edge, err := core.NewEdge(invertex, outvertex, core.WithLabel(tokens[j]))
		if err != nil {
			continue
		}
		invEdges = appendIfNewEdge(invEdges, edge)
	}

	invEdges = compressByInvertex(invEdges)

	// alpha/beta sentinels: elements that are always consumed and never
	// produced connect from alpha; elements always produced and never
	// consumed connect to beta.
	for i := 0; i < rows; i++ {
		sawMinus, sawPlus := false, false
		for j := 0; j < cols; j++ {
			switch incidence.At(i, j) {
			case -1:
				sawMinus = true
			case 1:
				sawPlus = true
			}
		}
		if sawMinus && !sawPlus {
			for j := 0; j < cols; j++ {
				if incidence.At(i, j) != -1 {
					continue
				}
				label := fmt.Sprintf("<%s, alpha>", incidence.Elements[i])
				edge, err := core.NewEdge(core.NewSet("alpha"), core.NewSet(core.Element(tokens[j])), core.WithLabel(label))
				if err == nil {
					invEdges = appendIfNewEdge(invEdges, edge)
				}
			}
		}
		if sawPlus && !sawMinus {
			for j := 0; j < cols; j++ {
				if incidence.At(i, j) != 1 {
					continue
				}
				label := fmt.Sprintf("<%s, %s>", incidence.Elements[i], tokens[j])
				edge, err := core.NewEdge(core.NewSet(core.Element(tokens[j])), core.NewSet("beta"), core.WithLabel(label))
				if err == nil {
					invEdges = appendIfNewEdge(invEdges, edge)
				}
			}
		}
	}

	if len(invEdges) == 0 {
		return New(core.NewSet("alpha", "beta"))
	}

	gs := core.NewSet()
	for _, e := range invEdges {
		gs = gs.Union(e.Invertex).Union(e.Outvertex)
	}
	inv, err := New(gs)
	if err != nil {
		return nil, err
	}
	if err := inv.AddEdgesFrom(invEdges); err != nil {
		return nil, err
	}
	return inv, nil
}

// compressByInvertex merges edges that share the same invertex — the same
// set of producer tokens reaching a consumer — into one edge whose
// outvertex is the union of the merged group's outvertices. Two edges
// built from the same producer set represent the same underlying flow
// arriving at different consumers, so the inverse metagraph reports it
// once. Mirrors the original toolkit's "compress the edges" pass, which
// merges by invertex and label together; tokens assigned here are unique
// per source edge, so comparing on invertex alone captures the same
// groups without depending on that compound label's exact text.
func compressByInvertex(edges []*core.Edge) []*core.Edge {
	var compressed []*core.Edge
	for _, e := range edges {
		merged := false
		for i, c := range compressed {
			if c.Invertex.Equal(e.Invertex) {
				outvertex := c.Outvertex.Union(e.Outvertex)
				m, err := core.NewEdge(c.Invertex, outvertex, core.WithLabel(c.Label))
				if err == nil {
					compressed[i] = m
					merged = true
					break
				}
			}
		}
		if !merged {
			compressed = append(compressed, e)
		}
	}
	return compressed
}

func edgeToken(e *core.Edge, idx int) string {
	if e.Label != "" {
		return e.Label
	}
	return fmt.Sprintf("e%d", idx)
}

func appendIfNewEdge(list []*core.Edge, e *core.Edge) []*core.Edge {
	for _, existing := range list {
		if existing.Equal(e) {
			return list
		}
	}
	return append(list, e)
}
