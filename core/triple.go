package core

import (
	"fmt"
	"strings"
)

// Triple captures the co-inputs, co-outputs, and edge set that describe
// how one element of a metagraph's generating set relates to another.
//
// Coinputs and Cooutputs are *Set rather than Set so a Triple can
// represent "no co-inputs were ever computed for this cell" (a nil
// pointer) distinctly from "this cell's co-inputs are the empty set" (a
// pointer to an empty Set). The two states are not interchangeable:
// adjacency-matrix cells that have never been the target of a multiply
// start out absent, and only become the empty set once an operation
// actually determines there is nothing there.
type Triple struct {
	Coinputs  *Set
	Cooutputs *Set
	Edges     []*Edge
}

// NewTriple builds a Triple. edges must be non-nil (it may be empty);
// passing a nil slice is rejected the same way the original toolkit
// rejects a nil edges argument.
func NewTriple(coinputs, cooutputs *Set, edges []*Edge) (*Triple, error) {
	if edges == nil {
		return nil, NewError(InvalidArgument, "edges", "value_null")
	}
	return &Triple{Coinputs: coinputs, Cooutputs: cooutputs, Edges: edges}, nil
}

// AbsentSet returns a *Set representing "no set", for call sites that
// need to construct a Triple with absent coinputs or cooutputs.
func AbsentSet() *Set {
	return nil
}

// PresentSet returns a *Set wrapping s, even when s is empty, so callers
// can distinguish "computed and empty" from "never computed".
func PresentSet(s Set) *Set {
	return &s
}

// Equal reports whether t and other carry the same coinputs, cooutputs,
// and edge list. Absent and empty are distinct: Equal returns false if
// one side is absent and the other is a present empty set.
func (t *Triple) Equal(other *Triple) bool {
	if t == nil || other == nil {
		return t == other
	}
	if !setPtrEqual(t.Coinputs, other.Coinputs) {
		return false
	}
	if !setPtrEqual(t.Cooutputs, other.Cooutputs) {
		return false
	}
	if len(t.Edges) != len(other.Edges) {
		return false
	}
	for _, e := range t.Edges {
		if !edgeInList(e, other.Edges) {
			return false
		}
	}
	return true
}

func setPtrEqual(a, b *Set) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

func edgeInList(e *Edge, list []*Edge) bool {
	for _, other := range list {
		if e.Equal(other) {
			return true
		}
	}
	return false
}

func (t *Triple) String() string {
	descs := make([]string, 0, len(t.Edges))
	for _, e := range t.Edges {
		descs = append(descs, e.String())
	}
	coinputs := "∅"
	if t.Coinputs != nil {
		coinputs = fmt.Sprintf("%v", t.Coinputs.Slice())
	}
	cooutputs := "∅"
	if t.Cooutputs != nil {
		cooutputs = fmt.Sprintf("%v", t.Cooutputs.Slice())
	}
	return fmt.Sprintf("Triple(%s, %s, [%s])", coinputs, cooutputs, strings.Join(descs, ", "))
}
