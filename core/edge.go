package core

import "fmt"

// Edge connects a set of elements (the invertex) to a set of elements
// (the outvertex). Attributes, when present, are folded into the
// invertex exactly as the original toolkit does — an edge that carries an
// attribute is treated as if that attribute were among its own inputs, so
// downstream triple algebra sees attributes and ordinary elements
// uniformly.
type Edge struct {
	Invertex   Set
	Outvertex  Set
	Attributes Set
	Label      string
}

// EdgeOption customizes Edge construction.
type EdgeOption func(*Edge)

// WithAttributes attaches attrs to the edge and folds them into its
// invertex.
func WithAttributes(attrs Set) EdgeOption {
	return func(e *Edge) {
		e.Attributes = attrs.Clone()
	}
}

// WithLabel sets the edge's label, used by textual representations such
// as the inverse metagraph's alpha/beta edge naming.
func WithLabel(label string) EdgeOption {
	return func(e *Edge) {
		e.Label = label
	}
}

// NewEdge builds an Edge from a non-empty invertex and outvertex. When
// WithAttributes is supplied, its elements are merged into the invertex so
// the edge's self-reported Invertex always includes them.
func NewEdge(invertex, outvertex Set, opts ...EdgeOption) (*Edge, error) {
	if invertex == nil || invertex.Len() == 0 {
		return nil, NewError(InvalidArgument, "invertex", "value_null")
	}
	if outvertex == nil || outvertex.Len() == 0 {
		return nil, NewError(InvalidArgument, "outvertex", "value_null")
	}
	e := &Edge{Invertex: invertex.Clone(), Outvertex: outvertex.Clone()}
	for _, opt := range opts {
		opt(e)
	}
	if e.Attributes != nil {
		e.Invertex = e.Invertex.Union(e.Attributes)
	}
	return e, nil
}

// Equal reports whether e and other have the same invertex, outvertex,
// and label, and — when either side carries attributes — the same
// attribute set.
func (e *Edge) Equal(other *Edge) bool {
	if e == nil || other == nil {
		return e == other
	}
	if !e.Invertex.Equal(other.Invertex) || !e.Outvertex.Equal(other.Outvertex) {
		return false
	}
	if e.Label != other.Label {
		return false
	}
	if e.Attributes != nil || other.Attributes != nil {
		return e.Attributes.Equal(other.Attributes)
	}
	return true
}

// SameEndpoints reports whether e and other connect the same invertex and
// outvertex, ignoring label and attributes. Cut-set and bridge detection
// compare edges this way, since an edge set's structural effect on
// reachability depends only on its endpoints.
func (e *Edge) SameEndpoints(other *Edge) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.Invertex.Equal(other.Invertex) && e.Outvertex.Equal(other.Outvertex)
}

func (e *Edge) String() string {
	return fmt.Sprintf("Edge(%v, %v)", e.Invertex.Slice(), e.Outvertex.Slice())
}
