package core

import "fmt"

// Node wraps a non-empty set of elements. Metagraph nodes, unlike ordinary
// graph vertices, are themselves sets: a single Node can stand for several
// elements of the generating set at once.
type Node struct {
	Elements Set
}

// NewNode builds a Node from elements, rejecting a nil or empty set: a
// Node with no elements carries no information and the original toolkit
// treats it as a construction error.
func NewNode(elements Set) (*Node, error) {
	if elements == nil || elements.Len() == 0 {
		return nil, NewError(InvalidArgument, "elements", "value_null")
	}
	return &Node{Elements: elements.Clone()}, nil
}

// Equal reports whether n and other wrap the same element set.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	return n.Elements.Equal(other.Elements)
}

func (n *Node) String() string {
	return fmt.Sprintf("Node(%v)", n.Elements.Slice())
}
