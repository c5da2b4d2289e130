package metagraph_test

import (
	"fmt"

	"github.com/dinesharanathunga/mgtoolkit/core"
	"github.com/dinesharanathunga/mgtoolkit/metagraph"
)

// ExampleMetagraph_GetAllMetapathsFrom builds the seven-element worked
// example ({1}->{2,3}, {1,4}->{5}, {3}->{6,7}) and finds the single
// metapath connecting {1} to {7}.
//
// Implementation:
//   - Build the three edges over generating set {1..7}.
//   - Ask for every metapath from {1} to {7}.
//   - Report its edge count and whether it dominates the metapath from a
//     wider source {1,3} to the same target.
func ExampleMetagraph_GetAllMetapathsFrom() {
	gs := core.NewSet("1", "2", "3", "4", "5", "6", "7")
	mg, _ := metagraph.New(gs)

	e1, _ := core.NewEdge(core.NewSet("1"), core.NewSet("2", "3"), core.WithLabel("e1"))
	e2, _ := core.NewEdge(core.NewSet("1", "4"), core.NewSet("5"), core.WithLabel("e2"))
	e3, _ := core.NewEdge(core.NewSet("3"), core.NewSet("6", "7"), core.WithLabel("e3"))
	_ = mg.AddEdgesFrom([]*core.Edge{e1, e2, e3})

	mps, err := mg.GetAllMetapathsFrom(core.NewSet("1"), core.NewSet("7"))
	if err != nil {
		fmt.Println(err)
		return
	}

	narrow, _ := metagraph.NewMetapath(core.NewSet("1", "3"), core.NewSet("7"), nil)

	fmt.Printf("metapaths found: %d\n", len(mps))
	fmt.Printf("edges used: %d\n", len(mps[0].EdgeList))
	fmt.Printf("dominates {1,3}->{7}: %t\n", mps[0].Dominates(narrow))

	// Output:
	// metapaths found: 1
	// edges used: 2
	// dominates {1,3}->{7}: true
}

// ExampleMetagraph_GetProjection reduces the eight-element worked example
// ({1}->{3,4}, {3}->{6}, {2}->{5}, {4,5}->{7}, {6,7}->{8}) onto the
// sub-vocabulary {1,2,6,7,8}.
func ExampleMetagraph_GetProjection() {
	gs := core.NewSet("1", "2", "3", "4", "5", "6", "7", "8")
	mg, _ := metagraph.New(gs)

	e1, _ := core.NewEdge(core.NewSet("1"), core.NewSet("3", "4"), core.WithLabel("e1"))
	e2, _ := core.NewEdge(core.NewSet("3"), core.NewSet("6"), core.WithLabel("e2"))
	e3, _ := core.NewEdge(core.NewSet("2"), core.NewSet("5"), core.WithLabel("e3"))
	e4, _ := core.NewEdge(core.NewSet("4", "5"), core.NewSet("7"), core.WithLabel("e4"))
	e5, _ := core.NewEdge(core.NewSet("6", "7"), core.NewSet("8"), core.WithLabel("e5"))
	_ = mg.AddEdgesFrom([]*core.Edge{e1, e2, e3, e4, e5})

	proj, err := mg.GetProjection(core.NewSet("1", "2", "6", "7", "8"))
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("projected edges: %d\n", len(proj.Edges()))
	fmt.Printf("projected nodes: %d\n", len(proj.Nodes()))

	// Output:
	// projected edges: 5
	// projected nodes: 8
}

func ExampleMetagraph_GetInverse() {
	gs := core.NewSet("1", "2", "3", "4", "5", "6", "7", "8")
	mg, _ := metagraph.New(gs)

	e1, _ := core.NewEdge(core.NewSet("1", "2"), core.NewSet("3", "4"), core.WithLabel("e1"))
	e2, _ := core.NewEdge(core.NewSet("3", "4", "5"), core.NewSet("6", "8"), core.WithLabel("e2"))
	e3, _ := core.NewEdge(core.NewSet("1"), core.NewSet("5"), core.WithLabel("e3"))
	e4, _ := core.NewEdge(core.NewSet("6", "7"), core.NewSet("1"), core.WithLabel("e4"))
	_ = mg.AddEdgesFrom([]*core.Edge{e1, e2, e3, e4})

	inv, err := mg.GetInverse()
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("inverse edges: %d\n", len(inv.Edges()))
	fmt.Printf("inverse nodes: %d\n", len(inv.Nodes()))

	// Output:
	// inverse edges: 6
	// inverse nodes: 6
}
