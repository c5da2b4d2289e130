package builder

import (
	"fmt"

	"github.com/dinesharanathunga/mgtoolkit/core"
	"github.com/dinesharanathunga/mgtoolkit/metagraph"
)

// Constructor applies a deterministic set of edges to mg using the
// resolved builderConfig.
type Constructor func(mg *metagraph.Metagraph, cfg builderConfig) error

// BuildMetagraph creates a new metagraph.Metagraph over generatingSet,
// resolves a builderConfig from bopts, and applies every constructor in
// order. The first error is wrapped with "BuildMetagraph: %w" and
// returned immediately.
func BuildMetagraph(generatingSet core.GeneratingSet, bopts []BuilderOption, cons ...Constructor) (*metagraph.Metagraph, error) {
	mg, err := metagraph.New(generatingSet)
	if err != nil {
		return nil, fmt.Errorf("BuildMetagraph: %w", err)
	}

	cfg := newBuilderConfig(bopts...)
	for i, cons := range cons {
		if cons == nil {
			return nil, fmt.Errorf("BuildMetagraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := cons(mg, cfg); err != nil {
			return nil, fmt.Errorf("BuildMetagraph: %w", err)
		}
	}
	return mg, nil
}

// elementsFor returns the n elements cfg.idFn names for indices 0..n-1.
func elementsFor(cfg builderConfig, n int) []core.Element {
	elems := make([]core.Element, n)
	for i := 0; i < n; i++ {
		elems[i] = cfg.idFn(i)
	}
	return elems
}

// GeneratingSetFor returns the generating set a topology of size n needs,
// given idFn (or DefaultIDFn if nil): elements 0..n-1, plus CenterElement
// when withCenter is true (Star, Wheel).
func GeneratingSetFor(n int, idFn IDFn, withCenter bool) core.GeneratingSet {
	if idFn == nil {
		idFn = DefaultIDFn
	}
	gs := core.NewSet()
	for i := 0; i < n; i++ {
		gs.Add(idFn(i))
	}
	if withCenter {
		gs.Add(CenterElement)
	}
	return gs
}

// BipartiteGeneratingSet returns the generating set CompleteBipartite
// needs for partitions of size n1 and n2 under the given prefixes (or
// "L"/"R" if empty).
func BipartiteGeneratingSet(n1, n2 int, leftPrefix, rightPrefix string) core.GeneratingSet {
	if leftPrefix == "" {
		leftPrefix = "L"
	}
	if rightPrefix == "" {
		rightPrefix = "R"
	}
	gs := core.NewSet()
	left, right := PrefixedIDFn(leftPrefix), PrefixedIDFn(rightPrefix)
	for i := 0; i < n1; i++ {
		gs.Add(left(i))
	}
	for j := 0; j < n2; j++ {
		gs.Add(right(j))
	}
	return gs
}
