package builder

import (
	"fmt"

	"github.com/dinesharanathunga/mgtoolkit/core"
	"github.com/dinesharanathunga/mgtoolkit/metagraph"
)

const methodCycle = "Cycle"

// Cycle returns a Constructor building an n-element ring: elem(i) ->
// elem((i+1)%n) for every i.
func Cycle(n int) Constructor {
	return func(mg *metagraph.Metagraph, cfg builderConfig) error {
		if n < MinCycleElements {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, MinCycleElements, ErrTooFewElements)
		}

		elems := elementsFor(cfg, n)
		for i := 0; i < n; i++ {
			next := elems[(i+1)%n]
			edge, err := core.NewEdge(core.NewSet(elems[i]), core.NewSet(next), core.WithLabel(fmt.Sprintf("ring%d", i)))
			if err != nil {
				return fmt.Errorf("%s: NewEdge(%s->%s): %w", methodCycle, elems[i], next, err)
			}
			if err := mg.AddEdge(edge); err != nil {
				return fmt.Errorf("%s: AddEdge(%s->%s): %w", methodCycle, elems[i], next, err)
			}
		}
		return nil
	}
}
