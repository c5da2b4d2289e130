package builder

import (
	"fmt"

	"github.com/dinesharanathunga/mgtoolkit/core"
	"github.com/dinesharanathunga/mgtoolkit/metagraph"
)

const methodPath = "Path"

// Path returns a Constructor building a simple path of n singleton-edge
// hops: elem(0) -> elem(1) -> ... -> elem(n-1).
func Path(n int) Constructor {
	return func(mg *metagraph.Metagraph, cfg builderConfig) error {
		if n < MinPathElements {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, MinPathElements, ErrTooFewElements)
		}

		elems := elementsFor(cfg, n)
		for i := 1; i < n; i++ {
			edge, err := core.NewEdge(core.NewSet(elems[i-1]), core.NewSet(elems[i]), core.WithLabel(fmt.Sprintf("path%d", i)))
			if err != nil {
				return fmt.Errorf("%s: NewEdge(%s->%s): %w", methodPath, elems[i-1], elems[i], err)
			}
			if err := mg.AddEdge(edge); err != nil {
				return fmt.Errorf("%s: AddEdge(%s->%s): %w", methodPath, elems[i-1], elems[i], err)
			}
		}
		return nil
	}
}
