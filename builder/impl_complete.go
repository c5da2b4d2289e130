package builder

import (
	"fmt"

	"github.com/dinesharanathunga/mgtoolkit/core"
	"github.com/dinesharanathunga/mgtoolkit/metagraph"
)

const methodComplete = "Complete"

// Complete returns a Constructor building K_n: every ordered pair
// elem(i) -> elem(j), i != j.
func Complete(n int) Constructor {
	return func(mg *metagraph.Metagraph, cfg builderConfig) error {
		if n < MinCompleteElements {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, MinCompleteElements, ErrTooFewElements)
		}

		elems := elementsFor(cfg, n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				edge, err := core.NewEdge(core.NewSet(elems[i]), core.NewSet(elems[j]), core.WithLabel(fmt.Sprintf("k%d_%d", i, j)))
				if err != nil {
					return fmt.Errorf("%s: NewEdge(%s->%s): %w", methodComplete, elems[i], elems[j], err)
				}
				if err := mg.AddEdge(edge); err != nil {
					return fmt.Errorf("%s: AddEdge(%s->%s): %w", methodComplete, elems[i], elems[j], err)
				}
			}
		}
		return nil
	}
}
