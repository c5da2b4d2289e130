package builder

import (
	"fmt"

	"github.com/dinesharanathunga/mgtoolkit/core"
	"github.com/dinesharanathunga/mgtoolkit/metagraph"
)

const methodStar = "Star"

// Star returns a Constructor building a hub-and-spoke topology: a fixed
// CenterElement hub connected to n-1 leaves, CenterElement -> leaf[i].
func Star(n int) Constructor {
	return func(mg *metagraph.Metagraph, cfg builderConfig) error {
		if n < MinStarElements {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, MinStarElements, ErrTooFewElements)
		}

		leaves := elementsFor(cfg, n-1)
		for i, leaf := range leaves {
			edge, err := core.NewEdge(core.NewSet(CenterElement), core.NewSet(leaf), core.WithLabel(fmt.Sprintf("spoke%d", i)))
			if err != nil {
				return fmt.Errorf("%s: NewEdge(Center->%s): %w", methodStar, leaf, err)
			}
			if err := mg.AddEdge(edge); err != nil {
				return fmt.Errorf("%s: AddEdge(Center->%s): %w", methodStar, leaf, err)
			}
		}
		return nil
	}
}
