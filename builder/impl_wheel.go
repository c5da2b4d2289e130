package builder

import (
	"fmt"

	"github.com/dinesharanathunga/mgtoolkit/core"
	"github.com/dinesharanathunga/mgtoolkit/metagraph"
)

const methodWheel = "Wheel"

// Wheel returns a Constructor building W_n = C_{n-1} plus CenterElement,
// with a spoke CenterElement -> rim[i] for every rim element.
func Wheel(n int) Constructor {
	return func(mg *metagraph.Metagraph, cfg builderConfig) error {
		if n < MinWheelElements {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, MinWheelElements, ErrTooFewElements)
		}

		if err := Cycle(n - 1)(mg, cfg); err != nil {
			return fmt.Errorf("%s: base cycle: %w", methodWheel, err)
		}

		rim := elementsFor(cfg, n-1)
		for i, r := range rim {
			edge, err := core.NewEdge(core.NewSet(CenterElement), core.NewSet(r), core.WithLabel(fmt.Sprintf("spoke%d", i)))
			if err != nil {
				return fmt.Errorf("%s: NewEdge(Center->%s): %w", methodWheel, r, err)
			}
			if err := mg.AddEdge(edge); err != nil {
				return fmt.Errorf("%s: AddEdge(Center->%s): %w", methodWheel, r, err)
			}
		}
		return nil
	}
}
