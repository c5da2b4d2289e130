package builder

import (
	"fmt"

	"github.com/dinesharanathunga/mgtoolkit/core"
	"github.com/dinesharanathunga/mgtoolkit/metagraph"
)

const methodCompleteBipartite = "CompleteBipartite"

// CompleteBipartite returns a Constructor building K_{n1,n2}: every
// cross pair left[i] -> right[j], using cfg's leftPrefix/rightPrefix
// ("L"/"R" by default) to name the two partitions.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(mg *metagraph.Metagraph, cfg builderConfig) error {
		if n1 < MinPartitionElements || n2 < MinPartitionElements {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be >= %d): %w",
				methodCompleteBipartite, n1, n2, MinPartitionElements, ErrTooFewElements)
		}

		left := PrefixedIDFn(cfg.leftPrefix)
		right := PrefixedIDFn(cfg.rightPrefix)

		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				u, v := left(i), right(j)
				edge, err := core.NewEdge(core.NewSet(u), core.NewSet(v), core.WithLabel(fmt.Sprintf("cross%d_%d", i, j)))
				if err != nil {
					return fmt.Errorf("%s: NewEdge(%s->%s): %w", methodCompleteBipartite, u, v, err)
				}
				if err := mg.AddEdge(edge); err != nil {
					return fmt.Errorf("%s: AddEdge(%s->%s): %w", methodCompleteBipartite, u, v, err)
				}
			}
		}
		return nil
	}
}
