package bfs

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/pathkit/search"
)

// BFSReach returns a lazy iterator over search.Step values in
// non-decreasing depth order, without a goal predicate: the caller
// decides when to stop consuming by breaking out of the range loop.
// Depth is carried in Step.Cost, one unit per edge.
func BFSReach[N search.Node](
	start N,
	next search.NeighborFunc[N],
	opts ...Option[N],
) (steps iter.Seq[search.Step[N, int]], errFn func() error) {
	cfg := buildOptions(opts)
	var lastErr error
	if cfg.err != nil {
		lastErr = cfg.err
	}
	errFn = func() error { return lastErr }

	steps = func(yield func(search.Step[N, int]) bool) {
		if cfg.err != nil {
			return
		}
		set := search.NewOpenSet[N, int]()
		set.Seed(start, 0)
		queue := []int{0}

		for len(queue) > 0 {
			select {
			case <-cfg.ctx.Done():
				lastErr = fmt.Errorf("%w: %w", search.ErrCancelled, cfg.ctx.Err())
				return
			default:
			}

			idx := queue[0]
			queue = queue[1:]
			node, depth, parentIdx := set.At(idx)

			if cfg.OnDequeue != nil {
				cfg.OnDequeue(node, depth)
			}
			if cfg.OnVisit != nil {
				if vErr := cfg.OnVisit(node, depth); vErr != nil {
					lastErr = vErr
					return
				}
			}

			step := search.Step[N, int]{Node: node, Cost: depth}
			if idx != parentIdx {
				parentNode, _, _ := set.At(parentIdx)
				step.Parent = parentNode
				step.HasParent = true
			}
			if !yield(step) {
				return
			}

			if cfg.MaxDepth > 0 && depth >= cfg.MaxDepth {
				continue
			}
			for succ := range next(node) {
				if cfg.FilterNeighbor != nil && !cfg.FilterNeighbor(node, succ) {
					continue
				}
				if _, exists := set.Get(succ); exists {
					continue
				}
				childIdx, _ := set.PushOrDecrease(succ, depth+1, idx)
				if cfg.OnEnqueue != nil {
					cfg.OnEnqueue(succ, depth+1)
				}
				queue = append(queue, childIdx)
			}
		}
	}
	return steps, errFn
}
