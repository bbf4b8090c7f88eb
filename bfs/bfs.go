package bfs

import (
	"fmt"

	"github.com/katalvlaran/pathkit/search"
)

// BFS finds a shortest (fewest-edges) path from start to any node
// accepted by success, exploring successors via next. It returns the
// path (start first, goal last); ok is false if no reachable node
// satisfies success.
//
// Grounded on the reference implementation's bfs() (an IndexMap-backed
// FIFO frontier over parent indices) and the reference library's
// bfs.walker (hooks, MaxDepth, FilterNeighbor, context cancellation).
func BFS[N search.Node](
	start N,
	next search.NeighborFunc[N],
	success search.GoalFunc[N],
	opts ...Option[N],
) (path []N, ok bool, err error) {
	cfg := buildOptions(opts)
	if cfg.err != nil {
		return nil, false, cfg.err
	}

	set := search.NewOpenSet[N, int]()
	set.Seed(start, 0)
	queue := []int{0}

	for len(queue) > 0 {
		select {
		case <-cfg.ctx.Done():
			return nil, false, fmt.Errorf("%w: %w", search.ErrCancelled, cfg.ctx.Err())
		default:
		}

		idx := queue[0]
		queue = queue[1:]
		node, depth, _ := set.At(idx)

		if cfg.OnDequeue != nil {
			cfg.OnDequeue(node, depth)
		}
		if cfg.OnVisit != nil {
			if vErr := cfg.OnVisit(node, depth); vErr != nil {
				return nil, false, vErr
			}
		}
		if success(node) {
			return set.PathTo(idx), true, nil
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
	return nil, false, nil
}
