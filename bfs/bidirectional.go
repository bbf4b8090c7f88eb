package bfs

import (
	"fmt"

	"github.com/katalvlaran/pathkit/search"
)

// BFSBidirectional finds a shortest path between start and goal by
// expanding two frontiers simultaneously — one forward from start via
// nextFwd, one backward from goal via nextBwd — one level at a time,
// alternating whichever frontier is currently smaller, and stopping as
// soon as the frontiers share a node. It returns the full path (start
// first, goal last); ok is false if the two are not connected.
//
// It accepts the same Option[N] set as BFS: OnEnqueue/OnDequeue/OnVisit
// fire for every node processed in either frontier (OnVisit's error
// aborts the whole search), and MaxDepth bounds each frontier
// independently, measured from its own root rather than from the
// eventual meeting point.
//
// This is not present in the reference implementation's captured
// sources (bfs_bidirectional is only exercised from its examples/, whose
// crate-internal implementation was not retrieved); the meet-in-the-
// middle technique here is the standard one, built on the same
// search.OpenSet substrate as BFS.
func BFSBidirectional[N search.Node](
	start, goal N,
	nextFwd, nextBwd search.NeighborFunc[N],
	opts ...Option[N],
) (path []N, ok bool, err error) {
	cfg := buildOptions(opts)
	if cfg.err != nil {
		return nil, false, cfg.err
	}
	if start == goal {
		return []N{start}, true, nil
	}

	fwd := search.NewOpenSet[N, int]()
	fwd.Seed(start, 0)
	fwdQueue := []int{0}

	bwd := search.NewOpenSet[N, int]()
	bwd.Seed(goal, 0)
	bwdQueue := []int{0}

	expandLevel := func(set *search.OpenSet[N, int], queue []int, next search.NeighborFunc[N]) ([]int, error) {
		var frontier []int
		for len(queue) > 0 {
			select {
			case <-cfg.ctx.Done():
				return nil, fmt.Errorf("%w: %w", search.ErrCancelled, cfg.ctx.Err())
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
					return nil, vErr
				}
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
				frontier = append(frontier, childIdx)
			}
		}
		return frontier, nil
	}

	meetsAt := func() (N, bool) {
		for i := 0; i < fwd.Len(); i++ {
			n, _, _ := fwd.At(i)
			if _, ok := bwd.Get(n); ok {
				return n, true
			}
		}
		var zero N
		return zero, false
	}

	if meet, found := meetsAt(); found {
		return stitchBidirectional(fwd, bwd, meet), true, nil
	}

	for len(fwdQueue) > 0 || len(bwdQueue) > 0 {
		var stepErr error
		if len(fwdQueue) <= len(bwdQueue) && len(fwdQueue) > 0 {
			fwdQueue, stepErr = expandLevel(fwd, fwdQueue, nextFwd)
		} else if len(bwdQueue) > 0 {
			bwdQueue, stepErr = expandLevel(bwd, bwdQueue, nextBwd)
		} else {
			fwdQueue, stepErr = expandLevel(fwd, fwdQueue, nextFwd)
		}
		if stepErr != nil {
			return nil, false, stepErr
		}
		if meet, found := meetsAt(); found {
			return stitchBidirectional(fwd, bwd, meet), true, nil
		}
	}
	return nil, false, nil
}

func stitchBidirectional[N search.Node](fwd, bwd *search.OpenSet[N, int], meet N) []N {
	fwdIdx, _ := fwd.Get(meet)
	half1 := fwd.PathTo(fwdIdx) // start .. meet

	bwdIdx, _ := bwd.Get(meet)
	half2 := bwd.PathTo(bwdIdx) // goal .. meet, needs reversing and dropping the shared meet node

	path := make([]N, 0, len(half1)+len(half2)-1)
	path = append(path, half1...)
	for i := len(half2) - 2; i >= 0; i-- {
		path = append(path, half2[i])
	}
	return path
}
