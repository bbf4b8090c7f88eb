package dfs

import (
	"fmt"

	"github.com/katalvlaran/pathkit/search"
)

// outcome reports what one depth-bounded probe found.
type outcome int

const (
	impossible outcome = iota
	noneAtThisDepth
	foundOptimum
)

// IDDFS finds a shortest path from start to any node accepted by
// success, by repeating a depth-bounded DFS probe with an increasing
// bound until one succeeds or every successor tree is exhausted
// (reported by every probe returning impossible rather than merely
// noneAtThisDepth). It returns the first path found at the smallest
// depth bound that admits one; ok is false if no path exists at all.
//
// Unlike DFS/DFSReach, revisit avoidance here is per-branch (the
// current root-to-frontier path), not global: an early iteration's
// bound may be too shallow to reach the goal down one branch while a
// deeper iteration revisits the same node down another. WithMaxDepth
// and WithOnExit have no effect on IDDFS since the depth bound is
// driven by the outer loop itself.
func IDDFS[N search.Node](
	start N,
	next search.NeighborFunc[N],
	success search.GoalFunc[N],
	opts ...Option[N],
) (path []N, ok bool, err error) {
	cfg := buildOptions(opts)
	if cfg.err != nil {
		return nil, false, cfg.err
	}

	path = []N{start}
	inPath := map[N]bool{start: true}

	for bound := 1; ; bound++ {
		result, stepErr := iddfsStep(&path, inPath, next, success, cfg, bound)
		if stepErr != nil {
			return nil, false, stepErr
		}
		switch result {
		case foundOptimum:
			return path, true, nil
		case impossible:
			return nil, false, nil
		case noneAtThisDepth:
			// try a deeper bound
		}
	}
}

func iddfsStep[N search.Node](
	path *[]N,
	inPath map[N]bool,
	next search.NeighborFunc[N],
	success search.GoalFunc[N],
	cfg Options[N],
	bound int,
) (outcome, error) {
	select {
	case <-cfg.ctx.Done():
		return impossible, fmt.Errorf("%w: %w", search.ErrCancelled, cfg.ctx.Err())
	default:
	}

	current := (*path)[len(*path)-1]
	if cfg.OnVisit != nil {
		if vErr := cfg.OnVisit(current, len(*path)-1); vErr != nil {
			return impossible, vErr
		}
	}
	if bound == 0 {
		return noneAtThisDepth, nil
	}
	if success(current) {
		return foundOptimum, nil
	}

	best := impossible
	for succ := range next(current) {
		if inPath[succ] {
			continue
		}
		if cfg.FilterNeighbor != nil && !cfg.FilterNeighbor(current, succ) {
			continue
		}
		*path = append(*path, succ)
		inPath[succ] = true
		result, err := iddfsStep(path, inPath, next, success, cfg, bound-1)
		if err != nil {
			return impossible, err
		}
		if result == foundOptimum {
			return foundOptimum, nil
		}
		delete(inPath, succ)
		*path = (*path)[:len(*path)-1]

		if result == noneAtThisDepth {
			best = noneAtThisDepth
		}
	}
	return best, nil
}
