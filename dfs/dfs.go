package dfs

import (
	"fmt"

	"github.com/katalvlaran/pathkit/search"
)

// DFS finds a path from start to any node accepted by success, by
// recursively exploring successors via next in the order next yields
// them. It returns the first such path found; ok is false if no
// reachable node satisfies success.
//
// A node is never visited twice for the whole call, even across
// sibling branches: a shared "seen" set is threaded through the
// recursion, matching the reference library's global dfsWalker.Visited
// map rather than the per-branch path.contains check the plain
// reference implementation of dfs() uses.
func DFS[N search.Node](
	start N,
	next search.NeighborFunc[N],
	success search.GoalFunc[N],
	opts ...Option[N],
) (path []N, ok bool, err error) {
	cfg := buildOptions(opts)
	if cfg.err != nil {
		return nil, false, cfg.err
	}

	seen := map[N]bool{start: true}
	path = []N{start}

	found, walkErr := dfsStep(&path, seen, next, success, cfg, 0)
	if walkErr != nil {
		return nil, false, walkErr
	}
	if !found {
		return nil, false, nil
	}
	return path, true, nil
}

func dfsStep[N search.Node](
	path *[]N,
	seen map[N]bool,
	next search.NeighborFunc[N],
	success search.GoalFunc[N],
	cfg Options[N],
	depth int,
) (bool, error) {
	select {
	case <-cfg.ctx.Done():
		return false, fmt.Errorf("%w: %w", search.ErrCancelled, cfg.ctx.Err())
	default:
	}

	current := (*path)[len(*path)-1]
	if cfg.OnVisit != nil {
		if vErr := cfg.OnVisit(current, depth); vErr != nil {
			return false, vErr
		}
	}
	if success(current) {
		return true, nil
	}

	if cfg.MaxDepth < 0 || depth < cfg.MaxDepth {
		for succ := range next(current) {
			if seen[succ] {
				continue
			}
			if cfg.FilterNeighbor != nil && !cfg.FilterNeighbor(current, succ) {
				continue
			}
			seen[succ] = true
			*path = append(*path, succ)
			found, err := dfsStep(path, seen, next, success, cfg, depth+1)
			if err != nil {
				return false, err
			}
			if found {
				return true, nil
			}
			*path = (*path)[:len(*path)-1]
		}
	}

	if cfg.OnExit != nil {
		if eErr := cfg.OnExit(current, depth); eErr != nil {
			return false, eErr
		}
	}
	return false, nil
}
