package dfs

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/pathkit/search"
)

// DFSReach returns a lazy iterator over search.Step values in
// pre-order, without a goal predicate: the caller decides when to stop
// consuming by breaking out of the range loop. Depth is carried in
// Step.Cost, one unit per edge. As with DFS, a node is visited at most
// once for the whole call.
func DFSReach[N search.Node](
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
		seen := map[N]bool{start: true}
		var walk func(node, parent N, hasParent bool, depth int) bool
		walk = func(node, parent N, hasParent bool, depth int) bool {
			select {
			case <-cfg.ctx.Done():
				lastErr = fmt.Errorf("%w: %w", search.ErrCancelled, cfg.ctx.Err())
				return false
			default:
			}
			if cfg.OnVisit != nil {
				if vErr := cfg.OnVisit(node, depth); vErr != nil {
					lastErr = vErr
					return false
				}
			}
			step := search.Step[N, int]{Node: node, Cost: depth}
			if hasParent {
				step.Parent = parent
				step.HasParent = true
			}
			if !yield(step) {
				return false
			}
			if cfg.MaxDepth >= 0 && depth >= cfg.MaxDepth {
				return true
			}
			for succ := range next(node) {
				if seen[succ] {
					continue
				}
				if cfg.FilterNeighbor != nil && !cfg.FilterNeighbor(node, succ) {
					continue
				}
				seen[succ] = true
				if !walk(succ, node, true, depth+1) {
					return false
				}
			}
			if cfg.OnExit != nil {
				if eErr := cfg.OnExit(node, depth); eErr != nil {
					lastErr = eErr
					return false
				}
			}
			return true
		}
		walk(start, start, false, 0)
	}
	return steps, errFn
}
