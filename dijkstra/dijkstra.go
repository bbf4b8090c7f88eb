package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/pathkit/search"
)

// Dijkstra finds a minimum-cost path from start to any node accepted by
// success, exploring successors via next. It returns the path (start
// first, goal last) and its total cost. ok is false if no reachable node
// satisfies success. err is search.ErrNegativeWeight if next ever reports
// a negative edge cost, or wraps search.ErrCancelled if opts includes
// WithContext and the context is cancelled mid-search; when err is
// non-nil the other return values are the zero value and false, not a
// partial result.
//
// Grounded on the reference dijkstra.Run: a single settle-then-relax loop
// driven by a binary heap, generalized from *core.Graph adjacency lookups
// to an arbitrary search.SuccessorFunc.
func Dijkstra[N search.Node, C search.Cost](
	start N,
	success search.GoalFunc[N],
	next search.SuccessorFunc[N, C],
	opts ...Option[N, C],
) (path []N, cost C, ok bool, err error) {
	cfg := buildOptions(opts)

	set := search.NewOpenSet[N, C]()
	set.Seed(start, zero[C]())

	if success(start) {
		return []N{start}, zero[C](), true, nil
	}

	for {
		if cfg.ctxCheck != nil {
			if cErr := cfg.ctxCheck(); cErr != nil {
				return nil, zero[C](), false, fmt.Errorf("%w: %w", search.ErrCancelled, cErr)
			}
		}
		idx, node, nodeCost, more := set.PopMin()
		if !more {
			return nil, zero[C](), false, nil
		}
		if cfg.onVisit != nil {
			cfg.onVisit(node, nodeCost)
		}
		if success(node) {
			return set.PathTo(idx), nodeCost, true, nil
		}
		for succ, edgeCost := range next(node) {
			if edgeCost < zero[C]() {
				return nil, zero[C](), false, search.ErrNegativeWeight
			}
			candidate := nodeCost + edgeCost
			if cfg.hasMax && candidate > *cfg.maxCost {
				continue
			}
			_, kind := set.PushOrDecrease(succ, candidate, idx)
			if kind == search.Decreased && cfg.onRelax != nil {
				cfg.onRelax(node, succ, candidate)
			}
		}
	}
}

// DijkstraAll computes shortest-path costs and parents from start to every
// node reachable via next, with no goal predicate: it runs Dijkstra to
// exhaustion. The returned map omits start itself (its cost is implicitly
// zero and it has no parent), matching search.BuildPath's contract. err is
// search.ErrNegativeWeight if next ever reports a negative edge cost, or
// wraps search.ErrCancelled on context cancellation; in either case the
// returned map reflects only nodes settled before the interruption.
//
// Grounded on the reference library's "all-pairs from source" mode
// (dijkstra.RunAll) and the reference implementation's dijkstra_all.
func DijkstraAll[N search.Node, C search.Cost](
	start N,
	next search.SuccessorFunc[N, C],
	opts ...Option[N, C],
) (search.Reachable[N, C], error) {
	cfg := buildOptions(opts)
	set := search.NewOpenSet[N, C]()
	set.Seed(start, zero[C]())

	result := make(search.Reachable[N, C])
	for {
		if cfg.ctxCheck != nil {
			if cErr := cfg.ctxCheck(); cErr != nil {
				return result, fmt.Errorf("%w: %w", search.ErrCancelled, cErr)
			}
		}
		idx, node, nodeCost, more := set.PopMin()
		if !more {
			return result, nil
		}
		if cfg.onVisit != nil {
			cfg.onVisit(node, nodeCost)
		}
		if node != start {
			_, _, parentIdx := set.At(idx)
			parentNode, _, _ := set.At(parentIdx)
			result[node] = search.Predecessor[N, C]{Parent: parentNode, Cost: nodeCost}
		}
		for succ, edgeCost := range next(node) {
			if edgeCost < zero[C]() {
				return result, search.ErrNegativeWeight
			}
			candidate := nodeCost + edgeCost
			if cfg.hasMax && candidate > *cfg.maxCost {
				continue
			}
			_, kind := set.PushOrDecrease(succ, candidate, idx)
			if kind == search.Decreased && cfg.onRelax != nil {
				cfg.onRelax(node, succ, candidate)
			}
		}
	}
}

// DijkstraPartial is DijkstraAll bounded by a stop predicate: exploration
// halts as soon as stop reports true for the node about to be settled, or
// the frontier is exhausted, whichever comes first. The node that
// triggers stop is not included in the returned map.
func DijkstraPartial[N search.Node, C search.Cost](
	start N,
	stop search.GoalFunc[N],
	next search.SuccessorFunc[N, C],
	opts ...Option[N, C],
) (search.Reachable[N, C], error) {
	cfg := buildOptions(opts)
	set := search.NewOpenSet[N, C]()
	set.Seed(start, zero[C]())

	result := make(search.Reachable[N, C])
	for {
		if cfg.ctxCheck != nil {
			if cErr := cfg.ctxCheck(); cErr != nil {
				return result, fmt.Errorf("%w: %w", search.ErrCancelled, cErr)
			}
		}
		idx, node, nodeCost, more := set.PopMin()
		if !more {
			return result, nil
		}
		if stop(node) {
			return result, nil
		}
		if cfg.onVisit != nil {
			cfg.onVisit(node, nodeCost)
		}
		if node != start {
			_, _, parentIdx := set.At(idx)
			parentNode, _, _ := set.At(parentIdx)
			result[node] = search.Predecessor[N, C]{Parent: parentNode, Cost: nodeCost}
		}
		for succ, edgeCost := range next(node) {
			if edgeCost < zero[C]() {
				return result, search.ErrNegativeWeight
			}
			candidate := nodeCost + edgeCost
			if cfg.hasMax && candidate > *cfg.maxCost {
				continue
			}
			_, kind := set.PushOrDecrease(succ, candidate, idx)
			if kind == search.Decreased && cfg.onRelax != nil {
				cfg.onRelax(node, succ, candidate)
			}
		}
	}
}

func zero[C search.Cost]() C {
	var z C
	return z
}
