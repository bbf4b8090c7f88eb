package dijkstra

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/pathkit/search"
)

// DijkstraReach returns a lazy iterator over search.Step values in
// non-decreasing order of accumulated cost, without a goal predicate, plus
// a RemainingLowBound function reporting a lower bound on the cost of any
// node not yet yielded, and an Err function reporting whether the
// underlying search stopped early due to a negative edge cost. The caller
// decides when to stop consuming by breaking out of the range loop;
// RemainingLowBound lets it implement its own early-exit condition (e.g.
// "stop once cost exceeds a budget known only at call time") without
// re-running the search.
//
// RemainingLowBound and Err are only meaningful once iteration has begun;
// calling either before the first yield reports the zero value.
//
// Grounded on the reference implementation's dijkstra_reach, adapted to
// Go 1.23 range-over-func iterators in place of a Rust custom Iterator
// struct with an explicit next() method — the natural idiom for the same
// "pull one step at a time" contract.
func DijkstraReach[N search.Node, C search.Cost](
	start N,
	next search.SuccessorFunc[N, C],
	opts ...Option[N, C],
) (steps iter.Seq[search.Step[N, C]], remainingLowBound func() (C, bool), errFn func() error) {
	cfg := buildOptions(opts)
	set := search.NewOpenSet[N, C]()
	var lastErr error

	remainingLowBound = func() (C, bool) {
		return set.Peek()
	}
	errFn = func() error {
		return lastErr
	}

	steps = func(yield func(search.Step[N, C]) bool) {
		set.Seed(start, zero[C]())

		first := true
		for {
			if cfg.ctxCheck != nil {
				if cErr := cfg.ctxCheck(); cErr != nil {
					lastErr = fmt.Errorf("%w: %w", search.ErrCancelled, cErr)
					return
				}
			}
			idx, node, nodeCost, more := set.PopMin()
			if !more {
				return
			}
			if cfg.onVisit != nil {
				cfg.onVisit(node, nodeCost)
			}

			step := search.Step[N, C]{Node: node, Cost: nodeCost}
			if !first {
				_, _, parentIdx := set.At(idx)
				parentNode, _, _ := set.At(parentIdx)
				step.Parent = parentNode
				step.HasParent = true
			}
			first = false

			if !yield(step) {
				return
			}

			for succ, edgeCost := range next(node) {
				if edgeCost < zero[C]() {
					lastErr = search.ErrNegativeWeight
					return
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
	return steps, remainingLowBound, errFn
}
