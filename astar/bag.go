package astar

import (
	"container/heap"
	"fmt"
	"iter"

	"github.com/katalvlaran/pathkit/search"
)

// bagEntry is one row of AStarBag's node table: unlike plain AStar's
// tableEntry, it tracks every index that has ever been an optimal parent
// of this node. AStarBag records all equal-cost parents and walks them
// depth-first in child-insertion order for deterministic enumeration.
type bagEntry[N search.Node, C search.Cost] struct {
	node    N
	parents []int
	cost    C
}

// AStarBag finds every minimum-cost path from start to any node accepted
// by success, guided by heuristic. It returns a lazy iterator over paths
// (enumerated depth-first, deterministically, in child-insertion order)
// together with their shared cost. ok is false if no reachable node
// satisfies success, in which case paths is nil.
//
// Grounded on the reference implementation's astar_bag/AstarSolution: the
// settle-then-relax loop is the same as AStar's, generalized to retain a
// set of tied-optimal parents per node and to keep exploring until the
// queue's minimum estimated cost exceeds the best success cost found so
// far, then the resulting DAG of tied predecessors is walked lazily by a
// depth-first "odometer" (complete/advance) ported to a Go 1.23
// range-over-func iterator in place of Rust's hand-rolled Iterator impl.
func AStarBag[N search.Node, C search.Cost](
	start N,
	next search.SuccessorFunc[N, C],
	heuristic search.HeuristicFunc[N, C],
	success search.GoalFunc[N],
	opts ...Option[N, C],
) (paths iter.Seq[[]N], cost C, ok bool, err error) {
	cfg := buildOptions(opts)

	entries := []bagEntry[N, C]{{node: start, parents: nil, cost: zero[C]()}}
	index := map[N]int{start: 0}
	var frontier candidateHeap[C]
	heap.Push(&frontier, candidate[C]{estimated: heuristic(start), cost: zero[C](), index: 0})

	var minCost C
	haveMinCost := false
	var sinks []int
	// sinkSeen dedupes sinks against repeated pops of the same index: a
	// success node can be popped non-stale more than once if its cost is
	// improved again after it was first accepted (observable when the
	// heuristic is negative enough to pop it out of true-cost order).
	sinkSeen := make(map[int]bool)

	for frontier.Len() > 0 {
		if cfg.ctxCheck != nil {
			if cErr := cfg.ctxCheck(); cErr != nil {
				return nil, zero[C](), false, fmt.Errorf("%w: %w", search.ErrCancelled, cErr)
			}
		}
		top := heap.Pop(&frontier).(candidate[C])
		if haveMinCost && top.estimated > minCost {
			break
		}
		e := entries[top.index]
		if success(e.node) {
			minCost = top.cost
			haveMinCost = true
			if !sinkSeen[top.index] {
				sinkSeen[top.index] = true
				sinks = append(sinks, top.index)
			}
		}
		if top.cost > e.cost {
			continue // stale
		}
		if cfg.onVisit != nil {
			cfg.onVisit(e.node, e.cost)
		}
		for succ, edgeCost := range next(e.node) {
			if edgeCost < zero[C]() {
				return nil, zero[C](), false, search.ErrNegativeWeight
			}
			newCost := e.cost + edgeCost
			if cfg.hasMax && newCost > *cfg.maxCost {
				continue
			}
			if idx, exists := index[succ]; exists {
				switch {
				case entries[idx].cost > newCost:
					entries[idx].cost = newCost
					entries[idx].parents = []int{top.index}
					heap.Push(&frontier, candidate[C]{estimated: newCost + heuristic(succ), cost: newCost, index: idx})
					if cfg.onRelax != nil {
						cfg.onRelax(e.node, succ, newCost)
					}
				case entries[idx].cost == newCost:
					entries[idx].parents = append(entries[idx].parents, top.index)
				default:
					// worse than the known cost: not queued again
				}
				continue
			}
			idx := len(entries)
			entries = append(entries, bagEntry[N, C]{node: succ, parents: []int{top.index}, cost: newCost})
			index[succ] = idx
			heap.Push(&frontier, candidate[C]{estimated: newCost + heuristic(succ), cost: newCost, index: idx})
			if cfg.onRelax != nil {
				cfg.onRelax(e.node, succ, newCost)
			}
		}
	}

	if !haveMinCost {
		return nil, zero[C](), false, nil
	}

	nodes := make([]N, len(entries))
	parents := make([][]int, len(entries))
	for i, e := range entries {
		nodes[i] = e.node
		parents[i] = e.parents
	}
	sol := &bagSolution[N]{sinks: sinks, parents: parents, nodes: nodes}
	return sol.all(), minCost, true, nil
}

// AStarBagCollect is AStarBag with its lazy path iterator eagerly drained
// into a slice. The reference implementation's own doc comment warns
// that the number of tied-optimal paths can be very large in some
// graphs; prefer AStarBag directly unless the caller genuinely needs
// every path materialized at once.
func AStarBagCollect[N search.Node, C search.Cost](
	start N,
	next search.SuccessorFunc[N, C],
	heuristic search.HeuristicFunc[N, C],
	success search.GoalFunc[N],
	opts ...Option[N, C],
) (paths [][]N, cost C, ok bool, err error) {
	seq, cost, ok, err := AStarBag(start, next, heuristic, success, opts...)
	if err != nil || !ok {
		return nil, cost, ok, err
	}
	for p := range seq {
		paths = append(paths, p)
	}
	return paths, cost, true, nil
}

// bagSolution walks the tied-optimal-parent DAG produced by AStarBag,
// depth-first, one path per call to the yield function, in the manner of
// an odometer: each level of "current" holds the remaining parent
// candidates still to be tried at that depth, and advancing pops the
// exhausted ones from the bottom up.
type bagSolution[N search.Node] struct {
	sinks   []int
	parents [][]int
	nodes   []N
}

func (s *bagSolution[N]) all() iter.Seq[[]N] {
	return func(yield func([]N) bool) {
		if len(s.sinks) == 0 {
			return
		}
		var current [][]int
		complete := func() {
			for {
				var ps []int
				if len(current) == 0 {
					ps = append([]int(nil), s.sinks...)
				} else {
					last := current[len(current)-1]
					top := last[len(last)-1]
					ps = append([]int(nil), s.parents[top]...)
				}
				if len(ps) == 0 {
					break
				}
				current = append(current, ps)
			}
		}
		advance := func() {
			for len(current) > 0 && len(current[len(current)-1]) == 1 {
				current = current[:len(current)-1]
			}
			if len(current) > 0 {
				last := current[len(current)-1]
				current[len(current)-1] = last[:len(last)-1]
			}
		}

		terminated := false
		for {
			if terminated {
				return
			}
			complete()
			path := make([]N, 0, len(current))
			for i := len(current) - 1; i >= 0; i-- {
				lvl := current[i]
				path = append(path, s.nodes[lvl[len(lvl)-1]])
			}
			advance()
			terminated = len(current) == 0
			if !yield(path) {
				return
			}
		}
	}
}
