package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/pathkit/search"
)

// candidate is one entry queued for expansion: estimated is f = g + h,
// used for heap ordering; cost is g, used both as the staleness check
// against the settled table and as the secondary sort key on ties,
// matching the reference implementation's SmallestCostHolder.
type candidate[C search.Cost] struct {
	estimated C
	cost      C
	index     int
}

type candidateHeap[C search.Cost] []candidate[C]

func (h candidateHeap[C]) Len() int { return len(h) }
func (h candidateHeap[C]) Less(i, j int) bool {
	if h[i].estimated != h[j].estimated {
		return h[i].estimated < h[j].estimated
	}
	return h[i].cost < h[j].cost
}
func (h candidateHeap[C]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *candidateHeap[C]) Push(x interface{}) {
	*h = append(*h, x.(candidate[C]))
}
func (h *candidateHeap[C]) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// tableEntry is one row of the node table shared by AStar's single-parent
// search: the node, its best known cost, and the store index of its
// parent (-1 for the start node).
type tableEntry[N search.Node, C search.Cost] struct {
	node   N
	parent int
	cost   C
}

// AStar finds a minimum-cost path from start to any node accepted by
// success, guided by heuristic. It returns the path (start first, goal
// last) and its total cost; ok is false if no reachable node satisfies
// success. Ties between equal-cost predecessors are broken by keeping the
// first one discovered, matching the reference implementation's
// IndexMap::entry semantics — use AStarBag to enumerate every tied
// optimal path instead.
//
// Grounded on the reference implementation's astar() and a
// container/heap-based lazy-decrease-key priority queue, generalized
// with an f = g + h ordering key instead of a plain g key.
func AStar[N search.Node, C search.Cost](
	start N,
	next search.SuccessorFunc[N, C],
	heuristic search.HeuristicFunc[N, C],
	success search.GoalFunc[N],
	opts ...Option[N, C],
) (path []N, cost C, ok bool, err error) {
	cfg := buildOptions(opts)

	entries := []tableEntry[N, C]{{node: start, parent: -1, cost: zero[C]()}}
	index := map[N]int{start: 0}
	var frontier candidateHeap[C]
	heap.Push(&frontier, candidate[C]{estimated: heuristic(start), cost: zero[C](), index: 0})

	for frontier.Len() > 0 {
		if cfg.ctxCheck != nil {
			if cErr := cfg.ctxCheck(); cErr != nil {
				return nil, zero[C](), false, fmt.Errorf("%w: %w", search.ErrCancelled, cErr)
			}
		}
		top := heap.Pop(&frontier).(candidate[C])
		e := entries[top.index]
		if top.cost > e.cost {
			continue // stale: a cheaper path to this index was found later
		}
		if cfg.onVisit != nil {
			cfg.onVisit(e.node, e.cost)
		}
		if success(e.node) {
			return buildAStarPath(entries, top.index), e.cost, true, nil
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
				if entries[idx].cost <= newCost {
					continue
				}
				entries[idx].cost = newCost
				entries[idx].parent = top.index
				heap.Push(&frontier, candidate[C]{estimated: newCost + heuristic(succ), cost: newCost, index: idx})
				if cfg.onRelax != nil {
					cfg.onRelax(e.node, succ, newCost)
				}
				continue
			}
			idx := len(entries)
			entries = append(entries, tableEntry[N, C]{node: succ, parent: top.index, cost: newCost})
			index[succ] = idx
			heap.Push(&frontier, candidate[C]{estimated: newCost + heuristic(succ), cost: newCost, index: idx})
			if cfg.onRelax != nil {
				cfg.onRelax(e.node, succ, newCost)
			}
		}
	}
	return nil, zero[C](), false, nil
}

func buildAStarPath[N search.Node, C search.Cost](entries []tableEntry[N, C], idx int) []N {
	var rev []N
	for idx != -1 {
		rev = append(rev, entries[idx].node)
		idx = entries[idx].parent
	}
	reverseInPlace(rev)
	return rev
}
