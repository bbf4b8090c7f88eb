package idastar

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/pathkit/search"
)

// candidate is one successor considered at a given depth, pre-sorted by
// estimated total cost so the recursive search visits the most promising
// branch first — the reference implementation's own tie-break, which
// tends to find a solution (and tighten the bound) faster.
type candidate[N search.Node, C search.Cost] struct {
	node      N
	edgeCost  C
	estimated C
}

// runner carries the mutable recursion state for one IDAStar call: the
// current root-to-frontier path doubles as both the returned solution
// and the "already on this path" exclusion set, so a node is never
// included twice in the path.
type runner[N search.Node, C search.Cost] struct {
	next      search.SuccessorFunc[N, C]
	heuristic search.HeuristicFunc[N, C]
	success   search.GoalFunc[N]
	cfg       Options[N, C]

	path    []N
	inPath  map[N]bool
	err     error
	found   bool
	foundAt C
}

// IDAStar finds a minimum-cost path from start to any node accepted by
// success, guided by heuristic, using iterative deepening instead of a
// node table: it re-explores from start on every round, raising the
// f-cost bound to the smallest overshoot observed in the previous round.
// It returns the path (start first, goal last) and its total cost; ok is
// false if no reachable node satisfies success.
//
// Grounded on the reference implementation's idastar()/search(): the
// depth-first recursion and rising-bound outer loop are the same, ported
// from Rust's ControlFlow::Break/Continue to plain Go booleans and error
// returns.
func IDAStar[N search.Node, C search.Cost](
	start N,
	next search.SuccessorFunc[N, C],
	heuristic search.HeuristicFunc[N, C],
	success search.GoalFunc[N],
	opts ...Option[N, C],
) (path []N, cost C, ok bool, err error) {
	cfg := buildOptions(opts)

	r := &runner[N, C]{
		next:      next,
		heuristic: heuristic,
		success:   success,
		cfg:       cfg,
		path:      []N{start},
		inPath:    map[N]bool{start: true},
	}

	bound := heuristic(start)
	for {
		minOvershoot, haveMin := r.search(zero[C](), bound)
		if r.err != nil {
			return nil, zero[C](), false, r.err
		}
		if r.found {
			return append([]N(nil), r.path...), r.foundAt, true, nil
		}
		if !haveMin {
			return nil, zero[C](), false, nil
		}
		bound = minOvershoot
	}
}

// search explores the subtree rooted at the last node of r.path, whose
// accumulated cost from start is cost, under the current bound. It
// reports the smallest f-cost observed among pruned branches (for the
// next round's bound), or sets r.found/r.foundAt/r.path when a solution
// is located.
func (r *runner[N, C]) search(cost C, bound C) (minOvershoot C, haveMin bool) {
	if r.err != nil || r.found {
		return zero[C](), false
	}
	if r.cfg.ctxCheck != nil {
		if cErr := r.cfg.ctxCheck(); cErr != nil {
			r.err = fmt.Errorf("%w: %w", search.ErrCancelled, cErr)
			return zero[C](), false
		}
	}

	node := r.path[len(r.path)-1]
	f := cost + r.heuristic(node)
	if f > bound {
		return f, true
	}
	if r.cfg.onVisit != nil {
		r.cfg.onVisit(node, cost)
	}
	if r.success(node) {
		r.found = true
		r.foundAt = cost
		return zero[C](), false
	}

	var candidates []candidate[N, C]
	for succ, edgeCost := range r.next(node) {
		if edgeCost < zero[C]() {
			r.err = search.ErrNegativeWeight
			return zero[C](), false
		}
		if r.inPath[succ] {
			continue
		}
		newCost := cost + edgeCost
		if r.cfg.hasMax && newCost > *r.cfg.maxCost {
			continue
		}
		candidates = append(candidates, candidate[N, C]{
			node:      succ,
			edgeCost:  edgeCost,
			estimated: newCost + r.heuristic(succ),
		})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].estimated < candidates[j].estimated
	})

	for _, c := range candidates {
		r.path = append(r.path, c.node)
		r.inPath[c.node] = true

		m, hasM := r.search(cost+c.edgeCost, bound)

		if r.err != nil {
			return zero[C](), false
		}
		if r.found {
			return zero[C](), false
		}
		if hasM && (!haveMin || minOvershoot >= m) {
			minOvershoot = m
			haveMin = true
		}

		r.inPath[c.node] = false
		r.path = r.path[:len(r.path)-1]
	}
	return minOvershoot, haveMin
}
