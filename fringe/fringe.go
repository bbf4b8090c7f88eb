package fringe

import (
	"fmt"

	"github.com/katalvlaran/pathkit/search"
)

type fringeEntry[N search.Node, C search.Cost] struct {
	node   N
	parent int
	g      C
}

// Fringe finds a minimum-cost path from start to any node accepted by
// success, guided by heuristic, using the fringe search sweep instead of
// a binary heap. It returns the path (start first, goal last) and its
// total cost; ok is false if no reachable node satisfies success.
//
// Grounded on the reference implementation's fringe(): two round-robin
// deques (now, later) partition the frontier by whether a node's f-cost
// is within the current threshold; nodes that overflow the threshold are
// deferred to the next round, whose threshold is raised to the minimum
// overflow f-cost seen (fmin).
func Fringe[N search.Node, C search.Cost](
	start N,
	next search.SuccessorFunc[N, C],
	heuristic search.HeuristicFunc[N, C],
	success search.GoalFunc[N],
	opts ...Option[N, C],
) (path []N, cost C, ok bool, err error) {
	cfg := buildOptions(opts)

	entries := []fringeEntry[N, C]{{node: start, parent: -1, g: zero[C]()}}
	index := map[N]int{start: 0}
	now := []int{0}
	var later []int
	flimit := heuristic(start)

	for {
		if len(now) == 0 {
			return nil, zero[C](), false, nil
		}
		var fmin C
		haveFmin := false

		for len(now) > 0 {
			if cfg.ctxCheck != nil {
				if cErr := cfg.ctxCheck(); cErr != nil {
					return nil, zero[C](), false, fmt.Errorf("%w: %w", search.ErrCancelled, cErr)
				}
			}
			i := now[0]
			now = now[1:]
			e := entries[i]
			f := e.g + heuristic(e.node)
			if f > flimit {
				if !haveFmin || f < fmin {
					fmin = f
					haveFmin = true
				}
				later = append(later, i)
				continue
			}
			if cfg.onVisit != nil {
				cfg.onVisit(e.node, e.g)
			}
			if success(e.node) {
				return buildFringePath(entries, i), e.g, true, nil
			}
			for succ, edgeCost := range next(e.node) {
				if edgeCost < zero[C]() {
					return nil, zero[C](), false, search.ErrNegativeWeight
				}
				gNeighbour := e.g + edgeCost
				if cfg.hasMax && gNeighbour > *cfg.maxCost {
					continue
				}
				var n int
				if idx, exists := index[succ]; exists {
					if entries[idx].g <= gNeighbour {
						continue
					}
					entries[idx].g = gNeighbour
					entries[idx].parent = i
					n = idx
				} else {
					n = len(entries)
					entries = append(entries, fringeEntry[N, C]{node: succ, parent: i, g: gNeighbour})
					index[succ] = n
				}
				if cfg.onRelax != nil {
					cfg.onRelax(e.node, succ, gNeighbour)
				}
				if !removeInt(&later, n) {
					removeInt(&now, n)
				}
				now = append([]int{n}, now...)
			}
		}
		now, later = later, nil
		flimit = fmin
	}
}

func buildFringePath[N search.Node, C search.Cost](entries []fringeEntry[N, C], idx int) []N {
	var rev []N
	for idx != -1 {
		rev = append(rev, entries[idx].node)
		idx = entries[idx].parent
	}
	reverseInPlace(rev)
	return rev
}
