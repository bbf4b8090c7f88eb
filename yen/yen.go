package yen

import (
	"errors"
	"iter"

	"github.com/katalvlaran/pathkit/dijkstra"
	"github.com/katalvlaran/pathkit/search"
)

// ErrInvalidK is returned when k is less than 1.
var ErrInvalidK = errors.New("yen: k must be at least 1")

// Path is one of Yen's results: a loopless node sequence and its total
// cost.
type Path[N search.Node, C search.Cost] struct {
	Nodes []N
	Cost  C
}

// Yen computes up to k loopless paths from start to any node accepted
// by success, in non-decreasing total cost order, the shortest one
// first. Ties are broken by fewer nodes, then by discovery order (this
// module's Node has no ordering requirement, so a lexicographic
// tie-break is not available generically). Returns fewer than k paths
// if the graph does not admit that many; returns nil, nil if start
// cannot reach any node satisfying success at all.
func Yen[N search.Node, C search.Cost](
	start N,
	next search.SuccessorFunc[N, C],
	success search.GoalFunc[N],
	k int,
) ([]Path[N, C], error) {
	if k < 1 {
		return nil, ErrInvalidK
	}

	firstNodes, firstCost, ok, err := dijkstra.Dijkstra(start, success, next)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	routes := []Path[N, C]{{Nodes: firstNodes, Cost: firstCost}}
	var candidates []Path[N, C]

	for len(routes) < k {
		prev := routes[len(routes)-1].Nodes
		for spurIdx := 0; spurIdx < len(prev)-1; spurIdx++ {
			spurNode := prev[spurIdx]
			rootPath := prev[:spurIdx+1]

			forbiddenNodes := make(map[N]bool, spurIdx+1)
			for _, n := range prev[:spurIdx+1] {
				forbiddenNodes[n] = true
			}
			forbiddenNext := make(map[N]bool)
			for _, r := range routes {
				if len(r.Nodes) > spurIdx+1 && sharesPrefix(r.Nodes, rootPath) {
					forbiddenNext[r.Nodes[spurIdx+1]] = true
				}
			}

			restricted := restrictedSuccessor(next, spurNode, forbiddenNodes, forbiddenNext)
			spurPath, _, spurOk, spurErr := dijkstra.Dijkstra(spurNode, success, restricted)
			if spurErr != nil {
				return nil, spurErr
			}
			if !spurOk {
				continue
			}

			candidateNodes := make([]N, 0, spurIdx+len(spurPath))
			candidateNodes = append(candidateNodes, prev[:spurIdx]...)
			candidateNodes = append(candidateNodes, spurPath...)

			if containsPath(routes, candidateNodes) || containsPath(candidates, candidateNodes) {
				continue
			}
			candidates = append(candidates, Path[N, C]{
				Nodes: candidateNodes,
				Cost:  pathCost(candidateNodes, next),
			})
		}

		if len(candidates) == 0 {
			break
		}
		bestIdx := 0
		for idx := 1; idx < len(candidates); idx++ {
			if less(candidates[idx], candidates[bestIdx]) {
				bestIdx = idx
			}
		}
		routes = append(routes, candidates[bestIdx])
		candidates = append(candidates[:bestIdx], candidates[bestIdx+1:]...)
	}

	return routes, nil
}

func less[N search.Node, C search.Cost](a, b Path[N, C]) bool {
	if a.Cost != b.Cost {
		return a.Cost < b.Cost
	}
	return len(a.Nodes) < len(b.Nodes)
}

func sharesPrefix[N search.Node](nodes, prefix []N) bool {
	if len(nodes) < len(prefix) {
		return false
	}
	for i, n := range prefix {
		if nodes[i] != n {
			return false
		}
	}
	return true
}

func containsPath[N search.Node, C search.Cost](paths []Path[N, C], nodes []N) bool {
	for _, p := range paths {
		if sameNodes(p.Nodes, nodes) {
			return true
		}
	}
	return false
}

func sameNodes[N search.Node](a, b []N) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// restrictedSuccessor wraps next so that, from spurNode only, edges to
// forbiddenNext are hidden (the first step of any previously found path
// sharing this spur's root), and from any node, edges into forbiddenNodes
// are hidden (nodes already used by the root path, which must not be
// revisited).
func restrictedSuccessor[N search.Node, C search.Cost](
	next search.SuccessorFunc[N, C],
	spurNode N,
	forbiddenNodes, forbiddenNext map[N]bool,
) search.SuccessorFunc[N, C] {
	return func(n N) iter.Seq2[N, C] {
		return func(yield func(N, C) bool) {
			for succ, cost := range next(n) {
				if forbiddenNodes[succ] {
					continue
				}
				if n == spurNode && forbiddenNext[succ] {
					continue
				}
				if !yield(succ, cost) {
					return
				}
			}
		}
	}
}

// pathCost recomputes the total cost of a node sequence against next,
// since a spur found through a restricted successor function reports
// only the spur's own cost, not the concatenated candidate's.
func pathCost[N search.Node, C search.Cost](nodes []N, next search.SuccessorFunc[N, C]) C {
	var total C
	for i := 0; i+1 < len(nodes); i++ {
		for succ, cost := range next(nodes[i]) {
			if succ == nodes[i+1] {
				total += cost
				break
			}
		}
	}
	return total
}
