package search

import "iter"

// SuccessorFunc is the weighted successor callback every engine drives:
// given a node, it yields its outgoing (neighbour, edge-cost) pairs. It
// is queried on demand and never retained across calls.
type SuccessorFunc[N Node, C Cost] func(N) iter.Seq2[N, C]

// NeighborFunc is the unweighted counterpart used by BFS/DFS/IDDFS: given
// a node, it yields its outgoing neighbours with implicit unit cost.
type NeighborFunc[N Node] func(N) iter.Seq[N]

// HeuristicFunc estimates the cost from a node to the (implicit) goal.
// A*, Fringe and IDA* require it to be admissible for optimality: it must
// never overestimate the true remaining cost.
type HeuristicFunc[N Node, C Cost] func(N) C

// GoalFunc reports whether a node satisfies the search's success
// condition. It must be pure.
type GoalFunc[N Node] func(N) bool

// Edge pairs a destination node with the cost of moving to it. It exists
// purely as ergonomic sugar for building a SuccessorFunc out of a slice —
// see FromEdges.
type Edge[N Node, C Cost] struct {
	To   N
	Cost C
}

// FromEdges adapts a plain slice of edges into a SuccessorFunc-compatible
// iter.Seq2, for callers whose successors are naturally computed as a
// slice (grid moves, adjacency lists) rather than incrementally.
func FromEdges[N Node, C Cost](edges []Edge[N, C]) iter.Seq2[N, C] {
	return func(yield func(N, C) bool) {
		for _, e := range edges {
			if !yield(e.To, e.Cost) {
				return
			}
		}
	}
}

// FromNodes adapts a plain slice of nodes into a NeighborFunc-compatible
// iter.Seq, for the unweighted engines.
func FromNodes[N Node](nodes []N) iter.Seq[N] {
	return func(yield func(N) bool) {
		for _, n := range nodes {
			if !yield(n) {
				return
			}
		}
	}
}
