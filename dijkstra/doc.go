// Package dijkstra provides the classic non-negative-weight shortest-path
// algorithm as four entry points sharing one settle-then-relax core:
//
//	Dijkstra          – shortest path to the first node satisfying a goal predicate.
//	DijkstraAll        – shortest paths to every reachable node.
//	DijkstraPartial    – DijkstraAll bounded by a stop predicate.
//	DijkstraReach      – a lazy, pull-based stream of settled nodes in cost order.
//
// All four are driven by a search.SuccessorFunc rather than an owned graph
// type: the caller supplies the graph's shape on demand, and this package
// owns none of it.
//
// Complexity: O((V + E) log V) time, O(V + E) space, where V is the number
// of nodes discovered and E the number of successor edges examined — one
// amortized extraction per node plus up to E heap pushes under the shared
// search.OpenSet's lazy decrease-key.
//
// A successor callback that ever reports a negative edge cost is reported
// as search.ErrNegativeWeight the first time it is observed during
// relaxation, rather than silently producing a wrong path.
package dijkstra
