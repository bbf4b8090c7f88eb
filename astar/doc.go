// Package astar implements the A* shortest-path algorithm: Dijkstra's
// settle-then-relax loop guided by an admissible heuristic toward a goal,
// plus AStarBag/AStarBagCollect for enumerating every minimum-cost path
// rather than just one.
//
// The heuristic must never overestimate the true remaining cost to a
// success node, or the returned path may not be optimal — this package
// does not verify admissibility at runtime, matching the reference
// implementation's own contract.
package astar
