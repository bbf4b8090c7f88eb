// Package search provides the shared substrate consumed by every search
// engine in pathkit: the Node/Cost type constraints, an indexed open set
// with lazy decrease-key semantics, and the parent-map helpers used for
// path reconstruction.
//
// Nothing in this package owns a graph. Engines built on top of it query
// a caller-supplied successor function on demand and drive an OpenSet
// (or, for the simpler traversals, a plain map) themselves; search only
// supplies the data structures and their invariants.
//
// Complexity:
//
//   - OpenSet.PushOrDecrease: O(log n) amortized (a stale heap entry may
//     be pushed on every strict improvement; discarded lazily on pop).
//   - OpenSet.PopMin: O(log n) amortized.
//   - BuildPath: O(depth of the path).
package search
