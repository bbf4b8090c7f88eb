// Package fixtures provides deterministic graph fixtures shared by every
// engine package's tests and examples: a small weighted DAG, a knight's-tour
// chessboard, a 5x5 obstacle grid, and the k-shortest-paths graph from Yen's
// original worked example. Adapted from the reference library's builder
// package idiom (deterministic constructors, no hidden RNG state) but built directly as
// plain adjacency data rather than a mutable *core.Graph, since every engine
// in this module consumes a search.SuccessorFunc rather than an owned graph.
package fixtures
