// Package pathkit is your in-memory toolbox for informed and uninformed
// graph search — from a single shared substrate to five shortest-path
// engines and a k-shortest-paths driver on top.
//
// 🚀 What is pathkit?
//
//	A modern, generic, callback-driven library that brings together:
//		• Substrate: an indexed open set with decrease-key, a parent
//		  store for path reconstruction, and Node/Cost abstractions
//		• Uninformed search: BFS (+ bidirectional), DFS, IDDFS
//		• Informed search: A* (+ AStarBag), Fringe, IDA*
//		• Shortest paths: Dijkstra (+ DijkstraAll/Partial/Reach)
//		• k-shortest paths: Yen, built on top of Dijkstra
//		• DAG path counting: CountPaths
//
// ✨ Why choose pathkit?
//
//   - Beginner-friendly – you supply a successor function, pathkit does the rest
//   - Rock-solid guarantees – documented tie-break and admissibility contracts
//   - Pure Go – no cgo, no hidden deps beyond testify for tests
//   - Extensible – graphs are never owned; any implicit or infinite state
//     space works as long as you can describe its successors
//
// Under the hood, everything is organized under nine subpackages:
//
//	search/     — Node/Cost constraints, OpenSet (also the parent store), BuildPath
//	dijkstra/   — Dijkstra, DijkstraAll, DijkstraPartial, DijkstraReach
//	astar/      — AStar, AStarBag, AStarBagCollect
//	fringe/     — Fringe (F-bounded layered search)
//	idastar/    — IDA* (iterative deepening by f-cost)
//	bfs/        — BFS, BFSReach, BFSBidirectional, BFSLoop
//	dfs/        — DFS, DFSReach, IDDFS
//	yen/        — Yen's k-shortest loopless paths
//	countpaths/ — memoised DAG path counting
//
// Quick ASCII example — the weighted DAG from the test suite:
//
//	A ──4──► B ──5──► D ──2──► E
//	│        │        ▲        ▲
//	2        1        8        10
//	▼        ▼        │        │
//	C ◄──────┘        │        │
//	├─────────────────┘        │
//	└──────────────────────────┘
//
//	Dijkstra(A, ..., ==E) returns (["A","B","D","E"], 11).
//
// None of the engines own a graph: they query the caller's successor
// function on demand, which is what lets them run over implicit or
// infinite state spaces (puzzle boards, procedurally generated maps)
// at the cost of re-evaluating successors when asked twice.
//
//	go get github.com/katalvlaran/pathkit
package pathkit
