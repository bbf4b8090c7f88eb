package fixtures

import (
	"iter"

	"github.com/katalvlaran/pathkit/search"
)

// WeightedDAG returns the small directed acyclic graph used throughout
// this module's documentation and tests: edges A->B:4, A->C:2, B->C:1,
// B->D:5, C->D:8, C->E:10, D->E:2. The minimum-cost path from A to E is
// A->B->D->E with cost 4+5+2=11; A->C->D->E and A->C->E both cost 12 and
// are the next two paths Yen's k-shortest variant enumerates.
func WeightedDAG() search.SuccessorFunc[string, int] {
	adj := map[string][]search.Edge[string, int]{
		"A": {{To: "B", Cost: 4}, {To: "C", Cost: 2}},
		"B": {{To: "C", Cost: 1}, {To: "D", Cost: 5}},
		"C": {{To: "D", Cost: 8}, {To: "E", Cost: 10}},
		"D": {{To: "E", Cost: 2}},
		"E": {},
	}
	return func(n string) iter.Seq2[string, int] {
		return search.FromEdges(adj[n])
	}
}
