package fixtures

import (
	"iter"

	"github.com/katalvlaran/pathkit/search"
)

// TiedDiamond returns the minimal graph with a genuine cost tie between
// two distinct optimal paths: A->B:1, A->C:1, B->D:2, C->D:2. Both
// A->B->D and A->C->D cost 3, and neither dominates the other, making
// this the fixture AStarBag needs to prove it enumerates every
// minimum-cost path rather than just the first one found.
func TiedDiamond() search.SuccessorFunc[string, int] {
	adj := map[string][]search.Edge[string, int]{
		"A": {{To: "B", Cost: 1}, {To: "C", Cost: 1}},
		"B": {{To: "D", Cost: 2}},
		"C": {{To: "D", Cost: 2}},
		"D": {},
	}
	return func(n string) iter.Seq2[string, int] {
		return search.FromEdges(adj[n])
	}
}
