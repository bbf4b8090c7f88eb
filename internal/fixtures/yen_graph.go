package fixtures

import (
	"iter"

	"github.com/katalvlaran/pathkit/search"
)

// YenGraph returns the directed, weighted graph from Yen's algorithm's
// canonical worked example (as used by the reference implementation's own
// yen.rs tests): nodes C, D, E, F, G, H labelled 1..6 there and spelled
// out here for readability. Querying the 3 shortest loopless paths from C
// to H yields costs 5, 7 and 8.
func YenGraph() search.SuccessorFunc[string, int] {
	adj := map[string][]search.Edge[string, int]{
		"C": {{To: "D", Cost: 3}, {To: "E", Cost: 2}},
		"D": {{To: "F", Cost: 4}},
		"E": {{To: "D", Cost: 1}, {To: "F", Cost: 2}, {To: "G", Cost: 3}},
		"F": {{To: "G", Cost: 2}, {To: "H", Cost: 1}},
		"G": {{To: "H", Cost: 2}},
		"H": {},
	}
	return func(n string) iter.Seq2[string, int] {
		return search.FromEdges(adj[n])
	}
}
