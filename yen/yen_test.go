package yen_test

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathkit/internal/fixtures"
	"github.com/katalvlaran/pathkit/search"
	"github.com/katalvlaran/pathkit/yen"
)

func TestYen_WikipediaExample(t *testing.T) {
	next := fixtures.YenGraph()

	paths, err := yen.Yen("C", next, func(n string) bool { return n == "H" }, 3)
	require.NoError(t, err)
	require.Len(t, paths, 3)

	assert.Equal(t, []string{"C", "E", "F", "H"}, paths[0].Nodes)
	assert.Equal(t, 5, paths[0].Cost)

	assert.Equal(t, []string{"C", "E", "G", "H"}, paths[1].Nodes)
	assert.Equal(t, 7, paths[1].Cost)

	assert.Equal(t, []string{"C", "D", "F", "H"}, paths[2].Nodes)
	assert.Equal(t, 8, paths[2].Cost)
}

func TestYen_AskingForMoreThanExistReturnsWhatIsAvailable(t *testing.T) {
	next := fixtures.YenGraph()

	paths, err := yen.Yen("C", next, func(n string) bool { return n == "H" }, 10)
	require.NoError(t, err)
	assert.Len(t, paths, 7)
	for i := 1; i < len(paths); i++ {
		assert.LessOrEqual(t, paths[i-1].Cost, paths[i].Cost)
	}
}

func TestYen_NoPathReturnsNil(t *testing.T) {
	adj := map[string][]search.Edge[string, int]{
		"c": {{To: "d", Cost: 3}, {To: "e", Cost: 2}},
		"d": {{To: "f", Cost: 4}},
		"e": {{To: "d", Cost: 1}, {To: "f", Cost: 2}, {To: "g", Cost: 3}},
		"f": {{To: "g", Cost: 2}, {To: "d", Cost: 1}},
		"g": {{To: "e", Cost: 2}},
		"h": {},
	}
	next := func(n string) iter.Seq2[string, int] { return search.FromEdges(adj[n]) }

	paths, err := yen.Yen("c", next, func(n string) bool { return n == "h" }, 2)
	require.NoError(t, err)
	assert.Nil(t, paths)
}

func TestYen_SupportsASelfLoopSingleNodePath(t *testing.T) {
	next := func(n string) iter.Seq2[string, int] {
		return search.FromEdges([]search.Edge[string, int]{{To: "c", Cost: 1}})
	}

	paths, err := yen.Yen("c", next, func(n string) bool { return n == "c" }, 2)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, []string{"c"}, paths[0].Nodes)
	assert.Equal(t, 0, paths[0].Cost)
}

func TestYen_CycleReachableFromAnInteriorNodeNeverProducesALoopingPath(t *testing.T) {
	// The shortest path is A->B->C->D. B sits on that path's interior and
	// has a cycle back to itself via X (B->X->B), plus X has its own
	// route onward to D. A spur launched from B must forbid B itself,
	// not just the nodes strictly before it, or the spur could route
	// back through B on its way to D.
	adj := map[string][]search.Edge[string, int]{
		"A": {{To: "B", Cost: 1}},
		"B": {{To: "C", Cost: 1}, {To: "X", Cost: 1}},
		"C": {{To: "D", Cost: 1}},
		"X": {{To: "B", Cost: 1}, {To: "D", Cost: 5}},
		"D": {},
	}
	next := func(n string) iter.Seq2[string, int] { return search.FromEdges(adj[n]) }

	paths, err := yen.Yen("A", next, func(n string) bool { return n == "D" }, 5)
	require.NoError(t, err)
	require.NotEmpty(t, paths)
	for _, p := range paths {
		seen := make(map[string]bool, len(p.Nodes))
		for _, n := range p.Nodes {
			require.False(t, seen[n], "path %v revisits node %q", p.Nodes, n)
			seen[n] = true
		}
	}
}

func TestYen_InvalidKIsRejected(t *testing.T) {
	next := fixtures.YenGraph()
	_, err := yen.Yen("C", next, func(n string) bool { return n == "H" }, 0)
	require.ErrorIs(t, err, yen.ErrInvalidK)
}
