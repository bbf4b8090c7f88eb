package fixtures

import (
	"iter"

	"github.com/katalvlaran/pathkit/search"
)

// Square is a chessboard coordinate, (0,0) at the top-left corner.
type Square struct {
	Rank, File int
}

var knightOffsets = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

// KnightMoves returns the unweighted neighbour function for a knight on an
// n x n chessboard: from any square, the (up to) eight legal L-shaped
// moves that stay on the board. This is the classic knight's-tour
// shortest-path fixture used by the reference implementation's own BFS
// tests, reproduced here as a NeighborFunc for bfs.BFS/bfs.BFSReach.
func KnightMoves(n int) search.NeighborFunc[Square] {
	return func(from Square) iter.Seq[Square] {
		return func(yield func(Square) bool) {
			for _, d := range knightOffsets {
				to := Square{Rank: from.Rank + d[0], File: from.File + d[1]}
				if to.Rank < 0 || to.Rank >= n || to.File < 0 || to.File >= n {
					continue
				}
				if !yield(to) {
					return
				}
			}
		}
	}
}
