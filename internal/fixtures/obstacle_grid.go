package fixtures

import (
	"iter"

	"github.com/katalvlaran/pathkit/search"
)

// Cell is a grid coordinate, (0,0) at the top-left corner.
type Cell struct {
	Row, Col int
}

// obstacleRows encodes the 5x5 grid used by the A*/Fringe/IDA* fixtures:
// '#' is a blocked cell, '.' is open. Row 0 is the top row.
var obstacleRows = [5]string{
	".....",
	".###.",
	".#...",
	".#.#.",
	"...#.",
}

// ObstacleGrid returns the weighted successor function for a 5x5 grid with
// unit-cost cardinal moves (no diagonals), blocked cells excluded from
// the graph entirely. The shortest path from (0,0) to (4,4) has cost 8.
func ObstacleGrid() search.SuccessorFunc[Cell, int] {
	blocked := func(c Cell) bool {
		if c.Row < 0 || c.Row >= 5 || c.Col < 0 || c.Col >= 5 {
			return true
		}
		return obstacleRows[c.Row][c.Col] == '#'
	}
	deltas := [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

	return func(from Cell) iter.Seq2[Cell, int] {
		return func(yield func(Cell, int) bool) {
			if blocked(from) {
				return
			}
			for _, d := range deltas {
				to := Cell{Row: from.Row + d[0], Col: from.Col + d[1]}
				if blocked(to) {
					continue
				}
				if !yield(to, 1) {
					return
				}
			}
		}
	}
}

// ObstacleGridHeuristic is an admissible Manhattan-distance heuristic
// toward goal ((4,4) in the tests), used by the A*/Fringe/IDA* tests exercising the same
// fixture.
func ObstacleGridHeuristic(goal Cell) search.HeuristicFunc[Cell, int] {
	return func(c Cell) int {
		dr := c.Row - goal.Row
		if dr < 0 {
			dr = -dr
		}
		dc := c.Col - goal.Col
		if dc < 0 {
			dc = -dc
		}
		return dr + dc
	}
}
