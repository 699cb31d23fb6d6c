package pathfind

// Movement costs. Diagonal is 10√2 rounded to an int so heap keys stay
// integers and never hit float comparison artifacts.
const (
	StraightCost = 10
	DiagCost     = 14
)

// Cell identifies one square of the grid.
type Cell struct {
	Row, Col int
}

// WalkabilityQuery is the minimal view of a grid the engine needs. The owner
// of the grid mutates obstacles between runs, never during one.
type WalkabilityQuery interface {
	IsWalkable(row, col int) bool
	Dimensions() (rows, cols int)
}

// Direction offsets as (row, col) deltas. Orthogonal and diagonal sets are
// kept apart so the search applies the two movement costs without branching
// per neighbor.
var orthoDirs = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

var diagDirs = [4][2]int{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}

// Heuristic returns the octile distance between a and b: diagonal steps as
// far as the smaller axis delta allows, straight steps for the rest. A lower
// bound under this cost model, which is what makes the search optimal.
func Heuristic(a, b Cell) int {
	dRow := a.Row - b.Row
	if dRow < 0 {
		dRow = -dRow
	}
	dCol := a.Col - b.Col
	if dCol < 0 {
		dCol = -dCol
	}
	diag := dRow
	if dCol < diag {
		diag = dCol
	}
	straight := dRow + dCol - 2*diag
	return diag*DiagCost + straight*StraightCost
}

// OrthoNeighbors returns the walkable in-bounds cells directly above, below,
// left and right of c. A fresh slice per call, safe to re-enumerate.
func OrthoNeighbors(g WalkabilityQuery, c Cell) []Cell {
	return neighbors(g, c, &orthoDirs)
}

// DiagNeighbors returns the walkable in-bounds cells diagonally adjacent to c.
func DiagNeighbors(g WalkabilityQuery, c Cell) []Cell {
	return neighbors(g, c, &diagDirs)
}

func neighbors(g WalkabilityQuery, c Cell, dirs *[4][2]int) []Cell {
	rows, cols := g.Dimensions()
	adjacent := make([]Cell, 0, 4)
	for _, d := range dirs {
		r := c.Row + d[0]
		col := c.Col + d[1]
		if r < 0 || r >= rows || col < 0 || col >= cols {
			continue
		}
		if !g.IsWalkable(r, col) {
			continue
		}
		adjacent = append(adjacent, Cell{Row: r, Col: col})
	}
	return adjacent
}
