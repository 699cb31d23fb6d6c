package pathfind

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// boolGrid is a plain walkability map for tests, true means blocked.
type boolGrid struct {
	rows, cols int
	blocked    map[Cell]bool
}

func newBoolGrid(rows, cols int, blocked ...Cell) *boolGrid {
	g := &boolGrid{rows: rows, cols: cols, blocked: make(map[Cell]bool)}
	for _, c := range blocked {
		g.blocked[c] = true
	}
	return g
}

func (g *boolGrid) IsWalkable(row, col int) bool {
	return !g.blocked[Cell{Row: row, Col: col}]
}

func (g *boolGrid) Dimensions() (int, int) {
	return g.rows, g.cols
}

func TestHeuristicOctile(t *testing.T) {
	target := Cell{Row: 0, Col: 0}

	assert.Equal(t, 0, Heuristic(target, target))
	assert.Equal(t, StraightCost, Heuristic(Cell{0, 1}, target))
	assert.Equal(t, DiagCost, Heuristic(Cell{1, 1}, target))
	// 3 diagonal steps plus 2 straight ones
	assert.Equal(t, 3*DiagCost+2*StraightCost, Heuristic(Cell{3, 5}, target))
	// symmetric in arguments and in axes
	assert.Equal(t, Heuristic(Cell{3, 5}, target), Heuristic(target, Cell{3, 5}))
	assert.Equal(t, Heuristic(Cell{3, 5}, target), Heuristic(Cell{5, 3}, target))
}

func TestHeuristicIsConsistent(t *testing.T) {
	// For every pair of adjacent cells the estimate may not drop by more
	// than the movement cost between them. Checked over a small window.
	target := Cell{Row: 4, Col: 4}
	g := newBoolGrid(9, 9)
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			c := Cell{Row: row, Col: col}
			for _, n := range OrthoNeighbors(g, c) {
				assert.True(t, Heuristic(c, target) <= StraightCost+Heuristic(n, target))
			}
			for _, n := range DiagNeighbors(g, c) {
				assert.True(t, Heuristic(c, target) <= DiagCost+Heuristic(n, target))
			}
		}
	}
}

func TestNeighborsRespectBoundsAndObstacles(t *testing.T) {
	g := newBoolGrid(3, 3, Cell{Row: 0, Col: 1})

	ortho := OrthoNeighbors(g, Cell{Row: 0, Col: 0})
	assert.Equal(t, []Cell{{Row: 1, Col: 0}}, ortho)

	diag := DiagNeighbors(g, Cell{Row: 0, Col: 0})
	assert.Equal(t, []Cell{{Row: 1, Col: 1}}, diag)

	// interior cell with nothing blocked around it
	ortho = OrthoNeighbors(g, Cell{Row: 1, Col: 1})
	assert.Len(t, ortho, 3) // (0,1) is blocked
	diag = DiagNeighbors(g, Cell{Row: 1, Col: 1})
	assert.Len(t, diag, 4)
}

func TestNeighborsReEnumerable(t *testing.T) {
	g := newBoolGrid(3, 3)
	c := Cell{Row: 1, Col: 1}
	first := OrthoNeighbors(g, c)
	second := OrthoNeighbors(g, c)
	assert.Equal(t, first, second)
}
