package model

// NewEmptyGrid creates a grid with no obstacles and start/target at their
// default spots (clamped to the grid on small layouts).
func NewEmptyGrid(cols, rows int) *Grid {
	matrix := make([][]*Cell, 0, cols)
	for c := 0; c < cols; c++ {
		column := make([]*Cell, 0, rows)
		for r := 0; r < rows; r++ {
			column = append(column, &Cell{Col: c, Row: r})
		}
		matrix = append(matrix, column)
	}
	g := &Grid{Matrix: matrix, Cols: cols, Rows: rows}
	g.SetStart(g.defaultStart())
	g.SetTarget(g.defaultTarget())
	return g
}

func (g *Grid) defaultStart() *Cell {
	row := clamp(DefaultStartRow, g.Rows-1)
	col := clamp(DefaultStartCol, g.Cols-1)
	return g.Matrix[col][row]
}

func (g *Grid) defaultTarget() *Cell {
	row := clamp(DefaultTargetRow, g.Rows-1)
	col := clamp(g.Cols-DefaultTargetColFromRight, g.Cols-1)
	c := g.Matrix[col][row]
	if c == g.Start {
		// tiny grid folded both defaults onto one cell
		c = g.Matrix[g.Cols-1][g.Rows-1]
	}
	return c
}

func clamp(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

// Cell returns the cell at (col, row), nil when out of bounds.
func (g *Grid) Cell(col, row int) *Cell {
	if col < 0 || col >= g.Cols || row < 0 || row >= g.Rows {
		return nil
	}
	return g.Matrix[col][row]
}

// IsWalkable reports whether the cell at (row, col) can be entered. Out of
// bounds counts as not walkable.
func (g *Grid) IsWalkable(row, col int) bool {
	c := g.Cell(col, row)
	return c != nil && c.State != OBSTACLE
}

// Dimensions returns (rows, cols).
func (g *Grid) Dimensions() (int, int) {
	return g.Rows, g.Cols
}

// ToggleObstacle flips a cell between floor and obstacle. Start, target and
// search-painted cells are left alone.
func (g *Grid) ToggleObstacle(c *Cell) {
	if c == nil {
		return
	}
	switch c.State {
	case UNDISCOVERED:
		c.State = OBSTACLE
	case OBSTACLE:
		c.State = UNDISCOVERED
	}
}

// SetStart designates c as the start cell, unless c currently is the target.
// The previous start reverts to floor.
func (g *Grid) SetStart(c *Cell) {
	if c == nil || g.Target == c {
		return
	}
	if g.Start != nil {
		g.Start.State = UNDISCOVERED
	}
	c.State = START
	g.Start = c
}

// SetTarget designates c as the target cell, unless c currently is the start.
func (g *Grid) SetTarget(c *Cell) {
	if c == nil || g.Start == c {
		return
	}
	if g.Target != nil {
		g.Target.State = UNDISCOVERED
	}
	c.State = TARGET
	g.Target = c
}

// Reset wipes everything: obstacles, search paint, and puts start/target back
// on their defaults.
func (g *Grid) Reset() {
	for _, column := range g.Matrix {
		for _, c := range column {
			c.State = UNDISCOVERED
		}
	}
	g.Start = nil
	g.Target = nil
	g.SetStart(g.defaultStart())
	g.SetTarget(g.defaultTarget())
}

// ClearSearch removes search paint (opened/closed/solution marks) so the same
// layout can be solved again. Obstacles, start and target stay.
func (g *Grid) ClearSearch() {
	for _, column := range g.Matrix {
		for _, c := range column {
			switch c.State {
			case OPENED, CLOSED, SOLUTION:
				c.State = UNDISCOVERED
			case NO_SOL_TARGET:
				c.State = TARGET
			}
		}
	}
}

// MarkOpen paints a frontier cell, leaving start/target untouched.
func (g *Grid) MarkOpen(col, row int) {
	if c := g.Cell(col, row); c != nil && c.State != START && c.State != TARGET {
		c.State = OPENED
	}
}

// MarkClosed paints an expanded cell, leaving start/target untouched.
func (g *Grid) MarkClosed(col, row int) {
	if c := g.Cell(col, row); c != nil && c.State != START && c.State != TARGET {
		c.State = CLOSED
	}
}

// ApplySolution paints the found path. The path is expected to exclude the
// endpoints, exactly what the engine reconstructs by default.
func (g *Grid) ApplySolution(path [][2]int) {
	for _, p := range path {
		if c := g.Cell(p[0], p[1]); c != nil && c.State != START && c.State != TARGET {
			c.State = SOLUTION
		}
	}
}

// MarkNoSolution flags the target as unreachable.
func (g *Grid) MarkNoSolution() {
	if g.Target != nil {
		g.Target.State = NO_SOL_TARGET
	}
}

// Obstacles lists all obstacle coordinates as (col, row) pairs.
func (g *Grid) Obstacles() [][2]int {
	out := make([][2]int, 0)
	for _, column := range g.Matrix {
		for _, c := range column {
			if c.State == OBSTACLE {
				out = append(out, [2]int{c.Col, c.Row})
			}
		}
	}
	return out
}
