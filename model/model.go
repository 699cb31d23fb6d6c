package model

// CellState is the display/interaction state of one grid cell. The search
// core never touches these, the front ends paint them from search progress.
type CellState int

const (
	UNDISCOVERED CellState = iota
	OPENED
	CLOSED
	START
	TARGET
	OBSTACLE
	SOLUTION
	NO_SOL_TARGET
)

func (s CellState) Name() string {
	switch s {
	case UNDISCOVERED:
		return "UNDISCOVERED"
	case OPENED:
		return "OPENED"
	case CLOSED:
		return "CLOSED"
	case START:
		return "START"
	case TARGET:
		return "TARGET"
	case OBSTACLE:
		return "OBSTACLE"
	case SOLUTION:
		return "SOLUTION"
	case NO_SOL_TARGET:
		return "NO_SOL_TARGET"
	default:
		return "N/A"
	}
}

type Cell struct {
	Col, Row int
	State    CellState
}

// Grid owns the obstacle layout and the start/target designation. It is the
// walkability source for the search engine: obstacles are mutated between
// runs only, a run reads them as fixed.
type Grid struct {
	Matrix     [][]*Cell // indexed [col][row]
	Cols, Rows int
	Start      *Cell
	Target     *Cell
}

// Default start/target placement on a fresh grid.
const (
	DefaultStartRow  = 9
	DefaultStartCol  = 4
	DefaultTargetRow = 9
	// target column counts from the right edge
	DefaultTargetColFromRight = 5
)
