package model

// ClientMessage is what the client sends over the wire: the grid layout to
// solve. When UseDemo is set the server solves its bundled level instead.
type ClientMessage struct {
	Cols, Rows int
	Obstacles  [][2]int
	StartCol   int
	StartRow   int
	TargetCol  int
	TargetRow  int
	Animate    bool
	UseDemo    bool
}

type ServerMessage struct {
	Setup   []Setup
	Steps   []SolveStep
	Results []SolveResult
}

type Setup struct {
	Cols, Rows int
	StartCol   int
	StartRow   int
	TargetCol  int
	TargetRow  int
	Obstacles  [][2]int
}

// SolveStep reports one expansion: the cell just taken off the frontier and
// the frontier that remains after it.
type SolveStep struct {
	Col, Row int
	Queued   int
	Open     [][2]int
}

type SolveResult struct {
	Found     bool
	Path      [][2]int
	TotalCost int
	Steps     int
}
