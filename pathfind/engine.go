package pathfind

import "fmt"

// State of an engine run.
type State int

const (
	IDLE State = iota + 1
	RUNNING
	FOUND
	UNREACHABLE
)

func (s State) Name() string {
	switch s {
	case IDLE:
		return "IDLE"
	case RUNNING:
		return "RUNNING"
	case FOUND:
		return "FOUND"
	case UNREACHABLE:
		return "UNREACHABLE"
	default:
		return fmt.Sprintf("N/A(%d)", s)
	}
}

// Membership tracks where a cell stands within the current run.
type Membership int

const (
	// Unseen cells were never relaxed.
	Unseen Membership = iota
	// Open cells sit in the frontier queue.
	Open
	// Closed cells are finalized, their g-cost is the true shortest distance.
	Closed
)

// StepFunc observes one loop iteration: the cell just extracted and the queue
// size after extraction. It must not mutate grid or engine state. Returning a
// non-nil error aborts the run with that error.
type StepFunc func(current Cell, queued int) error

// Options for one run.
type Options struct {
	OnStep StepFunc
	// StepLimit caps loop iterations when > 0. Hitting it fails the run with
	// ErrStepLimit, which is not the same outcome as an unreachable target.
	StepLimit int
	// Endpoints includes start and target in the reconstructed path. Off by
	// default: the path covers strictly the cells between the two.
	Endpoints bool
}

// Option mutates Options.
type Option func(*Options)

// WithOnStep registers a per-iteration observer callback.
func WithOnStep(fn StepFunc) Option {
	return func(o *Options) { o.OnStep = fn }
}

// WithStepLimit caps the number of loop iterations.
func WithStepLimit(n int) Option {
	return func(o *Options) { o.StepLimit = n }
}

// WithEndpoints includes start and target in the result path.
func WithEndpoints() Option {
	return func(o *Options) { o.Endpoints = true }
}

// Result of a finished run. Found is false when the target cannot be reached,
// which is a normal outcome, not an error.
type Result struct {
	Found     bool
	Path      []Cell
	TotalCost int
}

// Engine runs the search over one grid. It owns all per-cell search state
// (g, h, predecessor, membership) in flat arrays indexed row*cols+col, so the
// grid itself only ever answers walkability. One run at a time: the state
// arrays are shared between runs and reset on each Run.
type Engine struct {
	grid       WalkabilityQuery
	rows, cols int

	state      State
	g          []int // -1 until first relaxed
	h          []int
	prev       []int // flat predecessor index, -1 for none
	membership []Membership
}

// NewEngine creates an engine bound to the given grid.
func NewEngine(grid WalkabilityQuery) *Engine {
	rows, cols := grid.Dimensions()
	size := rows * cols
	return &Engine{
		grid:       grid,
		rows:       rows,
		cols:       cols,
		state:      IDLE,
		g:          make([]int, size),
		h:          make([]int, size),
		prev:       make([]int, size),
		membership: make([]Membership, size),
	}
}

// State returns the engine state of the latest run.
func (e *Engine) State() State {
	return e.state
}

// Membership returns the search membership of a cell. Meaningful during a run
// (from inside the step callback) and after it finished.
func (e *Engine) Membership(c Cell) Membership {
	return e.membership[e.index(c)]
}

// GCost returns the best known cost from start to c. ok is false while the
// cell has not been relaxed yet.
func (e *Engine) GCost(c Cell) (cost int, ok bool) {
	cost = e.g[e.index(c)]
	return cost, cost >= 0
}

// HCost returns the heuristic estimate from c to the target of the latest run.
func (e *Engine) HCost(c Cell) int {
	return e.h[e.index(c)]
}

// Predecessor returns the cell from which c was most cheaply reached. ok is
// false for unseen cells and for the start.
func (e *Engine) Predecessor(c Cell) (p Cell, ok bool) {
	i := e.prev[e.index(c)]
	if i < 0 {
		return Cell{}, false
	}
	return e.cell(i), true
}

func (e *Engine) index(c Cell) int {
	return c.Row*e.cols + c.Col
}

func (e *Engine) cell(i int) Cell {
	return Cell{Row: i / e.cols, Col: i % e.cols}
}

func (e *Engine) inBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < e.rows && c.Col >= 0 && c.Col < e.cols
}

// Run finds the cheapest path from start to target. Start equal to target is
// the trivial zero-cost path, not an error. An unreachable target yields
// Result.Found == false with a nil error.
func (e *Engine) Run(start, target Cell, options ...Option) (Result, error) {
	var opts Options
	for _, option := range options {
		option(&opts)
	}

	if !e.inBounds(start) || !e.grid.IsWalkable(start.Row, start.Col) {
		e.state = IDLE
		return Result{}, fmt.Errorf("start %v: %w", start, ErrInvalidEndpoints)
	}
	if !e.inBounds(target) || !e.grid.IsWalkable(target.Row, target.Col) {
		e.state = IDLE
		return Result{}, fmt.Errorf("target %v: %w", target, ErrInvalidEndpoints)
	}

	e.reset(target)
	e.state = RUNNING

	if start == target {
		e.state = FOUND
		return Result{Found: true, Path: e.reconstruct(start, target, opts.Endpoints), TotalCost: 0}, nil
	}

	startIdx := e.index(start)
	e.g[startIdx] = 0
	opened := NewMinQueue()
	opened.Insert(e.h[startIdx], start)
	e.membership[startIdx] = Open

	steps := 0
	for opened.Len() > 0 {
		current, err := opened.ExtractMin()
		if err != nil {
			// Cannot happen while Len() > 0, would be a queue bug.
			e.state = IDLE
			return Result{}, err
		}

		if opts.OnStep != nil {
			if err := opts.OnStep(current, opened.Len()); err != nil {
				e.state = IDLE
				return Result{}, err
			}
		}

		if current == target {
			e.membership[e.index(current)] = Closed
			e.state = FOUND
			return Result{
				Found:     true,
				Path:      e.reconstruct(start, target, opts.Endpoints),
				TotalCost: e.g[e.index(target)],
			}, nil
		}

		steps++
		if opts.StepLimit > 0 && steps > opts.StepLimit {
			e.state = IDLE
			return Result{}, ErrStepLimit
		}

		for _, n := range OrthoNeighbors(e.grid, current) {
			if err := e.relax(opened, current, n, StraightCost); err != nil {
				e.state = IDLE
				return Result{}, err
			}
		}
		for _, n := range DiagNeighbors(e.grid, current) {
			if err := e.relax(opened, current, n, DiagCost); err != nil {
				e.state = IDLE
				return Result{}, err
			}
		}

		e.membership[e.index(current)] = Closed
	}

	e.state = UNREACHABLE
	return Result{Found: false}, nil
}

// relax offers current's g plus the movement cost to neighbor n. Only a
// strict improvement is accepted, equal-cost alternatives never replace an
// existing predecessor. Closed cells are final and skipped.
func (e *Engine) relax(opened *MinQueue, current, n Cell, cost int) error {
	ni := e.index(n)
	if e.membership[ni] == Closed {
		return nil
	}
	candidate := e.g[e.index(current)] + cost
	if e.g[ni] >= 0 && candidate >= e.g[ni] {
		return nil
	}
	e.g[ni] = candidate
	e.prev[ni] = e.index(current)
	f := candidate + e.h[ni]
	if opened.Contains(n) {
		if err := opened.DecreaseKey(n, f); err != nil {
			return fmt.Errorf("relax %v: %w", n, err)
		}
		return nil
	}
	opened.Insert(f, n)
	e.membership[ni] = Open
	return nil
}

// reset clears per-cell search state and recomputes the heuristic toward the
// new target for every cell.
func (e *Engine) reset(target Cell) {
	for i := range e.g {
		e.g[i] = -1
		e.prev[i] = -1
		e.membership[i] = Unseen
		e.h[i] = Heuristic(e.cell(i), target)
	}
}

// reconstruct walks the predecessor links from target back to start. Without
// endpoints the path covers strictly the cells between the two.
func (e *Engine) reconstruct(start, target Cell, endpoints bool) []Cell {
	if start == target {
		if endpoints {
			return []Cell{start}
		}
		return []Cell{}
	}
	path := make([]Cell, 0)
	if endpoints {
		path = append(path, target)
	}
	for i := e.prev[e.index(target)]; i >= 0 && i != e.index(start); i = e.prev[i] {
		path = append(path, e.cell(i))
	}
	if endpoints {
		path = append(path, start)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Search is the one-shot form: a fresh engine, one run.
func Search(grid WalkabilityQuery, start, target Cell, options ...Option) (Result, error) {
	return NewEngine(grid).Run(start, target, options...)
}
