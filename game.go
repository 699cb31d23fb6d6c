package main

import (
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/inpututil"
	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/zucenko/pathfinder/model"
	"github.com/zucenko/pathfinder/pathfind"
)

const (
	size       = 30
	menuHeight = 40
)

var cols = 30
var rows = 20
var screenWidth = cols * size
var screenHeight = rows*size + menuHeight

// StrokeSource represents a input device to provide strokes.
type StrokeSource interface {
	Position() (int, int)
	IsJustReleased() bool
}

// MouseStrokeSource is a StrokeSource implementation of mouse.
type MouseStrokeSource struct{}

func (m *MouseStrokeSource) Position() (int, int) {
	return ebiten.CursorPosition()
}

func (m *MouseStrokeSource) IsJustReleased() bool {
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}

// TouchStrokeSource is a StrokeSource implementation of touch.
type TouchStrokeSource struct {
	ID int
}

func (t *TouchStrokeSource) Position() (int, int) {
	return ebiten.TouchPosition(t.ID)
}

func (t *TouchStrokeSource) IsJustReleased() bool {
	return inpututil.IsTouchJustReleased(t.ID)
}

// Stroke manages the current drag state. painted remembers which cells this
// stroke already toggled so a cell flips at most once per continuous press.
type Stroke struct {
	source StrokeSource

	currentX int
	currentY int

	released bool
	painted  map[*model.Cell]struct{}
}

func NewStroke(source StrokeSource) *Stroke {
	cx, cy := source.Position()
	return &Stroke{
		source:   source,
		currentX: cx,
		currentY: cy,
		painted:  map[*model.Cell]struct{}{},
	}
}

func (s *Stroke) Update() {
	if s.released {
		return
	}
	if s.source.IsJustReleased() {
		s.released = true
		return
	}
	x, y := s.source.Position()
	s.currentX = x
	s.currentY = y
}

func (s *Stroke) IsReleased() bool {
	return s.released
}

func (s *Stroke) Position() (int, int) {
	return s.currentX, s.currentY
}

type Game struct {
	State GameState
	Mode  SelectionMode
	Grid  *model.Grid
	Menu  *Menu

	strokes map[*Stroke]struct{}
	Tweens  map[*gween.Tween]Action

	steps   chan solveStep
	acks    chan struct{}
	outcome chan solveOutcome

	solutionAlpha float64
	flashAlpha    float64
}

var theGame *Game

func init() {
	loadFont()

	grid, err := Load()
	if err != nil {
		log.Printf("no level file, starting empty: %v", err)
		grid = model.NewEmptyGrid(cols, rows)
	}
	cols = grid.Cols
	rows = grid.Rows
	screenWidth = cols * size
	screenHeight = rows*size + menuHeight

	theGame = &Game{
		State:   EDIT,
		Mode:    MODE_OBSTACLE,
		Grid:    grid,
		Menu:    NewMenu(screenWidth, menuHeight),
		strokes: map[*Stroke]struct{}{},
		Tweens:  make(map[*gween.Tween]Action),
	}
	theGame.Menu.Highlight(theGame.Mode)
}

func (g *Game) cellAt(x, y int) *model.Cell {
	if y < menuHeight {
		return nil
	}
	return g.Grid.Cell(x/size, (y-menuHeight)/size)
}

func (g *Game) updateStroke(stroke *Stroke) {
	stroke.Update()
	if g.State == SOLVING {
		return
	}
	x, y := stroke.Position()
	cell := g.cellAt(x, y)
	if cell == nil {
		return
	}
	if g.State != EDIT {
		// touching the grid after a solve drops the old search paint
		g.clearSolve()
	}
	switch g.Mode {
	case MODE_OBSTACLE:
		if _, done := stroke.painted[cell]; !done {
			g.Grid.ToggleObstacle(cell)
			stroke.painted[cell] = struct{}{}
		}
	case MODE_START:
		g.Grid.SetStart(cell)
	case MODE_TARGET:
		g.Grid.SetTarget(cell)
	}
}

func (g *Game) perform(action MenuAction) {
	if g.State == SOLVING {
		return
	}
	switch action {
	case ACTION_OBSTACLES:
		g.Mode = MODE_OBSTACLE
	case ACTION_START:
		g.Mode = MODE_START
	case ACTION_TARGET:
		g.Mode = MODE_TARGET
	case ACTION_RESET:
		g.clearSolve()
		g.Grid.Reset()
	case ACTION_SOLVE:
		g.startSolve(true)
	case ACTION_SOLVE_FAST:
		g.startSolve(false)
	}
	g.Menu.Highlight(g.Mode)
}

func (g *Game) clearSolve() {
	g.Grid.ClearSearch()
	g.State = EDIT
	g.solutionAlpha = 0
	g.flashAlpha = 0
	g.Tweens = make(map[*gween.Tween]Action)
}

func (g *Game) startSolve(animate bool) {
	g.clearSolve()
	g.State = SOLVING
	g.steps = make(chan solveStep)
	g.acks = make(chan struct{})
	g.outcome = make(chan solveOutcome, 1)
	go solve(g.Grid, animate, g.steps, g.acks, g.outcome)
}

// solve runs the engine off the frame loop. In animate mode every expansion
// is handed over through steps and the engine stays blocked until the frame
// loop acknowledges, so the two goroutines never touch the grid at once.
func solve(grid *model.Grid, animate bool, steps chan<- solveStep, acks <-chan struct{}, outcome chan<- solveOutcome) {
	engine := pathfind.NewEngine(grid)
	start := pathfind.Cell{Row: grid.Start.Row, Col: grid.Start.Col}
	target := pathfind.Cell{Row: grid.Target.Row, Col: grid.Target.Col}

	var opts []pathfind.Option
	if animate {
		opts = append(opts, pathfind.WithOnStep(func(current pathfind.Cell, queued int) error {
			open := make([][2]int, 0)
			for row := 0; row < grid.Rows; row++ {
				for col := 0; col < grid.Cols; col++ {
					if engine.Membership(pathfind.Cell{Row: row, Col: col}) == pathfind.Open {
						open = append(open, [2]int{col, row})
					}
				}
			}
			steps <- solveStep{col: current.Col, row: current.Row, queued: queued, open: open}
			<-acks
			return nil
		}))
	}

	result, err := engine.Run(start, target, opts...)
	path := make([][2]int, 0, len(result.Path))
	for _, c := range result.Path {
		path = append(path, [2]int{c.Col, c.Row})
	}
	outcome <- solveOutcome{found: result.Found, path: path, totalCost: result.TotalCost, err: err}
}

func (g *Game) progressSolve() {
	select {
	case step := <-g.steps:
		g.Grid.MarkClosed(step.col, step.row)
		for _, o := range step.open {
			g.Grid.MarkOpen(o[0], o[1])
		}
		g.acks <- struct{}{}
	case out := <-g.outcome:
		g.finishSolve(out)
	default:
	}
}

func (g *Game) finishSolve(out solveOutcome) {
	if out.err != nil {
		log.Warnf("solve failed: %v", out.err)
		g.clearSolve()
		return
	}
	if out.found {
		log.Printf("solved, cost %d, %d cells between the endpoints", out.totalCost, len(out.path))
		g.Grid.ApplySolution(out.path)
		g.State = SOLVED
		g.animate(gween.New(0, 1, 1, ease.OutQuad), Action{
			onChange: func(v float32) { g.solutionAlpha = float64(v) },
		})
	} else {
		log.Printf("no path to the target")
		g.Grid.MarkNoSolution()
		g.State = NO_SOLUTION
		g.flashAlpha = 1
		fade := func(v float32) { g.flashAlpha = float64(v) }
		down := Action{onChange: fade}
		up := down.next(gween.New(0.2, 1, 0.4, ease.Linear))
		up.onChange = fade
		g.animate(gween.New(1, 0.2, 0.4, ease.Linear), down)
	}
}

func (g *Game) update(screen *ebiten.Image) error {
	g.processTweens()

	if g.State == SOLVING {
		g.progressSolve()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if y < menuHeight {
			g.perform(g.Menu.Click(x, y))
		} else {
			g.strokes[NewStroke(&MouseStrokeSource{})] = struct{}{}
		}
	}
	for _, id := range inpututil.JustPressedTouchIDs() {
		g.strokes[NewStroke(&TouchStrokeSource{id})] = struct{}{}
	}
	for s := range g.strokes {
		g.updateStroke(s)
		if s.IsReleased() {
			delete(g.strokes, s)
		}
	}

	if ebiten.IsDrawingSkipped() {
		return nil
	}

	e := screen.Fill(COLOR_BACKGROUND.RGBA(1))
	if e != nil {
		log.Printf("%v", e)
	}

	for _, column := range g.Grid.Matrix {
		for _, cell := range column {
			clr := STATE_COLORS[cell.State]
			alpha := 1.0
			switch cell.State {
			case model.SOLUTION:
				alpha = g.solutionAlpha
			case model.NO_SOL_TARGET:
				alpha = g.flashAlpha
			}
			ebitenutil.DrawRect(screen,
				float64(cell.Col*size)+1, float64(menuHeight+cell.Row*size)+1,
				size-2, size-2,
				clr.RGBA(alpha))
		}
	}

	g.Menu.Draw(screen)
	ebitenutil.DebugPrintAt(screen, g.State.Name(), 2, screenHeight-16)

	return nil
}

func main() {
	if err := ebiten.Run(theGame.update, screenWidth, screenHeight, 1, "Path Finder"); err != nil {
		log.Fatal(err)
	}
}
