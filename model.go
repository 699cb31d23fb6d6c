package main

import (
	"fmt"
	"image/color"

	"github.com/zucenko/pathfinder/model"
)

func HexToF32(u uint32) GameColor {
	b := float64(0xff&u) / 255
	g := float64(0xff&(u>>8)) / 255
	r := float64(0xff&(u>>16)) / 255
	return GameColor{r, g, b}
}

type GameColor struct {
	r float64
	g float64
	b float64
}

func (c GameColor) RGBA(alpha float64) color.RGBA {
	return color.RGBA{
		R: uint8(c.r * alpha * 255),
		G: uint8(c.g * alpha * 255),
		B: uint8(c.b * alpha * 255),
		A: uint8(alpha * 255),
	}
}

var COLOR_BACKGROUND = HexToF32(0x303030)
var COLOR_FLOOR = HexToF32(0xe8e8e8)
var COLOR_OBSTACLE = HexToF32(0x202020)
var COLOR_START = HexToF32(0xff9800)
var COLOR_TARGET = HexToF32(0x40e0d0)
var COLOR_OPENED = HexToF32(0x4caf50)
var COLOR_CLOSED = HexToF32(0xe53935)
var COLOR_SOLUTION = HexToF32(0x9c27b0)
var COLOR_NO_SOL = HexToF32(0x8b0000)
var COLOR_MENU = HexToF32(0x444444)

var STATE_COLORS = map[model.CellState]GameColor{
	model.UNDISCOVERED:  COLOR_FLOOR,
	model.OPENED:        COLOR_OPENED,
	model.CLOSED:        COLOR_CLOSED,
	model.START:         COLOR_START,
	model.TARGET:        COLOR_TARGET,
	model.OBSTACLE:      COLOR_OBSTACLE,
	model.SOLUTION:      COLOR_SOLUTION,
	model.NO_SOL_TARGET: COLOR_NO_SOL,
}

type GameState int

const (
	EDIT GameState = iota + 1
	SOLVING
	SOLVED
	NO_SOLUTION
)

func (s GameState) Name() string {
	switch s {
	case EDIT:
		return "EDIT"
	case SOLVING:
		return "SOLVING"
	case SOLVED:
		return "SOLVED"
	case NO_SOLUTION:
		return "NO_SOLUTION"
	default:
		return fmt.Sprintf("N/A(%d)", s)
	}
}

type SelectionMode int

const (
	MODE_OBSTACLE SelectionMode = iota + 1
	MODE_START
	MODE_TARGET
)

func (m SelectionMode) Name() string {
	switch m {
	case MODE_OBSTACLE:
		return "OBSTACLES"
	case MODE_START:
		return "START"
	case MODE_TARGET:
		return "TARGET"
	default:
		return fmt.Sprintf("N/A(%d)", m)
	}
}

// solveStep is one expansion handed from the engine goroutine to the frame
// loop. The engine blocks until the loop acknowledges, so the grid is never
// touched from two goroutines at once.
type solveStep struct {
	col, row int
	queued   int
	open     [][2]int
}

type solveOutcome struct {
	found     bool
	path      [][2]int
	totalCost int
	err       error
}
