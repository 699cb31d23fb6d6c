package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEmptyGridDefaults(t *testing.T) {
	g := NewEmptyGrid(20, 15)
	assert.Equal(t, 20, g.Cols)
	assert.Equal(t, 15, g.Rows)
	assert.NotNil(t, g.Start)
	assert.NotNil(t, g.Target)
	assert.Equal(t, START, g.Start.State)
	assert.Equal(t, TARGET, g.Target.State)
	assert.Equal(t, DefaultStartCol, g.Start.Col)
	assert.Equal(t, DefaultStartRow, g.Start.Row)
	assert.Equal(t, 20-DefaultTargetColFromRight, g.Target.Col)
	assert.Equal(t, DefaultTargetRow, g.Target.Row)
}

func TestNewEmptyGridTiny(t *testing.T) {
	g := NewEmptyGrid(2, 2)
	assert.NotNil(t, g.Start)
	assert.NotNil(t, g.Target)
	assert.NotEqual(t, g.Start, g.Target)
}

func TestToggleObstacle(t *testing.T) {
	g := NewEmptyGrid(10, 10)
	c := g.Cell(3, 3)
	g.ToggleObstacle(c)
	assert.Equal(t, OBSTACLE, c.State)
	assert.False(t, g.IsWalkable(3, 3))
	g.ToggleObstacle(c)
	assert.Equal(t, UNDISCOVERED, c.State)
	assert.True(t, g.IsWalkable(3, 3))

	// endpoints are never toggled
	g.ToggleObstacle(g.Start)
	assert.Equal(t, START, g.Start.State)
}

func TestSetStartAndTarget(t *testing.T) {
	g := NewEmptyGrid(10, 10)
	oldStart := g.Start
	g.SetStart(g.Cell(1, 1))
	assert.Equal(t, UNDISCOVERED, oldStart.State)
	assert.Equal(t, g.Cell(1, 1), g.Start)
	assert.Equal(t, START, g.Start.State)

	// start may not land on the target and vice versa
	g.SetStart(g.Target)
	assert.Equal(t, g.Cell(1, 1), g.Start)
	g.SetTarget(g.Start)
	assert.Equal(t, TARGET, g.Target.State)
	assert.NotEqual(t, g.Start, g.Target)
}

func TestWalkability(t *testing.T) {
	g := NewEmptyGrid(5, 5)
	assert.False(t, g.IsWalkable(-1, 0))
	assert.False(t, g.IsWalkable(0, 5))
	assert.True(t, g.IsWalkable(0, 0))
	rows, cols := g.Dimensions()
	assert.Equal(t, 5, rows)
	assert.Equal(t, 5, cols)
}

func TestClearSearchKeepsLayout(t *testing.T) {
	g := NewEmptyGrid(10, 10)
	g.ToggleObstacle(g.Cell(2, 2))
	g.MarkOpen(5, 5)
	g.MarkClosed(6, 6)
	g.ApplySolution([][2]int{{7, 7}})
	g.MarkNoSolution()

	g.ClearSearch()
	assert.Equal(t, OBSTACLE, g.Cell(2, 2).State)
	assert.Equal(t, UNDISCOVERED, g.Cell(5, 5).State)
	assert.Equal(t, UNDISCOVERED, g.Cell(6, 6).State)
	assert.Equal(t, UNDISCOVERED, g.Cell(7, 7).State)
	assert.Equal(t, TARGET, g.Target.State)
}

func TestMarksSkipEndpoints(t *testing.T) {
	g := NewEmptyGrid(10, 10)
	g.MarkOpen(g.Start.Col, g.Start.Row)
	g.MarkClosed(g.Target.Col, g.Target.Row)
	assert.Equal(t, START, g.Start.State)
	assert.Equal(t, TARGET, g.Target.State)
}

func TestResetRestoresDefaults(t *testing.T) {
	g := NewEmptyGrid(10, 10)
	g.ToggleObstacle(g.Cell(0, 0))
	g.SetStart(g.Cell(1, 1))
	g.Reset()
	assert.Equal(t, UNDISCOVERED, g.Cell(0, 0).State)
	assert.Equal(t, DefaultStartCol, g.Start.Col)
	assert.Empty(t, g.Obstacles())
}

func TestObstacles(t *testing.T) {
	g := NewEmptyGrid(4, 4)
	g.ToggleObstacle(g.Cell(1, 2))
	g.ToggleObstacle(g.Cell(3, 0))
	obs := g.Obstacles()
	assert.Len(t, obs, 2)
	assert.Contains(t, obs, [2]int{1, 2})
	assert.Contains(t, obs, [2]int{3, 0})
}
