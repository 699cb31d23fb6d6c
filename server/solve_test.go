package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zucenko/pathfinder/model"
)

func layoutMessage(cols, rows int, obstacles [][2]int) *model.ClientMessage {
	return &model.ClientMessage{
		Cols: cols, Rows: rows,
		Obstacles: obstacles,
		StartCol:  0, StartRow: 0,
		TargetCol: cols - 1, TargetRow: rows - 1,
	}
}

func TestBuildGrid(t *testing.T) {
	g, err := BuildGrid(layoutMessage(6, 4, [][2]int{{2, 1}, {3, 3}}))
	assert.Nil(t, err)
	assert.Equal(t, 6, g.Cols)
	assert.Equal(t, 4, g.Rows)
	assert.Equal(t, 0, g.Start.Col)
	assert.Equal(t, 5, g.Target.Col)
	assert.Equal(t, model.OBSTACLE, g.Cell(2, 1).State)
	assert.Equal(t, model.OBSTACLE, g.Cell(3, 3).State)
}

func TestBuildGridRejectsBadLayouts(t *testing.T) {
	_, err := BuildGrid(&model.ClientMessage{Cols: 1, Rows: 5})
	assert.NotNil(t, err)

	cm := layoutMessage(5, 5, nil)
	cm.StartCol = 7
	_, err = BuildGrid(cm)
	assert.NotNil(t, err)

	cm = layoutMessage(5, 5, nil)
	cm.TargetRow = -1
	_, err = BuildGrid(cm)
	assert.NotNil(t, err)

	cm = layoutMessage(5, 5, nil)
	cm.TargetCol, cm.TargetRow = cm.StartCol, cm.StartRow
	_, err = BuildGrid(cm)
	assert.NotNil(t, err)
}

func TestMakeSetupMessage(t *testing.T) {
	g, err := BuildGrid(layoutMessage(6, 4, [][2]int{{2, 1}}))
	assert.Nil(t, err)
	mes := MakeSetupMessage(g)
	assert.Len(t, mes.Setup, 1)
	setup := mes.Setup[0]
	assert.Equal(t, 6, setup.Cols)
	assert.Equal(t, 4, setup.Rows)
	assert.Equal(t, [][2]int{{2, 1}}, setup.Obstacles)
	assert.Empty(t, mes.Steps)
	assert.Empty(t, mes.Results)
}

func TestRunSolveFindsPath(t *testing.T) {
	g, err := BuildGrid(layoutMessage(6, 4, nil))
	assert.Nil(t, err)
	result, err := RunSolve(g, false, func(mes model.ServerMessage) {
		t.Fatal("no step messages without animation")
	})
	assert.Nil(t, err)
	assert.True(t, result.Found)
	// 3 diagonal moves plus 2 straight ones on a 6x4 layout
	assert.Equal(t, 3*14+2*10, result.TotalCost)
	assert.NotContains(t, result.Path, [2]int{0, 0})
	assert.NotContains(t, result.Path, [2]int{5, 3})
	assert.True(t, result.Steps > 0)
}

func TestRunSolveAnimatedStreamsSteps(t *testing.T) {
	g, err := BuildGrid(layoutMessage(5, 5, nil))
	assert.Nil(t, err)
	sent := make([]model.ServerMessage, 0)
	result, err := RunSolve(g, true, func(mes model.ServerMessage) {
		sent = append(sent, mes)
	})
	assert.Nil(t, err)
	assert.True(t, result.Found)
	assert.Equal(t, result.Steps, len(sent))
	first := sent[0].Steps[0]
	assert.Equal(t, 0, first.Col)
	assert.Equal(t, 0, first.Row)
	assert.Equal(t, 0, first.Queued)
	last := sent[len(sent)-1].Steps[0]
	assert.Equal(t, 4, last.Col)
	assert.Equal(t, 4, last.Row)
}

func TestRunSolveUnreachable(t *testing.T) {
	// wall the target into the bottom-right corner
	g, err := BuildGrid(layoutMessage(6, 6, [][2]int{{4, 4}, {4, 5}, {5, 4}}))
	assert.Nil(t, err)
	result, err := RunSolve(g, false, func(model.ServerMessage) {})
	assert.Nil(t, err)
	assert.False(t, result.Found)
	assert.Empty(t, result.Path)
}
