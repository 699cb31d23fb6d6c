package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/zucenko/pathfinder/model"
)

// Load reads data/level.txt, the same tile format the solve service bundles:
// '.' floor, '#' obstacle, 'S' start, 'T' target.
func Load() (*model.Grid, error) {
	file, fileErr := ebitenutil.OpenFile("data/level.txt")
	if fileErr != nil {
		return nil, fileErr
	}
	defer file.Close()
	return read(file)
}

func read(reader io.Reader) (*model.Grid, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Split(bufio.ScanLines)
	lines := make([]string, 0)
	for scanner.Scan() {
		s := scanner.Text()
		if len(s) == 0 {
			continue
		}
		lines = append(lines, s)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("level: empty layout")
	}

	g := model.NewEmptyGrid(len(lines[0]), len(lines))
	var start, target *model.Cell
	for r, line := range lines {
		if len(line) != g.Cols {
			return nil, fmt.Errorf("level: row %d has %d cells, want %d", r, len(line), g.Cols)
		}
		for c := 0; c < len(line); c++ {
			switch line[c] {
			case '.', '#':
			case 'S':
				start = g.Cell(c, r)
			case 'T':
				target = g.Cell(c, r)
			default:
				return nil, fmt.Errorf("level: unknown tile %q at %d:%d", line[c], r, c)
			}
		}
	}
	if start == nil || target == nil {
		return nil, fmt.Errorf("level: start or target tile missing")
	}
	g.SetStart(start)
	g.SetTarget(target)
	for r, line := range lines {
		for c := 0; c < len(line); c++ {
			if line[c] == '#' {
				g.ToggleObstacle(g.Cell(c, r))
			}
		}
	}
	return g, nil
}
