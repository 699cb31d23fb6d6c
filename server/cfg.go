package server

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/zucenko/pathfinder/model"
)

// Load reads the bundled demo level. Tiles: '.' floor, '#' obstacle,
// 'S' start, 'T' target.
func Load() (*model.Grid, error) {
	file, err := os.Open("data/level.txt")
	if err != nil {
		return nil, err
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

	rows := len(lines)
	cols := len(lines[0])
	g := model.NewEmptyGrid(cols, rows)

	var start, target *model.Cell
	for r, line := range lines {
		if len(line) != cols {
			return nil, fmt.Errorf("level: row %d has %d cells, want %d", r, len(line), cols)
		}
		for c := 0; c < len(line); c++ {
			switch line[c] {
			case '.', '#':
				// handled below, endpoints first
			case 'S':
				start = g.Cell(c, r)
			case 'T':
				target = g.Cell(c, r)
			default:
				return nil, fmt.Errorf("level: unknown tile %q at %d:%d", line[c], r, c)
			}
		}
	}
	if start == nil {
		return nil, fmt.Errorf("level: no start tile")
	}
	if target == nil {
		return nil, fmt.Errorf("level: no target tile")
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
