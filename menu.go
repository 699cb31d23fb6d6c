package main

import (
	"bytes"
	"image/color"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/text"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font"
)

type MenuAction int

const (
	ACTION_NONE MenuAction = iota
	ACTION_OBSTACLES
	ACTION_START
	ACTION_TARGET
	ACTION_RESET
	ACTION_SOLVE
	ACTION_SOLVE_FAST
)

var Font font.Face

func loadFont() {
	dat, err := ebitenutil.OpenFile("Teko-Light.ttf")
	if err != nil {
		log.Warnf("no font file, menu runs without labels: %v", err)
		return
	}
	defer dat.Close()

	buf := new(bytes.Buffer)
	buf.ReadFrom(dat)

	tt, err := truetype.Parse(buf.Bytes())
	if err != nil {
		log.Warnf("cant parse font: %v", err)
		return
	}

	const dpi = 72
	Font = truetype.NewFace(tt, &truetype.Options{
		Size:       22,
		DPI:        dpi,
		SubPixelsX: 100,
		Hinting:    font.HintingFull,
	})
}

type TextBox struct {
	Label  string
	Action MenuAction
	Box    Box
}

func (tb *TextBox) Draw(screen *ebiten.Image) {
	tb.Box.Draw(screen)
	if Font != nil {
		text.Draw(screen, tb.Label, Font, tb.Box.x+8, tb.Box.y+tb.Box.height-8, color.White)
	}
}

type Menu struct {
	Boxes []*TextBox
}

// NewMenu lays the action buttons out in one bar across the given width.
func NewMenu(width, height int) *Menu {
	labels := []struct {
		label  string
		action MenuAction
	}{
		{"WALLS", ACTION_OBSTACLES},
		{"START", ACTION_START},
		{"TARGET", ACTION_TARGET},
		{"RESET", ACTION_RESET},
		{"SOLVE", ACTION_SOLVE},
		{"FAST", ACTION_SOLVE_FAST},
	}
	m := &Menu{Boxes: make([]*TextBox, 0, len(labels))}
	step := width / len(labels)
	for i, l := range labels {
		tb := &TextBox{
			Label:  l.label,
			Action: l.action,
			Box: Box{
				Fill:   COLOR_MENU,
				Stroke: COLOR_FLOOR,
				Border: 1,
			},
		}
		tb.Box.SetPosition(i*step+4, 4)
		tb.Box.SetSize(step-8, height-8)
		m.Boxes = append(m.Boxes, tb)
	}
	return m
}

// Click maps a screen position to the action under it.
func (m *Menu) Click(x, y int) MenuAction {
	for _, tb := range m.Boxes {
		if tb.Box.Contains(x, y) {
			return tb.Action
		}
	}
	return ACTION_NONE
}

// Highlight thickens the border of the button matching the selection mode.
func (m *Menu) Highlight(mode SelectionMode) {
	active := ACTION_NONE
	switch mode {
	case MODE_OBSTACLE:
		active = ACTION_OBSTACLES
	case MODE_START:
		active = ACTION_START
	case MODE_TARGET:
		active = ACTION_TARGET
	}
	for _, tb := range m.Boxes {
		if tb.Action == active {
			tb.Box.Border = 3
		} else {
			tb.Box.Border = 1
		}
	}
}

func (m *Menu) Draw(screen *ebiten.Image) {
	for _, tb := range m.Boxes {
		tb.Draw(screen)
	}
}
