package main

import (
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
)

// Box is a filled rectangle with a border, the building block of the menu
// and the grid frame.
type Box struct {
	alpha               float64
	Fill, Stroke        GameColor
	Border              int
	x, y, width, height int
}

func (b *Box) SetPosition(x, y int) {
	b.x = x
	b.y = y
}

func (b *Box) SetSize(width, height int) {
	b.width = width
	b.height = height
}

func (b *Box) Contains(x, y int) bool {
	return x >= b.x && x < b.x+b.width && y >= b.y && y < b.y+b.height
}

func (b *Box) Draw(screen *ebiten.Image) {
	if b.alpha == 0 {
		b.alpha = 1
	}
	if b.Border > 0 {
		ebitenutil.DrawRect(screen,
			float64(b.x-b.Border), float64(b.y-b.Border),
			float64(b.width+2*b.Border), float64(b.height+2*b.Border),
			b.Stroke.RGBA(b.alpha))
	}
	ebitenutil.DrawRect(screen,
		float64(b.x), float64(b.y),
		float64(b.width), float64(b.height),
		b.Fill.RGBA(b.alpha))
}
