package miniplayer

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// canvas is a single fixed-width line that plain-text layers can be
// placed on at arbitrary column offsets, clipped at both edges.
type canvas struct {
	cells []rune
	width int
}

func newCanvas(width int) *canvas {
	cells := make([]rune, width)
	for i := range cells {
		cells[i] = ' '
	}
	return &canvas{cells: cells, width: width}
}

// place draws s starting at column x. Columns outside the canvas are
// clipped. Wide runes that would straddle an edge are dropped.
func (c *canvas) place(s string, x int) {
	col := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > c.width {
			break
		}
		if col >= 0 {
			c.cells[col] = r
			for i := 1; i < w; i++ {
				c.cells[col+i] = 0 // continuation of a wide rune
			}
		}
		col += w
	}
}

func (c *canvas) String() string {
	var b strings.Builder
	b.Grow(c.width)
	for _, r := range c.cells {
		if r == 0 {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
