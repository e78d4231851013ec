// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package term

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// quadrantChars maps 4-bit patterns to Unicode quadrant characters.
// Bit order: 0=UL, 1=UR, 2=LL, 3=LR (1 = ink).
var quadrantChars = [16]rune{
	' ', '▘', '▝', '▀',
	'▖', '▌', '▞', '▛',
	'▗', '▚', '▐', '▜',
	'▄', '▙', '▟', '█',
}

// inkThreshold is the squared RGB distance from the background above
// which a pixel counts as ink.
const inkThreshold = 48 * 48 * 3

// Cell is one converted terminal cell.
type Cell struct {
	Rune rune
	Fg   color.RGBA
}

// Quadrants converts img into cols×rows cells of quadrant glyphs. Each
// cell covers a 2×4 pixel block: two columns by two sub-rows of two
// pixels, so square image pixels come out square on a terminal whose
// cells are twice as tall as they are wide.
//
// Pixels far enough from bg are ink; the cell's foreground is the
// average ink color.
func Quadrants(img image.Image, cols, rows int, bg color.Color) []Cell {
	b := img.Bounds()
	cells := make([]Cell, cols*rows)
	br, bgc, bb, _ := bg.RGBA()

	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			var mask int
			var sr, sg, sb, n uint32
			for q := 0; q < 4; q++ {
				qx := cx*2 + q%2
				qy := cy*4 + (q/2)*2
				for dy := 0; dy < 2; dy++ {
					x, y := b.Min.X+qx, b.Min.Y+qy+dy
					if x >= b.Max.X || y >= b.Max.Y {
						continue
					}
					r, g, bl, _ := img.At(x, y).RGBA()
					if dist2(r, br)+dist2(g, bgc)+dist2(bl, bb) < inkThreshold {
						continue
					}
					mask |= 1 << q
					sr += r >> 8
					sg += g >> 8
					sb += bl >> 8
					n++
				}
			}
			c := Cell{Rune: quadrantChars[mask]}
			if n > 0 {
				c.Fg = color.RGBA{R: uint8(sr / n), G: uint8(sg / n), B: uint8(sb / n), A: 255}
			}
			cells[cy*cols+cx] = c
		}
	}
	return cells
}

// dist2 returns the squared difference of two 16-bit channels in 8-bit units.
func dist2(a, b uint32) uint32 {
	a, b = a>>8, b>>8
	if a > b {
		return (a - b) * (a - b)
	}
	return (b - a) * (b - a)
}

// style returns the tcell style that draws c over the terminal's own
// background.
func (c Cell) style() tcell.Style {
	if c.Rune == ' ' {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.Fg.R), int32(c.Fg.G), int32(c.Fg.B)))
}
