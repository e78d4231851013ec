// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package export

import (
	"image/color"
)

// Ramp returns steps colors blending linearly from one color to another,
// both ends included. Anti-aliased strokes over a flat background only
// produce colors on such ramps, so a few of them make a tight palette.
func Ramp(steps int, from, to color.Color) color.Palette {
	if steps <= 0 {
		return nil
	}
	if steps == 1 {
		return color.Palette{color.RGBAModel.Convert(from)}
	}
	fr, fg, fb, fa := from.RGBA()
	tr, tg, tb, ta := to.RGBA()
	lerp := func(a, b uint32, t float64) uint8 {
		return uint8((float64(a)+(float64(b)-float64(a))*t)/257 + 0.5)
	}
	p := make(color.Palette, steps)
	for i := range p {
		t := float64(i) / float64(steps-1)
		p[i] = color.RGBA{
			R: lerp(fr, tr, t),
			G: lerp(fg, tg, t),
			B: lerp(fb, tb, t),
			A: lerp(fa, ta, t),
		}
	}
	return p
}

// Palette concatenates ramps from background to each ink color, giving
// the larger share to the first ink. The result never exceeds 256 colors.
func Palette(background color.Color, inks ...color.Color) color.Palette {
	if len(inks) == 0 {
		return color.Palette{background}
	}
	const total = 256
	rest := total / (len(inks) + 1)
	first := total - rest*(len(inks)-1)

	var p color.Palette
	for i, ink := range inks {
		n := rest
		if i == 0 {
			n = first
		}
		ramp := Ramp(n, background, ink)
		if i > 0 {
			ramp = ramp[1:] // background already present
		}
		p = append(p, ramp...)
	}
	return p
}
