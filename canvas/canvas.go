// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/rose"
	"honnef.co/go/curve"
)

// ErrInvalidSize is returned when width or height is not positive.
var ErrInvalidSize = errors.New("canvas: invalid size")

// figurePoints is the side of the reference figure in points (6 in × 72).
const figurePoints = 432

// Label anchor in fractions of the canvas, measured from the top-left.
const (
	labelX = 0.02
	labelY = 0.04
)

// Canvas draws the state handed to it by a rose.Session.
//
// Canvas is NOT safe for concurrent use.
type Canvas struct {
	dc     *gg.Context
	extent float64
	style  Style
	guide  []curve.Point
	fonts  *faceCache

	polyline []curve.Point
	label    string
	title    string
}

var _ rose.Surface = (*Canvas)(nil)

// New creates a width×height canvas whose viewport spans
// [-extent, extent] on both axes.
func New(width, height int, extent float64, opts ...Option) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidSize, width, height)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Canvas{
		dc:     gg.NewContext(width, height),
		extent: extent,
		style:  o.style,
		guide:  o.guide,
	}
	if !o.noLabel {
		src := o.source
		if src == nil {
			var err error
			if src, err = DefaultFontSource(); err != nil {
				rose.Logger().Warn("canvas: label disabled", "err", err)
			}
		}
		if src != nil {
			c.fonts = &faceCache{src: src}
		}
	}
	return c, nil
}

// SetPolyline implements rose.Surface.
func (c *Canvas) SetPolyline(pts []curve.Point) { c.polyline = pts }

// SetLabel implements rose.Surface.
func (c *Canvas) SetLabel(text string) { c.label = text }

// SetTitle implements rose.Surface.
func (c *Canvas) SetTitle(title string) { c.title = title }

// Polyline returns the visible polyline.
func (c *Canvas) Polyline() []curve.Point { return c.polyline }

// Label returns the percent overlay text.
func (c *Canvas) Label() string { return c.label }

// Title returns the last title handed to the canvas.
func (c *Canvas) Title() string { return c.title }

// Size returns the size of the offscreen context.
func (c *Canvas) Size() (width, height int) { return c.dc.Width(), c.dc.Height() }

// Resize changes the size of the offscreen context.
func (c *Canvas) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidSize, width, height)
	}
	return c.dc.Resize(width, height)
}

// Render paints the current state into the offscreen context and returns
// a copy of its pixels.
func (c *Canvas) Render() image.Image {
	c.Paint(c.dc)
	_ = c.dc.FlushGPU()
	return c.dc.Image()
}

// Close releases the offscreen context.
func (c *Canvas) Close() error {
	return c.dc.Close()
}

// Paint draws the background, the guide, the revealed polyline and the
// label onto dc, scaled to dc's size.
func (c *Canvas) Paint(dc *gg.Context) {
	w, h := dc.Width(), dc.Height()
	view := Viewport(w, h, c.extent)
	scale := float64(min(w, h)) / figurePoints

	dc.ClearWithColor(c.style.Background)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)

	if c.style.GuideAlpha > 0 && len(c.guide) > 1 {
		guide := c.style.Stroke
		guide.A *= c.style.GuideAlpha
		c.strokePolyline(dc, c.guide, view, c.style.GuideWidth*scale, guide)
	}
	if len(c.polyline) > 1 {
		c.strokePolyline(dc, c.polyline, view, c.style.LineWidth*scale, c.style.Stroke)
	}

	if face := c.fonts.face(math.Round(c.style.FontSize * scale)); face != nil && c.label != "" {
		dc.SetFont(face)
		dc.SetColor(c.style.Label.Color())
		dc.DrawStringAnchored(c.label, labelX*float64(w), labelY*float64(h), 0, 1)
	}
}

// strokePolyline traces pts through view and strokes the result. A
// non-finite point breaks the line instead of poisoning the whole path.
func (c *Canvas) strokePolyline(dc *gg.Context, pts []curve.Point, view curve.Affine, width float64, col gg.RGBA) {
	dc.ClearPath()
	pen := false
	for _, pt := range pts {
		if pt.IsNaN() || pt.IsInf() {
			pen = false
			continue
		}
		x, y := pt.Transform(view).Splat()
		if pen {
			dc.LineTo(x, y)
		} else {
			dc.MoveTo(x, y)
			pen = true
		}
	}
	dc.SetLineWidth(max(width, 1))
	dc.SetColor(col.Color())
	if err := dc.Stroke(); err != nil {
		rose.Logger().Warn("canvas: stroke failed", "points", len(pts), "err", err)
	}
}

// Viewport returns the transform from curve space (y up, centered on the
// origin) to a width×height pixel grid (y down) that fits the square
// [-extent, extent]² centered in the grid.
func Viewport(width, height int, extent float64) curve.Affine {
	if !(extent > 0) || math.IsInf(extent, 0) {
		extent = 1
	}
	s := float64(min(width, height)) / (2 * extent)
	return curve.Scale(s, -s).ThenTranslate(curve.Vec(float64(width)/2, float64(height)/2))
}
