// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"honnef.co/go/curve"
)

// Style controls colors and stroke widths. Widths and the font size are
// in points of a 6 inch figure and scale with the canvas size.
type Style struct {
	Background gg.RGBA
	Stroke     gg.RGBA
	Label      gg.RGBA

	// GuideAlpha is the opacity of the full-curve guide. Zero hides it.
	GuideAlpha float64

	LineWidth  float64
	GuideWidth float64
	FontSize   float64
}

// DefaultStyle returns a white background with a blue stroke.
func DefaultStyle() Style {
	return Style{
		Background: gg.White,
		Stroke:     gg.Hex("#1f77b4"),
		Label:      gg.Black,
		GuideAlpha: 0.08,
		LineWidth:  3,
		GuideWidth: 1.5,
		FontSize:   12,
	}
}

// Option configures a Canvas during creation.
type Option func(*options)

type options struct {
	style   Style
	guide   []curve.Point
	source  *text.FontSource
	noLabel bool
}

func defaultOptions() options {
	return options{style: DefaultStyle()}
}

// WithStyle replaces the default style.
func WithStyle(s Style) Option {
	return func(o *options) {
		o.style = s
	}
}

// WithGuide sets the full point sequence drawn faintly behind the
// revealed polyline.
func WithGuide(pts []curve.Point) Option {
	return func(o *options) {
		o.guide = pts
	}
}

// WithFontSource sets the font used for the label. Without it the
// embedded Go Regular font is used.
func WithFontSource(src *text.FontSource) Option {
	return func(o *options) {
		o.source = src
	}
}

// WithoutLabel disables text rendering.
func WithoutLabel() Option {
	return func(o *options) {
		o.noLabel = true
	}
}
