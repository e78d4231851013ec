// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package canvas renders rose animation frames with gg.
//
// A [Canvas] implements rose.Surface: the session hands it the visible
// polyline, the percent label and the title, and [Canvas.Paint] draws the
// current state onto any gg.Context. The window driver paints into a
// ggcanvas texture, the terminal driver and the exporter paint into the
// canvas's own offscreen context via [Canvas.Render].
//
// Layout follows a 6 inch square figure: the curve is framed by a
// viewport of half-width Params.Extent(), a faint full-curve guide sits
// behind the revealed stroke, and the label is anchored near the top-left
// corner.
package canvas
