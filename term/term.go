// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package term provides a rose.Driver that previews the animation in a
// terminal with tcell.
//
// Each frame is rasterized by the session's canvas at two pixels per
// column and four per row, then folded into quadrant block glyphs. The
// percent label is printed on the first row and mirrored into the
// terminal title. Esc, q or Ctrl-C close the preview.
package term

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/rose"
)

// DefaultInterval is the nominal time between frames.
const DefaultInterval = time.Second / rose.FrameRate

// Renderer rasterizes the session state at a requested size.
// *canvas.Canvas satisfies it.
type Renderer interface {
	Render() image.Image
	Resize(width, height int) error
}

// Option configures a Driver.
type Option func(*Driver)

// WithInterval sets the time between frames.
func WithInterval(d time.Duration) Option {
	return func(dr *Driver) {
		dr.interval = d
	}
}

// WithScreen runs the driver on an existing screen instead of the
// process terminal. The driver still calls Init and Fini.
func WithScreen(s tcell.Screen) Option {
	return func(dr *Driver) {
		dr.newScreen = func() (tcell.Screen, error) { return s, nil }
	}
}

// WithBackground sets the canvas background color that is treated as
// empty space.
func WithBackground(c color.Color) Option {
	return func(dr *Driver) {
		dr.background = c
	}
}

// Driver renders a session into a terminal.
type Driver struct {
	// OnFrame, if set, is called after each frame is on screen.
	OnFrame func(rose.FrameState)

	r          Renderer
	interval   time.Duration
	background color.Color
	newScreen  func() (tcell.Screen, error)

	screen        tcell.Screen
	width, height int
}

var _ rose.Driver = (*Driver)(nil)

// New creates a terminal driver that draws with r.
func New(r Renderer, opts ...Option) *Driver {
	d := &Driver{
		r:          r,
		interval:   DefaultInterval,
		background: color.White,
		newScreen:  tcell.NewScreen,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.interval <= 0 {
		d.interval = DefaultInterval
	}
	return d
}

// Run implements rose.Driver. It returns when the user quits or ctx is
// cancelled; the final frame stays on screen until then.
func (d *Driver) Run(ctx context.Context, s *rose.Session) error {
	screen, err := d.newScreen()
	if err != nil {
		return fmt.Errorf("term: open screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("term: init screen: %w", err)
	}
	d.screen = screen
	defer screen.Fini()

	screen.Clear()
	if err := d.resize(); err != nil {
		return err
	}

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	d.draw(s.Init())
	next := 0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev) {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
				if err := d.resize(); err != nil {
					return err
				}
				d.draw(s.State())
			}
		case <-ticker.C:
			if next >= s.Frames() {
				continue
			}
			fs := s.Update(next)
			next++
			d.draw(fs)
			if d.OnFrame != nil {
				d.OnFrame(fs)
			}
			if next == s.Frames() {
				rose.Logger().Debug("term: animation complete", "frames", next)
			}
		}
	}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

// resize matches the canvas to the terminal, keeping the first row for
// the label.
func (d *Driver) resize() error {
	d.width, d.height = d.screen.Size()
	rows := max(d.height-1, 1)
	cols := max(d.width, 1)
	if err := d.r.Resize(cols*2, rows*4); err != nil {
		return fmt.Errorf("term: resize canvas: %w", err)
	}
	return nil
}

func (d *Driver) draw(fs rose.FrameState) {
	rows := max(d.height-1, 1)
	cols := max(d.width, 1)
	cells := Quadrants(d.r.Render(), cols, rows, d.background)

	d.screen.Clear()
	for i, c := range cells {
		d.screen.SetContent(i%cols, 1+i/cols, c.Rune, nil, c.style())
	}
	label := fs.Label()
	for i, r := range label {
		d.screen.SetContent(i, 0, r, nil, tcell.StyleDefault.Bold(true))
	}
	d.screen.SetTitle(fs.Title())
	d.screen.Show()
}
