// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package window provides a rose.Driver that shows the animation in a
// gogpu window.
//
// The session's canvas paints into a ggcanvas.Canvas, which is composited
// onto the window surface on every draw. Rendering is event-driven: an
// animation token keeps frames coming while the curve is being revealed
// and is released after the last frame, so a finished drawing costs no
// CPU. The window stays open until it is closed or Escape is pressed.
//
// Architecture:
//
//	rose.Session → Painter.Paint(gg.Context) → ggcanvas.Canvas → gogpu window
package window

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gogpu/gg"
	_ "github.com/gogpu/gg/gpu" // Register GPU accelerator
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/rose"
)

// DefaultInterval is the time between revealed frames.
const DefaultInterval = time.Second / rose.FrameRate

// DefaultTitle is the window title before the first frame.
const DefaultTitle = "Rose Drawing"

// Painter draws the current session state onto a gg context.
// *canvas.Canvas satisfies it.
type Painter interface {
	Paint(dc *gg.Context)
}

// Option configures a Driver.
type Option func(*Driver)

// WithSize sets the initial window size in pixels.
func WithSize(width, height int) Option {
	return func(d *Driver) {
		d.width, d.height = width, height
	}
}

// WithInterval sets the time between revealed frames.
func WithInterval(iv time.Duration) Option {
	return func(d *Driver) {
		d.interval = iv
	}
}

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(d *Driver) {
		d.title = title
	}
}

// Driver runs a session inside a gogpu window.
type Driver struct {
	// OnFrame, if set, is called after each frame is applied.
	OnFrame func(rose.FrameState)

	painter       Painter
	title         string
	width, height int
	interval      time.Duration
}

var _ rose.Driver = (*Driver)(nil)

// New creates a window driver that draws with p.
func New(p Painter, opts ...Option) *Driver {
	d := &Driver{
		painter:  p,
		title:    DefaultTitle,
		width:    600,
		height:   600,
		interval: DefaultInterval,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run implements rose.Driver. It blocks on the gogpu event loop, so it
// must be called from the main goroutine.
//
// Frames advance in OnUpdate, which gogpu runs on every loop tick while
// the animation token is held; each new frame requests one redraw.
// OnDraw only paints.
func (d *Driver) Run(ctx context.Context, s *rose.Session) error {
	log := rose.Logger()

	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(d.title).
		WithSize(d.width, d.height).
		WithContinuousRender(false))

	var (
		cv     *ggcanvas.Canvas
		token  *gogpu.AnimationToken
		loop   = newFrameLoop(s, d.interval, d.OnFrame)
		watch  sync.Once
		stop   = make(chan struct{})
		failed error
	)
	defer close(stop)
	s.Init()

	app.OnUpdate(func(float64) {
		// Wake an idle loop on cancellation so the next tick can Quit.
		// RequestRedraw is safe from any goroutine once Run has started.
		watch.Do(func() {
			go func() {
				select {
				case <-ctx.Done():
					app.RequestRedraw()
				case <-stop:
				}
			}()
		})
		if token == nil && !loop.started {
			loop.started = true
			token = app.StartAnimation()
		}

		switch loop.tick(ctx, time.Now()) {
		case tickQuit:
			app.Quit()
		case tickRedraw:
			app.RequestRedraw()
		}

		if token != nil && loop.finished() {
			token.Stop()
			token = nil
			log.Debug("window: animation complete", "frames", s.Frames())
		}
	})

	app.OnDraw(func(dc *gogpu.Context) {
		w, h := dc.Width(), dc.Height()
		if w <= 0 || h <= 0 {
			return
		}
		if cv == nil {
			provider := app.GPUContextProvider()
			if provider == nil {
				return
			}
			var err error
			if cv, err = ggcanvas.New(provider, w, h); err != nil {
				failed = fmt.Errorf("window: create canvas: %w", err)
				app.Quit()
				return
			}
			log.Debug("window: canvas created", "width", w, "height", h)
		}
		if cw, ch := cv.Size(); cw != w || ch != h {
			if err := cv.Resize(w, h); err != nil {
				log.Warn("window: resize", "err", err)
			}
		}

		if err := cv.Draw(d.painter.Paint); err != nil {
			log.Warn("window: draw", "frame", s.State().Index, "err", err)
		}
		if err := cv.RenderTo(dc.AsTextureDrawer()); err != nil {
			log.Warn("window: render", "frame", s.State().Index, "err", err)
		}
	})

	app.EventSource().OnKeyPress(func(key gpucontext.Key, _ gpucontext.Modifiers) {
		if key == gpucontext.KeyEscape {
			app.Quit()
		}
	})

	app.OnClose(func() {
		if token != nil {
			token.Stop()
			token = nil
		}
		gg.CloseAccelerator()
	})

	err := app.Run()
	switch {
	case failed != nil:
		return errors.Join(failed, err)
	case err != nil:
		return fmt.Errorf("window: %w", err)
	}
	return ctx.Err()
}

type tickResult int

const (
	tickIdle tickResult = iota
	tickRedraw
	tickQuit
)

// frameLoop advances a session on the app's update tick.
type frameLoop struct {
	sess    *rose.Session
	pace    *pacer
	onFrame func(rose.FrameState)
	started bool
}

func newFrameLoop(s *rose.Session, interval time.Duration, onFrame func(rose.FrameState)) *frameLoop {
	return &frameLoop{sess: s, pace: newPacer(s.Frames(), interval), onFrame: onFrame}
}

// tick applies the next frame if one is due at now. A cancelled ctx
// asks the app to quit, even after the last frame.
func (l *frameLoop) tick(ctx context.Context, now time.Time) tickResult {
	if ctx.Err() != nil {
		return tickQuit
	}
	f, ok := l.pace.step(now)
	if !ok {
		return tickIdle
	}
	fs := l.sess.Update(f)
	if l.onFrame != nil {
		l.onFrame(fs)
	}
	return tickRedraw
}

func (l *frameLoop) finished() bool { return l.pace.finished() }

// pacer hands out frame indices no faster than one per interval.
type pacer struct {
	frames   int
	interval time.Duration
	next     int
	last     time.Time
}

func newPacer(frames int, interval time.Duration) *pacer {
	return &pacer{frames: frames, interval: interval}
}

// step returns the next frame index if one is due at now.
func (p *pacer) step(now time.Time) (int, bool) {
	if p.finished() {
		return 0, false
	}
	if !p.last.IsZero() && now.Sub(p.last) < p.interval {
		return 0, false
	}
	p.last = now
	f := p.next
	p.next++
	return f, true
}

func (p *pacer) finished() bool { return p.next >= p.frames }
