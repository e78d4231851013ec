// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package window

import (
	"context"
	"testing"
	"time"

	"github.com/gogpu/rose"
	"honnef.co/go/curve"
)

func TestPacerFirstFrameImmediate(t *testing.T) {
	p := newPacer(3, 33*time.Millisecond)
	f, ok := p.step(time.Unix(100, 0))
	if !ok || f != 0 {
		t.Errorf("step() = %d, %v; want 0, true", f, ok)
	}
}

func TestPacerRespectsInterval(t *testing.T) {
	p := newPacer(10, 33*time.Millisecond)
	t0 := time.Unix(100, 0)
	p.step(t0)

	tests := []struct {
		after  time.Duration
		wantOK bool
		want   int
	}{
		{10 * time.Millisecond, false, 0},
		{32 * time.Millisecond, false, 0},
		{33 * time.Millisecond, true, 1},
		{40 * time.Millisecond, false, 0},
		{66 * time.Millisecond, true, 2},
	}
	for _, tt := range tests {
		f, ok := p.step(t0.Add(tt.after))
		if ok != tt.wantOK || (ok && f != tt.want) {
			t.Errorf("step(+%v) = %d, %v; want %d, %v", tt.after, f, ok, tt.want, tt.wantOK)
		}
	}
}

func TestPacerStopsAfterLastFrame(t *testing.T) {
	p := newPacer(3, time.Millisecond)
	now := time.Unix(100, 0)
	var got []int
	for i := 0; i < 10; i++ {
		if f, ok := p.step(now); ok {
			got = append(got, f)
		}
		now = now.Add(time.Millisecond)
	}
	if len(got) != 3 || got[0] != 0 || got[2] != 2 {
		t.Errorf("frames = %v, want [0 1 2]", got)
	}
	if !p.finished() {
		t.Error("finished() = false after every frame was handed out")
	}
}

func TestPacerZeroFrames(t *testing.T) {
	p := newPacer(0, time.Millisecond)
	if !p.finished() {
		t.Error("finished() = false with no frames")
	}
	if _, ok := p.step(time.Now()); ok {
		t.Error("step() handed out a frame with no frames")
	}
}

func TestNewDefaults(t *testing.T) {
	d := New(nil)
	if d.width != 600 || d.height != 600 {
		t.Errorf("size = %dx%d, want 600x600", d.width, d.height)
	}
	if d.interval != DefaultInterval || d.title != DefaultTitle {
		t.Errorf("interval = %v, title = %q", d.interval, d.title)
	}

	d = New(nil, WithSize(300, 200), WithInterval(time.Second), WithTitle("x"))
	if d.width != 300 || d.height != 200 || d.interval != time.Second || d.title != "x" {
		t.Errorf("options not applied: %+v", d)
	}
}

type labelSurface struct{ label string }

func (l *labelSurface) SetPolyline([]curve.Point) {}
func (l *labelSurface) SetLabel(text string)      { l.label = text }
func (l *labelSurface) SetTitle(string)           {}

func newLoop(t *testing.T, onFrame func(rose.FrameState)) (*frameLoop, *labelSurface) {
	t.Helper()
	pts := rose.Sample(rose.Params{K: 3, A: 1, Points: 600})
	sf := &labelSurface{}
	sess, err := rose.NewSession(pts, rose.NewSchedule(len(pts), 100), sf)
	if err != nil {
		t.Fatalf("NewSession() = %v", err)
	}
	sess.Init()
	return newFrameLoop(sess, 33*time.Millisecond, onFrame), sf
}

func TestFrameLoopRedrawsOnlyWhenAFrameIsDue(t *testing.T) {
	var frames []int
	loop, sf := newLoop(t, func(fs rose.FrameState) { frames = append(frames, fs.Index) })
	ctx := context.Background()
	t0 := time.Unix(100, 0)

	tests := []struct {
		after time.Duration
		want  tickResult
	}{
		{0, tickRedraw},
		{5 * time.Millisecond, tickIdle},
		{20 * time.Millisecond, tickIdle},
		{33 * time.Millisecond, tickRedraw},
		{34 * time.Millisecond, tickIdle},
		{70 * time.Millisecond, tickRedraw},
	}
	for _, tt := range tests {
		if got := loop.tick(ctx, t0.Add(tt.after)); got != tt.want {
			t.Errorf("tick(+%v) = %d, want %d", tt.after, got, tt.want)
		}
	}
	if len(frames) != 3 || frames[2] != 2 {
		t.Errorf("frames applied = %v, want [0 1 2]", frames)
	}
	if sf.label != loop.sess.State().Label() {
		t.Errorf("surface label %q does not match state %q", sf.label, loop.sess.State().Label())
	}
}

func TestFrameLoopReachesLastFrame(t *testing.T) {
	loop, sf := newLoop(t, nil)
	ctx := context.Background()
	now := time.Unix(100, 0)

	redraws := 0
	for i := 0; i < 200 && !loop.finished(); i++ {
		if loop.tick(ctx, now) == tickRedraw {
			redraws++
		}
		now = now.Add(33 * time.Millisecond)
	}
	if !loop.finished() {
		t.Fatal("loop did not finish")
	}
	if redraws != loop.sess.Frames() {
		t.Errorf("redraws = %d, want one per frame (%d)", redraws, loop.sess.Frames())
	}
	if sf.label != "100%" {
		t.Errorf("final label = %q, want 100%%", sf.label)
	}
	if got := loop.tick(ctx, now.Add(time.Hour)); got != tickIdle {
		t.Errorf("tick after last frame = %d, want idle", got)
	}
}

func TestFrameLoopQuitsOnCancel(t *testing.T) {
	loop, _ := newLoop(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	now := time.Unix(100, 0)

	if got := loop.tick(ctx, now); got != tickRedraw {
		t.Fatalf("first tick = %d, want redraw", got)
	}
	cancel()
	if got := loop.tick(ctx, now.Add(time.Second)); got != tickQuit {
		t.Errorf("tick after cancel = %d, want quit", got)
	}
	if got := loop.sess.State().Index; got != 0 {
		t.Errorf("frame advanced to %d after cancel", got)
	}

	// A finished animation still quits on cancel.
	done, _ := newLoop(t, nil)
	for !done.finished() {
		done.tick(context.Background(), now)
		now = now.Add(time.Second)
	}
	if got := done.tick(ctx, now); got != tickQuit {
		t.Errorf("tick on finished loop after cancel = %d, want quit", got)
	}
}
