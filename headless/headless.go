// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package headless provides a rose.Driver without a display.
//
// It applies every frame immediately, in order, and returns once the last
// frame is on the surface. Use it with --save, or to check that the
// schedule ends at 100% without opening a window.
package headless

import (
	"context"

	"github.com/gogpu/rose"
)

// Driver steps a session to completion without pacing.
type Driver struct {
	// OnFrame, if set, is called after each frame has been applied.
	OnFrame func(rose.FrameState)
}

var _ rose.Driver = (*Driver)(nil)

// New returns a headless driver.
func New() *Driver {
	return &Driver{}
}

// Run implements rose.Driver. It stops early, returning ctx.Err(), when
// ctx is cancelled.
func (d *Driver) Run(ctx context.Context, s *rose.Session) error {
	s.Init()
	for f := 0; f < s.Frames(); f++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		fs := s.Update(f)
		if d.OnFrame != nil {
			d.OnFrame(fs)
		}
	}
	last := s.State()
	rose.Logger().Info("headless: animation complete", "frames", s.Frames(), "revealed", last.Revealed, "label", last.Label())
	return nil
}
