// Package rose samples rose curves and schedules their progressive reveal.
//
// # Overview
//
// A rose is the polar curve r = a·cos(kθ) plotted in Cartesian
// coordinates. With k odd it has k petals, with k even it has 2k.
//
// The package holds the numeric core of the rosedraw program:
//
//   - [Sample] turns [Params] into an ordered point sequence.
//   - [Schedule] maps a frame index to the length of the visible prefix
//     and a completion percentage.
//   - [Session] binds both to a [Surface] and is stepped by a [Driver].
//
// Rendering lives in the canvas package, encoding in export, and the
// frame loops in window, term and headless.
//
// # Quick Start
//
//	pts := rose.Sample(rose.DefaultParams())
//	sched := rose.NewSchedule(len(pts), 1.0)
//	sess, err := rose.NewSession(pts, sched, surface)
//	if err != nil {
//	    return err
//	}
//	sess.Init()
//	for f := 0; f < sched.Frames; f++ {
//	    sess.Update(f)
//	}
//
// # Coordinate System
//
// Points are in curve space: origin at the rose center, y up. The canvas
// package flips y when mapping to pixels.
package rose
