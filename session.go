package rose

import (
	"context"
	"errors"

	"honnef.co/go/curve"
)

// ErrNilSurface is returned when a Session is created without a surface.
var ErrNilSurface = errors.New("rose: nil surface")

// Surface is the rendering target a Session drives.
//
// Implementations only record what they are given; a driver decides when
// the result reaches the screen.
type Surface interface {
	// SetPolyline replaces the visible polyline. The slice aliases the
	// session's point sequence and must not be modified.
	SetPolyline(pts []curve.Point)

	// SetLabel replaces the percent overlay text.
	SetLabel(text string)

	// SetTitle replaces the window title. Surfaces without a title ignore it.
	SetTitle(title string)
}

// Driver runs a Session's frame loop.
//
// Run blocks until the display is closed, ctx is cancelled, or, for
// drivers without a display, the last frame has been applied.
type Driver interface {
	Run(ctx context.Context, s *Session) error
}

// Session owns the sampled curve and its reveal schedule, and applies
// frame states to a Surface.
//
// Session is NOT safe for concurrent use. Drivers call Init and Update
// from a single goroutine.
type Session struct {
	points  []curve.Point
	sched   Schedule
	surface Surface
	state   FrameState
}

// NewSession creates a session that reveals pts on sf according to sched.
func NewSession(pts []curve.Point, sched Schedule, sf Surface) (*Session, error) {
	if sf == nil {
		return nil, ErrNilSurface
	}
	return &Session{
		points:  pts,
		sched:   sched,
		surface: sf,
		state:   sched.Initial(),
	}, nil
}

// Points returns the full point sequence.
func (s *Session) Points() []curve.Point { return s.points }

// Frames returns the number of frames in the animation.
func (s *Session) Frames() int { return s.sched.Frames }

// State returns the most recently applied frame state.
func (s *Session) State() FrameState { return s.state }

// Done reports whether the last applied frame revealed the final frame.
func (s *Session) Done() bool { return s.state.Index >= s.sched.Frames-1 }

// Init resets the surface to the initial state: empty polyline, "0%".
func (s *Session) Init() FrameState {
	return s.apply(s.surface, s.sched.Initial())
}

// Update computes the state of frame f and applies it to the surface.
func (s *Session) Update(f int) FrameState {
	fs := s.apply(s.surface, s.sched.Frame(f))
	Logger().Debug("rose: frame", "index", fs.Index, "revealed", fs.Revealed, "percent", fs.Percent)
	return fs
}

// Replay runs a complete pass of the animation against sf without
// touching the session's own surface or state. capture is called after
// each frame has been applied; a non-nil error stops the replay and is
// returned.
func (s *Session) Replay(sf Surface, capture func(FrameState) error) error {
	if sf == nil {
		return ErrNilSurface
	}
	saved := s.state
	defer func() { s.state = saved }()

	s.apply(sf, s.sched.Initial())
	for f := 0; f < s.sched.Frames; f++ {
		fs := s.apply(sf, s.sched.Frame(f))
		if capture == nil {
			continue
		}
		if err := capture(fs); err != nil {
			return err
		}
	}
	return nil
}

// apply pushes fs to sf and records it as the current state.
func (s *Session) apply(sf Surface, fs FrameState) FrameState {
	sf.SetPolyline(s.points[:min(fs.Revealed, len(s.points))])
	sf.SetLabel(fs.Label())
	sf.SetTitle(fs.Title())
	s.state = fs
	return fs
}
