package rose

import (
	"math"
	"strconv"
)

// Reveal timing constants.
const (
	// BaseFrames is the frame count at speed 1.
	BaseFrames = 240

	// MinFrames is the lower bound on the frame count at any speed.
	MinFrames = 60

	// MinSpeed is the effective floor of the speed multiplier. Slower
	// speeds, zero, negative and NaN values all behave like MinSpeed.
	MinSpeed = 0.1

	// FrameRate is the nominal playback and export rate in frames per second.
	FrameRate = 30
)

// FrameCount returns max(MinFrames, round(BaseFrames / max(MinSpeed, speed))).
func FrameCount(speed float64) int {
	if !(speed > MinSpeed) {
		speed = MinSpeed
	}
	return max(MinFrames, int(math.Round(BaseFrames/speed)))
}

// StepSize returns how many points each frame reveals: points / frames
// rounded down, but at least one.
func StepSize(points, frames int) int {
	if frames <= 0 {
		return 1
	}
	return max(1, points/frames)
}

// Percent returns floor(100·revealed/points), or 0 when there are no points.
func Percent(revealed, points int) int {
	if points <= 0 {
		return 0
	}
	return 100 * revealed / points
}

// FrameState is the visible progress after a frame has been applied.
type FrameState struct {
	Index    int // frame index, -1 before the first frame
	Revealed int // length of the visible prefix
	Percent  int // floor(100·Revealed/Points)
}

// Label returns the percent overlay text, e.g. "42%".
func (fs FrameState) Label() string {
	return strconv.Itoa(fs.Percent) + "%"
}

// Title returns the window title for the frame.
func (fs FrameState) Title() string {
	return "Rose Drawing - " + fs.Label()
}

// Done reports whether the whole sequence is visible.
func (fs FrameState) Done(points int) bool {
	return fs.Revealed >= points
}

// ScheduleOption configures a Schedule during creation.
type ScheduleOption func(*Schedule)

// WithLiteralTail disables the final-frame clamp. The last frame then
// reveals (Frames)·Step points, which can leave the end of the curve
// hidden when Points is not a multiple of Step.
func WithLiteralTail() ScheduleOption {
	return func(s *Schedule) {
		s.ClampFinal = false
	}
}

// WithClampFinal sets whether the last frame reveals every point.
func WithClampFinal(clamp bool) ScheduleOption {
	return func(s *Schedule) {
		s.ClampFinal = clamp
	}
}

// Schedule maps frame indices to visible prefix lengths.
//
// A Schedule is immutable once created and safe for concurrent use.
type Schedule struct {
	Speed  float64
	Points int
	Frames int
	Step   int

	// ClampFinal makes the last frame reveal exactly Points. It is on by
	// default.
	ClampFinal bool
}

// NewSchedule derives the frame count and step size for points samples
// played at the given speed multiplier.
func NewSchedule(points int, speed float64, opts ...ScheduleOption) Schedule {
	points = max(points, 0)
	frames := FrameCount(speed)
	s := Schedule{
		Speed:      speed,
		Points:     points,
		Frames:     frames,
		Step:       StepSize(points, frames),
		ClampFinal: true,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Initial returns the state before any frame: nothing revealed, "0%".
func (s Schedule) Initial() FrameState {
	return FrameState{Index: -1}
}

// Frame returns the state after frame f (0-based). Negative indices
// return the initial state. Indices past the last frame behave like the
// last frame.
func (s Schedule) Frame(f int) FrameState {
	if f < 0 {
		return s.Initial()
	}
	if f >= s.Frames {
		f = s.Frames - 1
	}
	revealed := min(s.Points, (f+1)*s.Step)
	if s.ClampFinal && f == s.Frames-1 {
		revealed = s.Points
	}
	return FrameState{
		Index:    f,
		Revealed: revealed,
		Percent:  Percent(revealed, s.Points),
	}
}

// Last returns the state after the final frame.
func (s Schedule) Last() FrameState {
	return s.Frame(s.Frames - 1)
}
