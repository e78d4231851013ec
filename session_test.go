package rose

import (
	"errors"
	"testing"

	"honnef.co/go/curve"
)

// recordingSurface is a Surface that remembers every call.
type recordingSurface struct {
	polyline []curve.Point
	label    string
	title    string
	calls    int
	lengths  []int
}

func (r *recordingSurface) SetPolyline(pts []curve.Point) {
	r.polyline = pts
	r.lengths = append(r.lengths, len(pts))
	r.calls++
}

func (r *recordingSurface) SetLabel(text string)  { r.label = text }
func (r *recordingSurface) SetTitle(title string) { r.title = title }

func newTestSession(t *testing.T, p Params, speed float64, opts ...ScheduleOption) (*Session, *recordingSurface) {
	t.Helper()
	pts := Sample(p)
	sf := &recordingSurface{}
	sess, err := NewSession(pts, NewSchedule(len(pts), speed, opts...), sf)
	if err != nil {
		t.Fatalf("NewSession() = %v", err)
	}
	return sess, sf
}

func TestNewSessionNilSurface(t *testing.T) {
	_, err := NewSession(nil, NewSchedule(0, 1), nil)
	if !errors.Is(err, ErrNilSurface) {
		t.Errorf("NewSession(nil surface) = %v, want ErrNilSurface", err)
	}
}

func TestSessionInit(t *testing.T) {
	sess, sf := newTestSession(t, DefaultParams(), 1)
	fs := sess.Init()

	if len(sf.polyline) != 0 {
		t.Errorf("Init polyline has %d points, want 0", len(sf.polyline))
	}
	if sf.label != "0%" {
		t.Errorf("Init label = %q, want %q", sf.label, "0%")
	}
	if fs.Revealed != 0 {
		t.Errorf("Init revealed = %d, want 0", fs.Revealed)
	}
	if sess.Done() {
		t.Error("Done() = true before any frame")
	}
}

func TestSessionUpdateRevealsPrefix(t *testing.T) {
	sess, sf := newTestSession(t, DefaultParams(), 1)
	sess.Init()

	fs := sess.Update(9)
	if fs.Revealed != 120 {
		t.Fatalf("Update(9) revealed %d, want 120", fs.Revealed)
	}
	if len(sf.polyline) != 120 {
		t.Fatalf("polyline has %d points, want 120", len(sf.polyline))
	}
	for i, pt := range sf.polyline {
		if pt != sess.Points()[i] {
			t.Fatalf("polyline[%d] = %v, want prefix point %v", i, pt, sess.Points()[i])
		}
	}
	if sf.label != "4%" {
		t.Errorf("label = %q, want %q", sf.label, "4%")
	}
	if sf.title != "Rose Drawing - 4%" {
		t.Errorf("title = %q, want %q", sf.title, "Rose Drawing - 4%")
	}
	if sess.State() != fs {
		t.Errorf("State() = %+v, want %+v", sess.State(), fs)
	}
}

func TestSessionRunToCompletion(t *testing.T) {
	sess, sf := newTestSession(t, Params{K: 5, A: 1.5, Points: 1000}, 2)
	sess.Init()
	for f := 0; f < sess.Frames(); f++ {
		sess.Update(f)
	}
	if !sess.Done() {
		t.Error("Done() = false after the last frame")
	}
	if len(sf.polyline) != 1000 {
		t.Errorf("final polyline has %d points, want 1000", len(sf.polyline))
	}
	if sf.label != "100%" {
		t.Errorf("final label = %q, want %q", sf.label, "100%")
	}
}

func TestSessionLiteralTail(t *testing.T) {
	sess, sf := newTestSession(t, Params{K: 5, A: 1.5, Points: 1000}, 2, WithLiteralTail())
	sess.Update(sess.Frames() - 1)
	if len(sf.polyline) != 960 {
		t.Errorf("final polyline has %d points, want 960", len(sf.polyline))
	}
	if sf.label != "96%" {
		t.Errorf("final label = %q, want %q", sf.label, "96%")
	}
}

func TestSessionReplay(t *testing.T) {
	sess, own := newTestSession(t, DefaultParams(), 1)
	sess.Init()
	sess.Update(3)
	before := sess.State()

	other := &recordingSurface{}
	var captured []FrameState
	err := sess.Replay(other, func(fs FrameState) error {
		captured = append(captured, fs)
		return nil
	})
	if err != nil {
		t.Fatalf("Replay() = %v", err)
	}

	if len(captured) != 240 {
		t.Fatalf("captured %d frames, want 240", len(captured))
	}
	if captured[0].Revealed != 12 || captured[239].Revealed != 3000 {
		t.Errorf("captured first/last revealed = %d/%d, want 12/3000", captured[0].Revealed, captured[239].Revealed)
	}
	// Init plus one call per frame.
	if other.calls != 241 {
		t.Errorf("replay surface got %d polylines, want 241", other.calls)
	}
	if other.lengths[0] != 0 {
		t.Errorf("replay started with %d points, want 0", other.lengths[0])
	}
	if own.calls != 2 {
		t.Errorf("session surface got %d polylines during replay, want 2", own.calls)
	}
	if sess.State() != before {
		t.Errorf("State() after replay = %+v, want %+v", sess.State(), before)
	}
}

func TestSessionReplayStopsOnError(t *testing.T) {
	sess, _ := newTestSession(t, DefaultParams(), 1)
	boom := errors.New("boom")
	n := 0
	err := sess.Replay(&recordingSurface{}, func(FrameState) error {
		n++
		if n == 5 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Errorf("Replay() = %v, want %v", err, boom)
	}
	if n != 5 {
		t.Errorf("capture called %d times, want 5", n)
	}
}

func TestSessionReplayNilSurface(t *testing.T) {
	sess, _ := newTestSession(t, DefaultParams(), 1)
	if err := sess.Replay(nil, nil); !errors.Is(err, ErrNilSurface) {
		t.Errorf("Replay(nil) = %v, want ErrNilSurface", err)
	}
}
