package dimension

import (
	"math"
	"testing"
	"time"
)

func TestRevealUnitDefaults(t *testing.T) {
	u := NewRevealUnit(RevealSpec{Delay: -time.Second, Duration: -time.Second})
	spec := u.Spec()
	if spec.Scale != 1 {
		t.Errorf("Scale = %v, want 1", spec.Scale)
	}
	if spec.Ease == nil {
		t.Error("Ease should default to DefaultRevealEase")
	}
	if spec.Delay != 0 || spec.Duration != 0 {
		t.Errorf("negative durations should clamp to 0, got delay=%v duration=%v", spec.Delay, spec.Duration)
	}
	if u.State() != StateHidden {
		t.Error("new unit should be hidden")
	}
}

func TestRevealMountFiresOnce(t *testing.T) {
	u := NewRevealUnit(RevealSpec{Mode: TriggerOnMount, Duration: 600 * time.Millisecond})
	if !u.Mount(10 * time.Millisecond) {
		t.Fatal("first Mount should fire")
	}
	if u.Mount(20 * time.Millisecond) {
		t.Error("second Mount should not fire")
	}
	if u.Fires() != 1 {
		t.Errorf("Fires = %d, want 1", u.Fires())
	}
	if u.FiredAt() != 10*time.Millisecond {
		t.Errorf("FiredAt = %v, want 10ms", u.FiredAt())
	}
}

func TestRevealMountIgnoredForViewportMode(t *testing.T) {
	u := NewRevealUnit(RevealSpec{Mode: TriggerOnViewportEnter})
	if u.Mount(0) {
		t.Error("Mount should not fire an OnViewportEnter unit")
	}
	if u.Fired() {
		t.Error("unit should stay hidden")
	}
}

func TestRevealObserveIgnoredForMountMode(t *testing.T) {
	u := NewRevealUnit(RevealSpec{Mode: TriggerOnMount})
	if u.Observe(IntersectionEvent{Intersecting: true}) {
		t.Error("Observe should not fire an OnMount unit")
	}
}

func TestRevealObserveExitIgnored(t *testing.T) {
	u := NewRevealUnit(RevealSpec{Mode: TriggerOnViewportEnter})
	if u.Observe(IntersectionEvent{Intersecting: false, Time: time.Second}) {
		t.Error("an exit event should not fire")
	}
	if u.Fired() {
		t.Error("unit should stay hidden after an exit event")
	}
}

func TestRevealOneShot(t *testing.T) {
	u := NewRevealUnit(RevealSpec{
		Mode:     TriggerOnViewportEnter,
		Offset:   Vec2{Y: 40},
		Duration: 500 * time.Millisecond,
	})

	if !u.Observe(IntersectionEvent{Intersecting: true, Time: time.Second}) {
		t.Fatal("first entry should fire")
	}
	u.Observe(IntersectionEvent{Intersecting: false, Time: 3 * time.Second})
	if u.Observe(IntersectionEvent{Intersecting: true, Time: 5 * time.Second}) {
		t.Error("re-entry should not fire again")
	}

	if u.Fires() != 1 {
		t.Errorf("Fires = %d, want 1", u.Fires())
	}
	if u.FiredAt() != time.Second {
		t.Errorf("FiredAt = %v, want 1s", u.FiredAt())
	}
	if u.State() != StateVisible {
		t.Error("unit should stay visible after leaving the viewport")
	}
	vs := u.Sample(6 * time.Second)
	if vs.Phase != PhaseVisible || vs.Opacity != 1 {
		t.Errorf("Sample after re-entry = %+v, want fully visible", vs)
	}
}

func TestRevealSamplePhases(t *testing.T) {
	u := NewRevealUnit(RevealSpec{
		Mode:     TriggerOnMount,
		Offset:   Vec2{X: -50, Y: 20},
		Scale:    0.9,
		Duration: 600 * time.Millisecond,
		Delay:    200 * time.Millisecond,
	})

	before := u.Sample(0)
	if before.Phase != PhaseHidden || before.Opacity != 0 {
		t.Errorf("before fire = %+v, want hidden", before)
	}
	if before.OffsetX != -50 || before.OffsetY != 20 || before.Scale != 0.9 {
		t.Errorf("hidden state = %+v, want offset (-50,20) scale 0.9", before)
	}

	u.Mount(0)

	delayed := u.Sample(100 * time.Millisecond)
	if delayed.Phase != PhaseHidden {
		t.Errorf("during delay Phase = %d, want PhaseHidden", delayed.Phase)
	}
	if u.RevealStart() != 200*time.Millisecond {
		t.Errorf("RevealStart = %v, want 200ms", u.RevealStart())
	}

	mid := u.Sample(500 * time.Millisecond)
	if mid.Phase != PhaseRevealing {
		t.Fatalf("mid Phase = %d, want PhaseRevealing", mid.Phase)
	}
	if mid.Opacity <= 0 || mid.Opacity >= 1 {
		t.Errorf("mid Opacity = %v, want in (0, 1)", mid.Opacity)
	}
	if mid.OffsetX <= -50 || mid.OffsetX >= 0 {
		t.Errorf("mid OffsetX = %v, want between -50 and 0", mid.OffsetX)
	}
	if mid.Scale <= 0.9 || mid.Scale >= 1 {
		t.Errorf("mid Scale = %v, want between 0.9 and 1", mid.Scale)
	}

	done := u.Sample(800 * time.Millisecond)
	want := VisualState{Opacity: 1, Scale: 1, Phase: PhaseVisible}
	if done != want {
		t.Errorf("done = %+v, want %+v", done, want)
	}
}

func TestRevealSampleMonotonicOpacity(t *testing.T) {
	u := NewRevealUnit(RevealSpec{Mode: TriggerOnMount, Duration: time.Second})
	u.Mount(0)
	prev := -1.0
	for ms := 0; ms <= 1200; ms += 50 {
		o := u.Sample(time.Duration(ms) * time.Millisecond).Opacity
		if o < prev {
			t.Fatalf("opacity decreased at %dms: %v < %v", ms, o, prev)
		}
		prev = o
	}
	if math.Abs(prev-1) > 1e-9 {
		t.Errorf("final opacity = %v, want 1", prev)
	}
}

func TestRevealZeroDurationSnaps(t *testing.T) {
	u := NewRevealUnit(RevealSpec{Mode: TriggerOnMount, Offset: Vec2{Y: 30}})
	u.Mount(0)
	vs := u.Sample(0)
	if vs.Phase != PhaseVisible || vs.OffsetY != 0 {
		t.Errorf("zero-duration unit = %+v, want visible at rest", vs)
	}
}

func TestRevealNeverObservedStaysHidden(t *testing.T) {
	u := NewRevealUnit(RevealSpec{Mode: TriggerOnViewportEnter, Duration: time.Second})
	for _, now := range []time.Duration{0, time.Second, time.Minute} {
		if vs := u.Sample(now); vs.Phase != PhaseHidden || vs.Opacity != 0 {
			t.Errorf("Sample(%v) = %+v, want hidden", now, vs)
		}
	}
}

func TestTriggerModeString(t *testing.T) {
	tests := []struct {
		mode TriggerMode
		want string
	}{
		{TriggerOnMount, "mount"},
		{TriggerOnViewportEnter, "viewport-enter"},
		{TriggerMode(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

// --- Scene wiring ---

func TestSceneRevealViewportEnter(t *testing.T) {
	s := NewScene(800, 600)
	s.Viewport().ContentHeight = 3000
	n := NewRect("card", 100, 100, ColorWhite)
	n.Y = 1000
	s.Root().AddChild(n)

	u := s.Reveal(n, RevealSpec{Mode: TriggerOnViewportEnter, Duration: 300 * time.Millisecond})
	if n.Alpha != 0 {
		t.Errorf("node Alpha = %v, want 0 immediately after Reveal", n.Alpha)
	}

	s.Step(0)
	if u.Fired() {
		t.Fatal("below-fold node should not fire on mount")
	}

	s.Viewport().SetScroll(600)
	s.Step(16 * time.Millisecond)
	if !u.Fired() {
		t.Fatal("node should fire once scrolled into view")
	}

	s.Viewport().SetScroll(0)
	s.Step(32 * time.Millisecond)
	s.Viewport().SetScroll(600)
	s.Step(48 * time.Millisecond)
	if u.Fires() != 1 {
		t.Errorf("Fires = %d, want 1", u.Fires())
	}

	s.Step(time.Second)
	if n.Alpha != 1 {
		t.Errorf("node Alpha = %v, want 1 after the reveal", n.Alpha)
	}
}

func TestSceneRevealMountAfterMount(t *testing.T) {
	s := NewScene(800, 600)
	s.Step(0)
	s.Step(100 * time.Millisecond)

	n := NewRect("late", 10, 10, ColorWhite)
	s.Root().AddChild(n)
	u := s.Reveal(n, RevealSpec{Mode: TriggerOnMount})
	if !u.Fired() {
		t.Fatal("OnMount unit added after mount should fire immediately")
	}
	if u.FiredAt() != 100*time.Millisecond {
		t.Errorf("FiredAt = %v, want 100ms", u.FiredAt())
	}
	if s.RevealedCount() != 1 {
		t.Errorf("RevealedCount = %d, want 1", s.RevealedCount())
	}
}
