package dimension

import (
	"math"
	"testing"
	"time"
)

const ambientEpsilon = 1e-4

func TestOscillatorPeriods(t *testing.T) {
	a, b := OscillatorA(), OscillatorB()
	if a.Period != 12*time.Second {
		t.Errorf("A.Period = %v, want 12s", a.Period)
	}
	if b.Period != 14*time.Second {
		t.Errorf("B.Period = %v, want 14s", b.Period)
	}
}

func TestOscillatorRestPose(t *testing.T) {
	tr := OscillatorA().Sample(0)
	if math.Abs(tr.DX) > ambientEpsilon || math.Abs(tr.DY) > ambientEpsilon || math.Abs(tr.Rotation) > ambientEpsilon {
		t.Errorf("A at 0 = %+v, want rest pose", tr)
	}
	if !tr.Forward || tr.Cycle != 0 {
		t.Errorf("A at 0: Forward=%v Cycle=%d, want true 0", tr.Forward, tr.Cycle)
	}
}

func TestOscillatorPeakAndRotationSign(t *testing.T) {
	a := OscillatorA().Sample(6 * time.Second)
	if math.Abs(a.DX-40) > ambientEpsilon || math.Abs(a.DY+30) > ambientEpsilon {
		t.Errorf("A peak = (%v, %v), want (40, -30)", a.DX, a.DY)
	}
	if a.Rotation <= 0 {
		t.Errorf("A peak rotation = %v, want positive", a.Rotation)
	}

	// B's phase offset is 1.5s, so its midpoint is at 5.5s.
	b := OscillatorB().Sample(5500 * time.Millisecond)
	if math.Abs(b.DX+60) > ambientEpsilon || math.Abs(b.DY-40) > ambientEpsilon {
		t.Errorf("B peak = (%v, %v), want (-60, 40)", b.DX, b.DY)
	}
	if b.Rotation >= 0 {
		t.Errorf("B peak rotation = %v, want negative", b.Rotation)
	}
	if math.Abs(b.Rotation+8*math.Pi/180) > ambientEpsilon {
		t.Errorf("B peak rotation = %v, want -8 degrees", b.Rotation)
	}
}

func TestOscillatorPingPong(t *testing.T) {
	o := OscillatorA()
	before := o.Sample(11900 * time.Millisecond)
	after := o.Sample(12100 * time.Millisecond)
	if !before.Forward {
		t.Error("first half-cycle should play forward")
	}
	if after.Forward {
		t.Error("second half-cycle should play backward")
	}
	if math.Abs(before.DX-after.DX) > ambientEpsilon || math.Abs(before.DY-after.DY) > ambientEpsilon {
		t.Errorf("reverse should mirror forward: %+v vs %+v", before, after)
	}

	next := o.Sample(24 * time.Second)
	if !next.Forward || next.Cycle != 1 {
		t.Errorf("at 24s: Forward=%v Cycle=%d, want true 1", next.Forward, next.Cycle)
	}
}

func TestOscillatorNeverTerminates(t *testing.T) {
	for _, o := range []*Oscillator{OscillatorA(), OscillatorB()} {
		end := 10 * o.Period
		if !o.Active(end) {
			t.Errorf("%s inactive after 10 periods", o.Name)
		}
		prev := o.Sample(end)
		moved := false
		for ms := 100; ms <= 2000; ms += 100 {
			cur := o.Sample(end + time.Duration(ms)*time.Millisecond)
			if cur != prev {
				moved = true
				break
			}
			prev = cur
		}
		if !moved {
			t.Errorf("%s stopped producing updates after 10 periods", o.Name)
		}
		if got := o.Sample(end + o.Period/2); got.Cycle < 5 {
			t.Errorf("%s Cycle = %d after 10 periods, want >= 5", o.Name, got.Cycle)
		}
	}
}

func TestOscillatorPhasesNeverAlign(t *testing.T) {
	a, b := OscillatorA(), OscillatorB()
	for now := time.Duration(0); now <= 5*time.Minute; now += a.Period {
		if a.PhaseAt(now) == b.PhaseAt(now) {
			t.Fatalf("phases aligned at %v: %v", now, a.PhaseAt(now))
		}
	}
}

func TestOscillatorPhaseRange(t *testing.T) {
	o := OscillatorB()
	for now := time.Duration(0); now <= time.Minute; now += 700 * time.Millisecond {
		p := o.PhaseAt(now)
		if p < 0 || p >= 1 {
			t.Fatalf("PhaseAt(%v) = %v, want [0, 1)", now, p)
		}
	}
}

func TestOscillatorZeroPeriod(t *testing.T) {
	o := &Oscillator{Position: []Vec2{{0, 0}, {10, 10}}}
	if o.Active(time.Second) {
		t.Error("zero-period oscillator should be inactive")
	}
	if got := o.Sample(time.Second); got != (AmbientTransform{Forward: true}) {
		t.Errorf("Sample = %+v, want zero transform", got)
	}
	if o.PhaseAt(time.Second) != 0 {
		t.Error("PhaseAt should be 0 for a zero period")
	}
}

func TestOscillatorEmptyTracks(t *testing.T) {
	o := &Oscillator{Period: time.Second}
	tr := o.Sample(300 * time.Millisecond)
	if tr.DX != 0 || tr.DY != 0 || tr.Rotation != 0 {
		t.Errorf("empty tracks = %+v, want zero motion", tr)
	}
}

func TestSceneOscillate(t *testing.T) {
	s := NewScene(800, 600)
	n := NewRect("blob", 100, 100, ColorWhite)
	n.X, n.Y = 200, 300
	s.Root().AddChild(n)
	s.Oscillate(n, OscillatorA())

	s.Step(6 * time.Second)
	if math.Abs(n.X-240) > ambientEpsilon || math.Abs(n.Y-270) > ambientEpsilon {
		t.Errorf("node at (%v, %v), want (240, 270)", n.X, n.Y)
	}
	if n.Rotation <= 0 {
		t.Errorf("node Rotation = %v, want positive", n.Rotation)
	}
}

func TestOscillatorNegativeTimeWraps(t *testing.T) {
	o := OscillatorB()
	cycle := 2 * o.Period
	for _, now := range []time.Duration{-time.Second, -9 * time.Second, -20 * time.Second} {
		got, want := o.Sample(now), o.Sample(now+cycle)
		if math.Abs(got.DX-want.DX) > ambientEpsilon || math.Abs(got.DY-want.DY) > ambientEpsilon {
			t.Errorf("Sample(%v) = %+v, want same pose as one cycle later %+v", now, got, want)
		}
		if got.Forward != want.Forward {
			t.Errorf("Sample(%v).Forward = %v, want %v", now, got.Forward, want.Forward)
		}
		if got.Cycle != want.Cycle-1 {
			t.Errorf("Sample(%v).Cycle = %d, want %d", now, got.Cycle, want.Cycle-1)
		}
		if p := o.PhaseAt(now); (p < 0.5) != got.Forward {
			t.Errorf("PhaseAt(%v) = %v disagrees with Forward = %v", now, p, got.Forward)
		}
	}
}

func TestOscillatorResetRebuildsTracks(t *testing.T) {
	o := OscillatorA()
	o.Sample(6 * time.Second)

	o.Position = []Vec2{{0, 0}, {100, 0}, {0, 0}}
	o.Reset()
	if got := o.Sample(6 * time.Second); math.Abs(got.DX-100) > ambientEpsilon {
		t.Errorf("DX after Reset = %v, want 100", got.DX)
	}
}
