package dimension

import (
	"math"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultAmbientEase shapes each keyframe segment when an Oscillator leaves
// Ease nil.
var DefaultAmbientEase ease.TweenFunc = ease.InOutSine

// AmbientTransform is an oscillator's output at one instant.
type AmbientTransform struct {
	DX, DY float64
	// Rotation in radians.
	Rotation float64
	// Cycle counts completed there-and-back cycles.
	Cycle int
	// Forward is true while keyframes play in order, false on the way back.
	Forward bool
}

// Oscillator is an endlessly repeating ping-pong animation over position and
// rotation keyframes. Keyframes are spread evenly over Period; after reaching
// the last keyframe it plays them backwards instead of snapping to the start.
// It has no terminal state and no cancellation.
type Oscillator struct {
	Name     string
	Position []Vec2
	// Rotation keyframes in degrees.
	Rotation []float64
	Period   time.Duration
	// Offset shifts the oscillator's phase.
	Offset time.Duration
	Ease   ease.TweenFunc

	xs, ys, rs []*gween.Tween
}

// OscillatorA is the slower-drifting background shape: 12 s period, small
// drift and a slight clockwise tilt.
func OscillatorA() *Oscillator {
	return &Oscillator{
		Name:     "ambient-a",
		Position: []Vec2{{0, 0}, {40, -30}, {0, 0}},
		Rotation: []float64{0, 10, 0},
		Period:   12 * time.Second,
	}
}

// OscillatorB is the second background shape: 14 s period, larger drift and
// a counter-clockwise tilt. Its phase offset keeps it from lining up with
// OscillatorA.
func OscillatorB() *Oscillator {
	return &Oscillator{
		Name:     "ambient-b",
		Position: []Vec2{{0, 0}, {-60, 40}, {0, 0}},
		Rotation: []float64{0, -8, 0},
		Period:   14 * time.Second,
		Offset:   1500 * time.Millisecond,
	}
}

// Active reports whether the oscillator is producing motion. Always true for
// a positive period: the loop never ends.
func (o *Oscillator) Active(now time.Duration) bool {
	return o.Period > 0
}

// PhaseAt returns the position within the there-and-back cycle in [0, 1).
func (o *Oscillator) PhaseAt(now time.Duration) float64 {
	if o.Period <= 0 {
		return 0
	}
	_, r := o.split(now)
	return float64(r) / float64(2*o.Period)
}

// split returns the completed there-and-back cycles at now and the time into
// the current one. Times before the start wrap backwards like any other.
func (o *Oscillator) split(now time.Duration) (cycles int64, r time.Duration) {
	cycle := 2 * o.Period
	t := now + o.Offset
	cycles, r = int64(t/cycle), t%cycle
	if r < 0 {
		r += cycle
		cycles--
	}
	return cycles, r
}

// Sample returns the transform at now. The keyframe tracks are built on the
// first call; call Reset after changing Position, Rotation or Ease.
func (o *Oscillator) Sample(now time.Duration) AmbientTransform {
	if o.Period <= 0 {
		return AmbientTransform{Forward: true}
	}
	o.build()

	cycles, r := o.split(now)
	forward := r < o.Period
	within := r
	if !forward {
		within = 2*o.Period - r
	}
	f := float64(within) / float64(o.Period)

	return AmbientTransform{
		DX:       sampleTrack(o.xs, f),
		DY:       sampleTrack(o.ys, f),
		Rotation: sampleTrack(o.rs, f) * math.Pi / 180,
		Cycle:    int(cycles),
		Forward:  forward,
	}
}

// Reset drops the cached keyframe tracks so the next Sample rebuilds them.
func (o *Oscillator) Reset() {
	o.xs, o.ys, o.rs = nil, nil, nil
}

// build creates one unit-duration tween per keyframe segment and channel.
func (o *Oscillator) build() {
	if o.xs != nil || o.ys != nil || o.rs != nil {
		return
	}
	fn := o.Ease
	if fn == nil {
		fn = DefaultAmbientEase
	}
	xs := make([]float64, len(o.Position))
	ys := make([]float64, len(o.Position))
	for i, p := range o.Position {
		xs[i], ys[i] = p.X, p.Y
	}
	o.xs = segmentTweens(xs, fn)
	o.ys = segmentTweens(ys, fn)
	o.rs = segmentTweens(o.Rotation, fn)
}

func segmentTweens(keys []float64, fn ease.TweenFunc) []*gween.Tween {
	switch len(keys) {
	case 0:
		return []*gween.Tween{}
	case 1:
		return []*gween.Tween{gween.New(float32(keys[0]), float32(keys[0]), 1, fn)}
	}
	out := make([]*gween.Tween, len(keys)-1)
	for i := range out {
		out[i] = gween.New(float32(keys[i]), float32(keys[i+1]), 1, fn)
	}
	return out
}

// sampleTrack evaluates a keyframe track at fraction f in [0, 1].
func sampleTrack(track []*gween.Tween, f float64) float64 {
	if len(track) == 0 {
		return 0
	}
	pos := f * float64(len(track))
	i := int(pos)
	if i >= len(track) {
		i = len(track) - 1
	}
	v, _ := track[i].Set(float32(pos - float64(i)))
	return float64(v)
}
