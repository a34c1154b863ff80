package dimension

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TriggerMode selects what makes a RevealUnit fire.
type TriggerMode uint8

const (
	// TriggerOnMount fires once when the scene becomes interactive.
	TriggerOnMount TriggerMode = iota
	// TriggerOnViewportEnter fires once, the first time the node's box
	// overlaps the visible viewport.
	TriggerOnViewportEnter
)

func (m TriggerMode) String() string {
	switch m {
	case TriggerOnMount:
		return "mount"
	case TriggerOnViewportEnter:
		return "viewport-enter"
	default:
		return "unknown"
	}
}

// RevealState is the two-state signal a RevealUnit exposes. It flips from
// StateHidden to StateVisible exactly once.
type RevealState uint8

const (
	StateHidden RevealState = iota
	StateVisible
)

// RevealPhase describes where a unit is along its entrance animation.
type RevealPhase uint8

const (
	PhaseHidden    RevealPhase = iota // not fired, or fired and still in its delay
	PhaseRevealing                    // interpolating toward the rest state
	PhaseVisible                      // fully revealed
)

// DefaultRevealEase is used when a RevealSpec leaves Ease nil.
var DefaultRevealEase ease.TweenFunc = ease.OutCubic

// RevealSpec describes how a unit enters.
type RevealSpec struct {
	// Offset is the displacement from the rest position while hidden.
	Offset Vec2
	// Scale is the initial scale while hidden. Zero means 1.
	Scale float64
	// Mode selects the trigger.
	Mode TriggerMode
	// Duration of the interpolation once the delay has elapsed.
	Duration time.Duration
	// Delay between the trigger and the start of the interpolation.
	Delay time.Duration
	// Ease shapes the interpolation. Nil means DefaultRevealEase.
	Ease ease.TweenFunc
}

// VisualState is what the renderer paints for a unit at a given time.
type VisualState struct {
	Opacity          float64
	OffsetX, OffsetY float64
	Scale            float64
	Phase            RevealPhase
}

// RevealUnit is a one-shot hidden-to-visible state machine. It never reads a
// clock: every transition and sample takes an explicit timestamp measured from
// scene start.
type RevealUnit struct {
	spec    RevealSpec
	fired   bool
	firedAt time.Duration
	fires   int
	tween   *gween.Tween
}

// NewRevealUnit creates a hidden unit.
func NewRevealUnit(spec RevealSpec) *RevealUnit {
	if spec.Scale == 0 {
		spec.Scale = 1
	}
	if spec.Ease == nil {
		spec.Ease = DefaultRevealEase
	}
	if spec.Duration < 0 {
		spec.Duration = 0
	}
	if spec.Delay < 0 {
		spec.Delay = 0
	}
	u := &RevealUnit{spec: spec}
	if spec.Duration > 0 {
		u.tween = gween.New(0, 1, float32(spec.Duration.Seconds()), spec.Ease)
	}
	return u
}

// Spec returns the normalized spec the unit was created with.
func (u *RevealUnit) Spec() RevealSpec {
	return u.spec
}

// Mode returns the unit's trigger mode.
func (u *RevealUnit) Mode() TriggerMode {
	return u.spec.Mode
}

// Fired reports whether the unit has fired. Once true it stays true.
func (u *RevealUnit) Fired() bool {
	return u.fired
}

// FiredAt returns the trigger time. Only meaningful when Fired is true.
func (u *RevealUnit) FiredAt() time.Duration {
	return u.firedAt
}

// Fires returns how many times the unit has fired: 0 or 1.
func (u *RevealUnit) Fires() int {
	return u.fires
}

// State returns the two-state reveal signal.
func (u *RevealUnit) State() RevealState {
	if u.fired {
		return StateVisible
	}
	return StateHidden
}

// Mount delivers the scene-ready notification. OnMount units fire at now.
// Reports whether this call fired the unit.
func (u *RevealUnit) Mount(now time.Duration) bool {
	if u.spec.Mode != TriggerOnMount {
		return false
	}
	return u.fire(now)
}

// Observe delivers a viewport intersection change. OnViewportEnter units fire
// on their first intersecting event; exits and later entries are ignored.
// Reports whether this call fired the unit.
func (u *RevealUnit) Observe(ev IntersectionEvent) bool {
	if u.spec.Mode != TriggerOnViewportEnter || !ev.Intersecting {
		return false
	}
	return u.fire(ev.Time)
}

func (u *RevealUnit) fire(now time.Duration) bool {
	if u.fired {
		return false
	}
	u.fired = true
	u.firedAt = now
	u.fires++
	return true
}

// RevealStart returns the time the interpolation begins: FiredAt plus Delay.
func (u *RevealUnit) RevealStart() time.Duration {
	return u.firedAt + u.spec.Delay
}

// Sample returns the visual state at now.
func (u *RevealUnit) Sample(now time.Duration) VisualState {
	hidden := VisualState{
		Opacity: 0,
		OffsetX: u.spec.Offset.X,
		OffsetY: u.spec.Offset.Y,
		Scale:   u.spec.Scale,
		Phase:   PhaseHidden,
	}
	if !u.fired {
		return hidden
	}
	elapsed := now - u.RevealStart()
	if elapsed < 0 {
		return hidden
	}
	if u.tween == nil || elapsed >= u.spec.Duration {
		return VisualState{Opacity: 1, Scale: 1, Phase: PhaseVisible}
	}

	v, _ := u.tween.Set(float32(elapsed.Seconds()))
	p := float64(v)
	return VisualState{
		Opacity: clamp01(p),
		OffsetX: u.spec.Offset.X * (1 - p),
		OffsetY: u.spec.Offset.Y * (1 - p),
		Scale:   u.spec.Scale + (1-u.spec.Scale)*p,
		Phase:   PhaseRevealing,
	}
}
