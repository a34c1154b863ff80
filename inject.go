package dimension

import "github.com/hajimehoshi/ebiten/v2"

type syntheticKind uint8

const (
	syntheticPointer syntheticKind = iota
	syntheticWheel
	syntheticKey
)

// syntheticEvent represents a single injected input event. Screen
// coordinates are used (matching what is visible in screenshots) and
// converted per layer, identical to real mouse input.
type syntheticEvent struct {
	kind             syntheticKind
	screenX, screenY float64
	pressed          bool
	button           MouseButton
	wheel            float64
	key              ebiten.Key
}

// InjectPress queues a pointer press event at the given screen coordinates
// (left button). The event is consumed on the next frame's processInput call.
func (s *Scene) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{
		kind:    syntheticPointer,
		screenX: x, screenY: y,
		pressed: true,
		button:  MouseButtonLeft,
	})
}

// InjectRelease queues a pointer release event at the given screen coordinates.
func (s *Scene) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{
		kind:    syntheticPointer,
		screenX: x, screenY: y,
		button:  MouseButtonLeft,
	})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same screen coordinates. Consumes two frames.
func (s *Scene) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectScroll queues a wheel movement of notches (positive scrolls down).
func (s *Scene) InjectScroll(notches float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{
		kind:  syntheticWheel,
		wheel: notches,
	})
}

// InjectKey queues a single key press.
func (s *Scene) InjectKey(k ebiten.Key) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{
		kind: syntheticKey,
		key:  k,
	})
}

// PendingInput returns the number of queued synthetic events.
func (s *Scene) PendingInput() int {
	return len(s.injectQueue)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through the same paths as real input. Returns true if an event was
// consumed (real input is skipped for the frame).
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	switch evt.kind {
	case syntheticPointer:
		s.processPointer(evt.screenX, evt.screenY, evt.pressed, evt.button)
	case syntheticWheel:
		s.viewport.ScrollBy(evt.wheel * wheelStep)
	case syntheticKey:
		s.handleScrollKey(evt.key)
	}
	return true
}
