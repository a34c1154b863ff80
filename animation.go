package dimension

import "time"

// RevealBinding writes a RevealUnit's visual state onto a node each frame.
// The node's position and scale at bind time are its rest state; the unit's
// offset and scale are applied relative to them.
type RevealBinding struct {
	Node *Node
	Unit *RevealUnit

	restX, restY   float64
	restSX, restSY float64
	reported       bool
}

// BindReveal captures node's rest state and returns a binding for unit.
func BindReveal(node *Node, unit *RevealUnit) *RevealBinding {
	b := &RevealBinding{
		Node:   node,
		Unit:   unit,
		restX:  node.X,
		restY:  node.Y,
		restSX: node.ScaleX,
		restSY: node.ScaleY,
	}
	b.Apply(0)
	return b
}

// Apply samples the unit at now and writes the result. Disposed nodes are
// left alone.
func (b *RevealBinding) Apply(now time.Duration) {
	n := b.Node
	if n == nil || n.IsDisposed() {
		return
	}
	vs := b.Unit.Sample(now)
	n.X = b.restX + vs.OffsetX
	n.Y = b.restY + vs.OffsetY
	n.ScaleX = b.restSX * vs.Scale
	n.ScaleY = b.restSY * vs.Scale
	n.Alpha = vs.Opacity
	n.MarkDirty()
}

// OscillatorBinding writes an Oscillator's transform onto a node each frame,
// relative to the node's position and rotation at bind time.
type OscillatorBinding struct {
	Node *Node
	Osc  *Oscillator

	restX, restY, restRot float64
}

// BindOscillator captures node's rest state and returns a binding for osc.
func BindOscillator(node *Node, osc *Oscillator) *OscillatorBinding {
	return &OscillatorBinding{
		Node:    node,
		Osc:     osc,
		restX:   node.X,
		restY:   node.Y,
		restRot: node.Rotation,
	}
}

// Apply samples the oscillator at now and writes the result.
func (b *OscillatorBinding) Apply(now time.Duration) {
	n := b.Node
	if n == nil || n.IsDisposed() {
		return
	}
	tr := b.Osc.Sample(now)
	n.X = b.restX + tr.DX
	n.Y = b.restY + tr.DY
	n.Rotation = b.restRot + tr.Rotation
	n.MarkDirty()
}

// Reveal attaches a one-shot entrance to node. OnMount units fire on the
// scene's first Step; OnViewportEnter units fire the first time node's box
// overlaps the visible area. node starts hidden immediately.
func (s *Scene) Reveal(node *Node, spec RevealSpec) *RevealUnit {
	unit := NewRevealUnit(spec)
	b := BindReveal(node, unit)
	s.reveals = append(s.reveals, b)

	if spec.Mode == TriggerOnViewportEnter {
		s.observer.Observe(node, func(ev IntersectionEvent) {
			unit.Observe(ev)
		})
	}
	if spec.Mode == TriggerOnMount && s.mounted {
		unit.Mount(s.now)
	}
	return unit
}

// Oscillate attaches an endless ambient motion to node.
func (s *Scene) Oscillate(node *Node, osc *Oscillator) *OscillatorBinding {
	b := BindOscillator(node, osc)
	s.ambient = append(s.ambient, b)
	b.Apply(s.now)
	return b
}

// RevealBindings returns all reveal bindings in creation order. The returned
// slice MUST NOT be mutated.
func (s *Scene) RevealBindings() []*RevealBinding {
	return s.reveals
}

// RevealedCount returns how many reveal units have fired.
func (s *Scene) RevealedCount() int {
	n := 0
	for _, b := range s.reveals {
		if b.Unit.Fired() {
			n++
		}
	}
	return n
}

// applyAnimations reports newly fired units and writes every binding.
func (s *Scene) applyAnimations(now time.Duration) {
	for _, b := range s.reveals {
		if b.Unit.Fired() && !b.reported {
			b.reported = true
			s.reportReveal(b)
		}
		b.Apply(now)
	}
	for _, b := range s.ambient {
		b.Apply(now)
	}
}
