package dimension

import "time"

// IntersectionEvent reports that a target started or stopped overlapping the
// visible area of its layer.
type IntersectionEvent struct {
	Target       *Node
	Intersecting bool
	Time         time.Duration
	// Bounds is the target's world box at the time of the check.
	Bounds Rect
}

type observerEntry struct {
	node         *Node
	fn           func(IntersectionEvent)
	intersecting bool
}

// Observer tracks viewport intersection for a set of nodes. It reports only
// transitions. The first check after a target is registered reports an entry
// if the target is already visible; a target that starts off-screen reports
// nothing until it scrolls in.
type Observer struct {
	entries []*observerEntry
}

// Observe registers n. fn is called on every intersection change.
// Observing an already observed node replaces its callback.
func (o *Observer) Observe(n *Node, fn func(IntersectionEvent)) {
	for _, e := range o.entries {
		if e.node == n {
			e.fn = fn
			return
		}
	}
	o.entries = append(o.entries, &observerEntry{node: n, fn: fn})
}

// Unobserve removes n. No-op if n is not observed.
func (o *Observer) Unobserve(n *Node) {
	for i, e := range o.entries {
		if e.node == n {
			copy(o.entries[i:], o.entries[i+1:])
			o.entries[len(o.entries)-1] = nil
			o.entries = o.entries[:len(o.entries)-1]
			return
		}
	}
}

// Len returns the number of observed nodes.
func (o *Observer) Len() int {
	return len(o.entries)
}

// Intersecting reports the last known intersection state of n.
func (o *Observer) Intersecting(n *Node) bool {
	for _, e := range o.entries {
		if e.node == n {
			return e.intersecting
		}
	}
	return false
}

// check compares every target's world box with the visible rectangle of its
// layer. World transforms must be current. Disposed targets are dropped;
// targets not attached to root, hidden, or with an empty box count as not
// intersecting.
func (o *Observer) check(root *Node, vp *Viewport, now time.Duration) {
	kept := o.entries[:0]
	var fire []IntersectionEvent
	var fns []func(IntersectionEvent)
	for _, e := range o.entries {
		n := e.node
		if n.IsDisposed() {
			continue
		}
		kept = append(kept, e)

		var bounds Rect
		hit := false
		if n.attachedTo(root) && visibleChain(n) {
			bounds = n.WorldBounds()
			hit = bounds.Overlaps(vp.visibleFor(n.layer))
		}
		if hit == e.intersecting {
			continue
		}
		e.intersecting = hit
		if e.fn != nil {
			fire = append(fire, IntersectionEvent{Target: n, Intersecting: hit, Time: now, Bounds: bounds})
			fns = append(fns, e.fn)
		}
	}
	for i := len(kept); i < len(o.entries); i++ {
		o.entries[i] = nil
	}
	o.entries = kept

	// Callbacks run after bookkeeping so they may Observe/Unobserve.
	for i, ev := range fire {
		fns[i](ev)
	}
}

// visibleChain reports whether n and all its ancestors are Visible.
func visibleChain(n *Node) bool {
	for p := n; p != nil; p = p.Parent {
		if !p.Visible {
			return false
		}
	}
	return true
}
