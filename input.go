package dimension

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// --- Constants ---

const (
	wheelStep      = 60.0 // pixels per wheel notch
	arrowStep      = 48.0 // pixels per arrow key press
	pageFraction   = 0.9  // share of the screen height per page key press
	keyScrollTween = 400 * time.Millisecond
)

// scrollKeys are the keys processInput polls for viewport scrolling.
var scrollKeys = []ebiten.Key{
	ebiten.KeyArrowDown, ebiten.KeyArrowUp,
	ebiten.KeyPageDown, ebiten.KeyPageUp,
	ebiten.KeySpace, ebiten.KeyHome, ebiten.KeyEnd,
}

// --- Pointer state ---

type pointerState struct {
	down      bool
	hitNode   *Node
	hoverNode *Node // last node the pointer was hovering over (for enter/leave)
	button    MouseButton
	lastX     float64
	lastY     float64
	hitBuf    []*Node
}

// --- Handler registry ---

type pointerHandler struct {
	id uint32
	fn func(PointerContext)
}

type clickHandler struct {
	id uint32
	fn func(ClickContext)
}

type scrollHandler struct {
	id uint32
	fn func(ScrollContext)
}

type handlerRegistry struct {
	pointerDown  []pointerHandler
	pointerUp    []pointerHandler
	pointerEnter []pointerHandler
	pointerLeave []pointerHandler
	click        []clickHandler
	scroll       []scrollHandler
	nextID       uint32
}

// CallbackHandle allows removing a registered scene-level callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventPointerDown:
		h.reg.pointerDown = removeHandler(h.reg.pointerDown, h.id, pointerHandlerID)
	case EventPointerUp:
		h.reg.pointerUp = removeHandler(h.reg.pointerUp, h.id, pointerHandlerID)
	case EventPointerEnter:
		h.reg.pointerEnter = removeHandler(h.reg.pointerEnter, h.id, pointerHandlerID)
	case EventPointerLeave:
		h.reg.pointerLeave = removeHandler(h.reg.pointerLeave, h.id, pointerHandlerID)
	case EventClick:
		h.reg.click = removeHandler(h.reg.click, h.id, func(c clickHandler) uint32 { return c.id })
	case EventScroll:
		h.reg.scroll = removeHandler(h.reg.scroll, h.id, func(c scrollHandler) uint32 { return c.id })
	}
}

func pointerHandlerID(h pointerHandler) uint32 { return h.id }

func removeHandler[T any](s []T, id uint32, idOf func(T) uint32) []T {
	for i := range s {
		if idOf(s[i]) == id {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

func (r *handlerRegistry) next() uint32 {
	r.nextID++
	return r.nextID
}

// --- Scene-level handler registration ---

// OnPointerDown registers a scene-level callback for pointer down events.
func (s *Scene) OnPointerDown(fn func(PointerContext)) CallbackHandle {
	id := s.handlers.next()
	s.handlers.pointerDown = append(s.handlers.pointerDown, pointerHandler{id, fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventPointerDown}
}

// OnPointerUp registers a scene-level callback for pointer up events.
func (s *Scene) OnPointerUp(fn func(PointerContext)) CallbackHandle {
	id := s.handlers.next()
	s.handlers.pointerUp = append(s.handlers.pointerUp, pointerHandler{id, fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventPointerUp}
}

// OnPointerEnter registers a scene-level callback fired when the pointer
// starts hovering an interactable node.
func (s *Scene) OnPointerEnter(fn func(PointerContext)) CallbackHandle {
	id := s.handlers.next()
	s.handlers.pointerEnter = append(s.handlers.pointerEnter, pointerHandler{id, fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventPointerEnter}
}

// OnPointerLeave registers a scene-level callback fired when the pointer
// stops hovering an interactable node.
func (s *Scene) OnPointerLeave(fn func(PointerContext)) CallbackHandle {
	id := s.handlers.next()
	s.handlers.pointerLeave = append(s.handlers.pointerLeave, pointerHandler{id, fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventPointerLeave}
}

// OnClick registers a scene-level callback for click events.
func (s *Scene) OnClick(fn func(ClickContext)) CallbackHandle {
	id := s.handlers.next()
	s.handlers.click = append(s.handlers.click, clickHandler{id, fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventClick}
}

// OnScroll registers a callback fired on every step the viewport's scroll
// position changes.
func (s *Scene) OnScroll(fn func(ScrollContext)) CallbackHandle {
	id := s.handlers.next()
	s.handlers.scroll = append(s.handlers.scroll, scrollHandler{id, fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventScroll}
}

// --- Hit testing ---

// collectInteractable walks the tree in painter order (DFS, ZIndex-sorted),
// appending interactable nodes with a non-empty box. Invisible subtrees are
// skipped.
func (s *Scene) collectInteractable(n *Node, buf []*Node) []*Node {
	if !n.Visible {
		return buf
	}
	if n.Interactable && n.Width > 0 && n.Height > 0 {
		buf = append(buf, n)
	}
	for _, child := range s.childrenInOrder(n) {
		buf = s.collectInteractable(child, buf)
	}
	return buf
}

// hitTest finds the topmost interactable node under the screen point
// (sx, sy). Layers are tested top down; within a layer, reverse painter
// order. Returns nil if nothing is hit.
func (s *Scene) hitTest(sx, sy float64) *Node {
	s.pointer.hitBuf = s.collectInteractable(s.root, s.pointer.hitBuf[:0])
	for rank := 2; rank >= 0; rank-- {
		for i := len(s.pointer.hitBuf) - 1; i >= 0; i-- {
			n := s.pointer.hitBuf[i]
			if n.layer.rank() != rank {
				continue
			}
			wx, wy := s.screenToLayer(n.layer, sx, sy)
			lx, ly := n.WorldToLocal(wx, wy)
			if lx >= 0 && lx <= n.Width && ly >= 0 && ly <= n.Height {
				return n
			}
		}
	}
	return nil
}

// screenToLayer converts a screen point into the world space of layer l.
func (s *Scene) screenToLayer(l Layer, sx, sy float64) (float64, float64) {
	if l == LayerContent {
		return s.viewport.ScreenToWorld(sx, sy)
	}
	return sx, sy
}

// --- Input processing ---

// processInput is called from Scene.Step to handle pointer, wheel and
// keyboard input. A queued synthetic event replaces real input for the frame.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		s.viewport.ScrollBy(-dy * wheelStep)
	}
	for _, k := range scrollKeys {
		if inpututil.IsKeyJustPressed(k) {
			s.handleScrollKey(k)
		}
	}

	mx, my := ebiten.CursorPosition()
	var pressed bool
	var button MouseButton
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		pressed, button = true, MouseButtonLeft
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		pressed, button = true, MouseButtonRight
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle):
		pressed, button = true, MouseButtonMiddle
	}
	s.processPointer(float64(mx), float64(my), pressed, button)
}

// handleScrollKey scrolls the viewport for one key press.
func (s *Scene) handleScrollKey(k ebiten.Key) {
	vp := s.viewport
	switch k {
	case ebiten.KeyArrowDown:
		vp.ScrollBy(arrowStep)
	case ebiten.KeyArrowUp:
		vp.ScrollBy(-arrowStep)
	case ebiten.KeyPageDown, ebiten.KeySpace:
		vp.ScrollBy(vp.Height * pageFraction)
	case ebiten.KeyPageUp:
		vp.ScrollBy(-vp.Height * pageFraction)
	case ebiten.KeyHome:
		vp.ScrollTo(0, keyScrollTween, nil)
	case ebiten.KeyEnd:
		vp.ScrollTo(vp.MaxScroll(), keyScrollTween, nil)
	}
}

// processPointer runs the pointer state machine for the mouse.
func (s *Scene) processPointer(sx, sy float64, pressed bool, button MouseButton) {
	ps := &s.pointer
	target := s.hitTest(sx, sy)

	if target != ps.hoverNode {
		if ps.hoverNode != nil {
			s.firePointer(EventPointerLeave, ps.hoverNode, sx, sy, button)
		}
		if target != nil {
			s.firePointer(EventPointerEnter, target, sx, sy, button)
		}
		ps.hoverNode = target
	}

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.button = button
		ps.hitNode = target
		s.firePointer(EventPointerDown, target, sx, sy, button)
	case !pressed && ps.down:
		if ps.hitNode != nil && ps.hitNode == target {
			s.fireClick(target, sx, sy, ps.button)
		}
		s.firePointer(EventPointerUp, target, sx, sy, ps.button)
		ps.down = false
		ps.hitNode = nil
	}
	ps.lastX, ps.lastY = sx, sy
}

// fireScroll notifies scroll handlers when the viewport moved this step.
func (s *Scene) fireScroll(from float64) {
	to := s.viewport.ScrollY
	if to == from {
		return
	}
	ctx := ScrollContext{From: from, To: to}
	for _, h := range s.handlers.scroll {
		h.fn(ctx)
	}
	if s.store != nil {
		s.store.EmitEvent(InteractionEvent{Type: EventScroll, ScrollFrom: from, ScrollTo: to})
	}
}

func (s *Scene) firePointer(ev EventType, node *Node, sx, sy float64, button MouseButton) {
	var wx, wy, lx, ly float64
	var entityID uint32
	var userData any
	wx, wy = sx, sy
	if node != nil {
		wx, wy = s.screenToLayer(node.layer, sx, sy)
		lx, ly = node.WorldToLocal(wx, wy)
		entityID = node.EntityID
		userData = node.UserData
	}
	ctx := PointerContext{
		Node: node, EntityID: entityID, UserData: userData,
		GlobalX: wx, GlobalY: wy, LocalX: lx, LocalY: ly,
		ScreenX: sx, ScreenY: sy, Button: button,
	}

	var handlers []pointerHandler
	switch ev {
	case EventPointerDown:
		handlers = s.handlers.pointerDown
	case EventPointerUp:
		handlers = s.handlers.pointerUp
	case EventPointerEnter:
		handlers = s.handlers.pointerEnter
	case EventPointerLeave:
		handlers = s.handlers.pointerLeave
	}
	for _, h := range handlers {
		h.fn(ctx)
	}
	if node != nil {
		switch ev {
		case EventPointerEnter:
			if node.OnPointerEnter != nil {
				node.OnPointerEnter(ctx)
			}
		case EventPointerLeave:
			if node.OnPointerLeave != nil {
				node.OnPointerLeave(ctx)
			}
		}
	}
	s.emitInteractionEvent(ev, node, wx, wy, lx, ly, button)
}

func (s *Scene) fireClick(node *Node, sx, sy float64, button MouseButton) {
	wx, wy := s.screenToLayer(node.layer, sx, sy)
	lx, ly := node.WorldToLocal(wx, wy)
	ctx := ClickContext{
		Node: node, EntityID: node.EntityID, UserData: node.UserData,
		GlobalX: wx, GlobalY: wy, LocalX: lx, LocalY: ly,
		ScreenX: sx, ScreenY: sy, Button: button,
	}
	for _, h := range s.handlers.click {
		h.fn(ctx)
	}
	if node.OnClick != nil {
		node.OnClick(ctx)
	}
	s.emitInteractionEvent(EventClick, node, wx, wy, lx, ly, button)
}

// --- ECS bridge ---

func (s *Scene) emitInteractionEvent(eventType EventType, node *Node, wx, wy, lx, ly float64, button MouseButton) {
	if s.store == nil || node == nil || node.EntityID == 0 {
		return
	}
	s.store.EmitEvent(InteractionEvent{
		Type:     eventType,
		EntityID: node.EntityID,
		Name:     node.Name,
		GlobalX:  wx,
		GlobalY:  wy,
		LocalX:   lx,
		LocalY:   ly,
		Button:   button,
	})
}
