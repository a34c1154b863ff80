package dimension

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// PointerContext carries pointer event data.
type PointerContext struct {
	Node     *Node
	EntityID uint32
	UserData any
	GlobalX  float64
	GlobalY  float64
	LocalX   float64
	LocalY   float64
	ScreenX  float64
	ScreenY  float64
	Button   MouseButton
}

// ClickContext carries click event data.
type ClickContext struct {
	Node     *Node
	EntityID uint32
	UserData any
	GlobalX  float64
	GlobalY  float64
	LocalX   float64
	LocalY   float64
	ScreenX  float64
	ScreenY  float64
	Button   MouseButton
}

// ScrollContext carries viewport scroll data.
type ScrollContext struct {
	From, To float64
}

// nodeIDCounter is a plain counter (no atomic — the scene is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is the fundamental scene graph element. A single flat struct is used for
// all node types to avoid interface dispatch on the hot path.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local)
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
	PivotX   float64
	PivotY   float64

	// Width and Height are the node's layout box in local units. Rect and
	// image nodes are drawn to fill it; it is also the box used for hit
	// testing and viewport intersection.
	Width, Height float64

	// Computed during traversal.
	worldTransform [6]float64
	worldAlpha     float64
	layer          Layer
	transformDirty bool

	// Visibility & interaction
	Alpha        float64
	Visible      bool
	Renderable   bool
	Interactable bool

	// Ordering
	ZIndex int
	Layer  Layer

	// Metadata
	UserData any
	EntityID uint32

	// Visual fields
	Color     Color
	BlendMode BlendMode
	Image     *ebiten.Image // NodeTypeImage
	Text      *TextBlock    // NodeTypeText

	// Per-node callbacks (nil by default; zero cost when unused)
	OnClick        func(ClickContext)
	OnPointerEnter func(PointerContext)
	OnPointerLeave func(PointerContext)
	OnUpdate       func(dt time.Duration)

	// Internal
	disposed       bool
	childrenSorted bool
	sortedChildren []*Node
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.ScaleX = 1
	n.ScaleY = 1
	n.Alpha = 1
	n.Color = ColorWhite
	n.Visible = true
	n.Renderable = true
	n.transformDirty = true
	n.childrenSorted = true
}

// NewContainer creates a container node with no visual representation.
// A container may still have a Width/Height box for hit testing and
// intersection.
func NewContainer(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeContainer}
	nodeDefaults(n)
	return n
}

// NewRect creates a solid color rectangle.
func NewRect(name string, w, h float64, c Color) *Node {
	n := &Node{Name: name, Type: NodeTypeRect, Width: w, Height: h}
	nodeDefaults(n)
	n.Color = c
	return n
}

// NewImage creates a node that draws img stretched to w x h. A zero size
// uses the image's own bounds.
func NewImage(name string, img *ebiten.Image, w, h float64) *Node {
	n := &Node{Name: name, Type: NodeTypeImage, Image: img, Width: w, Height: h}
	nodeDefaults(n)
	if img != nil && (w == 0 || h == 0) {
		b := img.Bounds()
		n.Width, n.Height = float64(b.Dx()), float64(b.Dy())
	}
	return n
}

// NewText creates a text node. Its box is sized to the laid-out text.
func NewText(name string, content string, font *Font) *Node {
	n := &Node{
		Name: name,
		Type: NodeTypeText,
		Text: &TextBlock{
			Content:     content,
			Font:        font,
			Color:       ColorWhite,
			layoutDirty: true,
		},
	}
	nodeDefaults(n)
	n.Width, n.Height = n.Text.Measure()
	return n
}

// SetText replaces a text node's content and re-measures its box.
func (n *Node) SetText(content string) {
	if n.Text == nil {
		return
	}
	n.Text.Content = content
	n.Text.layoutDirty = true
	n.Width, n.Height = n.Text.Measure()
}

// SetWrapWidth wraps a text node at w pixels and re-measures its box.
func (n *Node) SetWrapWidth(w float64) {
	if n.Text == nil {
		return
	}
	n.Text.WrapWidth = w
	n.Text.layoutDirty = true
	n.Width, n.Height = n.Text.Measure()
}

// Bounds returns the node's local layout box.
func (n *Node) Bounds() Rect {
	return Rect{Width: n.Width, Height: n.Height}
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("dimension: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("dimension: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	n.childrenSorted = false
	markSubtreeDirty(child)
	if globalDebug {
		debugCheckTreeDepth(child)
	}
}

// AddChildren appends each child in order.
func (n *Node) AddChildren(children ...*Node) {
	for _, c := range children {
		n.AddChild(c)
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("dimension: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	n.childrenSorted = false
	markSubtreeDirty(child)
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// FindChild returns the first descendant (depth-first) with the given name,
// or nil.
func (n *Node) FindChild(name string) *Node {
	for _, c := range n.children {
		if c.Name == name {
			return c
		}
		if found := c.FindChild(name); found != nil {
			return found
		}
	}
	return nil
}

// SetZIndex sets the node's ZIndex and marks the parent's children as unsorted.
func (n *Node) SetZIndex(z int) {
	if n.ZIndex == z {
		return
	}
	n.ZIndex = z
	if n.Parent != nil {
		n.Parent.childrenSorted = false
	}
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.sortedChildren = nil
	n.Parent = nil
	n.Image = nil
	n.Text = nil
	n.UserData = nil
	n.OnClick = nil
	n.OnPointerEnter = nil
	n.OnPointerLeave = nil
	n.OnUpdate = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// attachedTo reports whether root is an ancestor of n (or n itself).
func (n *Node) attachedTo(root *Node) bool {
	for p := n; p != nil; p = p.Parent {
		if p == root {
			return true
		}
	}
	return false
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// markSubtreeDirty sets transformDirty on node and all its descendants.
func markSubtreeDirty(node *Node) {
	node.transformDirty = true
	for _, child := range node.children {
		markSubtreeDirty(child)
	}
}
