package dimension

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// RenderCommand is a single draw instruction emitted during scene traversal.
type RenderCommand struct {
	Image     *ebiten.Image
	Transform [6]float64 // image pixels to screen
	Color     Color
	BlendMode BlendMode
	Layer     Layer
	Node      *Node
	treeOrder int // assigned during traversal for stable sort
}

// Draw renders the scene to screen: clear, traverse, sort by layer, submit.
// Pending screenshots are captured after submission.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.ToRGBA())
	}

	var stats debugStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.commands = s.commands[:0]
	treeOrder := 0
	s.traverse(s.root, &treeOrder)

	if s.debug {
		stats.traverseTime = time.Since(t0)
		t0 = time.Now()
	}

	s.mergeSort()

	if s.debug {
		stats.sortTime = time.Since(t0)
		stats.commandCount = len(s.commands)
		t0 = time.Now()
	}

	s.submit(screen)

	if s.debug {
		stats.submitTime = time.Since(t0)
		stats.batchCount = countBatches(s.commands)
		s.debugLog(stats)
	}

	s.flushScreenshots(screen)
}

// Commands returns the sorted command list from the last Draw. The returned
// slice MUST NOT be mutated and is only valid until the next Draw.
func (s *Scene) Commands() []RenderCommand {
	return s.commands
}

// traverse walks the node tree depth-first in ZIndex order, emitting render
// commands for visible, renderable nodes that intersect the screen. World
// transforms are already current from Step.
func (s *Scene) traverse(n *Node, treeOrder *int) {
	if !n.Visible {
		return
	}

	if n.Renderable && n.worldAlpha > 0 {
		if cmd, ok := s.commandFor(n); ok {
			*treeOrder++
			cmd.treeOrder = *treeOrder
			s.commands = append(s.commands, cmd)
		}
	}

	if len(n.children) == 0 {
		return
	}
	for _, child := range s.childrenInOrder(n) {
		s.traverse(child, treeOrder)
	}
}

// commandFor builds n's draw command. Returns false for containers, empty
// boxes and nodes entirely off screen.
func (s *Scene) commandFor(n *Node) (RenderCommand, bool) {
	if n.Type == NodeTypeContainer || n.Width <= 0 || n.Height <= 0 {
		return RenderCommand{}, false
	}
	screenM := multiplyAffine(s.viewport.viewMatrix(n.layer), n.worldTransform)
	if !worldAABB(screenM, n.Width, n.Height).Overlaps(s.viewport.ScreenBounds()) {
		return RenderCommand{}, false
	}

	cmd := RenderCommand{
		Color:     n.Color,
		BlendMode: n.BlendMode,
		Layer:     n.layer,
		Node:      n,
	}
	switch n.Type {
	case NodeTypeRect:
		cmd.Image = WhitePixel
		cmd.Transform = multiplyAffine(screenM, [6]float64{n.Width, 0, 0, n.Height, 0, 0})
	case NodeTypeImage:
		if n.Image == nil {
			return RenderCommand{}, false
		}
		b := n.Image.Bounds()
		sx := n.Width / float64(b.Dx())
		sy := n.Height / float64(b.Dy())
		cmd.Image = n.Image
		cmd.Transform = multiplyAffine(screenM, [6]float64{sx, 0, 0, sy, 0, 0})
	case NodeTypeText:
		if n.Text == nil || n.Text.Font == nil {
			return RenderCommand{}, false
		}
		img := n.Text.renderImage()
		if img == nil {
			return RenderCommand{}, false
		}
		cmd.Image = img
		cmd.Color = n.Text.Color
		cmd.Transform = screenM
	}
	cmd.Color.A *= n.worldAlpha
	return cmd, true
}

// childrenInOrder returns n's children in ZIndex order, rebuilding the cache
// when it is stale.
func (s *Scene) childrenInOrder(n *Node) []*Node {
	if !n.childrenSorted {
		rebuildSortedChildren(n)
	}
	if n.sortedChildren != nil {
		return n.sortedChildren
	}
	return n.children
}

// rebuildSortedChildren rebuilds the ZIndex-sorted traversal order for a node.
// Uses insertion sort: zero allocations, stable, and O(n) when already sorted.
func rebuildSortedChildren(n *Node) {
	nc := len(n.children)
	if cap(n.sortedChildren) < nc {
		n.sortedChildren = make([]*Node, nc)
	}
	n.sortedChildren = n.sortedChildren[:nc]
	copy(n.sortedChildren, n.children)
	for i := 1; i < nc; i++ {
		key := n.sortedChildren[i]
		j := i - 1
		for j >= 0 && n.sortedChildren[j].ZIndex > key.ZIndex {
			n.sortedChildren[j+1] = n.sortedChildren[j]
			j--
		}
		n.sortedChildren[j+1] = key
	}
	n.childrenSorted = true
}

// --- Merge sort ---

// commandLessOrEqual returns true if a should sort before or at the same position as b.
// Using <= for treeOrder ensures stability.
func commandLessOrEqual(a, b RenderCommand) bool {
	if ra, rb := a.Layer.rank(), b.Layer.rank(); ra != rb {
		return ra < rb
	}
	return a.treeOrder <= b.treeOrder
}

// mergeSort sorts s.commands in-place using s.sortBuf as scratch space.
// Bottom-up merge sort: zero allocations after the sort buffer reaches high-water mark.
func (s *Scene) mergeSort() {
	n := len(s.commands)
	if n <= 1 {
		return
	}
	if cap(s.sortBuf) < n {
		s.sortBuf = make([]RenderCommand, n)
	}
	s.sortBuf = s.sortBuf[:n]

	a := s.commands
	b := s.sortBuf
	swapped := false

	for width := 1; width < n; width *= 2 {
		for i := 0; i < n; i += 2 * width {
			lo := i
			mid := lo + width
			if mid > n {
				mid = n
			}
			hi := lo + 2*width
			if hi > n {
				hi = n
			}
			mergeRun(a, b, lo, mid, hi)
		}
		a, b = b, a
		swapped = !swapped
	}

	if swapped {
		copy(s.commands, s.sortBuf)
	}
}

// mergeRun merges two sorted runs [lo, mid) and [mid, hi) from src into dst.
func mergeRun(src, dst []RenderCommand, lo, mid, hi int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if commandLessOrEqual(src[i], src[j]) {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}
	for i < mid {
		dst[k] = src[i]
		i++
		k++
	}
	for j < hi {
		dst[k] = src[j]
		j++
		k++
	}
}

// --- Submission ---

// submit draws every sorted command to target.
func (s *Scene) submit(target *ebiten.Image) {
	var op ebiten.DrawImageOptions
	for i := range s.commands {
		cmd := &s.commands[i]
		op.GeoM.Reset()
		op.GeoM.Concat(commandGeoM(cmd))
		op.ColorScale.Reset()
		a := float32(cmd.Color.A)
		op.ColorScale.Scale(float32(cmd.Color.R)*a, float32(cmd.Color.G)*a, float32(cmd.Color.B)*a, a)
		op.Blend = cmd.BlendMode.EbitenBlend()
		op.Filter = ebiten.FilterLinear
		target.DrawImage(cmd.Image, &op)
	}
}

// commandGeoM converts a command's [6]float64 transform into an ebiten.GeoM.
func commandGeoM(cmd *RenderCommand) ebiten.GeoM {
	var m ebiten.GeoM
	m.SetElement(0, 0, cmd.Transform[0])
	m.SetElement(1, 0, cmd.Transform[1])
	m.SetElement(0, 1, cmd.Transform[2])
	m.SetElement(1, 1, cmd.Transform[3])
	m.SetElement(0, 2, cmd.Transform[4])
	m.SetElement(1, 2, cmd.Transform[5])
	return m
}

// countBatches counts contiguous groups of commands sharing image and blend.
// This reports how many draw calls a batching submitter would produce.
func countBatches(commands []RenderCommand) int {
	if len(commands) == 0 {
		return 0
	}
	count := 1
	prev := &commands[0]
	for i := 1; i < len(commands); i++ {
		cur := &commands[i]
		if cur.Image != prev.Image || cur.BlendMode != prev.BlendMode {
			count++
		}
		prev = cur
	}
	return count
}
