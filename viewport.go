package dimension

import (
	"math"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Viewport is the vertically scrolling window onto the page. Content-layer
// nodes are drawn shifted by -ScrollY; background and overlay layers are
// fixed to the screen.
type Viewport struct {
	// ScrollY is the world-space Y coordinate shown at the top of the screen.
	ScrollY float64
	// Width and Height are the screen size in pixels.
	Width, Height float64
	// ContentHeight is the total height of the scrolled content. Scrolling is
	// clamped to [0, ContentHeight-Height].
	ContentHeight float64

	scrollTween *gween.Tween
}

// newViewport creates a Viewport with the given screen size.
func newViewport(w, h float64) *Viewport {
	return &Viewport{Width: w, Height: h}
}

// MaxScroll returns the largest valid ScrollY.
func (v *Viewport) MaxScroll() float64 {
	return math.Max(0, v.ContentHeight-v.Height)
}

// ScrollBy moves the viewport by dy pixels, cancelling any scroll animation.
func (v *Viewport) ScrollBy(dy float64) {
	v.scrollTween = nil
	v.ScrollY = v.clamp(v.ScrollY + dy)
}

// SetScroll jumps to y, cancelling any scroll animation.
func (v *Viewport) SetScroll(y float64) {
	v.scrollTween = nil
	v.ScrollY = v.clamp(y)
}

// ScrollTo animates the viewport to y over duration using easeFn. A
// non-positive duration jumps immediately.
func (v *Viewport) ScrollTo(y float64, duration time.Duration, easeFn ease.TweenFunc) {
	target := v.clamp(y)
	if duration <= 0 {
		v.SetScroll(target)
		return
	}
	if easeFn == nil {
		easeFn = ease.InOutCubic
	}
	v.scrollTween = gween.New(float32(v.ScrollY), float32(target), float32(duration.Seconds()), easeFn)
}

// Scrolling reports whether a ScrollTo animation is in progress.
func (v *Viewport) Scrolling() bool {
	return v.scrollTween != nil
}

// Resize changes the screen size and re-clamps the scroll position.
func (v *Viewport) Resize(w, h float64) {
	v.Width, v.Height = w, h
	v.ScrollY = v.clamp(v.ScrollY)
}

// update advances the scroll animation. Called from Scene.Step.
func (v *Viewport) update(dt time.Duration) {
	if v.scrollTween != nil {
		val, done := v.scrollTween.Update(float32(dt.Seconds()))
		v.ScrollY = v.clamp(float64(val))
		if done {
			v.scrollTween = nil
		}
	}
}

func (v *Viewport) clamp(y float64) float64 {
	return math.Max(0, math.Min(y, v.MaxScroll()))
}

// VisibleBounds returns the world-space rectangle currently on screen for the
// content layer.
func (v *Viewport) VisibleBounds() Rect {
	return Rect{X: 0, Y: v.ScrollY, Width: v.Width, Height: v.Height}
}

// ScreenBounds returns the screen rectangle, which is also the visible area
// of the fixed layers.
func (v *Viewport) ScreenBounds() Rect {
	return Rect{Width: v.Width, Height: v.Height}
}

// visibleFor returns the visible world rectangle for nodes drawn in layer l.
func (v *Viewport) visibleFor(l Layer) Rect {
	if l == LayerContent {
		return v.VisibleBounds()
	}
	return v.ScreenBounds()
}

// viewMatrix returns the world-to-screen matrix for layer l.
func (v *Viewport) viewMatrix(l Layer) [6]float64 {
	if l == LayerContent {
		return [6]float64{1, 0, 0, 1, 0, -v.ScrollY}
	}
	return identityTransform
}

// WorldToScreen converts content-layer world coordinates to screen coordinates.
func (v *Viewport) WorldToScreen(wx, wy float64) (sx, sy float64) {
	return wx, wy - v.ScrollY
}

// ScreenToWorld converts screen coordinates to content-layer world coordinates.
func (v *Viewport) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	return sx, sy + v.ScrollY
}
