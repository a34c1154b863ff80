package dimension

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Filter is a visual effect baked into an image.
type Filter interface {
	// Apply renders src into dst with the filter effect.
	Apply(src, dst *ebiten.Image)
	// Padding returns the extra pixels needed around the source to hold the
	// effect (e.g. blur radius). Zero means no padding.
	Padding() int
}

// BlurFilter applies a Kawase-style blur using halving downscale passes and
// bilinear upscales. No shader needed.
type BlurFilter struct {
	Radius int
	temps  []*ebiten.Image
	op     ebiten.DrawImageOptions
}

// NewBlurFilter creates a blur filter with the given radius in pixels.
func NewBlurFilter(radius int) *BlurFilter {
	return &BlurFilter{Radius: max(radius, 0)}
}

// Apply renders a blurred copy of src into dst, stretched to dst's size.
func (f *BlurFilter) Apply(src, dst *ebiten.Image) {
	if f.Radius <= 1 {
		f.drawScaled(src, dst, ebiten.FilterNearest)
		return
	}
	passes := max(int(math.Ceil(math.Log2(float64(f.Radius)))), 1)
	f.ensureTemps(src, passes)

	current := src
	for _, t := range f.temps {
		t.Clear()
		f.drawScaled(current, t, ebiten.FilterLinear)
		current = t
	}
	for i := passes - 2; i >= 0; i-- {
		f.temps[i].Clear()
		f.drawScaled(current, f.temps[i], ebiten.FilterLinear)
		current = f.temps[i]
	}
	f.drawScaled(current, dst, ebiten.FilterLinear)
}

// ensureTemps sizes one half-resolution buffer per pass, reusing buffers
// whose size already matches.
func (f *BlurFilter) ensureTemps(src *ebiten.Image, passes int) {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	for i := passes; i < len(f.temps); i++ {
		f.temps[i].Deallocate()
	}
	if len(f.temps) > passes {
		f.temps = f.temps[:passes]
	}
	for i := 0; i < passes; i++ {
		w, h = max(w/2, 1), max(h/2, 1)
		if i < len(f.temps) {
			b := f.temps[i].Bounds()
			if b.Dx() == w && b.Dy() == h {
				continue
			}
			f.temps[i].Deallocate()
			f.temps[i] = ebiten.NewImage(w, h)
			continue
		}
		f.temps = append(f.temps, ebiten.NewImage(w, h))
	}
}

func (f *BlurFilter) drawScaled(src, dst *ebiten.Image, filter ebiten.Filter) {
	sb, db := src.Bounds(), dst.Bounds()
	f.op.GeoM.Reset()
	f.op.ColorScale.Reset()
	f.op.GeoM.Scale(float64(db.Dx())/float64(sb.Dx()), float64(db.Dy())/float64(sb.Dy()))
	f.op.Filter = filter
	dst.DrawImage(src, &f.op)
}

// Padding returns the blur radius so soft edges are not clipped.
func (f *BlurFilter) Padding() int { return f.Radius }

// ApplyFilters bakes filters into a new image, in order. Each filter's
// padding grows the canvas on every side, so the result is larger than src
// and src sits centered in it.
func ApplyFilters(src *ebiten.Image, filters ...Filter) *ebiten.Image {
	pad := 0
	for _, f := range filters {
		pad += f.Padding()
	}
	b := src.Bounds()
	w, h := b.Dx()+2*pad, b.Dy()+2*pad

	cur := ebiten.NewImage(w, h)
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(float64(pad-b.Min.X), float64(pad-b.Min.Y))
	cur.DrawImage(src, &op)

	for _, f := range filters {
		next := ebiten.NewImage(w, h)
		f.Apply(cur, next)
		cur.Deallocate()
		cur = next
	}
	return cur
}

// ShadowImage returns a blurred rounded rectangle for use as a drop shadow
// behind a w x h box. The result is larger than the box by blur on every
// side.
func ShadowImage(w, h int, radius float64, blur int, c Color) *ebiten.Image {
	return ApplyFilters(PanelImage(w, h, radius, c), NewBlurFilter(blur))
}
