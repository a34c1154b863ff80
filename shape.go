package dimension

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Shape images are rasterized on the CPU once and uploaded as regular
// images, so they batch and scale like any other image node.

// PanelImage returns a w x h rounded rectangle filled with c. Edges are
// anti-aliased over one pixel.
func PanelImage(w, h int, radius float64, c Color) *ebiten.Image {
	w, h = max(w, 1), max(h, 1)
	radius = math.Min(radius, math.Min(float64(w), float64(h))/2)
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cov := roundedCoverage(float64(x)+0.5, float64(y)+0.5, float64(w), float64(h), radius)
			img.SetNRGBA(x, y, nrgba(c, c.A*cov))
		}
	}
	return ebiten.NewImageFromImage(img)
}

// roundedCoverage returns how much of the pixel centered at (px, py) lies
// inside a w x h rectangle with corner radius r.
func roundedCoverage(px, py, w, h, r float64) float64 {
	cx := math.Max(r, math.Min(px, w-r))
	cy := math.Max(r, math.Min(py, h-r))
	if r <= 0 {
		return 1
	}
	d := math.Hypot(px-cx, py-cy)
	return clamp01(r - d + 0.5)
}

// OutlineImage returns a w x h rounded rectangle border of the given
// thickness, transparent inside.
func OutlineImage(w, h int, radius, thickness float64, c Color) *ebiten.Image {
	w, h = max(w, 1), max(h, 1)
	radius = math.Min(radius, math.Min(float64(w), float64(h))/2)
	inner := math.Max(radius-thickness, 0)
	iw, ih := float64(w)-2*thickness, float64(h)-2*thickness
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			outer := roundedCoverage(px, py, float64(w), float64(h), radius)
			var in float64
			if iw > 0 && ih > 0 {
				in = roundedCoverage(px-thickness, py-thickness, iw, ih, inner)
				if px < thickness || py < thickness || px > thickness+iw || py > thickness+ih {
					in = 0
				}
			}
			img.SetNRGBA(x, y, nrgba(c, c.A*clamp01(outer-in)))
		}
	}
	return ebiten.NewImageFromImage(img)
}

// NewPanel creates an image node showing a rounded rectangle.
func NewPanel(name string, w, h, radius float64, c Color) *Node {
	img := PanelImage(int(math.Ceil(w)), int(math.Ceil(h)), radius, c)
	return NewImage(name, img, w, h)
}

// GradientImage returns a w x h image whose color runs through stops from
// top to bottom, evenly spaced.
func GradientImage(w, h int, stops ...Color) *ebiten.Image {
	w, h = max(w, 1), max(h, 1)
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		c := sampleStops(stops, float64(y)/math.Max(float64(h-1), 1))
		px := nrgba(c, c.A)
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, px)
		}
	}
	return ebiten.NewImageFromImage(img)
}

// BlobImage returns a size x size soft disc. Its color runs diagonally from
// from (bottom left) to to (top right) and its alpha falls off smoothly from
// the center, approximating a heavily blurred circle.
func BlobImage(size int, from, to Color) *ebiten.Image {
	size = max(size, 1)
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	half := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			fx, fy := float64(x)+0.5, float64(y)+0.5
			d := math.Hypot(fx-half, fy-half) / half
			if d >= 1 {
				continue
			}
			falloff := 1 - d*d
			falloff *= falloff
			c := from.Lerp(to, (fx+float64(size)-fy)/(2*float64(size)))
			img.SetNRGBA(x, y, nrgba(c, c.A*falloff))
		}
	}
	return ebiten.NewImageFromImage(img)
}

// sampleStops interpolates evenly spaced color stops at t in [0, 1].
func sampleStops(stops []Color, t float64) Color {
	switch len(stops) {
	case 0:
		return Color{}
	case 1:
		return stops[0]
	}
	t = clamp01(t)
	seg := t * float64(len(stops)-1)
	i := int(seg)
	if i >= len(stops)-1 {
		return stops[len(stops)-1]
	}
	return stops[i].Lerp(stops[i+1], seg-float64(i))
}

// nrgba converts c to a straight-alpha pixel with alpha a.
func nrgba(c Color, a float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(a) * 255),
	}
}
