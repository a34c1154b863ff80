package landing

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/phanxgames/dimension"
	"github.com/phanxgames/dimension/content"
)

// iconRes is the side of the icon images; they are drawn at half size.
const iconRes = 48

// IconImage draws the named icon as white strokes on a transparent image.
func IconImage(icon content.IconRef) *ebiten.Image {
	img := ebiten.NewImage(iconRes, iconRes)
	c := dimension.ColorWhite.ToRGBA()
	const w = 4 // stroke width at iconRes
	switch icon {
	case content.IconZap:
		pts := [][2]float32{{26, 4}, {8, 28}, {24, 28}, {22, 44}, {40, 20}, {24, 20}, {26, 4}}
		for i := 1; i < len(pts); i++ {
			vector.StrokeLine(img, pts[i-1][0], pts[i-1][1], pts[i][0], pts[i][1], w, c, true)
		}
	case content.IconPalette:
		vector.StrokeCircle(img, 24, 24, 19, w, c, true)
		for _, p := range [][2]float32{{16, 16}, {26, 12}, {34, 20}, {14, 27}} {
			vector.DrawFilledCircle(img, p[0], p[1], 3, c, true)
		}
	case content.IconAccessibility:
		vector.StrokeCircle(img, 24, 24, 20, w, c, true)
		vector.DrawFilledCircle(img, 24, 13, 3.5, c, true)
		vector.StrokeLine(img, 13, 20, 35, 20, w, c, true)
		vector.StrokeLine(img, 24, 20, 24, 29, w, c, true)
		vector.StrokeLine(img, 24, 29, 18, 38, w, c, true)
		vector.StrokeLine(img, 24, 29, 30, 38, w, c, true)
	}
	return img
}
