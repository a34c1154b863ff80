package dimension

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// NewStatsOverlay creates an overlay node that displays FPS, TPS, the scroll
// position and how many reveal units have fired. It refreshes about twice a
// second and uses ebitenutil.DebugPrint for rendering.
func NewStatsOverlay(s *Scene) *Node {
	// 160x64 fits four short lines of the debug font.
	img := ebiten.NewImage(160, 64)

	node := NewImage("stats_overlay", img, 0, 0)
	node.Layer = LayerOverlay
	node.SetPosition(8, 8)

	var sinceRefresh time.Duration
	first := true

	node.OnUpdate = func(dt time.Duration) {
		sinceRefresh += dt
		if !first && sinceRefresh < 500*time.Millisecond {
			return
		}
		first = false
		sinceRefresh = 0

		img.Clear()
		img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nScroll: %.0f/%.0f\nRevealed: %d/%d",
			ebiten.ActualFPS(), ebiten.ActualTPS(),
			s.viewport.ScrollY, s.viewport.MaxScroll(),
			s.RevealedCount(), len(s.reveals)))
	}

	return node
}
