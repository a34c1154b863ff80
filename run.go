package dimension

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// ShowStats adds a stats overlay to the scene root.
	ShowStats bool
	// TPS overrides Ebitengine's tick rate when positive.
	TPS int
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene  *Scene
	width  int
	height int
}

func (g *game) Update() error {
	if g.scene.updateFunc != nil {
		if err := g.scene.updateFunc(); err != nil {
			return err
		}
	}
	g.scene.Update()
	if r := g.scene.testRunner; r != nil && r.Done() && len(g.scene.screenshotQueue) == 0 {
		if len(r.failures) > 0 {
			return fmt.Errorf("test script: %d expectation(s) failed: %v", len(r.failures), r.failures)
		}
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Run opens a window and drives scene until the window closes, the update
// func returns an error or an attached test script finishes. A finished
// script with failed expectations is reported as an error.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = int(scene.viewport.Width), int(scene.viewport.Height)
	}
	scene.viewport.Resize(float64(cfg.Width), float64(cfg.Height))
	if cfg.ShowStats {
		scene.Root().AddChild(NewStatsOverlay(scene))
	}
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)

	err := ebiten.RunGame(&game{scene: scene, width: cfg.Width, height: cfg.Height})
	if err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
