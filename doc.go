// Package dimension is a retained-mode scene graph for animated, scrolling
// landing pages on [Ebitengine].
//
// Dimension provides the node tree, a vertical scrolling viewport, one-shot
// reveal animations, endless ambient oscillators, TTF text layout, input
// handling and scripted visual testing.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	scene := dimension.NewScene(1280, 720)
//	// ... add nodes ...
//	dimension.Run(scene, dimension.RunConfig{
//		Title: "Landing", Width: 1280, Height: 720,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update] and [Scene.Draw] directly.
//
// # Time
//
// Animations never read a wall clock. [Scene.Step] takes a timestamp measured
// from scene start and every reveal unit and oscillator samples that value,
// so a scene stepped with the same timestamps always produces the same
// frames. [Scene.Update] advances the clock by one tick (1/TPS).
//
// # Reveals
//
// [Scene.Reveal] binds a [RevealUnit] to a node. A unit is hidden until its
// trigger fires: [TriggerOnMount] on the scene's first step,
// [TriggerOnViewportEnter] the first time the node's box overlaps the
// visible area. Once fired it animates from its initial offset, scale and
// zero opacity to the node's rest state and never hides again.
//
//	scene.Reveal(card, dimension.RevealSpec{
//		Mode:     dimension.TriggerOnViewportEnter,
//		Offset:   dimension.Vec2{Y: 20},
//		Duration: 500 * time.Millisecond,
//		Delay:    240 * time.Millisecond,
//	})
//
// # Ambient motion
//
// [Scene.Oscillate] binds an [Oscillator] to a node. An oscillator
// interpolates keyframed position and rotation over its period, then plays
// back in reverse, forever. [OscillatorA] and [OscillatorB] are the two
// background blob motions.
//
// # Layers
//
// [LayerContent] nodes scroll with the viewport. [LayerBackground] and
// [LayerOverlay] subtrees are fixed to the screen and drawn below and above
// the content.
//
// [Ebitengine]: https://ebitengine.org
package dimension
